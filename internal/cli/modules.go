package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/treb-interact/internal/cli/render"
)

// NewModulesCmd creates the modules command
func NewModulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "modules",
		Short: "List the modules exposed by the chain client",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListModules.Run(cmd.Context())
			if err != nil {
				return err
			}

			return render.NewModulesRenderer(cmd.OutOrStdout()).Render(result)
		},
	}
}
