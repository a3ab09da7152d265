package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/treb-interact/internal/cli/render"
)

// NewConfigCmd creates the config command
func NewConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the resolved configuration",
		Long: `Show the configuration resolved from interact.toml, INTERACT_* environment
variables and flags.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ShowConfig.Run(cmd.Context())
			if err != nil {
				return err
			}

			return render.NewConfigRenderer(cmd.OutOrStdout()).Render(result)
		},
	}
}
