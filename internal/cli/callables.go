package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/treb-interact/internal/cli/render"
	"github.com/trebuchet-org/treb-interact/internal/usecase"
)

// NewCallablesCmd creates the callables command
func NewCallablesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "callables [module]",
		Short: "List a module's callables and their parameters",
		Long: `List the callables of a module for the selected interaction kind, with the
declared type of every parameter. Optional parameters are marked.

Examples:
  interact callables token
  interact callables token --kind query`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			module, err := moduleArg(app, args)
			if err != nil {
				return err
			}

			result, err := app.DescribeCallables.Run(cmd.Context(), usecase.DescribeCallablesParams{
				Module: module,
				Kind:   app.Config.Kind,
			})
			if err != nil {
				return err
			}

			return render.NewCallablesRenderer(cmd.OutOrStdout()).Render(result)
		},
	}
}
