package cli

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/treb-interact/internal/cli/render"
	"github.com/trebuchet-org/treb-interact/internal/domain"
	"github.com/trebuchet-org/treb-interact/internal/usecase"
)

var errSubmissionFailed = errors.New("submission failed")

// NewCallCmd creates the call command
func NewCallCmd() *cobra.Command {
	var (
		callArgs   []string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "call [module] [callable]",
		Short: "Fill a call form from flags and submit it",
		Long: `Fill the form of one callable from --arg values and submit it, waiting for
the final status. Arguments are name=value pairs or positional values.

When running interactively, a missing callable is picked from a list and
parameters left blank are asked for.

Examples:
  interact call token transfer --arg to=0x70997970C51812dc3A010C7d01b50e0d17dc79C8 --arg amount=100
  interact call token balanceOf --kind query --arg 0x70997970C51812dc3A010C7d01b50e0d17dc79C8`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			module, err := moduleArg(app, args)
			if err != nil {
				return err
			}
			var callable string
			if len(args) > 1 {
				callable = args[1]
			}

			result, err := app.InvokeCallable.Run(cmd.Context(), usecase.InvokeCallableParams{
				Module:   module,
				Kind:     app.Config.Kind,
				Callable: callable,
				Args:     callArgs,
				Sender:   app.Config.Sender,
			})
			if err != nil {
				return err
			}

			if err := render.NewCallRenderer(cmd.OutOrStdout(), jsonOutput).Render(result); err != nil {
				return err
			}
			if domain.IsFailureStatus(result.Final) {
				return errSubmissionFailed
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&callArgs, "arg", "a", nil, "Parameter value as name=value or positional value (repeatable)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the result as JSON")

	return cmd
}
