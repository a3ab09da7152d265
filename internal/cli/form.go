package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/treb-interact/internal/domain"
	"github.com/trebuchet-org/treb-interact/internal/usecase"
)

// NewFormCmd creates the form command
func NewFormCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "form [module]",
		Short: "Open the terminal call form for a module",
		Long: `Open an interactive form for a module. Pick a callable from the dropdown or
the tab strip, fill in its parameters and submit. Switching callables clears
every value.`,
		Args:        cobra.MaximumNArgs(1),
		Annotations: map[string]string{longRunning: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			module, err := moduleArg(app, args)
			if err != nil {
				return err
			}

			var account domain.Account
			if app.Config.Sender != "" {
				account, err = app.Accounts.Resolve(app.Config.Sender)
				if err != nil {
					return err
				}
			}

			return app.FormRunner.Run(cmd.Context(), usecase.OpenFormParams{
				Module: module,
				Kind:   app.Config.Kind,
			}, account)
		},
	}
}
