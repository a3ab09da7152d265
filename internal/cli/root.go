package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/treb-interact/internal/adapters/progress"
	"github.com/trebuchet-org/treb-interact/internal/app"
	"github.com/trebuchet-org/treb-interact/internal/config"
	"github.com/trebuchet-org/treb-interact/internal/usecase"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"

	// longRunning marks commands that run until the user stops them and ignore --timeout
	longRunning = "long-running"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "interact",
		Short: "Call any module of a chain from generated forms",
		Long: `interact reads the callable metadata of a chain module and builds an input
form for each callable. Calls are signed with a configured sender and submitted
to the network in interact.toml, or dry-run against a static metadata file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			v := config.SetupViper(cmd)

			appInstance, err := app.InitApp(v, newStatusSink(cmd))
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			ctx := context.WithValue(cmd.Context(), appKey, appInstance)

			if appInstance.Config.Timeout > 0 && cmd.Annotations[longRunning] == "" {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
				cmd.PostRun = func(cmd *cobra.Command, args []string) {
					cancel()
				}
			}

			cmd.SetContext(ctx)
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().StringP("network", "n", "", "Network from interact.toml [networks] (static metadata when unset)")
	rootCmd.PersistentFlags().StringP("module", "m", "", "Module to interact with")
	rootCmd.PersistentFlags().StringP("sender", "s", "", "Sender from interact.toml [senders]")
	rootCmd.PersistentFlags().StringP("kind", "k", "", "Interaction kind: EXTRINSIC, QUERY or RPC")
	rootCmd.PersistentFlags().String("project-root", "", "Project directory containing interact.toml")
	rootCmd.PersistentFlags().Duration("timeout", 0, "Timeout for one-shot commands (default 2m)")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Main Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands",
	})

	// Main commands
	for _, cmd := range []*cobra.Command{
		NewFormCmd(),
		NewCallCmd(),
		NewServeCmd(),
		NewModulesCmd(),
		NewCallablesCmd(),
	} {
		cmd.GroupID = "main"
		rootCmd.AddCommand(cmd)
	}

	// Management commands
	for _, cmd := range []*cobra.Command{
		NewNetworksCmd(),
		NewConfigCmd(),
	} {
		cmd.GroupID = "management"
		rootCmd.AddCommand(cmd)
	}

	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// newStatusSink shows a spinner unless output must stay machine readable
func newStatusSink(cmd *cobra.Command) usecase.StatusSink {
	for _, name := range []string{"json", "non-interactive"} {
		if f := cmd.Flag(name); f != nil && f.Value.String() == "true" {
			return progress.NewNopSink()
		}
	}
	return progress.NewSpinnerStatusSink(cmd.ErrOrStderr())
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}

// moduleArg returns the module named on the command line or the configured default
func moduleArg(a *app.App, args []string) (string, error) {
	if len(args) > 0 && args[0] != "" {
		return args[0], nil
	}
	if a.Config.Module != "" {
		return a.Config.Module, nil
	}
	return "", fmt.Errorf("no module given (pass one, use --module or set module in interact.toml)")
}
