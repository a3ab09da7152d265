package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/treb-interact/internal/config"
)

// NewServeCmd creates the serve command
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve call forms in the browser",
		Long: `Serve a browser form backed by the same chain client as the terminal form.
Each browser tab gets its own session; submission status is streamed over a
websocket.`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{longRunning: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return app.Server.Serve(ctx, app.Config.ListenAddr)
		},
	}

	cmd.Flags().String("listen", config.DefaultListenAddr, "Address to listen on")

	return cmd
}
