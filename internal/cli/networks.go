package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/treb-interact/internal/cli/render"
	"github.com/trebuchet-org/treb-interact/internal/usecase"
)

// NewNetworksCmd creates the networks command
func NewNetworksCmd() *cobra.Command {
	var probe bool

	cmd := &cobra.Command{
		Use:   "networks",
		Short: "List networks from interact.toml",
		Long: `List all networks configured in the [networks] section of interact.toml.

With --probe, every endpoint is asked for its chain ID.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListNetworks.Run(cmd.Context(), usecase.ListNetworksParams{Probe: probe})
			if err != nil {
				return err
			}

			return render.NewNetworksRenderer(cmd.OutOrStdout()).Render(result)
		},
	}

	cmd.Flags().BoolVar(&probe, "probe", false, "Fetch the chain ID of every network")

	return cmd
}
