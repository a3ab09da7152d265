package usecase

import (
	"context"
	"sort"

	"github.com/trebuchet-org/treb-interact/internal/domain/config"
)

// NetworkProber fetches the chain ID served by an RPC endpoint
type NetworkProber interface {
	ChainID(ctx context.Context, rpcURL string) (uint64, error)
}

// ListNetworksParams contains parameters for listing networks
type ListNetworksParams struct {
	// Probe queries each endpoint for its chain ID
	Probe bool
}

// ListNetworksResult contains the result of listing networks
type ListNetworksResult struct {
	Networks []NetworkStatus
	Current  string
}

// NetworkStatus represents the status of a network
type NetworkStatus struct {
	Name    string
	RPCURL  string
	ChainID uint64
	Error   error
}

// ListNetworks is a use case for listing configured networks
type ListNetworks struct {
	cfg    *config.RuntimeConfig
	prober NetworkProber
}

// NewListNetworks creates a new ListNetworks use case
func NewListNetworks(cfg *config.RuntimeConfig, prober NetworkProber) *ListNetworks {
	return &ListNetworks{
		cfg:    cfg,
		prober: prober,
	}
}

// Run executes the use case
func (uc *ListNetworks) Run(ctx context.Context, params ListNetworksParams) (*ListNetworksResult, error) {
	result := &ListNetworksResult{}
	if uc.cfg.Network != nil {
		result.Current = uc.cfg.Network.Name
	}
	if uc.cfg.Project == nil {
		return result, nil
	}

	names := make([]string, 0, len(uc.cfg.Project.Networks))
	for name := range uc.cfg.Project.Networks {
		names = append(names, name)
	}
	sort.Strings(names)

	result.Networks = make([]NetworkStatus, 0, len(names))
	for _, name := range names {
		network := uc.cfg.Project.Networks[name]
		status := NetworkStatus{
			Name:    name,
			RPCURL:  network.RPCURL,
			ChainID: network.ChainID,
		}

		if params.Probe {
			chainID, err := uc.prober.ChainID(ctx, network.RPCURL)
			if err != nil {
				status.Error = err
			} else {
				status.ChainID = chainID
			}
		}

		result.Networks = append(result.Networks, status)
	}

	return result, nil
}
