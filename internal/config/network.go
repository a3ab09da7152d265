package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/trebuchet-org/treb-interact/internal/domain/config"
)

// NetworkResolver resolves network names against the [networks] table
type NetworkResolver struct {
	project *config.ProjectConfig
}

// NewNetworkResolver creates a new network resolver
func NewNetworkResolver(project *config.ProjectConfig) *NetworkResolver {
	return &NetworkResolver{project: project}
}

// Resolve resolves a network name to its configuration.
// The chain ID is zero when not configured; the chain client fills it in on connect.
func (r *NetworkResolver) Resolve(networkName string) (*config.Network, error) {
	network, exists := r.project.Networks[networkName]
	if !exists {
		return nil, fmt.Errorf("network '%s' not found in %s [networks] (available: %s)",
			networkName, ProjectFileName, strings.Join(r.Names(), ", "))
	}
	if network.RPCURL == "" {
		return nil, fmt.Errorf("network '%s' has no rpc_url", networkName)
	}

	return &config.Network{
		Name:    networkName,
		RPCURL:  network.RPCURL,
		ChainID: network.ChainID,
	}, nil
}

// Names returns configured network names in order
func (r *NetworkResolver) Names() []string {
	names := make([]string, 0, len(r.project.Networks))
	for name := range r.project.Networks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
