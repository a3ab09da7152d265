package config

import (
	"time"

	"github.com/trebuchet-org/treb-interact/internal/domain"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string
	ConfigFile  string

	// Context settings
	Network *Network // nil if not specified
	Module  string
	Sender  string
	Kind    domain.InteractionType

	// Execution settings
	Debug          bool
	NonInteractive bool
	JSON           bool
	Timeout        time.Duration

	// Serve settings
	ListenAddr string

	// Resolved configurations
	Project *ProjectConfig
}

// Network represents network configuration
type Network struct {
	ChainID uint64 `json:"chainId"`
	Name    string `json:"name"`
	RPCURL  string `json:"rpcUrl"`
}

// UsesStaticMetadata reports whether calls go to the static metadata client instead of an RPC node
func (c *RuntimeConfig) UsesStaticMetadata() bool {
	return c.Network == nil
}
