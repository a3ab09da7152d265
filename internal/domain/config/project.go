package config

// ProjectConfig represents the parsed interact.toml file
type ProjectConfig struct {
	// Defaults used when the matching flag is not set
	Module  string `toml:"module"`
	Sender  string `toml:"sender"`
	Network string `toml:"network"`
	Kind    string `toml:"kind"`

	Networks map[string]NetworkConfig `toml:"networks"`
	Senders  map[string]SenderConfig  `toml:"senders"`
	Modules  map[string]ModuleConfig  `toml:"modules"`
	Metadata MetadataConfig           `toml:"metadata"`
}

// NetworkConfig is a configured RPC endpoint
type NetworkConfig struct {
	RPCURL  string `toml:"rpc_url"`
	ChainID uint64 `toml:"chain_id,omitempty"`
}

// ModuleConfig binds a module name to a deployed contract and its ABI
type ModuleConfig struct {
	Address string `toml:"address"`
	ABI     string `toml:"abi"` // path to a raw ABI array or a Foundry artifact
}

// MetadataConfig points at a static metadata file
type MetadataConfig struct {
	File string `toml:"file"`
}

// NewProjectConfig returns an empty project configuration
func NewProjectConfig() *ProjectConfig {
	return &ProjectConfig{
		Networks: make(map[string]NetworkConfig),
		Senders:  make(map[string]SenderConfig),
		Modules:  make(map[string]ModuleConfig),
	}
}
