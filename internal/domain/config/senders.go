package config

type SenderType string

var (
	SenderTypePrivateKey SenderType = "private_key"
	SenderTypeAddress    SenderType = "address"
)

// SenderConfig represents a sender configuration
type SenderConfig struct {
	Type       SenderType `toml:"type"`
	Address    string     `toml:"address,omitempty"`
	PrivateKey string     `toml:"private_key,omitempty"` //nolint:gosec // holds env var reference, not a literal secret
}
