package usecase

import (
	"context"
	"sort"

	"github.com/trebuchet-org/treb-interact/internal/domain"
	"github.com/trebuchet-org/treb-interact/internal/domain/config"
)

// ShowConfigResult contains the resolved configuration
type ShowConfigResult struct {
	ConfigPath string
	Exists     bool
	Network    *config.Network
	Module     string
	Sender     string
	Kind       domain.InteractionType
	Modules    []string
	Senders    []string
	Metadata   string
}

// ShowConfig is a use case for showing configuration
type ShowConfig struct {
	cfg *config.RuntimeConfig
}

// NewShowConfig creates a new ShowConfig use case
func NewShowConfig(cfg *config.RuntimeConfig) *ShowConfig {
	return &ShowConfig{
		cfg: cfg,
	}
}

// Run executes the show config use case
func (uc *ShowConfig) Run(ctx context.Context) (*ShowConfigResult, error) {
	result := &ShowConfigResult{
		ConfigPath: uc.cfg.ConfigFile,
		Exists:     uc.cfg.ConfigFile != "",
		Network:    uc.cfg.Network,
		Module:     uc.cfg.Module,
		Sender:     uc.cfg.Sender,
		Kind:       uc.cfg.Kind,
	}

	if uc.cfg.Project != nil {
		result.Modules = sortedKeys(uc.cfg.Project.Modules)
		result.Senders = sortedKeys(uc.cfg.Project.Senders)
		result.Metadata = uc.cfg.Project.Metadata.File
	}

	return result, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
