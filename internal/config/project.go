package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/trebuchet-org/treb-interact/internal/domain/config"
)

// ProjectFileName is the project configuration file looked up from the working directory
const ProjectFileName = "interact.toml"

// loadEnvFiles loads .env and .env.local from the project root so config values can reference them
func loadEnvFiles(projectRoot string) {
	envFiles := []string{
		filepath.Join(projectRoot, ".env"),
		filepath.Join(projectRoot, ".env.local"),
	}

	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				slog.Warn("failed to load env file", "file", envFile, "error", err)
			}
		}
	}
}

// LoadProjectConfig reads interact.toml from the project root.
// A missing file yields an empty configuration.
func LoadProjectConfig(projectRoot string) (*config.ProjectConfig, bool, error) {
	loadEnvFiles(projectRoot)

	path := filepath.Join(projectRoot, ProjectFileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config.NewProjectConfig(), false, nil
	}

	cfg := config.NewProjectConfig()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, true, fmt.Errorf("failed to parse %s: %w", ProjectFileName, err)
	}

	expandProjectConfig(cfg)
	if err := validateProjectConfig(cfg); err != nil {
		return nil, true, fmt.Errorf("invalid %s: %w", ProjectFileName, err)
	}
	return cfg, true, nil
}

// expandProjectConfig substitutes ${VAR} references in string values
func expandProjectConfig(cfg *config.ProjectConfig) {
	cfg.Module = os.ExpandEnv(cfg.Module)
	cfg.Sender = os.ExpandEnv(cfg.Sender)
	cfg.Network = os.ExpandEnv(cfg.Network)
	cfg.Metadata.File = os.ExpandEnv(cfg.Metadata.File)

	for name, network := range cfg.Networks {
		network.RPCURL = os.ExpandEnv(network.RPCURL)
		cfg.Networks[name] = network
	}
	for name, sender := range cfg.Senders {
		sender.Address = os.ExpandEnv(sender.Address)
		sender.PrivateKey = os.ExpandEnv(sender.PrivateKey)
		cfg.Senders[name] = sender
	}
	for name, module := range cfg.Modules {
		module.Address = os.ExpandEnv(module.Address)
		module.ABI = os.ExpandEnv(module.ABI)
		cfg.Modules[name] = module
	}
}

func validateProjectConfig(cfg *config.ProjectConfig) error {
	for name, sender := range cfg.Senders {
		switch sender.Type {
		case config.SenderTypePrivateKey:
			if strings.TrimSpace(sender.PrivateKey) == "" {
				return fmt.Errorf("sender %s: private_key is required", name)
			}
		case config.SenderTypeAddress:
			if strings.TrimSpace(sender.Address) == "" {
				return fmt.Errorf("sender %s: address is required", name)
			}
		case "":
			return fmt.Errorf("sender %s: type is required", name)
		default:
			return fmt.Errorf("sender %s: unsupported type %q", name, sender.Type)
		}
	}

	for name, module := range cfg.Modules {
		if module.Address == "" {
			return fmt.Errorf("module %s: address is required", name)
		}
		if module.ABI == "" {
			return fmt.Errorf("module %s: abi is required", name)
		}
	}
	return nil
}
