package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/treb-interact/internal/domain"
	"github.com/trebuchet-org/treb-interact/internal/domain/config"
)

const (
	DefaultListenAddr = "127.0.0.1:8080"
	DefaultTimeout    = "2m"
)

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	projectRoot := v.GetString("project-root")
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to find project root: %w", err)
		}
	}

	project, exists, err := LoadProjectConfig(projectRoot)
	if err != nil {
		return nil, err
	}

	cfg := &config.RuntimeConfig{
		ProjectRoot:    projectRoot,
		Module:         firstNonEmpty(v.GetString("module"), project.Module),
		Sender:         firstNonEmpty(v.GetString("sender"), project.Sender),
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non-interactive"),
		JSON:           v.GetBool("json"),
		Timeout:        v.GetDuration("timeout"),
		ListenAddr:     v.GetString("listen"),
		Project:        project,
	}
	if exists {
		cfg.ConfigFile = filepath.Join(projectRoot, ProjectFileName)
	}

	kindName := firstNonEmpty(v.GetString("kind"), project.Kind, string(domain.InteractionExtrinsic))
	kind, ok := domain.ParseInteractionType(kindName)
	if !ok {
		return nil, fmt.Errorf("unknown interaction kind %q (expected one of EXTRINSIC, QUERY, RPC)", kindName)
	}
	cfg.Kind = kind

	if networkName := firstNonEmpty(v.GetString("network"), project.Network); networkName != "" {
		network, err := NewNetworkResolver(project).Resolve(networkName)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve network %s: %w", networkName, err)
		}
		cfg.Network = network
	}

	return cfg, nil
}

// FindProjectRoot walks up from the current directory to find interact.toml.
// Without one, the current directory is the project root.
func FindProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	dir := cwd
	for {
		if _, err := os.Stat(filepath.Join(dir, ProjectFileName)); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd, nil
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	v.SetEnvPrefix("INTERACT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	v.SetDefault("timeout", DefaultTimeout)
	v.SetDefault("listen", DefaultListenAddr)
	v.SetDefault("debug", false)
	v.SetDefault("non-interactive", false)

	if cmd != nil {
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			if err := v.BindPFlag(f.Name, f); err != nil {
				panic(err)
			}
		})
	}

	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
