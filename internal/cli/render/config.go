package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/trebuchet-org/treb-interact/internal/usecase"
)

// ConfigRenderer renders config-related output
type ConfigRenderer struct {
	out io.Writer
}

// NewConfigRenderer creates a new config renderer
func NewConfigRenderer(out io.Writer) *ConfigRenderer {
	return &ConfigRenderer{out: out}
}

// getRelativePath returns the relative path from current directory
func getRelativePath(path string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return path
	}

	relPath, err := filepath.Rel(cwd, path)
	if err != nil {
		return path
	}

	return relPath
}

func orNotSet(v string) string {
	if v == "" {
		return "(not set)"
	}
	return v
}

// Render renders the configuration display
func (r *ConfigRenderer) Render(result *usecase.ShowConfigResult) error {
	if !result.Exists {
		fmt.Fprintln(r.out, "❌ No interact.toml file found")
		fmt.Fprintln(r.out, "⚠️  Without config, calls use static metadata and dry runs")
		return nil
	}

	fmt.Fprintln(r.out, "📋 Current config:")
	fmt.Fprintf(r.out, "Module:   %s\n", orNotSet(result.Module))
	fmt.Fprintf(r.out, "Kind:     %s\n", result.Kind)
	fmt.Fprintf(r.out, "Sender:   %s\n", orNotSet(result.Sender))
	if result.Network != nil {
		fmt.Fprintf(r.out, "Network:  %s (%s)\n", result.Network.Name, result.Network.RPCURL)
	} else {
		fmt.Fprintf(r.out, "Network:  %s\n", orNotSet(""))
	}

	if len(result.Modules) > 0 {
		fmt.Fprintf(r.out, "\n📦 Modules: %s\n", strings.Join(result.Modules, ", "))
	}
	if len(result.Senders) > 0 {
		fmt.Fprintf(r.out, "🔑 Senders: %s\n", strings.Join(result.Senders, ", "))
	}
	if result.Metadata != "" {
		fmt.Fprintf(r.out, "🗂  Metadata: %s\n", result.Metadata)
	}

	fmt.Fprintf(r.out, "📁 config file: %s\n", getRelativePath(result.ConfigPath))
	return nil
}
