package metadata

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/trebuchet-org/treb-interact/internal/domain"
	"github.com/trebuchet-org/treb-interact/internal/domain/config"
	"github.com/trebuchet-org/treb-interact/internal/usecase"
	"gopkg.in/yaml.v3"
)

// File is the static metadata document
type File struct {
	Modules map[string]ModuleSpec `yaml:"modules"`
}

// ModuleSpec lists the callables of one module
type ModuleSpec struct {
	Calls   []CallSpec `yaml:"calls"`
	Queries []CallSpec `yaml:"queries"`
}

// CallSpec declares one callable and its arguments in order
type CallSpec struct {
	Name string    `yaml:"name"`
	Args []ArgSpec `yaml:"args"`
}

// ArgSpec declares one argument
type ArgSpec struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// StaticClient implements the ChainClient port over a metadata file
type StaticClient struct {
	path string
	log  *slog.Logger

	mu   sync.RWMutex
	file *File
}

// NewStaticClient creates a client reading the metadata file named in the configuration
func NewStaticClient(cfg *config.RuntimeConfig, log *slog.Logger) *StaticClient {
	var path string
	if cfg.Project != nil && cfg.Project.Metadata.File != "" {
		path = cfg.Project.Metadata.File
		if !filepath.IsAbs(path) {
			path = filepath.Join(cfg.ProjectRoot, path)
		}
	}
	return &StaticClient{path: path, log: log}
}

// NewStaticClientFromFile creates a client that is already connected to parsed metadata
func NewStaticClientFromFile(file *File, log *slog.Logger) *StaticClient {
	return &StaticClient{file: file, log: log}
}

// Parse decodes a metadata document and checks it for duplicate callables
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse metadata: %w", err)
	}
	for name, m := range f.Modules {
		if err := checkUnique(name, m.Calls); err != nil {
			return nil, err
		}
		if err := checkUnique(name, m.Queries); err != nil {
			return nil, err
		}
	}
	return &f, nil
}

func checkUnique(module string, calls []CallSpec) error {
	seen := make(map[string]bool, len(calls))
	for _, c := range calls {
		if c.Name == "" {
			return fmt.Errorf("module %s: callable without a name", module)
		}
		if seen[c.Name] {
			return fmt.Errorf("module %s: duplicate callable %s", module, c.Name)
		}
		seen[c.Name] = true
	}
	return nil
}

// Connect loads the metadata file
func (c *StaticClient) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.file != nil {
		return nil
	}
	if c.path == "" {
		return fmt.Errorf("%w: no metadata file configured", domain.ErrNotConnected)
	}

	data, err := os.ReadFile(c.path)
	if err != nil {
		return fmt.Errorf("failed to read metadata file: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return err
	}

	c.log.Debug("loaded metadata", "path", c.path, "modules", len(f.Modules))
	c.file = f
	return nil
}

// Connected reports whether metadata has been loaded
func (c *StaticClient) Connected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.file != nil
}

// Modules returns the module names in the metadata
func (c *StaticClient) Modules() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.file == nil {
		return nil
	}
	names := make([]string, 0, len(c.file.Modules))
	for name := range c.file.Modules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Callables lists calls for extrinsics and queries for read-only kinds
func (c *StaticClient) Callables(kind domain.InteractionType, module string) []string {
	calls := c.calls(kind, module)
	names := make([]string, len(calls))
	for i, call := range calls {
		names[i] = call.Name
	}
	return names
}

// CallableArgs returns the declared arguments of a callable
func (c *StaticClient) CallableArgs(kind domain.InteractionType, module, callable string) []domain.ArgMetadata {
	for _, call := range c.calls(kind, module) {
		if call.Name != callable {
			continue
		}
		args := make([]domain.ArgMetadata, len(call.Args))
		for i, a := range call.Args {
			args[i] = domain.ArgMetadata{Name: a.Name, Type: a.Type}
		}
		return args
	}
	return nil
}

func (c *StaticClient) calls(kind domain.InteractionType, module string) []CallSpec {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.file == nil {
		return nil
	}
	m, ok := c.file.Modules[module]
	if !ok {
		return nil
	}
	if kind.ReadOnly() {
		return m.Queries
	}
	return m.Calls
}

// Ensure the adapter implements the interface
var _ usecase.ChainClient = (*StaticClient)(nil)
