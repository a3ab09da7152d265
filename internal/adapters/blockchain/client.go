package blockchain

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"path/filepath"
	"sort"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	abiadapter "github.com/trebuchet-org/treb-interact/internal/adapters/abi"
	"github.com/trebuchet-org/treb-interact/internal/domain"
	"github.com/trebuchet-org/treb-interact/internal/domain/config"
	"github.com/trebuchet-org/treb-interact/internal/usecase"
)

// Backend is the subset of an Ethereum RPC client used for introspection and dispatch.
// Both *ethclient.Client and the simulated backend client satisfy it.
type Backend interface {
	ChainID(ctx context.Context) (*big.Int, error)
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasTipCap(ctx context.Context) (*big.Int, error)
	EstimateGas(ctx context.Context, call ethereum.CallMsg) (uint64, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

// Module is a deployed contract exposed as a module
type Module struct {
	Name    string
	Address common.Address
	ABI     *abi.ABI
}

// EVMClient implements the ChainClient port over contract ABIs
type EVMClient struct {
	network *config.Network
	modules map[string]*Module
	log     *slog.Logger

	mu      sync.RWMutex
	backend Backend
	chainID *big.Int
	closer  func()
}

// NewEVMClient creates a client for the configured network and modules.
// ABIs are loaded eagerly; the RPC connection is made by Connect.
func NewEVMClient(cfg *config.RuntimeConfig, log *slog.Logger) (*EVMClient, error) {
	modules := make(map[string]*Module)
	if cfg.Project != nil {
		for name, mc := range cfg.Project.Modules {
			if !common.IsHexAddress(mc.Address) {
				return nil, fmt.Errorf("module %s: %w: %q", name, domain.ErrInvalidAddress, mc.Address)
			}
			path := mc.ABI
			if !filepath.IsAbs(path) {
				path = filepath.Join(cfg.ProjectRoot, path)
			}
			parsed, err := abiadapter.LoadFile(path)
			if err != nil {
				return nil, fmt.Errorf("module %s: %w", name, err)
			}
			modules[name] = &Module{Name: name, Address: common.HexToAddress(mc.Address), ABI: parsed}
		}
	}

	return &EVMClient{
		network: cfg.Network,
		modules: modules,
		log:     log,
	}, nil
}

// NewEVMClientWithBackend creates a client that is already connected to backend
func NewEVMClientWithBackend(modules []*Module, backend Backend, chainID *big.Int, log *slog.Logger) *EVMClient {
	c := &EVMClient{
		modules: make(map[string]*Module, len(modules)),
		log:     log,
		backend: backend,
		chainID: chainID,
	}
	for _, m := range modules {
		c.modules[m.Name] = m
	}
	return c
}

// Connect dials the network RPC endpoint and verifies its chain ID
func (c *EVMClient) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.backend != nil {
		return nil
	}
	if c.network == nil || c.network.RPCURL == "" {
		return fmt.Errorf("%w: no network configured", domain.ErrNotConnected)
	}

	client, err := ethclient.DialContext(ctx, c.network.RPCURL)
	if err != nil {
		return fmt.Errorf("failed to connect to RPC: %w", err)
	}

	networkChainID, err := client.ChainID(ctx)
	if err != nil {
		client.Close()
		return fmt.Errorf("failed to get chain ID: %w", err)
	}

	// If chainID was 0, use the network's chain ID
	if c.network.ChainID != 0 && networkChainID.Uint64() != c.network.ChainID {
		client.Close()
		return fmt.Errorf("chain ID mismatch: expected %d, got %d", c.network.ChainID, networkChainID.Uint64())
	}

	c.log.Debug("connected to network", "network", c.network.Name, "chainId", networkChainID)
	c.backend = client
	c.chainID = networkChainID
	c.closer = client.Close
	return nil
}

// Close releases the RPC connection
func (c *EVMClient) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closer != nil {
		c.closer()
		c.closer = nil
	}
	c.backend = nil
}

// Connected reports whether Connect has succeeded
func (c *EVMClient) Connected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.backend != nil
}

// Modules returns the configured module names
func (c *EVMClient) Modules() []string {
	if !c.Connected() {
		return nil
	}
	names := make([]string, 0, len(c.modules))
	for name := range c.modules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Callables lists the methods of a module matching the interaction type.
// Extrinsics are non-constant methods; read-only kinds list view and pure methods.
func (c *EVMClient) Callables(kind domain.InteractionType, module string) []string {
	m, ok := c.module(module)
	if !ok {
		return nil
	}

	var names []string
	for name, method := range m.ABI.Methods {
		if abiadapter.IsReadOnly(method) == kind.ReadOnly() {
			names = append(names, name)
		}
	}
	return names
}

// CallableArgs returns the declared inputs of a method
func (c *EVMClient) CallableArgs(kind domain.InteractionType, module, callable string) []domain.ArgMetadata {
	method, _, err := c.Method(module, callable)
	if err != nil || abiadapter.IsReadOnly(*method) != kind.ReadOnly() {
		return nil
	}

	args := make([]domain.ArgMetadata, len(method.Inputs))
	for i, input := range method.Inputs {
		name := input.Name
		if name == "" {
			name = fmt.Sprintf("arg%d", i)
		}
		args[i] = domain.ArgMetadata{Name: name, Type: input.Type.String()}
	}
	return args
}

// Method looks up a method and the module that declares it
func (c *EVMClient) Method(module, callable string) (*abi.Method, *Module, error) {
	if !c.Connected() {
		return nil, nil, domain.ErrNotConnected
	}
	m, ok := c.modules[module]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", domain.ErrModuleNotFound, module)
	}
	method, ok := m.ABI.Methods[callable]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s.%s", domain.ErrCallableNotFound, module, callable)
	}
	return &method, m, nil
}

// Backend returns the live backend and chain ID
func (c *EVMClient) Backend() (Backend, *big.Int, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.backend == nil {
		return nil, nil, domain.ErrNotConnected
	}
	return c.backend, c.chainID, nil
}

func (c *EVMClient) module(name string) (*Module, bool) {
	if !c.Connected() {
		return nil, false
	}
	m, ok := c.modules[name]
	return m, ok
}

// Ensure the adapter implements the interface
var _ usecase.ChainClient = (*EVMClient)(nil)
