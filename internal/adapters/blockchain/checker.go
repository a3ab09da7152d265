package blockchain

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/trebuchet-org/treb-interact/internal/usecase"
)

// ProberAdapter implements the NetworkProber interface using ethclient
type ProberAdapter struct {
	timeout time.Duration
}

// NewProberAdapter creates a new network prober
func NewProberAdapter() *ProberAdapter {
	return &ProberAdapter{timeout: 5 * time.Second}
}

// ChainID dials the endpoint and returns the chain ID it serves
func (p *ProberAdapter) ChainID(ctx context.Context, rpcURL string) (uint64, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return 0, fmt.Errorf("failed to connect to RPC: %w", err)
	}
	defer client.Close()

	chainID, err := client.ChainID(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get chain ID: %w", err)
	}
	return chainID.Uint64(), nil
}

// Ensure the adapter implements the interface
var _ usecase.NetworkProber = (*ProberAdapter)(nil)
