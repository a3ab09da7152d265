package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/trebuchet-org/treb-interact/internal/domain"
)

// ModuleSummary counts the callables a module exposes per interaction type
type ModuleSummary struct {
	Name       string
	Extrinsics int
	Queries    int
}

// ListModulesResult contains the modules exposed by the chain client
type ListModulesResult struct {
	Modules []ModuleSummary
}

// ListModules is a use case for listing modules
type ListModules struct {
	client ChainClient
}

// NewListModules creates a new ListModules use case
func NewListModules(client ChainClient) *ListModules {
	return &ListModules{client: client}
}

// Run executes the use case
func (uc *ListModules) Run(ctx context.Context) (*ListModulesResult, error) {
	if err := uc.client.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}

	names := append([]string(nil), uc.client.Modules()...)
	sort.Strings(names)

	result := &ListModulesResult{Modules: make([]ModuleSummary, 0, len(names))}
	for _, name := range names {
		result.Modules = append(result.Modules, ModuleSummary{
			Name:       name,
			Extrinsics: len(uc.client.Callables(domain.InteractionExtrinsic, name)),
			Queries:    len(uc.client.Callables(domain.InteractionQuery, name)),
		})
	}
	return result, nil
}
