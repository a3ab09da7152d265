package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/samber/lo"
	"github.com/trebuchet-org/treb-interact/internal/domain"
)

// DescribeCallablesParams contains parameters for describing a module
type DescribeCallablesParams struct {
	Module string
	Kind   domain.InteractionType
}

// CallableInfo describes one callable and its fields
type CallableInfo struct {
	Name   string
	Fields []domain.ParamField
}

// DescribeCallablesResult contains the callables of a module
type DescribeCallablesResult struct {
	Module       string
	Kind         domain.InteractionType
	OptionalHint string
	Callables    []CallableInfo
}

// DescribeCallables is a use case for listing a module's callables and their parameters
type DescribeCallables struct {
	client ChainClient
	log    *slog.Logger
}

// NewDescribeCallables creates a new DescribeCallables use case
func NewDescribeCallables(client ChainClient, log *slog.Logger) *DescribeCallables {
	return &DescribeCallables{client: client, log: log}
}

// Run executes the use case
func (uc *DescribeCallables) Run(ctx context.Context, params DescribeCallablesParams) (*DescribeCallablesResult, error) {
	if err := uc.client.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}
	if !lo.Contains(uc.client.Modules(), params.Module) {
		return nil, fmt.Errorf("%w: %s", domain.ErrModuleNotFound, params.Module)
	}

	introspector := NewMetadataIntrospector(uc.client, params.Kind, uc.log)
	callables := lo.Map(introspector.ListOperations(params.Module), func(op domain.Operation, _ int) CallableInfo {
		return CallableInfo{
			Name:   op.Name,
			Fields: introspector.ListParameters(params.Module, op.Name),
		}
	})

	return &DescribeCallablesResult{
		Module:       params.Module,
		Kind:         params.Kind,
		OptionalHint: domain.OptionalHint(params.Kind),
		Callables:    callables,
	}, nil
}
