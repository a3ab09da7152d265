package usecase

import (
	"log/slog"
	"sort"

	"github.com/samber/lo"
	"github.com/trebuchet-org/treb-interact/internal/domain"
)

// MetadataIntrospector derives form descriptors from chain client metadata
type MetadataIntrospector struct {
	client ChainClient
	kind   domain.InteractionType
	log    *slog.Logger
}

// NewMetadataIntrospector creates an introspector for one interaction type
func NewMetadataIntrospector(client ChainClient, kind domain.InteractionType, log *slog.Logger) *MetadataIntrospector {
	return &MetadataIntrospector{
		client: client,
		kind:   kind,
		log:    log,
	}
}

// Kind returns the interaction type operations are listed for
func (i *MetadataIntrospector) Kind() domain.InteractionType {
	return i.kind
}

// ListOperations returns the module's callables sorted by name
func (i *MetadataIntrospector) ListOperations(module string) []domain.Operation {
	if i.client == nil || !i.client.Connected() {
		return []domain.Operation{}
	}

	names := append([]string(nil), i.client.Callables(i.kind, module)...)
	sort.Strings(names)

	i.log.Debug("listed operations", "module", module, "kind", i.kind, "count", len(names))

	return lo.Map(names, func(name string, _ int) domain.Operation {
		return domain.Operation{Name: name}
	})
}

// ListParameters returns the parameter fields declared by a callable
func (i *MetadataIntrospector) ListParameters(module, callable string) []domain.ParamField {
	if callable == "" || i.client == nil || !i.client.Connected() {
		return []domain.ParamField{}
	}

	args := i.client.CallableArgs(i.kind, module, callable)
	if len(args) == 0 {
		return []domain.ParamField{}
	}

	return lo.Map(args, func(arg domain.ArgMetadata, _ int) domain.ParamField {
		return domain.NewParamField(arg)
	})
}

// HasOperation reports whether the module exposes a callable with the given name
func (i *MetadataIntrospector) HasOperation(module, callable string) bool {
	return lo.ContainsBy(i.ListOperations(module), func(op domain.Operation) bool {
		return op.Name == callable
	})
}
