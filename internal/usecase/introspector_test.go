package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/trebuchet-org/treb-interact/internal/domain"
	"github.com/trebuchet-org/treb-interact/internal/usecase"
)

func TestMetadataIntrospector_ListOperations(t *testing.T) {
	tests := []struct {
		name   string
		client usecase.ChainClient
		module string
		want   []domain.Operation
	}{
		{
			name:   "sorted by name",
			client: kittiesChain(true),
			module: "substratekitties",
			want:   []domain.Operation{{Name: "breed"}, {Name: "mint"}, {Name: "transfer"}},
		},
		{
			name:   "unknown module",
			client: kittiesChain(true),
			module: "staking",
			want:   []domain.Operation{},
		},
		{
			name:   "disconnected client",
			client: kittiesChain(false),
			module: "substratekitties",
			want:   []domain.Operation{},
		},
		{
			name:   "no client",
			client: nil,
			module: "substratekitties",
			want:   []domain.Operation{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i := usecase.NewMetadataIntrospector(tt.client, domain.InteractionExtrinsic, discardLogger())
			got := i.ListOperations(tt.module)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMetadataIntrospector_ListOperationsByKind(t *testing.T) {
	client := kittiesChain(true)

	queries := usecase.NewMetadataIntrospector(client, domain.InteractionQuery, discardLogger())
	assert.Equal(t, []domain.Operation{{Name: "kittyOwner"}}, queries.ListOperations("substratekitties"))
	assert.True(t, queries.HasOperation("substratekitties", "kittyOwner"))
	assert.False(t, queries.HasOperation("substratekitties", "transfer"))
}

func TestMetadataIntrospector_ListParameters(t *testing.T) {
	tests := []struct {
		name      string
		connected bool
		callable  string
		want      []domain.ParamField
	}{
		{
			name:      "declared order with optional flag",
			connected: true,
			callable:  "transfer",
			want: []domain.ParamField{
				{Name: "to", Type: "AccountId", Optional: false},
				{Name: "amount", Type: "Option<u64>", Optional: true},
			},
		},
		{
			name:      "parameterless callable",
			connected: true,
			callable:  "mint",
			want:      []domain.ParamField{},
		},
		{
			name:      "no selection",
			connected: true,
			callable:  "",
			want:      []domain.ParamField{},
		},
		{
			name:      "unknown callable",
			connected: true,
			callable:  "burn",
			want:      []domain.ParamField{},
		},
		{
			name:      "disconnected",
			connected: false,
			callable:  "transfer",
			want:      []domain.ParamField{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i := usecase.NewMetadataIntrospector(kittiesChain(tt.connected), domain.InteractionExtrinsic, discardLogger())
			assert.Equal(t, tt.want, i.ListParameters("substratekitties", tt.callable))
		})
	}
}

func TestOptionalClassificationIsDeterministic(t *testing.T) {
	tests := []struct {
		declared string
		optional bool
	}{
		{"Option<u64>", true},
		{"Option<Balance>", true},
		{"Option<>", true},
		{"u64", false},
		{"Vec<Option<u8>>", false},
		{"option<u64>", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.declared, func(t *testing.T) {
			first := domain.NewParamField(domain.ArgMetadata{Name: "x", Type: tt.declared})
			second := domain.NewParamField(domain.ArgMetadata{Name: "x", Type: tt.declared})
			assert.Equal(t, tt.optional, first.Optional)
			assert.Equal(t, first, second)
			assert.Equal(t, tt.declared, first.Type)
		})
	}
}

func TestOptionalHint(t *testing.T) {
	assert.Equal(t, "Optional Parameter", domain.OptionalHint(domain.InteractionQuery))
	assert.Equal(t, "Optional Parameter", domain.OptionalHint(domain.InteractionRPC))
	assert.Equal(t, "Leaving this field as blank will submit a NONE value", domain.OptionalHint(domain.InteractionExtrinsic))
}
