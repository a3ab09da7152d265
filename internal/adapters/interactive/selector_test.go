package interactive

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/treb-interact/internal/domain"
	"github.com/trebuchet-org/treb-interact/internal/domain/config"
)

func TestSelectCallable(t *testing.T) {
	ctx := context.Background()
	ops := []domain.Operation{{Name: "mint"}, {Name: "transfer"}}

	_, err := NewSelectorAdapter(&config.RuntimeConfig{NonInteractive: true}).SelectCallable(ctx, "kitties", ops)
	assert.EqualError(t, err, "interactive selection not available in non-interactive mode")

	selector := NewSelectorAdapter(&config.RuntimeConfig{})
	_, err = selector.SelectCallable(ctx, "kitties", nil)
	assert.EqualError(t, err, "no callables provided for selection")

	name, err := selector.SelectCallable(ctx, "kitties", ops[:1])
	require.NoError(t, err)
	assert.Equal(t, "mint", name)
}

func TestFuzzySearch(t *testing.T) {
	names := []string{"transfer", "transferFrom", "mint", "setApprovalForAll"}
	search := createFuzzySearchFunc(names)

	tests := []struct {
		input string
		want  []string
	}{
		{input: "", want: names},
		{input: "FROM", want: []string{"transferFrom"}},
		{input: "sapf", want: []string{"setApprovalForAll"}},
		{input: "zz", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var got []string
			for i, name := range names {
				if search(tt.input, i) {
					got = append(got, name)
				}
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGuidedPrompterKeepsFilledValues(t *testing.T) {
	current := []domain.InputParam{{Type: "AccountId", Value: "bob"}}
	got, err := NewGuidedPrompter().PromptParams(context.Background(), domain.InteractionExtrinsic,
		[]domain.ParamField{{Name: "to", Type: "AccountId"}}, current)
	require.NoError(t, err)
	assert.Equal(t, current, got)
}
