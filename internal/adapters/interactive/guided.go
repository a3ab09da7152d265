package interactive

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/trebuchet-org/treb-interact/internal/domain"
	"github.com/trebuchet-org/treb-interact/internal/usecase"
)

// GuidedPrompter collects parameter values with a huh form
type GuidedPrompter struct{}

// NewGuidedPrompter creates a new guided prompter
func NewGuidedPrompter() *GuidedPrompter {
	return &GuidedPrompter{}
}

// PromptParams asks for every blank field, leaving values given on the command line as defaults
func (p *GuidedPrompter) PromptParams(ctx context.Context, kind domain.InteractionType, fields []domain.ParamField, current []domain.InputParam) ([]domain.InputParam, error) {
	values := make([]string, len(fields))
	for i := range fields {
		if i < len(current) {
			values[i] = current[i].Value
		}
	}

	var inputs []huh.Field
	for i, field := range fields {
		if values[i] != "" {
			continue
		}
		input := huh.NewInput().
			Title(field.Name).
			Placeholder(field.Type).
			Value(&values[i])
		if field.Optional {
			input = input.Description(domain.OptionalHint(kind))
		}
		inputs = append(inputs, input)
	}
	if len(inputs) == 0 {
		return current, nil
	}

	if err := huh.NewForm(huh.NewGroup(inputs...)).RunWithContext(ctx); err != nil {
		return nil, fmt.Errorf("parameter form: %w", err)
	}

	out := make([]domain.InputParam, len(fields))
	for i, field := range fields {
		out[i] = domain.InputParam{Type: field.Type, Value: values[i]}
	}
	return out, nil
}

// Ensure the adapter implements the interface
var _ usecase.ParamPrompter = (*GuidedPrompter)(nil)
