package interactive

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/sahilm/fuzzy"
	"github.com/trebuchet-org/treb-interact/internal/domain"
	"github.com/trebuchet-org/treb-interact/internal/domain/config"
	"github.com/trebuchet-org/treb-interact/internal/usecase"
)

// SelectorAdapter handles interactive selection
type SelectorAdapter struct {
	config *config.RuntimeConfig
}

// NewSelectorAdapter creates a new selector adapter
func NewSelectorAdapter(cfg *config.RuntimeConfig) *SelectorAdapter {
	return &SelectorAdapter{config: cfg}
}

// SelectCallable selects a callable from the module's operations
func (s *SelectorAdapter) SelectCallable(ctx context.Context, module string, operations []domain.Operation) (string, error) {
	// In non-interactive mode, we can't select
	if s.config.NonInteractive {
		return "", fmt.Errorf("interactive selection not available in non-interactive mode")
	}

	if len(operations) == 0 {
		return "", fmt.Errorf("no callables provided for selection")
	}

	// If only one match, return it directly
	if len(operations) == 1 {
		return operations[0].Name, nil
	}

	options := formatOperationOptions(module, operations)

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "▸ {{ . | cyan }}",
		Inactive: "  {{ . | faint }}",
		Selected: "✓ {{ . | green }}",
		Help:     color.New(color.FgYellow).Sprint("Use arrow keys to navigate, Enter to select"),
	}

	promptSelect := promptui.Select{
		Label:             fmt.Sprintf("Select a callable of %s", module),
		Items:             options,
		Templates:         templates,
		Size:              10,
		StartInSearchMode: true,
		Searcher:          createFuzzySearchFunc(operationNames(operations)),
	}

	index, _, err := promptSelect.Run()
	if err != nil {
		return "", fmt.Errorf("selection cancelled: %w", err)
	}

	return operations[index].Name, nil
}

// formatOperationOptions creates display strings for callable selection
func formatOperationOptions(module string, operations []domain.Operation) []string {
	options := make([]string, len(operations))
	moduleStr := color.New(color.FgBlue).Sprint(module)
	for i, op := range operations {
		options[i] = fmt.Sprintf("%s.%s", moduleStr, color.New(color.FgWhite, color.Bold).Sprint(op.Name))
	}
	return options
}

func operationNames(operations []domain.Operation) []string {
	names := make([]string, len(operations))
	for i, op := range operations {
		names[i] = op.Name
	}
	return names
}

// createFuzzySearchFunc creates a fuzzy search function for promptui
func createFuzzySearchFunc(items []string) func(input string, index int) bool {
	return func(input string, index int) bool {
		// Empty search shows all items
		if input == "" {
			return true
		}

		// Convert to lowercase for case-insensitive search
		input = strings.ToLower(input)
		item := strings.ToLower(items[index])

		// First try simple substring match
		if strings.Contains(item, input) {
			return true
		}

		// Then try fuzzy match
		pattern := fuzzy.Find(input, []string{item})
		return len(pattern) > 0
	}
}

// Ensure the adapter implements the interface
var _ usecase.CallableSelector = (*SelectorAdapter)(nil)
