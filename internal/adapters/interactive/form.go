package interactive

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/trebuchet-org/treb-interact/internal/domain"
	"github.com/trebuchet-org/treb-interact/internal/domain/config"
	"github.com/trebuchet-org/treb-interact/internal/usecase"
)

// FormRunner runs the terminal call form
type FormRunner struct {
	config *config.RuntimeConfig
	forms  *usecase.OpenForm
}

// NewFormRunner creates a new form runner
func NewFormRunner(cfg *config.RuntimeConfig, forms *usecase.OpenForm) *FormRunner {
	return &FormRunner{config: cfg, forms: forms}
}

// Run shows the form until the user quits. The chain client connects after the form is drawn.
func (r *FormRunner) Run(ctx context.Context, params usecase.OpenFormParams, account domain.Account) error {
	if r.config.NonInteractive {
		return fmt.Errorf("the form is not available in non-interactive mode")
	}

	form := r.forms.New(params)
	model := newFormModel(ctx, form, r.forms.Connect, account)

	p := tea.NewProgram(model, tea.WithContext(ctx))
	form.OnStatus(func(text string) {
		p.Send(statusMsg(text))
	})

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("form failed: %w", err)
	}
	return nil
}
