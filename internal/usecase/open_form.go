package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/samber/lo"
	"github.com/trebuchet-org/treb-interact/internal/domain"
)

// OpenFormParams identifies the form to open
type OpenFormParams struct {
	Module string
	Kind   domain.InteractionType
}

// OpenForm builds form controllers bound to the injected chain client and submitter
type OpenForm struct {
	client    ChainClient
	submitter Submitter
	log       *slog.Logger
}

// NewOpenForm creates a new OpenForm use case
func NewOpenForm(client ChainClient, submitter Submitter, log *slog.Logger) *OpenForm {
	return &OpenForm{
		client:    client,
		submitter: submitter,
		log:       log,
	}
}

// New returns a controller without touching the connection.
// The controller shows no operations until the client connects and Refresh is called.
func (uc *OpenForm) New(params OpenFormParams) *FormController {
	introspector := NewMetadataIntrospector(uc.client, params.Kind, uc.log)
	return NewFormController(introspector, uc.submitter, params.Module, uc.log)
}

// Connect establishes the chain client connection
func (uc *OpenForm) Connect(ctx context.Context) error {
	if uc.client.Connected() {
		return nil
	}
	if err := uc.client.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	return nil
}

// Run connects and returns a populated controller
func (uc *OpenForm) Run(ctx context.Context, params OpenFormParams) (*FormController, error) {
	if err := uc.Connect(ctx); err != nil {
		return nil, err
	}
	if !lo.Contains(uc.client.Modules(), params.Module) {
		return nil, fmt.Errorf("%w: %s", domain.ErrModuleNotFound, params.Module)
	}
	return uc.New(params), nil
}

// Modules lists the modules of the connected client
func (uc *OpenForm) Modules() []string {
	return uc.client.Modules()
}
