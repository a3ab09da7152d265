package usecase

import (
	"context"

	"github.com/trebuchet-org/treb-interact/internal/domain"
)

// ChainClient exposes module metadata for a chain connection.
// All reads return empty results until Connect has succeeded.
type ChainClient interface {
	Connect(ctx context.Context) error
	Connected() bool
	Modules() []string
	Callables(kind domain.InteractionType, module string) []string
	CallableArgs(kind domain.InteractionType, module, callable string) []domain.ArgMetadata
}

// StatusFunc receives human-readable submission status updates
type StatusFunc func(text string)

// Submitter signs and dispatches assembled calls.
// Submit must not block on dispatch; progress is reported only through status.
// The returned channel is closed once no further status updates will be sent.
type Submitter interface {
	Submit(ctx context.Context, submission domain.Submission, account domain.Account, status StatusFunc) <-chan struct{}
}

// AccountResolver resolves configured senders into account handles
type AccountResolver interface {
	Accounts() []domain.Account
	Resolve(name string) (domain.Account, error)
}

// CallableSelector picks a callable when none was given
type CallableSelector interface {
	SelectCallable(ctx context.Context, module string, callables []domain.Operation) (string, error)
}

// ParamPrompter collects values for fields left blank on the command line
type ParamPrompter interface {
	PromptParams(ctx context.Context, kind domain.InteractionType, fields []domain.ParamField, current []domain.InputParam) ([]domain.InputParam, error)
}

// StatusSink displays submission status while a command waits for completion
type StatusSink interface {
	Start(message string)
	Update(text string)
	Stop(final string)
}
