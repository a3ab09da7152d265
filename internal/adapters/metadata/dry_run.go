package metadata

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/trebuchet-org/treb-interact/internal/domain"
	"github.com/trebuchet-org/treb-interact/internal/usecase"
)

// DryRunSubmitter reports the call it would have dispatched without contacting a chain
type DryRunSubmitter struct {
	log *slog.Logger
}

// NewDryRunSubmitter creates a new dry-run submitter
func NewDryRunSubmitter(log *slog.Logger) *DryRunSubmitter {
	return &DryRunSubmitter{log: log}
}

// Submit reports the assembled call through status
func (s *DryRunSubmitter) Submit(ctx context.Context, submission domain.Submission, account domain.Account, status usecase.StatusFunc) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		status(domain.StatusSending)
		if err := ctx.Err(); err != nil {
			status(fmt.Sprintf("Transaction Failed: %v", err))
			return
		}

		call := FormatCall(submission)
		s.log.Debug("dry run", "call", call, "account", account.Name)

		who := account.Name
		if who == "" {
			who = "anonymous"
		}
		status(fmt.Sprintf("Dry run %s as %s: %s", submission.Kind, who, call))
	}()
	return done
}

// FormatCall renders a submission as module.callable(name=value, ...).
// Blank optional values render as None.
func FormatCall(submission domain.Submission) string {
	args := make([]string, len(submission.ParamFields))
	for i, field := range submission.ParamFields {
		var param domain.InputParam
		if i < len(submission.InputParams) {
			param = submission.InputParams[i]
		}

		value := strconv.Quote(param.Value)
		if param.Blank() && field.Optional {
			value = "None"
		}
		args[i] = field.Name + "=" + value
	}
	return fmt.Sprintf("%s.%s(%s)", submission.Module, submission.Callable, strings.Join(args, ", "))
}

// Ensure the adapter implements the interface
var _ usecase.Submitter = (*DryRunSubmitter)(nil)
