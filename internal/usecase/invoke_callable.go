package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/samber/lo"
	"github.com/trebuchet-org/treb-interact/internal/domain"
	"github.com/trebuchet-org/treb-interact/internal/domain/config"
)

// InvokeCallableParams contains parameters for a one-shot call
type InvokeCallableParams struct {
	Module   string
	Kind     domain.InteractionType
	Callable string
	// Args are either "name=value" pairs or positional values
	Args   []string
	Sender string
}

// InvokeCallableResult contains the outcome of a one-shot call
type InvokeCallableResult struct {
	Submission domain.Submission
	Account    domain.Account
	Statuses   []string
	Final      string
}

// InvokeCallable fills a form from arguments, submits it and waits for the submitter to finish
type InvokeCallable struct {
	cfg      *config.RuntimeConfig
	forms    *OpenForm
	accounts AccountResolver
	selector CallableSelector
	prompter ParamPrompter
	sink     StatusSink
	log      *slog.Logger
}

// NewInvokeCallable creates a new InvokeCallable use case
func NewInvokeCallable(
	cfg *config.RuntimeConfig,
	forms *OpenForm,
	accounts AccountResolver,
	selector CallableSelector,
	prompter ParamPrompter,
	sink StatusSink,
	log *slog.Logger,
) *InvokeCallable {
	return &InvokeCallable{
		cfg:      cfg,
		forms:    forms,
		accounts: accounts,
		selector: selector,
		prompter: prompter,
		sink:     sink,
		log:      log,
	}
}

// Run executes the use case
func (uc *InvokeCallable) Run(ctx context.Context, params InvokeCallableParams) (*InvokeCallableResult, error) {
	form, err := uc.forms.Run(ctx, OpenFormParams{Module: params.Module, Kind: params.Kind})
	if err != nil {
		return nil, err
	}

	callable, err := uc.resolveCallable(ctx, form, params)
	if err != nil {
		return nil, err
	}
	form.Dispatch(CallableSelected{Callable: callable})

	fields := form.Fields()
	values, err := AssignArgs(fields, params.Args)
	if err != nil {
		return nil, err
	}
	for i, v := range values {
		form.Dispatch(ParamChanged{Index: i, Field: fields[i], Value: v})
	}

	if err := uc.promptBlank(ctx, form); err != nil {
		return nil, err
	}

	account, err := uc.resolveAccount(params)
	if err != nil {
		return nil, err
	}

	result := &InvokeCallableResult{Account: account}
	var mu sync.Mutex
	form.OnStatus(func(text string) {
		mu.Lock()
		result.Statuses = append(result.Statuses, text)
		mu.Unlock()
		uc.sink.Update(text)
	})

	uc.sink.Start(fmt.Sprintf("Submitting %s.%s", params.Module, callable))
	result.Submission = form.Submission()
	done := form.Submit(ctx, account)

	select {
	case <-done:
	case <-ctx.Done():
		uc.sink.Stop(domain.StatusCancelled)
		return nil, fmt.Errorf("waiting for submission: %w", ctx.Err())
	}

	result.Final = form.Status()
	uc.sink.Stop(result.Final)
	return result, nil
}

func (uc *InvokeCallable) resolveCallable(ctx context.Context, form *FormController, params InvokeCallableParams) (string, error) {
	operations := form.Operations()
	names := lo.Map(operations, func(op domain.Operation, _ int) string { return op.Name })

	if params.Callable == "" {
		if uc.cfg.NonInteractive || uc.selector == nil {
			return "", fmt.Errorf("no callable given for module %s", params.Module)
		}
		if len(operations) == 0 {
			return "", UnknownCallableErr(params.Module, "", names)
		}
		return uc.selector.SelectCallable(ctx, params.Module, operations)
	}

	if !lo.Contains(names, params.Callable) {
		return "", UnknownCallableErr(params.Module, params.Callable, names)
	}
	return params.Callable, nil
}

func (uc *InvokeCallable) promptBlank(ctx context.Context, form *FormController) error {
	if uc.cfg.NonInteractive || uc.prompter == nil {
		return nil
	}

	state := form.State()
	if !lo.SomeBy(state.InputParams, func(p domain.InputParam) bool { return p.Blank() }) {
		return nil
	}

	fields := form.Fields()
	params, err := uc.prompter.PromptParams(ctx, state.Kind, fields, state.InputParams)
	if err != nil {
		return fmt.Errorf("failed to collect parameters: %w", err)
	}
	for i, p := range params {
		if i < len(fields) && p.Value != state.InputParams[i].Value {
			form.Dispatch(ParamChanged{Index: i, Field: fields[i], Value: p.Value})
		}
	}
	return nil
}

func (uc *InvokeCallable) resolveAccount(params InvokeCallableParams) (domain.Account, error) {
	name := params.Sender
	if name == "" {
		name = uc.cfg.Sender
	}
	if name == "" {
		// Read-only calls and dry runs need no signer
		if params.Kind.ReadOnly() || uc.cfg.UsesStaticMetadata() {
			return domain.Account{}, nil
		}
		return domain.Account{}, fmt.Errorf("%w: no sender configured for %s", domain.ErrSenderNotFound, params.Kind)
	}
	return uc.accounts.Resolve(name)
}

// UnknownCallableErr builds the error for a callable missing from a module
func UnknownCallableErr(module, callable string, available []string) error {
	return domain.UnknownCallableErr{Module: module, Callable: callable, Available: available}
}

// AssignArgs maps command line arguments onto field positions.
// Arguments of the form name=value go to the named field; others fill fields in order.
func AssignArgs(fields []domain.ParamField, args []string) (map[int]string, error) {
	values := make(map[int]string, len(args))
	next := 0

	for _, arg := range args {
		if name, value, ok := strings.Cut(arg, "="); ok {
			if _, idx, found := lo.FindIndexOf(fields, func(f domain.ParamField) bool { return f.Name == name }); found {
				values[idx] = value
				continue
			}
		}

		for next < len(fields) {
			if _, taken := values[next]; !taken {
				break
			}
			next++
		}
		if next >= len(fields) {
			return nil, fmt.Errorf("%w: too many arguments (callable takes %d)", domain.ErrInvalidArgument, len(fields))
		}
		values[next] = arg
		next++
	}

	return values, nil
}
