package usecase

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/trebuchet-org/treb-interact/internal/domain"
)

// FormAction is a user action applied to a call form.
// The set of actions is closed; see ParamChanged and CallableSelected.
type FormAction interface {
	formAction()
}

// ParamChanged sets the value of the field at Index
type ParamChanged struct {
	Index int
	Field domain.ParamField
	Value string
}

// CallableSelected switches the form to another callable
type CallableSelected struct {
	Callable string
}

func (ParamChanged) formAction()     {}
func (CallableSelected) formAction() {}

// ReduceForm applies an action to a form state and returns the next state.
// Unrecognised actions return the state unchanged.
func ReduceForm(state domain.FormState, action FormAction) domain.FormState {
	switch a := action.(type) {
	case ParamChanged:
		if a.Index < 0 {
			return state
		}
		next := state.Clone()
		for len(next.InputParams) <= a.Index {
			next.InputParams = append(next.InputParams, domain.InputParam{})
		}
		next.InputParams[a.Index] = domain.InputParam{Type: a.Field.Type, Value: a.Value}
		return next
	case CallableSelected:
		next := state.Clone()
		next.Callable = a.Callable
		next.InputParams = []domain.InputParam{}
		return next
	default:
		return state
	}
}

// FormController holds the state of one call form and keeps its fields derived from metadata
type FormController struct {
	introspector *MetadataIntrospector
	submitter    Submitter
	log          *slog.Logger

	mu         sync.RWMutex
	state      domain.FormState
	operations []domain.Operation
	fields     []domain.ParamField
	status     string
	listeners  []StatusFunc
}

// NewFormController creates a controller for a module with an empty selection
func NewFormController(introspector *MetadataIntrospector, submitter Submitter, module string, log *slog.Logger) *FormController {
	c := &FormController{
		introspector: introspector,
		submitter:    submitter,
		log:          log,
		state: domain.FormState{
			Kind:        introspector.Kind(),
			Module:      module,
			InputParams: []domain.InputParam{},
		},
	}
	c.Refresh()
	return c
}

// Refresh re-reads operations and fields, e.g. after the chain client connects
func (c *FormController) Refresh() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.operations = c.introspector.ListOperations(c.state.Module)
	c.deriveFields()
}

// Dispatch applies an action. It returns false when the action was ignored.
func (c *FormController) Dispatch(action FormAction) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch a := action.(type) {
	case ParamChanged:
		if a.Index < 0 || a.Index >= len(c.fields) {
			c.log.Debug("ignoring param change outside field list", "index", a.Index, "fields", len(c.fields))
			return false
		}
		c.state = ReduceForm(c.state, a)
	case CallableSelected:
		c.state = ReduceForm(c.state, a)
		c.deriveFields()
		c.log.Debug("callable selected", "module", c.state.Module, "callable", c.state.Callable, "fields", len(c.fields))
	default:
		return false
	}
	return true
}

// deriveFields recomputes fields from the current selection and sizes the values to match.
// Must be called with mu held.
func (c *FormController) deriveFields() {
	fields := c.introspector.ListParameters(c.state.Module, c.state.Callable)

	params := make([]domain.InputParam, len(fields))
	for i, f := range fields {
		params[i] = domain.InputParam{Type: f.Type}
		if i < len(c.state.InputParams) && len(fields) == len(c.fields) {
			params[i].Value = c.state.InputParams[i].Value
		}
	}

	c.fields = fields
	c.state.InputParams = params
}

// State returns a copy of the current form state
func (c *FormController) State() domain.FormState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.Clone()
}

// Operations returns the sorted callables of the module
func (c *FormController) Operations() []domain.Operation {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.operations)
}

// Fields returns the parameter fields of the selected callable
func (c *FormController) Fields() []domain.ParamField {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.fields)
}

// OptionalHint returns the label for optional fields of this form
func (c *FormController) OptionalHint() string {
	return domain.OptionalHint(c.introspector.Kind())
}

// Status returns the last status text reported by the submitter
func (c *FormController) Status() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.status
}

// OnStatus registers a listener called for every status update
func (c *FormController) OnStatus(fn StatusFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

// Submission packages the current state for a submitter
func (c *FormController) Submission() domain.Submission {
	c.mu.RLock()
	defer c.mu.RUnlock()

	state := c.state.Clone()
	return domain.Submission{
		Kind:        state.Kind,
		Module:      state.Module,
		Callable:    state.Callable,
		InputParams: state.InputParams,
		ParamFields: slices.Clone(c.fields),
	}
}

// Submit hands the assembled call to the submitter without waiting for the outcome.
// The returned channel closes when the submitter is done reporting.
func (c *FormController) Submit(ctx context.Context, account domain.Account) <-chan struct{} {
	submission := c.Submission()
	c.log.Info("submitting call",
		"kind", submission.Kind,
		"module", submission.Module,
		"callable", submission.Callable,
		"account", account.Name,
	)
	return c.submitter.Submit(ctx, submission, account, c.setStatus)
}

func (c *FormController) setStatus(text string) {
	c.mu.Lock()
	c.status = text
	listeners := slices.Clone(c.listeners)
	c.mu.Unlock()

	for _, fn := range listeners {
		fn(text)
	}
}
