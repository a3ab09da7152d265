package httpapi

import (
	"github.com/trebuchet-org/treb-interact/internal/domain"
	"github.com/trebuchet-org/treb-interact/internal/usecase"
)

const (
	actionParam  = "param"
	actionSelect = "select"
	actionTab    = "tab"
)

// actionRequest is the wire form of a form action
type actionRequest struct {
	Type        string `json:"type"`
	Index       *int   `json:"index,omitempty"`
	Value       string `json:"value,omitempty"`
	Callable    string `json:"callable,omitempty"`
	ActiveIndex *int   `json:"activeIndex,omitempty"`
}

// toAction converts a request into a form action.
// It returns false for requests that don't describe a recognised action.
func (r actionRequest) toAction(form *usecase.FormController) (usecase.FormAction, bool) {
	switch r.Type {
	case actionParam:
		fields := form.Fields()
		if r.Index == nil || *r.Index < 0 || *r.Index >= len(fields) {
			return nil, false
		}
		return usecase.ParamChanged{Index: *r.Index, Field: fields[*r.Index], Value: r.Value}, true
	case actionSelect:
		if r.Callable == "" || !hasOperation(form.Operations(), r.Callable) {
			return nil, false
		}
		return usecase.CallableSelected{Callable: r.Callable}, true
	case actionTab:
		ops := form.Operations()
		if r.ActiveIndex == nil || *r.ActiveIndex < 0 || *r.ActiveIndex >= len(ops) {
			return nil, false
		}
		return usecase.CallableSelected{Callable: ops[*r.ActiveIndex].Name}, true
	}
	return nil, false
}

func hasOperation(ops []domain.Operation, name string) bool {
	for _, op := range ops {
		if op.Name == name {
			return true
		}
	}
	return false
}

// sessionView is the JSON representation of a session
type sessionView struct {
	ID           string                 `json:"id"`
	Kind         domain.InteractionType `json:"kind"`
	Module       string                 `json:"module"`
	Callable     string                 `json:"callable"`
	OptionalHint string                 `json:"optionalHint"`
	Operations   []domain.Operation     `json:"operations"`
	Fields       []domain.ParamField    `json:"fields"`
	InputParams  []domain.InputParam    `json:"inputParams"`
	Status       string                 `json:"status"`
}

func newSessionView(s *session) sessionView {
	state := s.form.State()
	return sessionView{
		ID:           s.id,
		Kind:         state.Kind,
		Module:       state.Module,
		Callable:     state.Callable,
		OptionalHint: s.form.OptionalHint(),
		Operations:   nonNil(s.form.Operations()),
		Fields:       nonNil(s.form.Fields()),
		InputParams:  nonNil(state.InputParams),
		Status:       s.form.Status(),
	}
}

// nonNil keeps empty lists encoding as [] rather than null
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
