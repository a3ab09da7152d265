package domain

import "strings"

// InteractionType identifies how an assembled call is dispatched
type InteractionType string

const (
	// InteractionExtrinsic is a state-changing call submitted to the chain
	InteractionExtrinsic InteractionType = "EXTRINSIC"
	// InteractionQuery is a read-only call against chain state
	InteractionQuery InteractionType = "QUERY"
	// InteractionRPC is a read-only call routed through the node RPC
	InteractionRPC InteractionType = "RPC"
)

// OptionalTypePrefix marks a declared type as an optional wrapper
const OptionalTypePrefix = "Option<"

const (
	optionalQueryHint     = "Optional Parameter"
	optionalExtrinsicHint = "Leaving this field as blank will submit a NONE value"
)

// ParseInteractionType parses a case-insensitive interaction type name
func ParseInteractionType(s string) (InteractionType, bool) {
	switch InteractionType(strings.ToUpper(strings.TrimSpace(s))) {
	case InteractionExtrinsic:
		return InteractionExtrinsic, true
	case InteractionQuery:
		return InteractionQuery, true
	case InteractionRPC:
		return InteractionRPC, true
	}
	return "", false
}

// InteractionTypes lists the supported interaction types
func InteractionTypes() []InteractionType {
	return []InteractionType{InteractionExtrinsic, InteractionQuery, InteractionRPC}
}

// ReadOnly reports whether calls of this type leave chain state untouched
func (t InteractionType) ReadOnly() bool {
	return t == InteractionQuery || t == InteractionRPC
}

// OptionalHint returns the label shown next to optional parameters
func OptionalHint(t InteractionType) string {
	if t.ReadOnly() {
		return optionalQueryHint
	}
	return optionalExtrinsicHint
}

// IsOptionalType reports whether a declared type string is an optional wrapper.
// This is a textual prefix check, not a structural parse of the type.
func IsOptionalType(declaredType string) bool {
	return strings.HasPrefix(declaredType, OptionalTypePrefix)
}

// Operation identifies one invocable entry point on a module
type Operation struct {
	Name string `json:"name"`
}

// ArgMetadata is a raw argument entry as exposed by a chain client
type ArgMetadata struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// ParamField describes one input field derived from operation metadata
type ParamField struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Optional bool   `json:"optional"`
}

// NewParamField derives a field from raw argument metadata
func NewParamField(arg ArgMetadata) ParamField {
	return ParamField{
		Name:     arg.Name,
		Type:     arg.Type,
		Optional: IsOptionalType(arg.Type),
	}
}

// InputParam is the current value of one field
type InputParam struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Blank reports whether no value has been entered
func (p InputParam) Blank() bool {
	return strings.TrimSpace(p.Value) == ""
}

// FormState is the mutable part of a call form
type FormState struct {
	Kind        InteractionType `json:"kind"`
	Module      string          `json:"module"`
	Callable    string          `json:"callable"`
	InputParams []InputParam    `json:"inputParams"`
}

// Clone returns a deep copy of the state
func (s FormState) Clone() FormState {
	out := s
	if s.InputParams != nil {
		out.InputParams = make([]InputParam, len(s.InputParams))
		copy(out.InputParams, s.InputParams)
	}
	return out
}

// Submission is the assembled call handed to a submitter
type Submission struct {
	Kind        InteractionType `json:"kind"`
	Module      string          `json:"module"`
	Callable    string          `json:"callable"`
	InputParams []InputParam    `json:"inputParams"`
	ParamFields []ParamField    `json:"paramFields"`
}

// Account is the identity a submission is made on behalf of
type Account struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}
