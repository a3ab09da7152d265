package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/samber/lo"
	"github.com/trebuchet-org/treb-interact/internal/domain"
	"github.com/trebuchet-org/treb-interact/internal/usecase"
)

// CallRenderer renders the outcome of a one-shot call
type CallRenderer struct {
	out  io.Writer
	json bool
}

// NewCallRenderer creates a new call renderer
func NewCallRenderer(out io.Writer, jsonOutput bool) *CallRenderer {
	return &CallRenderer{out: out, json: jsonOutput}
}

type callJSON struct {
	Kind     domain.InteractionType `json:"kind"`
	Module   string                 `json:"module"`
	Callable string                 `json:"callable"`
	Params   map[string]string      `json:"params"`
	Sender   string                 `json:"sender,omitempty"`
	Statuses []string               `json:"statuses"`
	Status   string                 `json:"status"`
	Failed   bool                   `json:"failed"`
}

// Render renders the submitted call and the final status
func (r *CallRenderer) Render(result *usecase.InvokeCallableResult) error {
	if r.json {
		return r.renderJSON(result)
	}

	sub := result.Submission
	fmt.Fprintf(r.out, "%s %s.%s\n",
		color.New(color.Bold).Sprint(kindTitle(sub.Kind)),
		color.CyanString(sub.Module),
		color.CyanString(sub.Callable),
	)
	for i, f := range sub.ParamFields {
		value := ""
		if i < len(sub.InputParams) {
			value = sub.InputParams[i].Value
		}
		if value == "" {
			value = color.New(color.Faint).Sprint("(blank)")
		}
		fmt.Fprintf(r.out, "  %s %s = %s\n", f.Name, color.New(color.Faint).Sprint(f.Type), value)
	}
	if result.Account.Name != "" {
		fmt.Fprintf(r.out, "  sender: %s %s\n", result.Account.Name, color.New(color.Faint).Sprint(result.Account.Address))
	}
	fmt.Fprintln(r.out)

	if domain.IsFailureStatus(result.Final) {
		fmt.Fprintln(r.out, FormatError(result.Final))
		return nil
	}
	fmt.Fprintln(r.out, FormatSuccess(result.Final))
	return nil
}

func (r *CallRenderer) renderJSON(result *usecase.InvokeCallableResult) error {
	sub := result.Submission
	params := make(map[string]string, len(sub.ParamFields))
	for i, f := range sub.ParamFields {
		if i < len(sub.InputParams) {
			params[f.Name] = sub.InputParams[i].Value
		}
	}

	out := callJSON{
		Kind:     sub.Kind,
		Module:   sub.Module,
		Callable: sub.Callable,
		Params:   params,
		Sender:   result.Account.Name,
		Statuses: lo.Ternary(result.Statuses == nil, []string{}, result.Statuses),
		Status:   result.Final,
		Failed:   domain.IsFailureStatus(result.Final),
	}

	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

