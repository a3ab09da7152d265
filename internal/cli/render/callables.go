package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"github.com/trebuchet-org/treb-interact/internal/domain"
	"github.com/trebuchet-org/treb-interact/internal/usecase"
)

// CallablesRenderer renders a module's callables and their parameters
type CallablesRenderer struct {
	out io.Writer
}

// NewCallablesRenderer creates a new callables renderer
func NewCallablesRenderer(out io.Writer) *CallablesRenderer {
	return &CallablesRenderer{out: out}
}

// Render renders one row per parameter, grouped by callable
func (r *CallablesRenderer) Render(result *usecase.DescribeCallablesResult) error {
	heading := fmt.Sprintf("%s %ss", result.Module, kindTitle(result.Kind))
	fmt.Fprintln(r.out, color.New(color.Bold).Sprint(heading))

	if len(result.Callables) == 0 {
		fmt.Fprintln(r.out, "  No callables")
		return nil
	}

	t := newTable()
	bold := color.New(color.Bold).SprintFunc()
	t.AppendHeader(table.Row{bold("CALLABLE"), bold("PARAMETER"), bold("TYPE"), ""})

	for _, c := range result.Callables {
		if len(c.Fields) == 0 {
			t.AppendRow(table.Row{color.CyanString(c.Name), color.New(color.Faint).Sprint("(none)"), "", ""})
			continue
		}
		for i, f := range c.Fields {
			name := ""
			if i == 0 {
				name = color.CyanString(c.Name)
			}
			t.AppendRow(table.Row{name, f.Name, f.Type, optionalNote(f, result.OptionalHint)})
		}
	}

	fmt.Fprintln(r.out, t.Render())

	optional := lo.CountBy(result.Callables, func(c usecase.CallableInfo) bool {
		return lo.SomeBy(c.Fields, func(f domain.ParamField) bool { return f.Optional })
	})
	if optional > 0 {
		fmt.Fprintf(r.out, "\n%d callable(s) take optional parameters\n", optional)
	}
	return nil
}

func optionalNote(f domain.ParamField, hint string) string {
	if !f.Optional {
		return ""
	}
	return color.YellowString(hint)
}
