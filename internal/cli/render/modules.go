package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/treb-interact/internal/usecase"
)

// ModulesRenderer renders the module list
type ModulesRenderer struct {
	out io.Writer
}

// NewModulesRenderer creates a new modules renderer
func NewModulesRenderer(out io.Writer) *ModulesRenderer {
	return &ModulesRenderer{out: out}
}

// Render renders the modules exposed by the chain client
func (r *ModulesRenderer) Render(result *usecase.ListModulesResult) error {
	if len(result.Modules) == 0 {
		fmt.Fprintln(r.out, "No modules available")
		return nil
	}

	t := newTable()
	bold := color.New(color.Bold).SprintFunc()
	t.AppendHeader(table.Row{bold("MODULE"), bold("EXTRINSICS"), bold("QUERIES")})
	for _, m := range result.Modules {
		t.AppendRow(table.Row{color.CyanString(m.Name), m.Extrinsics, m.Queries})
	}

	fmt.Fprintln(r.out, t.Render())
	return nil
}
