package interactive

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
	"github.com/trebuchet-org/treb-interact/internal/domain"
	"github.com/trebuchet-org/treb-interact/internal/usecase"
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	tabStyle       = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("8"))
	activeTabStyle = lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("14"))
	focusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	labelStyle     = lipgloss.NewStyle().Bold(true)
	placeholder    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	hintStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Border(lipgloss.NormalBorder(), false, false, false, true).PaddingLeft(1)
	buttonStyle    = lipgloss.NewStyle().Padding(0, 2).Border(lipgloss.RoundedBorder())
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

type connectedMsg struct {
	err error
}

type statusMsg string

// formModel is the bubbletea model rendering one call form
type formModel struct {
	ctx     context.Context
	form    *usecase.FormController
	connect func(ctx context.Context) error
	account domain.Account

	connected bool
	connErr   error

	// focus 0 is the callable dropdown, 1..n the fields, n+1 the submit control
	focus int

	dropdownOpen bool
	filter       string
	cursor       int

	status string
	done   bool
}

func newFormModel(ctx context.Context, form *usecase.FormController, connect func(ctx context.Context) error, account domain.Account) formModel {
	return formModel{
		ctx:     ctx,
		form:    form,
		connect: connect,
		account: account,
	}
}

// Init connects the chain client in the background
func (m formModel) Init() tea.Cmd {
	ctx, connect := m.ctx, m.connect
	return func() tea.Msg {
		return connectedMsg{err: connect(ctx)}
	}
}

// Update handles messages and updates the model
func (m formModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case connectedMsg:
		m.connErr = msg.err
		m.connected = msg.err == nil
		m.form.Refresh()
		return m, nil
	case statusMsg:
		m.status = string(msg)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m formModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.done = true
		return m, tea.Quit
	}
	if m.dropdownOpen {
		return m.handleDropdownKeys(msg)
	}

	switch msg.String() {
	case "esc":
		m.done = true
		return m, tea.Quit
	case "tab", "down":
		m.focus = (m.focus + 1) % m.focusCount()
		return m, nil
	case "shift+tab", "up":
		m.focus = (m.focus - 1 + m.focusCount()) % m.focusCount()
		return m, nil
	}

	fields := m.form.Fields()
	switch {
	case m.focus == 0:
		return m.handleSelectorKeys(msg)
	case m.focus <= len(fields):
		return m.handleFieldKeys(msg, m.focus-1, fields[m.focus-1])
	default:
		if msg.String() == "enter" {
			m.form.Submit(m.ctx, m.account)
		}
		return m, nil
	}
}

// handleSelectorKeys drives the dropdown (enter) and the tab strip (left/right)
func (m formModel) handleSelectorKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ops := m.form.Operations()
	switch msg.String() {
	case "enter", " ":
		if len(ops) > 0 {
			m.dropdownOpen = true
			m.filter = ""
			m.cursor = 0
		}
	case "left", "h":
		m.selectTab(m.activeTab() - 1)
	case "right", "l":
		m.selectTab(m.activeTab() + 1)
	}
	return m, nil
}

func (m formModel) handleDropdownKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	options := m.filteredOptions()
	switch msg.Type {
	case tea.KeyEsc:
		m.dropdownOpen = false
	case tea.KeyUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case tea.KeyDown:
		if m.cursor < len(options)-1 {
			m.cursor++
		}
	case tea.KeyEnter:
		if m.cursor < len(options) {
			m.form.Dispatch(usecase.CallableSelected{Callable: options[m.cursor]})
		}
		m.dropdownOpen = false
	case tea.KeyBackspace:
		if len(m.filter) > 0 {
			m.filter = trimLastRune(m.filter)
			m.cursor = 0
		}
	case tea.KeyRunes, tea.KeySpace:
		m.filter += string(msg.Runes)
		m.cursor = 0
	}
	return m, nil
}

func (m formModel) handleFieldKeys(msg tea.KeyMsg, index int, field domain.ParamField) (tea.Model, tea.Cmd) {
	state := m.form.State()
	value := ""
	if index < len(state.InputParams) {
		value = state.InputParams[index].Value
	}

	switch msg.Type {
	case tea.KeyBackspace:
		if len(value) == 0 {
			return m, nil
		}
		value = trimLastRune(value)
	case tea.KeyCtrlU:
		value = ""
	case tea.KeyEnter:
		m.focus = (m.focus + 1) % m.focusCount()
		return m, nil
	case tea.KeyRunes, tea.KeySpace:
		value += string(msg.Runes)
	default:
		return m, nil
	}

	m.form.Dispatch(usecase.ParamChanged{Index: index, Field: field, Value: value})
	return m, nil
}

func trimLastRune(s string) string {
	_, size := utf8.DecodeLastRuneInString(s)
	return s[:len(s)-size]
}

// selectTab selects the callable at a tab index. Out of range indexes are ignored.
func (m formModel) selectTab(index int) {
	ops := m.form.Operations()
	if index < 0 || index >= len(ops) {
		return
	}
	m.form.Dispatch(usecase.CallableSelected{Callable: ops[index].Name})
}

func (m formModel) activeTab() int {
	callable := m.form.State().Callable
	for i, op := range m.form.Operations() {
		if op.Name == callable {
			return i
		}
	}
	return -1
}

func (m formModel) focusCount() int {
	return len(m.form.Fields()) + 2
}

// filteredOptions returns callable names matching the dropdown filter, in display order
func (m formModel) filteredOptions() []string {
	names := operationNames(m.form.Operations())
	if m.filter == "" {
		return names
	}

	matches := fuzzy.Find(m.filter, names)
	indexes := make([]int, len(matches))
	for i, match := range matches {
		indexes[i] = match.Index
	}
	sort.Ints(indexes)

	out := make([]string, len(indexes))
	for i, idx := range indexes {
		out[i] = names[idx]
	}
	return out
}

// View renders the UI
func (m formModel) View() string {
	if m.done {
		return ""
	}

	state := m.form.State()
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s %s", state.Module, strings.ToLower(string(state.Kind)))))
	b.WriteString("\n\n")

	switch {
	case m.connErr != nil:
		b.WriteString(errorStyle.Render(fmt.Sprintf("Connection failed: %v", m.connErr)))
		b.WriteString("\n")
	case !m.connected:
		b.WriteString(placeholder.Render("Connecting..."))
		b.WriteString("\n")
	}

	b.WriteString(m.renderSelector(state))
	b.WriteString(m.renderFields(state))
	b.WriteString("\n")

	button := buttonStyle.Render("Submit")
	if m.focus == m.focusCount()-1 {
		button = buttonStyle.BorderForeground(lipgloss.Color("14")).Render("Submit")
	}
	b.WriteString(button)
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab/↑/↓: move  enter: open/select/submit  ←/→: switch callable  esc: quit"))
	b.WriteString("\n")
	return b.String()
}

func (m formModel) renderSelector(state domain.FormState) string {
	var b strings.Builder

	label := labelStyle.Render("Callable")
	if m.focus == 0 {
		label = focusStyle.Render("▸ ") + label
	}
	value := state.Callable
	if value == "" {
		value = placeholder.Render("Callables")
	}
	b.WriteString(fmt.Sprintf("%s  %s\n", label, value))

	if m.dropdownOpen {
		b.WriteString(fmt.Sprintf("  search: %s\n", m.filter))
		for i, name := range m.filteredOptions() {
			cursor := "  "
			if i == m.cursor {
				cursor = focusStyle.Render("▸ ")
			}
			b.WriteString(fmt.Sprintf("  %s%s\n", cursor, name))
		}
	}

	ops := m.form.Operations()
	if len(ops) > 0 {
		tabs := make([]string, len(ops))
		for i, op := range ops {
			if op.Name == state.Callable {
				tabs[i] = activeTabStyle.Render(op.Name)
			} else {
				tabs[i] = tabStyle.Render(op.Name)
			}
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}

func (m formModel) renderFields(state domain.FormState) string {
	var b strings.Builder
	for i, field := range m.form.Fields() {
		label := labelStyle.Render(field.Name)
		if m.focus == i+1 {
			label = focusStyle.Render("▸ ") + label
		}

		value := ""
		if i < len(state.InputParams) {
			value = state.InputParams[i].Value
		}
		if value == "" {
			value = placeholder.Render(field.Type)
		}
		b.WriteString(fmt.Sprintf("%s  %s\n", label, value))

		if field.Optional {
			b.WriteString(hintStyle.Render(m.form.OptionalHint()))
			b.WriteString("\n")
		}
	}
	return b.String()
}
