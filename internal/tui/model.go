// Package tui is the interactive vault page: a form for a new entry with
// password generation, and the user's entries filtered by a search box.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/genvault/genvault-go/internal/viewmodel"
)

// Input order is also the tab order.
const (
	inputSite = iota
	inputLink
	inputPassword
	inputLetters
	inputNumbers
	inputSymbols
	inputSearch
	inputCount
)

var countNames = map[int]string{
	inputLetters: "letters",
	inputNumbers: "numbers",
	inputSymbols: "symbols",
}

// Results of remote operations started from the page.
type (
	refreshedMsg struct{ err error }
	savedMsg     struct{ err error }
	generatedMsg struct{ err error }
)

// Model is the bubbletea model of the vault page. All vault state lives in
// the view model; the inputs mirror it.
type Model struct {
	ctx    context.Context
	vm     *viewmodel.VaultViewModel
	userID string

	inputs  []textinput.Model
	focus   int
	spinner spinner.Model

	// errText is the last non-save failure; notice is a transient hint
	// such as a clipboard confirmation.
	errText string
	notice  string

	copy func(string) error
}

// New builds the page for userID. ctx bounds every remote call the page makes.
func New(ctx context.Context, vm *viewmodel.VaultViewModel, userID string) Model {
	m := Model{
		ctx:     ctx,
		vm:      vm,
		userID:  userID,
		inputs:  make([]textinput.Model, inputCount),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(focusedStyle)),
		copy:    clipboard.WriteAll,
	}

	opts := vm.Options()
	for i := range m.inputs {
		t := textinput.New()
		t.Cursor.Style = focusedStyle
		t.Width = 40

		switch i {
		case inputSite:
			t.Prompt = "Site Name: "
			t.Placeholder = "Site Name"
			t.CharLimit = 255
		case inputLink:
			t.Prompt = "URL:       "
			t.Placeholder = "https://example.com"
			t.CharLimit = 2048
		case inputPassword:
			t.Prompt = "Password:  "
			t.Placeholder = "Password"
			t.CharLimit = 255
		case inputLetters:
			t.Prompt = "Letters: "
			t.SetValue(strconv.Itoa(opts.Letters))
			t.CharLimit = 3
			t.Width = 4
		case inputNumbers:
			t.Prompt = "Numbers: "
			t.SetValue(strconv.Itoa(opts.Numbers))
			t.CharLimit = 3
			t.Width = 4
		case inputSymbols:
			t.Prompt = "Symbols: "
			t.SetValue(strconv.Itoa(opts.Symbols))
			t.CharLimit = 3
			t.Width = 4
		case inputSearch:
			t.Prompt = "Search:    "
			t.Placeholder = "Search by site name..."
			t.CharLimit = 255
		}
		m.inputs[i] = t
	}

	m.inputs[inputSite].Focus()
	m.inputs[inputSite].TextStyle = focusedStyle
	m.syncDraftInputs()

	return m
}

// Run shows the page until the user quits or ctx is cancelled.
func Run(ctx context.Context, vm *viewmodel.VaultViewModel, userID string) error {
	p := tea.NewProgram(New(ctx, vm, userID), tea.WithContext(ctx), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init loads the user's entries as soon as the page opens.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick, m.refresh())
}

func (m Model) refresh() tea.Cmd {
	return func() tea.Msg {
		return refreshedMsg{err: m.vm.Refresh(m.ctx, m.userID)}
	}
}

func (m Model) save() tea.Cmd {
	return func() tea.Msg {
		return savedMsg{err: m.vm.Save(m.ctx, m.userID)}
	}
}

func (m Model) generate() tea.Cmd {
	return func() tea.Msg {
		return generatedMsg{err: m.vm.GeneratePassword(m.ctx)}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c":
			return m, tea.Quit
		case "tab", "shift+tab":
			if msg.String() == "tab" {
				m.focus = (m.focus + 1) % inputCount
			} else {
				m.focus = (m.focus + inputCount - 1) % inputCount
			}
			return m, m.focusInputs()
		case "ctrl+g":
			m.notice = ""
			return m, m.generate()
		case "ctrl+s":
			m.notice = ""
			return m, m.save()
		case "ctrl+r":
			m.notice = ""
			return m, m.refresh()
		case "ctrl+y":
			m.copyPassword()
			return m, nil
		}

	case refreshedMsg:
		m.setError(msg.err)
		return m, nil

	case savedMsg:
		// A failed save is reported by the status line.
		if op, ok := viewmodel.FailedOp(msg.err); ok && op == viewmodel.OpSave {
			m.errText = ""
		} else {
			m.setError(msg.err)
		}
		m.syncDraftInputs()
		return m, nil

	case generatedMsg:
		m.setError(msg.err)
		if msg.err == nil {
			m.inputs[inputPassword].SetValue(m.vm.Draft().Password)
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if _, ok := msg.(tea.KeyMsg); ok {
		m.pushInput(m.focus)
	}
	return m, cmd
}

// pushInput copies the value of input i into the view model.
func (m *Model) pushInput(i int) {
	value := m.inputs[i].Value()

	switch i {
	case inputSite:
		_ = m.vm.UpdateDraftField(viewmodel.FieldSiteName, value)
	case inputLink:
		_ = m.vm.UpdateDraftField(viewmodel.FieldLink, value)
	case inputPassword:
		_ = m.vm.UpdateDraftField(viewmodel.FieldPassword, value)
	case inputLetters, inputNumbers, inputSymbols:
		n, err := parseCount(value)
		if err != nil {
			m.errText = fmt.Sprintf("%s must be a whole number", countNames[i])
			return
		}
		switch i {
		case inputLetters:
			m.vm.SetLetters(n)
		case inputNumbers:
			m.vm.SetNumbers(n)
		default:
			m.vm.SetSymbols(n)
		}
	case inputSearch:
		m.vm.SetSearchTerm(value)
	}
}

// parseCount reads a class count; an empty box counts as zero.
func parseCount(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

// syncDraftInputs shows the view model's draft in the form inputs.
func (m *Model) syncDraftInputs() {
	d := m.vm.Draft()
	m.inputs[inputSite].SetValue(d.SiteName)
	m.inputs[inputLink].SetValue(d.Link)
	m.inputs[inputPassword].SetValue(d.Password)
}

func (m *Model) focusInputs() tea.Cmd {
	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		if i == m.focus {
			cmds[i] = m.inputs[i].Focus()
			m.inputs[i].TextStyle = focusedStyle
			continue
		}
		m.inputs[i].Blur()
		m.inputs[i].TextStyle = lipgloss.NewStyle()
	}
	return tea.Batch(cmds...)
}

func (m *Model) setError(err error) {
	if err == nil {
		m.errText = ""
		return
	}
	m.errText = err.Error()
}

func (m *Model) copyPassword() {
	password := m.vm.Draft().Password
	if password == "" {
		m.notice = "Nothing to copy."
		return
	}
	if err := m.copy(password); err != nil {
		m.errText = fmt.Sprintf("copy to clipboard: %v", err)
		return
	}
	m.notice = "Password copied to clipboard."
}
