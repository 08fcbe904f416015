package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/genvault/genvault-go/internal/viewmodel"
)

const helpText = "tab/shift+tab: move • ctrl+g: generate • ctrl+s: save • ctrl+r: refresh • ctrl+y: copy password • esc: quit"

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Password Generator & Vault · " + m.userID))
	b.WriteString("\n")

	for _, i := range []int{inputSite, inputLink, inputPassword} {
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		m.inputs[inputLetters].View(), "   ",
		m.inputs[inputNumbers].View(), "   ",
		m.inputs[inputSymbols].View(),
	))
	b.WriteString("\n\n")

	b.WriteString(m.statusLine())
	b.WriteString("\n")
	if m.errText != "" {
		b.WriteString(errorStyle.Render(m.errText))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Saved Passwords"))
	b.WriteString("\n")
	b.WriteString(m.inputs[inputSearch].View())
	b.WriteString("\n\n")

	entries := m.vm.FilteredEntries()
	if len(entries) == 0 {
		b.WriteString(helpStyle.Render("No entries."))
		b.WriteString("\n")
	}
	for _, e := range entries {
		card := lipgloss.JoinVertical(lipgloss.Left,
			siteStyle.Render(e.SiteName),
			linkStyle.Render(e.Link),
			secretStyle.Render(e.Password),
		)
		b.WriteString(entryStyle.Render(card))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render(helpText))
	return b.String()
}

func (m Model) statusLine() string {
	var parts []string
	if m.vm.InFlight() > 0 {
		parts = append(parts, m.spinner.View())
	}

	switch status := m.vm.Status(); status {
	case viewmodel.StatusSaved:
		parts = append(parts, successStyle.Render(status.Message()))
	case viewmodel.StatusSaveFailed:
		parts = append(parts, failureStyle.Render(status.Message()))
	}

	if m.notice != "" {
		parts = append(parts, helpStyle.Render(m.notice))
	}
	return strings.Join(parts, " ")
}
