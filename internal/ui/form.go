package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dperrin/hostbook/internal/model"
)

// Field indices for the add-profile form.
const (
	fieldAlias = iota
	fieldHostname
	fieldUser
	fieldPort
	fieldCount
)

// formResult is returned when the user completes the form.
type formResult struct {
	profile model.Profile
}

// addForm holds all state for the "new profile" form.
type addForm struct {
	fields   []textinput.Model
	focusIdx int
	errMsg   string
}

var formLabels = [fieldCount]string{"Alias", "Hostname", "User", "Port"}

// newAddForm creates an initialized form with focus on the alias field.
func newAddForm() *addForm {
	placeholders := []string{
		"my-server (required)",
		"192.168.1.1 or example.com (required)",
		"deploy (optional)",
		"22 (optional)",
	}
	limits := []int{64, 256, 64, 6}

	f := &addForm{fields: make([]textinput.Model, fieldCount)}
	for i := range f.fields {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = limits[i]
		ti.Width = 40
		f.fields[i] = ti
	}
	f.fields[fieldAlias].Focus()
	return f
}

// update processes a key message and returns a formResult if the form is
// complete, or a nil result while editing continues.
func (f *addForm) update(msg tea.KeyMsg) (*formResult, tea.Cmd) {
	switch msg.String() {
	case "tab", "down", "enter":
		if msg.String() == "enter" && f.focusIdx == fieldCount-1 {
			return f.submit()
		}
		f.setFocus((f.focusIdx + 1) % fieldCount)
		return nil, nil
	case "shift+tab", "up":
		f.setFocus((f.focusIdx + fieldCount - 1) % fieldCount)
		return nil, nil
	case "ctrl+s":
		return f.submit()
	}
	var cmd tea.Cmd
	f.fields[f.focusIdx], cmd = f.fields[f.focusIdx].Update(msg)
	return nil, cmd
}

func (f *addForm) submit() (*formResult, tea.Cmd) {
	p := model.Profile{
		Alias:    strings.TrimSpace(f.fields[fieldAlias].Value()),
		HostName: strings.TrimSpace(f.fields[fieldHostname].Value()),
		User:     strings.TrimSpace(f.fields[fieldUser].Value()),
		Port:     strings.TrimSpace(f.fields[fieldPort].Value()),
	}
	if p.Alias == "" {
		f.errMsg = "alias is required"
		f.setFocus(fieldAlias)
		return nil, nil
	}
	if p.HostName == "" {
		f.errMsg = "hostname is required"
		f.setFocus(fieldHostname)
		return nil, nil
	}
	return &formResult{profile: p}, nil
}

func (f *addForm) setFocus(idx int) {
	f.fields[f.focusIdx].Blur()
	f.focusIdx = idx
	f.fields[f.focusIdx].Focus()
}

func (f *addForm) view() string {
	var b strings.Builder
	b.WriteString("New profile (Enter on last field or Ctrl+S to save, Esc to cancel)\n\n")
	for i, ti := range f.fields {
		marker := "  "
		if i == f.focusIdx {
			marker = "> "
		}
		b.WriteString(marker)
		b.WriteString(lipgloss.NewStyle().Width(10).Render(formLabels[i] + ":"))
		b.WriteString(ti.View())
		b.WriteString("\n")
	}
	if f.errMsg != "" {
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(f.errMsg) + "\n")
	}
	return b.String()
}
