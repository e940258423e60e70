// Package ui implements the interactive profile browser launched when
// hostbook runs without a subcommand.
package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dperrin/hostbook/internal/model"
	"github.com/dperrin/hostbook/internal/profile"
	"github.com/dperrin/hostbook/internal/util"
)

type modelUI struct {
	store      *profile.Store
	profiles   []model.Profile
	filtered   []model.Profile
	sel        int
	filter     string
	filterMode bool
	showHelp   bool
	status     string
	width      int
	height     int

	form          *addForm
	pendingDelete string
}

func initialModel(store *profile.Store) modelUI {
	m := modelUI{store: store}
	m.reload()
	m.status = "Ready. a adds a profile, d removes the selected one."
	return m
}

func (m *modelUI) reload() {
	profiles, err := m.store.List()
	if err != nil {
		m.status = "load error: " + err.Error()
		return
	}
	m.profiles = profiles
	m.applyFilter()
}

func (m *modelUI) applyFilter() {
	if strings.TrimSpace(m.filter) == "" {
		m.filtered = append([]model.Profile(nil), m.profiles...)
	} else {
		f := strings.ToLower(strings.TrimSpace(m.filter))
		m.filtered = nil
		for _, p := range m.profiles {
			if strings.Contains(strings.ToLower(p.Alias), f) || strings.Contains(strings.ToLower(p.DisplayTarget()), f) {
				m.filtered = append(m.filtered, p)
			}
		}
	}
	if m.sel >= len(m.filtered) {
		m.sel = len(m.filtered) - 1
	}
	if m.sel < 0 {
		m.sel = 0
	}
}

func (m modelUI) Init() tea.Cmd {
	return nil
}

func (m modelUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if m.form != nil {
			return m.updateForm(msg)
		}
		if m.pendingDelete != "" {
			return m.updateConfirm(msg)
		}
		if m.filterMode {
			return m.updateFilter(msg)
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "j", "down":
			if m.sel < len(m.filtered)-1 {
				m.sel++
			}
		case "k", "up":
			if m.sel > 0 {
				m.sel--
			}
		case "/":
			m.filterMode = true
			m.status = "Filter mode: type and press Enter"
		case "?":
			m.showHelp = !m.showHelp
		case "r":
			m.reload()
			m.status = "Reloaded " + m.store.Path()
		case "a":
			m.form = newAddForm()
		case "d":
			if len(m.filtered) == 0 {
				break
			}
			m.pendingDelete = m.filtered[m.sel].Alias
			m.status = fmt.Sprintf("Remove profile %q? (y/n)", m.pendingDelete)
		}
	}
	return m, nil
}

func (m modelUI) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		m.form = nil
		m.status = "Add cancelled"
		return m, nil
	}
	res, cmd := m.form.update(msg)
	if res == nil {
		return m, cmd
	}
	if err := m.store.Add(res.profile); err != nil {
		m.form.errMsg = err.Error()
		return m, nil
	}
	m.form = nil
	m.reload()
	m.status = fmt.Sprintf("Added profile %q", res.profile.Alias)
	return m, nil
}

func (m modelUI) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	alias := m.pendingDelete
	m.pendingDelete = ""
	switch msg.String() {
	case "y", "Y":
		if err := m.store.Remove(alias); err != nil {
			m.status = "Remove failed: " + err.Error()
			return m, nil
		}
		m.reload()
		m.status = fmt.Sprintf("Removed profile %q", alias)
	default:
		m.status = "Remove cancelled"
	}
	return m, nil
}

func (m modelUI) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.filterMode = false
		m.applyFilter()
	case "backspace":
		if len(m.filter) > 0 {
			m.filter = m.filter[:len(m.filter)-1]
		}
		m.applyFilter()
	default:
		if len(msg.String()) == 1 {
			m.filter += msg.String()
			m.applyFilter()
		}
	}
	return m, nil
}

func (m modelUI) View() string {
	head := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).Render("Hostbook")
	subhead := fmt.Sprintf("file=%s profiles=%d shown=%d", m.store.Path(), len(m.profiles), len(m.filtered))

	if m.form != nil {
		return lipgloss.JoinVertical(lipgloss.Left, head, subhead,
			m.renderPanel("Add Profile", m.form.view(), m.effectiveWidth(), lipgloss.Color("69")))
	}

	list := strings.Builder{}
	for i, p := range m.filtered {
		cursor := " "
		if i == m.sel {
			cursor = ">"
		}
		list.WriteString(fmt.Sprintf("%s %-22s %-24s\n", cursor, p.Alias, p.DisplayTarget()))
	}
	if len(m.filtered) == 0 {
		list.WriteString("  (no profiles matched)\n")
	}

	detail := strings.Builder{}
	if len(m.filtered) > 0 {
		p := m.filtered[m.sel]
		detail.WriteString(fmt.Sprintf("Alias: %s\nHost: %s\nUser: %s\nPort: %s\n",
			p.Alias, p.DisplayTarget(), util.EmptyDash(p.User), util.EmptyDash(p.Port)))
	} else {
		detail.WriteString("No profile selected. Press a to add one.\n")
	}

	filterLine := fmt.Sprintf("Filter: %s", m.filter)
	if m.filterMode {
		filterLine += " (typing...)"
	}
	quickHelp := "Keys: a add | d remove | / filter | r reload | ? help | q quit"

	main := m.renderMainPanels(list.String(), detail.String())
	status := m.renderPanel("Status", m.status, m.effectiveWidth(), lipgloss.Color("205"))
	help := ""
	if m.showHelp {
		help = m.renderPanel("Help", m.helpBlock(), m.effectiveWidth(), lipgloss.Color("244"))
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		head,
		subhead,
		filterLine,
		quickHelp,
		main,
		help,
		status,
	)
}

func (m modelUI) renderMainPanels(listPanel, detailPanel string) string {
	width := m.effectiveWidth()
	if width < 96 {
		return lipgloss.JoinVertical(
			lipgloss.Left,
			m.renderPanel("Profiles", listPanel, width, lipgloss.Color("39")),
			m.renderPanel("Details", detailPanel, width, lipgloss.Color("69")),
		)
	}
	leftWidth := width / 2
	rightWidth := width - leftWidth
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderPanel("Profiles", listPanel, leftWidth, lipgloss.Color("39")),
		m.renderPanel("Details", detailPanel, rightWidth, lipgloss.Color("69")),
	)
}

func (m modelUI) helpBlock() string {
	return strings.Join([]string{
		"  Navigation: j/k or arrow keys move selection.",
		"  Filtering: press /, type alias/host text, then Enter.",
		"  Add: press a and fill in the form.",
		"  Remove: press d on the selected profile, then confirm with y.",
		"  Reload: press r to reread the profiles file.",
		"  Quit: press q or Ctrl+C.",
	}, "\n")
}

func (m modelUI) effectiveWidth() int {
	if m.width <= 0 {
		return 100
	}
	return m.width
}

func (m modelUI) renderPanel(title, body string, width int, accent lipgloss.Color) string {
	if width < 24 {
		width = 24
	}
	header := lipgloss.NewStyle().Bold(true).Foreground(accent).Render(title)
	content := strings.TrimSuffix(body, "\n")
	panel := strings.TrimSpace(header + "\n" + content)
	return lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(0, 1).
		Render(panel)
}

// Run starts the interactive browser over the given store.
func Run(store *profile.Store) error {
	p := tea.NewProgram(initialModel(store), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
