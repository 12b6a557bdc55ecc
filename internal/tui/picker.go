package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/firefly-engineering/packcfg/internal/preset"
)

// Action represents the action to take after picker selection
type Action int

const (
	ActionNone Action = iota
	ActionCompose
	ActionQuit
)

// PickerResult holds the result of the picker
type PickerResult struct {
	Action  Action
	Mode    string
	Presets []string
}

// presetItem implements list.Item for preset display
type presetItem struct {
	info  preset.Info
	order int // 1-based selection position, 0 when not selected
}

func (i presetItem) Title() string {
	if i.order > 0 {
		return fmt.Sprintf("[%d] %s", i.order, i.info.Name)
	}
	return "[ ] " + i.info.Name
}

func (i presetItem) Description() string {
	keys := strings.Join(i.info.Keys, ", ")
	if keys == "" {
		keys = "-"
	}
	return fmt.Sprintf("%s | %s", i.info.Format, truncate(keys, 50))
}

func (i presetItem) FilterValue() string {
	return i.info.Name
}

// truncate shortens s to at most maxLen display cells, cutting on rune
// boundaries.
func truncate(s string, maxLen int) string {
	if lipgloss.Width(s) <= maxLen {
		return s
	}
	budget := maxLen - 3
	var b strings.Builder
	width := 0
	for _, r := range s {
		w := lipgloss.Width(string(r))
		if width+w > budget {
			break
		}
		b.WriteRune(r)
		width += w
	}
	return b.String() + "..."
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginBottom(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	modeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)
)

// Model is the bubbletea model for the preset picker
type Model struct {
	list     list.Model
	modes    []string
	modeIdx  int
	selected []string
	result   PickerResult
	quitting bool
	width    int
	height   int
}

// NewPicker creates a new preset picker. initialMode is preselected when it
// is one of modeNames.
func NewPicker(infos []preset.Info, modeNames []string, initialMode string) Model {
	items := make([]list.Item, len(infos))
	for i, info := range infos {
		items[i] = presetItem{info: info}
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = selectedStyle
	delegate.Styles.SelectedDesc = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	l := list.New(items, delegate, 80, 20)
	l.Title = "packcfg - Select Presets"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle

	m := Model{
		list:  l,
		modes: modeNames,
	}
	for i, name := range modeNames {
		if name == initialMode {
			m.modeIdx = i
		}
	}
	return m
}

// Mode returns the currently chosen mode.
func (m Model) Mode() string {
	if len(m.modes) == 0 {
		return ""
	}
	return m.modes[m.modeIdx]
}

// Selected returns the chosen presets in selection order.
func (m Model) Selected() []string {
	out := make([]string, len(m.selected))
	copy(out, m.selected)
	return out
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-4)
		return m, nil

	case tea.KeyMsg:
		// Don't handle keys if filtering
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case " ", "x":
			if item, ok := m.list.SelectedItem().(presetItem); ok {
				m.toggle(item.info.Name)
			}
			return m, nil

		case "tab":
			if len(m.modes) > 0 {
				m.modeIdx = (m.modeIdx + 1) % len(m.modes)
			}
			return m, nil

		case "enter":
			m.result = PickerResult{
				Action:  ActionCompose,
				Mode:    m.Mode(),
				Presets: m.Selected(),
			}
			m.quitting = true
			return m, tea.Quit

		case "q", "esc":
			m.result = PickerResult{Action: ActionQuit}
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// toggle adds name to the end of the selection or removes it, then renumbers
// the list items.
func (m *Model) toggle(name string) {
	idx := -1
	for i, s := range m.selected {
		if s == name {
			idx = i
			break
		}
	}
	if idx >= 0 {
		m.selected = append(m.selected[:idx:idx], m.selected[idx+1:]...)
	} else {
		m.selected = append(m.selected, name)
	}

	order := make(map[string]int, len(m.selected))
	for i, s := range m.selected {
		order[s] = i + 1
	}
	for i, it := range m.list.Items() {
		item := it.(presetItem)
		item.order = order[item.info.Name]
		m.list.SetItem(i, item)
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	mode := modeStyle.Render("mode: " + m.Mode())
	help := helpStyle.Render("[space] Toggle  [tab] Mode  [enter] Compose  [/] Filter  [q] Quit")

	return mode + "\n" + m.list.View() + "\n" + help
}

// Result returns the picker result
func (m Model) Result() PickerResult {
	return m.result
}

// RunPicker runs the interactive preset picker
func RunPicker(infos []preset.Info, modeNames []string, initialMode string) (PickerResult, error) {
	m := NewPicker(infos, modeNames, initialMode)
	p := tea.NewProgram(m, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return PickerResult{}, err
	}

	return finalModel.(Model).Result(), nil
}
