package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/arcadehub/tui-snake/internal/config"
)

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	menuDimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// DifficultyMenuModel lets the user pick a difficulty preset before a
// game starts. Difficulty is selectable only between games; a selection
// triggers a full restart with the chosen preset.
type DifficultyMenuModel struct {
	cfg      config.SnakeConfig
	cursor   int
	width    int
	height   int
	keys     *KeyMapper
	selected *config.Preset
	quitting bool
	back     bool
}

// NewDifficultyMenuModel creates a menu with the cursor on current.
func NewDifficultyMenuModel(cfg config.SnakeConfig, current config.Preset, width, height int) DifficultyMenuModel {
	cursor := 0
	for i, p := range config.Presets {
		if p == current {
			cursor = i
			break
		}
	}
	return DifficultyMenuModel{
		cfg:    cfg,
		cursor: cursor,
		width:  width,
		height: height,
		keys:   NewKeyMapper(),
	}
}

// Init initializes the model.
func (m DifficultyMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DifficultyMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.keys.MapKeyToMenuAction(msg) {
		case MenuActionQuit:
			m.quitting = true
			return m, tea.Quit
		case MenuActionUp:
			if m.cursor > 0 {
				m.cursor--
			}
		case MenuActionDown:
			if m.cursor < len(config.Presets)-1 {
				m.cursor++
			}
		case MenuActionSelect:
			p := config.Presets[m.cursor]
			m.selected = &p
			return m, tea.Quit
		case MenuActionBack:
			m.back = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// View renders the menu.
func (m DifficultyMenuModel) View() string {
	if m.quitting || m.selected != nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(menuTitleStyle.Render("Snake - Select Difficulty"))
	b.WriteString("\n\n")

	for i, p := range config.Presets {
		d := m.cfg.Difficulty(p)
		line := fmt.Sprintf("%-8s  %dms start, x%.2f every %d foods, %dms floor",
			p, d.InitialTickMs, d.SpeedupFactor, d.SpeedupFoodInterval, d.MinTickMs)
		if i == m.cursor {
			b.WriteString("  > " + menuSelectedStyle.Render(line))
		} else {
			b.WriteString("    " + line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(menuDimStyle.Render("up/down: move  enter: select  esc: back  q: quit"))
	b.WriteString("\n")
	return b.String()
}

// Selection returns the chosen preset, or nil if the user backed out.
func (m DifficultyMenuModel) Selection() *config.Preset {
	return m.selected
}

// RunDifficultyMenu shows the difficulty selector and returns the chosen
// preset. Returns nil if the user backed out or quit.
func RunDifficultyMenu(cfg config.SnakeConfig, current config.Preset, width, height int) (*config.Preset, error) {
	model := NewDifficultyMenuModel(cfg, current, width, height)

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return nil, err
	}

	if m, ok := final.(DifficultyMenuModel); ok {
		return m.Selection(), nil
	}
	return nil, nil
}
