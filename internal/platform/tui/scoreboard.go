package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/arcadehub/tui-snake/internal/config"
	"github.com/arcadehub/tui-snake/internal/core"
	"github.com/arcadehub/tui-snake/internal/storage"
)

const maxScoreRows = 50

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up             key.Binding
	Down           key.Binding
	NextDifficulty key.Binding
	PrevDifficulty key.Binding
	Back           key.Binding
	Quit           key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextDifficulty, k.PrevDifficulty, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextDifficulty, k.PrevDifficulty},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextDifficulty: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next difficulty"),
		),
		PrevDifficulty: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev difficulty"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the high-scores screen.
type ScoreboardModel struct {
	store  *storage.Store
	cursor int // index into config.Presets
	table  table.Model
	help   help.Model
	keys   ScoreboardKeyMap
	best   int
	loadErr  error
	width    int
	height   int
	quitting bool
}

// NewScoreboardModel creates a scoreboard focused on the given preset.
func NewScoreboardModel(store *storage.Store, current config.Preset, width, height int) ScoreboardModel {
	cursor := 0
	for i, p := range config.Presets {
		if p == current {
			cursor = i
			break
		}
	}

	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Date", Width: 18},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(core.Min(height-8, 15)),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).BorderBottom(true)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("11"))
	t.SetStyles(styles)

	m := ScoreboardModel{
		store:  store,
		cursor: cursor,
		table:  t,
		help:   help.New(),
		keys:   DefaultScoreboardKeyMap(),
		width:  width,
		height: height,
	}
	m.reload()
	return m
}

// reload fetches rows for the current difficulty.
func (m *ScoreboardModel) reload() {
	preset := config.Presets[m.cursor]

	scores, err := m.store.TopScores(string(preset), maxScoreRows)
	if err != nil {
		m.loadErr = err
		m.table.SetRows(nil)
		return
	}
	m.loadErr = nil

	best, err := m.store.BestScore(string(preset))
	if err == nil {
		m.best = best
	}

	rows := make([]table.Row, 0, len(scores))
	for i, e := range scores {
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(e.Score),
			e.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	m.table.SetRows(rows)
}

// Init initializes the model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Back):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextDifficulty):
			m.cursor = (m.cursor + 1) % len(config.Presets)
			m.reload()
			return m, nil
		case key.Matches(msg, m.keys.PrevDifficulty):
			m.cursor = (m.cursor - 1 + len(config.Presets)) % len(config.Presets)
			m.reload()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(core.Min(msg.Height-8, 15))
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	preset := config.Presets[m.cursor]
	title := menuTitleStyle.Render(fmt.Sprintf("High Scores - %s", preset))
	bestLine := menuDimStyle.Render(fmt.Sprintf("Best: %d", m.best))

	body := m.table.View()
	if m.loadErr != nil {
		body = menuDimStyle.Render(fmt.Sprintf("cannot load scores: %v", m.loadErr))
	} else if len(m.table.Rows()) == 0 {
		body = menuDimStyle.Render("No scores recorded yet.")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		"",
		"  "+title,
		"  "+bestLine,
		"",
		body,
		"",
		"  "+m.help.View(m.keys),
	)
}

// RunScoreboard shows the interactive scoreboard.
func RunScoreboard(store *storage.Store, current config.Preset, width, height int) error {
	model := NewScoreboardModel(store, current, width, height)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
