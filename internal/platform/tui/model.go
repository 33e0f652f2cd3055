package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/arcadehub/tui-snake/internal/core"
	"github.com/arcadehub/tui-snake/internal/game"
	"github.com/arcadehub/tui-snake/internal/storage"
)

// GameModel is the Bubble Tea model running a single snake game.
// It owns the clock: the engine never schedules anything itself.
type GameModel struct {
	engine *game.Engine
	screen *core.Screen
	store  *storage.Store
	keys   *KeyMapper

	gen        int  // Current clock generation; stale ticks are dropped
	ticking    bool // Whether a tick is currently scheduled
	scoreSaved bool // Whether the final score was recorded for this game over
	quitting   bool
}

// NewGameModel creates a model for the given engine. store may be nil;
// the game then runs without score-history persistence.
func NewGameModel(engine *game.Engine, store *storage.Store, cfg core.RuntimeConfig) GameModel {
	return GameModel{
		engine: engine,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		keys:   NewKeyMapper(),
	}
}

// Init starts the model. The game begins Paused with a "press to resume"
// overlay; the clock is not armed until the first resume.
func (m GameModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey maps keys to engine intents.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if dir, ok := action.Direction(); ok {
		m.engine.Enqueue(dir)
		return m, nil
	}

	switch action {
	case core.ActionPause:
		m.engine.TogglePause()
		switch m.engine.Phase() {
		case game.PhaseRunning:
			if !m.ticking {
				m.gen++
				m.ticking = true
				return m, tickCmd(m.gen, m.engine.TickInterval())
			}
		case game.PhasePaused:
			// Invalidate any in-flight tick; resume re-arms fresh.
			m.gen++
			m.ticking = false
		}

	case core.ActionRestart:
		if m.engine.Phase() == game.PhaseGameOver {
			m.engine.Restart()
			m.gen++
			m.ticking = false
			m.scoreSaved = false
		}
	}

	return m, nil
}

// handleTick runs one simulation step and re-arms the clock.
func (m GameModel) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen {
		// Scheduled before a pause/restart; the clock was cancelled.
		return m, nil
	}

	snap := m.engine.Tick()

	if snap.Phase == game.PhaseRunning {
		// Re-arm at the engine's current interval so speed changes take
		// effect immediately.
		return m, tickCmd(m.gen, m.engine.TickInterval())
	}

	m.ticking = false

	if snap.Phase == game.PhaseGameOver && !m.scoreSaved && snap.Score > 0 {
		if m.store != nil {
			//nolint:errcheck // Best-effort save, game over screen shows regardless
			m.store.SaveScore(string(snap.Difficulty), snap.Score)
		}
		m.scoreSaved = true
	}

	return m, nil
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.engine.Snapshot().Draw(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a single game.
func Run(engine *game.Engine, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewGameModel(engine, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
