package game

import (
	"testing"

	"github.com/arcadehub/tui-snake/internal/config"
	"github.com/arcadehub/tui-snake/internal/core"
)

func testEngine(t *testing.T, seed int64) *Engine {
	t.Helper()
	cfg := config.DefaultConfig()
	return New(Options{
		Grid:       core.NewGrid(cfg.GridSize),
		Preset:     config.PresetNormal,
		Difficulty: cfg.Difficulty(config.PresetNormal),
		Seed:       seed,
	})
}

// fakeBestStore records best-score writes for assertions.
type fakeBestStore struct {
	best  map[string]int
	calls int
}

func (f *fakeBestStore) BestScore(difficulty string) (int, error) {
	return f.best[difficulty], nil
}

func (f *fakeBestStore) SetBestScore(difficulty string, score int) error {
	if f.best == nil {
		f.best = make(map[string]int)
	}
	f.best[difficulty] = score
	f.calls++
	return nil
}

func TestInitialState(t *testing.T) {
	e := testEngine(t, 1)

	if e.Phase() != PhasePaused {
		t.Errorf("initial phase = %v, expected paused", e.Phase())
	}
	if e.Score() != 0 {
		t.Errorf("initial score = %d, expected 0", e.Score())
	}
	snap := e.Snapshot()
	if len(snap.Snake) != initialSnakeLen {
		t.Errorf("initial snake length = %d, expected %d", len(snap.Snake), initialSnakeLen)
	}
	if snap.Snake[0] != (core.Cell{X: 10, Y: 10}) {
		t.Errorf("initial head = %v, expected (10,10)", snap.Snake[0])
	}
	if snap.TickMs != config.DefaultConfig().Difficulty(config.PresetNormal).InitialTickMs {
		t.Errorf("initial tick = %dms, expected the difficulty's initial", snap.TickMs)
	}
	for _, seg := range snap.Snake {
		if seg == snap.Food {
			t.Error("food must not overlap the snake")
		}
	}
}

func TestTickIsNoOpUnlessRunning(t *testing.T) {
	e := testEngine(t, 2)

	before := e.Snapshot()
	e.Tick() // paused
	after := e.Snapshot()
	if before.Snake[0] != after.Snake[0] || before.Score != after.Score {
		t.Error("tick while paused must not mutate state")
	}
}

func TestGrowthScenario(t *testing.T) {
	// Grid 20x20, snake [(10,10),(9,10),(8,10)], direction right,
	// food at (11,10): after one tick the snake grows to four cells,
	// score is 1, and a fresh food cell avoids the snake.
	e := testEngine(t, 3)
	e.food = core.Cell{X: 11, Y: 10}
	e.Resume()

	snap := e.Tick()

	want := []core.Cell{{X: 11, Y: 10}, {X: 10, Y: 10}, {X: 9, Y: 10}, {X: 8, Y: 10}}
	if len(snap.Snake) != len(want) {
		t.Fatalf("snake length = %d, expected %d", len(snap.Snake), len(want))
	}
	for i := range want {
		if snap.Snake[i] != want[i] {
			t.Errorf("cell %d = %v, expected %v", i, snap.Snake[i], want[i])
		}
	}
	if snap.Score != 1 {
		t.Errorf("score = %d, expected 1", snap.Score)
	}
	for _, seg := range snap.Snake {
		if seg == snap.Food {
			t.Error("new food overlaps the snake")
		}
	}
	if !core.NewGrid(20).Contains(snap.Food) {
		t.Errorf("new food %v out of bounds", snap.Food)
	}
}

func TestShiftScenario(t *testing.T) {
	// Same snake, direction right, no food ahead: the snake shifts,
	// length unchanged.
	e := testEngine(t, 4)
	e.food = core.Cell{X: 0, Y: 0}
	e.Resume()

	snap := e.Tick()

	want := []core.Cell{{X: 11, Y: 10}, {X: 10, Y: 10}, {X: 9, Y: 10}}
	if len(snap.Snake) != len(want) {
		t.Fatalf("snake length = %d, expected %d", len(snap.Snake), len(want))
	}
	for i := range want {
		if snap.Snake[i] != want[i] {
			t.Errorf("cell %d = %v, expected %v", i, snap.Snake[i], want[i])
		}
	}
	if snap.Score != 0 {
		t.Errorf("score = %d, expected 0", snap.Score)
	}
}

func TestWallCollision(t *testing.T) {
	// Head at (19,10) moving right: next head (20,10) is out of bounds.
	e := testEngine(t, 5)
	e.snake = NewSnake(core.Cell{X: 19, Y: 10}, core.DirRight, 3)
	e.food = core.Cell{X: 0, Y: 0}
	e.Resume()

	snap := e.Tick()

	if snap.Phase != PhaseGameOver {
		t.Errorf("phase = %v, expected game over", snap.Phase)
	}
	if snap.Won {
		t.Error("wall collision is not a win")
	}
}

func TestSelfCollision(t *testing.T) {
	// Spiral configuration: moving right from (5,5) re-enters (6,5).
	e := testEngine(t, 6)
	e.snake = &Snake{cells: []core.Cell{
		{X: 5, Y: 5},
		{X: 5, Y: 6},
		{X: 6, Y: 6},
		{X: 6, Y: 5},
		{X: 6, Y: 4},
	}}
	e.queue = NewDirectionQueue(core.DirRight)
	e.food = core.Cell{X: 0, Y: 0}
	e.Resume()

	if snap := e.Tick(); snap.Phase != PhaseGameOver {
		t.Errorf("phase = %v, expected game over on self collision", snap.Phase)
	}
}

func TestTailCellCollisionIsStrict(t *testing.T) {
	// A 2x2 loop: head (5,5), tail (6,5). Moving right lands exactly on
	// the tail's current cell. The full pre-move body is checked, so this
	// ends the game even though the tail would vacate this tick.
	e := testEngine(t, 7)
	e.snake = &Snake{cells: []core.Cell{
		{X: 5, Y: 5},
		{X: 5, Y: 6},
		{X: 6, Y: 6},
		{X: 6, Y: 5},
	}}
	e.queue = NewDirectionQueue(core.DirRight)
	e.food = core.Cell{X: 0, Y: 0}
	e.Resume()

	if snap := e.Tick(); snap.Phase != PhaseGameOver {
		t.Errorf("phase = %v, expected game over when moving onto the tail cell", snap.Phase)
	}
}

func TestNoDuplicateCellsWhileAlive(t *testing.T) {
	e := testEngine(t, 8)
	e.Resume()

	dirs := []core.Direction{
		core.DirDown, core.DirLeft, core.DirUp, core.DirRight,
		core.DirDown, core.DirDown, core.DirLeft, core.DirUp,
	}
	for i := 0; i < 200 && e.Phase() != PhaseGameOver; i++ {
		e.Enqueue(dirs[i%len(dirs)])
		snap := e.Tick()
		if snap.Phase == PhaseGameOver {
			break
		}
		seen := make(map[core.Cell]bool, len(snap.Snake))
		for _, seg := range snap.Snake {
			if seen[seg] {
				t.Fatalf("duplicate cell %v in live snake at step %d", seg, i)
			}
			seen[seg] = true
		}
	}
}

func TestScoreMonotonicAndResetOnRestart(t *testing.T) {
	e := testEngine(t, 9)
	e.Resume()

	// Alternate eating ticks (food planted ahead) with plain ticks.
	prev := 0
	for i := 0; i < 6; i++ {
		if i%2 == 0 {
			e.food = e.snake.NextHead(core.DirRight)
		} else {
			e.food = core.Cell{X: 0, Y: 0}
		}
		snap := e.Tick()
		if snap.Score < prev {
			t.Fatalf("score decreased from %d to %d", prev, snap.Score)
		}
		prev = snap.Score
	}
	if prev != 3 {
		t.Fatalf("score = %d, expected 3", prev)
	}

	e.Restart()
	if e.Score() != 0 {
		t.Errorf("score after restart = %d, expected 0", e.Score())
	}
	if e.Phase() != PhasePaused {
		t.Errorf("phase after restart = %v, expected paused", e.Phase())
	}
	if e.snake.Len() != initialSnakeLen {
		t.Errorf("snake length after restart = %d, expected %d", e.snake.Len(), initialSnakeLen)
	}
}

func TestSpeedCurveMonotonicWithFloor(t *testing.T) {
	diff := config.Difficulty{
		InitialTickMs:       160,
		SpeedupFoodInterval: 2,
		SpeedupFactor:       0.5,
		MinTickMs:           40,
	}
	e := New(Options{
		Grid:       core.NewGrid(20),
		Preset:     config.PresetNormal,
		Difficulty: diff,
		Seed:       10,
	})

	prev := e.tickMs
	for score := 1; score <= 20; score++ {
		e.score = score
		e.applySpeedCurve()
		if e.tickMs > prev {
			t.Fatalf("tick interval increased from %d to %d", prev, e.tickMs)
		}
		if e.tickMs < diff.MinTickMs {
			t.Fatalf("tick interval %d dropped below floor %d", e.tickMs, diff.MinTickMs)
		}
		prev = e.tickMs
	}
	// 160 -> 80 -> 40, then pinned at the floor.
	if e.tickMs != diff.MinTickMs {
		t.Errorf("tick interval = %d, expected floor %d", e.tickMs, diff.MinTickMs)
	}
}

func TestSpeedupOnlyAtFoodInterval(t *testing.T) {
	e := testEngine(t, 11)
	initial := e.tickMs

	// Normal difficulty speeds up every 4 foods.
	e.score = 1
	e.applySpeedCurve()
	e.score = 3
	e.applySpeedCurve()
	if e.tickMs != initial {
		t.Errorf("tick interval changed off-interval: %d", e.tickMs)
	}

	e.score = 4
	e.applySpeedCurve()
	if e.tickMs >= initial {
		t.Errorf("tick interval = %d, expected speedup below %d", e.tickMs, initial)
	}
}

func TestPauseResumeIdempotent(t *testing.T) {
	e := testEngine(t, 12)

	e.Pause() // already paused
	if e.Phase() != PhasePaused {
		t.Error("pause while paused must be a no-op")
	}

	e.Resume()
	e.Resume() // already running
	if e.Phase() != PhaseRunning {
		t.Error("resume while running must be a no-op")
	}

	e.TogglePause()
	if e.Phase() != PhasePaused {
		t.Error("toggle should pause a running game")
	}
	e.TogglePause()
	if e.Phase() != PhaseRunning {
		t.Error("toggle should resume a paused game")
	}
}

func TestGameOverIsTerminalUntilRestart(t *testing.T) {
	e := testEngine(t, 13)
	e.snake = NewSnake(core.Cell{X: 19, Y: 10}, core.DirRight, 3)
	e.food = core.Cell{X: 0, Y: 0}
	e.Resume()
	e.Tick()

	if e.Phase() != PhaseGameOver {
		t.Fatal("expected game over")
	}

	e.Resume()
	e.TogglePause()
	e.Tick()
	if e.Phase() != PhaseGameOver {
		t.Error("game over must be terminal until restart")
	}

	e.Restart()
	if e.Phase() != PhasePaused {
		t.Errorf("phase after restart = %v, expected paused", e.Phase())
	}
}

func TestDeterminism(t *testing.T) {
	g1 := testEngine(t, 12345)
	g2 := testEngine(t, 12345)
	g1.Resume()
	g2.Resume()

	for i := 0; i < 150; i++ {
		if i == 20 {
			g1.Enqueue(core.DirDown)
			g2.Enqueue(core.DirDown)
		}
		if i == 40 {
			g1.Enqueue(core.DirLeft)
			g2.Enqueue(core.DirLeft)
		}
		g1.Tick()
		g2.Tick()
	}

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if s1.Score != s2.Score {
		t.Errorf("score mismatch: %d vs %d", s1.Score, s2.Score)
	}
	if s1.Phase != s2.Phase {
		t.Errorf("phase mismatch: %v vs %v", s1.Phase, s2.Phase)
	}
	if s1.Food != s2.Food {
		t.Errorf("food mismatch: %v vs %v", s1.Food, s2.Food)
	}
	if len(s1.Snake) != len(s2.Snake) {
		t.Fatalf("length mismatch: %d vs %d", len(s1.Snake), len(s2.Snake))
	}
	for i := range s1.Snake {
		if s1.Snake[i] != s2.Snake[i] {
			t.Errorf("cell %d mismatch: %v vs %v", i, s1.Snake[i], s2.Snake[i])
		}
	}
}

func TestFullGridEndsAsWin(t *testing.T) {
	// 2x2 grid with the snake occupying all but one cell; eating the
	// last food leaves no free cell and the game ends as a win.
	e := testEngine(t, 14)
	e.grid = core.NewGrid(2)
	e.snake = &Snake{cells: []core.Cell{
		{X: 0, Y: 0},
		{X: 0, Y: 1},
		{X: 1, Y: 1},
	}}
	e.queue = NewDirectionQueue(core.DirRight)
	e.food = core.Cell{X: 1, Y: 0}
	e.phase = PhaseRunning

	snap := e.Tick()

	if snap.Phase != PhaseGameOver {
		t.Errorf("phase = %v, expected game over", snap.Phase)
	}
	if !snap.Won {
		t.Error("filling the grid should count as a win")
	}
	if snap.Score != 1 {
		t.Errorf("score = %d, expected 1", snap.Score)
	}
}

func TestBestScorePersistedWhenExceeded(t *testing.T) {
	store := &fakeBestStore{best: map[string]int{"normal": 2}}
	cfg := config.DefaultConfig()
	e := New(Options{
		Grid:       core.NewGrid(cfg.GridSize),
		Preset:     config.PresetNormal,
		Difficulty: cfg.Difficulty(config.PresetNormal),
		Seed:       15,
		Best:       store,
	})

	if e.Best() != 2 {
		t.Fatalf("best loaded = %d, expected 2", e.Best())
	}

	e.Resume()
	// Eat three foods by repeatedly planting one in front of the head.
	for i := 0; i < 3; i++ {
		e.food = e.snake.NextHead(core.DirRight)
		e.Tick()
	}

	if e.Score() != 3 {
		t.Fatalf("score = %d, expected 3", e.Score())
	}
	if e.Best() != 3 {
		t.Errorf("best = %d, expected 3", e.Best())
	}
	if store.best["normal"] != 3 {
		t.Errorf("persisted best = %d, expected 3", store.best["normal"])
	}
	// Scores 1 and 2 did not exceed the stored best of 2; only 3 did.
	if store.calls != 1 {
		t.Errorf("persist calls = %d, expected 1", store.calls)
	}

	e.Restart()
	if e.Best() != 3 {
		t.Errorf("best should survive restart, got %d", e.Best())
	}
}

func TestSnapshotDraw(t *testing.T) {
	e := testEngine(t, 16)
	screen := core.NewScreen(80, 24)

	e.Snapshot().Draw(screen)
	content := screen.String()
	if len(content) == 0 {
		t.Fatal("rendered screen should not be empty")
	}

	if screen.Row(0)[:6] != " Snake" {
		t.Errorf("HUD missing, row 0 = %q", screen.Row(0))
	}
}
