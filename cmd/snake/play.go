package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcadehub/tui-snake/internal/config"
	"github.com/arcadehub/tui-snake/internal/core"
	"github.com/arcadehub/tui-snake/internal/game"
	"github.com/arcadehub/tui-snake/internal/platform/tui"
	"github.com/arcadehub/tui-snake/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game of snake.

Controls:
  Arrows/WASD - Steer
  P/Space     - Pause / resume
  R           - Restart (after game over)
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Slow start, gentle speedup
  normal - Default pace
  hard   - Fast start, quick speedup
  insane - Very fast, for the brave

Without --difficulty an interactive picker opens with the last played
difficulty preselected.

Examples:
  snake play
  snake play --difficulty hard
  snake play --config ./my-snake.yaml
  snake play --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, insane")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size early for the difficulty picker
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	preset, ok := resolvePreset(cfg, store, width, height)
	if !ok {
		if store != nil {
			store.Close()
		}
		return
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var best game.BestScoreStore
	if store != nil {
		best = store
	}

	engine := game.New(game.Options{
		Grid:       core.NewGrid(cfg.GridSize),
		Preset:     preset,
		Difficulty: cfg.Difficulty(preset),
		Seed:       seed,
		Best:       best,
	})

	runtime := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    seed,
	}

	runErr := tui.Run(engine, store, runtime)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// resolvePreset decides the difficulty for this run. An explicit
// --difficulty flag wins; otherwise the interactive picker opens with
// the stored preference preselected. The chosen preset is persisted so
// the next run starts from it. Returns ok=false if the user backed out
// of the picker.
func resolvePreset(cfg config.SnakeConfig, store *storage.Store, width, height int) (config.Preset, bool) {
	if flagDifficulty != "" {
		return config.ParsePreset(flagDifficulty), true
	}

	current := config.PresetNormal
	if store != nil {
		if stored, err := store.Difficulty(); err == nil {
			current = config.ParsePreset(stored)
		}
	}

	selected, err := tui.RunDifficultyMenu(cfg, current, width, height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if selected == nil {
		return current, false
	}

	if store != nil {
		//nolint:errcheck // Preference save is best-effort
		store.SetDifficulty(string(*selected))
	}
	return *selected, true
}
