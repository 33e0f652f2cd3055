package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcadehub/tui-snake/internal/config"
	"github.com/arcadehub/tui-snake/internal/platform/tui"
	"github.com/arcadehub/tui-snake/internal/storage"
)

var flagScoresPlain bool

var scoresCmd = &cobra.Command{
	Use:   "scores [difficulty]",
	Short: "Show high scores",
	Long: `Browse high scores per difficulty.

Without arguments an interactive browser opens; tab cycles through the
difficulties. With --plain the top 10 for one difficulty are printed to
stdout instead.

Examples:
  snake scores
  snake scores hard --plain`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresPlain, "plain", false, "Print scores to stdout instead of the interactive browser")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	preset := config.PresetNormal
	if len(args) > 0 {
		preset = config.ParsePreset(args[0])
	} else if stored, prefErr := store.Difficulty(); prefErr == nil {
		preset = config.ParsePreset(stored)
	}

	if flagScoresPlain {
		printScores(store, preset)
		return
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunScoreboard(store, preset, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printScores(store *storage.Store, preset config.Preset) {
	scores, err := store.TopScores(string(preset), 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", preset)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'snake play --difficulty %s' to set the first high score!\n", preset)
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	fmt.Println()
	if best, bestErr := store.BestScore(string(preset)); bestErr == nil {
		fmt.Printf("Best: %d\n", best)
	}
}
