// snake is a terminal snake game with difficulty presets and a
// persistent scoreboard.
//
// Usage:
//
//	snake play               - Play (interactive difficulty picker)
//	snake play --difficulty hard
//	snake scores             - Interactive high-score browser
//	snake difficulties       - Show the difficulty presets
//	snake serve              - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.snake/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - a terminal snake game",
	Long: `Snake is a terminal-based snake game with speed progression,
difficulty presets and a persistent scoreboard.

Available commands:
  play          - Play the game
  scores        - Browse high scores per difficulty
  difficulties  - Show the difficulty presets
  serve         - Start SSH server for remote play

Examples:
  snake play
  snake play --difficulty insane
  snake scores
  snake serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(difficultiesCmd)
	rootCmd.AddCommand(serveCmd)
}
