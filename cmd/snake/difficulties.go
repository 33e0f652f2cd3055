package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arcadehub/tui-snake/internal/config"
)

func init() {
	difficultiesCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

var difficultiesCmd = &cobra.Command{
	Use:   "difficulties",
	Short: "Show the difficulty presets",
	Long:  `Shows each difficulty preset with its speed curve parameters.`,
	Run:   runDifficulties,
}

func runDifficulties(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Difficulty presets:")
	fmt.Println()
	fmt.Printf("  %-8s  %-10s  %-8s  %-14s  %s\n", "Name", "Start", "Factor", "Every", "Floor")
	fmt.Printf("  %-8s  %-10s  %-8s  %-14s  %s\n", "----", "-----", "------", "-----", "-----")

	for _, p := range config.Presets {
		d := cfg.Difficulty(p)
		fmt.Printf("  %-8s  %-10s  %-8.2f  %-14s  %dms\n",
			p,
			fmt.Sprintf("%dms", d.InitialTickMs),
			d.SpeedupFactor,
			fmt.Sprintf("%d foods", d.SpeedupFoodInterval),
			d.MinTickMs,
		)
	}

	fmt.Println()
	fmt.Println("Run 'snake play --difficulty <name>' to play one.")
}
