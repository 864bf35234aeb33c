// arcadia is a TUI arcade platform for playing retro-style games in the terminal.
//
// Usage:
//
//	arcadia list              - List available games
//	arcadia play <game>       - Play a game
//	arcadia menu              - Start menu to pick games interactively
//	arcadia serve             - Start SSH server for remote play
//	arcadia scores <game>     - Show high scores for a game
//	arcadia stats <game>      - Show lifetime stats and achievements
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.arcadia/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/ameleshko/arcadia/internal/games/dino"
	_ "github.com/ameleshko/arcadia/internal/games/flappy"
	_ "github.com/ameleshko/arcadia/internal/games/invaders"
	_ "github.com/ameleshko/arcadia/internal/games/racing"
	_ "github.com/ameleshko/arcadia/internal/games/snake"
)

var (
	// Global flags
	flagFPS    int
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
	Use:   "arcadia",
	Short: "Arcadia - Play retro games in your terminal",
	Long: `Arcadia is a terminal-based gaming platform that lets you play
classic-style games directly in your terminal.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  stats    - View lifetime stats and achievements

Examples:
  arcadia list
  arcadia play dino
  arcadia menu
  arcadia serve --ssh :2222
  arcadia scores flappy
  arcadia stats dino`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcadia/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
}
