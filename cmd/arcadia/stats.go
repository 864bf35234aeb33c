package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ameleshko/arcadia/internal/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats <game>",
	Short: "Show lifetime stats and achievements for a game",
	Long: `Display the lifetime counters and achievement progress stored in
the game's stat file (~/.arcadia/<game>_stats.dat).

Only games that track achievements have stat files: dino, flappy.

Examples:
  arcadia stats dino
  arcadia stats flappy`,
	Args: cobra.ExactArgs(1),
	Run:  runStats,
}

func runStats(cmd *cobra.Command, args []string) {
	switch args[0] {
	case "dino":
		f := stats.LoadDino()
		counters := []struct {
			name string
			slot int
		}{
			{"High score", stats.DinoHighScore},
			{"Games played", stats.DinoGamesPlayed},
			{"Total jumps", stats.DinoTotalJumps},
			{"Total ducks", stats.DinoTotalDucks},
			{"Obstacles dodged", stats.DinoObstaclesDodged},
			{"Close calls", stats.DinoCloseCalls},
		}
		printStats("Dino Runner", f, counters, stats.DinoAchievements[:])

	case "flappy":
		f := stats.LoadFlappy()
		counters := []struct {
			name string
			slot int
		}{
			{"High score", stats.FlappyHighScore},
			{"Games played", stats.FlappyGamesPlayed},
			{"Total flaps", stats.FlappyTotalFlaps},
			{"Pipes passed", stats.FlappyPipesPassed},
			{"Crashes", stats.FlappyCrashes},
		}
		printStats("Flappy Bird", f, counters, stats.FlappyAchievements[:])

	default:
		fmt.Fprintf(os.Stderr, "Error: no stat file for game %q\n", args[0])
		fmt.Fprintln(os.Stderr, "Games with stats: dino, flappy")
		os.Exit(1)
	}
}

func printStats(title string, f *stats.File, counters []struct {
	name string
	slot int
}, achievements []stats.AchievementDef) {
	fmt.Printf("Lifetime Stats - %s\n", title)
	fmt.Println()

	for _, c := range counters {
		fmt.Printf("  %-18s %d\n", c.name, f.Get(c.slot))
	}

	fmt.Println()
	fmt.Println("Achievements:")
	fmt.Println()

	unlocked := 0
	for i, a := range achievements {
		mark := "[ ]"
		if f.IsUnlocked(i) {
			mark = "[x]"
			unlocked++
		}
		fmt.Printf("  %s %-20s %-35s %4d pts\n", mark, a.Name, a.Description, a.Points)
	}

	fmt.Println()
	fmt.Printf("Unlocked: %d/%d\n", unlocked, len(achievements))
}
