package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ameleshko/arcadia/internal/core"
	"github.com/ameleshko/arcadia/internal/games/dino"
	"github.com/ameleshko/arcadia/internal/games/flappy"
	"github.com/ameleshko/arcadia/internal/games/invaders"
	"github.com/ameleshko/arcadia/internal/games/racing"
	"github.com/ameleshko/arcadia/internal/games/snake"
	"github.com/ameleshko/arcadia/internal/platform/tui"
	"github.com/ameleshko/arcadia/internal/registry"
	"github.com/ameleshko/arcadia/internal/stats"
	"github.com/ameleshko/arcadia/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Space       - Jump/Flap/Fire
  Arrows/WASD - Move
  P           - Pause
  R           - Restart (after game over)
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  arcadia play flappy
  arcadia play dino --difficulty easy
  arcadia play invaders --difficulty hard
  arcadia play flappy --config ./my-flappy.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// applyGameFlags points the selected game at the custom config and
// difficulty preset before it is created.
func applyGameFlags(gameID string) {
	switch gameID {
	case "flappy":
		flappy.SetConfigPath(flagConfig)
		flappy.SetDifficultyPreset(flagDifficulty)
	case "dino":
		dino.SetConfigPath(flagConfig)
		dino.SetDifficultyPreset(flagDifficulty)
	case "snake":
		snake.SetConfigPath(flagConfig)
		snake.SetDifficultyPreset(flagDifficulty)
	case "racing":
		racing.SetConfigPath(flagConfig)
		racing.SetDifficultyPreset(flagDifficulty)
	case "invaders":
		invaders.SetConfigPath(flagConfig)
		invaders.SetDifficultyPreset(flagDifficulty)
	}
}

// attachLifetimeStats wires the flat stat file into the games that
// track achievements.
func attachLifetimeStats(game registry.Game) {
	switch g := game.(type) {
	case *dino.Game:
		g.AttachStats(stats.LoadDino())
	case *flappy.Game:
		g.AttachStats(stats.LoadFlappy())
	}
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcadia list' to see available games.")
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	applyGameFlags(gameID)

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	attachLifetimeStats(game)

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
