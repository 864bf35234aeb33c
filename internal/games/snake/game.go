// Package snake implements the classic grid snake game. The snake moves
// on a fixed cadence that tightens as the score grows; walls and the
// snake's own body are fatal.
package snake

import (
	"fmt"
	"math/rand"

	"github.com/ameleshko/arcadia/internal/config"
	"github.com/ameleshko/arcadia/internal/core"
	"github.com/ameleshko/arcadia/internal/registry"
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Point represents a 2D grid coordinate.
type Point struct {
	X, Y int
}

// Visual characters for rendering
const (
	HeadChar    = '@'
	BodyChar    = 'o'
	FoodChar    = '*'
	SpecialChar = '$'
	WallChar    = '#'
)

// Game implements the Snake game.
type Game struct {
	rng        *rand.Rand
	tick       int
	score      int
	foodEaten  int
	moveTicker int

	// Head at index 0
	snake     []Point
	direction Direction
	nextDir   Direction // Buffered direction for next move
	growing   int       // Tail segments still to grow

	food        Point
	specialFood bool // Whether the current food is the bonus kind

	gridW      int
	gridH      int
	hudHeight  int
	mapOffsetX int
	mapOffsetY int
	tooSmall   bool

	gameOver bool
	paused   bool

	runtime    core.RuntimeConfig
	cfg        config.SnakeConfig
	difficulty *config.DifficultyManager
}

var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// New creates a new Snake game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Snake"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadSnake(configPath)
	if err != nil {
		cfg = config.DefaultSnakeConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg.Difficulty, difficultyPreset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.tick = 0
	g.score = 0
	g.foodEaten = 0
	g.moveTicker = 0
	g.gameOver = false
	g.paused = false
	g.gridW = cfg.Grid.Width
	g.gridH = cfg.Grid.Height
	g.hudHeight = 2

	// The grid must fit inside the screen with its border and HUD.
	g.tooSmall = runtime.ScreenW < g.gridW+2 || runtime.ScreenH < g.gridH+g.hudHeight+1
	if g.tooSmall {
		return
	}
	g.mapOffsetX = (runtime.ScreenW - g.gridW) / 2
	g.mapOffsetY = g.hudHeight

	g.initSnake()
	g.spawnFood()
}

// initSnake places the snake horizontally near the grid center.
func (g *Game) initSnake() {
	startX := g.gridW / 3
	startY := g.gridH / 2

	n := core.Max(2, g.cfg.Grid.InitialLength)
	g.snake = make([]Point, 0, n)
	for i := 0; i < n; i++ {
		g.snake = append(g.snake, Point{X: startX - i, Y: startY})
	}
	g.direction = DirRight
	g.nextDir = DirRight
	g.growing = 0
}

// spawnFood places food at a random empty cell. Every Nth food is the
// bonus kind worth extra points.
func (g *Game) spawnFood() {
	var emptyCells []Point
	for y := 1; y < g.gridH-1; y++ {
		for x := 1; x < g.gridW-1; x++ {
			p := Point{X: x, Y: y}
			if !g.isSnakeAt(p) {
				emptyCells = append(emptyCells, p)
			}
		}
	}

	if len(emptyCells) == 0 {
		// Board is full; nothing left to eat.
		g.food = Point{X: -1, Y: -1}
		return
	}

	g.food = emptyCells[g.rng.Intn(len(emptyCells))]
	g.specialFood = g.cfg.Grid.SpecialEvery > 0 && (g.foodEaten+1)%g.cfg.Grid.SpecialEvery == 0
}

// isSnakeAt checks if the snake occupies the given point.
func (g *Game) isSnakeAt(p Point) bool {
	for _, seg := range g.snake {
		if seg == p {
			return true
		}
	}
	return false
}

// moveInterval returns the current ticks-per-cell cadence.
func (g *Game) moveInterval() int {
	return g.difficulty.Interval(g.cfg.Grid.MoveEveryTicks, g.cfg.Grid.MinMoveEvery, g.score, g.tick)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.processInput(in)

	g.moveTicker++
	if g.moveTicker >= g.moveInterval() {
		g.moveTicker = 0
		g.moveSnake()
	}

	return core.StepResult{State: g.State()}
}

// processInput buffers direction changes, rejecting instant reversal.
func (g *Game) processInput(in core.InputFrame) {
	newDir := g.nextDir

	switch {
	case in.Has(core.ActionUp):
		newDir = DirUp
	case in.Has(core.ActionDown):
		newDir = DirDown
	case in.Has(core.ActionLeft):
		newDir = DirLeft
	case in.Has(core.ActionRight):
		newDir = DirRight
	}

	if !isOpposite(newDir, g.direction) {
		g.nextDir = newDir
	}
}

func isOpposite(d1, d2 Direction) bool {
	return (d1 == DirUp && d2 == DirDown) ||
		(d1 == DirDown && d2 == DirUp) ||
		(d1 == DirLeft && d2 == DirRight) ||
		(d1 == DirRight && d2 == DirLeft)
}

// moveSnake advances the snake one cell in the buffered direction.
func (g *Game) moveSnake() {
	if len(g.snake) == 0 {
		return
	}

	g.direction = g.nextDir

	head := g.snake[0]
	var newHead Point
	switch g.direction {
	case DirUp:
		newHead = Point{X: head.X, Y: head.Y - 1}
	case DirDown:
		newHead = Point{X: head.X, Y: head.Y + 1}
	case DirLeft:
		newHead = Point{X: head.X - 1, Y: head.Y}
	case DirRight:
		newHead = Point{X: head.X + 1, Y: head.Y}
	}

	// Border walls are fatal.
	if newHead.X <= 0 || newHead.X >= g.gridW-1 || newHead.Y <= 0 || newHead.Y >= g.gridH-1 {
		g.gameOver = true
		return
	}

	// Self collision, excluding the tail cell about to vacate.
	checkLen := len(g.snake)
	if g.growing == 0 && checkLen > 0 {
		checkLen--
	}
	for i := 0; i < checkLen; i++ {
		if g.snake[i] == newHead {
			g.gameOver = true
			return
		}
	}

	g.snake = append([]Point{newHead}, g.snake...)

	if newHead == g.food {
		g.foodEaten++
		if g.specialFood {
			g.score += g.cfg.Grid.SpecialValue
			g.growing += 2
		} else {
			g.score++
			g.growing++
		}
		g.spawnFood()
	}

	if g.growing > 0 {
		g.growing--
	} else if len(g.snake) > 1 {
		g.snake = g.snake[:len(g.snake)-1]
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", g.score))
	dst.DrawText(20, 0, fmt.Sprintf(" Length: %d ", len(g.snake)))
	dst.DrawText(36, 0, fmt.Sprintf(" Speed: 1/%d ", g.moveInterval()))

	if g.tooSmall {
		g.drawCenteredMessage(dst, "WINDOW TOO SMALL", "Resize to continue")
		return
	}

	// Border
	for x := 0; x < g.gridW; x++ {
		dst.Set(g.mapOffsetX+x, g.mapOffsetY, WallChar)
		dst.Set(g.mapOffsetX+x, g.mapOffsetY+g.gridH-1, WallChar)
	}
	for y := 0; y < g.gridH; y++ {
		dst.Set(g.mapOffsetX, g.mapOffsetY+y, WallChar)
		dst.Set(g.mapOffsetX+g.gridW-1, g.mapOffsetY+y, WallChar)
	}

	// Food
	if g.food.X >= 0 {
		ch, color := FoodChar, core.ColorRed
		if g.specialFood {
			ch, color = SpecialChar, core.ColorYellow
		}
		dst.SetColored(g.mapOffsetX+g.food.X, g.mapOffsetY+g.food.Y, ch, color)
	}

	// Snake, head last so it wins overlaps
	for i := len(g.snake) - 1; i >= 0; i-- {
		ch := BodyChar
		if i == 0 {
			ch = HeadChar
		}
		dst.SetColored(g.mapOffsetX+g.snake[i].X, g.mapOffsetY+g.snake[i].Y, ch, core.ColorGreen)
	}

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.gameOver {
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
}
