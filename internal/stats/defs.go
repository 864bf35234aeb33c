package stats

// AchievementDef describes one achievement for display purposes.
// Unlock state lives in the stat file, keyed by slot index.
type AchievementDef struct {
	Name        string
	Description string
	Points      int
}

// Counter slots for the Dino Runner stat file.
const (
	DinoHighScore = iota
	DinoGamesPlayed
	DinoTotalJumps
	DinoTotalDucks
	DinoObstaclesDodged
	DinoCloseCalls
	DinoNumCounters
)

// Achievement slots for Dino Runner.
const (
	DinoAchFirstJump = iota
	DinoAchScore100
	DinoAchScore500
	DinoAchScore1000
	DinoAchScore2500
	DinoAchScore5000
	DinoAchMarathon
	DinoAchSpeedDemon
	DinoAchNightRunner
	DinoAchDuckMaster
	DinoAchCloseCalls
	DinoAchSurvivalExpert
	DinoAchLegend
	DinoAchExtinctionAvoided
	DinoNumAchievements
)

// DinoAchievements lists Dino Runner achievements in slot order.
var DinoAchievements = [DinoNumAchievements]AchievementDef{
	{"First Steps", "Make your first jump", 10},
	{"Getting Started", "Score 100 points", 25},
	{"Warming Up", "Score 500 points", 50},
	{"Dino Runner", "Score 1000 points", 100},
	{"Experienced Runner", "Score 2500 points", 200},
	{"Dino Master", "Score 5000 points", 500},
	{"Marathon Runner", "Survive 5 minutes in one run", 150},
	{"Speed Demon", "Reach maximum speed", 200},
	{"Night Runner", "Survive into the night", 75},
	{"Duck Master", "Duck under 50 birds", 125},
	{"Close Calls", "Survive 10 near misses", 100},
	{"Survival Expert", "Dodge 100 obstacles", 250},
	{"Dino Legend", "Score 10000 points", 1000},
	{"Extinction Avoided", "Play 50 games", 300},
}

// LoadDino opens the Dino Runner stat file at its default location.
func LoadDino() *File {
	return Load(DefaultPath("dino"), DinoNumCounters, DinoNumAchievements)
}

// Counter slots for the Flappy Bird stat file.
const (
	FlappyHighScore = iota
	FlappyGamesPlayed
	FlappyTotalFlaps
	FlappyPipesPassed
	FlappyCrashes
	FlappyNumCounters
)

// Achievement slots for Flappy Bird.
const (
	FlappyAchFirstFlight = iota
	FlappyAchFrequentFlyer
	FlappyAchAcePilot
	FlappyAchPipeMaster
	FlappyAchLegendaryBird
	FlappyAchSurvivor
	FlappyAchCrashLanding
	FlappyAchMarathonFlyer
	FlappyNumAchievements
)

// FlappyAchievements lists Flappy Bird achievements in slot order.
var FlappyAchievements = [FlappyNumAchievements]AchievementDef{
	{"First Flight", "Score your first point", 10},
	{"Frequent Flyer", "Score 10 points", 50},
	{"Ace Pilot", "Score 25 points", 100},
	{"Pipe Master", "Score 50 points", 250},
	{"Legendary Bird", "Score 100 points", 500},
	{"Survivor", "Survive 5 minutes in one run", 150},
	{"Crash Landing", "Crash 50 times total", 100},
	{"Marathon Flyer", "Play 100 games total", 400},
}

// LoadFlappy opens the Flappy Bird stat file at its default location.
func LoadFlappy() *File {
	return Load(DefaultPath("flappy"), FlappyNumCounters, FlappyNumAchievements)
}
