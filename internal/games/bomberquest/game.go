// Package bomberquest provides the BomberQuest bomb-placement maze game.
// The rules live in the core subpackage; this package adapts them to the
// platform: campaign progression, scoring, pause and terminal rendering.
package bomberquest

import (
	"math"
	"math/rand"
	"strconv"

	"github.com/vovakirdan/bomberquest/internal/config"
	platformcore "github.com/vovakirdan/bomberquest/internal/core"
	"github.com/vovakirdan/bomberquest/internal/games/bomberquest/core"
	"github.com/vovakirdan/bomberquest/internal/games/bomberquest/levels"
	"github.com/vovakirdan/bomberquest/internal/registry"
)

// Game IDs of the registered modes.
const (
	IDTimed   = "bomberquest"
	IDRelaxed = "bomberquest_relaxed"
)

// Mode selects between the timed campaign and the untimed variant.
type Mode int

const (
	ModeTimed Mode = iota
	ModeRelaxed
)

// Phase is the high-level state of a game session.
type Phase int

const (
	PhasePlaying    Phase = iota
	PhaseLevelClear       // Short break before the next campaign level
	PhaseVictory          // Campaign complete
	PhaseDefeat
	PhaseError // No playable level could be loaded
)

// Game implements the BomberQuest campaign on top of a core.Simulation.
type Game struct {
	mode       Mode
	cfg        config.BomberQuestConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	dt         float64

	// Level set
	allLevels  []levels.Level
	levelIndex int
	sim        *core.Simulation

	// Session status
	phase      Phase
	paused     bool
	score      int
	ticks      int
	clearTimer float64
	loadErr    error
	messages   messageLog
	runs       []RunSummary // Finished runs not yet drained
	sink       core.EventSink
	startLevel int  // Per-instance override of SetStartLevel
	ownStart   bool // Set by StartAt; the package start level is never consulted

	// Screen dimensions
	screenW int
	screenH int
}

// Package-level variables for configuration
var (
	configPath         string
	difficultyPreset   config.DifficultyPreset
	selectedStartLevel int
	levelsDir          string
	mapFile            string
	eventSink          core.EventSink
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		difficultyPreset = "" // Use config default
		return
	}
	difficultyPreset = p
}

// SetStartLevel sets the starting level (1-indexed). 0 means start from beginning.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// GetStartLevel returns the currently selected start level.
func GetStartLevel() int {
	return selectedStartLevel
}

// SetLevelsDir loads the campaign from a directory instead of the builtin maps.
func SetLevelsDir(dir string) {
	levelsDir = dir
}

// SetMapFile restricts the campaign to a single map file.
func SetMapFile(path string) {
	mapFile = path
}

// SetEventSink registers an extra observer for simulation events.
func SetEventSink(sink core.EventSink) {
	eventSink = sink
}

func init() {
	registry.Register(IDTimed, func() registry.Game {
		return New(ModeTimed)
	})
	registry.Register(IDRelaxed, func() registry.Game {
		return New(ModeRelaxed)
	})
}

// AttachSink registers an observer for this game's simulation events,
// in addition to the one set with SetEventSink.
func (g *Game) AttachSink(sink core.EventSink) {
	g.sink = sink
}

// StartAt makes the next Reset begin at level (1-indexed) for this game only.
// From then on the game ignores SetStartLevel, so concurrent sessions never
// touch the package setting.
func (g *Game) StartAt(level int) {
	g.startLevel = level
	g.ownStart = true
}

// New creates a new BomberQuest game.
func New(mode Mode) *Game {
	return &Game{mode: mode}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeRelaxed {
		return IDRelaxed
	}
	return IDTimed
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeRelaxed {
		return "BomberQuest (Relaxed)"
	}
	return "BomberQuest"
}

// Description returns a one-line summary for menus.
func (g *Game) Description() string {
	if g.mode == ModeRelaxed {
		return "Clear the mazes at your own pace, no countdown"
	}
	return "Blast walls, defeat every enemy and reach the exit before time runs out"
}

// LoadLevels returns the level set selected by SetMapFile and SetLevelsDir.
func LoadLevels() ([]levels.Level, error) {
	if mapFile != "" {
		lvl, err := levels.LoadPath(mapFile)
		if err != nil {
			return nil, err
		}
		return []levels.Level{lvl}, nil
	}
	loader := levels.Builtin()
	if levelsDir != "" {
		loader = levels.NewLoader(levelsDir)
	}
	return loader.LoadAll()
}

// Reset initializes or restarts the game.
func (g *Game) Reset(rt platformcore.RuntimeConfig) {
	cfg, err := config.LoadBomberQuest(configPath)
	if err != nil {
		cfg = config.DefaultBomberQuestConfig()
	}
	if difficultyPreset != "" {
		config.ApplyBomberQuestPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	rt = rt.WithDefaults()
	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.dt = 1.0 / float64(rt.TickRate)
	g.screenW = rt.ScreenW
	g.screenH = rt.ScreenH

	g.phase = PhasePlaying
	g.paused = false
	g.score = 0
	g.ticks = 0
	g.loadErr = nil
	g.sim = nil
	g.messages = messageLog{}

	allLevels, err := LoadLevels()
	if err == nil && len(allLevels) == 0 {
		err = errNoLevels
	}
	if err != nil {
		g.fail(err)
		return
	}
	g.allLevels = allLevels

	// Apply selected start level
	start := g.startLevel
	g.startLevel = 0
	if !g.ownStart && selectedStartLevel > 0 {
		start = selectedStartLevel
		selectedStartLevel = 0 // Reset after use
	}
	if start > 0 && start <= len(allLevels) {
		g.levelIndex = start - 1
	} else {
		g.levelIndex = 0
	}

	g.loadCurrentLevel()
}

// Resize updates the screen dimensions without restarting the run.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
}

// loadCurrentLevel starts a fresh simulation of the level at levelIndex.
func (g *Game) loadCurrentLevel() {
	lvl := g.allLevels[g.levelIndex]
	built, err := lvl.Build(g.rng)
	if err != nil {
		g.fail(err)
		return
	}

	var sinks core.MultiSink
	sinks = append(sinks, core.EventSinkFunc(g.onEvent))
	if eventSink != nil {
		sinks = append(sinks, eventSink)
	}
	if g.sink != nil {
		sinks = append(sinks, g.sink)
	}

	g.sim = core.NewSimulation(built, g.rulesFor(lvl), g.rng, sinks)
	g.phase = PhasePlaying
	g.messages.push("Level "+strconv.Itoa(g.levelIndex+1)+": "+lvl.Title(), messageTTL)
}

// rulesFor derives the run rules from config, the map and difficulty.
func (g *Game) rulesFor(lvl levels.Level) core.Rules {
	rules := g.cfg.ToRules()

	base := g.cfg.Simulation.TimeLimit
	if lvl.TimeLimit > 0 {
		base = lvl.TimeLimit
	}
	if g.mode == ModeRelaxed {
		base = 0
	}
	rules.TimeLimit = g.difficulty.TimeLimit(base, g.score, g.ticks)
	rules.EnemyStepSeconds = g.difficulty.Interval(rules.EnemyStepSeconds, g.score, g.ticks)
	rules.EnemyTurnSeconds = g.difficulty.Interval(rules.EnemyTurnSeconds, g.score, g.ticks)
	return rules
}

func (g *Game) fail(err error) {
	g.loadErr = err
	g.sim = nil
	g.phase = PhaseError
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	// Handle restart
	if in.Has(platformcore.ActionRestart) && g.gameOver() {
		g.Reset(platformcore.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: int(math.Round(1 / g.dt)),
		})
		return platformcore.StepResult{State: g.State()}
	}

	if g.gameOver() {
		return platformcore.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(platformcore.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return platformcore.StepResult{State: g.State()}
	}

	g.ticks++
	g.messages.advance(g.dt)

	switch g.phase {
	case PhaseLevelClear:
		g.clearTimer -= g.dt
		if g.clearTimer <= 0 {
			g.levelIndex++
			g.loadCurrentLevel()
		}
	case PhasePlaying:
		res := g.sim.Tick(g.dt, IntentFromFrame(in))
		switch res.Outcome {
		case core.OutcomeVictory:
			g.levelCleared()
			g.recordRun(res.Outcome)
		case core.OutcomeDefeat:
			g.phase = PhaseDefeat
			g.messages.push("Game over: "+res.Reason, messageTTL)
			g.recordRun(res.Outcome)
		}
	}

	return platformcore.StepResult{State: g.State()}
}

func (g *Game) levelCleared() {
	g.score += g.cfg.Scoring.Victory
	g.score += g.cfg.Scoring.SecondBonus * int(g.sim.Remaining())

	if g.levelIndex+1 >= len(g.allLevels) {
		g.score += g.cfg.Scoring.CampaignBonus
		g.phase = PhaseVictory
		g.messages.push("Campaign complete!", messageTTL)
		return
	}

	g.phase = PhaseLevelClear
	g.clearTimer = g.cfg.Simulation.LevelClearDelay
	g.messages.push("Level clear!", messageTTL)
}

// onEvent scores simulation events and feeds the message ticker.
func (g *Game) onEvent(e core.Event) {
	switch e.Kind {
	case core.EventEnemyKilled:
		g.score += g.cfg.Scoring.Enemy
		g.messages.push("Enemy defeated!", messageTTL)
	case core.EventWallDestroyed:
		g.score += g.cfg.Scoring.Wall
	case core.EventPowerUpCollected:
		g.score += g.cfg.Scoring.PowerUp
		if e.PowerUp == core.PowerUpCapacity {
			g.messages.push("+1 bomb capacity", messageTTL)
		} else {
			g.messages.push("+1 blast radius", messageTTL)
		}
	case core.EventPowerUpRevealed:
		g.messages.push("A power-up appeared", messageTTL)
	case core.EventExitRevealed:
		g.messages.push("The exit is revealed!", messageTTL)
	case core.EventExitUnlocked:
		g.messages.push("EXIT UNLOCKED!", messageTTL)
	}
}

// IntentFromFrame converts platform actions into one simulation intent.
// At most one move is taken per tick, in Up, Down, Left, Right priority.
func IntentFromFrame(in platformcore.InputFrame) core.Intent {
	var intent core.Intent
	switch {
	case in.Has(platformcore.ActionUp):
		intent.Move = core.DirUp
	case in.Has(platformcore.ActionDown):
		intent.Move = core.DirDown
	case in.Has(platformcore.ActionLeft):
		intent.Move = core.DirLeft
	case in.Has(platformcore.ActionRight):
		intent.Move = core.DirRight
	}
	intent.PlaceBomb = in.Has(platformcore.ActionBomb)
	return intent
}

func (g *Game) gameOver() bool {
	return g.phase == PhaseVictory || g.phase == PhaseDefeat || g.phase == PhaseError
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Score:    g.score,
		GameOver: g.gameOver(),
		Paused:   g.paused,
	}
}

// Status is the session information shown around the map.
type Status struct {
	Phase      Phase
	Paused     bool
	Score      int
	Level      int // 1-indexed
	LevelCount int
	LevelName  string
	Message    string
	Err        error
}

// Status returns the current session information.
func (g *Game) Status() Status {
	st := Status{
		Phase:      g.phase,
		Paused:     g.paused,
		Score:      g.score,
		Level:      g.levelIndex + 1,
		LevelCount: len(g.allLevels),
		Message:    g.messages.current(),
		Err:        g.loadErr,
	}
	if g.levelIndex < len(g.allLevels) {
		st.LevelName = g.allLevels[g.levelIndex].Title()
	}
	return st
}

// Snapshot returns the state of the running level.
// ok is false when no level is loaded.
func (g *Game) Snapshot() (snap core.Snapshot, ok bool) {
	if g.sim == nil {
		return core.Snapshot{}, false
	}
	return g.sim.Snapshot(), true
}

// LevelCount returns the number of available levels.
func LevelCount() int {
	lvls, err := LoadLevels()
	if err != nil {
		return 0
	}
	return len(lvls)
}

// LevelNames returns the names of all levels.
func LevelNames() []string {
	lvls, err := LoadLevels()
	if err != nil {
		return nil
	}
	names := make([]string, len(lvls))
	for i, l := range lvls {
		names[i] = l.Title()
	}
	return names
}
