package core

// Defaults applied by RuntimeConfig.WithDefaults.
const (
	DefaultScreenW  = 80
	DefaultScreenH  = 24
	DefaultTickRate = 60
)

// RuntimeConfig is what a frontend tells a game when it starts a run.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in cells (pixels for the window frontend)
	ScreenH  int   // Screen height
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 lets the frontend pick one
}

// WithDefaults returns a copy with unset sizes and tick rate filled in.
// The seed is left alone.
func (c RuntimeConfig) WithDefaults() RuntimeConfig {
	if c.ScreenW <= 0 {
		c.ScreenW = DefaultScreenW
	}
	if c.ScreenH <= 0 {
		c.ScreenH = DefaultScreenH
	}
	if c.TickRate <= 0 {
		c.TickRate = DefaultTickRate
	}
	return c
}

// GameState is the session status a game reports to the frontend.
type GameState struct {
	Score    int
	GameOver bool // Set once the run has ended
	Paused   bool
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State GameState
}
