package core

import "math/rand"

// EnemyID identifies an enemy within a level.
type EnemyID int

// Enemy is a random-walking monster.
type Enemy struct {
	ID     EnemyID
	At     Coord
	Facing Dir

	turnTimer float64
	stepTimer float64
}

// NewEnemy creates an enemy standing still at c.
func NewEnemy(id EnemyID, at Coord) *Enemy {
	return &Enemy{ID: id, At: at, Facing: DirNone}
}

// EnemyTiming holds the random-walk cadence in seconds.
type EnemyTiming struct {
	Turn float64 // Interval between direction picks
	Step float64 // Interval between one-tile moves
}

// Update advances the enemy. A new facing is drawn from rng whenever the
// turn timer elapses; a one-tile move in the current facing is attempted
// whenever the step timer elapses and is rejected if the target blocks.
// Returns true if the enemy changed tile.
func (e *Enemy) Update(dt float64, grid *Grid, timing EnemyTiming, rng *rand.Rand) bool {
	if dt < 0 {
		dt = 0
	}

	e.turnTimer += dt
	if timing.Turn > 0 && e.turnTimer+timeEpsilon >= timing.Turn {
		e.turnTimer = 0
		e.Facing = CardinalDirs[rng.Intn(len(CardinalDirs))]
	}

	e.stepTimer += dt
	if timing.Step <= 0 || e.stepTimer+timeEpsilon < timing.Step {
		return false
	}
	e.stepTimer = 0

	if e.Facing == DirNone {
		return false
	}
	target := e.At.Step(e.Facing)
	if grid.IsBlocking(target) {
		return false
	}
	e.At = target
	return true
}

// Touches reports whether the enemy shares a tile with a living player.
func (e *Enemy) Touches(p *Player) bool {
	return p != nil && p.Alive && e.At == p.At
}
