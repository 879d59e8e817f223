package core

// EnemyView is the render-facing state of an enemy.
type EnemyView struct {
	ID     EnemyID
	At     Coord
	Facing Dir
}

// BombView is the render-facing state of a bomb.
type BombView struct {
	ID       BombID
	Origin   Coord
	Radius   int
	State    BombState
	FuseLeft float64
}

// Snapshot is a read-only copy of the simulation taken between ticks.
type Snapshot struct {
	Tick   uint64
	Width  int
	Height int
	Cells  []CellKind // Row-major, Width*Height

	Player   Player
	Enemies  []EnemyView
	Bombs    []BombView
	Blast    []Coord // Tiles covered by currently exploding bombs
	PowerUps []PowerUp
	Exit     Exit // At is the zero Coord until the exit is revealed

	EnemiesLeft int
	Elapsed     float64
	TimeLimit   float64 // 0 when the run is untimed
	Remaining   float64

	Outcome Outcome
	Reason  string
	Stats   Stats
}

// Snapshot captures the current state for renderers.
func (s *Simulation) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:        s.tick,
		Width:       s.grid.W,
		Height:      s.grid.H,
		Cells:       s.grid.Cells(),
		Player:      *s.player,
		PowerUps:    s.PowerUps(),
		Exit:        s.exit,
		EnemiesLeft: len(s.enemies),
		Elapsed:     s.elapsed,
		TimeLimit:   s.rules.TimeLimit,
		Remaining:   s.Remaining(),
		Outcome:     s.outcome,
		Reason:      s.reason,
		Stats:       s.stats,
	}

	if !snap.Exit.Revealed {
		snap.Exit.At = Coord{}
	}

	for _, e := range s.enemies {
		snap.Enemies = append(snap.Enemies, EnemyView{ID: e.ID, At: e.At, Facing: e.Facing})
	}
	for _, b := range s.bombs {
		snap.Bombs = append(snap.Bombs, BombView{
			ID:       b.ID,
			Origin:   b.Origin,
			Radius:   b.Radius,
			State:    b.State,
			FuseLeft: b.FuseLeft(),
		})
		if b.State == BombExploding {
			snap.Blast = append(snap.Blast, b.Blast...)
		}
	}

	return snap
}

// KindAt returns the captured kind of tile c.
// Coordinates outside the map read as WallIndestructible.
func (s Snapshot) KindAt(c Coord) CellKind {
	if c.X < 0 || c.X >= s.Width || c.Y < 0 || c.Y >= s.Height {
		return WallIndestructible
	}
	return s.Cells[c.Y*s.Width+c.X]
}

// InBlast reports whether c is covered by an active explosion.
func (s Snapshot) InBlast(c Coord) bool {
	for _, b := range s.Blast {
		if b == c {
			return true
		}
	}
	return false
}

// EnemyAt reports whether a living enemy stands on c.
func (s Snapshot) EnemyAt(c Coord) bool {
	for _, e := range s.Enemies {
		if e.At == c {
			return true
		}
	}
	return false
}

// BombAt returns the live bomb on c, if any.
func (s Snapshot) BombAt(c Coord) (BombView, bool) {
	for _, b := range s.Bombs {
		if b.Origin == c {
			return b, true
		}
	}
	return BombView{}, false
}

// PowerUpAt returns the uncovered power-up on c, if any.
func (s Snapshot) PowerUpAt(c Coord) (PowerUp, bool) {
	for _, p := range s.PowerUps {
		if p.At == c {
			return p, true
		}
	}
	return PowerUp{}, false
}
