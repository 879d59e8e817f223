package core

// Default bomb timings in seconds.
const (
	FuseSeconds  = 3.0
	BlastSeconds = 0.5
)

// timeEpsilon absorbs float drift when fixed frame steps are summed.
const timeEpsilon = 1e-9

// BombState is the phase of a bomb.
type BombState uint8

const (
	BombTicking BombState = iota
	BombExploding
	BombSpent
)

// String returns the string representation of a bomb state.
func (s BombState) String() string {
	switch s {
	case BombTicking:
		return "Ticking"
	case BombExploding:
		return "Exploding"
	case BombSpent:
		return "Spent"
	default:
		return "Unknown"
	}
}

// BombID identifies a bomb within a simulation.
type BombID int

// Bomb is a placed bomb.
// Origin and Radius are fixed at placement.
type Bomb struct {
	ID     BombID
	Origin Coord
	Radius int
	State  BombState

	FuseElapsed  float64
	BlastElapsed float64

	// Blast holds the tiles covered by the explosion once detonated.
	Blast []Coord

	fuse  float64
	blast float64
}

// NewBomb creates a ticking bomb. Non-positive timings fall back to the defaults.
func NewBomb(id BombID, origin Coord, radius int, fuse, blast float64) *Bomb {
	if fuse <= 0 {
		fuse = FuseSeconds
	}
	if blast <= 0 {
		blast = BlastSeconds
	}
	return &Bomb{
		ID:     id,
		Origin: origin,
		Radius: radius,
		State:  BombTicking,
		fuse:   fuse,
		blast:  blast,
	}
}

// Update advances the bomb by dt seconds. detonate is called exactly once,
// on the Ticking to Exploding transition. Returns true on that call.
func (b *Bomb) Update(dt float64, detonate func(*Bomb)) bool {
	if dt < 0 {
		dt = 0
	}
	switch b.State {
	case BombTicking:
		b.FuseElapsed += dt
		if b.FuseElapsed+timeEpsilon >= b.fuse {
			b.State = BombExploding
			if detonate != nil {
				detonate(b)
			}
			return true
		}
	case BombExploding:
		b.BlastElapsed += dt
		if b.BlastElapsed+timeEpsilon >= b.blast {
			b.State = BombSpent
		}
	}
	return false
}

// Live reports whether the bomb still occupies its tile.
func (b *Bomb) Live() bool {
	return b.State != BombSpent
}

// FuseLeft returns the seconds remaining before detonation.
func (b *Bomb) FuseLeft() float64 {
	if b.State != BombTicking {
		return 0
	}
	left := b.fuse - b.FuseElapsed
	if left < 0 {
		return 0
	}
	return left
}
