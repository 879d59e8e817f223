package core

// Stat caps for the player.
const (
	MaxBombCapacity = 8
	MaxBombRadius   = 8
)

// Player is the controllable character.
type Player struct {
	At           Coord
	Facing       Dir
	BombCapacity int // Simultaneous bombs allowed, 1..MaxBombCapacity
	BombsActive  int // Bombs placed and not yet spent
	BombRadius   int // Blast arm length, 1..MaxBombRadius
	Alive        bool
}

// NewPlayer creates a living player at c with clamped starting stats.
func NewPlayer(at Coord, capacity, radius int) *Player {
	return &Player{
		At:           at,
		Facing:       DirDown,
		BombCapacity: clamp(capacity, 1, MaxBombCapacity),
		BombRadius:   clamp(radius, 1, MaxBombRadius),
		Alive:        true,
	}
}

// CanPlaceBomb reports whether another bomb fits under the capacity.
func (p *Player) CanPlaceBomb() bool {
	return p.Alive && p.BombsActive < p.BombCapacity
}

// Apply raises the stat for a collected power-up.
// Returns false when the stat was already at its cap.
func (p *Player) Apply(kind PowerUpKind) bool {
	switch kind {
	case PowerUpCapacity:
		if p.BombCapacity >= MaxBombCapacity {
			return false
		}
		p.BombCapacity++
	case PowerUpRadius:
		if p.BombRadius >= MaxBombRadius {
			return false
		}
		p.BombRadius++
	default:
		return false
	}
	return true
}

// bombExploded releases one active bomb slot.
func (p *Player) bombExploded() {
	if p.BombsActive > 0 {
		p.BombsActive--
	}
}

// PowerUp is an uncovered pickup lying on a floor tile.
type PowerUp struct {
	At   Coord
	Kind PowerUpKind
}

// Exit is the level goal.
type Exit struct {
	At       Coord
	Unlocked bool // All enemies defeated
	Revealed bool // Cover wall destroyed, or never covered
}

// Accessible reports whether the player may leave through the exit.
func (e Exit) Accessible() bool {
	return e.Unlocked && e.Revealed
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
