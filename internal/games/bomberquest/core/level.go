package core

import (
	"errors"
	"math/rand"
)

// Level construction errors.
var (
	ErrInvalidDimensions = errors.New("core: level dimensions must be positive")
	ErrNoEntrance        = errors.New("core: no entrance record and no floor tile to start on")
	ErrNoExitPlacement   = errors.New("core: no exit record and no destructible wall to place one under")
)

// Level is the initial state of a map, ready to be simulated.
// A Level is not mutated by the simulation and can start any number of runs.
type Level struct {
	Grid     *Grid
	Entrance Coord
	Exit     Exit

	// ExitFallback is true when no exit record was given and the exit
	// was bound to a randomly chosen destructible wall.
	ExitFallback bool

	Enemies  []Coord
	PowerUps []PowerUp

	// Hidden maps destructible-wall coordinates to the power-up beneath.
	Hidden map[Coord]PowerUpKind
}

// Load builds a Level from spawn records.
//
// Walls are applied first, whatever their position in records. The entrance
// tile is forced to floor. Without an exit record, one destructible wall is
// chosen uniformly with rng, enumerating candidates in row-major order.
// Records outside the grid are dropped, as are enemies and power-ups on
// indestructible walls and exits on indestructible walls. When several
// entrance or exit records are given, the last one wins.
func Load(records []SpawnRecord, width, height int, rng *rand.Rand) (*Level, error) {
	if width < 1 || height < 1 {
		return nil, ErrInvalidDimensions
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(0))
	}

	grid := NewGrid(width, height)
	for _, r := range records {
		if r.Kind != SpawnWall || !grid.InBounds(r.At) {
			continue
		}
		if r.Destructible {
			grid.Set(r.At, WallDestructible)
		} else {
			grid.Set(r.At, WallIndestructible)
		}
	}

	lvl := &Level{
		Grid:   grid,
		Hidden: make(map[Coord]PowerUpKind),
	}

	// Entrance before anything else so covering semantics see the final grid.
	hasEntrance := false
	for _, r := range records {
		if r.Kind == SpawnEntrance && grid.InBounds(r.At) {
			lvl.Entrance = r.At
			hasEntrance = true
		}
	}
	if hasEntrance {
		grid.Set(lvl.Entrance, Floor)
	} else {
		floors := grid.Coords(Floor)
		if len(floors) == 0 {
			return nil, ErrNoEntrance
		}
		lvl.Entrance = floors[0]
	}

	hasExit := false
	visible := make(map[Coord]int)
	for _, r := range records {
		if !grid.InBounds(r.At) {
			continue
		}
		kind := grid.KindAt(r.At)
		switch r.Kind {
		case SpawnExit:
			if kind == WallIndestructible {
				continue
			}
			lvl.Exit = Exit{At: r.At}
			hasExit = true
		case SpawnEnemy:
			if kind.Blocking() {
				continue
			}
			lvl.Enemies = append(lvl.Enemies, r.At)
		case SpawnPowerUp:
			switch kind {
			case WallDestructible:
				lvl.Hidden[r.At] = r.PowerUp
			case Floor:
				if i, ok := visible[r.At]; ok {
					lvl.PowerUps[i].Kind = r.PowerUp
					continue
				}
				visible[r.At] = len(lvl.PowerUps)
				lvl.PowerUps = append(lvl.PowerUps, PowerUp{At: r.At, Kind: r.PowerUp})
			}
		}
	}

	if !hasExit {
		candidates := grid.Coords(WallDestructible)
		if len(candidates) == 0 {
			return nil, ErrNoExitPlacement
		}
		lvl.Exit = Exit{At: candidates[rng.Intn(len(candidates))]}
		lvl.ExitFallback = true
	}
	lvl.Exit.Revealed = grid.KindAt(lvl.Exit.At) != WallDestructible

	return lvl, nil
}

// LoadTriples builds a Level from raw (x, y, typeCode) triples,
// skipping triples with unknown codes.
func LoadTriples(triples [][3]int, width, height int, rng *rand.Rand) (*Level, error) {
	records := make([]SpawnRecord, 0, len(triples))
	for _, t := range triples {
		if r, ok := ParseRecord(t[0], t[1], t[2]); ok {
			records = append(records, r)
		}
	}
	return Load(records, width, height, rng)
}
