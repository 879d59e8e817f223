package core

// BlastOutcome describes everything a single explosion changed.
type BlastOutcome struct {
	Affected       []Coord
	DestroyedWalls []Coord
	KilledEnemies  []EnemyID
	PlayerKilled   bool
}

// Contains reports whether c was covered by the blast.
func (o BlastOutcome) Contains(c Coord) bool {
	for _, a := range o.Affected {
		if a == c {
			return true
		}
	}
	return false
}

// ResolveBlast propagates an explosion from origin along the four arms.
//
// The origin is hit first. Each arm then walks 1..radius tiles:
// floor is hit and propagation continues, a destructible wall is destroyed
// and ends the arm, an indestructible wall or the map edge ends the arm
// without being hit. Only the grid is mutated; enemies and player are read.
func ResolveBlast(origin Coord, radius int, grid *Grid, enemies []*Enemy, player *Player) BlastOutcome {
	var out BlastOutcome
	killed := make(map[EnemyID]bool)

	hit := func(c Coord) {
		out.Affected = append(out.Affected, c)
		for _, e := range enemies {
			if e.At == c && !killed[e.ID] {
				killed[e.ID] = true
				out.KilledEnemies = append(out.KilledEnemies, e.ID)
			}
		}
		if player != nil && player.Alive && player.At == c {
			out.PlayerKilled = true
		}
	}

	hit(origin)

	for _, dir := range CardinalDirs {
		c := origin
		for step := 1; step <= radius; step++ {
			c = c.Step(dir)
			kind := grid.KindAt(c)
			if kind == WallIndestructible {
				break
			}
			if kind == WallDestructible {
				grid.Destroy(c)
				out.Affected = append(out.Affected, c)
				out.DestroyedWalls = append(out.DestroyedWalls, c)
				break
			}
			hit(c)
		}
	}

	return out
}
