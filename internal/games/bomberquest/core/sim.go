package core

import "math/rand"

// Outcome is the terminal status of a run.
type Outcome uint8

const (
	OutcomeRunning Outcome = iota
	OutcomeVictory
	OutcomeDefeat
)

// String returns the string representation of an outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeRunning:
		return "Running"
	case OutcomeVictory:
		return "Victory"
	case OutcomeDefeat:
		return "Defeat"
	default:
		return "Unknown"
	}
}

// Defeat reasons.
const (
	ReasonBombBlast    = "Bomb explosion"
	ReasonEnemyContact = "Enemy contact"
	ReasonTimeExpired  = "Time expired"
)

// Intent is the player input for one tick.
type Intent struct {
	Move      Dir
	PlaceBomb bool
}

// Stats counts what happened during a run.
type Stats struct {
	BombsPlaced       int
	WallsDestroyed    int
	EnemiesKilled     int
	PowerUpsCollected int
}

// TickResult is returned by every Tick call.
type TickResult struct {
	Tick    uint64
	Outcome Outcome
	Reason  string
	Events  []Event
}

// Terminal reports whether the run has ended.
func (r TickResult) Terminal() bool {
	return r.Outcome != OutcomeRunning
}

// Simulation runs one level. It is single-writer: Tick must not be called
// concurrently, and nothing else mutates it.
type Simulation struct {
	rules  Rules
	timing EnemyTiming
	rng    *rand.Rand
	sink   EventSink

	grid     *Grid
	player   *Player
	enemies  []*Enemy
	bombs    []*Bomb
	powerUps []PowerUp
	hidden   map[Coord]PowerUpKind
	exit     Exit

	tick        uint64
	elapsed     float64
	outcome     Outcome
	reason      string
	deathReason string
	nextBombID  BombID
	stats       Stats
	events      []Event
}

// NewSimulation starts a run on level. The level is copied, so it can be
// reused for restarts. sink may be nil.
func NewSimulation(level *Level, rules Rules, rng *rand.Rand, sink EventSink) *Simulation {
	rules = rules.withDefaults()
	if rng == nil {
		rng = rand.New(rand.NewSource(0))
	}

	s := &Simulation{
		rules: rules,
		timing: EnemyTiming{
			Turn: rules.EnemyTurnSeconds,
			Step: rules.EnemyStepSeconds,
		},
		rng:    rng,
		sink:   sink,
		grid:   level.Grid.Clone(),
		player: NewPlayer(level.Entrance, rules.StartCapacity, rules.StartRadius),
		hidden: make(map[Coord]PowerUpKind, len(level.Hidden)),
		exit:   level.Exit,
	}

	for i, at := range level.Enemies {
		s.enemies = append(s.enemies, NewEnemy(EnemyID(i+1), at))
	}
	s.powerUps = append(s.powerUps, level.PowerUps...)
	for c, k := range level.Hidden {
		s.hidden[c] = k
	}

	return s
}

// Tick advances the run by dt seconds in a fixed order:
// intent, bombs, enemies, pickups, exit unlock, victory, defeat.
// Once the run is terminal, Tick returns the final result without events
// and changes nothing else.
func (s *Simulation) Tick(dt float64, in Intent) TickResult {
	if s.outcome != OutcomeRunning {
		s.events = nil
		return s.result()
	}
	if dt < 0 {
		dt = 0
	}

	s.tick++
	s.elapsed += dt
	s.events = nil

	s.applyIntent(in)
	s.advanceBombs(dt)
	s.advanceEnemies(dt)
	s.collectPowerUps()
	s.checkUnlock()
	s.checkTerminal()

	return s.result()
}

func (s *Simulation) result() TickResult {
	return TickResult{
		Tick:    s.tick,
		Outcome: s.outcome,
		Reason:  s.reason,
		Events:  s.events,
	}
}

func (s *Simulation) emit(e Event) {
	e.Tick = s.tick
	s.events = append(s.events, e)
	if s.sink != nil {
		s.sink.Notify(e)
	}
}

// killPlayer is the only place the player dies. The first reason sticks.
func (s *Simulation) killPlayer(reason string) {
	if !s.player.Alive {
		return
	}
	s.player.Alive = false
	s.deathReason = reason
}

func (s *Simulation) applyIntent(in Intent) {
	if !s.player.Alive {
		return
	}

	if in.Move != DirNone {
		s.player.Facing = in.Move
		target := s.player.At.Step(in.Move)
		if !s.grid.IsBlocking(target) {
			s.player.At = target
		}
	}

	if in.PlaceBomb {
		s.placeBomb()
	}
}

func (s *Simulation) placeBomb() {
	if !s.player.CanPlaceBomb() || s.BombAt(s.player.At) {
		return
	}
	s.nextBombID++
	b := NewBomb(s.nextBombID, s.player.At, s.player.BombRadius, s.rules.FuseSeconds, s.rules.BlastSeconds)
	s.bombs = append(s.bombs, b)
	s.player.BombsActive++
	s.stats.BombsPlaced++
	s.emit(Event{Kind: EventBombPlaced, At: b.Origin})
}

func (s *Simulation) advanceBombs(dt float64) {
	for _, b := range s.bombs {
		b.Update(dt, s.detonate)
	}

	kept := s.bombs[:0]
	for _, b := range s.bombs {
		if b.State == BombSpent {
			s.player.bombExploded()
			continue
		}
		kept = append(kept, b)
	}
	for i := len(kept); i < len(s.bombs); i++ {
		s.bombs[i] = nil
	}
	s.bombs = kept
}

func (s *Simulation) detonate(b *Bomb) {
	out := ResolveBlast(b.Origin, b.Radius, s.grid, s.enemies, s.player)
	b.Blast = out.Affected
	s.emit(Event{Kind: EventBombExploded, At: b.Origin})

	for _, c := range out.DestroyedWalls {
		s.stats.WallsDestroyed++
		s.emit(Event{Kind: EventWallDestroyed, At: c})

		if kind, ok := s.hidden[c]; ok {
			delete(s.hidden, c)
			s.powerUps = append(s.powerUps, PowerUp{At: c, Kind: kind})
			s.emit(Event{Kind: EventPowerUpRevealed, At: c, PowerUp: kind})
		}
		if c == s.exit.At && !s.exit.Revealed {
			s.exit.Revealed = true
			s.emit(Event{Kind: EventExitRevealed, At: c})
		}
	}

	if len(out.KilledEnemies) > 0 {
		s.removeEnemies(out.KilledEnemies)
	}

	if out.PlayerKilled {
		s.killPlayer(ReasonBombBlast)
	}
}

func (s *Simulation) removeEnemies(ids []EnemyID) {
	dead := make(map[EnemyID]bool, len(ids))
	for _, id := range ids {
		dead[id] = true
	}

	kept := s.enemies[:0]
	for _, e := range s.enemies {
		if dead[e.ID] {
			s.stats.EnemiesKilled++
			s.emit(Event{Kind: EventEnemyKilled, At: e.At})
			continue
		}
		kept = append(kept, e)
	}
	for i := len(kept); i < len(s.enemies); i++ {
		s.enemies[i] = nil
	}
	s.enemies = kept
}

func (s *Simulation) advanceEnemies(dt float64) {
	for _, e := range s.enemies {
		e.Update(dt, s.grid, s.timing, s.rng)
		if e.Touches(s.player) {
			s.killPlayer(ReasonEnemyContact)
		}
	}
}

func (s *Simulation) collectPowerUps() {
	if !s.player.Alive {
		return
	}

	kept := s.powerUps[:0]
	for _, p := range s.powerUps {
		if p.At != s.player.At {
			kept = append(kept, p)
			continue
		}
		s.player.Apply(p.Kind)
		s.stats.PowerUpsCollected++
		s.emit(Event{Kind: EventPowerUpCollected, At: p.At, PowerUp: p.Kind})
	}
	s.powerUps = kept
}

func (s *Simulation) checkUnlock() {
	if s.exit.Unlocked || len(s.enemies) > 0 {
		return
	}
	s.exit.Unlocked = true
	s.emit(Event{Kind: EventExitUnlocked, At: s.exit.At})
}

func (s *Simulation) checkTerminal() {
	if s.player.Alive && s.exit.Accessible() && s.player.At == s.exit.At {
		s.outcome = OutcomeVictory
		s.emit(Event{Kind: EventVictory, At: s.exit.At})
		return
	}

	if s.player.Alive && s.rules.TimeLimit > 0 && s.elapsed+timeEpsilon >= s.rules.TimeLimit {
		s.killPlayer(ReasonTimeExpired)
	}

	if !s.player.Alive {
		s.outcome = OutcomeDefeat
		s.reason = s.deathReason
		s.emit(Event{Kind: EventPlayerDied, At: s.player.At, Reason: s.reason})
	}
}

// BombAt reports whether a live bomb sits on c.
func (s *Simulation) BombAt(c Coord) bool {
	for _, b := range s.bombs {
		if b.Origin == c && b.Live() {
			return true
		}
	}
	return false
}

// TickCount returns the number of ticks simulated.
func (s *Simulation) TickCount() uint64 {
	return s.tick
}

// Elapsed returns simulated seconds.
func (s *Simulation) Elapsed() float64 {
	return s.elapsed
}

// Remaining returns the seconds left before the time limit, or 0 without one.
func (s *Simulation) Remaining() float64 {
	if s.rules.TimeLimit <= 0 {
		return 0
	}
	left := s.rules.TimeLimit - s.elapsed
	if left < 0 {
		return 0
	}
	return left
}

// Rules returns the effective rules of the run.
func (s *Simulation) Rules() Rules {
	return s.rules
}

// Outcome returns the run status.
func (s *Simulation) Outcome() Outcome {
	return s.outcome
}

// Reason returns the defeat reason, empty otherwise.
func (s *Simulation) Reason() string {
	return s.reason
}

// Player returns a copy of the player.
func (s *Simulation) Player() Player {
	return *s.player
}

// Exit returns a copy of the exit.
func (s *Simulation) Exit() Exit {
	return s.exit
}

// KindAt returns the current kind of tile c.
func (s *Simulation) KindAt(c Coord) CellKind {
	return s.grid.KindAt(c)
}

// EnemyCount returns the number of living enemies.
func (s *Simulation) EnemyCount() int {
	return len(s.enemies)
}

// Enemies returns copies of the living enemies.
func (s *Simulation) Enemies() []Enemy {
	out := make([]Enemy, len(s.enemies))
	for i, e := range s.enemies {
		out[i] = *e
	}
	return out
}

// Bombs returns copies of the live bombs.
func (s *Simulation) Bombs() []Bomb {
	out := make([]Bomb, len(s.bombs))
	for i, b := range s.bombs {
		out[i] = *b
	}
	return out
}

// PowerUps returns the uncovered power-ups.
func (s *Simulation) PowerUps() []PowerUp {
	out := make([]PowerUp, len(s.powerUps))
	copy(out, s.powerUps)
	return out
}

// HiddenPowerUp returns the power-up still covered by the wall at c.
func (s *Simulation) HiddenPowerUp(c Coord) (PowerUpKind, bool) {
	k, ok := s.hidden[c]
	return k, ok
}

// Stats returns the run counters.
func (s *Simulation) Stats() Stats {
	return s.stats
}
