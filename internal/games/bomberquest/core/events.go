package core

// EventKind identifies a simulation event.
type EventKind uint8

const (
	EventBombPlaced EventKind = iota
	EventBombExploded
	EventPowerUpCollected
	EventPlayerDied
	EventVictory
	EventWallDestroyed
	EventEnemyKilled
	EventExitRevealed
	EventExitUnlocked
	EventPowerUpRevealed
)

// String returns the string representation of an event kind.
func (k EventKind) String() string {
	switch k {
	case EventBombPlaced:
		return "BombPlaced"
	case EventBombExploded:
		return "BombExploded"
	case EventPowerUpCollected:
		return "PowerUpCollected"
	case EventPlayerDied:
		return "PlayerDied"
	case EventVictory:
		return "Victory"
	case EventWallDestroyed:
		return "WallDestroyed"
	case EventEnemyKilled:
		return "EnemyKilled"
	case EventExitRevealed:
		return "ExitRevealed"
	case EventExitUnlocked:
		return "ExitUnlocked"
	case EventPowerUpRevealed:
		return "PowerUpRevealed"
	default:
		return "Unknown"
	}
}

// Event is a discrete notification emitted during a tick.
type Event struct {
	Kind    EventKind
	Tick    uint64
	At      Coord
	PowerUp PowerUpKind // PowerUpCollected, PowerUpRevealed
	Reason  string      // PlayerDied
}

// EventSink receives events as they happen.
// Notify is called synchronously from inside Tick and must not call back
// into the simulation.
type EventSink interface {
	Notify(Event)
}

// EventSinkFunc adapts a function to EventSink.
type EventSinkFunc func(Event)

// Notify calls f(e).
func (f EventSinkFunc) Notify(e Event) {
	f(e)
}

// MultiSink fans events out to several sinks in order.
type MultiSink []EventSink

// Notify forwards e to every non-nil sink.
func (m MultiSink) Notify(e Event) {
	for _, s := range m {
		if s != nil {
			s.Notify(e)
		}
	}
}
