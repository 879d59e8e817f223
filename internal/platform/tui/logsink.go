package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bomberquest/internal/games/bomberquest/core"
)

// LogSink writes simulation events to a logger at debug level.
type LogSink struct {
	logger *log.Logger
}

// NewLogSink creates an event sink backed by logger.
func NewLogSink(logger *log.Logger) *LogSink {
	return &LogSink{logger: logger}
}

// Notify implements core.EventSink.
func (s *LogSink) Notify(e core.Event) {
	if s == nil || s.logger == nil {
		return
	}

	kv := []any{"tick", e.Tick, "x", e.At.X, "y", e.At.Y}
	switch e.Kind {
	case core.EventPowerUpRevealed, core.EventPowerUpCollected:
		kv = append(kv, "powerup", e.PowerUp.String())
	case core.EventPlayerDied:
		kv = append(kv, "reason", e.Reason)
	}

	// Outcomes matter more than the moment-to-moment flow
	if e.Kind == core.EventPlayerDied || e.Kind == core.EventVictory {
		s.logger.Info(e.Kind.String(), kv...)
		return
	}
	s.logger.Debug(e.Kind.String(), kv...)
}

var _ core.EventSink = (*LogSink)(nil)
