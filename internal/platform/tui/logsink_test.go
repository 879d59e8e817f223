package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bomberquest/internal/games/bomberquest/core"
)

func TestLogSinkLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.InfoLevel})
	sink := NewLogSink(logger)

	sink.Notify(core.Event{Kind: core.EventBombPlaced, Tick: 1})
	if buf.Len() != 0 {
		t.Errorf("bomb placement should log at debug level, got %q", buf.String())
	}

	sink.Notify(core.Event{Kind: core.EventPlayerDied, Tick: 3, At: core.Coord{X: 1, Y: 2}, Reason: core.ReasonBombBlast})
	out := buf.String()
	if !strings.Contains(out, "PlayerDied") || !strings.Contains(out, "reason=") {
		t.Errorf("expected death with reason, got %q", out)
	}
}

func TestLogSinkPowerUp(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	NewLogSink(logger).Notify(core.Event{Kind: core.EventPowerUpCollected, PowerUp: core.PowerUpCapacity})

	if !strings.Contains(buf.String(), "powerup=") {
		t.Errorf("expected power-up kind in %q", buf.String())
	}
}

func TestLogSinkNil(t *testing.T) {
	var sink *LogSink
	sink.Notify(core.Event{Kind: core.EventVictory}) // must not panic

	NewLogSink(nil).Notify(core.Event{Kind: core.EventVictory})
}
