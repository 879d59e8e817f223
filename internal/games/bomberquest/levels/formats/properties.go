package formats

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/bomberquest/internal/games/bomberquest/core"
)

// ParseProperties parses a properties map file.
//
// Placement lines have the form "x,y=type". Keys without a comma are
// metadata: id, name, width, height and time_limit are recognised, others
// land in Metadata. Blank lines and lines starting with '#' or '!' are
// ignored. Malformed placements are skipped and counted.
func ParseProperties(data []byte) (Level, error) {
	level := Level{Metadata: make(map[string]string)}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' || line[0] == '!' {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			level.Skipped++
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		if !strings.Contains(key, ",") {
			if err := level.setMeta(key, value); err != nil {
				return Level{}, err
			}
			continue
		}

		record, ok := parsePlacement(key, value)
		if !ok {
			level.Skipped++
			continue
		}
		level.Records = append(level.Records, record)
	}
	if err := scanner.Err(); err != nil {
		return Level{}, fmt.Errorf("properties scan: %w", err)
	}

	level.fitDimensions()
	return level, nil
}

func parsePlacement(key, value string) (core.SpawnRecord, bool) {
	xs, ys, ok := strings.Cut(key, ",")
	if !ok {
		return core.SpawnRecord{}, false
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return core.SpawnRecord{}, false
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return core.SpawnRecord{}, false
	}
	code, err := strconv.Atoi(value)
	if err != nil {
		return core.SpawnRecord{}, false
	}
	return core.ParseRecord(x, y, code)
}

func (l *Level) setMeta(key, value string) error {
	switch strings.ToLower(key) {
	case "id":
		l.ID = value
	case "name":
		l.Name = value
	case "width":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid width %q: %w", value, err)
		}
		l.Width = n
	case "height":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid height %q: %w", value, err)
		}
		l.Height = n
	case "time_limit":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid time_limit %q: %w", value, err)
		}
		l.TimeLimit = f
	default:
		l.Metadata[key] = value
	}
	return nil
}
