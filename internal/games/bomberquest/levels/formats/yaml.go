package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/bomberquest/internal/games/bomberquest/core"
)

// YAMLLevel represents the YAML structure for a map file.
type YAMLLevel struct {
	ID        string            `yaml:"id"`
	Name      string            `yaml:"name"`
	Size      YAMLSize          `yaml:"size"`
	TimeLimit float64           `yaml:"time_limit,omitempty"`
	Records   []YAMLRecord      `yaml:"records"`
	Metadata  map[string]string `yaml:"metadata,omitempty"`
}

// YAMLSize represents grid dimensions.
type YAMLSize struct {
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// YAMLRecord represents a single placement in YAML format.
type YAMLRecord struct {
	X    int `yaml:"x"`
	Y    int `yaml:"y"`
	Type int `yaml:"type"`
}

// ParseYAML parses a YAML map file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	level := Level{
		ID:        yl.ID,
		Name:      yl.Name,
		Width:     yl.Size.W,
		Height:    yl.Size.H,
		TimeLimit: yl.TimeLimit,
		Metadata:  yl.Metadata,
	}
	if level.Metadata == nil {
		level.Metadata = make(map[string]string)
	}

	for _, r := range yl.Records {
		record, ok := core.ParseRecord(r.X, r.Y, r.Type)
		if !ok {
			level.Skipped++ // Unknown type code
			continue
		}
		level.Records = append(level.Records, record)
	}

	level.fitDimensions()
	return level, nil
}
