package storage

import (
	"fmt"
	"time"
)

// ModeSummary aggregates everything recorded for one game mode.
type ModeSummary struct {
	GameID     string
	Sessions   int // Saved session scores
	HighScore  int
	AvgScore   float64
	Runs       int // Level attempts of any outcome
	Clears     int
	Abandoned  int
	PlayTime   float64 // Simulated seconds across all runs
	LastPlayed time.Time
}

// ClearRate is the share of runs that ended in victory.
func (m ModeSummary) ClearRate() float64 {
	if m.Runs == 0 {
		return 0
	}
	return float64(m.Clears) / float64(m.Runs)
}

// ModeSummary retrieves aggregated statistics for one mode.
// A mode that was never played yields a zero summary, not an error.
func (s *Store) ModeSummary(gameID string) (*ModeSummary, error) {
	all, err := s.ModeSummaries()
	if err != nil {
		return nil, err
	}
	if sum, ok := all[gameID]; ok {
		return sum, nil
	}
	return &ModeSummary{GameID: gameID}, nil
}

// ModeSummaries retrieves statistics for every mode with any saved score or run.
func (s *Store) ModeSummaries() (map[string]*ModeSummary, error) {
	out := make(map[string]*ModeSummary)
	get := func(id string) *ModeSummary {
		if sum, ok := out[id]; ok {
			return sum
		}
		sum := &ModeSummary{GameID: id}
		out[id] = sum
		return sum
	}

	rows, err := s.db.Query(
		`SELECT game_id, COUNT(*), MAX(score), AVG(score), MAX(created_at)
		 FROM scores
		 GROUP BY game_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get score summaries: %w", err)
	}
	for rows.Next() {
		var id string
		var count, high int
		var avg float64
		var last any
		if err := rows.Scan(&id, &count, &high, &avg, &last); err != nil {
			rows.Close()
			return nil, fmt.Errorf("storage: cannot scan summary row: %w", err)
		}
		sum := get(id)
		sum.Sessions = count
		sum.HighScore = high
		sum.AvgScore = avg
		sum.LastPlayed = parseTime(last)
	}
	err = rows.Err()
	rows.Close()
	if err != nil {
		return nil, fmt.Errorf("storage: summary iteration error: %w", err)
	}

	rows, err = s.db.Query(
		`SELECT game_id, COUNT(*),
		        SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END),
		        SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END),
		        COALESCE(SUM(duration_secs), 0),
		        MAX(created_at)
		 FROM runs
		 GROUP BY game_id`,
		OutcomeVictory, OutcomeAbandoned,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run summaries: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		var runs, clears, abandoned int
		var playTime float64
		var last any
		if err := rows.Scan(&id, &runs, &clears, &abandoned, &playTime, &last); err != nil {
			return nil, fmt.Errorf("storage: cannot scan summary row: %w", err)
		}
		sum := get(id)
		sum.Runs = runs
		sum.Clears = clears
		sum.Abandoned = abandoned
		sum.PlayTime = playTime
		if t := parseTime(last); t.After(sum.LastPlayed) {
			sum.LastPlayed = t
		}
	}

	return out, rows.Err()
}
