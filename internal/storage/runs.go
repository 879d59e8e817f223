package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// Run outcomes as stored in the runs table.
const (
	OutcomeVictory   = "victory"
	OutcomeDefeat    = "defeat"
	OutcomeAbandoned = "abandoned" // Player quit mid-level
)

// RunResult is one finished attempt at a level.
type RunResult struct {
	ID             int64
	GameID         string
	LevelID        string
	Outcome        string
	Reason         string // Defeat reason, empty otherwise
	Score          int    // Session score when the run ended
	Ticks          uint64
	Duration       float64 // Simulated seconds
	BombsPlaced    int
	WallsDestroyed int
	EnemiesKilled  int
	CreatedAt      time.Time
}

// SaveRun records a finished level attempt.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(run RunResult) (int64, error) {
	if run.GameID == "" || run.LevelID == "" || run.Outcome == "" {
		return 0, fmt.Errorf("storage: run needs game, level and outcome")
	}

	var reason sql.NullString
	if run.Reason != "" {
		reason = sql.NullString{String: run.Reason, Valid: true}
	}

	res, err := s.db.Exec(
		`INSERT INTO runs
		 (game_id, level_id, outcome, reason, score, ticks, duration_secs,
		  bombs_placed, walls_destroyed, enemies_killed)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.GameID,
		run.LevelID,
		run.Outcome,
		reason,
		run.Score,
		int64(run.Ticks),
		run.Duration,
		run.BombsPlaced,
		run.WallsDestroyed,
		run.EnemiesKilled,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const runColumns = `id, game_id, level_id, outcome, reason, score, ticks, duration_secs,
		        bombs_placed, walls_destroyed, enemies_killed, created_at`

// RecentRuns retrieves the most recent runs of a game, newest first.
func (s *Store) RecentRuns(gameID string, limit int) ([]RunResult, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

// FastestClear returns the quickest victory on a level, or nil if the level
// was never cleared.
func (s *Store) FastestClear(gameID, levelID string) (*RunResult, error) {
	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE game_id = ? AND level_id = ? AND outcome = ?
		 ORDER BY duration_secs ASC
		 LIMIT 1`,
		gameID, levelID, OutcomeVictory,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query fastest clear: %w", err)
	}

	runs, err := scanRuns(rows)
	if err != nil || len(runs) == 0 {
		return nil, err
	}
	return &runs[0], nil
}

func scanRuns(rows *sql.Rows) ([]RunResult, error) {
	defer rows.Close()

	var results []RunResult
	for rows.Next() {
		var r RunResult
		var reason sql.NullString
		var ticks int64
		var createdAt any

		if err := rows.Scan(
			&r.ID,
			&r.GameID,
			&r.LevelID,
			&r.Outcome,
			&reason,
			&r.Score,
			&ticks,
			&r.Duration,
			&r.BombsPlaced,
			&r.WallsDestroyed,
			&r.EnemiesKilled,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		r.Reason = reason.String
		r.Ticks = uint64(ticks)
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// LevelStats aggregates runs of one level.
type LevelStats struct {
	LevelID   string
	Attempts  int
	Victories int
	BestTime  float64 // Fastest victory in seconds, 0 if never cleared
}

// GetLevelStats returns per-level statistics for a game, ordered by level ID.
func (s *Store) GetLevelStats(gameID string) ([]LevelStats, error) {
	rows, err := s.db.Query(
		`SELECT level_id, COUNT(*),
		        SUM(CASE WHEN outcome = ? THEN 1 ELSE 0 END),
		        COALESCE(MIN(CASE WHEN outcome = ? THEN duration_secs END), 0)
		 FROM runs
		 WHERE game_id = ?
		 GROUP BY level_id
		 ORDER BY level_id`,
		OutcomeVictory, OutcomeVictory, gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get level stats: %w", err)
	}
	defer rows.Close()

	var stats []LevelStats
	for rows.Next() {
		var ls LevelStats
		if err := rows.Scan(&ls.LevelID, &ls.Attempts, &ls.Victories, &ls.BestTime); err != nil {
			return nil, fmt.Errorf("storage: cannot scan level stats row: %w", err)
		}
		stats = append(stats, ls)
	}

	return stats, rows.Err()
}
