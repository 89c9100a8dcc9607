package store

import (
	"database/sql"
	"time"
)

// Round represents one resolved round stored in the history log.
type Round struct {
	ID           string
	PlayerMove   string
	ComputerMove string
	Verdict      string
	CreatedAt    time.Time
}

// Stats aggregates the round history by verdict.
type Stats struct {
	Total    int
	Player   int
	Computer int
	Ties     int
}

// RoundRepository provides access to the round history.
type RoundRepository struct {
	db *sql.DB
}

// Rounds returns the round repository for this store.
func (s *Store) Rounds() *RoundRepository {
	return &RoundRepository{db: s.db}
}

// Create appends a round to the history.
func (r *RoundRepository) Create(round *Round) error {
	if round.CreatedAt.IsZero() {
		round.CreatedAt = time.Now()
	}

	_, err := r.db.Exec(
		`INSERT INTO rounds (id, player_move, computer_move, verdict, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		round.ID, round.PlayerMove, round.ComputerMove, round.Verdict, round.CreatedAt,
	)
	return err
}

// List retrieves the most recent rounds, newest first.
// A limit of 0 or less returns the whole history.
func (r *RoundRepository) List(limit int) ([]*Round, error) {
	query := `SELECT id, player_move, computer_move, verdict, created_at
		 FROM rounds ORDER BY created_at DESC, id`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rounds []*Round
	for rows.Next() {
		round := &Round{}
		err := rows.Scan(&round.ID, &round.PlayerMove, &round.ComputerMove, &round.Verdict, &round.CreatedAt)
		if err != nil {
			return nil, err
		}
		rounds = append(rounds, round)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return rounds, nil
}

// Stats returns verdict totals across the whole history.
func (r *RoundRepository) Stats() (*Stats, error) {
	rows, err := r.db.Query(`SELECT verdict, COUNT(*) FROM rounds GROUP BY verdict`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := &Stats{}
	for rows.Next() {
		var verdict string
		var count int
		if err := rows.Scan(&verdict, &count); err != nil {
			return nil, err
		}

		stats.Total += count
		switch verdict {
		case "player":
			stats.Player = count
		case "computer":
			stats.Computer = count
		case "tie":
			stats.Ties = count
		}
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}

// Clear deletes the entire round history.
func (r *RoundRepository) Clear() error {
	_, err := r.db.Exec(`DELETE FROM rounds`)
	return err
}
