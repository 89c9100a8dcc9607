package store

import "github.com/ayusman/mushti/internal/game"

// RoundLogger adapts the round repository to the game session's Recorder
// interface.
type RoundLogger struct {
	repo *RoundRepository
}

// RoundLogger returns a game.Recorder that appends rounds to this store.
func (s *Store) RoundLogger() *RoundLogger {
	return &RoundLogger{repo: s.Rounds()}
}

// RecordRound persists a resolved round.
func (l *RoundLogger) RecordRound(r game.Round) error {
	return l.repo.Create(&Round{
		ID:           r.ID,
		PlayerMove:   string(r.Player),
		ComputerMove: string(r.Computer),
		Verdict:      string(r.Verdict),
	})
}
