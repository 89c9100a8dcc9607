package store

// runMigrations executes all database migrations.
func (s *Store) runMigrations() error {
	migrations := []string{
		// Rounds table - one row per resolved round
		`CREATE TABLE IF NOT EXISTS rounds (
			id TEXT PRIMARY KEY,
			player_move TEXT NOT NULL CHECK(player_move IN ('rock', 'paper', 'scissors', 'pencil')),
			computer_move TEXT NOT NULL CHECK(computer_move IN ('rock', 'paper', 'scissors', 'pencil')),
			verdict TEXT NOT NULL CHECK(verdict IN ('tie', 'player', 'computer')),
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		// Settings table - stores application settings as key-value pairs
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,

		// Indexes for better query performance
		`CREATE INDEX IF NOT EXISTS idx_rounds_created_at ON rounds(created_at)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return err
		}
	}

	return nil
}
