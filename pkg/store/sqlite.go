package store

import (
	"context"
	"fmt"

	"moonlander/pkg/db"
	"moonlander/pkg/model"
)

// SQLiteStore implements ResultStore.
type SQLiteStore struct {
	db *db.DB
}

// NewSQLiteStore creates a new store.
func NewSQLiteStore(db *db.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SaveGame inserts a concluded game record.
func (s *SQLiteStore) SaveGame(ctx context.Context, rec *model.GameRecord) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO games (id, outcome, position_x, altitude, vel_h, vel_v, fuel_remaining, safety_score, ended_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, string(rec.Outcome), rec.PositionX, rec.Altitude,
		rec.VelH, rec.VelV, rec.FuelRemaining, rec.SafetyScore, rec.EndedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save game %s: %w", rec.ID, err)
	}
	return nil
}

// ListRecent returns up to limit records, most recent first.
func (s *SQLiteStore) ListRecent(ctx context.Context, limit int) ([]*model.GameRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, outcome, position_x, altitude, vel_h, vel_v, fuel_remaining, safety_score, ended_at
		 FROM games ORDER BY ended_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	defer rows.Close()

	var records []*model.GameRecord
	for rows.Next() {
		var rec model.GameRecord
		var outcome string
		if err := rows.Scan(
			&rec.ID, &outcome, &rec.PositionX, &rec.Altitude,
			&rec.VelH, &rec.VelV, &rec.FuelRemaining, &rec.SafetyScore, &rec.EndedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan game row: %w", err)
		}
		rec.Outcome = model.Outcome(outcome)
		records = append(records, &rec)
	}
	return records, rows.Err()
}

// Stats returns overall success/crash counts.
func (s *SQLiteStore) Stats(ctx context.Context) (Tally, error) {
	var t Tally
	row := s.db.QueryRowContext(ctx,
		`SELECT count(*),
		        count(*) FILTER (WHERE outcome = ?),
		        count(*) FILTER (WHERE outcome = ?)
		 FROM games`,
		string(model.OutcomeSuccess), string(model.OutcomeCrash))
	if err := row.Scan(&t.Total, &t.Successes, &t.Crashes); err != nil {
		return Tally{}, fmt.Errorf("failed to read stats: %w", err)
	}
	return t, nil
}
