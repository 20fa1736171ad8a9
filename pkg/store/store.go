// Package store persists concluded games for the history view.
package store

import (
	"context"

	"moonlander/pkg/model"
)

// Tally holds aggregate counts over all recorded games.
type Tally struct {
	Total     int
	Successes int
	Crashes   int
}

// ResultStore handles game-record persistence.
type ResultStore interface {
	SaveGame(ctx context.Context, rec *model.GameRecord) error
	ListRecent(ctx context.Context, limit int) ([]*model.GameRecord, error)
	Stats(ctx context.Context) (Tally, error)

	// Close closes the store connection.
	Close() error
}
