package reading

import (
	"context"
	"time"
)

// Repository defines the storage interface for readings.
type Repository interface {
	// RecordReading stores a reading and sets its ID.
	RecordReading(ctx context.Context, r *Reading) error

	// ListReadings returns the most recent readings, newest first.
	// A limit of zero or less returns every reading.
	ListReadings(ctx context.Context, limit int) ([]*Reading, error)

	// LatestReading returns the newest reading for a source, or nil if there is none.
	LatestReading(ctx context.Context, source Source) (*Reading, error)

	// PruneReadings deletes readings created before the given time.
	// Returns the number of rows removed.
	PruneReadings(ctx context.Context, before time.Time) (int64, error)

	// Close releases any resources held by the repository.
	Close() error
}
