package reading

import "context"

// Repository defines the persistence operations for readings.
//
// It is implemented by infrastructure layers (e.g. GORM) while callers
// depend only on this interface.
type Repository interface {
	// Save persists a new reading and assigns its ID.
	Save(ctx context.Context, r *Reading) error

	// Get returns the reading with the given id or ErrNotFound.
	Get(ctx context.Context, id int64) (*Reading, error)

	// List returns a page of readings, newest first, along with the total
	// number of readings.
	List(ctx context.Context, page, limit int) ([]*Reading, int64, error)
}
