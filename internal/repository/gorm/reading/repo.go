package readinggorm

import (
	"context"
	"errors"

	"github.com/oggyb/modelkit/internal/db"
	"github.com/oggyb/modelkit/internal/domain/reading"
	"gorm.io/gorm"
)

// Repository is a GORM-backed implementation of the reading.Repository interface.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a reading repository using the given DB adapter.
func NewRepository(d db.DB) *Repository {
	return &Repository{
		db: d.Conn().(*gorm.DB),
	}
}

// Migrate creates or updates the readings table.
func (r *Repository) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&ReadingModel{})
}

// Save inserts a new reading and copies the generated ID back.
func (r *Repository) Save(ctx context.Context, rd *reading.Reading) error {
	model, err := fromDomain(rd)
	if err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}

	rd.ID = model.ID
	rd.CreatedAt = model.CreatedAt
	rd.UpdatedAt = model.UpdatedAt
	return nil
}

// Get returns a single reading by id.
func (r *Repository) Get(ctx context.Context, id int64) (*reading.Reading, error) {
	var model ReadingModel

	err := r.db.WithContext(ctx).First(&model, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, reading.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return toDomain(&model)
}

// List returns a paginated list of readings, newest first, and the total count.
func (r *Repository) List(ctx context.Context, page, limit int) ([]*reading.Reading, int64, error) {
	var models []ReadingModel
	var total int64

	query := r.db.WithContext(ctx).Model(&ReadingModel{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit

	err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&models).Error

	if err != nil {
		return nil, 0, err
	}

	out, err := toDomainMany(models)
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// compile-time interface check
var _ reading.Repository = (*Repository)(nil)
