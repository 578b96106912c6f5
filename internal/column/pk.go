// Package column provides primary-key shorthands for GORM models.
//
// Embed one of the base types to get an ID column:
//
//	type Reading struct {
//		column.NotNullAutoIncrementIntPK
//		Sensor string
//	}
//
// or build a tag with Spec when the column needs a custom name or type.
package column

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PK is a primary key of any Go type; GORM picks the column type.
type PK[T any] struct {
	ID T `gorm:"primaryKey"`
}

// IntPK is an integer primary key.
type IntPK struct {
	ID int64 `gorm:"type:integer;primaryKey"`
}

// NotNullAutoIncrementIntPK is an integer primary key that is explicitly
// NOT NULL and auto-incremented by the database.
type NotNullAutoIncrementIntPK struct {
	ID int64 `gorm:"type:integer;primaryKey;not null;autoIncrement"`
}

// UUIDPK is a uuid primary key generated on insert when left unset.
type UUIDPK struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// BeforeCreate ensures a UUID is set before inserting a new record.
func (m *UUIDPK) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
