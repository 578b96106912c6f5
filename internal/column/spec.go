package column

import (
	"fmt"
	"reflect"
	"strings"
)

// Spec describes a column and renders it as a GORM struct tag.
type Spec struct {
	name          string
	typ           string
	size          int
	def           *string
	index         *string
	primaryKey    bool
	notNull       bool
	autoIncrement bool
}

// Option configures a Spec. Later options override earlier ones.
type Option func(*Spec)

// Name sets the column name.
func Name(name string) Option { return func(s *Spec) { s.name = name } }

// Type sets the database column type.
func Type(typ string) Option { return func(s *Spec) { s.typ = typ } }

// Size sets the column size.
func Size(n int) Option { return func(s *Spec) { s.size = n } }

// Default sets the database default value.
func Default(v string) Option { return func(s *Spec) { s.def = &v } }

// Index adds an index; an empty name lets GORM name it.
func Index(name string) Option { return func(s *Spec) { s.index = &name } }

// NotNull marks the column NOT NULL.
func NotNull() Option { return func(s *Spec) { s.notNull = true } }

// AutoIncrement marks the column auto-incremented.
func AutoIncrement() Option { return func(s *Spec) { s.autoIncrement = true } }

func primaryKey() Option { return func(s *Spec) { s.primaryKey = true } }

// New builds a Spec from opts.
func New(opts ...Option) Spec {
	var s Spec
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// PrimaryKey is a primary key column.
func PrimaryKey(opts ...Option) Spec {
	return New(append([]Option{primaryKey()}, opts...)...)
}

// IntPrimaryKey is an integer primary key column.
func IntPrimaryKey(opts ...Option) Spec {
	return New(append([]Option{primaryKey(), Type("integer")}, opts...)...)
}

// NotNullAutoIncrementIntPrimaryKey is an integer, NOT NULL,
// auto-incremented primary key column.
func NotNullAutoIncrementIntPrimaryKey(opts ...Option) Spec {
	base := []Option{primaryKey(), Type("integer"), NotNull(), AutoIncrement()}
	return New(append(base, opts...)...)
}

// Settings renders the semicolon separated GORM settings.
func (s Spec) Settings() string {
	var parts []string
	if s.name != "" {
		parts = append(parts, "column:"+s.name)
	}
	if s.typ != "" {
		parts = append(parts, "type:"+s.typ)
	}
	if s.size > 0 {
		parts = append(parts, fmt.Sprintf("size:%d", s.size))
	}
	if s.primaryKey {
		parts = append(parts, "primaryKey")
	}
	if s.notNull {
		parts = append(parts, "not null")
	}
	if s.autoIncrement {
		parts = append(parts, "autoIncrement")
	}
	if s.def != nil {
		parts = append(parts, "default:"+*s.def)
	}
	if s.index != nil {
		if *s.index == "" {
			parts = append(parts, "index")
		} else {
			parts = append(parts, "index:"+*s.index)
		}
	}
	return strings.Join(parts, ";")
}

// Tag renders the full struct tag.
func (s Spec) Tag() reflect.StructTag {
	return reflect.StructTag(fmt.Sprintf("gorm:%q", s.Settings()))
}

// Field returns a struct field carrying this column, for models assembled
// with reflect.StructOf.
func (s Spec) Field(goName string, goType reflect.Type) reflect.StructField {
	return reflect.StructField{
		Name: goName,
		Type: goType,
		Tag:  s.Tag(),
	}
}
