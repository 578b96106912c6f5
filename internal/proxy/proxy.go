// Package proxy exposes a subset of a model's named attributes as
// sequence-like or mapping-like views.
//
// Proxies are meant to sit on GORM models that carry many similarly named
// columns (Data1 ... Data10) so callers can treat them as a list or a map:
//
//	type Reading struct {
//		column.NotNullAutoIncrementIntPK
//		Data1, Data2, Data3 float64
//	}
//
//	seq, err := proxy.NewSequence(&r, "Data1", "Data2", "Data3")
//	seq.Set(0, 2.5) // r.Data1 == 2.5
//
// Reads and writes go straight to the backing object; updates through the
// proxy are visible on the object and the other way around.
package proxy

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"gorm.io/gorm/schema"
)

var (
	// ErrMissingAttributes is matched by *MissingAttributesError.
	ErrMissingAttributes = errors.New("missing attributes")
	// ErrUnsupportedBase is returned when the backing object is neither a
	// struct pointer nor an Object.
	ErrUnsupportedBase = errors.New("unsupported backing object")
	// ErrIndexOutOfRange is returned for sequence indices outside [-len, len).
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrKeyNotFound is returned for mapping keys that were never bound.
	ErrKeyNotFound = errors.New("key not found")
	// ErrLossyConversion is returned by Set when the value would be
	// truncated, wrapped or reformatted to fit the field.
	ErrLossyConversion = errors.New("lossy conversion")
	// ErrIncompatibleValue is returned by Set when the value cannot be
	// converted to the field type at all.
	ErrIncompatibleValue = errors.New("incompatible value")
)

// Object is a backing object that resolves attributes by name itself,
// instead of through its struct fields.
type Object interface {
	GetAttr(name string) (any, bool)
	SetAttr(name string, value any) error
}

// MissingAttributesError names every attribute that could not be resolved
// on the backing object.
type MissingAttributesError struct {
	Names []string
}

func (e *MissingAttributesError) Error() string {
	return fmt.Sprintf("missing attributes [%s]", strings.Join(quoteAll(e.Names), ", "))
}

func (e *MissingAttributesError) Is(target error) bool {
	return target == ErrMissingAttributes
}

func quoteAll(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = fmt.Sprintf("%q", n)
	}
	return out
}

// accessor is the get/set pair bound to one attribute at construction time.
type accessor struct {
	get func() any
	set func(any) error
}

// schemas is shared with every proxy; GORM keys it by model type.
var schemas sync.Map

// resolver binds attribute names on a single backing object.
type resolver struct {
	obj Object

	// sch is nil for structs GORM cannot map as a plain table row.
	sch *schema.Schema
	rv  reflect.Value
}

func newResolver(base any) (*resolver, error) {
	if obj, ok := base.(Object); ok {
		return &resolver{obj: obj}, nil
	}

	rv := reflect.ValueOf(base)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedBase, base)
	}

	r := &resolver{rv: rv.Elem()}

	// GORM logs through its global logger when a parse fails, and only
	// relationship fields make it fail. Structs carrying any are resolved
	// with reflect alone.
	if columnsOnly(r.rv.Type()) {
		if sch, err := schema.Parse(base, &schemas, schema.NamingStrategy{}); err == nil {
			r.sch = sch
		}
	}

	return r, nil
}

// bind resolves names in order. All unresolved names are collected and
// reported together.
func (r *resolver) bind(names []string) ([]accessor, error) {
	out := make([]accessor, len(names))
	var missing []string

	for i, name := range names {
		acc, ok := r.lookup(name)
		if !ok {
			missing = append(missing, name)
			continue
		}
		out[i] = acc
	}

	if len(missing) > 0 {
		return nil, &MissingAttributesError{Names: missing}
	}
	return out, nil
}

func (r *resolver) lookup(name string) (accessor, bool) {
	if r.obj != nil {
		if _, ok := r.obj.GetAttr(name); !ok {
			return accessor{}, false
		}
		obj := r.obj
		return accessor{
			get: func() any {
				v, _ := obj.GetAttr(name)
				return v
			},
			set: func(v any) error { return obj.SetAttr(name, v) },
		}, true
	}

	if r.sch != nil {
		if field := r.sch.LookUpField(name); field != nil {
			return r.gormAccessor(name, field), true
		}
	}

	sf, ok := r.rv.Type().FieldByName(name)
	if !ok || !sf.IsExported() {
		return accessor{}, false
	}
	return r.fieldAccessor(name, sf.Index), true
}

// gormAccessor reads and writes through GORM's field accessors, which also
// understand scanners such as sql.NullString and gorm.DeletedAt.
func (r *resolver) gormAccessor(name string, field *schema.Field) accessor {
	rv := r.rv
	return accessor{
		get: func() any {
			v, _ := field.ValueOf(context.Background(), rv)
			return v
		},
		set: func(v any) error {
			if err := checkLossless(field.FieldType, v); err != nil {
				return fmt.Errorf("set %s: %w", name, err)
			}
			if err := field.Set(context.Background(), rv, v); err != nil {
				return fmt.Errorf("set %s: %w", name, err)
			}
			return nil
		},
	}
}

// fieldAccessor reads and writes the struct field at index directly.
func (r *resolver) fieldAccessor(name string, index []int) accessor {
	rv := r.rv
	return accessor{
		get: func() any {
			fv, err := rv.FieldByIndexErr(index)
			if err != nil {
				return nil
			}
			return fv.Interface()
		},
		set: func(v any) error {
			fv, err := rv.FieldByIndexErr(index)
			if err == nil {
				err = assign(fv, v)
			}
			if err != nil {
				return fmt.Errorf("set %s: %w", name, err)
			}
			return nil
		},
	}
}
