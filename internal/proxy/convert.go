package proxy

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"math"
	"reflect"
	"strings"
	"time"

	"gorm.io/gorm/schema"
)

var (
	timeType    = reflect.TypeOf(time.Time{})
	scannerType = reflect.TypeOf((*sql.Scanner)(nil)).Elem()
	valuerType  = reflect.TypeOf((*driver.Valuer)(nil)).Elem()
)

// columnsOnly reports whether every exported field of t maps to a single
// column, i.e. GORM would not try to parse it as a relationship.
func columnsOnly(t reflect.Type) bool {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		settings := schema.ParseTagSetting(f.Tag.Get("gorm"), ";")
		if v, ok := settings["-"]; ok && (v == "-" || strings.EqualFold(v, "all")) {
			continue
		}
		if settings["TYPE"] != "" || settings["SERIALIZER"] != "" {
			continue
		}

		ft := f.Type
		for ft.Kind() == reflect.Pointer {
			ft = ft.Elem()
		}
		if reflect.PointerTo(ft).Implements(scannerType) || ft.Implements(valuerType) {
			continue
		}

		switch ft.Kind() {
		case reflect.Struct:
			if ft == timeType {
				continue
			}
			if _, embedded := settings["EMBEDDED"]; f.Anonymous || embedded {
				if !columnsOnly(ft) {
					return false
				}
				continue
			}
			return false
		case reflect.Slice, reflect.Array:
			if ft.Elem().Kind() != reflect.Uint8 {
				return false
			}
		case reflect.Map, reflect.Interface, reflect.Func, reflect.Chan:
			return false
		}
	}
	return true
}

// checkLossless rejects numeric values that do not fit target exactly and
// numbers or bools headed for a string field. Widening (int -> float) is
// allowed. nil is left to the setter.
func checkLossless(target reflect.Type, v any) error {
	for target.Kind() == reflect.Pointer {
		target = target.Elem()
	}

	src := reflect.ValueOf(v)
	for src.Kind() == reflect.Pointer {
		if src.IsNil() {
			return nil
		}
		src = src.Elem()
	}
	if !src.IsValid() {
		return nil
	}

	dst := reflect.New(target).Elem()
	lossy := false

	switch sk := src.Kind(); {
	case isInt(target.Kind()):
		switch {
		case isInt(sk):
			lossy = dst.OverflowInt(src.Int())
		case isUint(sk):
			u := src.Uint()
			lossy = u > math.MaxInt64 || dst.OverflowInt(int64(u))
		case isFloat(sk):
			f := src.Float()
			lossy = f != math.Trunc(f) || f < -(1<<63) || f >= 1<<63 || dst.OverflowInt(int64(f))
		}
	case isUint(target.Kind()):
		switch {
		case isInt(sk):
			i := src.Int()
			lossy = i < 0 || dst.OverflowUint(uint64(i))
		case isUint(sk):
			lossy = dst.OverflowUint(src.Uint())
		case isFloat(sk):
			f := src.Float()
			lossy = f != math.Trunc(f) || f < 0 || f >= 1<<64 || dst.OverflowUint(uint64(f))
		}
	case isFloat(target.Kind()):
		if isFloat(sk) {
			lossy = dst.OverflowFloat(src.Float())
		}
	case target.Kind() == reflect.String:
		lossy = isInt(sk) || isUint(sk) || isFloat(sk) || sk == reflect.Bool
	}

	if lossy {
		return fmt.Errorf("%w: %v (%T) into %s", ErrLossyConversion, v, v, target)
	}
	return nil
}

// assign stores v into dst, converting between basic kinds and allocating
// pointer fields as needed.
func assign(dst reflect.Value, v any) error {
	if err := checkLossless(dst.Type(), v); err != nil {
		return err
	}

	src := reflect.ValueOf(v)
	if !src.IsValid() || (src.Kind() == reflect.Pointer && src.IsNil() && !src.Type().AssignableTo(dst.Type())) {
		switch dst.Kind() {
		case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			dst.SetZero()
			return nil
		}
		return fmt.Errorf("%w: nil into %s", ErrIncompatibleValue, dst.Type())
	}

	switch {
	case src.Type().AssignableTo(dst.Type()):
		dst.Set(src)
		return nil
	case dst.Kind() == reflect.Pointer:
		elem := reflect.New(dst.Type().Elem())
		if err := assign(elem.Elem(), v); err != nil {
			return err
		}
		dst.Set(elem)
		return nil
	case src.Kind() == reflect.Pointer:
		return assign(dst, src.Elem().Interface())
	case basic(src.Kind()) && basic(dst.Kind()) && src.Type().ConvertibleTo(dst.Type()):
		dst.Set(src.Convert(dst.Type()))
		return nil
	}
	return fmt.Errorf("%w: %T into %s", ErrIncompatibleValue, v, dst.Type())
}

func isInt(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Int64
}

func isUint(k reflect.Kind) bool {
	return k >= reflect.Uint && k <= reflect.Uintptr
}

func isFloat(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}

func basic(k reflect.Kind) bool {
	return k == reflect.Bool || k == reflect.String || isInt(k) || isUint(k) || isFloat(k)
}
