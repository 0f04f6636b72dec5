package qb

import (
	"database/sql/driver"
	"math"
	"reflect"
	"time"
	"unicode/utf8"
)

func isUint(k reflect.Kind) bool {
	return k == reflect.Uint ||
		k == reflect.Uint8 ||
		k == reflect.Uint16 ||
		k == reflect.Uint32 ||
		k == reflect.Uint64
}

func isInt(k reflect.Kind) bool {
	return k == reflect.Int ||
		k == reflect.Int8 ||
		k == reflect.Int16 ||
		k == reflect.Int32 ||
		k == reflect.Int64
}

func isFloat(k reflect.Kind) bool {
	return k == reflect.Float32 ||
		k == reflect.Float64
}

// EncodeValue converts value into a canonical driver-level representation.
// Dialects use it for the scalar types every engine shares and layer their
// own rules (arrays, engine specific types) on top.
//
// Supported values:
//   - nil and nil pointers
//   - driver.Valuer
//   - integers (signed and unsigned)
//   - floats
//   - strings (must be valid UTF-8)
//   - booleans
//   - times
//   - []byte
func EncodeValue(value interface{}) (interface{}, error) {
	if value == nil {
		return nil, nil
	}

	if valuer, ok := value.(driver.Valuer); ok {
		return valuer.Value()
	}

	switch t := value.(type) {
	case []byte:
		return t, nil
	case time.Time:
		return t, nil
	}

	v := reflect.ValueOf(value)
	kind := v.Kind()
	switch {
	case kind == reflect.String:
		s := v.String()
		if !utf8.ValidString(s) {
			return nil, ErrNotUTF8
		}
		return s, nil
	case kind == reflect.Bool:
		return v.Bool(), nil
	case isInt(kind):
		return v.Int(), nil
	case isUint(kind):
		u := v.Uint()
		if u > math.MaxInt64 {
			return nil, ErrInvalidValue
		}
		return int64(u), nil
	case isFloat(kind):
		return v.Float(), nil
	case kind == reflect.Ptr:
		if v.IsNil() {
			return nil, nil
		}
		return EncodeValue(v.Elem().Interface())
	}

	return nil, ErrInvalidValue
}
