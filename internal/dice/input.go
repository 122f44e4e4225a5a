package dice

import (
	"cmp"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// FacesOf converts untyped input, usually decoded YAML or JSON, into a face
// list. raw must be a slice or array of scalars that all match the kind of F.
func FacesOf[F cmp.Ordered](raw any) ([]F, error) {
	if raw == nil {
		return nil, fmt.Errorf("%w: faces are missing", ErrInvalidInputType)
	}

	if faces, ok := raw.([]F); ok {
		out := make([]F, len(faces))
		copy(out, faces)
		return out, nil
	}

	v := reflect.ValueOf(raw)
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return nil, fmt.Errorf("%w: faces must be a sequence, got %T", ErrInvalidInputType, raw)
	}

	target := reflect.TypeOf((*F)(nil)).Elem()
	out := make([]F, v.Len())
	for i := 0; i < v.Len(); i++ {
		elem := v.Index(i)
		for elem.Kind() == reflect.Interface {
			if elem.IsNil() {
				return nil, fmt.Errorf("%w: face %d is empty", ErrInvalidInputType, i)
			}
			elem = elem.Elem()
		}

		if !sameScalarKind(elem.Kind(), target.Kind()) {
			return nil, fmt.Errorf("%w: face %d is %s, want %s", ErrInvalidInputType, i, elem.Type(), target)
		}

		if isInteger(target.Kind()) && isFloat(elem.Kind()) {
			if f := elem.Float(); f != math.Trunc(f) {
				return nil, fmt.Errorf("%w: face %d (%v) is not a whole number", ErrInvalidInputType, i, f)
			}
		}

		out[i] = elem.Convert(target).Interface().(F)
	}

	return out, nil
}

// ParseWeight interprets a numeric value or numeric-looking string as a weight
func ParseWeight(raw any) (float64, error) {
	var w float64
	switch v := raw.(type) {
	case float64:
		w = v
	case float32:
		w = float64(v)
	case int:
		w = float64(v)
	case int8:
		w = float64(v)
	case int16:
		w = float64(v)
	case int32:
		w = float64(v)
	case int64:
		w = float64(v)
	case uint:
		w = float64(v)
	case uint8:
		w = float64(v)
	case uint16:
		w = float64(v)
	case uint32:
		w = float64(v)
	case uint64:
		w = float64(v)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidWeight, v)
		}
		w = parsed
	default:
		return 0, fmt.Errorf("%w: %T is not a number", ErrInvalidWeight, raw)
	}

	if err := validateWeight(w); err != nil {
		return 0, err
	}
	return w, nil
}

func validateWeight(w float64) error {
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return fmt.Errorf("%w: %v is not finite", ErrInvalidWeight, w)
	}
	if w < 0 {
		return fmt.Errorf("%w: %v is negative", ErrInvalidWeight, w)
	}
	return nil
}

func sameScalarKind(got, want reflect.Kind) bool {
	if want == reflect.String {
		return got == reflect.String
	}
	return isInteger(got) || isFloat(got)
}

func isInteger(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

func isFloat(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}
