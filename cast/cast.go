package cast

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/spf13/cast"
)

// ErrNotStringable indicates that a value has no canonical string
// representation.
var ErrNotStringable = errors.New("value has no string representation")

// ToString converts v to a string.
func ToString(v any) (string, error) {
	if isNilPointer(v) {
		return "", nil
	}

	s, err := cast.ToStringE(v)
	if err != nil {
		return "", fmt.Errorf("%w: %T", ErrNotStringable, v)
	}

	return s, nil
}

// ToStringMust converts v to a string and panics on error.
func ToStringMust(v any) string {
	s, err := ToString(v)
	if err != nil {
		panic(err)
	}

	return s
}

// isNilPointer reports whether v is a typed nil pointer. spf13/cast would
// otherwise call String or Error on it when the pointer type implements
// [fmt.Stringer] or error.
func isNilPointer(v any) bool {
	if v == nil {
		return false
	}

	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
