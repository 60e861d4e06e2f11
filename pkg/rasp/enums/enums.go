// Package enums holds the closed value sets accepted and returned by the
// Rasp API. Every value maps to exactly one wire token.
package enums

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"
)

var ErrUnknownVariant = errors.New("unknown variant")

// UnknownVariantError is returned when a string does not match any token of
// the enum it is parsed into.
type UnknownVariantError struct {
	Enum  string
	Value string
}

func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("unknown %s variant %q", e.Enum, e.Value)
}

func (e *UnknownVariantError) Is(target error) bool {
	return target == ErrUnknownVariant
}

func parse[T ~string](enum string, variants []T, value string) (T, error) {
	if slices.Contains(variants, T(value)) {
		return T(value), nil
	}

	var empty T
	return empty, &UnknownVariantError{Enum: enum, Value: value}
}
