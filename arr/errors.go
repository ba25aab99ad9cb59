package arr

import "errors"

// Sentinel errors returned by [PlaceAll] and [Field].
var (
	// ErrInvalidTarget is returned when the PlaceAll target is neither a
	// non-nil pointer to a struct nor a map with string keys.
	ErrInvalidTarget = errors.New("arr: target must be a pointer to a struct or a string-keyed map")

	// ErrInvalidSource is returned when a PlaceAll source is not a map
	// with string keys, a struct, or a slice of those.
	ErrInvalidSource = errors.New("arr: source must be a string-keyed map, a struct or a slice of them")

	// ErrIncompatibleValue is returned when a source value can be neither
	// assigned nor converted to the type of the matching target field.
	ErrIncompatibleValue = errors.New("arr: value is not assignable to field")
)
