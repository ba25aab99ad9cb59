package nestable

// Sequence is the read surface of a [List], independent of the raw value
// type V.
//
// Accept Sequence in functions that only read items, so they work for
// every list of T whatever it was built from. The package-level helpers
// in this package ([Map], [Filter], [Pluck], ...) take one.
type Sequence[T any] interface {
	// Len returns the number of items.
	Len() int

	// IsEmpty reports whether there are no items.
	IsEmpty() bool

	// Items returns a copy of the items as a plain Go slice.
	Items() []*Item[T]

	// Values returns the item values in order.
	Values() []T

	// Each calls fn(item, index) for every item of a snapshot.
	Each(fn func(*Item[T], int))

	// First returns the first item, optionally matching fns[0].
	First(fns ...func(*Item[T]) bool) (*Item[T], bool)
}

var _ Sequence[int] = (*List[string, int])(nil)
