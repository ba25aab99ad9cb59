package nestable

import "github.com/hasbyte1/go-nestable/arr"

// This file holds package-level generic helpers that read a list and
// produce something of another type. Methods cannot introduce their own
// type parameters, so they are functions over [Sequence]:
//
//	labels := nestable.Map(todos, func(t *Todo, _ int) string { return t.Title })

// Map applies fn to every value and returns the results in order.
func Map[T, U any](s Sequence[T], fn func(T, int) U) []U {
	out := make([]U, 0, s.Len())
	s.Each(func(it *Item[T], i int) {
		out = append(out, fn(it.Value, i))
	})
	return out
}

// Filter returns the items for which fn returns true. The items are the
// live ones, so calling Remove on a result removes it from the list.
//
//	for _, it := range nestable.Filter(todos, func(t *Todo, _ int) bool { return t.Done }) {
//	    it.Remove()
//	}
func Filter[T any](s Sequence[T], fn func(T, int) bool) []*Item[T] {
	var out []*Item[T]
	s.Each(func(it *Item[T], i int) {
		if fn(it.Value, i) {
			out = append(out, it)
		}
	})
	return out
}

// Reduce folds the values into a single U.
//
//	total := nestable.Reduce(counters, func(acc int, c *Counter, _ int) int { return acc + c.Count }, 0)
func Reduce[T, U any](s Sequence[T], fn func(U, T, int) U, initial U) U {
	result := initial
	s.Each(func(it *Item[T], i int) {
		result = fn(result, it.Value, i)
	})
	return result
}

// Pluck reads the dot-notation path from every value with [arr.Field].
// Values without the path contribute nil.
//
//	ids := nestable.Pluck(users, "id")
func Pluck[T any](s Sequence[T], path string) []any {
	return Map(s, func(v T, _ int) any {
		out, _ := arr.Field(v, path)
		return out
	})
}

// GroupBy groups the items by the comparable key K extracted by fn.
//
//	byDone := nestable.GroupBy(todos, func(t *Todo) bool { return t.Done })
func GroupBy[T any, K comparable](s Sequence[T], fn func(T) K) map[K][]*Item[T] {
	groups := make(map[K][]*Item[T])
	s.Each(func(it *Item[T], _ int) {
		k := fn(it.Value)
		groups[k] = append(groups[k], it)
	})
	return groups
}

// RemoveWhere removes every item whose value satisfies fn and returns
// how many were removed. Each removal is its own transaction unless the
// call is wrapped in one.
func RemoveWhere[T any](s Sequence[T], fn func(T) bool) int {
	n := 0
	for _, it := range s.Items() {
		if fn(it.Value) && it.Remove() {
			n++
		}
	}
	return n
}
