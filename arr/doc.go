// Package arr spreads plain data bags onto structs and maps, and reads
// values back out by (dotted) key, in the spirit of Laravel's Arr facade.
//
// # Placing properties
//
// [PlaceAll] copies every key of one or more sources onto a target. It
// is the one-line "assign all input fields" used by item constructors
// and by the default item update of the nestable package:
//
//	type Post struct {
//	    Title, Content, Date string
//	}
//
//	var p Post
//	arr.PlaceAll(&p, map[string]any{"title": "Hello"}, map[string]any{"date": "1984"})
//
// Sources may be maps with string keys, structs (exported fields) or
// slices of either. Later sources win on key collisions. Nested values
// are copied as values, never flattened onto the target.
//
// # Dot-notation keys
//
// [Get], [Set], [Has] and [Field] treat dots in a key as a path. PlaceAll
// does not: its keys are always literal.
//
//	arr.Get(m, "user.address.city")          // → "London"
//	arr.Set(m, "user.address.postcode", "EC1")
//	v, ok := arr.Field(car, "engine.power") // → 200, true
package arr
