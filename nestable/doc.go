// Package nestable provides observable lists whose items are built on
// demand by a constructor and can remove or update themselves.
//
// A [List] is created from raw values and a constructor:
//
//	type Counter struct{ Count int }
//
//	counters, err := nestable.New([]int{1, 2}, func(n int) *Counter {
//	    return &Counter{Count: n}
//	})
//
//	counters.Extend(3)                 // [1 2 3]
//	second, _ := counters.At(1)
//	second.Remove()                    // [1 3]
//	first, _ := counters.At(0)
//	first.Update(map[string]any{"count": 10})
//
// Every [Item] keeps a weak reference to the list that built it, so the
// same constructor can feed any number of lists without their items
// interfering, and an item never keeps its list alive.
//
// # Nesting
//
// An item value may hold lists of its own. Each nested list is an
// ordinary List with its own observers; nothing special is needed.
//
//	type Folder struct {
//	    Name  string
//	    Files *nestable.List[string, *File]
//	}
//
// # Transactions
//
// Population, Extend, ReplaceAll, Remove and Update each run as one
// transaction on the list's [reactive.Runtime]. Wrap several calls in
// [reactive.Runtime.Transaction] to deliver them to observers as one
// batch.
//
// Lists on one runtime share its transaction depth and flush loop, so
// they must stay on one goroutine. Lists created without [WithRuntime]
// all use [reactive.Default]; pass [reactive.NewRuntime] to lists owned
// by other goroutines.
//
// # Lenient vs strict construction
//
// [New] rejects a nil constructor with [ErrNilConstructor]. [FromFactory]
// accepts it, logs "nestable: constructor must be callable" in
// development mode, and fails later on Extend and ReplaceAll instead.
package nestable
