// Package reactive provides the small set of change-tracking primitives the
// nestable collections are built on: an observable slice ([Array]), a
// transaction scope that coalesces writes into one notification
// ([Runtime.Transaction]), an observed/unobserved lifecycle hook ([Atom])
// and an action wrapper that turns a plain function into a tracked
// mutator ([Action]).
//
// # Transactions
//
// Every write to an [Array] happens inside a transaction. Writes made
// outside an explicit transaction open an implicit one, so a single
// Push still produces exactly one notification. Nested transactions are
// flattened: only the end of the outermost scope flushes.
//
//	rt := reactive.NewRuntime()
//	list := reactive.NewArray[int](rt)
//	list.Observe(func(changes []reactive.Change[int]) {
//	    fmt.Println(len(changes), "changes")
//	})
//	rt.Transaction(func() {
//	    list.Push(1)
//	    list.Push(2)
//	}) // prints "2 changes" once
//
// # Threading
//
// The runtime protects its own queue with a mutex, but arrays are not
// safe for concurrent mutation. Confine an array and its listeners to
// one goroutine, the same way UI state is confined to the UI thread.
package reactive
