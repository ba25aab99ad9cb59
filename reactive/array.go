package reactive

import "iter"

// ChangeKind classifies a [Change].
type ChangeKind int

const (
	// Splice means items were inserted and/or deleted at Index.
	Splice ChangeKind = iota
	// Update means the item at Index changed in place.
	Update
)

func (k ChangeKind) String() string {
	switch k {
	case Splice:
		return "splice"
	case Update:
		return "update"
	default:
		return "unknown"
	}
}

// Change describes one write made to an [Array] during a transaction.
type Change[T any] struct {
	Kind    ChangeKind
	Index   int
	Added   []T
	Removed []T
}

// Listener receives every change recorded during one transaction, in
// the order the writes happened.
type Listener[T any] func(changes []Change[T])

type listenerEntry[T any] struct {
	fn Listener[T]
}

// Array is an observable, ordered sequence.
//
// Reads are plain slice reads. Every write is recorded as a [Change] and
// delivered to listeners once the enclosing transaction ends.
type Array[T any] struct {
	rt        *Runtime
	atom      *Atom
	items     []T
	changes   []Change[T]
	listeners []*listenerEntry[T]
}

// NewArray wraps initial (copied) in an observable array bound to rt.
// A nil rt selects [Default]. The initial items are not reported as a
// change.
func NewArray[T any](rt *Runtime, initial ...T) *Array[T] {
	items := make([]T, len(initial))
	copy(items, initial)
	return &Array[T]{rt: orDefault(rt), items: items}
}

// WithAtom attaches an atom whose hooks fire as listeners come and go.
// It returns a for chaining.
func (a *Array[T]) WithAtom(atom *Atom) *Array[T] {
	a.atom = atom
	return a
}

// Runtime returns the runtime the array batches on.
func (a *Array[T]) Runtime() *Runtime { return a.rt }

// ─────────────────────────────────────────────────────────────────────────────
// Reads
// ─────────────────────────────────────────────────────────────────────────────

// Len returns the number of items.
func (a *Array[T]) Len() int { return len(a.items) }

// At returns the item at index together with a presence flag.
func (a *Array[T]) At(index int) (T, bool) {
	var zero T
	if index < 0 || index >= len(a.items) {
		return zero, false
	}
	return a.items[index], true
}

// Items returns a copy of the current items.
func (a *Array[T]) Items() []T {
	out := make([]T, len(a.items))
	copy(out, a.items)
	return out
}

// All iterates over a snapshot of the items taken when iteration starts.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, item := range a.Items() {
			if !yield(i, item) {
				return
			}
		}
	}
}

// IndexFunc returns the index of the first item satisfying fn, or -1.
func (a *Array[T]) IndexFunc(fn func(T) bool) int {
	for i, item := range a.items {
		if fn(item) {
			return i
		}
	}
	return -1
}

// ─────────────────────────────────────────────────────────────────────────────
// Writes
// ─────────────────────────────────────────────────────────────────────────────

// Push appends items to the tail.
func (a *Array[T]) Push(items ...T) {
	if len(items) == 0 {
		return
	}
	a.Splice(len(a.items), 0, items...)
}

// Splice deletes deleteCount items starting at start, inserts items in
// their place and returns the deleted items. start is clamped to
// [0, Len()] and deleteCount to the available tail.
func (a *Array[T]) Splice(start, deleteCount int, items ...T) []T {
	start = min(max(start, 0), len(a.items))
	deleteCount = min(max(deleteCount, 0), len(a.items)-start)
	if deleteCount == 0 && len(items) == 0 {
		return []T{}
	}

	removed := make([]T, deleteCount)
	copy(removed, a.items[start:start+deleteCount])
	added := make([]T, len(items))
	copy(added, items)

	a.rt.Transaction(func() {
		next := make([]T, 0, len(a.items)-deleteCount+len(items))
		next = append(next, a.items[:start]...)
		next = append(next, added...)
		next = append(next, a.items[start+deleteCount:]...)
		a.items = next
		a.record(Change[T]{Kind: Splice, Index: start, Added: added, Removed: removed})
	})
	return removed
}

// Replace swaps the entire contents for items and returns the items that
// were displaced. Note that the return value is the OLD contents.
func (a *Array[T]) Replace(items []T) []T {
	if len(a.items) == 0 && len(items) == 0 {
		return []T{}
	}
	return a.Splice(0, len(a.items), items...)
}

// RemoveAt deletes the item at index. It reports false when index is
// out of range.
func (a *Array[T]) RemoveAt(index int) (T, bool) {
	var zero T
	if index < 0 || index >= len(a.items) {
		return zero, false
	}
	return a.Splice(index, 1)[0], true
}

// MarkUpdated reports an in-place change of the item at index. Out of
// range indexes are ignored.
func (a *Array[T]) MarkUpdated(index int) {
	if index < 0 || index >= len(a.items) {
		return
	}
	item := a.items[index]
	a.rt.Transaction(func() {
		a.record(Change[T]{Kind: Update, Index: index, Added: []T{item}})
	})
}

func (a *Array[T]) record(c Change[T]) {
	a.changes = append(a.changes, c)
	a.rt.schedule(a)
}

// ─────────────────────────────────────────────────────────────────────────────
// Observation
// ─────────────────────────────────────────────────────────────────────────────

// Observe registers fn and returns a function that unregisters it.
// Unsubscribing twice is harmless.
func (a *Array[T]) Observe(fn Listener[T]) (unsubscribe func()) {
	if fn == nil {
		return func() {}
	}
	entry := &listenerEntry[T]{fn: fn}
	a.listeners = append(a.listeners, entry)
	release := func() {}
	if a.atom != nil {
		release = a.atom.Retain()
	}
	return func() {
		for i, l := range a.listeners {
			if l == entry {
				a.listeners = append(a.listeners[:i:i], a.listeners[i+1:]...)
				release()
				return
			}
		}
	}
}

// ListenerCount returns the number of registered listeners.
func (a *Array[T]) ListenerCount() int { return len(a.listeners) }

func (a *Array[T]) flush() {
	changes := a.changes
	a.changes = nil
	if len(changes) == 0 {
		return
	}
	listeners := make([]*listenerEntry[T], len(a.listeners))
	copy(listeners, a.listeners)
	for _, l := range listeners {
		l.fn(changes)
	}
}
