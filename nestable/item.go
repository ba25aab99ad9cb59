package nestable

import (
	"encoding/json"
	"weak"

	"github.com/hasbyte1/go-nestable/arr"
)

// State is the lifecycle state of an [Item].
type State uint8

const (
	// Live items are held by their list.
	Live State = iota
	// Removed items left their list through Remove or ReplaceAll. The
	// state is terminal.
	Removed
)

func (s State) String() string {
	switch s {
	case Live:
		return "live"
	case Removed:
		return "removed"
	default:
		return "unknown"
	}
}

// Updater is implemented by item values that merge partial updates
// themselves. When Value implements it, [Item.Update] calls it instead
// of the default merge.
type Updater interface {
	Update(partial any) error
}

// Item wraps one value built by a list's constructor. It remembers the
// list that built it, so it can remove or update itself without the
// caller holding the list.
type Item[T any] struct {
	// Value is the constructed domain value.
	Value T

	root   weak.Pointer[core[T]]
	listID uint64
	state  State
}

// ListID returns the [List.ID] of the list that built the item.
func (it *Item[T]) ListID() uint64 { return it.listID }

// State reports whether the item is still in its list.
func (it *Item[T]) State() State { return it.state }

// Remove takes the item out of the list that built it, in one
// transaction. It reports whether anything was removed; a second call,
// a call on an item displaced by ReplaceAll, or a call after the list
// was collected is a no-op returning false.
func (it *Item[T]) Remove() bool {
	if it.state == Removed {
		return false
	}
	c := it.root.Value()
	if c == nil {
		it.state = Removed
		return false
	}
	var removed bool
	c.rt.Transaction(func() {
		i := c.indexOf(it)
		if i < 0 {
			it.state = Removed
			return
		}
		c.items.RemoveAt(i)
		it.state = Removed
		removed = true
		c.emit(OpRemove, 0, 1)
	})
	return removed
}

// Update merges partial into the item's value in one transaction.
//
// The merge is, in order of precedence: the value's own [Updater]
// method, the updater registered for T with [RegisterUpdater], or
// [arr.PlaceAll], which copies only the keys present in partial. A live
// item reports one update change to its list's observers; a removed
// item is still updated but notifies nobody.
func (it *Item[T]) Update(partial any) error {
	c := it.root.Value()
	if c == nil {
		return it.apply(partial)
	}
	var err error
	c.rt.Transaction(func() {
		if err = it.apply(partial); err != nil {
			return
		}
		if it.state != Live {
			return
		}
		if i := c.indexOf(it); i >= 0 {
			c.items.MarkUpdated(i)
			c.emit(OpUpdate, 0, 0)
		}
	})
	return err
}

func (it *Item[T]) apply(partial any) error {
	if u, ok := any(it.Value).(Updater); ok {
		return u.Update(partial)
	}
	if u, ok := any(&it.Value).(Updater); ok {
		return u.Update(partial)
	}
	if fn, ok := lookupUpdater(&it.Value); ok {
		return fn(partial)
	}
	return arr.PlaceAll(&it.Value, partial)
}

// MarshalJSON encodes the item as its value; the back-reference and
// state are never serialised.
func (it *Item[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(it.Value)
}
