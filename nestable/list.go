package nestable

import (
	"encoding/json"
	"fmt"
	"iter"
	"log/slog"
	"reflect"
	"sync/atomic"
	"weak"

	"github.com/hasbyte1/go-nestable/arr"
	"github.com/hasbyte1/go-nestable/config"
	"github.com/hasbyte1/go-nestable/reactive"
)

// Constructor builds one item value from one raw value.
type Constructor[V, T any] func(V) T

// Initializer is satisfied by *T when T can initialise itself from a raw
// value. It is the constraint behind [NewOf].
type Initializer[V, T any] interface {
	*T
	Init(V)
}

// Identifiable lets an item value report the id matched by [List.ByID]
// without exposing an id field.
type Identifiable interface {
	Identity() any
}

var listIDs atomic.Uint64

// core is the part of a list items point back to. It does not depend on
// the raw value type, so an Item needs only T.
type core[T any] struct {
	id     uint64
	name   string
	idKey  string
	mode   config.Mode
	rt     *reactive.Runtime
	items  *reactive.Array[*Item[T]]
	logger *slog.Logger
	hooks  []Hooks
}

func (c *core[T]) indexOf(it *Item[T]) int {
	return c.items.IndexFunc(func(x *Item[T]) bool { return x == it })
}

func (c *core[T]) emit(op Op, added, removed int) {
	c.logger.Debug("list mutated", "op", op.String(), "added", added, "removed", removed, "len", c.items.Len())
	for _, h := range c.hooks {
		h.Mutated(c.name, op, added, removed)
	}
}

// List is an observable, ordered collection of items built from raw
// values of type V by a constructor returning T.
//
// Every item is wrapped in an [Item] that can remove or update itself
// without a reference to the list. Lists nest: a T may hold further
// lists, each independent of its parent.
//
// # Creating a list
//
//	todos, err := nestable.New([]string{"milk", "eggs"}, newTodo)
//	counters := nestable.FromFactory([]int{1, 2}, func(n int) *Counter { return &Counter{Count: n} })
//	counters := nestable.NewOf[int, Counter]([]int{1, 2}) // *Counter implements Init(int)
//
// # Mutating
//
// Only four paths change a list: the initial population, [List.Extend],
// [List.ReplaceAll], and an item's own Remove / Update. Each runs as one
// transaction on the list's [reactive.Runtime], so observers see one
// batch per operation.
//
// A List is not safe for concurrent mutation. Lists without
// [WithRuntime] share [reactive.Default] and therefore one goroutine;
// give a list used elsewhere its own runtime.
type List[V, T any] struct {
	*core[T]
	ctor Constructor[V, T]
}

func newList[V, T any](ctor Constructor[V, T], opts []Option) *List[V, T] {
	o := buildOptions(opts)
	c := &core[T]{
		id:     listIDs.Add(1),
		name:   o.name,
		idKey:  o.idKey,
		mode:   o.mode,
		rt:     o.runtime,
		hooks:  o.hooks,
		logger: o.logger.With("list", o.name),
	}
	atom := reactive.NewAtom(o.name,
		func() { c.logger.Debug("start observing") },
		func() { c.logger.Debug("stop observing") },
	)
	c.items = reactive.NewArray[*Item[T]](o.runtime).WithAtom(atom)
	return &List[V, T]{core: c, ctor: ctor}
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New builds a list with one item per initial value, pushed in a single
// transaction. A nil or empty initial slice constructs nothing.
//
// A nil ctor is rejected with [ErrNilConstructor]; use [FromFactory] for
// the lenient variant.
func New[V, T any](initial []V, ctor Constructor[V, T], opts ...Option) (*List[V, T], error) {
	if ctor == nil {
		return nil, ErrNilConstructor
	}
	l := newList(ctor, opts)
	l.populate(initial)
	return l, nil
}

// FromFactory is like [New] but never fails. With a nil fn it logs a
// warning (development mode only) and returns an empty list whose
// Extend and ReplaceAll report [ErrNilConstructor].
func FromFactory[V, T any](initial []V, fn func(V) T, opts ...Option) *List[V, T] {
	l := newList(Constructor[V, T](fn), opts)
	if fn == nil {
		if !l.mode.IsProduction() {
			l.logger.Warn("nestable: constructor must be callable")
		}
		return l
	}
	l.populate(initial)
	return l
}

// NewOf builds a list of *T where each item is allocated with new(T)
// and initialised through its Init method:
//
//	type Counter struct{ Count int }
//	func (c *Counter) Init(n int) { c.Count = n }
//
//	counters := nestable.NewOf[int, Counter]([]int{1, 2})
func NewOf[V, T any, PT Initializer[V, T]](initial []V, opts ...Option) *List[V, *T] {
	ctor := func(v V) *T {
		p := PT(new(T))
		p.Init(v)
		return p
	}
	l := newList[V, *T](ctor, opts)
	l.populate(initial)
	return l
}

func (l *List[V, T]) populate(values []V) {
	if len(values) == 0 {
		return
	}
	l.rt.Transaction(func() {
		items := l.buildAll(values)
		l.items.Push(items...)
		l.emit(OpPopulate, len(items), 0)
	})
}

func (l *List[V, T]) build(v V) *Item[T] {
	it := &Item[T]{
		Value:  l.ctor(v),
		root:   weak.Make(l.core),
		listID: l.id,
	}
	for _, h := range l.hooks {
		h.ItemConstructed(l.name)
	}
	return it
}

func (l *List[V, T]) buildAll(values []V) []*Item[T] {
	items := make([]*Item[T], 0, len(values))
	for _, v := range values {
		items = append(items, l.build(v))
	}
	return items
}

// ─────────────────────────────────────────────────────────────────────────────
// Mutation
// ─────────────────────────────────────────────────────────────────────────────

// Extend constructs one item from v and appends it in one transaction.
// The new item is at Len()-1 when Extend returns.
func (l *List[V, T]) Extend(v V) (*Item[T], error) {
	if l.ctor == nil {
		return nil, ErrNilConstructor
	}
	var it *Item[T]
	l.rt.Transaction(func() {
		it = l.build(v)
		l.items.Push(it)
		l.emit(OpExtend, 1, 0)
	})
	return it, nil
}

// ReplaceAll constructs one item per value and swaps the whole contents
// in one transaction.
//
// It returns the DISPLACED items, not the new ones. The displaced items
// are in the [Removed] state; calling Remove on them is a no-op.
func (l *List[V, T]) ReplaceAll(values []V) ([]*Item[T], error) {
	if l.ctor == nil {
		return nil, ErrNilConstructor
	}
	var displaced []*Item[T]
	l.rt.Transaction(func() {
		items := l.buildAll(values)
		displaced = l.items.Replace(items)
		for _, it := range displaced {
			it.state = Removed
		}
		l.emit(OpReplaceAll, len(items), len(displaced))
	})
	return displaced, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// ID returns the process-unique handle recorded on every item of l.
func (l *List[V, T]) ID() uint64 { return l.id }

// Name returns the label set with [WithName].
func (l *List[V, T]) Name() string { return l.name }

// Runtime returns the runtime the list batches on.
func (l *List[V, T]) Runtime() *reactive.Runtime { return l.rt }

// Len returns the number of live items.
func (l *List[V, T]) Len() int { return l.items.Len() }

// IsEmpty reports whether the list holds no items.
func (l *List[V, T]) IsEmpty() bool { return l.items.Len() == 0 }

// At returns the item at index together with a presence flag.
func (l *List[V, T]) At(index int) (*Item[T], bool) { return l.items.At(index) }

// Items returns a copy of the item slice.
func (l *List[V, T]) Items() []*Item[T] { return l.items.Items() }

// Values returns the item values in order.
func (l *List[V, T]) Values() []T {
	items := l.items.Items()
	out := make([]T, len(items))
	for i, it := range items {
		out[i] = it.Value
	}
	return out
}

// All iterates over a snapshot of the items.
func (l *List[V, T]) All() iter.Seq2[int, *Item[T]] { return l.items.All() }

// Each calls fn(item, index) for every item of a snapshot, so fn may
// remove items safely.
func (l *List[V, T]) Each(fn func(*Item[T], int)) {
	for i, it := range l.items.All() {
		fn(it, i)
	}
}

// IndexOf returns the position of it, or -1 when it is not in the list.
func (l *List[V, T]) IndexOf(it *Item[T]) int { return l.indexOf(it) }

// First returns the first item, optionally the first matching fns[0].
func (l *List[V, T]) First(fns ...func(*Item[T]) bool) (*Item[T], bool) {
	if len(fns) == 0 {
		return l.items.At(0)
	}
	i := l.items.IndexFunc(fns[0])
	if i < 0 {
		return nil, false
	}
	return l.items.At(i)
}

// ByID returns the first item whose id equals id. The id of a value is
// its Identity() when it implements [Identifiable], otherwise the field
// or map key named by [WithIDKey] (default "id"). Equality is strict:
// the dynamic types must match, so int(1) does not equal int64(1).
// Uniqueness is not enforced; the first match wins.
func (l *List[V, T]) ByID(id any) (*Item[T], bool) {
	return l.First(func(it *Item[T]) bool {
		v, ok := idOf(it.Value, l.idKey)
		return ok && strictEqual(v, id)
	})
}

// Observe registers fn to receive one batch per transaction that changed
// the list. The first observer logs "start observing" at debug level and
// the last one to leave logs "stop observing".
func (l *List[V, T]) Observe(fn reactive.Listener[*Item[T]]) (unsubscribe func()) {
	return l.items.Observe(fn)
}

// MarshalJSON encodes the item values as a JSON array.
func (l *List[V, T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Values())
}

// String returns the JSON encoding of the values. It implements
// [fmt.Stringer].
func (l *List[V, T]) String() string {
	b, err := l.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("%v", l.Values())
	}
	return string(b)
}

func idOf(v any, key string) (any, bool) {
	if ident, ok := v.(Identifiable); ok {
		return ident.Identity(), true
	}
	return arr.Field(v, key)
}

func strictEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	t := reflect.TypeOf(a)
	if t != reflect.TypeOf(b) || !t.Comparable() {
		return false
	}
	return a == b
}
