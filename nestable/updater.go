package nestable

import (
	"reflect"
	"sync"
)

// UpdateFunc merges partial into the value v points at. It is registered
// per type with [RegisterUpdater].
type UpdateFunc[T any] func(v *T, partial any) error

// updaterRegistry is the package-level, goroutine-safe updater store,
// keyed by the registered type. Entries take the value as a pointer in an
// any so one lookup serves both T and *T items.
var updaterRegistry struct {
	mu  sync.RWMutex
	fns map[reflect.Type]func(ptr, partial any) error
}

func init() {
	updaterRegistry.fns = make(map[reflect.Type]func(ptr, partial any) error)
}

// RegisterUpdater sets the update behaviour for every item whose value is
// a T or a *T, in every list. It is the way to customise [Item.Update]
// for types you do not own. If an updater for T already exists it is
// replaced. An Update method on the value itself still takes precedence.
//
//	nestable.RegisterUpdater(func(c *Counter, partial any) error {
//	    n, ok := partial.(int)
//	    if !ok {
//	        return fmt.Errorf("counter: want int, got %T", partial)
//	    }
//	    c.Count = n
//	    return nil
//	})
func RegisterUpdater[T any](fn UpdateFunc[T]) error {
	if fn == nil {
		return ErrNilUpdater
	}
	updaterRegistry.mu.Lock()
	defer updaterRegistry.mu.Unlock()
	updaterRegistry.fns[reflect.TypeFor[T]()] = func(ptr, partial any) error {
		return fn(ptr.(*T), partial)
	}
	return nil
}

// HasUpdater reports whether an updater is registered for T.
func HasUpdater[T any]() bool {
	updaterRegistry.mu.RLock()
	defer updaterRegistry.mu.RUnlock()
	_, ok := updaterRegistry.fns[reflect.TypeFor[T]()]
	return ok
}

// FlushUpdaters removes all registered updaters.
// Intended for use in tests.
func FlushUpdaters() {
	updaterRegistry.mu.Lock()
	defer updaterRegistry.mu.Unlock()
	updaterRegistry.fns = make(map[reflect.Type]func(ptr, partial any) error)
}

// lookupUpdater finds the updater for the value at p: one registered for
// T itself, or, when T is a non-nil pointer, one registered for its
// element type.
func lookupUpdater[T any](p *T) (func(partial any) error, bool) {
	t := reflect.TypeFor[T]()
	updaterRegistry.mu.RLock()
	fn, ok := updaterRegistry.fns[t]
	var elemFn func(ptr, partial any) error
	if !ok && t.Kind() == reflect.Pointer {
		elemFn = updaterRegistry.fns[t.Elem()]
	}
	updaterRegistry.mu.RUnlock()

	switch {
	case ok:
		return func(partial any) error { return fn(p, partial) }, true
	case elemFn != nil:
		rv := reflect.ValueOf(p).Elem()
		if rv.IsNil() {
			return nil, false
		}
		elem := rv.Interface()
		return func(partial any) error { return elemFn(elem, partial) }, true
	}
	return nil, false
}
