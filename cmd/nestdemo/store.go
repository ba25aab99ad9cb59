package main

import (
	"fmt"
	"log/slog"

	"github.com/hasbyte1/go-nestable/nestable"
	"github.com/hasbyte1/go-nestable/reactive"
)

// Nested is one counter card in the demo.
type Nested struct {
	ID    int `json:"id"`
	Count int `json:"count"`
}

// Store holds a top-level count and a list of nested counters built from
// [1, 2].
type Store struct {
	Count int
	List  *nestable.List[int, *Nested]

	rt     *reactive.Runtime
	nextID int

	// Add appends a counter starting at n, batched on the store's runtime.
	Add func(n int)
}

// NewStore builds a store on its own runtime with counters 1 and 2. opts
// are applied after the store's defaults.
func NewStore(logger *slog.Logger, opts ...nestable.Option) (*Store, error) {
	s := &Store{rt: reactive.NewRuntime()}
	opts = append([]nestable.Option{
		nestable.WithName("counters"),
		nestable.WithRuntime(s.rt),
		nestable.WithLogger(logger),
	}, opts...)

	list, err := nestable.New([]int{1, 2}, s.newNested, opts...)
	if err != nil {
		return nil, err
	}
	s.List = list
	s.Add = reactive.Action1(s.rt, func(n int) {
		if _, err := s.List.Extend(n); err != nil {
			logger.Error("add failed", "err", err)
		}
	})
	return s, nil
}

func (s *Store) newNested(n int) *Nested {
	s.nextID++
	return &Nested{ID: s.nextID, Count: n}
}

// Increment adds 2 to the store count. Count is not observed, so it needs
// no transaction.
func (s *Store) Increment() { s.Count += 2 }

// Double doubles the count of the item at index i.
func (s *Store) Double(i int) error {
	it, ok := s.List.At(i)
	if !ok {
		return fmt.Errorf("no counter at %d", i)
	}
	return it.Update(map[string]any{"count": it.Value.Count * 2})
}
