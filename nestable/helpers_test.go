package nestable_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/hasbyte1/go-nestable/nestable"
)

// ─────────────────────────────────────────────────────────────────────────────
// Fixtures
// ─────────────────────────────────────────────────────────────────────────────

type Counter struct {
	Count int `json:"count"`
}

func (c *Counter) Init(n int) { c.Count = n }

func (c *Counter) Increment() { c.Count++ }

func newCounter(n int) *Counter { return &Counter{Count: n} }

// countingCtor returns a constructor and a pointer to the number of times
// it ran.
func countingCtor() (nestable.Constructor[int, *Counter], *int) {
	calls := new(int)
	return func(n int) *Counter {
		*calls++
		return newCounter(n)
	}, calls
}

func counters(t *testing.T, ns ...int) *nestable.List[int, *Counter] {
	t.Helper()
	l, err := nestable.New(ns, newCounter)
	if err != nil {
		t.Fatal(err)
	}
	return l
}

func counts(l nestable.Sequence[*Counter]) []int {
	return nestable.Map(l, func(c *Counter, _ int) int { return c.Count })
}

func assertCounts(t *testing.T, l nestable.Sequence[*Counter], want ...int) {
	t.Helper()
	got := counts(l)
	if len(got) != len(want) {
		t.Fatalf("counts: got %v want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %d want %d (got=%v)", i, got[i], want[i], got)
		}
	}
}

func at[T any](t *testing.T, l nestable.Sequence[T], i int) *nestable.Item[T] {
	t.Helper()
	items := l.Items()
	if i < 0 || i >= len(items) {
		t.Fatalf("index %d out of range (len %d)", i, len(items))
	}
	return items[i]
}

func bufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(h), &buf
}
