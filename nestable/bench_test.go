package nestable_test

import (
	"testing"

	"github.com/hasbyte1/go-nestable/nestable"
)

func makeValues(n int) []int {
	values := make([]int, n)
	for i := range values {
		values[i] = i + 1
	}
	return values
}

func BenchmarkNew(b *testing.B) {
	values := makeValues(1_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		nestable.New(values, newCounter)
	}
}

func BenchmarkExtend(b *testing.B) {
	l, _ := nestable.New(nil, newCounter)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Extend(i)
	}
}

func BenchmarkRemoveHead(b *testing.B) {
	values := makeValues(1_000)
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		l, _ := nestable.New(values, newCounter)
		items := l.Items()
		b.StartTimer()
		for _, it := range items {
			it.Remove()
		}
	}
}

func BenchmarkByID(b *testing.B) {
	l, _ := nestable.New(makeValues(1_000), func(n int) user { return user{ID: n} })
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.ByID(1_000)
	}
}
