package nestable_test

import (
	"fmt"

	"github.com/hasbyte1/go-nestable/nestable"
	"github.com/hasbyte1/go-nestable/reactive"
)

type Todo struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Done  bool   `json:"done"`
}

func ExampleNew() {
	counters, err := nestable.New([]int{1, 2}, func(n int) *Counter { return &Counter{Count: n} })
	if err != nil {
		panic(err)
	}
	counters.Extend(3)
	second, _ := counters.At(1)
	second.Remove()
	fmt.Println(counters)
	// Output: [{"count":1},{"count":3}]
}

func ExampleNewOf() {
	counters := nestable.NewOf[int, Counter]([]int{5, 6})
	for _, it := range counters.All() {
		it.Value.Increment()
	}
	fmt.Println(counters)
	// Output: [{"count":6},{"count":7}]
}

func ExampleList_ReplaceAll() {
	l := nestable.FromFactory([]int{1, 2, 3}, func(n int) int { return n * n })
	displaced, _ := l.ReplaceAll([]int{4})
	fmt.Println(l.Values(), len(displaced), displaced[0].State())
	// Output: [16] 3 removed
}

func ExampleList_ByID() {
	todos := nestable.FromFactory([]string{"milk", "eggs"}, func(title string) *Todo {
		return &Todo{ID: len(title) * 10, Title: title}
	})
	it, ok := todos.ByID(40)
	fmt.Println(it.Value.Title, ok)
	// Output: milk true
}

func ExampleItem_Update() {
	todos := nestable.FromFactory([]string{"milk"}, func(title string) *Todo {
		return &Todo{ID: 1, Title: title}
	})
	it, _ := todos.At(0)
	it.Update(map[string]any{"done": true})
	fmt.Println(todos)
	// Output: [{"id":1,"title":"milk","done":true}]
}

func ExampleList_Observe() {
	rt := reactive.NewRuntime()
	l, _ := nestable.New([]int{1}, newCounter, nestable.WithRuntime(rt))
	l.Observe(func(changes []reactive.Change[*nestable.Item[*Counter]]) {
		for _, c := range changes {
			fmt.Println(c.Kind, c.Index, len(c.Added), len(c.Removed))
		}
	})

	rt.Transaction(func() {
		l.Extend(2)
		first, _ := l.At(0)
		first.Remove()
	})
	// Output:
	// splice 1 1 0
	// splice 0 0 1
}

func ExampleFilter() {
	l := nestable.FromFactory([]int{1, 2, 3, 4}, newCounter)
	for _, it := range nestable.Filter(l, func(c *Counter, _ int) bool { return c.Count%2 == 0 }) {
		it.Remove()
	}
	fmt.Println(nestable.Map(l, func(c *Counter, _ int) int { return c.Count }))
	// Output: [1 3]
}
