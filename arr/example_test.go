package arr_test

import (
	"fmt"

	"github.com/hasbyte1/go-nestable/arr"
)

func ExamplePlaceAll() {
	type store struct {
		Title   string
		Content string
		Date    string
	}

	var s store
	_ = arr.PlaceAll(&s,
		map[string]any{"title": "Hello", "content": "World"},
		map[string]any{"date": "1984"},
	)
	fmt.Println(s.Title, s.Content, s.Date)
	// Output: Hello World 1984
}

func ExampleField() {
	type engine struct{ Power int }
	type car struct{ Engine engine }

	v, ok := arr.Field(car{Engine: engine{Power: 200}}, "engine.power")
	fmt.Println(v, ok)
	// Output: 200 true
}

func ExampleGet() {
	m := map[string]any{
		"user": map[string]any{
			"address": map[string]any{"city": "London"},
		},
	}
	fmt.Println(arr.Get(m, "user.address.city"))
	// Output: London
}

func ExampleSet() {
	m := map[string]any{}
	arr.Set(m, "config.debug", true)
	fmt.Println(arr.Get(m, "config.debug"))
	// Output: true
}
