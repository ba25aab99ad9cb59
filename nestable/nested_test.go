package nestable_test

import (
	"testing"

	"github.com/hasbyte1/go-nestable/nestable"
	"github.com/hasbyte1/go-nestable/reactive"
)

// node is a tree whose children are themselves a list.
type node struct {
	Depth    int
	Children *nestable.List[int, *node]
}

// newTree builds a chain width items wide at every level, depth levels
// deep.
func newTree(width, depth int) nestable.Constructor[int, *node] {
	var ctor nestable.Constructor[int, *node]
	ctor = func(d int) *node {
		n := &node{Depth: d}
		var initial []int
		if d < depth {
			for range width {
				initial = append(initial, d+1)
			}
		}
		n.Children, _ = nestable.New(initial, ctor)
		return n
	}
	return ctor
}

func leaf(t *testing.T, root *nestable.List[int, *node]) *nestable.List[int, *node] {
	t.Helper()
	l := root
	for {
		first := at(t, l, 0)
		if first.Value.Children.IsEmpty() {
			return l
		}
		l = first.Value.Children
	}
}

func TestNestedListsBehaveLikeTopLevel(t *testing.T) {
	root, _ := nestable.New([]int{0, 0}, newTree(2, 4))
	deep := leaf(t, root)
	if at(t, deep, 0).Value.Depth != 4 {
		t.Fatalf("leaf depth = %d; want 4", at(t, deep, 0).Value.Depth)
	}

	it, err := deep.Extend(4)
	if err != nil {
		t.Fatal(err)
	}
	if deep.Len() != 3 || deep.IndexOf(it) != 2 {
		t.Fatalf("Len = %d", deep.Len())
	}
	if !it.Remove() || deep.Len() != 2 {
		t.Fatalf("Remove on a nested item: Len = %d", deep.Len())
	}
	if it.Remove() {
		t.Fatal("nested Remove must be idempotent")
	}
	if root.Len() != 2 {
		t.Fatalf("root Len = %d; nested mutation leaked", root.Len())
	}
}

func TestNestedRemovalStaysInItsList(t *testing.T) {
	root, _ := nestable.New([]int{0, 0}, newTree(2, 1))
	left := at(t, root, 0).Value.Children
	right := at(t, root, 1).Value.Children

	var rootBatches, leftBatches, rightBatches int
	root.Observe(func([]reactive.Change[*nestable.Item[*node]]) { rootBatches++ })
	left.Observe(func([]reactive.Change[*nestable.Item[*node]]) { leftBatches++ })
	right.Observe(func([]reactive.Change[*nestable.Item[*node]]) { rightBatches++ })

	at(t, left, 1).Remove()

	if left.Len() != 1 || right.Len() != 2 || root.Len() != 2 {
		t.Fatalf("lens = %d/%d/%d", root.Len(), left.Len(), right.Len())
	}
	if rootBatches != 0 || leftBatches != 1 || rightBatches != 0 {
		t.Fatalf("batches = %d/%d/%d; want 0/1/0", rootBatches, leftBatches, rightBatches)
	}
}

func TestNestedItemRemovesParent(t *testing.T) {
	root, _ := nestable.New([]int{0}, newTree(1, 2))
	parent := at(t, root, 0)
	child := at(t, parent.Value.Children, 0)

	parent.Remove()
	if !root.IsEmpty() {
		t.Fatal("parent should be gone")
	}
	if !child.Remove() {
		t.Fatal("a detached subtree keeps working")
	}
}

// TestCounterScenario walks the reference scenario: create from [1,2],
// extend with 3, remove the middle item.
func TestCounterScenario(t *testing.T) {
	ctor, calls := countingCtor()
	l, err := nestable.New([]int{1, 2}, ctor)
	if err != nil {
		t.Fatal(err)
	}
	if l.Len() != 2 || at(t, l, 0).Value.Count != 1 || at(t, l, 1).Value.Count != 2 {
		t.Fatalf("initial = %v", counts(l))
	}

	l.Extend(3)
	if l.Len() != 3 || at(t, l, 2).Value.Count != 3 {
		t.Fatalf("after extend = %v", counts(l))
	}

	first, third := at(t, l, 0), at(t, l, 2)
	at(t, l, 1).Remove()
	if l.Len() != 2 || at(t, l, 0) != first || at(t, l, 1) != third {
		t.Fatalf("after remove = %v", counts(l))
	}
	if *calls != 3 {
		t.Fatalf("constructions = %d; want 3", *calls)
	}
}

func TestNeverPopulatedListHasNoSideEffects(t *testing.T) {
	ctor, calls := countingCtor()
	l, _ := nestable.New(nil, ctor)
	nested := nestable.NewOf[int, Counter](nil)
	if *calls != 0 || !l.IsEmpty() || !nested.IsEmpty() {
		t.Fatal("an empty list must not construct anything")
	}
}
