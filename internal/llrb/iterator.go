package llrb

import (
	"cmp"
	"iter"
)

// NodeView is a read-only snapshot of one node handed out by Walk.
type NodeView[K any, V any] struct {
	Key   K
	Value V
	Red   bool // color of the link from the parent into this node
	Size  int
	Depth int // root is at depth 0

	HasLeft, HasRight bool
	LeftRed           bool
}

// InOrder yields every key and value in ascending key order.
func (t *Tree[K, V]) InOrder() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		stack := []*node[K, V]{}
		current := t.root
		for current != nil || len(stack) > 0 {

			for current != nil {
				stack = append(stack, current)
				current = current.left
			}

			current = stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if !yield(current.key, current.value) {
				return
			}

			current = current.right
		}
	}
}

// Walk visits nodes in ascending key order until fn returns false.
func (t *Tree[K, V]) Walk(fn func(NodeView[K, V]) bool) {
	type frame struct {
		nd    *node[K, V]
		depth int
	}
	stack := []frame{}
	current, depth := t.root, 0
	for current != nil || len(stack) > 0 {
		for current != nil {
			stack = append(stack, frame{current, depth})
			current, depth = current.left, depth+1
		}

		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		nd := top.nd
		view := NodeView[K, V]{
			Key:      nd.key,
			Value:    nd.value,
			Red:      isRed(nd),
			Size:     nd.size,
			Depth:    top.depth,
			HasLeft:  nd.left != nil,
			HasRight: nd.right != nil,
			LeftRed:  isRed(nd.left),
		}
		if !fn(view) {
			return
		}

		current, depth = nd.right, top.depth+1
	}
}

// Height returns the number of nodes on the longest path from the
// root to a leaf, 0 for an empty tree.
func (t *Tree[K, V]) Height() int {
	return height(t.root)
}

func height[K cmp.Ordered, V any](h *node[K, V]) int {
	if h == nil {
		return 0
	}
	return 1 + max(height(h.left), height(h.right))
}

// BlackHeight returns the number of black links from the root to any
// nil link. The root link counts as black.
func (t *Tree[K, V]) BlackHeight() int {
	n := 0
	for h := t.root; h != nil; h = h.left {
		if !isRed(h) {
			n++
		}
	}
	return n
}
