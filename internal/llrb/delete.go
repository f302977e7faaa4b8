package llrb

import (
	"cmp"
	"fmt"
)

// moveRedLeft is called when h is red and both h.left and h.left.left
// are black. It makes h.left or one of its children red, borrowing a
// key from the right sibling when that sibling is a 3-node.
func (t *Tree[K, V]) moveRedLeft(h *node[K, V]) *node[K, V] {
	t.flipColors(h)
	if isRed(h.right.left) {
		h.right = t.rotateRight(h.right)
		h = t.rotateLeft(h)
		t.flipColors(h)
	}
	return h
}

// moveRedRight is called when h is red and both h.right and
// h.right.left are black. It makes h.right or one of its children red.
func (t *Tree[K, V]) moveRedRight(h *node[K, V]) *node[K, V] {
	t.flipColors(h)
	if isRed(h.left.left) {
		h = t.rotateRight(h)
		t.flipColors(h)
	}
	return h
}

// balance restores the left-leaning invariants on the way up.
func (t *Tree[K, V]) balance(h *node[K, V]) *node[K, V] {
	if isRed(h.right) && !isRed(h.left) {
		h = t.rotateLeft(h)
	}
	if isRed(h.left) && isRed(h.left.left) {
		h = t.rotateRight(h)
	}
	if isRed(h.left) && isRed(h.right) {
		t.flipColors(h)
	}
	h.size = size(h.left) + size(h.right) + 1
	return h
}

func minnode[K cmp.Ordered, V any](h *node[K, V]) *node[K, V] {
	for h.left != nil {
		h = h.left
	}
	return h
}

// DeleteMin removes the smallest key from the tree. It fails with
// ErrEmptyTree if there is nothing to remove.
func (t *Tree[K, V]) DeleteMin() error {
	if t.root == nil {
		debugf("%v DeleteMin(): %v\n", t.logprefix(), ErrEmptyTree)
		return ErrEmptyTree
	}
	if !isRed(t.root.left) && !isRed(t.root.right) {
		t.root.color = red
	}
	t.root = t.deleteMin(t.root)
	if t.root != nil {
		t.root.color = black
	}
	t.postmutation("DeleteMin")
	return nil
}

func (t *Tree[K, V]) deleteMin(h *node[K, V]) *node[K, V] {
	if h.left == nil {
		t.ndeletes++
		return nil
	}
	if !isRed(h.left) && !isRed(h.left.left) {
		h = t.moveRedLeft(h)
	}
	h.left = t.deleteMin(h.left)
	return t.balance(h)
}

// Delete removes key from the tree. It fails with ErrEmptyTree on an
// empty tree and with ErrKeyNotFound if key is absent, leaving the
// tree unchanged.
func (t *Tree[K, V]) Delete(key K) error {
	if t.root == nil {
		debugf("%v Delete(%v): %v\n", t.logprefix(), key, ErrEmptyTree)
		return ErrEmptyTree
	} else if !validKey(key) {
		return fmt.Errorf("%w: %v", ErrInvalidKey, key)
	} else if !t.Contains(key) {
		return fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}

	if !isRed(t.root.left) && !isRed(t.root.right) {
		t.root.color = red
	}
	t.root = t.delete(t.root, key)
	if t.root != nil {
		t.root.color = black
	}
	t.postmutation("Delete")
	return nil
}

// delete requires key to be present in the subtree rooted at h.
func (t *Tree[K, V]) delete(h *node[K, V], key K) *node[K, V] {
	if cmp.Less(key, h.key) {
		if !isRed(h.left) && !isRed(h.left.left) {
			h = t.moveRedLeft(h)
		}
		h.left = t.delete(h.left, key)
		return t.balance(h)
	}

	if isRed(h.left) {
		h = t.rotateRight(h)
	}
	if key == h.key && h.right == nil {
		t.ndeletes++
		return nil
	}
	if !isRed(h.right) && !isRed(h.right.left) {
		h = t.moveRedRight(h)
	}
	if key == h.key {
		x := minnode(h.right)
		h.key, h.value = x.key, x.value
		h.right = t.deleteMin(h.right)
	} else {
		h.right = t.delete(h.right, key)
	}
	return t.balance(h)
}
