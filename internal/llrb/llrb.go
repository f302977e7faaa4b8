// Package llrb implements an ordered symbol table on top of a
// left-leaning red-black binary search tree.
//
// The tree simulates a 2-3 tree: a red link glues two keys into a
// 3-node and red links always lean left. Put, Get, Delete and
// DeleteMin run in O(log n) worst case. A Tree is not safe for
// concurrent use, callers that share one must serialize access
// themselves (see package memtable).
package llrb

import (
	"cmp"
	"errors"
	"fmt"

	s "github.com/bnclabs/gosettings"
)

// Common errors returned by the tree.
var (
	ErrInvalidKey  = errors.New("invalid key")
	ErrEmptyTree   = errors.New("tree is empty")
	ErrKeyNotFound = errors.New("key not found")
	ErrCorrupt     = errors.New("tree is corrupt")
)

type color bool

const (
	red   color = true
	black color = false
)

// node is a single cell of the tree. color is the color of the link
// pointing down into the node from its parent.
type node[K cmp.Ordered, V any] struct {
	key         K
	value       V
	left, right *node[K, V]
	size        int
	color       color
}

// Tree is an ordered table of unique keys. Use New() or
// NewWithSettings() to create one.
type Tree[K cmp.Ordered, V any] struct {
	name   string
	root   *node[K, V]
	verify bool

	// mutation counters
	ninserts int64
	nupdates int64
	ndeletes int64
	nrotates int64
	nflips   int64
}

// New creates and returns an empty tree with default settings.
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return NewWithSettings[K, V]("llrb", nil)
}

// NewWithSettings creates an empty tree identified by name. Settings
// not supplied are taken from Defaultsettings().
func NewWithSettings[K cmp.Ordered, V any](name string, setts s.Settings) *Tree[K, V] {
	setts = make(s.Settings).Mixin(Defaultsettings(), setts)
	t := &Tree[K, V]{name: name}
	t.readsettings(setts)
	infof("%v new tree, verify:%v\n", t.logprefix(), t.verify)
	return t
}

func (t *Tree[K, V]) logprefix() string {
	return fmt.Sprintf("LLRB [%s]", t.name)
}

func isRed[K cmp.Ordered, V any](h *node[K, V]) bool {
	if h == nil {
		return false
	}
	return h.color == red
}

func size[K cmp.Ordered, V any](h *node[K, V]) int {
	if h == nil {
		return 0
	}
	return h.size
}

// validKey rejects keys that are not equal to themselves, floating
// point NaN being the only such value of an ordered type.
func validKey[K cmp.Ordered](key K) bool {
	return key == key
}

func (t *Tree[K, V]) rotateLeft(h *node[K, V]) *node[K, V] {
	/*
		    h                x
		   / \              / \
		  A   x     →      h   C
		     / \          / \
		    B   C        A   B
	*/
	x := h.right
	h.right = x.left
	x.left = h
	x.color = h.color
	h.color = red
	x.size = h.size
	h.size = size(h.left) + size(h.right) + 1
	t.nrotates++
	return x
}

func (t *Tree[K, V]) rotateRight(h *node[K, V]) *node[K, V] {
	/*
		      h            x
		     / \          / \
		    x   C   →    A   h
		   / \              / \
		  A   B            B   C
	*/
	x := h.left
	h.left = x.right
	x.right = h
	x.color = h.color
	h.color = red
	x.size = h.size
	h.size = size(h.left) + size(h.right) + 1
	t.nrotates++
	return x
}

// flipColors splits a temporary 4-node on the way up, or merges
// three 2-nodes into one on the way down.
func (t *Tree[K, V]) flipColors(h *node[K, V]) {
	h.color = !h.color
	h.left.color = !h.left.color
	h.right.color = !h.right.color
	t.nflips++
}

// Size returns the number of keys in the tree.
func (t *Tree[K, V]) Size() int {
	return size(t.root)
}

// IsEmpty reports whether the tree holds no keys.
func (t *Tree[K, V]) IsEmpty() bool {
	return t.root == nil
}

// Get returns the value stored under key and whether it was found.
func (t *Tree[K, V]) Get(key K) (V, bool) {
	var zero V
	if !validKey(key) {
		return zero, false
	}
	h := t.root
	for h != nil {
		switch c := cmp.Compare(key, h.key); {
		case c < 0:
			h = h.left
		case c > 0:
			h = h.right
		default:
			return h.value, true
		}
	}
	return zero, false
}

// Contains checks if a key is present in the tree.
func (t *Tree[K, V]) Contains(key K) bool {
	_, ok := t.Get(key)
	return ok
}

// Put inserts key with value, overwriting the value if key is
// already present.
func (t *Tree[K, V]) Put(key K, value V) error {
	if !validKey(key) {
		return fmt.Errorf("%w: %v", ErrInvalidKey, key)
	}
	t.root = t.put(t.root, key, value)
	t.root.color = black
	t.postmutation("Put")
	return nil
}

func (t *Tree[K, V]) put(h *node[K, V], key K, value V) *node[K, V] {
	if h == nil {
		t.ninserts++
		return &node[K, V]{key: key, value: value, size: 1, color: red}
	}

	switch c := cmp.Compare(key, h.key); {
	case c < 0:
		h.left = t.put(h.left, key, value)
	case c > 0:
		h.right = t.put(h.right, key, value)
	default:
		h.value = value
		t.nupdates++
	}

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

// postmutation runs the full invariant check when the tree was
// created with "verify" enabled.
func (t *Tree[K, V]) postmutation(op string) {
	if !t.verify {
		return
	}
	if err := t.Verify(); err != nil {
		errorf("%v %s(): %v\n", t.logprefix(), op, err)
		panic(err)
	}
}
