package llrb

import (
	"cmp"
	"fmt"
)

// Verify validates the LLRB invariants:
//  1. Keys are in strict binary-search-tree order
//  2. No red link leans right
//  3. No two consecutive red links on a left spine
//  4. Every path from the root to a nil link has the same number of
//     black links
//  5. Every node's size equals size(left) + size(right) + 1
//
// and that the root link is black. It returns an error wrapping
// ErrCorrupt for the first violation found.
func (t *Tree[K, V]) Verify() error {
	if isRed(t.root) {
		return fmt.Errorf("%w: root link is red", ErrCorrupt)
	}
	_, _, err := verify(t.root, nil, nil)
	return err
}

// verify checks the subtree rooted at h, whose keys must lie strictly
// between lo and hi when they are not nil. It returns the subtree's
// black height and size.
func verify[K cmp.Ordered, V any](h *node[K, V], lo, hi *K) (int, int, error) {
	if h == nil {
		return 0, 0, nil
	}

	if lo != nil && cmp.Compare(h.key, *lo) <= 0 {
		return 0, 0, fmt.Errorf("%w: key %v not greater than %v", ErrCorrupt, h.key, *lo)
	}
	if hi != nil && cmp.Compare(h.key, *hi) >= 0 {
		return 0, 0, fmt.Errorf("%w: key %v not less than %v", ErrCorrupt, h.key, *hi)
	}
	if isRed(h.right) {
		return 0, 0, fmt.Errorf("%w: right leaning red link under %v", ErrCorrupt, h.key)
	}
	if isRed(h) && isRed(h.left) {
		return 0, 0, fmt.Errorf("%w: consecutive red links at %v", ErrCorrupt, h.key)
	}

	lblacks, lsize, err := verify(h.left, lo, &h.key)
	if err != nil {
		return 0, 0, err
	}
	rblacks, rsize, err := verify(h.right, &h.key, hi)
	if err != nil {
		return 0, 0, err
	}

	if lblacks != rblacks {
		fmsg := "%w: unbalanced blacks {%v,%v} under %v"
		return 0, 0, fmt.Errorf(fmsg, ErrCorrupt, lblacks, rblacks, h.key)
	}
	if h.size != lsize+rsize+1 {
		fmsg := "%w: size %v at %v, expected %v"
		return 0, 0, fmt.Errorf(fmsg, ErrCorrupt, h.size, h.key, lsize+rsize+1)
	}

	if !isRed(h) {
		lblacks++
	}
	return lblacks, h.size, nil
}
