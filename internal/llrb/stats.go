package llrb

// Stats return a map of counters gathered since the tree was created,
// along with its current shape.
//
//	n_count     - number of keys in the tree
//	n_inserts   - keys added by Put
//	n_updates   - values overwritten by Put
//	n_deletes   - keys removed by Delete and DeleteMin
//	n_rotates   - left and right rotations
//	n_flips     - color flips
//	height      - nodes on the longest root to leaf path
//	blackheight - black links on every root to nil path
func (t *Tree[K, V]) Stats() map[string]interface{} {
	return map[string]interface{}{
		"n_count":     int64(t.Size()),
		"n_inserts":   t.ninserts,
		"n_updates":   t.nupdates,
		"n_deletes":   t.ndeletes,
		"n_rotates":   t.nrotates,
		"n_flips":     t.nflips,
		"height":      int64(t.Height()),
		"blackheight": int64(t.BlackHeight()),
	}
}

// Name returns the name the tree was created with.
func (t *Tree[K, V]) Name() string {
	return t.name
}
