package llrb

import "math/rand"

// Shuffle permutes a in place using the random source r. Inserting
// shuffled keys is the usual way to exercise the tree with an input
// order other than sorted.
func Shuffle[T any](r *rand.Rand, a []T) {
	r.Shuffle(len(a), func(i, j int) {
		a[i], a[j] = a[j], a[i]
	})
}
