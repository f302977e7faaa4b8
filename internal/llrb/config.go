package llrb

import s "github.com/bnclabs/gosettings"

// Defaultsettings for a tree instance.
//
// "verify" (bool, default: false),
//		Run Verify() after every Put, Delete and DeleteMin and panic
//		on the first broken invariant. Meant for tests and debugging,
//		it turns every mutation into an O(n) operation.
//
func Defaultsettings() s.Settings {
	return s.Settings{
		"verify": false,
	}
}

func (t *Tree[K, V]) readsettings(setts s.Settings) {
	t.verify = setts.Bool("verify")
}
