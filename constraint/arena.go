package constraint

import "github.com/tws0002/chrono/collision"

type arenaEntry struct {
	contact *Contact
	stamp   uint64
}

// Arena pools Contact records across steps, indexed by manifold pair key,
// so persistent pairs reuse the same instance every step instead of
// allocating thousands of contacts per frame. Acquire hands out the pooled
// record and the caller reinitializes it with Reset; Sweep retires every
// pair not acquired since the previous sweep.
//
// Not safe for concurrent use; acquire all contacts before fanning the
// reset work out to workers.
type Arena struct {
	entries map[collision.PairKey]*arenaEntry
	stamp   uint64
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{entries: make(map[collision.PairKey]*arenaEntry)}
}

// Acquire returns the pooled contact for a pair, creating one for pairs
// seen for the first time, and marks the pair live for this step. The
// returned contact holds its prior-use state until the caller resets it.
func (a *Arena) Acquire(key collision.PairKey) *Contact {
	e, ok := a.entries[key]
	if !ok {
		e = &arenaEntry{contact: &Contact{}}
		a.entries[key] = e
	}
	e.stamp = a.stamp

	return e.contact
}

// Sweep retires every pair not acquired since the previous sweep and
// returns the number of contacts dropped.
func (a *Arena) Sweep() int {
	dropped := 0
	for key, e := range a.entries {
		if e.stamp != a.stamp {
			delete(a.entries, key)
			dropped++
		}
	}
	a.stamp++

	return dropped
}

// Len returns the number of live pairs.
func (a *Arena) Len() int {
	return len(a.entries)
}
