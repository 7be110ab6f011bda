package collision

// Cache slot indices: normal, tangent-u, tangent-v multipliers.
const (
	SlotN = iota
	SlotU
	SlotV
)

// ReactionCache is the 3-slot buffer of solved contact multipliers
// (normal, tangent-u, tangent-v) kept alive in a contact manifold. It is
// owned here, never by the contact that reads it: a contact primes its
// rows from the cache at reset and writes the solved multipliers back
// after the solve, warm-starting the next step even when the contact
// object itself is recreated every frame.
type ReactionCache [3]float64

// Store writes the three multipliers.
func (c *ReactionCache) Store(n, u, v float64) {
	c[SlotN], c[SlotU], c[SlotV] = n, u, v
}

// Load reads the three multipliers.
func (c *ReactionCache) Load() (n, u, v float64) {
	return c[SlotN], c[SlotU], c[SlotV]
}

type cacheEntry struct {
	cache ReactionCache
	stamp uint64
}

// CacheBank keeps one ReactionCache per live manifold slot. Pairs mark
// their slot by acquiring it each step; Sweep retires every slot that was
// not acquired since the previous sweep, so warm-start data survives
// exactly as long as the pair stays in contact.
//
// Not safe for concurrent use: acquire all caches before fanning work out
// to workers, each cache is then exclusively owned by its contact.
type CacheBank struct {
	entries map[PairKey]*cacheEntry
	stamp   uint64
}

// NewCacheBank creates an empty bank.
func NewCacheBank() *CacheBank {
	return &CacheBank{entries: make(map[PairKey]*cacheEntry)}
}

// Acquire returns the cache for a manifold slot, creating a zeroed one for
// pairs seen for the first time, and marks the slot live for this step.
func (b *CacheBank) Acquire(key PairKey) *ReactionCache {
	e, ok := b.entries[key]
	if !ok {
		e = &cacheEntry{}
		b.entries[key] = e
	}
	e.stamp = b.stamp

	return &e.cache
}

// Sweep drops every slot that was not acquired since the previous sweep
// and returns the number of slots dropped.
func (b *CacheBank) Sweep() int {
	dropped := 0
	for key, e := range b.entries {
		if e.stamp != b.stamp {
			delete(b.entries, key)
			dropped++
		}
	}
	b.stamp++

	return dropped
}

// Len returns the number of live slots.
func (b *CacheBank) Len() int {
	return len(b.entries)
}
