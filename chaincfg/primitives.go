package chaincfg

import (
	"math/rand"
	"sync"
	"time"
)

// RandSource returns a uniformly distributed value in [0, n).
type RandSource interface {
	Int63n(n int64) int64
}

// Primitives groups the external capabilities profile construction consumes.
type Primitives struct {
	// Hasher computes block header hashes.
	Hasher HeaderHasher

	// Now returns the current time. It is read once per profile, when fixed
	// seeds are materialized.
	Now func() time.Time

	// Rand backdates fixed seed timestamps.
	Rand RandSource
}

// DefaultPrimitives returns the production capabilities: X11 header hashing,
// the wall clock and a time seeded random source.
func DefaultPrimitives() Primitives {
	return Primitives{
		Hasher: X11,
		Now:    time.Now,
		Rand:   &lockedRand{r: rand.New(rand.NewSource(time.Now().UnixNano()))},
	}
}

// withDefaults fills any unset capability from DefaultPrimitives.
func (p Primitives) withDefaults() Primitives {
	if p.Hasher != nil && p.Now != nil && p.Rand != nil {
		return p
	}
	d := DefaultPrimitives()
	if p.Hasher == nil {
		p.Hasher = d.Hasher
	}
	if p.Now == nil {
		p.Now = d.Now
	}
	if p.Rand == nil {
		p.Rand = d.Rand
	}
	return p
}

type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (l *lockedRand) Int63n(n int64) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Int63n(n)
}
