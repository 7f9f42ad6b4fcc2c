package tests

import (
	"math/rand"
	"time"
)

// Randomizer feeds property-style tests. Seed is logged by callers on failure.
type Randomizer struct {
	Seed    int64
	Float64 func() float64
	Bool    func() bool
	Intn    func(n int) int
}

func NewRandomizer() Randomizer {
	seed := time.Now().UnixNano()
	random := rand.New(rand.NewSource(seed)) //nolint:gosec // for tests

	return Randomizer{
		Seed:    seed,
		Float64: random.Float64,
		Bool:    func() bool { return random.Intn(2) == 0 }, //nolint:mnd // skip
		Intn:    random.Intn,
	}
}
