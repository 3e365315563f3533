package i

// Randomizer is the uniform random source consumed by maze generation,
// agent decisions and style rolls. *math/rand.Rand satisfies it directly;
// tests substitute scripted implementations.
type Randomizer interface {
	// Intn returns a uniform integer in [0, n). Panics if n <= 0.
	Intn(n int) int
	// Shuffle pseudo-randomizes the order of n elements using swap.
	Shuffle(n int, swap func(i, j int))
}
