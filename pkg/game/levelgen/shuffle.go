package levelgen

// Shuffler is the random source used by placement. *rand.Rand satisfies it;
// tests inject a fixed sequence.
type Shuffler interface {
	// Intn returns a value in [0, n)
	Intn(n int) int
}

// Shuffle permutes s in place with a Fisher–Yates shuffle driven by rng
func Shuffle[T any](rng Shuffler, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}
