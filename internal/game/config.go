package game

// Config holds game configuration options.
type Config struct {
	// Seed for the dice. The same seed and the same commands replay the same
	// session. A seed of 0 means a random seed will be generated.
	Seed int64
}
