package picker

import (
	"math/rand"
	"time"
)

// Picker provides random index selection, used to pick a reaction
// emoji from a guild's emoji list
type Picker struct {
	random *rand.Rand
}

// Config for the picker
type Config struct {
	// Optional seed for testing
	Seed int64
}

// New creates a new picker
func New(cfg *Config) *Picker {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)

	return &Picker{
		random: rand.New(source),
	}
}

// Pick returns a random index in [0, n). It returns 0 when n < 2
func (p *Picker) Pick(n int) int {
	if n < 2 {
		return 0
	}
	return p.random.Intn(n)
}
