package mcts

import (
	"math/rand"
	"time"

	"github.com/bszcz/mt19937_64"
)

type SeedGeneratorFnType func() int64

// Exploration parameter used in UCB1 formula, higher values increase exploration
// while lower values increase exploitation. Default is 2
var ExplorationParam float64 = 2

// Set the exploration parameter used in UCB1 formula, for newly created engines
func SetExplorationParam(c float64) {
	ExplorationParam = max(0.0, c)
}

var SeedGeneratorFn SeedGeneratorFnType = func() int64 {
	return time.Now().UnixNano()
}

// Set custom seed generator function for random number generators in MCTS,
// by default uses current time in nanoseconds
func SetSeedGeneratorFn(f SeedGeneratorFnType) {
	if f != nil {
		SeedGeneratorFn = f
	}
}

// Create a new random number generator backed by the 64-bit Mersenne Twister,
// the same seed always yields the same sequence
func NewRand(seed int64) *rand.Rand {
	source := mt19937_64.New()
	source.Seed(seed)
	return rand.New(source)
}
