// Deterministic random streams for the host.
//
// One seed drives two independent streams, one for the wall pass and one for
// random endpoints, so fixing the endpoints never changes the walls of a seed.
//
// math/rand.Rand is NOT goroutine-safe; every stream is used by one goroutine.
package main

import (
	"math/rand"
	"time"

	"github.com/katalvlaran/gridpath/gridmap"
)

// Stream identifiers for deriveRNG.
const (
	streamWalls uint64 = iota + 1
	streamEndpoints
)

// resolveSeed returns seed, or a clock-derived seed when seed == 0.
func resolveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

// deriveSeed mixes a parent seed and a stream identifier into a new seed
// with the SplitMix64 finalizer.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// deriveRNG returns the deterministic stream of seed.
func deriveRNG(seed int64, stream uint64) *rand.Rand {
	return rand.New(rand.NewSource(deriveSeed(seed, stream)))
}

// randomPoint draws a cell uniformly from a width×height grid.
func randomPoint(rng *rand.Rand, width, height int) gridmap.Point {
	return gridmap.Point{X: rng.Intn(width), Y: rng.Intn(height)}
}
