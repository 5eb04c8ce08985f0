package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveSeed_Streams(t *testing.T) {
	assert.Equal(t, deriveSeed(42, streamWalls), deriveSeed(42, streamWalls))
	assert.NotEqual(t, deriveSeed(42, streamWalls), deriveSeed(42, streamEndpoints))
	assert.NotEqual(t, deriveSeed(42, streamWalls), deriveSeed(43, streamWalls))
}

func TestRandomPoint_InRange(t *testing.T) {
	rng := deriveRNG(7, streamEndpoints)
	for i := 0; i < 1000; i++ {
		p := randomPoint(rng, 5, 3)
		assert.True(t, p.X >= 0 && p.X < 5 && p.Y >= 0 && p.Y < 3, "%v", p)
	}
}

func TestResolveSeed(t *testing.T) {
	assert.Equal(t, int64(9), resolveSeed(9))
	assert.NotZero(t, resolveSeed(0))
}
