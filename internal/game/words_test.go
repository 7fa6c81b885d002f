package game

import (
	"math/rand/v2"
	"testing"
)

func TestPairPoolNoRepeatUntilExhausted(t *testing.T) {
	pool := NewPairPool(rand.New(rand.NewPCG(1, 2)))

	seen := make(map[WordPair]bool)
	for i := 0; i < len(batteryPairs); i++ {
		pair := pool.Draw()
		if seen[pair] {
			t.Fatalf("pair %v repeated at draw %d, before exhaustion", pair, i)
		}
		seen[pair] = true
	}
	if pool.Remaining() != 0 {
		t.Fatalf("remaining = %d after drawing all pairs, want 0", pool.Remaining())
	}
}

func TestPairPoolRefillsAfterExhaustion(t *testing.T) {
	pool := NewPairPool(rand.New(rand.NewPCG(1, 2)))

	for i := 0; i < len(batteryPairs); i++ {
		pool.Draw()
	}

	pair := pool.Draw() // first draw of the refilled pool
	if pool.Remaining() != len(batteryPairs)-1 {
		t.Fatalf("remaining = %d after refill draw, want %d", pool.Remaining(), len(batteryPairs)-1)
	}

	found := false
	for _, p := range batteryPairs {
		if p == pair {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("refilled pool dealt unknown pair %v", pair)
	}
}
