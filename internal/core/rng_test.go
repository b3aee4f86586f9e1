package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(11), NewRNG(11)
	for i := 0; i < 100; i++ {
		if a.Chance(0.3) != b.Chance(0.3) {
			t.Fatalf("same seed diverged at draw %d", i)
		}
	}
}

func TestRNGChanceBounds(t *testing.T) {
	r := NewRNG(1)
	for i := 0; i < 100; i++ {
		if r.Chance(0) {
			t.Fatalf("chance 0 returned true")
		}
		if !r.Chance(1) {
			t.Fatalf("chance 1 returned false")
		}
	}
}
