package layout

import "testing"

func sum(xs []int) int {
	t := 0
	for _, x := range xs {
		t += x
	}
	return t
}

func TestDivideSpaceRespectsMinimaWhenTooSmall(t *testing.T) {
	dims := []Dimension{
		{Min: 10, Preferred: 20, Max: 30, Weight: 1},
		{Min: 10, Preferred: 20, Max: 30, Weight: 1},
	}
	got := divideSpace(dims, 15)
	if got[0] != 10 || got[1] != 10 {
		t.Fatalf("got %v, want minima unchanged when available < sum(min)", got)
	}
}

func TestDivideSpaceFillsExactlyAvailable(t *testing.T) {
	dims := []Dimension{
		{Min: 0, Preferred: 10, Max: 100, Weight: 1},
		{Min: 0, Preferred: 10, Max: 100, Weight: 1},
		{Min: 0, Preferred: 10, Max: 100, Weight: 1},
	}
	got := divideSpace(dims, 50)
	if sum(got) != 50 {
		t.Fatalf("sum(%v) = %d, want 50", got, sum(got))
	}
	for _, g := range got {
		if g > 100 {
			t.Errorf("child exceeded max: %d", g)
		}
	}
}

func TestDivideSpaceNeverExceedsMax(t *testing.T) {
	dims := []Dimension{
		{Min: 0, Preferred: 5, Max: 5, Weight: 1},
		{Min: 0, Preferred: 100, Max: 100, Weight: 3},
	}
	got := divideSpace(dims, 50)
	if got[0] > 5 {
		t.Fatalf("child 0 exceeded its max: %d", got[0])
	}
	if sum(got) != 50 {
		t.Fatalf("sum(%v) = %d, want 50 (remaining budget goes to child 1)", got, sum(got))
	}
}

func TestDivideSpaceWeightedGrowthIsProportional(t *testing.T) {
	// Two equal-min/pref/max-unbounded children, weights 1 and 3: over a
	// large budget, growth share should approach the weight ratio.
	dims := []Dimension{
		{Min: 0, Preferred: 0, Max: 1000, Weight: 1},
		{Min: 0, Preferred: 0, Max: 1000, Weight: 3},
	}
	got := divideSpace(dims, 400)
	if sum(got) != 400 {
		t.Fatalf("sum(%v) = %d, want 400", got, sum(got))
	}
	// Expect roughly a 1:3 split; exact values follow the deterministic
	// round-robin (100, 300).
	if got[0] != 100 || got[1] != 300 {
		t.Errorf("got %v, want [100 300]", got)
	}
}

func TestDivideSpaceTiesGoToLowerIndex(t *testing.T) {
	dims := []Dimension{
		{Min: 0, Preferred: 0, Max: 10, Weight: 1},
		{Min: 0, Preferred: 0, Max: 10, Weight: 1},
	}
	got := divideSpace(dims, 1)
	if got[0] != 1 || got[1] != 0 {
		t.Fatalf("got %v, want [1 0] (tie breaks to lower index)", got)
	}
}

func TestDivideSpaceStopsAtCombinedMax(t *testing.T) {
	dims := []Dimension{
		{Min: 0, Preferred: 5, Max: 5, Weight: 1},
		{Min: 0, Preferred: 5, Max: 5, Weight: 1},
	}
	got := divideSpace(dims, 100)
	if sum(got) != 10 {
		t.Fatalf("sum(%v) = %d, want 10 (both children capped at max)", got, sum(got))
	}
}
