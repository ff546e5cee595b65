// Package layout implements component G: the Container sum type
// (HSplit/VSplit/Window/FloatContainer/Conditional/Dynamic) and the
// weighted space-division algorithm that turns a container tree into
// child sizes, grounded on the teacher's two-pass Measure/Draw flex
// engine (tui/layout_engine.go) generalized to the spec's four-field
// Dimension and deterministic Bresenham-style weighted growth.
package layout

// Dimension is a (min, preferred, max, weight) size constraint. All
// fields are non-negative; Max >= Preferred >= Min is the caller's
// responsibility to maintain (Normalize enforces it).
type Dimension struct {
	Min, Preferred, Max, Weight int
}

// Exact returns a Dimension pinned to n on every axis but weight.
func Exact(n int) Dimension {
	return Dimension{Min: n, Preferred: n, Max: n, Weight: 1}
}

// DefaultDimension is the unconstrained dimension used when a container
// doesn't otherwise specify one: min 0, preferred 1, max unbounded,
// weight 1 — mirrors the teacher's Auto() as the default Size.
func DefaultDimension() Dimension {
	return Dimension{Min: 0, Preferred: 1, Max: 1 << 30, Weight: 1}
}

// Normalize clamps Min/Max/Preferred into a consistent order: Max is
// raised to at least Preferred, which is raised to at least Min.
func (d Dimension) Normalize() Dimension {
	if d.Weight <= 0 {
		d.Weight = 1
	}
	if d.Min < 0 {
		d.Min = 0
	}
	if d.Preferred < d.Min {
		d.Preferred = d.Min
	}
	if d.Max < d.Preferred {
		d.Max = d.Preferred
	}
	return d
}
