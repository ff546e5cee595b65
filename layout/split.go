package layout

import "github.com/willibrandon/stroke/screen"

// divideSpace implements the weighted space-division algorithm of spec
// §4.G / §8 scenario 4:
//
//  1. assign each child its Min; if the sum exceeds available, return the
//     Min allocation unchanged (caller renders "too small").
//  2. grow towards Preferred, then grow towards Max, by repeatedly
//     picking a still-growable child via a deterministic weighted
//     round-robin (a Bresenham-style accumulator) instead of RNG.
//
// Ties (equal weight) resolve to the lower child index, matching spec's
// tie-break rule.
func divideSpace(dims []Dimension, available int) []int {
	n := len(dims)
	sizes := make([]int, n)
	sumMin := 0
	for i, d := range dims {
		sizes[i] = d.Min
		sumMin += d.Min
	}
	if sumMin >= available {
		return sizes
	}

	budget := available - sumMin
	preferred := make([]int, n)
	maxes := make([]int, n)
	for i, d := range dims {
		preferred[i] = d.Preferred
		maxes[i] = d.Max
	}

	budget = growTowards(sizes, dims, preferred, budget)
	budget = growTowards(sizes, dims, maxes, budget)
	_ = budget
	return sizes
}

// growTowards grows sizes[i] one unit at a time towards targets[i], for
// every i with targets[i] > sizes[i], using a weighted round-robin
// accumulator so higher-weight children grow proportionally faster, until
// budget is exhausted or no child can grow further. Returns the
// remaining budget.
func growTowards(sizes []int, dims []Dimension, targets []int, budget int) int {
	n := len(sizes)
	acc := make([]int, n)
	for budget > 0 {
		var growable []int
		for i := 0; i < n; i++ {
			if sizes[i] < targets[i] {
				growable = append(growable, i)
			}
		}
		if len(growable) == 0 {
			break
		}

		totalWeight := 0
		for _, i := range growable {
			acc[i] += dims[i].Weight
			totalWeight += dims[i].Weight
		}

		best := growable[0]
		for _, i := range growable[1:] {
			if acc[i] > acc[best] {
				best = i
			}
		}
		sizes[best]++
		acc[best] -= totalWeight
		budget--
	}
	return budget
}

// HAlign is the horizontal alignment of a VSplit.
type HAlign int

const (
	HAlignLeft HAlign = iota
	HAlignCenter
	HAlignRight
	HAlignJustify
)

// VAlign is the vertical alignment of an HSplit.
type VAlign int

const (
	VAlignTop VAlign = iota
	VAlignCenter
	VAlignBottom
	VAlignJustify
)

// HSplit arranges children top-to-bottom, dividing height by weight
// (spec §3/§4.G).
type HSplit struct {
	Children     []Container
	Align        VAlign
	Padding      Dimension
	PaddingChar  string
	PaddingStyle string
}

func (h *HSplit) GetChildren() []Container { return h.Children }

func (h *HSplit) paddingDim() Dimension {
	d := h.Padding.Normalize()
	if d.Min < 0 {
		d.Min = 0
	}
	return d
}

func (h *HSplit) PreferredWidth(maxAvailableWidth int) Dimension {
	if len(h.Children) == 0 {
		return Dimension{Weight: 1}
	}
	var min, pref, max int
	for _, c := range h.Children {
		d := c.PreferredWidth(maxAvailableWidth)
		if d.Min > min {
			min = d.Min
		}
		if d.Preferred > pref {
			pref = d.Preferred
		}
		if d.Max > max {
			max = d.Max
		}
	}
	return Dimension{Min: min, Preferred: pref, Max: max, Weight: 1}
}

func (h *HSplit) PreferredHeight(width, maxAvailableHeight int) Dimension {
	n := len(h.Children)
	if n == 0 {
		return Dimension{Weight: 1}
	}
	padTotal := h.paddingDim().Preferred * (n - 1)
	var min, pref, max int
	for _, c := range h.Children {
		d := c.PreferredHeight(width, maxAvailableHeight)
		min += d.Min
		pref += d.Preferred
		max += d.Max
	}
	return Dimension{Min: min + padTotal, Preferred: pref + padTotal, Max: max + padTotal, Weight: 1}
}

// rowSizes returns the per-child heights (not including padding) that fill
// available height, padding included in the accounting.
func (h *HSplit) rowSizes(width, available int) []int {
	n := len(h.Children)
	pad := h.paddingDim().Preferred
	padTotal := pad * (n - 1)
	contentAvailable := available - padTotal
	if contentAvailable < 0 {
		contentAvailable = 0
	}
	dims := make([]Dimension, n)
	for i, c := range h.Children {
		dims[i] = c.PreferredHeight(width, contentAvailable).Normalize()
	}
	return divideSpace(dims, contentAvailable)
}

func (h *HSplit) WriteToScreen(s *screen.Screen, mh *MouseHandlers, wp WritePosition, parentStyle string, eraseBg bool, zIndex int) {
	if len(h.Children) == 0 {
		return
	}
	sizes := h.rowSizes(wp.Width, wp.Height)
	pad := h.paddingDim().Preferred

	y := wp.YPos
	for i, c := range h.Children {
		childWp := WritePosition{XPos: wp.XPos, YPos: y, Width: wp.Width, Height: sizes[i]}
		c.WriteToScreen(s, mh, childWp, parentStyle, eraseBg, zIndex)
		y += sizes[i]
		if i != len(h.Children)-1 {
			if eraseBg {
				fillRect(s, childWp.XPos, y, wp.Width, pad, parentStyle)
			}
			y += pad
		}
	}
}

// VSplit arranges children left-to-right, dividing width by weight
// (spec §3/§4.G).
type VSplit struct {
	Children     []Container
	Align        HAlign
	Padding      Dimension
	PaddingChar  string
	PaddingStyle string
}

func (v *VSplit) GetChildren() []Container { return v.Children }

func (v *VSplit) paddingDim() Dimension {
	d := v.Padding.Normalize()
	if d.Min < 0 {
		d.Min = 0
	}
	return d
}

func (v *VSplit) PreferredWidth(maxAvailableWidth int) Dimension {
	n := len(v.Children)
	if n == 0 {
		return Dimension{Weight: 1}
	}
	padTotal := v.paddingDim().Preferred * (n - 1)
	var min, pref, max int
	for _, c := range v.Children {
		d := c.PreferredWidth(maxAvailableWidth)
		min += d.Min
		pref += d.Preferred
		max += d.Max
	}
	return Dimension{Min: min + padTotal, Preferred: pref + padTotal, Max: max + padTotal, Weight: 1}
}

func (v *VSplit) PreferredHeight(width, maxAvailableHeight int) Dimension {
	if len(v.Children) == 0 {
		return Dimension{Weight: 1}
	}
	var min, pref, max int
	for _, c := range v.Children {
		d := c.PreferredHeight(width, maxAvailableHeight)
		if d.Min > min {
			min = d.Min
		}
		if d.Preferred > pref {
			pref = d.Preferred
		}
		if d.Max > max {
			max = d.Max
		}
	}
	return Dimension{Min: min, Preferred: pref, Max: max, Weight: 1}
}

func (v *VSplit) colSizes(available, height int) []int {
	n := len(v.Children)
	pad := v.paddingDim().Preferred
	padTotal := pad * (n - 1)
	contentAvailable := available - padTotal
	if contentAvailable < 0 {
		contentAvailable = 0
	}
	dims := make([]Dimension, n)
	for i, c := range v.Children {
		dims[i] = c.PreferredWidth(contentAvailable).Normalize()
	}
	return divideSpace(dims, contentAvailable)
}

func (v *VSplit) WriteToScreen(s *screen.Screen, mh *MouseHandlers, wp WritePosition, parentStyle string, eraseBg bool, zIndex int) {
	if len(v.Children) == 0 {
		return
	}
	sizes := v.colSizes(wp.Width, wp.Height)
	pad := v.paddingDim().Preferred

	x := wp.XPos
	for i, c := range v.Children {
		childWp := WritePosition{XPos: x, YPos: wp.YPos, Width: sizes[i], Height: wp.Height}
		c.WriteToScreen(s, mh, childWp, parentStyle, eraseBg, zIndex)
		x += sizes[i]
		if i != len(v.Children)-1 {
			if eraseBg {
				fillRect(s, x, wp.YPos, pad, wp.Height, parentStyle)
			}
			x += pad
		}
	}
}
