package ui

import (
	"math"
	"strconv"
)

// Range bounds a slider. Step is optional; values snap to Min+k*Step when
// it is positive.
type Range struct {
	Min, Max, Step float32
}

// Clamp snaps v to the step grid and bounds it to [Min, Max].
func (r Range) Clamp(v float32) float32 {
	if r.Step > 0 {
		k := math.Round(float64(v-r.Min) / float64(r.Step))
		v = r.Min + float32(k)*r.Step
	}
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// Fraction returns where v sits between Min and Max, in [0, 1].
func (r Range) Fraction(v float32) float64 {
	span := float64(r.Max - r.Min)
	if span <= 0 {
		return 0
	}
	return clamp01(float64(v-r.Min) / span)
}

// At maps a track fraction back to a clamped, snapped value.
func (r Range) At(f float64) float32 {
	f = clamp01(f)
	return r.Clamp(r.Min + float32(f)*(r.Max-r.Min))
}

// Format renders v with a precision that matches the step size.
func (r Range) Format(v float32) string {
	step := r.Step
	if step <= 0 {
		step = (r.Max - r.Min) / 100
	}
	precision := 2
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	case step < 1:
		precision = 1
	default:
		precision = 0
	}
	return strconv.FormatFloat(float64(v), 'f', precision, 32)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
