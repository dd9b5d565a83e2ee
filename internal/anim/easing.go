// Package anim holds the entrance animation policy for the profile card:
// per-element transitions, stagger over lists, easing curves and poses.
// Everything here is a pure function of elapsed time so it can be tested
// without a terminal.
package anim

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Easing maps linear progress in [0,1] to eased progress. Spring easing may
// overshoot 1 before settling.
type Easing func(t float64) float64

// Linear is the identity easing.
func Linear(t float64) float64 {
	return clamp01(t)
}

// EaseOut decelerates toward the end (cubic).
func EaseOut(t float64) float64 {
	t = clamp01(t)
	u := 1 - t
	return 1 - u*u*u
}

// EaseInOut accelerates then decelerates (cubic).
func EaseInOut(t float64) float64 {
	t = clamp01(t)
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}

// Spring parameters. One unit of progress is simulated as one second at
// springFPS frames, which leaves the under-damped spring within a hair of
// rest by t=1.
const (
	springFPS       = 60
	springFrequency = 9.0
	springDamping   = 0.45
)

// Spring integrates a harmonica spring from 0 toward 1. It overshoots
// slightly and is pinned to exactly 0 and 1 at the ends.
func Spring(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}

	s := harmonica.NewSpring(harmonica.FPS(springFPS), springFrequency, springDamping)
	pos, vel := 0.0, 0.0
	steps := int(math.Round(t * springFPS))
	for i := 0; i < steps; i++ {
		pos, vel = s.Update(pos, vel, 1)
	}
	return pos
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
