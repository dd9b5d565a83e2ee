// Package tui provides the terminal profile card.
package tui

import "time"

// MountedMsg tells the view it is on screen. Init emits it once; the first
// one starts the entrance animation and any later ones are ignored.
type MountedMsg struct{}

// FrameMsg advances the animation by one frame.
type FrameMsg struct {
	Time time.Time
}
