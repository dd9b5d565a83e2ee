package anim

import "time"

// Pose is the visual state of an element. Offsets are in the same abstract
// units the schedule was tuned with (roughly CSS pixels); renderers convert
// them to cells. Rotate is in degrees.
type Pose struct {
	Opacity float64
	Scale   float64
	OffsetX float64
	OffsetY float64
	Rotate  float64
}

// Visible is the resting pose every element animates to.
var Visible = Pose{Opacity: 1, Scale: 1}

// Lerp interpolates from a toward b. t may exceed 1 for springs; opacity is
// always clamped to [0,1] and scale never goes negative.
func Lerp(a, b Pose, t float64) Pose {
	p := Pose{
		Opacity: a.Opacity + (b.Opacity-a.Opacity)*t,
		Scale:   a.Scale + (b.Scale-a.Scale)*t,
		OffsetX: a.OffsetX + (b.OffsetX-a.OffsetX)*t,
		OffsetY: a.OffsetY + (b.OffsetY-a.OffsetY)*t,
		Rotate:  a.Rotate + (b.Rotate-a.Rotate)*t,
	}
	p.Opacity = clamp01(p.Opacity)
	if p.Scale < 0 {
		p.Scale = 0
	}
	return p
}

// Hidden returns the pose e starts from before the card is loaded.
func Hidden(e Element) Pose {
	switch e {
	case Card:
		return Pose{Opacity: 0, Scale: 1, OffsetY: 50}
	case Avatar:
		return Pose{Opacity: 1, Scale: 0}
	case Header:
		return Pose{Opacity: 0, Scale: 1, OffsetX: 20}
	case Bio:
		return Pose{Opacity: 0, Scale: 1}
	case Stats, Skills:
		return Pose{Opacity: 0, Scale: 1, OffsetY: 30}
	case StatItem:
		return Pose{Opacity: 0, Scale: 0.8}
	case SkillTag:
		return Pose{Opacity: 0, Scale: 0}
	case EditButton:
		return Pose{Opacity: 0, Scale: 1, OffsetY: 20}
	case Floating:
		return Pose{Opacity: 1, Scale: 0}
	default:
		return Visible
	}
}

// Feedback is the pointer response of an interactive control. Pressing
// overrides the hover scale; rotation applies for as long as the pointer
// is over the control.
type Feedback struct {
	HoverScale  float64
	HoverRotate float64
	PressScale  float64
}

// Feedback for the two controls on the card.
var (
	EditFeedback     = Feedback{HoverScale: 1.05, PressScale: 0.95}
	FloatingFeedback = Feedback{HoverScale: 1.1, HoverRotate: 90, PressScale: 0.9}
)

// FeedbackDuration is how long hover feedback takes to reach full strength.
const FeedbackDuration = 200 * time.Millisecond

// ApplyAt layers pointer feedback that has been building for hoverFor.
// Press feedback is immediate.
func (f Feedback) ApplyAt(p Pose, hovered, pressed bool, hoverFor time.Duration) Pose {
	k := EaseOut(float64(hoverFor) / float64(FeedbackDuration))
	switch {
	case pressed:
		p.Scale *= f.PressScale
	case hovered:
		p.Scale *= 1 + (f.HoverScale-1)*k
	}
	if hovered {
		p.Rotate += f.HoverRotate * k
	}
	return p
}
