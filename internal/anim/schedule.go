package anim

import (
	"time"

	pcerrors "github.com/wexinc/profilecard/internal/errors"
)

// Element identifies an animated part of the card.
type Element int

const (
	Card Element = iota
	Avatar
	Header
	Bio
	Stats
	StatItem
	Skills
	SkillTag
	EditButton
	Floating
)

// String returns the element name used in logs and errors.
func (e Element) String() string {
	switch e {
	case Card:
		return "card"
	case Avatar:
		return "avatar"
	case Header:
		return "header"
	case Bio:
		return "bio"
	case Stats:
		return "stats"
	case StatItem:
		return "stat_item"
	case Skills:
		return "skills"
	case SkillTag:
		return "skill_tag"
	case EditButton:
		return "edit_button"
	case Floating:
		return "floating"
	default:
		return "unknown"
	}
}

// Elements lists every element in reveal order.
var Elements = []Element{Card, Avatar, Header, Bio, Stats, StatItem, Skills, SkillTag, EditButton, Floating}

// Stagger returns the start delay of the index-th item of a list whose first
// item starts at base and each next one step later.
func Stagger(base time.Duration, index int, step time.Duration) time.Duration {
	if index < 0 {
		index = 0
	}
	return base + time.Duration(index)*step
}

// Transition is one element's entrance timing.
type Transition struct {
	Delay    time.Duration
	Duration time.Duration
	Easing   Easing
}

// End is the time at which the transition reaches its target.
func (t Transition) End() time.Duration {
	return t.Delay + t.Duration
}

// Progress returns eased progress for the time elapsed since load.
func (t Transition) Progress(elapsed time.Duration) float64 {
	if elapsed <= t.Delay {
		return 0
	}
	if t.Duration <= 0 || elapsed >= t.End() {
		return 1
	}
	raw := float64(elapsed-t.Delay) / float64(t.Duration)
	ease := t.Easing
	if ease == nil {
		ease = EaseInOut
	}
	return ease(raw)
}

// Done reports whether the transition has finished at elapsed.
func (t Transition) Done(elapsed time.Duration) bool {
	return elapsed >= t.End()
}

// Schedule holds a Transition per element. StatItem and SkillTag hold the
// timing of the first list item; later items are staggered by StatStep and
// SkillStep.
type Schedule struct {
	Card       Transition
	Avatar     Transition
	Header     Transition
	Bio        Transition
	Stats      Transition
	StatItem   Transition
	StatStep   time.Duration
	Skills     Transition
	SkillTag   Transition
	SkillStep  time.Duration
	EditButton Transition
	Floating   Transition
}

// DefaultSchedule guides the eye top to bottom, content before chrome.
func DefaultSchedule() Schedule {
	ms := time.Millisecond
	return Schedule{
		Card:       Transition{Delay: 0, Duration: 800 * ms, Easing: EaseOut},
		Avatar:     Transition{Delay: 300 * ms, Duration: 600 * ms, Easing: Spring},
		Header:     Transition{Delay: 500 * ms, Duration: 600 * ms, Easing: EaseInOut},
		Bio:        Transition{Delay: 700 * ms, Duration: 600 * ms, Easing: EaseInOut},
		Stats:      Transition{Delay: 900 * ms, Duration: 600 * ms, Easing: EaseInOut},
		StatItem:   Transition{Delay: 1000 * ms, Duration: 400 * ms, Easing: EaseInOut},
		StatStep:   100 * ms,
		Skills:     Transition{Delay: 1200 * ms, Duration: 600 * ms, Easing: EaseInOut},
		SkillTag:   Transition{Delay: 1400 * ms, Duration: 400 * ms, Easing: Spring},
		SkillStep:  150 * ms,
		EditButton: Transition{Delay: 1800 * ms, Duration: 400 * ms, Easing: EaseInOut},
		Floating:   Transition{Delay: 2000 * ms, Duration: 500 * ms, Easing: Spring},
	}
}

// For returns the transition of an element. index selects the list item for
// StatItem and SkillTag and is ignored otherwise.
func (s Schedule) For(e Element, index int) Transition {
	switch e {
	case Card:
		return s.Card
	case Avatar:
		return s.Avatar
	case Header:
		return s.Header
	case Bio:
		return s.Bio
	case Stats:
		return s.Stats
	case StatItem:
		t := s.StatItem
		t.Delay = Stagger(t.Delay, index, s.StatStep)
		return t
	case Skills:
		return s.Skills
	case SkillTag:
		t := s.SkillTag
		t.Delay = Stagger(t.Delay, index, s.SkillStep)
		return t
	case EditButton:
		return s.EditButton
	case Floating:
		return s.Floating
	default:
		return Transition{}
	}
}

// MaxScale is the largest factor Scaled applies.
const MaxScale = 100.0

// Scaled returns a copy with every delay, duration and step multiplied by
// factor. A factor <= 0 collapses the schedule so everything is at rest
// immediately. Factors above MaxScale are capped at it.
func (s Schedule) Scaled(factor float64) Schedule {
	if !(factor > 0) {
		factor = 0
	}
	factor = min(factor, MaxScale)
	scale := func(d time.Duration) time.Duration {
		return time.Duration(float64(d) * factor)
	}
	tr := func(t Transition) Transition {
		return Transition{Delay: scale(t.Delay), Duration: scale(t.Duration), Easing: t.Easing}
	}
	return Schedule{
		Card:       tr(s.Card),
		Avatar:     tr(s.Avatar),
		Header:     tr(s.Header),
		Bio:        tr(s.Bio),
		Stats:      tr(s.Stats),
		StatItem:   tr(s.StatItem),
		StatStep:   scale(s.StatStep),
		Skills:     tr(s.Skills),
		SkillTag:   tr(s.SkillTag),
		SkillStep:  scale(s.SkillStep),
		EditButton: tr(s.EditButton),
		Floating:   tr(s.Floating),
	}
}

// Settle returns the time after which every element of a card with the given
// list lengths is at rest.
func (s Schedule) Settle(stats, skills int) time.Duration {
	var end time.Duration
	for _, e := range Elements {
		n := 1
		switch e {
		case StatItem:
			n = stats
		case SkillTag:
			n = skills
		}
		for i := 0; i < n; i++ {
			if t := s.For(e, i).End(); t > end {
				end = t
			}
		}
	}
	return end
}

// Validate checks that delays and durations are sane and that the reveal
// order holds: avatar, header, bio, stats, skills, edit button, floating
// control, each starting strictly after the previous, with the skills
// stagger wider than the stats stagger. A collapsed (all zero) schedule is
// valid.
func (s Schedule) Validate() error {
	if s.isCollapsed() {
		return nil
	}

	for _, e := range Elements {
		t := s.For(e, 0)
		if t.Delay < 0 {
			return pcerrors.ScheduleValueError(e.String()+".delay", "must be non-negative")
		}
		if t.Duration <= 0 {
			return pcerrors.ScheduleValueError(e.String()+".duration", "must be positive")
		}
	}
	if s.StatStep < 0 {
		return pcerrors.ScheduleValueError("stat_step", "must be non-negative")
	}
	if s.SkillStep <= s.StatStep {
		return pcerrors.ScheduleValueError("skill_step", "must be larger than stat_step")
	}

	order := []Element{Avatar, Header, Bio, StatItem, SkillTag, EditButton, Floating}
	for i := 1; i < len(order); i++ {
		prev, next := s.For(order[i-1], 0), s.For(order[i], 0)
		if prev.Delay >= next.Delay {
			return pcerrors.ScheduleOrderError(order[i-1].String(), order[i].String(), prev.Delay, next.Delay)
		}
	}

	// Containers must not start after their first item.
	if s.Stats.Delay > s.StatItem.Delay {
		return pcerrors.ScheduleOrderError("stats", "stat_item", s.Stats.Delay, s.StatItem.Delay)
	}
	if s.Skills.Delay > s.SkillTag.Delay {
		return pcerrors.ScheduleOrderError("skills", "skill_tag", s.Skills.Delay, s.SkillTag.Delay)
	}
	if s.Card.Delay > s.Avatar.Delay {
		return pcerrors.ScheduleOrderError("card", "avatar", s.Card.Delay, s.Avatar.Delay)
	}
	return nil
}

func (s Schedule) isCollapsed() bool {
	return s.Settle(1, 1) == 0 && s.StatStep == 0 && s.SkillStep == 0
}

// PoseAt is the pose of an element at elapsed time since load. Before load
// (loaded=false) every element sits at its hidden pose.
func (s Schedule) PoseAt(e Element, index int, loaded bool, elapsed time.Duration) Pose {
	from := Hidden(e)
	if !loaded {
		return from
	}
	t := s.For(e, index)
	if t.Done(elapsed) {
		return Visible
	}
	return Lerp(from, Visible, t.Progress(elapsed))
}
