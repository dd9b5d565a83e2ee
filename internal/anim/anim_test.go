package anim

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pcerrors "github.com/wexinc/profilecard/internal/errors"
)

const ms = time.Millisecond

func TestStagger(t *testing.T) {
	tests := []struct {
		base  time.Duration
		index int
		step  time.Duration
		want  time.Duration
	}{
		{1000 * ms, 0, 100 * ms, 1000 * ms},
		{1000 * ms, 1, 100 * ms, 1100 * ms},
		{1000 * ms, 2, 100 * ms, 1200 * ms},
		{1400 * ms, 5, 150 * ms, 2150 * ms},
		{0, 3, 0, 0},
		{500 * ms, -1, 100 * ms, 500 * ms},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Stagger(tt.base, tt.index, tt.step))
	}
}

func TestStagger_Monotonic(t *testing.T) {
	prev := Stagger(time.Second, 0, 50*ms)
	for i := 1; i < 20; i++ {
		d := Stagger(time.Second, i, 50*ms)
		require.Greater(t, d, prev)
		prev = d
	}
}

func TestEasings_Endpoints(t *testing.T) {
	for name, ease := range map[string]Easing{
		"linear":    Linear,
		"easeOut":   EaseOut,
		"easeInOut": EaseInOut,
		"spring":    Spring,
	} {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, 0, ease(0), 1e-9)
			assert.InDelta(t, 1, ease(1), 1e-9)
			assert.InDelta(t, 0, ease(-0.5), 1e-9)
			assert.InDelta(t, 1, ease(1.5), 1e-9)
		})
	}
}

func TestEaseOut_FasterThanLinearEarly(t *testing.T) {
	assert.Greater(t, EaseOut(0.25), Linear(0.25))
	assert.InDelta(t, 0.5, EaseInOut(0.5), 1e-9)
}

func TestSpring_OvershootsAndSettles(t *testing.T) {
	peak := 0.0
	for i := 1; i < 60; i++ {
		if v := Spring(float64(i) / 60); v > peak {
			peak = v
		}
	}
	assert.Greater(t, peak, 1.0, "under-damped spring should overshoot")
	assert.InDelta(t, 1, Spring(59.0/60), 0.05)
	assert.Equal(t, Spring(0.3), Spring(0.3), "spring must be deterministic")
}

func TestTransition_Progress(t *testing.T) {
	tr := Transition{Delay: 100 * ms, Duration: 200 * ms, Easing: Linear}

	assert.Equal(t, 0.0, tr.Progress(0))
	assert.Equal(t, 0.0, tr.Progress(100*ms))
	assert.InDelta(t, 0.5, tr.Progress(200*ms), 1e-9)
	assert.Equal(t, 1.0, tr.Progress(300*ms))
	assert.Equal(t, 1.0, tr.Progress(time.Hour))
	assert.False(t, tr.Done(299*ms))
	assert.True(t, tr.Done(300*ms))
	assert.Equal(t, 300*ms, tr.End())
}

func TestTransition_NilEasingDefaults(t *testing.T) {
	tr := Transition{Duration: 100 * ms}
	assert.InDelta(t, EaseInOut(0.5), tr.Progress(50*ms), 1e-9)
}

func TestDefaultSchedule_Valid(t *testing.T) {
	require.NoError(t, DefaultSchedule().Validate())
}

func TestDefaultSchedule_RevealOrder(t *testing.T) {
	s := DefaultSchedule()
	order := []Transition{
		s.For(Avatar, 0),
		s.For(Header, 0),
		s.For(Bio, 0),
		s.For(StatItem, 0),
		s.For(SkillTag, 0),
		s.For(EditButton, 0),
		s.For(Floating, 0),
	}
	for i := 1; i < len(order); i++ {
		assert.Less(t, order[i-1].Delay, order[i].Delay, "step %d", i)
	}
	assert.Greater(t, s.SkillStep, s.StatStep)
}

func TestSchedule_ForStaggersItems(t *testing.T) {
	s := DefaultSchedule()

	assert.Equal(t, 1000*ms, s.For(StatItem, 0).Delay)
	assert.Equal(t, 1100*ms, s.For(StatItem, 1).Delay)
	assert.Equal(t, 1200*ms, s.For(StatItem, 2).Delay)
	assert.Equal(t, 1400*ms, s.For(SkillTag, 0).Delay)
	assert.Equal(t, 1700*ms, s.For(SkillTag, 2).Delay)
	assert.Equal(t, s.Bio.Delay, s.For(Bio, 7).Delay, "index ignored for non-list elements")
}

func TestSchedule_Scaled(t *testing.T) {
	s := DefaultSchedule().Scaled(2)

	assert.Equal(t, 600*ms, s.Avatar.Delay)
	assert.Equal(t, 1200*ms, s.Avatar.Duration)
	assert.Equal(t, 300*ms, s.SkillStep)
	require.NoError(t, s.Validate())

	zero := DefaultSchedule().Scaled(0)
	assert.Equal(t, time.Duration(0), zero.Settle(3, 6))
	require.NoError(t, zero.Validate())
}

func TestSchedule_ScaledCapsHugeFactors(t *testing.T) {
	capped := DefaultSchedule().Scaled(MaxScale)

	for _, factor := range []float64{1e300, math.Inf(1)} {
		s := DefaultSchedule().Scaled(factor)
		assert.Equal(t, capped, s)
		assert.Positive(t, s.Settle(3, 6))
		require.NoError(t, s.Validate())
	}

	nan := DefaultSchedule().Scaled(math.NaN())
	assert.Equal(t, time.Duration(0), nan.Settle(3, 6))
}

func TestSchedule_Settle(t *testing.T) {
	s := DefaultSchedule()

	// Floating control ends at 2.5s; six skills end at 1.4+5*0.15+0.4 = 2.55s.
	assert.Equal(t, 2550*ms, s.Settle(3, 6))
	assert.Equal(t, 2500*ms, s.Settle(0, 0))
}

func TestSchedule_ValidateOrder(t *testing.T) {
	s := DefaultSchedule()
	s.Bio.Delay = s.Header.Delay

	err := s.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, pcerrors.ErrSchedule))
	assert.Contains(t, err.Error(), "header")
	assert.Contains(t, err.Error(), "bio")
}

func TestSchedule_ValidateValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Schedule)
		field  string
	}{
		{"negative delay", func(s *Schedule) { s.Card.Delay = -1 }, "card.delay"},
		{"zero duration", func(s *Schedule) { s.Avatar.Duration = 0 }, "avatar.duration"},
		{"skill step too small", func(s *Schedule) { s.SkillStep = s.StatStep }, "skill_step"},
		{"negative stat step", func(s *Schedule) { s.StatStep = -ms }, "stat_step"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSchedule()
			tt.mutate(&s)

			err := s.Validate()
			require.Error(t, err)

			var appErr *pcerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, tt.field, appErr.Details["field"])
		})
	}
}

func TestPoseAt_HiddenBeforeLoad(t *testing.T) {
	s := DefaultSchedule()
	for _, e := range Elements {
		assert.Equal(t, Hidden(e), s.PoseAt(e, 0, false, time.Hour), e.String())
	}
}

func TestPoseAt_VisibleAfterSettle(t *testing.T) {
	s := DefaultSchedule()
	settle := s.Settle(3, 6)
	for _, e := range Elements {
		for i := 0; i < 6; i++ {
			assert.Equal(t, Visible, s.PoseAt(e, i, true, settle), e.String())
		}
	}
}

func TestPoseAt_Midway(t *testing.T) {
	s := DefaultSchedule()

	p := s.PoseAt(Header, 0, true, 800*ms)
	assert.Greater(t, p.Opacity, 0.0)
	assert.Less(t, p.Opacity, 1.0)
	assert.Greater(t, p.OffsetX, 0.0)
	assert.Less(t, p.OffsetX, 20.0)

	// The floating control has not started when the header is midway.
	assert.Equal(t, Hidden(Floating), s.PoseAt(Floating, 0, true, 800*ms))
}

func TestLerp_Clamps(t *testing.T) {
	p := Lerp(Pose{Opacity: 0, Scale: 0}, Visible, 1.2)
	assert.Equal(t, 1.0, p.Opacity)
	assert.InDelta(t, 1.2, p.Scale, 1e-9)

	p = Lerp(Pose{Scale: 1}, Pose{Scale: 0}, 1.5)
	assert.Equal(t, 0.0, p.Scale)
}

func TestFeedback_ApplyAtFullyBuilt(t *testing.T) {
	tests := []struct {
		name      string
		fb        Feedback
		hovered   bool
		pressed   bool
		wantScale float64
		wantRot   float64
	}{
		{"edit idle", EditFeedback, false, false, 1, 0},
		{"edit hover", EditFeedback, true, false, 1.05, 0},
		{"edit press", EditFeedback, true, true, 0.95, 0},
		{"floating hover", FloatingFeedback, true, false, 1.1, 90},
		{"floating press", FloatingFeedback, true, true, 0.9, 90},
		{"floating press without hover", FloatingFeedback, false, true, 0.9, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.fb.ApplyAt(Visible, tt.hovered, tt.pressed, FeedbackDuration)
			assert.InDelta(t, tt.wantScale, p.Scale, 1e-9)
			assert.InDelta(t, tt.wantRot, p.Rotate, 1e-9)
		})
	}
}

func TestFeedback_ApplyAtBuildsUp(t *testing.T) {
	start := FloatingFeedback.ApplyAt(Visible, true, false, 0)
	assert.InDelta(t, 1, start.Scale, 1e-9)
	assert.InDelta(t, 0, start.Rotate, 1e-9)

	mid := FloatingFeedback.ApplyAt(Visible, true, false, FeedbackDuration/2)
	assert.Greater(t, mid.Rotate, 0.0)
	assert.Less(t, mid.Rotate, 90.0)

	full := FloatingFeedback.ApplyAt(Visible, true, false, time.Second)
	assert.InDelta(t, 90, full.Rotate, 1e-9)

	pressed := EditFeedback.ApplyAt(Visible, true, true, 0)
	assert.InDelta(t, 0.95, pressed.Scale, 1e-9, "press is immediate")
}

func TestElementString(t *testing.T) {
	assert.Equal(t, "skill_tag", SkillTag.String())
	assert.Equal(t, "unknown", Element(99).String())
}
