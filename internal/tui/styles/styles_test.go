package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestFade_Endpoints(t *testing.T) {
	if got := Fade(Primary, 1); got != Primary {
		t.Errorf("Fade(opacity=1) = %q, want %q", got, Primary)
	}
	if got := Fade(Primary, 2); got != Primary {
		t.Errorf("Fade(opacity=2) = %q, want %q", got, Primary)
	}
	if got := Fade(Primary, 0); !strings.EqualFold(string(got), string(Background)) {
		t.Errorf("Fade(opacity=0) = %q, want background %q", got, Background)
	}
	if got := Fade(Primary, -1); !strings.EqualFold(string(got), string(Background)) {
		t.Errorf("Fade(opacity<0) = %q, want background %q", got, Background)
	}
}

func TestFade_Midway(t *testing.T) {
	got := Fade(Foreground, 0.5)
	if strings.EqualFold(string(got), string(Foreground)) || strings.EqualFold(string(got), string(Background)) {
		t.Errorf("Fade(0.5) should be between colors, got %q", got)
	}
}

func TestFade_NonHex(t *testing.T) {
	c := lipgloss.Color("12")
	if got := Fade(c, 0.3); got != c {
		t.Errorf("Fade(ANSI color) = %q, want unchanged %q", got, c)
	}
}
