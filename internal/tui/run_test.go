package tui

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/wexinc/profilecard/internal/logging"
	"github.com/wexinc/profilecard/internal/profile"
)

func TestRunQuitsOnKey(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := Run(ctx,
		Options{Record: profile.Sample(), Logger: logging.NewNoop()},
		ProgramOptions{Input: strings.NewReader("q"), Output: io.Discard},
	)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
}

func TestRunCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Run(ctx,
		Options{Record: profile.Sample(), Logger: logging.NewNoop()},
		ProgramOptions{Input: strings.NewReader(""), Output: io.Discard},
	)
	if err != nil {
		t.Errorf("cancelled Run() should return nil, got %v", err)
	}
}

func TestNewProgramReturnsView(t *testing.T) {
	p, view := NewProgram(context.Background(),
		Options{Record: profile.Sample(), Logger: logging.NewNoop()},
		ProgramOptions{Input: strings.NewReader(""), Output: io.Discard},
	)
	if p == nil || view == nil {
		t.Fatal("NewProgram should return a program and its view")
	}
	if view.Record().Name != "Alex Johnson" {
		t.Errorf("view record = %q", view.Record().Name)
	}
}
