package progress

import (
	"testing"
	"time"
)

func TestCaptionCycles(t *testing.T) {
	tests := []struct {
		elapsed time.Duration
		want    string
	}{
		{0, "Parsing resume"},
		{time.Second, "Parsing resume"},
		{2 * time.Second, "Matching skills"},
		{4 * time.Second, "Generating roadmap"},
		{6 * time.Second, "Parsing resume"},
		{5 * time.Second, "Generating roadmap"},
		{9 * time.Second, "Matching skills"},
		{-time.Second, "Parsing resume"},
	}

	for _, tt := range tests {
		if got := Caption(tt.elapsed); got != tt.want {
			t.Errorf("Caption(%v): expected %q, got %q", tt.elapsed, tt.want, got)
		}
	}
}

func TestCaptionAtWraps(t *testing.T) {
	if got := CaptionAt(3); got != "Parsing resume" {
		t.Errorf("step 3 should wrap to the first caption, got %q", got)
	}
	if got := CaptionAt(-1); got != "Parsing resume" {
		t.Errorf("negative step should clamp to the first caption, got %q", got)
	}
}

func TestCyclerEmitsAndStops(t *testing.T) {
	got := make(chan string, 1)
	cycler := StartCycler(func(caption string) {
		select {
		case got <- caption:
		default:
		}
	})
	cycler.Stop()

	select {
	case first := <-got:
		if first != "Parsing resume" {
			t.Errorf("first caption should be 'Parsing resume', got %q", first)
		}
	default:
		t.Error("cycler never emitted the initial caption")
	}
}
