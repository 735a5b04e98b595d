package systems

import (
	"math"
	"testing"
)

func TestDifficultyEngine_LinearDecay(t *testing.T) {
	d := NewDifficultyEngine(120, 0.01)

	tests := []struct {
		frames int64
		want   float64
	}{
		{frames: 1, want: 119.99},
		{frames: 100, want: 119},
		{frames: 6000, want: 60},
		{frames: 11999, want: 0.01},
		{frames: 12000, want: 0},
		{frames: 20000, want: 0},
	}

	for _, tt := range tests {
		for d.DecayedFrames() < tt.frames {
			d.Advance()
		}
		got := d.SpawnInterval()
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("after %d frames: interval = %v, want %v", tt.frames, got, tt.want)
		}
		if got < 0 {
			t.Errorf("after %d frames: interval went negative: %v", tt.frames, got)
		}
	}
}

func TestDifficultyEngine_ReachesExactlyZero(t *testing.T) {
	d := NewDifficultyEngine(120, 0.01)
	for i := 0; i < 12000; i++ {
		d.Advance()
	}
	if d.SpawnInterval() != 0 {
		t.Errorf("interval after 12000 frames = %v, want exactly 0", d.SpawnInterval())
	}
}

func TestDifficultyEngine_Reset(t *testing.T) {
	d := NewDifficultyEngine(120, 0.01)
	for i := 0; i < 500; i++ {
		d.Advance()
	}
	d.Reset()
	if d.SpawnInterval() != 120 || d.DecayedFrames() != 0 {
		t.Errorf("after reset: interval=%v frames=%d", d.SpawnInterval(), d.DecayedFrames())
	}
}
