package audio

import (
	"encoding/binary"
	"testing"
	"time"
)

func TestRenderPCM16(t *testing.T) {
	tests := []struct {
		name      string
		duration  time.Duration
		limit     int
		wantBytes int
	}{
		{"finite stream shorter than limit", 10 * time.Millisecond, sampleRate.N(time.Second), sampleRate.N(10*time.Millisecond) * 4},
		{"limit cuts the stream", time.Second, 1000, 1000 * 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pcm := RenderPCM16(NewOscillator(440, tt.duration, WaveSquare, sampleRate), tt.limit)
			if len(pcm) != tt.wantBytes {
				t.Errorf("got %d bytes, want %d", len(pcm), tt.wantBytes)
			}
		})
	}
}

func TestRenderPCM16_Clamps(t *testing.T) {
	pcm := RenderPCM16(NewOscillator(440, 10*time.Millisecond, WaveSquare, sampleRate), 10)
	first := int16(binary.LittleEndian.Uint16(pcm[0:2]))
	if first != 32767 {
		t.Errorf("first sample = %d, want 32767", first)
	}
}

func TestGunshotPCM(t *testing.T) {
	pcm := GunshotPCM(48000)
	if len(pcm) == 0 || len(pcm)%4 != 0 {
		t.Fatalf("unexpected gunshot length %d", len(pcm))
	}
	if len(pcm) > sampleRate.N(200*time.Millisecond)*4 {
		t.Errorf("gunshot is %d bytes, expected under 200ms", len(pcm))
	}
}

func TestMusicLoopPCM(t *testing.T) {
	pcm := MusicLoopPCM(48000)
	if want := sampleRate.N(musicLoopLength) * 4; len(pcm) != want {
		t.Errorf("music loop is %d bytes, want %d", len(pcm), want)
	}
}
