package app

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Global audio context shared by all tests
// Ebitengine only allows one audio context to be created
var testAudioContext *audio.Context

// TestMain sets up the shared audio context before running tests
func TestMain(m *testing.M) {
	testAudioContext = audio.NewContext(48000)
	os.Exit(m.Run())
}

// buildTestWAV returns a short 16-bit stereo PCM WAV clip.
func buildTestWAV(sampleRate, frames int) []byte {
	const channels, bitsPerSample = 2, 16
	dataSize := frames * channels * bitsPerSample / 8

	var buf bytes.Buffer
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+dataSize))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&buf, binary.LittleEndian, uint16(channels))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate*channels*bitsPerSample/8))
	binary.Write(&buf, binary.LittleEndian, uint16(channels*bitsPerSample/8))
	binary.Write(&buf, binary.LittleEndian, uint16(bitsPerSample))
	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(dataSize))
	for i := 0; i < frames; i++ {
		v := int16((i % 64) * 256)
		binary.Write(&buf, binary.LittleEndian, v)
		binary.Write(&buf, binary.LittleEndian, v)
	}
	return buf.Bytes()
}

func writeTestFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// TestNewResourceManager tests the creation of a new ResourceManager instance.
func TestNewResourceManager(t *testing.T) {
	rm := NewResourceManager(testAudioContext)

	if rm == nil {
		t.Fatal("NewResourceManager returned nil")
	}
	if rm.audioCache == nil {
		t.Error("audioCache is nil")
	}
	if rm.audioContext != testAudioContext {
		t.Error("audioContext not set correctly")
	}
}

func TestLoadSoundEffect_WAV(t *testing.T) {
	rm := NewResourceManager(testAudioContext)
	path := writeTestFile(t, "gunshot.wav", buildTestWAV(48000, 480))

	player, err := rm.LoadSoundEffect(path)
	if err != nil {
		t.Fatalf("LoadSoundEffect failed: %v", err)
	}
	if player == nil {
		t.Fatal("LoadSoundEffect returned nil player")
	}

	cached, err := rm.LoadSoundEffect(path)
	if err != nil {
		t.Fatalf("second LoadSoundEffect failed: %v", err)
	}
	if cached != player {
		t.Error("expected the cached player on the second load")
	}
	if rm.audioCache[path] != player {
		t.Error("the player should be cached by path")
	}
}

func TestLoadAudio_WAVLoop(t *testing.T) {
	rm := NewResourceManager(testAudioContext)
	path := writeTestFile(t, "music.wav", buildTestWAV(48000, 4800))

	player, err := rm.LoadAudio(path)
	if err != nil {
		t.Fatalf("LoadAudio failed: %v", err)
	}
	if player == nil {
		t.Fatal("LoadAudio returned nil player")
	}
}

func TestLoadAudio_Errors(t *testing.T) {
	tests := []struct {
		name        string
		fileName    string
		content     []byte
		missing     bool
		errContains string
	}{
		{name: "file not found", fileName: "missing.mp3", missing: true, errContains: "failed to open"},
		{name: "unsupported format", fileName: "music.txt", content: []byte("hello"), errContains: "unsupported audio format"},
		{name: "corrupt wav", fileName: "broken.wav", content: []byte("not a wav"), errContains: "failed to decode WAV"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rm := NewResourceManager(testAudioContext)

			path := filepath.Join(t.TempDir(), tt.fileName)
			if !tt.missing {
				path = writeTestFile(t, tt.fileName, tt.content)
			}

			for _, load := range []func(string) (*audio.Player, error){rm.LoadAudio, rm.LoadSoundEffect} {
				player, err := load(path)
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if player != nil {
					t.Error("expected nil player on error")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error containing %q, got %v", tt.errContains, err)
				}
			}
			if _, cached := rm.audioCache[path]; cached {
				t.Error("failed loads must not be cached")
			}
		})
	}
}

func TestLoadPCM(t *testing.T) {
	rm := NewResourceManager(testAudioContext)
	pcm := make([]byte, 4*480)

	tests := []struct {
		name    string
		key     string
		pcm     []byte
		loop    bool
		wantErr bool
	}{
		{name: "one shot", key: "synth:shot", pcm: pcm},
		{name: "loop", key: "synth:loop", pcm: pcm, loop: true},
		{name: "empty", key: "synth:empty", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			player, err := rm.LoadPCM(tt.key, tt.pcm, tt.loop)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadPCM failed: %v", err)
			}
			again, _ := rm.LoadPCM(tt.key, nil, tt.loop)
			if again != player {
				t.Error("expected the cached player on the second load")
			}
		})
	}

	if rm.SampleRate() != 48000 {
		t.Errorf("sample rate = %d, want 48000", rm.SampleRate())
	}
}
