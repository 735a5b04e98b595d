package app

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/decker502/nuclear-survival/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// ResourceManager is responsible for loading and caching audio resources.
// Resources are looked up in the embedded file system first and on disk second.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. The caches use standard Go maps.
// For the single-threaded game loop, no synchronization is needed.
//
// Usage:
//
//	audioContext := audio.NewContext(48000)
//	rm := NewResourceManager(audioContext)
//	player, err := rm.LoadSoundEffect("assets/audio/gunshot.wav")
type ResourceManager struct {
	audioCache   map[string]*audio.Player // Cache for loaded audio players: path -> Player
	audioContext *audio.Context           // Global audio context for audio decoding
}

// NewResourceManager creates and initializes a new ResourceManager instance.
// The audioContext parameter is required for audio decoding and playback.
func NewResourceManager(audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		audioCache:   make(map[string]*audio.Player),
		audioContext: audioContext,
	}
}

// readResource returns the bytes of path from the embedded data or from disk.
func readResource(path string) ([]byte, error) {
	if embedded.IsInitialized() && embedded.Exists(path) {
		return embedded.ReadFile(path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	// Read the entire file into memory so the stream can seek without an open handle
	return io.ReadAll(file)
}

// decodeAudio decodes WAV, MP3 or OGG bytes based on the file extension.
func decodeAudio(path string, data []byte) (io.ReadSeeker, int64, error) {
	reader := bytes.NewReader(data)
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".wav":
		stream, err := wav.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to decode WAV audio %s: %w", path, err)
		}
		return stream, stream.Length(), nil
	case ".mp3":
		stream, err := mp3.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to decode MP3 audio %s: %w", path, err)
		}
		return stream, stream.Length(), nil
	case ".ogg":
		stream, err := vorbis.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to decode OGG audio %s: %w", path, err)
		}
		return stream, stream.Length(), nil
	default:
		return nil, 0, fmt.Errorf("unsupported audio format: %s (supported: .wav, .mp3, .ogg)", ext)
	}
}

// LoadAudio loads a music track and wraps it in an infinite loop.
// The player is cached by path.
//
// Example:
//
//	player, err := rm.LoadAudio("assets/audio/music.mp3")
//	if err != nil {
//	    log.Printf("Failed to load audio: %v", err)
//	    return err
//	}
//	player.Play() // Start playing the music
func (rm *ResourceManager) LoadAudio(path string) (*audio.Player, error) {
	if cachedPlayer, exists := rm.audioCache[path]; exists {
		return cachedPlayer, nil
	}

	data, err := readResource(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio file %s: %w", path, err)
	}

	stream, length, err := decodeAudio(path, data)
	if err != nil {
		return nil, err
	}

	// Wrap the stream in an infinite loop for background music
	loopStream := audio.NewInfiniteLoop(stream, length)

	player, err := rm.audioContext.NewPlayer(loopStream)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", path, err)
	}

	rm.audioCache[path] = player
	return player, nil
}

// LoadSoundEffect loads a one-shot sound effect and caches it by path.
// Unlike LoadAudio, the stream is NOT wrapped in an infinite loop.
func (rm *ResourceManager) LoadSoundEffect(path string) (*audio.Player, error) {
	if cachedPlayer, exists := rm.audioCache[path]; exists {
		return cachedPlayer, nil
	}

	data, err := readResource(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sound effect file %s: %w", path, err)
	}

	stream, _, err := decodeAudio(path, data)
	if err != nil {
		return nil, err
	}

	player, err := rm.audioContext.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", path, err)
	}

	rm.audioCache[path] = player
	return player, nil
}

// LoadPCM wraps raw 16-bit little-endian stereo PCM in a player cached by key.
// loop wraps the data in an infinite loop like LoadAudio does.
func (rm *ResourceManager) LoadPCM(key string, pcm []byte, loop bool) (*audio.Player, error) {
	if cachedPlayer, exists := rm.audioCache[key]; exists {
		return cachedPlayer, nil
	}
	if len(pcm) == 0 {
		return nil, fmt.Errorf("empty PCM data for %s", key)
	}

	var stream io.Reader = bytes.NewReader(pcm)
	if loop {
		stream = audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	}

	player, err := rm.audioContext.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", key, err)
	}

	rm.audioCache[key] = player
	return player, nil
}

// SampleRate returns the sample rate of the audio context
func (rm *ResourceManager) SampleRate() int {
	return rm.audioContext.SampleRate()
}
