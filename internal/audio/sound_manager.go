// Package audio synthesizes the game sounds for the terminal frontend.
// Nothing is loaded from disk: the gunshot and the background music are
// generated with oscillators and played through the beep speaker.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/decker502/nuclear-survival/pkg/config"
	"github.com/decker502/nuclear-survival/pkg/game"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// SoundManager implements game.AudioSink on top of a beep mixer
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	musicVolume *effects.Volume
	musicLevel  float64
	soundLevel  float64
	initialized bool
}

// NewSoundManager creates a new sound manager with the configured volumes
func NewSoundManager(cfg config.AudioConfig) *SoundManager {
	return &SoundManager{
		mixer:      &beep.Mixer{},
		musicLevel: cfg.MusicVolume,
		soundLevel: cfg.SoundVolume,
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	sm.music = nil
	sm.musicVolume = nil
	sm.initialized = false
}

// PlaySound plays a one-shot effect
func (sm *SoundManager) PlaySound(soundID string) bool {
	if soundID != game.SoundGunshot {
		return false
	}
	return sm.add(CreateGunshotSound(sampleRate, sm.soundLevel))
}

// PlayMusic starts the looping background track
// If already playing, it is not restarted
func (sm *SoundManager) PlayMusic(musicID string) bool {
	if musicID != game.MusicBackground {
		return false
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return false
	}

	speaker.Lock()
	defer speaker.Unlock()
	if sm.music != nil {
		sm.music.Paused = false
		return true
	}
	sm.musicVolume = newVolume(NewMusicGenerator(sampleRate), sm.musicLevel)
	sm.music = &beep.Ctrl{Streamer: sm.musicVolume}
	sm.mixer.Add(sm.music)
	return true
}

// StopMusic pauses the background track
func (sm *SoundManager) StopMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sm.music == nil || !sm.initialized {
		return
	}
	speaker.Lock()
	sm.music.Paused = true
	speaker.Unlock()
}

// SetMusicVolume changes the music volume in place, range [0, 1]
func (sm *SoundManager) SetMusicVolume(volume float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.musicLevel = math.Max(0, math.Min(1, volume))
	if sm.musicVolume == nil || !sm.initialized {
		return
	}
	speaker.Lock()
	sm.musicVolume.Silent = sm.musicLevel <= 0
	if sm.musicLevel > 0 {
		sm.musicVolume.Volume = math.Log2(sm.musicLevel)
	}
	speaker.Unlock()
}

// MusicVolume returns the current music level
func (sm *SoundManager) MusicVolume() float64 {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.musicLevel
}

func (sm *SoundManager) add(s beep.Streamer) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return false
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
	return true
}
