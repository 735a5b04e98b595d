package app

import (
	"fmt"
	"log"

	sfx "github.com/decker502/nuclear-survival/internal/audio"
	"github.com/decker502/nuclear-survival/pkg/config"
	"github.com/decker502/nuclear-survival/pkg/game"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioManager 音频管理器
// 职责：
//   - 统一管理枪声音效和背景音乐的播放
//   - 实现音量控制（初始值来自 config.AudioConfig）
//   - 通过资源ID播放，无需关心路径
//
// 文件缺失时改用合成的枪声和背景音乐；合成也不可用时只记录警告，游戏继续以静音方式运行。
type AudioManager struct {
	resourceManager *ResourceManager
	enabled         bool
	resourceMap     map[string]string           // 资源ID -> 文件路径
	synthesized     map[string]func(int) []byte // 资源ID -> 合成 PCM（参数为采样率）
	soundPlayers    map[string]*audio.Player    // 音效播放器缓存（资源ID -> 播放器）
	musicPlayers    map[string]*audio.Player    // 背景音乐播放器缓存（资源ID -> 播放器）
	missing         map[string]bool             // 加载失败的资源ID，不再重试
	currentMusic    *audio.Player
	currentMusicID  string
	musicVolume     float64
	soundVolume     float64

	muted      bool
	savedMusic float64 // 静音前的音量
	savedSound float64
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - rm: ResourceManager 实例（用于加载音频文件）
//   - cfg: 音频配置（资源路径与音量）
func NewAudioManager(rm *ResourceManager, cfg config.AudioConfig) *AudioManager {
	return &AudioManager{
		resourceManager: rm,
		enabled:         cfg.Enabled,
		resourceMap: map[string]string{
			game.SoundGunshot:    cfg.GunshotPath,
			game.MusicBackground: cfg.MusicPath,
		},
		synthesized: map[string]func(int) []byte{
			game.SoundGunshot:    sfx.GunshotPCM,
			game.MusicBackground: sfx.MusicLoopPCM,
		},
		soundPlayers: make(map[string]*audio.Player),
		musicPlayers: make(map[string]*audio.Player),
		missing:      make(map[string]bool),
		musicVolume:  cfg.MusicVolume,
		soundVolume:  cfg.SoundVolume,
	}
}

// PlaySound 播放音效（单次）
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlaySound(soundID string) bool {
	if !am.enabled {
		return false
	}

	player := am.getSoundPlayer(soundID)
	if player == nil {
		return false
	}

	player.SetVolume(am.soundVolume)

	// 重置并播放
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()
	return true
}

// PlayMusic 播放背景音乐（循环）
// 同一时间只能播放一首背景音乐
func (am *AudioManager) PlayMusic(musicID string) bool {
	if !am.enabled {
		return false
	}

	// 如果已经在播放同一首音乐，不重复播放
	if am.currentMusicID == musicID && am.currentMusic != nil && am.currentMusic.IsPlaying() {
		return true
	}

	am.StopMusic()

	player := am.getMusicPlayer(musicID)
	if player == nil {
		return false
	}

	player.SetVolume(am.musicVolume)
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind music %s: %v", musicID, err)
	}
	player.Play()

	am.currentMusic = player
	am.currentMusicID = musicID

	log.Printf("[AudioManager] Playing music: %s (volume: %.2f)", musicID, am.musicVolume)
	return true
}

// StopMusic 停止当前背景音乐
func (am *AudioManager) StopMusic() {
	if am.currentMusic != nil {
		am.currentMusic.Pause()
		am.currentMusic = nil
		am.currentMusicID = ""
	}
}

// SetMusicVolume 设置音乐音量，立即应用到当前播放的背景音乐
//
// 参数：
//   - volume: 音量值 (0.0 ~ 1.0)
func (am *AudioManager) SetMusicVolume(volume float64) {
	am.musicVolume = clampVolume(volume)
	if am.currentMusic != nil {
		am.currentMusic.SetVolume(am.musicVolume)
	}
}

// SetSoundVolume 设置音效音量，影响后续播放的所有音效
func (am *AudioManager) SetSoundVolume(volume float64) {
	am.soundVolume = clampVolume(volume)
}

// MusicVolume 获取当前音乐音量
func (am *AudioManager) MusicVolume() float64 {
	return am.musicVolume
}

// SoundVolume 获取当前音效音量
func (am *AudioManager) SoundVolume() float64 {
	return am.soundVolume
}

// ToggleMute 在静音和静音前的音量之间切换
//
// 返回：
//   - bool: 切换后是否处于静音状态
func (am *AudioManager) ToggleMute() bool {
	if am.muted {
		am.muted = false
		am.SetMusicVolume(am.savedMusic)
		am.SetSoundVolume(am.savedSound)
		log.Printf("[AudioManager] Unmuted (music=%.2f, sound=%.2f)", am.musicVolume, am.soundVolume)
		return false
	}
	am.savedMusic, am.savedSound = am.MusicVolume(), am.SoundVolume()
	am.SetMusicVolume(0)
	am.SetSoundVolume(0)
	am.muted = true
	log.Printf("[AudioManager] Muted")
	return true
}

// Preload 预加载全部音频，避免首次播放时的延迟
func (am *AudioManager) Preload() {
	if !am.enabled {
		return
	}
	am.getSoundPlayer(game.SoundGunshot)
	am.getMusicPlayer(game.MusicBackground)
}

func (am *AudioManager) getSoundPlayer(soundID string) *audio.Player {
	if player, exists := am.soundPlayers[soundID]; exists {
		return player
	}
	player := am.load(soundID, false)
	if player != nil {
		am.soundPlayers[soundID] = player
	}
	return player
}

func (am *AudioManager) getMusicPlayer(musicID string) *audio.Player {
	if player, exists := am.musicPlayers[musicID]; exists {
		return player
	}
	player := am.load(musicID, true)
	if player != nil {
		am.musicPlayers[musicID] = player
	}
	return player
}

// load 按 文件 -> 合成 的顺序创建播放器，都失败时记录为缺失不再重试
func (am *AudioManager) load(id string, loop bool) *audio.Player {
	if am.missing[id] {
		return nil
	}

	var err error
	if path := am.resourceMap[id]; path != "" {
		var player *audio.Player
		if loop {
			player, err = am.resourceManager.LoadAudio(path)
		} else {
			player, err = am.resourceManager.LoadSoundEffect(path)
		}
		if err == nil {
			return player
		}
	} else {
		err = fmt.Errorf("no file configured for %s", id)
	}

	synth, ok := am.synthesized[id]
	if !ok {
		am.markMissing(id, err)
		return nil
	}
	log.Printf("[AudioManager] %s: %v, using synthesized audio", id, err)
	player, synthErr := am.resourceManager.LoadPCM("synth:"+id, synth(am.resourceManager.SampleRate()), loop)
	if synthErr != nil {
		am.markMissing(id, synthErr)
		return nil
	}
	return player
}

func (am *AudioManager) markMissing(id string, err error) {
	log.Printf("[AudioManager] Warning: Failed to load %s: %v (continuing without it)", id, err)
	am.missing[id] = true
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
