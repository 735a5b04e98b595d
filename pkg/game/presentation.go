package game

import "image/color"

//go:generate go tool mockgen -destination=./mocks/presentation_mock.go -package=mocks . InputSource,Clock,Renderer,AudioSink

// Action is a logical input the game reacts to.
type Action int

const (
	ActionMoveUp Action = iota
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionFire
	ActionStart   // 主页开始游戏
	ActionRestart // 结算界面重新开始
	ActionHome    // 结算界面返回主页
)

func (a Action) String() string {
	switch a {
	case ActionMoveUp:
		return "MoveUp"
	case ActionMoveDown:
		return "MoveDown"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionFire:
		return "Fire"
	case ActionStart:
		return "Start"
	case ActionRestart:
		return "Restart"
	case ActionHome:
		return "Home"
	default:
		return "Unknown"
	}
}

// Audio resource IDs.
const (
	SoundGunshot    = "SOUND_GUNSHOT"
	MusicBackground = "MUSIC_BACKGROUND"
)

// InputSource exposes the polled input state of the current frame.
// Absent input reads as "not pressed".
type InputSource interface {
	IsActionPressed(action Action) bool
	PointerPosition() (x, y int)
	QuitRequested() bool
}

// Clock exposes frame timing. Frame capping is left to the adapter's loop.
type Clock interface {
	// DeltaMillis returns the milliseconds elapsed since the previous frame.
	DeltaMillis() int64
	// NowMillis returns a monotonic timestamp in milliseconds.
	NowMillis() int64
}

// Renderer receives the draw requests of one frame.
type Renderer interface {
	Clear(c color.RGBA)
	FillRect(x, y, w, h float64, c color.RGBA)
	FillCircle(cx, cy, radius float64, c color.RGBA)
	DrawText(s string, x, y float64, c color.RGBA)
	Present()
}

// AudioSink plays fire-and-forget sounds. Nothing flows back into the simulation.
type AudioSink interface {
	PlaySound(soundID string) bool
	PlayMusic(musicID string) bool
	StopMusic()
	SetMusicVolume(volume float64)
}

// NopAudio is a silent AudioSink used when audio is disabled.
type NopAudio struct{}

func (NopAudio) PlaySound(string) bool  { return false }
func (NopAudio) PlayMusic(string) bool  { return false }
func (NopAudio) StopMusic()             {}
func (NopAudio) SetMusicVolume(float64) {}
