package systems

import (
	"log"

	"github.com/decker502/nuclear-survival/pkg/config"
	"github.com/decker502/nuclear-survival/pkg/ecs"
	"github.com/decker502/nuclear-survival/pkg/entities"
	"github.com/decker502/nuclear-survival/pkg/game"
)

// WeaponSystem 处理开火冷却和子弹创建
//
// 冷却计时器每帧累加经过的毫秒数（无论是否按住开火键），
// 累计值达到 cooldownMs 且按住开火键时发射一发子弹并清零。
type WeaponSystem struct {
	world        *World
	audio        game.AudioSink
	originX      float64
	originY      float64
	bulletRadius float64
	cooldownMs   int64
	timerMs      int64
}

// NewWeaponSystem 创建武器系统，audio 为 nil 时静音
func NewWeaponSystem(w *World, cfg *config.GameConfig, audio game.AudioSink) *WeaponSystem {
	if audio == nil {
		audio = game.NopAudio{}
	}
	return &WeaponSystem{
		world:        w,
		audio:        audio,
		originX:      cfg.CenterX(),
		originY:      cfg.CenterY(),
		bulletRadius: cfg.Bullet.Radius,
		cooldownMs:   cfg.Bullet.CooldownMs,
	}
}

// TimerMillis 返回当前冷却累计值
func (ws *WeaponSystem) TimerMillis() int64 {
	return ws.timerMs
}

// Update 推进冷却计时器，满足条件时朝指针方向发射一发子弹
//
// 返回:
//   - ecs.EntityID: 新子弹的ID
//   - bool: 本帧是否开火
func (ws *WeaponSystem) Update(deltaMs int64, in FrameInput) (ecs.EntityID, bool) {
	ws.timerMs += deltaMs
	if !in.Fire || ws.timerMs < ws.cooldownMs {
		return ecs.InvalidEntity, false
	}

	id, err := entities.NewBullet(ws.world.Bullets, ws.originX, ws.originY, in.PointerX, in.PointerY, ws.bulletRadius)
	if err != nil {
		log.Printf("[WeaponSystem] Failed to create bullet: %v", err)
		return ecs.InvalidEntity, false
	}
	ws.timerMs = 0
	ws.audio.PlaySound(game.SoundGunshot)
	return id, true
}
