package game

import (
	"log"

	"github.com/google/uuid"
)

// GameState 存储一局游戏的计分与生命值
//
// HighScore 在进程生命周期内跨局保留，不写入磁盘。
// 由循环驱动方持有并传递给各系统，不使用全局单例。
type GameState struct {
	RunID     string // 本局标识，用于日志关联
	Score     int    // 本局得分
	HighScore int    // 进程内最高分，只增不减
	Health    int    // 玩家当前生命值
	MaxHealth int    // 每局开始时的生命值
	Runs      int    // 已开始的局数

	lastHitAt int64 // 上次接触伤害的时间戳（毫秒）
	hitTaken  bool  // 本局是否已受过接触伤害
}

// NewGameState 创建计分状态，生命值为 maxHealth
func NewGameState(maxHealth int) *GameState {
	return &GameState{
		Health:    maxHealth,
		MaxHealth: maxHealth,
	}
}

// ResetRun 开始新的一局：得分清零，生命值回满，最高分保留
func (gs *GameState) ResetRun() {
	gs.RunID = uuid.NewString()
	gs.Score = 0
	gs.Health = gs.MaxHealth
	gs.lastHitAt = 0
	gs.hitTaken = false
	gs.Runs++
	log.Printf("[GameState] Run %d started (id=%s, highScore=%d)", gs.Runs, gs.RunID, gs.HighScore)
}

// RecordKill 击杀一只僵尸：得分 +1，并更新最高分
func (gs *GameState) RecordKill() {
	gs.Score++
	if gs.Score > gs.HighScore {
		gs.HighScore = gs.Score
	}
}

// ApplyContactDamage 扣除 1 点生命值，前提是距上次接触伤害至少 cooldownMs 毫秒
// 冷却是全局的，不区分是哪只僵尸造成的
//
// 返回:
//   - bool: 是否实际扣除了生命值
func (gs *GameState) ApplyContactDamage(nowMs, cooldownMs int64) bool {
	if gs.hitTaken && nowMs-gs.lastHitAt < cooldownMs {
		return false
	}
	gs.Health--
	gs.lastHitAt = nowMs
	gs.hitTaken = true
	return true
}

// IsDefeated 生命值耗尽
func (gs *GameState) IsDefeated() bool {
	return gs.Health <= 0
}
