package systems

import (
	"log"
	"math/rand"

	"github.com/decker502/nuclear-survival/pkg/config"
	"github.com/decker502/nuclear-survival/pkg/game"
)

// Simulation 一局游戏的完整模拟状态
//
// 由循环驱动方（GameScene 或 cmd 工具）持有，不使用全局变量。
// 每帧的执行顺序固定：
//
//	镜头平移 -> 开火 -> 子弹移动 -> 僵尸移动与碰撞 -> 清理 -> 失败检查 -> 生成
type Simulation struct {
	Config *config.GameConfig
	World  *World
	State  *game.GameState

	Camera      *CameraSystem
	Weapon      *WeaponSystem
	Projectiles *ProjectileSystem
	Physics     *PhysicsSystem
	Difficulty  *DifficultyEngine
	Spawner     *WaveSpawnSystem

	ticks int64
}

// TickResult 描述一帧模拟的结果
type TickResult struct {
	Fired    bool
	Spawned  bool
	Kills    int
	Culled   int
	Defeated bool
}

// NewSimulation 创建模拟
//
// 参数:
//   - cfg: 游戏配置（必须已通过 Validate）
//   - gs: 计分状态，最高分跨局保留
//   - audio: 枪声输出，可以为 nil
//   - rng: 僵尸生成角的随机数源
func NewSimulation(cfg *config.GameConfig, gs *game.GameState, audio game.AudioSink, rng *rand.Rand) *Simulation {
	w := NewWorld(cfg.Field.Size)
	difficulty := NewDifficultyEngine(cfg.Spawn.InitialInterval, cfg.Spawn.DecayPerFrame)

	s := &Simulation{
		Config:      cfg,
		World:       w,
		State:       gs,
		Camera:      NewCameraSystem(w, cfg),
		Weapon:      NewWeaponSystem(w, cfg, audio),
		Projectiles: NewProjectileSystem(w, cfg),
		Physics:     NewPhysicsSystem(w, gs, cfg),
		Difficulty:  difficulty,
		Spawner:     NewWaveSpawnSystem(w, difficulty, rng, cfg),
	}
	offsetX, offsetY := cfg.DefaultFieldOffset()
	w.Reset(offsetX, offsetY)
	return s
}

// Reset 开始新的一局
// 得分清零、生命值回满、生成间隔恢复初始值、清空实体、场地回到中心位置。
// 开火与生成计数器不重置。
func (s *Simulation) Reset() {
	s.State.ResetRun()
	offsetX, offsetY := s.Config.DefaultFieldOffset()
	s.World.Reset(offsetX, offsetY)
	s.Difficulty.Reset()
	s.ticks = 0
}

// Ticks 返回本局已模拟的帧数
func (s *Simulation) Ticks() int64 {
	return s.ticks
}

// Tick 推进一帧
//
// 参数:
//   - in: 本帧输入快照
//   - deltaMs: 距上一帧的毫秒数（开火冷却）
//   - nowMs: 本帧时间戳（接触伤害冷却）
func (s *Simulation) Tick(in FrameInput, deltaMs, nowMs int64) TickResult {
	var res TickResult
	s.ticks++

	s.Camera.Update(in)
	_, res.Fired = s.Weapon.Update(deltaMs, in)
	res.Culled = s.Projectiles.Update()
	res.Kills = s.Physics.Update(nowMs)
	s.World.Compact()

	if s.State.IsDefeated() {
		res.Defeated = true
		log.Printf("[Simulation] Run %s ended after %d ticks (score=%d, highScore=%d)",
			s.State.RunID, s.ticks, s.State.Score, s.State.HighScore)
		return res
	}

	_, res.Spawned = s.Spawner.Update()
	return res
}
