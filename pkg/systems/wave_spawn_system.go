package systems

import (
	"log"
	"math/rand"

	"github.com/decker502/nuclear-survival/pkg/config"
	"github.com/decker502/nuclear-survival/pkg/ecs"
	"github.com/decker502/nuclear-survival/pkg/entities"
)

// WaveSpawnSystem 僵尸生成系统
//
// 职责：
//   - 每帧推进生成计数器和难度衰减
//   - 计数器达到当前生成间隔时，在场地四角之一随机生成一只僵尸
//
// 随机数源由调用方注入，固定种子即可复现生成序列。
type WaveSpawnSystem struct {
	world        *World
	difficulty   *DifficultyEngine
	rng          *rand.Rand
	zombieRadius float64
	zombieHealth int
	counter      int64
}

// NewWaveSpawnSystem 创建僵尸生成系统
//
// 参数：
//
//	w - 实体世界
//	d - 难度引擎（提供当前生成间隔）
//	rng - 随机数源（选择生成角）
//	cfg - 游戏配置
func NewWaveSpawnSystem(w *World, d *DifficultyEngine, rng *rand.Rand, cfg *config.GameConfig) *WaveSpawnSystem {
	return &WaveSpawnSystem{
		world:        w,
		difficulty:   d,
		rng:          rng,
		zombieRadius: cfg.Zombie.Radius,
		zombieHealth: cfg.Zombie.Health,
	}
}

// Counter 返回距上次生成经过的帧数
func (ws *WaveSpawnSystem) Counter() int64 {
	return ws.counter
}

// Update 推进一帧
//
// 返回:
//   - ecs.EntityID: 新生成僵尸的ID
//   - bool: 本帧是否生成了僵尸
func (ws *WaveSpawnSystem) Update() (ecs.EntityID, bool) {
	ws.counter++
	interval := ws.difficulty.Advance()
	if float64(ws.counter) < interval {
		return ecs.InvalidEntity, false
	}

	corners := ws.world.Field.Corners()
	corner := corners[ws.rng.Intn(len(corners))]

	id, err := entities.NewZombieEntity(ws.world.Zombies, corner.X, corner.Y, ws.zombieRadius, ws.zombieHealth)
	if err != nil {
		log.Printf("[WaveSpawnSystem] Failed to spawn zombie: %v", err)
		return ecs.InvalidEntity, false
	}
	ws.counter = 0
	return id, true
}
