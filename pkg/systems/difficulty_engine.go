package systems

import (
	"math"

	"github.com/decker502/nuclear-survival/pkg/components"
)

// DifficultyEngine 难度引擎
// 负责生成间隔的线性衰减：每帧减少 DecayPerFrame，最低为 0
//
// 间隔由 初始值 - 衰减量 × 帧数 直接计算，避免逐帧累减的浮点误差，
// 默认配置下恰好在第 12000 帧降到 0。
type DifficultyEngine struct {
	state components.DifficultyComponent
}

// NewDifficultyEngine 创建新的难度引擎实例
func NewDifficultyEngine(initialInterval, decayPerFrame float64) *DifficultyEngine {
	d := &DifficultyEngine{
		state: components.DifficultyComponent{
			InitialInterval: initialInterval,
			DecayPerFrame:   decayPerFrame,
		},
	}
	d.Reset()
	return d
}

// Reset 恢复初始生成间隔
func (d *DifficultyEngine) Reset() {
	d.state.DecayedFrames = 0
	d.state.SpawnInterval = d.state.InitialInterval
}

// Advance 衰减一帧，返回新的生成间隔
func (d *DifficultyEngine) Advance() float64 {
	d.state.DecayedFrames++
	d.state.SpawnInterval = math.Max(0,
		d.state.InitialInterval-d.state.DecayPerFrame*float64(d.state.DecayedFrames))
	return d.state.SpawnInterval
}

// SpawnInterval 返回当前生成间隔（帧）
func (d *DifficultyEngine) SpawnInterval() float64 {
	return d.state.SpawnInterval
}

// DecayedFrames 返回本局已衰减的帧数
func (d *DifficultyEngine) DecayedFrames() int64 {
	return d.state.DecayedFrames
}
