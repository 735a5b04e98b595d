package components

// DifficultyComponent 存储生成间隔的衰减状态
//
// SpawnInterval 以帧为单位，每帧递减 DecayPerFrame，最低为 0。
type DifficultyComponent struct {
	InitialInterval float64 // 每局开始时的生成间隔
	DecayPerFrame   float64 // 每帧衰减量
	DecayedFrames   int64   // 本局已衰减的帧数
	SpawnInterval   float64 // 当前生成间隔
}
