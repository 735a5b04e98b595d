package components

// ZombieComponent 僵尸记录
// 僵尸每帧朝玩家移动，生命值归零时被移除
type ZombieComponent struct {
	Position  PositionComponent
	Collision CollisionComponent
	Health    HealthComponent
}
