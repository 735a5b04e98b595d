package components

// HealthComponent 存储实体的生命值信息
// 用于僵尸等可被攻击的实体
type HealthComponent struct {
	CurrentHealth int // 当前生命值
	MaxHealth     int // 最大生命值
}

// IsDead reports whether the entity has no health left.
func (h *HealthComponent) IsDead() bool {
	return h.CurrentHealth <= 0
}
