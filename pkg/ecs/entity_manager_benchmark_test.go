package ecs

import (
	"testing"
)

// ========== 测试组件定义 ==========

type benchmarkComp struct {
	X, Y   float64
	DX, DY float64
	Health int
}

// setupBenchmarkEntities 创建指定数量的实体
func setupBenchmarkEntities(count int) *EntityManager[benchmarkComp] {
	em := NewEntityManager[benchmarkComp]()
	for i := 0; i < count; i++ {
		em.CreateEntity(benchmarkComp{X: float64(i), Y: float64(i) * 1.5, DX: 1, Health: 5})
	}
	return em
}

func BenchmarkEachReverse_1000(b *testing.B) {
	em := setupBenchmarkEntities(1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		em.EachReverse(func(_ EntityID, c *benchmarkComp) bool {
			c.X += c.DX
			return true
		})
	}
}

// BenchmarkDestroyAndCompact 模拟每帧删除一部分实体后压缩
func BenchmarkDestroyAndCompact(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		em := setupBenchmarkEntities(1000)
		ids := em.IDs()
		b.StartTimer()

		for j := 0; j < len(ids); j += 3 {
			em.DestroyEntity(ids[j])
		}
		em.RemoveMarkedEntities()
	}
}
