package ecs

import (
	"testing"
)

// 测试组件类型定义
type testPositionComponent struct {
	X, Y float64
}

func collectX(em *EntityManager[testPositionComponent], reverse bool) []float64 {
	var xs []float64
	visit := func(_ EntityID, p *testPositionComponent) bool {
		xs = append(xs, p.X)
		return true
	}
	if reverse {
		em.EachReverse(visit)
	} else {
		em.Each(visit)
	}
	return xs
}

func equalFloats(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager[testPositionComponent]()
	id1 := em.CreateEntity(testPositionComponent{})
	id2 := em.CreateEntity(testPositionComponent{})

	// 测试实体ID唯一性
	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}

	// 测试ID从1开始
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}
	if id2 != 2 {
		t.Errorf("Second entity ID should be 2, got %d", id2)
	}
	if em.Len() != 2 {
		t.Errorf("Expected 2 live entities, got %d", em.Len())
	}
}

func TestGetReturnsMutableRecord(t *testing.T) {
	em := NewEntityManager[testPositionComponent]()
	id := em.CreateEntity(testPositionComponent{X: 100, Y: 200})

	pos, ok := em.Get(id)
	if !ok {
		t.Fatal("Record should be found")
	}
	if pos.X != 100 || pos.Y != 200 {
		t.Errorf("Record mismatch, expected (100, 200), got (%f, %f)", pos.X, pos.Y)
	}

	pos.X = 150
	again, _ := em.Get(id)
	if again.X != 150 {
		t.Errorf("Expected mutation to be visible, got X=%f", again.X)
	}
}

func TestDestroyEntity(t *testing.T) {
	em := NewEntityManager[testPositionComponent]()
	id := em.CreateEntity(testPositionComponent{})

	// 标记删除
	em.DestroyEntity(id)

	if em.IsAlive(id) {
		t.Error("Marked entity should not be alive")
	}
	if _, ok := em.Get(id); ok {
		t.Error("Marked entity should not be returned by Get")
	}
	if em.Len() != 0 {
		t.Errorf("Expected 0 live entities, got %d", em.Len())
	}

	em.RemoveMarkedEntities()
	if em.Len() != 0 {
		t.Errorf("Expected 0 entities after cleanup, got %d", em.Len())
	}
}

func TestDestroyUnknownOrTwice(t *testing.T) {
	em := NewEntityManager[testPositionComponent]()
	id := em.CreateEntity(testPositionComponent{})

	em.DestroyEntity(InvalidEntity)
	em.DestroyEntity(EntityID(99))
	em.DestroyEntity(id)
	em.DestroyEntity(id)

	if em.Len() != 0 {
		t.Errorf("Double destroy must count once, Len=%d", em.Len())
	}
	em.RemoveMarkedEntities()
	em.DestroyEntity(id)
	if em.Len() != 0 {
		t.Errorf("Destroy after cleanup must be ignored, Len=%d", em.Len())
	}
}

func TestOrderPreservedAcrossCompaction(t *testing.T) {
	em := NewEntityManager[testPositionComponent]()
	ids := make([]EntityID, 0, 5)
	for i := 0; i < 5; i++ {
		ids = append(ids, em.CreateEntity(testPositionComponent{X: float64(i)}))
	}

	em.DestroyEntity(ids[1])
	em.DestroyEntity(ids[3])

	// 压缩前: 已标记的实体被跳过
	if got := collectX(em, false); !equalFloats(got, []float64{0, 2, 4}) {
		t.Errorf("Forward order before compaction = %v", got)
	}

	em.RemoveMarkedEntities()

	if got := collectX(em, false); !equalFloats(got, []float64{0, 2, 4}) {
		t.Errorf("Forward order after compaction = %v", got)
	}
	if got := collectX(em, true); !equalFloats(got, []float64{4, 2, 0}) {
		t.Errorf("Reverse order after compaction = %v", got)
	}

	// 句柄在压缩后仍然有效
	pos, ok := em.Get(ids[4])
	if !ok || pos.X != 4 {
		t.Errorf("Handle should survive compaction, got %v ok=%v", pos, ok)
	}
}

func TestEachReverseSkipsRecordsDestroyedDuringVisit(t *testing.T) {
	em := NewEntityManager[testPositionComponent]()
	a := em.CreateEntity(testPositionComponent{X: 1})
	em.CreateEntity(testPositionComponent{X: 2})
	em.CreateEntity(testPositionComponent{X: 3})

	var visited []float64
	em.EachReverse(func(id EntityID, p *testPositionComponent) bool {
		visited = append(visited, p.X)
		if p.X == 3 {
			em.DestroyEntity(a)
		}
		return true
	})

	if !equalFloats(visited, []float64{3, 2}) {
		t.Errorf("Expected visit [3 2], got %v", visited)
	}
}

func TestEachStopsEarly(t *testing.T) {
	em := NewEntityManager[testPositionComponent]()
	for i := 0; i < 4; i++ {
		em.CreateEntity(testPositionComponent{X: float64(i)})
	}

	count := 0
	em.EachReverse(func(EntityID, *testPositionComponent) bool {
		count++
		return count < 2
	})
	if count != 2 {
		t.Errorf("Expected visit to stop after 2 records, got %d", count)
	}
}

func TestIDs(t *testing.T) {
	em := NewEntityManager[testPositionComponent]()
	id1 := em.CreateEntity(testPositionComponent{})
	id2 := em.CreateEntity(testPositionComponent{})
	id3 := em.CreateEntity(testPositionComponent{})
	em.DestroyEntity(id2)

	ids := em.IDs()
	if len(ids) != 2 || ids[0] != id1 || ids[1] != id3 {
		t.Errorf("Expected [%d %d], got %v", id1, id3, ids)
	}
}

func TestClearNeverReusesIDs(t *testing.T) {
	em := NewEntityManager[testPositionComponent]()
	old := em.CreateEntity(testPositionComponent{})
	em.Clear()

	if em.Len() != 0 {
		t.Errorf("Expected empty manager after Clear, got %d", em.Len())
	}
	if em.IsAlive(old) {
		t.Error("Cleared handle should not be alive")
	}

	fresh := em.CreateEntity(testPositionComponent{})
	if fresh == old {
		t.Error("IDs must not be reused after Clear")
	}
}
