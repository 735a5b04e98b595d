package ecs

// EntityID 是实体的唯一标识符
type EntityID uint64

// InvalidEntity is never handed out by CreateEntity.
const InvalidEntity EntityID = 0

type entry[T any] struct {
	id        EntityID
	data      T
	destroyed bool
}

// EntityManager owns an ordered collection of records of one entity type.
//
// Records keep their creation order. DestroyEntity only marks a record;
// marked records are skipped by every query and physically dropped by
// RemoveMarkedEntities, which keeps the order of the survivors.
type EntityManager[T any] struct {
	nextID  uint64
	entries []entry[T]
	index   map[EntityID]int
	marked  int
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager[T any]() *EntityManager[T] {
	return &EntityManager[T]{
		nextID: 1, // ID从1开始,0保留为无效ID
		index:  make(map[EntityID]int),
	}
}

// CreateEntity appends a record and returns its handle.
func (em *EntityManager[T]) CreateEntity(data T) EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.index[id] = len(em.entries)
	em.entries = append(em.entries, entry[T]{id: id, data: data})
	return id
}

// DestroyEntity 标记实体待删除(不立即删除)
//
// Unknown or already destroyed handles are ignored.
func (em *EntityManager[T]) DestroyEntity(id EntityID) {
	i, ok := em.index[id]
	if !ok || em.entries[i].destroyed {
		return
	}
	em.entries[i].destroyed = true
	em.marked++
}

// IsAlive reports whether id refers to a record that is not marked for removal.
func (em *EntityManager[T]) IsAlive(id EntityID) bool {
	i, ok := em.index[id]
	return ok && !em.entries[i].destroyed
}

// Get returns the live record for id.
func (em *EntityManager[T]) Get(id EntityID) (*T, bool) {
	i, ok := em.index[id]
	if !ok || em.entries[i].destroyed {
		return nil, false
	}
	return &em.entries[i].data, true
}

// Len returns the number of live records.
func (em *EntityManager[T]) Len() int {
	return len(em.entries) - em.marked
}

// Each visits live records in creation order.
// The visit stops early when fn returns false.
func (em *EntityManager[T]) Each(fn func(id EntityID, data *T) bool) {
	for i := 0; i < len(em.entries); i++ {
		e := &em.entries[i]
		if e.destroyed {
			continue
		}
		if !fn(e.id, &e.data) {
			return
		}
	}
}

// EachReverse visits live records from the newest to the oldest.
// Records destroyed during the visit are skipped when reached.
func (em *EntityManager[T]) EachReverse(fn func(id EntityID, data *T) bool) {
	for i := len(em.entries) - 1; i >= 0; i-- {
		e := &em.entries[i]
		if e.destroyed {
			continue
		}
		if !fn(e.id, &e.data) {
			return
		}
	}
}

// IDs returns the handles of live records in creation order.
func (em *EntityManager[T]) IDs() []EntityID {
	result := make([]EntityID, 0, em.Len())
	for _, e := range em.entries {
		if !e.destroyed {
			result = append(result, e.id)
		}
	}
	return result
}

// RemoveMarkedEntities 清理所有标记删除的实体
func (em *EntityManager[T]) RemoveMarkedEntities() {
	if em.marked == 0 {
		return
	}
	kept := em.entries[:0]
	for _, e := range em.entries {
		if e.destroyed {
			delete(em.index, e.id)
			continue
		}
		em.index[e.id] = len(kept)
		kept = append(kept, e)
	}
	// 释放尾部引用
	var zero entry[T]
	for i := len(kept); i < len(em.entries); i++ {
		em.entries[i] = zero
	}
	em.entries = kept
	em.marked = 0
}

// Clear drops every record. Handles are never reused.
func (em *EntityManager[T]) Clear() {
	em.entries = em.entries[:0]
	em.index = make(map[EntityID]int)
	em.marked = 0
}
