package systems

import (
	"testing"

	"github.com/decker502/nuclear-survival/pkg/ecs"
	"github.com/decker502/nuclear-survival/pkg/entities"
)

func TestPhysicsSystem_Pursuit(t *testing.T) {
	sim := newTestSimulation(t, nil)
	id, _ := entities.NewZombieEntity(sim.World.Zombies, 100, 300, 25, 5)

	sim.Physics.Update(0)

	z, _ := sim.World.Zombies.Get(id)
	if z.Position.X != 102 || z.Position.Y != 300 {
		t.Errorf("zombie = (%v, %v), want (102, 300)", z.Position.X, z.Position.Y)
	}
}

func TestPhysicsSystem_ZombieOnPlayerDoesNotMove(t *testing.T) {
	sim := newTestSimulation(t, nil)
	id, _ := entities.NewZombieEntity(sim.World.Zombies, 400, 300, 25, 5)

	sim.Physics.Update(0)

	z, _ := sim.World.Zombies.Get(id)
	if z.Position.X != 400 || z.Position.Y != 300 {
		t.Errorf("zombie = (%v, %v), want (400, 300)", z.Position.X, z.Position.Y)
	}
}

// 五颗子弹击杀一只僵尸：前四颗被消耗，致命的那颗保留
func TestPhysicsSystem_FiveHitKillKeepsLethalBullet(t *testing.T) {
	sim := newTestSimulation(t, nil)
	w := sim.World
	entities.NewZombieEntity(w.Zombies, 100, 300, 25, 5)

	var bullets []ecs.EntityID
	for i := 0; i < 5; i++ {
		id, _ := entities.NewBullet(w.Bullets, 102, 300, 102, 0, 5)
		bullets = append(bullets, id)
	}

	kills := sim.Physics.Update(0)
	w.Compact()

	if kills != 1 {
		t.Errorf("kills = %d, want 1", kills)
	}
	if w.Zombies.Len() != 0 {
		t.Errorf("zombies = %d, want 0", w.Zombies.Len())
	}
	if w.Bullets.Len() != 1 {
		t.Fatalf("bullets = %d, want 1", w.Bullets.Len())
	}
	// 逆序检测，最早创建的子弹最后命中并保留
	if !w.Bullets.IsAlive(bullets[0]) {
		t.Error("the lethal (oldest) bullet should survive")
	}
	if sim.State.Score != 1 || sim.State.HighScore != 1 {
		t.Errorf("score/high = %d/%d, want 1/1", sim.State.Score, sim.State.HighScore)
	}
}

func TestPhysicsSystem_NonLethalHit(t *testing.T) {
	sim := newTestSimulation(t, nil)
	w := sim.World
	zid, _ := entities.NewZombieEntity(w.Zombies, 100, 300, 25, 5)
	entities.NewBullet(w.Bullets, 130, 300, 130, 0, 5) // 距离 28 < 30

	sim.Physics.Update(0)
	w.Compact()

	z, ok := w.Zombies.Get(zid)
	if !ok {
		t.Fatal("zombie should survive")
	}
	if z.Health.CurrentHealth != 4 {
		t.Errorf("zombie health = %d, want 4", z.Health.CurrentHealth)
	}
	if w.Bullets.Len() != 0 {
		t.Errorf("bullet should be consumed, %d left", w.Bullets.Len())
	}
	if sim.State.Score != 0 {
		t.Errorf("score = %d, want 0", sim.State.Score)
	}
}

func TestPhysicsSystem_TouchingIsNotAHit(t *testing.T) {
	sim := newTestSimulation(t, nil)
	w := sim.World
	zid, _ := entities.NewZombieEntity(w.Zombies, 100, 300, 25, 5)
	entities.NewBullet(w.Bullets, 132, 100, 132, 0, 5)
	// 移动后僵尸位于 (102, 300)，子弹在正上方远处，不相交
	entities.NewBullet(w.Bullets, 132, 300, 132, 0, 5) // 距离恰好 30

	sim.Physics.Update(0)
	w.Compact()

	z, _ := w.Zombies.Get(zid)
	if z.Health.CurrentHealth != 5 {
		t.Errorf("zombie health = %d, want 5", z.Health.CurrentHealth)
	}
	if w.Bullets.Len() != 2 {
		t.Errorf("bullets = %d, want 2", w.Bullets.Len())
	}
}

// 一颗子弹同时覆盖两只僵尸时，较新的僵尸先被处理并消耗子弹
func TestPhysicsSystem_ReverseZombieOrder(t *testing.T) {
	sim := newTestSimulation(t, nil)
	w := sim.World
	older, _ := entities.NewZombieEntity(w.Zombies, 100, 290, 25, 5)
	newer, _ := entities.NewZombieEntity(w.Zombies, 100, 310, 25, 5)
	entities.NewBullet(w.Bullets, 102, 300, 102, 0, 5)

	sim.Physics.Update(0)

	zo, _ := w.Zombies.Get(older)
	zn, _ := w.Zombies.Get(newer)
	if zn.Health.CurrentHealth != 4 {
		t.Errorf("newer zombie health = %d, want 4", zn.Health.CurrentHealth)
	}
	if zo.Health.CurrentHealth != 5 {
		t.Errorf("older zombie health = %d, want 5", zo.Health.CurrentHealth)
	}
}

func TestPhysicsSystem_ContactCooldown(t *testing.T) {
	sim := newTestSimulation(t, nil)
	entities.NewZombieEntity(sim.World.Zombies, 440, 300, 25, 5)

	wantHealth := map[int]int{1: 2, 63: 2, 64: 1, 126: 1, 127: 0}
	for k := 1; k <= 127; k++ {
		sim.Physics.Update(int64(16 * k))
		if want, ok := wantHealth[k]; ok && sim.State.Health != want {
			t.Fatalf("tick %d (t=%dms): health = %d, want %d", k, 16*k, sim.State.Health, want)
		}
	}
	if !sim.State.IsDefeated() {
		t.Error("player should be defeated")
	}
}

func TestPhysicsSystem_CooldownIsGlobal(t *testing.T) {
	sim := newTestSimulation(t, nil)
	entities.NewZombieEntity(sim.World.Zombies, 440, 300, 25, 5)
	entities.NewZombieEntity(sim.World.Zombies, 360, 300, 25, 5)

	sim.Physics.Update(100)
	if sim.State.Health != 2 {
		t.Errorf("two touching zombies should deal 1 damage per cooldown, health = %d", sim.State.Health)
	}
}

func TestPhysicsSystem_KilledZombieDealsNoContactDamage(t *testing.T) {
	sim := newTestSimulation(t, nil)
	w := sim.World
	zid, _ := entities.NewZombieEntity(w.Zombies, 440, 300, 25, 1)
	entities.NewBullet(w.Bullets, 438, 300, 438, 0, 5)

	sim.Physics.Update(100)

	if w.Zombies.IsAlive(zid) {
		t.Fatal("zombie should be killed")
	}
	if sim.State.Health != 3 {
		t.Errorf("health = %d, want 3", sim.State.Health)
	}
}
