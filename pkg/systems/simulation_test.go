package systems

import (
	"testing"

	"github.com/decker502/nuclear-survival/pkg/entities"
)

// 向 +x 开火后，子弹每帧前进 speed 像素
func TestSimulation_BulletTravelsAtConstantSpeed(t *testing.T) {
	sim := newTestSimulation(t, nil)
	in := FrameInput{Fire: true, PointerX: 700, PointerY: 300}

	res := sim.Tick(in, 200, 200)
	if !res.Fired {
		t.Fatal("expected a shot on the first tick")
	}
	ids := sim.World.Bullets.IDs()
	if len(ids) != 1 {
		t.Fatalf("bullets = %d, want 1", len(ids))
	}
	id := ids[0]

	in.Fire = false
	for ticks := 1; ticks <= 40; ticks++ {
		b, ok := sim.World.Bullets.Get(id)
		if !ok {
			t.Fatalf("bullet vanished after %d ticks", ticks)
		}
		want := 400 + 10*float64(ticks)
		if b.Position.X != want || b.Position.Y != 300 {
			t.Fatalf("after %d ticks bullet = (%v, %v), want (%v, 300)", ticks, b.Position.X, b.Position.Y, want)
		}
		sim.Tick(in, 16, 200+int64(16*ticks))
	}
}

func TestSimulation_DefeatStopsTheTick(t *testing.T) {
	sim := newTestSimulation(t, nil)
	sim.State.Health = 1
	entities.NewZombieEntity(sim.World.Zombies, 420, 300, 25, 5)

	// 把生成计数器推到下一帧必定生成的位置
	sim.Spawner.counter = 200

	res := sim.Tick(FrameInput{}, 16, 16)
	if !res.Defeated {
		t.Fatal("expected defeat")
	}
	if res.Spawned {
		t.Error("no zombie should spawn on the defeat tick")
	}
	if sim.World.Zombies.Len() != 1 {
		t.Errorf("zombies = %d, want 1", sim.World.Zombies.Len())
	}
}

func TestSimulation_ResetKeepsHighScore(t *testing.T) {
	sim := newTestSimulation(t, nil)
	w := sim.World

	for i := 0; i < 3; i++ {
		entities.NewZombieEntity(w.Zombies, 100, 300, 25, 1)
		entities.NewBullet(w.Bullets, 102, 300, 102, 0, 5)
		sim.Tick(FrameInput{}, 16, int64(16*(i+1)))
	}
	if sim.State.Score != 3 || sim.State.HighScore != 3 {
		t.Fatalf("score/high = %d/%d, want 3/3", sim.State.Score, sim.State.HighScore)
	}

	sim.Camera.Shift(DirLeft, 5)
	for i := 0; i < 300; i++ {
		sim.Difficulty.Advance()
	}
	firstRun := sim.State.RunID

	sim.Reset()

	if sim.State.Score != 0 || sim.State.HighScore != 3 || sim.State.Health != 3 {
		t.Errorf("after reset score/high/health = %d/%d/%d, want 0/3/3",
			sim.State.Score, sim.State.HighScore, sim.State.Health)
	}
	if w.Bullets.Len() != 0 || w.Zombies.Len() != 0 {
		t.Errorf("entities not cleared: bullets=%d zombies=%d", w.Bullets.Len(), w.Zombies.Len())
	}
	if w.Field.OffsetX != -100 || w.Field.OffsetY != -200 {
		t.Errorf("field offset = (%v, %v), want (-100, -200)", w.Field.OffsetX, w.Field.OffsetY)
	}
	if sim.Difficulty.SpawnInterval() != 120 {
		t.Errorf("spawn interval = %v, want 120", sim.Difficulty.SpawnInterval())
	}
	if sim.Ticks() != 0 {
		t.Errorf("ticks = %d, want 0", sim.Ticks())
	}
	if sim.State.RunID == firstRun {
		t.Error("a new run should get a new run id")
	}
}

func TestSimulation_HighScoreIsRunningMax(t *testing.T) {
	sim := newTestSimulation(t, nil)
	scores := []int{2, 5, 1}
	wantHigh := []int{2, 5, 5}

	for run, kills := range scores {
		if run > 0 {
			sim.Reset()
		}
		for i := 0; i < kills; i++ {
			entities.NewZombieEntity(sim.World.Zombies, 100, 300, 25, 1)
			entities.NewBullet(sim.World.Bullets, 102, 300, 102, 0, 5)
			sim.Tick(FrameInput{}, 16, int64(16*(i+1)))
		}
		if sim.State.HighScore != wantHigh[run] {
			t.Errorf("run %d: high score = %d, want %d", run, sim.State.HighScore, wantHigh[run])
		}
	}
}

// 同一帧内先平移场地再开火：新子弹从玩家位置出发，不受本帧平移影响
func TestSimulation_ShiftRunsBeforeFire(t *testing.T) {
	sim := newTestSimulation(t, nil)
	cfg := sim.Config
	zid, err := entities.NewZombieEntity(sim.World.Zombies, 100, 300, 25, 5)
	if err != nil {
		t.Fatal(err)
	}

	res := sim.Tick(FrameInput{Left: true, Fire: true, PointerX: 700, PointerY: 300}, 200, 200)
	if !res.Fired {
		t.Fatal("expected a shot")
	}

	if f := sim.World.Field; f.OffsetX != -95 || f.OffsetY != -200 {
		t.Errorf("field offset = (%v, %v), want (-95, -200)", f.OffsetX, f.OffsetY)
	}

	ids := sim.World.Bullets.IDs()
	if len(ids) != 1 {
		t.Fatalf("bullets = %d, want 1", len(ids))
	}
	b, _ := sim.World.Bullets.Get(ids[0])
	wantX := cfg.CenterX() + cfg.Bullet.Speed
	if b.Position.X != wantX || b.Position.Y != cfg.CenterY() {
		t.Errorf("bullet = (%v, %v), want (%v, %v)", b.Position.X, b.Position.Y, wantX, cfg.CenterY())
	}

	// 平移 +5，再朝玩家前进 2
	z, ok := sim.World.Zombies.Get(zid)
	if !ok {
		t.Fatal("zombie vanished")
	}
	if z.Position.X != 107 || z.Position.Y != 300 {
		t.Errorf("zombie = (%v, %v), want (107, 300)", z.Position.X, z.Position.Y)
	}
}
