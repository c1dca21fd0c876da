package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/survivor/component"
	"github.com/lixenwraith/survivor/event"
	"github.com/lixenwraith/survivor/progression"
	"github.com/lixenwraith/survivor/vmath"
)

// TestContactDamageBounce verifies overlap damages the player and pushes the monster out
func TestContactDamageBounce(t *testing.T) {
	f := newFixture(t, nil, NewMonsterSystem)
	h := f.place(component.MonsterZombie, vmath.Vec2F{X: 0.5})

	f.world.Step(16 * time.Millisecond)

	if hp := f.world.Resources.Game.State.Health; hp != 2 {
		t.Errorf("health = %d, want 2", hp)
	}
	m := f.monster(t, h)
	if m.State != component.StateRetreating {
		t.Errorf("state = %v, want retreating", m.State)
	}
	if d := vmath.V2FMag(m.Position); d < 1.3-1e-9 || d > 1.3+1e-9 {
		t.Errorf("bounce distance = %v, want 1.3", d)
	}
	p := f.rec.payloads(event.EventPlayerDamaged)
	if len(p) != 1 || p[0].(*event.PlayerDamagedPayload).Source != event.DamageContact {
		t.Errorf("PlayerDamaged payloads = %v", p)
	}
}

// TestContactDamageGameOver verifies lethal contact ends the run and freezes the frame
func TestContactDamageGameOver(t *testing.T) {
	f := newFixture(t, nil, NewMonsterSystem)
	f.world.Resources.Game.Apply(func(s progression.State) progression.State {
		return progression.SetHealth(s, 2)
	})
	f.place(component.MonsterZombie, vmath.Vec2F{X: 0.2})
	f.place(component.MonsterSkeleton, vmath.Vec2F{X: -0.2})

	f.world.Step(16 * time.Millisecond)

	st := f.world.Resources.Game.State
	if !st.GameOver || st.Health != 0 {
		t.Fatalf("health %d gameOver %v", st.Health, st.GameOver)
	}
	if f.rec.count(event.EventGameOver) != 1 || f.rec.count(event.EventPlayerDamaged) != 1 {
		t.Errorf("events: gameOver %d damaged %d", f.rec.count(event.EventGameOver), f.rec.count(event.EventPlayerDamaged))
	}
	if f.world.Step(16 * time.Millisecond) {
		t.Error("world stepped after game over")
	}
}

// TestRangedMonsterRequestsProjectile verifies the ghost fires at the player from range
func TestRangedMonsterRequestsProjectile(t *testing.T) {
	f := newFixture(t, nil, NewMonsterSystem)
	h := f.place(component.MonsterGhost, vmath.Vec2F{X: 4})

	f.world.Step(16 * time.Millisecond)

	reqs := spawnRequests(f.rec)
	if len(reqs) != 1 {
		t.Fatalf("requests = %d, want 1", len(reqs))
	}
	r := reqs[0]
	if r.Faction != component.FactionMonster || r.Owner != h || r.OwnerKind != component.MonsterGhost {
		t.Errorf("unexpected owner fields %+v", r)
	}
	if !near(r.Direction, vmath.Vec2F{X: -1}) {
		t.Errorf("direction = %+v, want -X", r.Direction)
	}
	profile := f.world.Resources.Tuning.Monster(component.MonsterGhost)
	if r.Damage != profile.RangedDamage || r.Speed != profile.ProjectileSpeed || r.MaxRange != profile.ProjectileRange {
		t.Errorf("payload %+v does not match profile", r)
	}

	f.world.Step(16 * time.Millisecond)
	if len(spawnRequests(f.rec)) != 1 {
		t.Error("fired again during cooldown")
	}
	if got := f.world.Resources.Status.Ints.Get("monster.alive").Load(); got != 1 {
		t.Errorf("monster.alive = %d, want 1", got)
	}
}

// TestMonsterIdleWithoutPlayer verifies AI skips frames with no player position
func TestMonsterIdleWithoutPlayer(t *testing.T) {
	f := newFixture(t, nil, NewMonsterSystem)
	h := f.place(component.MonsterSkeleton, vmath.Vec2F{X: 5})
	f.scene.HidePlayer()

	f.world.Step(100 * time.Millisecond)
	if m := f.monster(t, h); !near(m.Position, vmath.Vec2F{X: 5}) {
		t.Errorf("monster moved to %+v without a player", m.Position)
	}
}
