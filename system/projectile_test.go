package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/survivor/component"
	"github.com/lixenwraith/survivor/core"
	"github.com/lixenwraith/survivor/event"
	"github.com/lixenwraith/survivor/progression"
	"github.com/lixenwraith/survivor/vmath"
)

func shot(origin, dir vmath.Vec2F, speed float64, damage int, piercing bool) *event.ProjectileSpawnRequestPayload {
	return &event.ProjectileSpawnRequestPayload{
		Faction:   component.FactionPlayer,
		Origin:    origin,
		Direction: dir,
		Speed:     speed,
		MaxRange:  5,
		Radius:    0.08,
		Damage:    damage,
		Piercing:  piercing,
	}
}

// TestProjectileFirstHitOnly verifies a non-piercing shot damages one monster and is removed
func TestProjectileFirstHitOnly(t *testing.T) {
	f := newFixture(t, nil, NewProjectileSystem)
	first := f.place(component.MonsterSkeleton, vmath.Vec2F{X: 2})
	second := f.place(component.MonsterSkeleton, vmath.Vec2F{X: 2.1})

	f.world.PushEvent(event.EventProjectileSpawnRequest, shot(vmath.Vec2F{}, vmath.Vec2F{X: 1}, 10, 1, false))
	f.world.Step(100 * time.Millisecond)
	if f.world.Projectiles.Len() != 1 {
		t.Fatalf("projectiles = %d, want 1 in flight", f.world.Projectiles.Len())
	}
	f.world.Step(100 * time.Millisecond)

	if hp := f.monster(t, first).HP; hp != 1 {
		t.Errorf("first HP = %d, want 1", hp)
	}
	if hp := f.monster(t, second).HP; hp != 2 {
		t.Errorf("second HP = %d, want 2", hp)
	}
	if f.world.Projectiles.Len() != 0 {
		t.Error("spent projectile not removed")
	}
	if f.rec.count(event.EventMonsterHit) != 1 {
		t.Errorf("MonsterHit events = %d, want 1", f.rec.count(event.EventMonsterHit))
	}
}

// TestPiercingDamagesOnce verifies a piercing shot never hits the same monster twice
func TestPiercingDamagesOnce(t *testing.T) {
	f := newFixture(t, nil, NewProjectileSystem)
	h := f.place(component.MonsterZombie, vmath.Vec2F{X: 2})

	f.world.PushEvent(event.EventProjectileSpawnRequest, shot(vmath.Vec2F{}, vmath.Vec2F{X: 1}, 1, 1, true))
	for range 35 {
		f.world.Step(100 * time.Millisecond)
	}

	if hp := f.monster(t, h).HP; hp != 5 {
		t.Errorf("HP = %d, want 5", hp)
	}
	if f.world.Projectiles.Len() != 1 {
		t.Error("piercing projectile removed on hit")
	}
}

// TestPiercingPassesThrough verifies a piercing shot hits every monster in its path
func TestPiercingPassesThrough(t *testing.T) {
	f := newFixture(t, nil, NewProjectileSystem)
	a := f.place(component.MonsterSkeleton, vmath.Vec2F{X: 2})
	b := f.place(component.MonsterSkeleton, vmath.Vec2F{X: 2.2})

	f.world.PushEvent(event.EventProjectileSpawnRequest, shot(vmath.Vec2F{X: 2.1}, vmath.Vec2F{X: 1}, 1, 5, true))
	f.world.Step(time.Millisecond)

	if f.monster(t, a).Alive() || f.monster(t, b).Alive() {
		t.Error("piercing shot did not kill both overlapping monsters")
	}
	if n := f.rec.count(event.EventMonsterKilled); n != 2 {
		t.Errorf("MonsterKilled events = %d, want 2", n)
	}
}

// TestProjectileExpiresByRange verifies removal once traveled distance exceeds range
func TestProjectileExpiresByRange(t *testing.T) {
	f := newFixture(t, nil, NewProjectileSystem)
	f.world.PushEvent(event.EventProjectileSpawnRequest, shot(vmath.Vec2F{}, vmath.Vec2F{Y: 1}, 10, 1, false))

	f.world.Step(400 * time.Millisecond)
	if f.world.Projectiles.Len() != 1 {
		t.Fatal("expired before range")
	}
	f.world.Step(200 * time.Millisecond)
	if f.world.Projectiles.Len() != 0 {
		t.Error("projectile outlived its range")
	}
}

// TestKillCreditsAndSchedulesRespawn follows a kill through progression and the director
func TestKillCreditsAndSchedulesRespawn(t *testing.T) {
	f := newFixture(t, nil, NewProgressionSystem, NewProjectileSystem, NewSpawnSystem)
	f.world.PushEvent(event.EventMetaSystemCommandRequest, &event.MetaSystemCommandPayload{SystemName: "spawn"})
	h := f.place(component.MonsterSkeleton, vmath.Vec2F{X: 2})
	f.world.Step(16 * time.Millisecond)

	f.world.PushEvent(event.EventProjectileSpawnRequest, shot(vmath.Vec2F{X: 1.9}, vmath.Vec2F{X: 1}, 10, 2, false))
	f.world.Step(16 * time.Millisecond)

	m := f.monster(t, h)
	if m.State != component.StateAwaitingRespawn {
		t.Fatalf("state = %v, want awaiting respawn", m.State)
	}
	if want := f.world.Resources.Time.Now + 1500*time.Millisecond; m.RespawnAt != want {
		t.Errorf("RespawnAt = %v, want %v", m.RespawnAt, want)
	}
	if k := f.world.Resources.Game.State.Kills; k != 1 {
		t.Errorf("kills = %d, want 1", k)
	}
	p := f.rec.payloads(event.EventMonsterKilled)
	if len(p) != 1 || p[0].(*event.MonsterKilledPayload).Handle != h {
		t.Errorf("MonsterKilled payloads = %v", p)
	}
}

// TestMonsterProjectileHitsPlayer verifies ranged damage and removal
func TestMonsterProjectileHitsPlayer(t *testing.T) {
	tests := []struct {
		name       string
		invincible bool
		wantHealth int
		wantEvents int
	}{
		{"damage", false, 3, 1},
		{"invincible", true, 4, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, nil, NewProjectileSystem)
			f.world.Resources.Game.State.Invincible = tt.invincible
			f.world.PushEvent(event.EventProjectileSpawnRequest, &event.ProjectileSpawnRequestPayload{
				Faction:   component.FactionMonster,
				OwnerKind: component.MonsterGhost,
				Origin:    vmath.Vec2F{X: 2},
				Direction: vmath.Vec2F{X: -1},
				Speed:     10,
				MaxRange:  5,
				Radius:    0.08,
				Damage:    1,
			})

			f.world.Step(50 * time.Millisecond)
			if f.world.Projectiles.Len() != 1 {
				t.Fatal("projectile hit too early")
			}
			f.world.Step(50 * time.Millisecond)

			if h := f.world.Resources.Game.State.Health; h != tt.wantHealth {
				t.Errorf("health = %d, want %d", h, tt.wantHealth)
			}
			if f.world.Projectiles.Len() != 0 {
				t.Error("monster projectile not removed on contact")
			}
			if n := f.rec.count(event.EventPlayerDamaged); n != tt.wantEvents {
				t.Errorf("PlayerDamaged events = %d, want %d", n, tt.wantEvents)
			}
		})
	}
}

// TestLethalProjectileEndsGame verifies health zero raises game over exactly once
func TestLethalProjectileEndsGame(t *testing.T) {
	f := newFixture(t, nil, NewProjectileSystem)
	f.world.Resources.Game.Apply(func(s progression.State) progression.State {
		return progression.SetHealth(s, 1)
	})
	for range 2 {
		f.world.PushEvent(event.EventProjectileSpawnRequest, &event.ProjectileSpawnRequestPayload{
			Faction:   component.FactionMonster,
			Origin:    vmath.Vec2F{X: 0.5},
			Direction: vmath.Vec2F{X: 1},
			Speed:     1,
			MaxRange:  5,
			Radius:    0.08,
			Damage:    1,
		})
	}
	f.world.Step(16 * time.Millisecond)

	st := f.world.Resources.Game.State
	if !st.GameOver || st.Health != 0 || !st.Paused {
		t.Fatalf("state %+v, want game over", st)
	}
	if n := f.rec.count(event.EventGameOver); n != 1 {
		t.Errorf("GameOver events = %d, want 1", n)
	}
}

// TestDeadOwnerProjectilesCleared verifies a killed monster's shots disappear
func TestDeadOwnerProjectilesCleared(t *testing.T) {
	f := newFixture(t, nil, NewProjectileSystem)
	owner := f.place(component.MonsterGhost, vmath.Vec2F{X: 10})
	other := f.place(component.MonsterGhost, vmath.Vec2F{X: -10})
	for _, h := range []core.Handle{owner, other} {
		f.world.PushEvent(event.EventProjectileSpawnRequest, &event.ProjectileSpawnRequestPayload{
			Faction:   component.FactionMonster,
			Owner:     h,
			Origin:    vmath.Vec2F{Y: 4},
			Direction: vmath.Vec2F{Y: 1},
			Speed:     1,
			MaxRange:  5,
			Radius:    0.08,
			Damage:    1,
		})
	}
	f.world.DispatchEvents()

	f.world.PushEvent(event.EventMonsterKilled, &event.MonsterKilledPayload{Handle: owner, Kind: component.MonsterGhost})
	f.world.DispatchEvents()

	if f.world.Projectiles.Len() != 1 {
		t.Fatalf("projectiles = %d, want 1", f.world.Projectiles.Len())
	}
	f.world.Projectiles.Each(func(_ core.Handle, p *component.ProjectileComponent) bool {
		if p.Owner != other {
			t.Errorf("surviving projectile owner = %v, want %v", p.Owner, other)
		}
		return true
	})
}
