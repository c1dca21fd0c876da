package scene

import (
	"testing"
	"time"

	"github.com/lixenwraith/survivor/component"
	"github.com/lixenwraith/survivor/vmath"
)

// TestVisualLifecycle verifies spawn, move, despawn and unknown-slot handling
func TestVisualLifecycle(t *testing.T) {
	m := NewMemory()
	m.SpawnMonsterVisual(component.MonsterGhost, 1, vmath.Vec2F{X: 1})
	m.SpawnMonsterVisual(component.MonsterSkeleton, 3, vmath.Vec2F{X: 2})
	m.SpawnMonsterVisual(component.MonsterSkeleton, 0, vmath.Vec2F{X: 3})

	m.SetMonsterVisualPosition(component.MonsterGhost, 1, vmath.Vec2F{Y: 4}, 1.5)
	m.SetMonsterVisualPosition(component.MonsterVampire, 0, vmath.Vec2F{}, 0) // unknown, ignored

	vs := m.Visuals()
	if len(vs) != 3 {
		t.Fatalf("visuals = %d, want 3", len(vs))
	}
	order := [][2]int{{int(component.MonsterSkeleton), 0}, {int(component.MonsterSkeleton), 3}, {int(component.MonsterGhost), 1}}
	for i, o := range order {
		if int(vs[i].Kind) != o[0] || vs[i].Slot != o[1] {
			t.Errorf("visual %d = %v/%d", i, vs[i].Kind, vs[i].Slot)
		}
	}
	g, _ := m.Visual(component.MonsterGhost, 1)
	if g.Position != (vmath.Vec2F{Y: 4}) || g.Yaw != 1.5 {
		t.Errorf("ghost visual = %+v", g)
	}

	m.DespawnMonsterVisual(component.MonsterGhost, 1)
	m.DespawnMonsterVisual(component.MonsterGhost, 1)
	if spawned, despawned := m.VisualStats(); spawned != 3 || despawned != 1 {
		t.Errorf("stats = %d/%d, want 3/1", spawned, despawned)
	}
}

// TestProjectilesCopied verifies rendered sets are isolated from the caller's buffer
func TestProjectilesCopied(t *testing.T) {
	m := NewMemory()
	buf := []vmath.Vec2F{{X: 1}, {X: 2}}
	m.RenderProjectiles(component.FactionMonster, buf)
	buf[0] = vmath.Vec2F{X: 99}

	got := m.Projectiles(component.FactionMonster)
	if len(got) != 2 || got[0] != (vmath.Vec2F{X: 1}) {
		t.Errorf("projectiles = %+v", got)
	}
	if len(m.Projectiles(component.FactionPlayer)) != 0 {
		t.Error("player faction not empty")
	}
}

// TestMoveIntent verifies movement, facing and hold expiry
func TestMoveIntent(t *testing.T) {
	m := NewMemory()
	m.SetMoveIntent(vmath.Vec2F{X: 3, Y: 4}, 200*time.Millisecond)
	m.MovePlayer(0.1, 5)
	pos, ok := m.PlayerPosition()
	if !ok || vmath.V2FDist(pos, vmath.Vec2F{X: 0.3, Y: 0.4}) > 1e-9 {
		t.Errorf("pos = %+v", pos)
	}
	m.MovePlayer(0.1, 5)
	m.MovePlayer(0.1, 5)
	pos, _ = m.PlayerPosition()
	if vmath.V2FDist(pos, vmath.Vec2F{X: 0.6, Y: 0.8}) > 1e-9 {
		t.Errorf("pos after expiry = %+v, want {0.6 0.8}", pos)
	}

	m.HidePlayer()
	if _, ok := m.PlayerPosition(); ok {
		t.Error("hidden player reported")
	}
}
