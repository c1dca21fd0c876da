package monster

import (
	"testing"
	"time"

	"github.com/lixenwraith/survivor/component"
	"github.com/lixenwraith/survivor/config"
	"github.com/lixenwraith/survivor/vmath"
)

// TestTargetCount checks the default director curves at their thresholds and caps
func TestTargetCount(t *testing.T) {
	tu := config.Default()
	tests := []struct {
		kind  component.MonsterKind
		kills int
		want  int
	}{
		{component.MonsterSkeleton, 0, 5},
		{component.MonsterSkeleton, 9, 9},
		{component.MonsterSkeleton, 100, 30},
		{component.MonsterGhost, 9, 0},
		{component.MonsterGhost, 10, 0},
		{component.MonsterGhost, 13, 1},
		{component.MonsterGhost, 200, 12},
		{component.MonsterZombie, 24, 0},
		{component.MonsterZombie, 27, 1},
		{component.MonsterZombie, 500, 8},
		{component.MonsterVampire, 59, 0},
		{component.MonsterVampire, 60, 1},
		{component.MonsterVampire, 1000, 1},
	}

	for _, tt := range tests {
		got := TargetCount(tu.Monster(tt.kind).Director, tt.kills)
		if got != tt.want {
			t.Errorf("%v at %d kills = %d, want %d", tt.kind, tt.kills, got, tt.want)
		}
	}
}

// TestTargetCountMonotonic verifies no default curve ever decreases with kills
func TestTargetCountMonotonic(t *testing.T) {
	tu := config.Default()
	for _, kind := range component.MonsterKinds() {
		prev := 0
		for k := 0; k < 400; k++ {
			n := TargetCount(tu.Monster(kind).Director, k)
			if n < prev {
				t.Fatalf("%v: count dropped from %d to %d at %d kills", kind, prev, n, k)
			}
			prev = n
		}
	}
}

// TestSampleSpawnRing verifies sampled points stay on the kind's ring
func TestSampleSpawnRing(t *testing.T) {
	tu := config.Default()
	rng := vmath.NewFastRand(21)
	player := vmath.Vec2F{X: 3, Y: -4}

	for _, kind := range component.MonsterKinds() {
		p := tu.Monster(kind)
		for i := 0; i < 200; i++ {
			d := vmath.V2FDist(SampleSpawn(p, player, rng), player)
			if d < p.SpawnMin || d > p.SpawnMax {
				t.Fatalf("%v: distance %f outside [%f, %f]", kind, d, p.SpawnMin, p.SpawnMax)
			}
		}
	}
}

// TestRespawnSchedule verifies the awaiting window and full hp on respawn
func TestRespawnSchedule(t *testing.T) {
	m, p := spawned(component.MonsterGhost, vmath.Vec2F{X: 5})
	ApplyDamage(m, p.HP)

	now := 10 * time.Second
	ScheduleRespawn(m, p, now)
	if m.State != component.StateAwaitingRespawn {
		t.Fatalf("state = %v", m.State)
	}
	if RespawnDue(m, now+p.RespawnDelay-time.Millisecond) {
		t.Error("respawn due early")
	}
	if !RespawnDue(m, now+p.RespawnDelay) {
		t.Error("respawn not due at deadline")
	}

	Spawn(m, p, vmath.Vec2F{X: 20}, vmath.Vec2F{})
	if m.HP != p.HP || m.State != component.StateSeeking {
		t.Errorf("respawned hp %d state %v", m.HP, m.State)
	}
}
