package system

import (
	"slices"
	"testing"
	"time"

	"github.com/lixenwraith/survivor/component"
	"github.com/lixenwraith/survivor/event"
	"github.com/lixenwraith/survivor/progression"
)

func kill(f *fixture) {
	f.world.PushEvent(event.EventMonsterKilled, &event.MonsterKilledPayload{Kind: component.MonsterSkeleton})
}

// TestLevelUpOffersChoices verifies a level-up pauses and offers unique choices
func TestLevelUpOffersChoices(t *testing.T) {
	f := newFixture(t, nil, NewProgressionSystem)
	for range 3 {
		kill(f)
	}
	f.world.DispatchEvents()

	g := f.world.Resources.Game
	if g.State.Level != 2 || g.State.XP != 0 || g.State.XPToNext != 5 {
		t.Fatalf("level %d xp %d/%d, want 2 0/5", g.State.Level, g.State.XP, g.State.XPToNext)
	}
	if g.State.UpgradePending != 1 || !g.State.Paused {
		t.Fatalf("pending %d paused %v", g.State.UpgradePending, g.State.Paused)
	}
	if len(g.Choices) != 3 {
		t.Fatalf("choices = %v, want 3", g.Choices)
	}
	sorted := slices.Clone(g.Choices)
	slices.Sort(sorted)
	if len(slices.Compact(sorted)) != 3 {
		t.Errorf("duplicate choices %v", g.Choices)
	}
	if f.rec.count(event.EventLevelUp) != 1 {
		t.Errorf("LevelUp events = %d, want 1", f.rec.count(event.EventLevelUp))
	}

	f.world.PushEvent(event.EventUpgradeSelectRequest, &event.UpgradeSelectRequestPayload{Kind: progression.UpgradeBulletDamage})
	f.world.DispatchEvents()

	if g.State.UpgradePending != 0 || g.State.Paused || g.Choices != nil {
		t.Errorf("after select: pending %d paused %v choices %v", g.State.UpgradePending, g.State.Paused, g.Choices)
	}
	if g.State.Tiers.BulletDamage != 2 {
		t.Errorf("bullet damage tier = %d, want 2", g.State.Tiers.BulletDamage)
	}
	p := f.rec.payloads(event.EventUpgradeApplied)
	if len(p) != 1 || p[0].(*event.UpgradeAppliedPayload).Tier != 2 {
		t.Errorf("UpgradeApplied payloads = %v", p)
	}
}

// TestUpgradeWithoutPendingIgnored verifies selection is a no-op outside a level-up
func TestUpgradeWithoutPendingIgnored(t *testing.T) {
	f := newFixture(t, nil, NewProgressionSystem)
	before := f.world.Resources.Game.State

	f.world.PushEvent(event.EventUpgradeSelectRequest, &event.UpgradeSelectRequestPayload{Kind: progression.UpgradeMaxHealth})
	f.world.DispatchEvents()

	if f.world.Resources.Game.State.MaxHealth != before.MaxHealth || f.rec.count(event.EventUpgradeApplied) != 0 {
		t.Error("upgrade applied with nothing pending")
	}
}

// TestInvincibleRequest verifies the unlock gate and the ability timers
func TestInvincibleRequest(t *testing.T) {
	f := newFixture(t, nil, NewProgressionSystem)
	g := f.world.Resources.Game

	f.world.PushEvent(event.EventInvincibleRequest, nil)
	f.world.DispatchEvents()
	if g.State.Invincible {
		t.Fatal("locked ability triggered")
	}

	g.State.Tiers.MoveSpeedUpgrades = 4
	f.world.PushEvent(event.EventInvincibleRequest, nil)
	f.world.DispatchEvents()
	if !g.State.Invincible || f.rec.count(event.EventInvincibleStarted) != 1 {
		t.Fatal("unlocked ability did not trigger")
	}

	f.world.Step(2 * time.Second)
	if g.State.Invincible {
		t.Error("invincibility outlasted its duration")
	}
	if g.State.InvincibleCooldown != 28*time.Second {
		t.Errorf("cooldown = %v, want 28s", g.State.InvincibleCooldown)
	}

	f.world.PushEvent(event.EventInvincibleRequest, nil)
	f.world.DispatchEvents()
	if g.State.Invincible {
		t.Error("ability retriggered during cooldown")
	}
}

// TestPauseToggle verifies the player pause and its refusal during level-up
func TestPauseToggle(t *testing.T) {
	f := newFixture(t, nil, NewProgressionSystem)
	g := f.world.Resources.Game

	f.world.PushEvent(event.EventPauseToggleRequest, nil)
	f.world.DispatchEvents()
	if !g.State.Paused {
		t.Fatal("pause toggle did not pause")
	}
	f.world.PushEvent(event.EventPauseToggleRequest, nil)
	f.world.DispatchEvents()
	if g.State.Paused {
		t.Fatal("pause toggle did not resume")
	}

	g.State.UpgradePending = 1
	g.State.Paused = true
	f.world.PushEvent(event.EventPauseToggleRequest, nil)
	f.world.DispatchEvents()
	if !g.State.Paused {
		t.Error("unpaused with an upgrade pending")
	}
}

// TestProgressionDisabled verifies the meta command gates kill credit
func TestProgressionDisabled(t *testing.T) {
	f := newFixture(t, nil, NewProgressionSystem)
	f.world.PushEvent(event.EventMetaSystemCommandRequest, &event.MetaSystemCommandPayload{SystemName: "progression"})
	kill(f)
	f.world.DispatchEvents()

	if k := f.world.Resources.Game.State.Kills; k != 0 {
		t.Errorf("kills = %d with progression disabled", k)
	}
	if got := f.world.Resources.Status.Ints.Get("progression.kills").Load(); got != 0 {
		t.Errorf("kills stat = %d", got)
	}
}
