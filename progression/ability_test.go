package progression

import (
	"testing"
	"time"

	"github.com/lixenwraith/survivor/vmath"
)

func unlocked() State {
	s := New(DefaultRules())
	s.Tiers.MoveSpeedUpgrades = 4
	return s
}

// TestTriggerInvincibleRequiresUnlock verifies the ability is gated by the move speed track
func TestTriggerInvincibleRequiresUnlock(t *testing.T) {
	r := DefaultRules()
	if s := TriggerInvincible(New(r), r); s.Invincible {
		t.Error("triggered without unlock")
	}

	s := TriggerInvincible(unlocked(), r)
	if !s.Invincible || s.InvincibleRemaining != 2*time.Second || s.InvincibleCooldown != 30*time.Second {
		t.Errorf("got invincible %v remaining %v cooldown %v", s.Invincible, s.InvincibleRemaining, s.InvincibleCooldown)
	}
}

// TestTriggerInvincibleGates verifies cooldown and pause block the trigger
func TestTriggerInvincibleGates(t *testing.T) {
	r := DefaultRules()

	s := unlocked()
	s.InvincibleCooldown = time.Second
	if TriggerInvincible(s, r).Invincible {
		t.Error("triggered during cooldown")
	}

	s = unlocked()
	s.Paused = true
	if TriggerInvincible(s, r).Invincible {
		t.Error("triggered while paused")
	}
}

// TestTickInvincibility verifies both timers run down and the flag clears
func TestTickInvincibility(t *testing.T) {
	r := DefaultRules()
	s := TriggerInvincible(unlocked(), r)

	s = TickInvincibility(s, 1500*time.Millisecond)
	if !s.Invincible {
		t.Fatal("expired early")
	}
	s = TickInvincibility(s, time.Second)
	if s.Invincible || s.InvincibleRemaining != 0 {
		t.Errorf("invincible %v remaining %v after expiry", s.Invincible, s.InvincibleRemaining)
	}
	if s.InvincibleCooldown != 30*time.Second-2500*time.Millisecond {
		t.Errorf("cooldown = %v", s.InvincibleCooldown)
	}

	s = TickInvincibility(s, time.Minute)
	if s.InvincibleCooldown != 0 {
		t.Errorf("cooldown = %v, want 0", s.InvincibleCooldown)
	}
	if !TriggerInvincible(s, r).Invincible {
		t.Error("could not re-trigger after cooldown")
	}
}

// TestResetIncrementsGeneration verifies reset restores defaults and bumps the generation
func TestResetIncrementsGeneration(t *testing.T) {
	r := DefaultRules()
	s := pending(1)
	s = ApplyUpgrade(s, r, UpgradeMaxHealth)
	s = AwardKill(s, r)
	s = ApplyDamage(s, 100)
	s, _ = AddHeartDrop(s, vmath.Vec2F{X: 1})

	next := Reset(s, r)
	if next.Generation != s.Generation+1 {
		t.Errorf("generation = %d, want %d", next.Generation, s.Generation+1)
	}
	if next.GameOver || next.Paused || next.Health != 4 || next.MaxHealth != 4 || next.Kills != 0 {
		t.Errorf("reset left state: %+v", next)
	}
	if len(next.Drops) != 0 {
		t.Errorf("drops survived reset: %v", next.Drops)
	}
}
