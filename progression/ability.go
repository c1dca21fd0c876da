package progression

import "time"

// TriggerInvincible starts the timed invincibility ability
// Requires the unlock, an expired cooldown, and a running game
func TriggerInvincible(s State, r Rules) State {
	if !s.InvincibleUnlocked() || s.InvincibleCooldown > 0 || s.Paused || s.GameOver {
		return s
	}
	s.Invincible = true
	s.InvincibleRemaining = r.InvincibleDuration
	s.InvincibleCooldown = r.InvincibleCooldown
	return s
}

// TickInvincibility advances the ability timers by dt; called once per unpaused frame
func TickInvincibility(s State, dt time.Duration) State {
	if dt <= 0 {
		return s
	}
	s.InvincibleCooldown = max(0, s.InvincibleCooldown-dt)
	s.InvincibleRemaining = max(0, s.InvincibleRemaining-dt)
	if s.Invincible && s.InvincibleRemaining == 0 {
		s.Invincible = false
	}
	return s
}
