package progression

// ApplyDamage reduces health, entering game over at zero
// No-op while invincible, after game over, or for non-positive amounts
func ApplyDamage(s State, amount int) State {
	if amount <= 0 || s.Invincible || s.GameOver {
		return s
	}
	s.Health -= amount
	if s.Health <= 0 {
		s = enterGameOver(s)
	}
	return s
}

// Heal restores health up to the maximum
func Heal(s State, amount int) State {
	if amount <= 0 || s.GameOver {
		return s
	}
	s.Health = min(s.MaxHealth, s.Health+amount)
	return s
}

// SetHealth sets health clamped to [0, MaxHealth]; zero ends the game
func SetHealth(s State, health int) State {
	if s.GameOver {
		return s
	}
	s.Health = min(max(0, health), s.MaxHealth)
	if s.Health == 0 {
		s = enterGameOver(s)
	}
	return s
}

func enterGameOver(s State) State {
	s.Health = 0
	s.GameOver = true
	s.Paused = true
	s.Invincible = false
	s.InvincibleRemaining = 0
	return s
}

// SetPaused sets the pause gate; unpausing is refused while upgrades are owed or the game is over
func SetPaused(s State, paused bool) State {
	if !paused && (s.UpgradePending > 0 || s.GameOver) {
		return s
	}
	s.Paused = paused
	return s
}

// TogglePause flips the player pause gate
func TogglePause(s State) State {
	return SetPaused(s, !s.Paused)
}
