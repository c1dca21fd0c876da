package progression

// ConsumeAmmo removes n rounds, flooring at zero; infinite ammo is never consumed
func ConsumeAmmo(s State, n int) State {
	if n <= 0 || s.InfiniteAmmo {
		return s
	}
	s.Ammo = max(0, s.Ammo-n)
	return s
}

// SetAmmo sets the magazine clamped to [0, AmmoCapacity]
func SetAmmo(s State, ammo int) State {
	s.Ammo = min(max(0, ammo), s.AmmoCapacity)
	return s
}

// StartReload marks the magazine as reloading; the caller owns the reload clock
func StartReload(s State) State {
	if s.InfiniteAmmo || s.Reloading || s.Ammo >= s.AmmoCapacity {
		return s
	}
	s.Reloading = true
	return s
}

// CompleteReload refills the magazine and clears the reloading flag
func CompleteReload(s State) State {
	s.Ammo = s.AmmoCapacity
	s.Reloading = false
	return s
}

// CanFire reports whether a firing attempt would emit projectiles
func (s State) CanFire() bool {
	return s.InfiniteAmmo || (!s.Reloading && s.Ammo > 0)
}
