package progression

// AwardKill credits one kill and its experience
func AwardKill(s State, r Rules) State {
	s.Kills++
	return AddXP(s, r, r.XPPerKill)
}

// AddXP accumulates experience, possibly spanning several levels in one call
// Each level gained owes one upgrade choice and pauses the game
// At the level cap XP and XPToNext are pinned to 0 and further XP is discarded
func AddXP(s State, r Rules, amount int) State {
	if s.Level >= r.MaxLevel {
		s.Level = r.MaxLevel
		s.XP, s.XPToNext = 0, 0
		return s
	}
	if amount <= 0 {
		return s
	}

	s.XP += amount
	gained := 0
	for s.XP >= s.XPToNext {
		s.XP -= s.XPToNext
		s.Level++
		gained++
		if s.Level >= r.MaxLevel {
			s.XP, s.XPToNext = 0, 0
			break
		}
		s.XPToNext = r.XPNeeded(s.Level)
	}

	if gained > 0 {
		s.UpgradePending += gained
		s.Paused = true
	}
	return s
}
