package progression

import "testing"

// TestAddXPSingleLevel covers a single level-up owing one upgrade
func TestAddXPSingleLevel(t *testing.T) {
	r := DefaultRules()
	s := New(r)
	if s.Level != 1 || s.XP != 0 || s.XPToNext != 3 {
		t.Fatalf("initial = level %d xp %d next %d", s.Level, s.XP, s.XPToNext)
	}

	s = AddXP(s, r, 3)
	if s.Level != 2 || s.XP != 0 || s.XPToNext != 5 {
		t.Errorf("got level %d xp %d next %d, want 2 0 5", s.Level, s.XP, s.XPToNext)
	}
	if s.UpgradePending != 1 {
		t.Errorf("upgradePending = %d, want 1", s.UpgradePending)
	}
	if !s.Paused {
		t.Error("expected paused after level-up")
	}
}

// TestAddXPMultiLevel verifies one large grant spans several thresholds
func TestAddXPMultiLevel(t *testing.T) {
	r := DefaultRules()
	s := AddXP(New(r), r, 3+5+7+1)

	if s.Level != 4 {
		t.Errorf("level = %d, want 4", s.Level)
	}
	if s.XP != 1 || s.XPToNext != 9 {
		t.Errorf("xp %d next %d, want 1 9", s.XP, s.XPToNext)
	}
	if s.UpgradePending != 3 {
		t.Errorf("upgradePending = %d, want 3", s.UpgradePending)
	}
}

// TestAddXPCap verifies the cap pins xp and discards further grants
func TestAddXPCap(t *testing.T) {
	r := DefaultRules()
	s := AddXP(New(r), r, 100000)

	if s.Level != r.MaxLevel {
		t.Fatalf("level = %d, want %d", s.Level, r.MaxLevel)
	}
	if s.XP != 0 || s.XPToNext != 0 {
		t.Errorf("xp %d next %d at cap, want 0 0", s.XP, s.XPToNext)
	}
	if s.UpgradePending != r.MaxLevel-1 {
		t.Errorf("upgradePending = %d, want %d", s.UpgradePending, r.MaxLevel-1)
	}

	s = AddXP(s, r, 50)
	if s.Level != r.MaxLevel || s.XP != 0 || s.XPToNext != 0 {
		t.Errorf("state moved past cap: level %d xp %d next %d", s.Level, s.XP, s.XPToNext)
	}
}

// TestAddXPInvariant checks level and xp bounds over a long sequence of grants
func TestAddXPInvariant(t *testing.T) {
	r := DefaultRules()
	s := New(r)
	for i := 0; i < 500; i++ {
		s = AddXP(s, r, i%7)
		if s.Level > r.MaxLevel {
			t.Fatalf("step %d: level %d exceeds cap", i, s.Level)
		}
		atCap := s.Level == r.MaxLevel
		if atCap && (s.XP != 0 || s.XPToNext != 0) {
			t.Fatalf("step %d: at cap with xp %d next %d", i, s.XP, s.XPToNext)
		}
		if !atCap && s.XP >= s.XPToNext {
			t.Fatalf("step %d: xp %d >= next %d", i, s.XP, s.XPToNext)
		}
	}
}

// TestAwardKill verifies kill credit and experience
func TestAwardKill(t *testing.T) {
	r := DefaultRules()
	s := New(r)
	for i := 0; i < 3; i++ {
		s = AwardKill(s, r)
	}
	if s.Kills != 3 {
		t.Errorf("kills = %d, want 3", s.Kills)
	}
	if s.Level != 2 {
		t.Errorf("level = %d, want 2", s.Level)
	}
}
