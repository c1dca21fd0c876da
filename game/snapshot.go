package game

import (
	"fmt"
	"slices"
	"time"

	"github.com/lixenwraith/survivor/component"
	"github.com/lixenwraith/survivor/config"
	"github.com/lixenwraith/survivor/core"
	"github.com/lixenwraith/survivor/parameter"
	"github.com/lixenwraith/survivor/progression"
	"github.com/lixenwraith/survivor/vmath"
)

// Snapshot is the read-only HUD view of one frame
type Snapshot struct {
	RunID      string
	Generation int
	Frame      int64
	Elapsed    time.Duration

	Health    int
	MaxHealth int

	Ammo           int
	AmmoCapacity   int
	InfiniteAmmo   bool
	Reloading      bool
	ReloadProgress float64
	FireMode       config.FireMode

	Kills    int
	Level    int
	XP       int
	XPToNext int

	UpgradePending int
	Choices        []progression.UpgradeKind

	Paused   bool
	GameOver bool

	Invincible          bool
	InvincibleUnlocked  bool
	InvincibleRemaining time.Duration
	InvincibleCooldown  time.Duration

	Tiers     progression.Tiers
	MoveSpeed float64

	Drops    []progression.Drop
	Monsters int

	Player    vmath.Vec2F
	HasPlayer bool
}

// Snapshot captures the current HUD state
func (s *Session) Snapshot() Snapshot {
	res := s.world.Resources
	st := res.Game.State

	alive := 0
	s.world.Monsters.Each(func(_ core.Handle, m *component.MonsterComponent) bool {
		if m.Alive() {
			alive++
		}
		return true
	})

	snap := Snapshot{
		RunID:      s.runID.String(),
		Generation: st.Generation,
		Frame:      res.Time.FrameNumber,
		Elapsed:    res.Time.Now,

		Health:    st.Health,
		MaxHealth: st.MaxHealth,

		Ammo:           st.Ammo,
		AmmoCapacity:   st.AmmoCapacity,
		InfiniteAmmo:   st.InfiniteAmmo,
		Reloading:      st.Reloading,
		ReloadProgress: s.weapon.ReloadProgress(),
		FireMode:       res.Tuning.Weapon.FireMode,

		Kills:    st.Kills,
		Level:    st.Level,
		XP:       st.XP,
		XPToNext: st.XPToNext,

		UpgradePending: st.UpgradePending,
		Choices:        slices.Clone(res.Game.Choices),

		Paused:   st.Paused,
		GameOver: st.GameOver,

		Invincible:          st.Invincible,
		InvincibleUnlocked:  st.InvincibleUnlocked(),
		InvincibleRemaining: st.InvincibleRemaining,
		InvincibleCooldown:  st.InvincibleCooldown,

		Tiers:     st.Tiers,
		MoveSpeed: st.MoveSpeed,

		Drops:    slices.Clone(st.Drops),
		Monsters: alive,
	}
	if res.Scene != nil {
		snap.Player, snap.HasPlayer = res.Scene.PlayerPosition()
	}
	return snap
}

// Tier returns the displayed tier for an upgrade kind
func (s Snapshot) Tier(kind progression.UpgradeKind) int {
	return progression.State{Tiers: s.Tiers}.Tier(kind)
}

// ChoiceLabel describes an offered upgrade and what its next tier grants
func (s Snapshot) ChoiceLabel(kind progression.UpgradeKind) string {
	tier := s.Tier(kind)
	if tier >= parameter.UpgradeMaxTier {
		return fmt.Sprintf("%s (maxed)", kind)
	}
	next := tier + 1
	var bonus string
	if next == parameter.UpgradeMaxTier {
		switch kind {
		case progression.UpgradeMaxHealth:
			bonus = ", doubles health"
		case progression.UpgradeBulletDamage:
			bonus = ", piercing"
		case progression.UpgradeBulletCount:
			bonus = ", radial burst"
		case progression.UpgradeAmmoCapacity:
			bonus = ", infinite ammo"
		case progression.UpgradeMoveSpeed:
			bonus = ", unlocks invincibility"
		}
	}
	return fmt.Sprintf("%s %d -> %d%s", kind, tier, next, bonus)
}
