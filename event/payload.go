package event

import (
	"github.com/lixenwraith/survivor/component"
	"github.com/lixenwraith/survivor/core"
	"github.com/lixenwraith/survivor/progression"
	"github.com/lixenwraith/survivor/vmath"
)

// MetaSystemCommandPayload toggles a system
type MetaSystemCommandPayload struct {
	SystemName string
	Enabled    bool
}

// UpgradeSelectRequestPayload names the chosen upgrade
type UpgradeSelectRequestPayload struct {
	Kind progression.UpgradeKind
}

// ProjectileSpawnRequestPayload describes a projectile to create
type ProjectileSpawnRequestPayload struct {
	Faction   component.Faction
	Owner     core.Handle
	OwnerKind component.MonsterKind
	Origin    vmath.Vec2F
	Direction vmath.Vec2F
	Speed     float64
	MaxRange  float64
	Radius    float64
	Damage    int
	Piercing  bool
}

// FirePattern describes the shape of a player volley
type FirePattern int

const (
	PatternSingle FirePattern = iota
	PatternFan
	PatternRadial
)

func (p FirePattern) String() string {
	switch p {
	case PatternFan:
		return "fan"
	case PatternRadial:
		return "radial"
	default:
		return "single"
	}
}

// PlayerFiredPayload summarizes a volley
type PlayerFiredPayload struct {
	Pattern FirePattern
	Count   int
	Damage  int
}

// MonsterHitPayload reports non-lethal damage
type MonsterHitPayload struct {
	Handle    core.Handle
	Kind      component.MonsterKind
	Damage    int
	Remaining int
}

// MonsterKilledPayload identifies the dead slot and where it died
type MonsterKilledPayload struct {
	Handle   core.Handle
	Kind     component.MonsterKind
	Slot     int
	Position vmath.Vec2F
}

// DamageSource distinguishes melee contact from projectiles
type DamageSource int

const (
	DamageContact DamageSource = iota
	DamageProjectile
)

// PlayerDamagedPayload reports a health loss
type PlayerDamagedPayload struct {
	Source DamageSource
	Kind   component.MonsterKind
	Amount int
	Health int
}

// MonsterSpawnedPayload reports a slot entering Seeking
type MonsterSpawnedPayload struct {
	Kind     component.MonsterKind
	Slot     int
	Position vmath.Vec2F
	Respawn  bool
}

// LevelUpPayload reports the new level and owed choices
type LevelUpPayload struct {
	Level   int
	Pending int
	Choices []progression.UpgradeKind
}

// UpgradeAppliedPayload reports a resolved choice
type UpgradeAppliedPayload struct {
	Kind progression.UpgradeKind
	Tier int
}

// GameOverPayload summarizes the finished run
type GameOverPayload struct {
	Kills      int
	Level      int
	Generation int
}

// DropPayload identifies a drop
type DropPayload struct {
	ID       int
	Kind     progression.DropKind
	Position vmath.Vec2F
}
