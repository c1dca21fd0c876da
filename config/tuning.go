// Package config builds the runtime tuning from parameter defaults and an optional YAML overlay
package config

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/survivor/component"
	"github.com/lixenwraith/survivor/parameter"
	"github.com/lixenwraith/survivor/progression"
)

// FireMode selects the player firing cadence
type FireMode int

const (
	FireAuto   FireMode = iota // Fires every AutoFireInterval
	FireManual                 // Fires on request, gated by FireCooldown
)

func (m FireMode) String() string {
	if m == FireManual {
		return "manual"
	}
	return "auto"
}

// ParseFireMode accepts "auto" or "manual", case-insensitive
func ParseFireMode(s string) (FireMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return FireAuto, nil
	case "manual":
		return FireManual, nil
	default:
		return FireAuto, fmt.Errorf("unknown fire mode %q", s)
	}
}

func (m *FireMode) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: fire mode must be a scalar", value.Line)
	}
	parsed, err := ParseFireMode(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*m = parsed
	return nil
}

func (m FireMode) MarshalYAML() (any, error) {
	return m.String(), nil
}

// DirectorRule maps kills to a target population
// 0 below Threshold, else clamp(Base + (kills-Offset)/Divisor, Min, Max); no growth when Divisor is 0
type DirectorRule struct {
	Threshold int `yaml:"threshold"`
	Base      int `yaml:"base"`
	Offset    int `yaml:"offset"`
	Divisor   int `yaml:"divisor"`
	Min       int `yaml:"min"`
	Max       int `yaml:"max"`
}

// MonsterTuning is the per-kind monster profile
type MonsterTuning struct {
	Speed          float64       `yaml:"speed"`
	HP             int           `yaml:"hp"`
	ContactDamage  int           `yaml:"contact_damage"`
	AttackRange    float64       `yaml:"attack_range"`
	AttackCooldown time.Duration `yaml:"attack_cooldown"`

	RangedDamage    int     `yaml:"ranged_damage"`
	ProjectileSpeed float64 `yaml:"projectile_speed"`
	ProjectileRange float64 `yaml:"projectile_range"`

	Radius     float64 `yaml:"radius"`
	DropChance float64 `yaml:"drop_chance"`

	SpawnMin     float64       `yaml:"spawn_min"`
	SpawnMax     float64       `yaml:"spawn_max"`
	RespawnDelay time.Duration `yaml:"respawn_delay"`

	Director DirectorRule `yaml:"director"`
}

// Ranged reports whether the kind fires projectiles
func (m MonsterTuning) Ranged() bool {
	return m.AttackRange > 0 && m.RangedDamage > 0 && m.ProjectileSpeed > 0
}

// MonstersTuning groups the per-kind profiles
type MonstersTuning struct {
	Skeleton MonsterTuning `yaml:"skeleton"`
	Zombie   MonsterTuning `yaml:"zombie"`
	Ghost    MonsterTuning `yaml:"ghost"`
	Vampire  MonsterTuning `yaml:"vampire"`
}

// PlayerTuning covers player vitals, movement and the invincibility ability
type PlayerTuning struct {
	BaseMaxHealth      int           `yaml:"base_max_health"`
	HitRadius          float64       `yaml:"hit_radius"`
	HeartPickupRadius  float64       `yaml:"heart_pickup_radius"`
	HeartHeal          int           `yaml:"heart_heal"`
	MoveSpeedBase      float64       `yaml:"move_speed_base"`
	MoveSpeedStep      float64       `yaml:"move_speed_step"`
	InvincibleDuration time.Duration `yaml:"invincible_duration"`
	InvincibleCooldown time.Duration `yaml:"invincible_cooldown"`
}

// ProgressionTuning covers experience and the level-up overlay
type ProgressionTuning struct {
	XPPerKill   int `yaml:"xp_per_kill"`
	XPBase      int `yaml:"xp_base"`
	XPStep      int `yaml:"xp_step"`
	MaxLevel    int `yaml:"max_level"`
	ChoiceCount int `yaml:"choice_count"`
}

// WeaponTuning covers player firing and projectiles
type WeaponTuning struct {
	FireMode         FireMode      `yaml:"fire_mode"`
	AutoFireInterval time.Duration `yaml:"auto_fire_interval"`
	FireCooldown     time.Duration `yaml:"fire_cooldown"`

	AmmoCapacity int           `yaml:"ammo_capacity"`
	ReloadTime   time.Duration `yaml:"reload_time"`

	MuzzleOffset       float64 `yaml:"muzzle_offset"`
	SpreadDeg          float64 `yaml:"spread_deg"`
	RadialCount        int     `yaml:"radial_count"`
	RadialDamageFactor float64 `yaml:"radial_damage_factor"`

	BulletSpeed  float64 `yaml:"bullet_speed"`
	BulletRange  float64 `yaml:"bullet_range"`
	BulletRadius float64 `yaml:"bullet_radius"`
}

// BounceTuning covers contact separation and the ranged hold band
type BounceTuning struct {
	BounceBack        float64       `yaml:"bounce_back"`
	Pause             time.Duration `yaml:"pause"`
	RetreatMultiplier float64       `yaml:"retreat_multiplier"`
	RandomAngle       float64       `yaml:"random_angle"`
	HoldEpsilon       float64       `yaml:"hold_epsilon"`
}

// Tuning is the complete runtime configuration of a session
type Tuning struct {
	// Seed drives every random draw; 0 picks a time-based seed at session start
	Seed          uint64        `yaml:"seed"`
	MaxFrameDelta time.Duration `yaml:"max_frame_delta"`

	Player      PlayerTuning      `yaml:"player"`
	Progression ProgressionTuning `yaml:"progression"`
	Weapon      WeaponTuning      `yaml:"weapon"`
	Bounce      BounceTuning      `yaml:"bounce"`
	Monsters    MonstersTuning    `yaml:"monsters"`
}

// Monster returns the profile of kind; unknown kinds get the skeleton profile
func (t *Tuning) Monster(kind component.MonsterKind) *MonsterTuning {
	switch kind {
	case component.MonsterZombie:
		return &t.Monsters.Zombie
	case component.MonsterGhost:
		return &t.Monsters.Ghost
	case component.MonsterVampire:
		return &t.Monsters.Vampire
	default:
		return &t.Monsters.Skeleton
	}
}

// Rules projects the tuning onto progression rules
func (t *Tuning) Rules() progression.Rules {
	return progression.Rules{
		BaseMaxHealth:      t.Player.BaseMaxHealth,
		BaseAmmoCapacity:   t.Weapon.AmmoCapacity,
		XPPerKill:          t.Progression.XPPerKill,
		XPBase:             t.Progression.XPBase,
		XPStep:             t.Progression.XPStep,
		MaxLevel:           t.Progression.MaxLevel,
		MoveSpeedBase:      t.Player.MoveSpeedBase,
		MoveSpeedStep:      t.Player.MoveSpeedStep,
		InvincibleDuration: t.Player.InvincibleDuration,
		InvincibleCooldown: t.Player.InvincibleCooldown,
	}
}

// Default returns the tuning built from package parameter
func Default() *Tuning {
	return &Tuning{
		MaxFrameDelta: parameter.MaxFrameDelta,
		Player: PlayerTuning{
			BaseMaxHealth:      parameter.PlayerBaseMaxHealth,
			HitRadius:          parameter.PlayerHitRadiusFloat,
			HeartPickupRadius:  parameter.HeartPickupRadiusFloat,
			HeartHeal:          parameter.HeartHealAmount,
			MoveSpeedBase:      parameter.MoveSpeedBaseFloat,
			MoveSpeedStep:      parameter.MoveSpeedStepFloat,
			InvincibleDuration: parameter.InvincibleDuration,
			InvincibleCooldown: parameter.InvincibleCooldown,
		},
		Progression: ProgressionTuning{
			XPPerKill:   parameter.XPPerKill,
			XPBase:      parameter.XPBase,
			XPStep:      parameter.XPStep,
			MaxLevel:    parameter.MaxLevel,
			ChoiceCount: parameter.UpgradeChoiceCount,
		},
		Weapon: WeaponTuning{
			FireMode:           FireAuto,
			AutoFireInterval:   parameter.WeaponAutoFireInterval,
			FireCooldown:       parameter.WeaponFireCooldown,
			AmmoCapacity:       parameter.AmmoBaseCapacity,
			ReloadTime:         parameter.AmmoReloadTime,
			MuzzleOffset:       parameter.WeaponMuzzleOffsetFloat,
			SpreadDeg:          parameter.WeaponSpreadDegFloat,
			RadialCount:        parameter.WeaponRadialCount,
			RadialDamageFactor: parameter.WeaponRadialDamageFactorFloat,
			BulletSpeed:        parameter.BulletSpeedFloat,
			BulletRange:        parameter.BulletRangeFloat,
			BulletRadius:       parameter.BulletRadiusFloat,
		},
		Bounce: BounceTuning{
			BounceBack:        parameter.BounceBackFloat,
			Pause:             parameter.BouncePause,
			RetreatMultiplier: parameter.BounceRetreatMultiplierFloat,
			RandomAngle:       parameter.BounceRandomAngleFloat,
			HoldEpsilon:       parameter.HoldEpsilonFloat,
		},
		Monsters: MonstersTuning{
			Skeleton: MonsterTuning{
				Speed:          parameter.SkeletonSpeedFloat,
				HP:             parameter.SkeletonHP,
				ContactDamage:  parameter.SkeletonAttack,
				AttackCooldown: parameter.MonsterAttackCooldown,
				Radius:         parameter.SkeletonRadiusFloat,
				DropChance:     parameter.MonsterDropChanceFloat,
				SpawnMin:       parameter.SkeletonSpawnMinFloat,
				SpawnMax:       parameter.SkeletonSpawnMaxFloat,
				RespawnDelay:   parameter.SkeletonRespawnDelay,
				Director: DirectorRule{
					Base:    parameter.SkeletonTargetBase,
					Divisor: parameter.SkeletonTargetDivisor,
					Min:     parameter.SkeletonTargetBase,
					Max:     parameter.SkeletonTargetMax,
				},
			},
			Zombie: MonsterTuning{
				Speed:          parameter.ZombieSpeedFloat,
				HP:             parameter.ZombieHP,
				ContactDamage:  parameter.ZombieAttack,
				AttackCooldown: parameter.MonsterAttackCooldown,
				Radius:         parameter.ZombieRadiusFloat,
				DropChance:     parameter.MonsterDropChanceFloat,
				SpawnMin:       parameter.ZombieSpawnMinFloat,
				SpawnMax:       parameter.ZombieSpawnMaxFloat,
				RespawnDelay:   parameter.ZombieRespawnDelay,
				Director: DirectorRule{
					Threshold: parameter.ZombieTargetThreshold,
					Offset:    parameter.ZombieTargetOffset,
					Divisor:   parameter.ZombieTargetDivisor,
					Max:       parameter.ZombieTargetMax,
				},
			},
			Ghost: MonsterTuning{
				Speed:           parameter.GhostSpeedFloat,
				HP:              parameter.GhostHP,
				ContactDamage:   parameter.GhostAttack,
				AttackRange:     parameter.GhostAttackRangeFloat,
				AttackCooldown:  parameter.MonsterAttackCooldown,
				RangedDamage:    parameter.GhostRangedDamage,
				ProjectileSpeed: parameter.GhostProjectileSpeedFloat,
				ProjectileRange: parameter.GhostAttackRangeFloat,
				Radius:          parameter.GhostRadiusFloat,
				DropChance:      parameter.MonsterDropChanceFloat,
				SpawnMin:        parameter.GhostSpawnMinFloat,
				SpawnMax:        parameter.GhostSpawnMaxFloat,
				RespawnDelay:    parameter.GhostRespawnDelay,
				Director: DirectorRule{
					Threshold: parameter.GhostTargetThreshold,
					Offset:    parameter.GhostTargetOffset,
					Divisor:   parameter.GhostTargetDivisor,
					Max:       parameter.GhostTargetMax,
				},
			},
			Vampire: MonsterTuning{
				Speed:           parameter.VampireSpeedFloat,
				HP:              parameter.VampireHP,
				ContactDamage:   parameter.VampireAttack,
				AttackRange:     parameter.VampireAttackRangeFloat,
				AttackCooldown:  parameter.MonsterAttackCooldown,
				RangedDamage:    parameter.VampireRangedDamage,
				ProjectileSpeed: parameter.VampireProjectileSpeedFloat,
				ProjectileRange: parameter.VampireAttackRangeFloat,
				Radius:          parameter.VampireRadiusFloat,
				DropChance:      parameter.VampireDropChanceFloat,
				SpawnMin:        parameter.VampireSpawnMinFloat,
				SpawnMax:        parameter.VampireSpawnMaxFloat,
				RespawnDelay:    parameter.VampireRespawnDelay,
				Director: DirectorRule{
					Threshold: parameter.VampireTargetThreshold,
					Base:      parameter.VampireTargetMax,
					Min:       parameter.VampireTargetMax,
					Max:       parameter.VampireTargetMax,
				},
			},
		},
	}
}
