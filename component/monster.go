package component

import (
	"time"

	"github.com/lixenwraith/survivor/vmath"
)

// MonsterKind selects a monster profile
type MonsterKind int

const (
	MonsterSkeleton MonsterKind = iota
	MonsterZombie
	MonsterGhost
	MonsterVampire
	MonsterKindCount
)

var monsterNames = [MonsterKindCount]string{
	MonsterSkeleton: "skeleton",
	MonsterZombie:   "zombie",
	MonsterGhost:    "ghost",
	MonsterVampire:  "vampire",
}

func (k MonsterKind) String() string {
	if k < 0 || k >= MonsterKindCount {
		return "unknown"
	}
	return monsterNames[k]
}

// MonsterKinds returns every kind in declaration order
func MonsterKinds() []MonsterKind {
	return []MonsterKind{MonsterSkeleton, MonsterZombie, MonsterGhost, MonsterVampire}
}

// BehaviorState is the monster AI state
type BehaviorState int

const (
	StateSeeking BehaviorState = iota
	StateRetreating
	StateDead
	StateAwaitingRespawn
)

func (s BehaviorState) String() string {
	switch s {
	case StateSeeking:
		return "seeking"
	case StateRetreating:
		return "retreating"
	case StateDead:
		return "dead"
	case StateAwaitingRespawn:
		return "awaiting-respawn"
	default:
		return "unknown"
	}
}

// MonsterComponent is the per-slot monster record
// A slot keeps its identity (Kind, Slot) across death and respawn
type MonsterComponent struct {
	Kind MonsterKind
	Slot int

	Position vmath.Vec2F
	Yaw      float64

	HP    int
	MaxHP int
	State BehaviorState

	// RetreatTimer > 0 means the monster is backing off after contact
	RetreatTimer time.Duration
	RetreatDir   vmath.Vec2F

	// AttackCooldown <= 0 means the next attack is ready
	AttackCooldown time.Duration

	// RespawnAt is simulated time of the next respawn, valid in StateAwaitingRespawn
	RespawnAt time.Duration
}

// Alive reports whether the monster participates in AI and collision
func (m *MonsterComponent) Alive() bool {
	return m.State == StateSeeking || m.State == StateRetreating
}
