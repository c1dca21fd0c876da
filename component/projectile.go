package component

import (
	"github.com/lixenwraith/survivor/core"
	"github.com/lixenwraith/survivor/vmath"
)

// Faction identifies whose projectile it is and what it can hit
type Faction int

const (
	FactionPlayer  Faction = iota // Hits monsters
	FactionMonster                // Hits the player only
)

func (f Faction) String() string {
	if f == FactionMonster {
		return "monster"
	}
	return "player"
}

// ProjectileComponent is a straight-line projectile record
type ProjectileComponent struct {
	Faction Faction

	// Owner is the emitting monster; zero for player projectiles
	Owner     core.Handle
	OwnerKind MonsterKind

	Position  vmath.Vec2F
	Direction vmath.Vec2F // Unit length
	Speed     float64
	Traveled  float64
	MaxRange  float64
	Radius    float64

	Damage   int
	Piercing bool

	// Hits lists monsters already damaged, so a piercing projectile damages each once
	Hits []core.Handle
}

// HasHit reports whether h was already damaged by this projectile
func (p *ProjectileComponent) HasHit(h core.Handle) bool {
	for _, hit := range p.Hits {
		if hit == h {
			return true
		}
	}
	return false
}

// Expired reports whether the projectile has outrun its range
func (p *ProjectileComponent) Expired() bool {
	return p.Traveled > p.MaxRange
}
