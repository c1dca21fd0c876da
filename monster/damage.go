package monster

import (
	"github.com/lixenwraith/survivor/component"
	"github.com/lixenwraith/survivor/config"
	"github.com/lixenwraith/survivor/vmath"
)

// ApplyDamage is the only way external systems reduce monster hit points
// Returns true in the same call that drives HP to zero; dead monsters ignore damage
func ApplyDamage(m *component.MonsterComponent, amount int) (killed bool) {
	if amount <= 0 || !m.Alive() {
		return false
	}
	m.HP = max(0, m.HP-amount)
	if m.HP > 0 {
		return false
	}
	m.State = component.StateDead
	m.RetreatTimer = 0
	return true
}

// RollDrop decides whether a death leaves a heart
func RollDrop(p *config.MonsterTuning, rng *vmath.FastRand) bool {
	return rng.Chance(p.DropChance)
}
