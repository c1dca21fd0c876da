package system

import (
	"github.com/lixenwraith/survivor/component"
	"github.com/lixenwraith/survivor/engine"
	"github.com/lixenwraith/survivor/event"
	"github.com/lixenwraith/survivor/progression"
)

// damagePlayer applies damage through the progression model and reports the outcome
// Invincible or finished players absorb nothing and no event is emitted
func damagePlayer(world *engine.World, amount int, source event.DamageSource, kind component.MonsterKind) {
	g := world.Resources.Game
	before := g.State
	g.State = progression.ApplyDamage(before, amount)
	if g.State.Health == before.Health {
		return
	}

	world.PushEvent(event.EventPlayerDamaged, &event.PlayerDamagedPayload{
		Source: source,
		Kind:   kind,
		Amount: before.Health - g.State.Health,
		Health: g.State.Health,
	})

	if g.State.GameOver && !before.GameOver {
		world.PushEvent(event.EventGameOver, &event.GameOverPayload{
			Kills:      g.State.Kills,
			Level:      g.State.Level,
			Generation: g.State.Generation,
		})
	}
}
