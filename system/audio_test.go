package system

import (
	"testing"

	"github.com/lixenwraith/survivor/config"
	"github.com/lixenwraith/survivor/core"
	"github.com/lixenwraith/survivor/engine"
	"github.com/lixenwraith/survivor/event"
	"github.com/lixenwraith/survivor/scene"
)

type fakePlayer struct {
	played []core.SoundType
}

func (p *fakePlayer) Play(s core.SoundType) bool {
	p.played = append(p.played, s)
	return true
}

// TestAudioMapsEvents verifies gameplay events become sounds in order
func TestAudioMapsEvents(t *testing.T) {
	player := &fakePlayer{}
	w := engine.NewWorld(engine.NewResource(config.Default(), scene.NewMemory(), player))
	w.AddSystem(NewAudioSystem(w))

	w.PushEvent(event.EventPlayerFired, &event.PlayerFiredPayload{Count: 1, Damage: 1})
	w.PushEvent(event.EventMonsterKilled, &event.MonsterKilledPayload{})
	w.PushEvent(event.EventReloadStarted, nil)
	w.PushEvent(event.EventLevelUp, &event.LevelUpPayload{Level: 2})
	w.PushEvent(event.EventGameOver, &event.GameOverPayload{})
	w.DispatchEvents()

	want := []core.SoundType{core.SoundShot, core.SoundKill, core.SoundLevelUp, core.SoundGameOver}
	if len(player.played) != len(want) {
		t.Fatalf("played %v, want %v", player.played, want)
	}
	for i := range want {
		if player.played[i] != want[i] {
			t.Errorf("sound %d = %v, want %v", i, player.played[i], want[i])
		}
	}
}

// TestAudioMutedAndDisabled verifies silence without a player or when disabled
func TestAudioMutedAndDisabled(t *testing.T) {
	w := engine.NewWorld(engine.NewResource(config.Default(), scene.NewMemory(), nil))
	w.AddSystem(NewAudioSystem(w))
	w.PushEvent(event.EventPlayerFired, &event.PlayerFiredPayload{})
	w.DispatchEvents() // must not panic

	player := &fakePlayer{}
	w = engine.NewWorld(engine.NewResource(config.Default(), scene.NewMemory(), player))
	w.AddSystem(NewAudioSystem(w))
	w.PushEvent(event.EventMetaSystemCommandRequest, &event.MetaSystemCommandPayload{SystemName: "audio"})
	w.PushEvent(event.EventPlayerDamaged, &event.PlayerDamagedPayload{})
	w.DispatchEvents()
	if len(player.played) != 0 {
		t.Errorf("disabled audio played %v", player.played)
	}
}
