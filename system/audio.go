package system

import (
	"github.com/lixenwraith/survivor/core"
	"github.com/lixenwraith/survivor/engine"
	"github.com/lixenwraith/survivor/event"
	"github.com/lixenwraith/survivor/parameter"
)

// AudioSystem maps gameplay events to feedback sounds
// Decouples game systems from direct audio engine access
type AudioSystem struct {
	world  *engine.World
	player engine.AudioPlayer

	enabled bool
}

// NewAudioSystem creates an audio system; a nil Resources.Audio keeps it silent
func NewAudioSystem(world *engine.World) engine.System {
	s := &AudioSystem{
		world:  world,
		player: world.Resources.Audio,
	}
	s.Init()
	return s
}

func (s *AudioSystem) Init() {
	s.enabled = true
}

func (s *AudioSystem) Name() string {
	return "audio"
}

func (s *AudioSystem) Priority() int {
	return parameter.PriorityAudio
}

func (s *AudioSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventPlayerFired,
		event.EventMonsterHit,
		event.EventMonsterKilled,
		event.EventPlayerDamaged,
		event.EventDropCollected,
		event.EventLevelUp,
		event.EventInvincibleStarted,
		event.EventGameOver,
		event.EventMetaSystemCommandRequest,
		event.EventGameReset,
	}
}

var eventSounds = map[event.EventType]core.SoundType{
	event.EventPlayerFired:       core.SoundShot,
	event.EventMonsterHit:        core.SoundHit,
	event.EventMonsterKilled:     core.SoundKill,
	event.EventPlayerDamaged:     core.SoundHurt,
	event.EventDropCollected:     core.SoundPickup,
	event.EventLevelUp:           core.SoundLevelUp,
	event.EventInvincibleStarted: core.SoundShield,
	event.EventGameOver:          core.SoundGameOver,
}

func (s *AudioSystem) HandleEvent(ev event.GameEvent) {
	if ev.Type == event.EventGameReset {
		s.Init()
		return
	}

	if ev.Type == event.EventMetaSystemCommandRequest {
		if payload, ok := ev.Payload.(*event.MetaSystemCommandPayload); ok {
			if payload.SystemName == s.Name() {
				s.enabled = payload.Enabled
			}
		}
		return
	}

	if !s.enabled || s.player == nil {
		return
	}
	if sound, ok := eventSounds[ev.Type]; ok {
		s.player.Play(sound)
	}
}

// Update is a no-op; audio reacts to events only
func (s *AudioSystem) Update() {}
