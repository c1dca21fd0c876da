package event

import "strings"

var typeNames = [eventTypeCount]string{
	EventGameReset:                "GameReset",
	EventMetaSystemCommandRequest: "MetaSystemCommandRequest",
	EventUpgradeSelectRequest:     "UpgradeSelectRequest",
	EventInvincibleRequest:        "InvincibleRequest",
	EventPauseToggleRequest:       "PauseToggleRequest",
	EventFireRequest:              "FireRequest",
	EventProjectileSpawnRequest:   "ProjectileSpawnRequest",
	EventPlayerFired:              "PlayerFired",
	EventReloadStarted:            "ReloadStarted",
	EventMonsterHit:               "MonsterHit",
	EventMonsterKilled:            "MonsterKilled",
	EventPlayerDamaged:            "PlayerDamaged",
	EventMonsterSpawned:           "MonsterSpawned",
	EventLevelUp:                  "LevelUp",
	EventUpgradeApplied:           "UpgradeApplied",
	EventInvincibleStarted:        "InvincibleStarted",
	EventGameOver:                 "GameOver",
	EventDropSpawned:              "DropSpawned",
	EventDropCollected:            "DropCollected",
}

func (t EventType) String() string {
	if t < 0 || t >= eventTypeCount {
		return "Unknown"
	}
	return typeNames[t]
}

// GetEventType returns the EventType for a name, case-insensitive
func GetEventType(name string) (EventType, bool) {
	for i, n := range typeNames {
		if strings.EqualFold(n, name) {
			return EventType(i), true
		}
	}
	return 0, false
}

// Types returns every defined event type
func Types() []EventType {
	out := make([]EventType, eventTypeCount)
	for i := range out {
		out[i] = EventType(i)
	}
	return out
}
