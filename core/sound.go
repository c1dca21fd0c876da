package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundShot     SoundType = iota // Player volley
	SoundHit                       // Projectile lands on a monster
	SoundKill                      // Monster dies
	SoundHurt                      // Player takes damage
	SoundPickup                    // Heart collected
	SoundLevelUp                   // Level threshold crossed
	SoundShield                    // Invincibility triggered
	SoundGameOver                  // Health reached zero
	SoundTypeCount
)

var soundNames = [SoundTypeCount]string{
	SoundShot:     "shot",
	SoundHit:      "hit",
	SoundKill:     "kill",
	SoundHurt:     "hurt",
	SoundPickup:   "pickup",
	SoundLevelUp:  "levelup",
	SoundShield:   "shield",
	SoundGameOver: "gameover",
}

func (s SoundType) String() string {
	if s < 0 || s >= SoundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}
