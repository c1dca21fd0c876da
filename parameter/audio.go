package parameter

import "time"

// Audio
const (
	// AudioSampleRate is the speaker sample rate
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// AudioMasterVolumeFloat scales every effect
	AudioMasterVolumeFloat = 0.5

	// AudioMaxVoices caps concurrently mixed effects; extra requests are dropped
	AudioMaxVoices = 12
)

// Sound effect envelopes
const (
	ShotSoundDuration = 60 * time.Millisecond
	ShotSoundAttack   = 2 * time.Millisecond
	ShotSoundRelease  = 40 * time.Millisecond

	HitSoundDuration = 80 * time.Millisecond
	HitSoundAttack   = 2 * time.Millisecond
	HitSoundRelease  = 60 * time.Millisecond

	HurtSoundDuration = 180 * time.Millisecond
	HurtSoundAttack   = 5 * time.Millisecond
	HurtSoundRelease  = 120 * time.Millisecond

	PickupSoundNoteDuration = 70 * time.Millisecond
	PickupSoundAttack       = 3 * time.Millisecond
	PickupSoundRelease      = 50 * time.Millisecond

	LevelUpSoundNoteDuration = 90 * time.Millisecond
	LevelUpSoundAttack       = 5 * time.Millisecond
	LevelUpSoundRelease      = 60 * time.Millisecond

	KillSoundNoteDuration = 50 * time.Millisecond
	KillSoundAttack       = 2 * time.Millisecond
	KillSoundRelease      = 35 * time.Millisecond

	ShieldSoundDuration = 300 * time.Millisecond
	ShieldSoundAttack   = 40 * time.Millisecond
	ShieldSoundRelease  = 200 * time.Millisecond

	GameOverSoundDuration = 900 * time.Millisecond
	GameOverSoundAttack   = 10 * time.Millisecond
	GameOverSoundRelease  = 600 * time.Millisecond
)
