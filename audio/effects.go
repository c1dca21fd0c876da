package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/survivor/core"
	"github.com/lixenwraith/survivor/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a finite oscillator streamer
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack/release shaping
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with an attack/release envelope; output stops at duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: max(total-att-rel, 0),
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.totalSamples {
		return 0, false
	}
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales linearly; Log2(0) is -Inf so zero maps to Silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// sineTone takes d of the library sine generator, falling back to the local oscillator
func sineTone(freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return NewOscillator(freq, d, WaveSine, rate)
	}
	return beep.Take(rate.N(d), sine)
}

// notes plays freqs back to back, each shaped by the same envelope
func notes(freqs []float64, d, attack, release time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(freqs))
	for _, f := range freqs {
		var osc beep.Streamer
		if wave == WaveSine {
			osc = sineTone(f, d, rate)
		} else {
			osc = NewOscillator(f, d, wave, rate)
		}
		parts = append(parts, NewEnvelope(osc, d, attack, release, rate))
	}
	return beep.Seq(parts...)
}

// CreateShotSound is a short square blip
func CreateShotSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	osc := NewOscillator(880, parameter.ShotSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, parameter.ShotSoundDuration, parameter.ShotSoundAttack, parameter.ShotSoundRelease, rate)
	return newVolume(shaped, 0.35)
}

// CreateHitSound is a noise tick
func CreateHitSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	noise := NewOscillator(0, parameter.HitSoundDuration, WaveNoise, rate)
	shaped := NewEnvelope(noise, parameter.HitSoundDuration, parameter.HitSoundAttack, parameter.HitSoundRelease, rate)
	return newVolume(shaped, 0.4)
}

// CreateKillSound drops a fifth on a saw
func CreateKillSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	return newVolume(notes([]float64{330, 220}, parameter.KillSoundNoteDuration,
		parameter.KillSoundAttack, parameter.KillSoundRelease, WaveSaw, rate), 0.4)
}

// CreateHurtSound mixes a low saw with noise
func CreateHurtSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.HurtSoundDuration
	saw := NewEnvelope(NewOscillator(110, d, WaveSaw, rate), d, parameter.HurtSoundAttack, parameter.HurtSoundRelease, rate)
	noise := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, parameter.HurtSoundAttack, parameter.HurtSoundRelease, rate)
	return beep.Mix(newVolume(saw, 0.6), newVolume(noise, 0.25))
}

// CreatePickupSound is a rising major third
func CreatePickupSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	return newVolume(notes([]float64{1046.5, 1318.51}, parameter.PickupSoundNoteDuration,
		parameter.PickupSoundAttack, parameter.PickupSoundRelease, WaveSine, rate), 0.6)
}

// CreateLevelUpSound arpeggiates a major triad
func CreateLevelUpSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	return newVolume(notes([]float64{523.25, 659.25, 783.99, 1046.5}, parameter.LevelUpSoundNoteDuration,
		parameter.LevelUpSoundAttack, parameter.LevelUpSoundRelease, WaveSine, rate), 0.6)
}

// CreateShieldSound layers a fifth over a noise swell
func CreateShieldSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.ShieldSoundDuration
	low := NewEnvelope(sineTone(440, d, rate), d, parameter.ShieldSoundAttack, parameter.ShieldSoundRelease, rate)
	high := NewEnvelope(sineTone(660, d, rate), d, parameter.ShieldSoundAttack, parameter.ShieldSoundRelease, rate)
	air := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, parameter.ShieldSoundAttack, parameter.ShieldSoundRelease, rate)
	return beep.Mix(newVolume(low, 0.4), newVolume(high, 0.3), newVolume(air, 0.1))
}

// CreateGameOverSound descends through a minor triad
func CreateGameOverSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	step := parameter.GameOverSoundDuration / 3
	return newVolume(notes([]float64{329.63, 261.63, 196.0}, step,
		parameter.GameOverSoundAttack, step/2, WaveSaw, rate), 0.5)
}

var soundBuilders = [core.SoundTypeCount]func(*Config) beep.Streamer{
	core.SoundShot:     CreateShotSound,
	core.SoundHit:      CreateHitSound,
	core.SoundKill:     CreateKillSound,
	core.SoundHurt:     CreateHurtSound,
	core.SoundPickup:   CreatePickupSound,
	core.SoundLevelUp:  CreateLevelUpSound,
	core.SoundShield:   CreateShieldSound,
	core.SoundGameOver: CreateGameOverSound,
}

// GetSoundEffect returns a fresh streamer for st scaled by its configured volume, nil if unknown
func GetSoundEffect(st core.SoundType, cfg *Config) beep.Streamer {
	if st < 0 || st >= core.SoundTypeCount {
		return nil
	}
	return newVolume(soundBuilders[st](cfg), cfg.EffectVolumes[st]*cfg.MasterVolume)
}
