package audio

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/lixenwraith/survivor/core"
	"github.com/lixenwraith/survivor/parameter"
)

// Config controls effect synthesis and mixing
type Config struct {
	Enabled       bool
	SampleRate    int
	MasterVolume  float64
	EffectVolumes [core.SoundTypeCount]float64
}

// DefaultConfig returns full effect volumes at the default master level
func DefaultConfig() *Config {
	cfg := &Config{
		Enabled:      true,
		SampleRate:   parameter.AudioSampleRate,
		MasterVolume: parameter.AudioMasterVolumeFloat,
	}
	for i := range cfg.EffectVolumes {
		cfg.EffectVolumes[i] = 1.0
	}
	// Hits fire every frame under piercing volleys
	cfg.EffectVolumes[core.SoundHit] = 0.5
	cfg.EffectVolumes[core.SoundShot] = 0.6
	return cfg
}

// LoadConfig overlays environment variables on DefaultConfig
func LoadConfig() *Config {
	cfg := DefaultConfig()

	if enabled := os.Getenv("SURVIVOR_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// 0-100
	if volume := os.Getenv("SURVIVOR_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = min(max(float64(val)/100.0, 0), 1)
		}
	}

	// JSON object keyed by sound name, e.g. {"shot":0.2,"hurt":1}
	if effectVols := os.Getenv("SURVIVOR_SFX_VOLUMES"); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for st := core.SoundType(0); st < core.SoundTypeCount; st++ {
				if v, ok := volumes[st.String()]; ok {
					cfg.EffectVolumes[st] = min(max(v, 0), 1)
				}
			}
		}
	}

	if sampleRate := os.Getenv("SURVIVOR_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}
