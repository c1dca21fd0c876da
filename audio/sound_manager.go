package audio

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/survivor/core"
	"github.com/lixenwraith/survivor/parameter"
)

// ErrDisabled is returned by Initialize when the config turns audio off
var ErrDisabled = errors.New("audio disabled")

// SoundManager mixes one-shot effects onto the speaker
type SoundManager struct {
	mu          sync.Mutex
	cfg         *Config
	mixer       *beep.Mixer
	initialized bool

	played  [core.SoundTypeCount]uint64
	dropped uint64
}

// NewSoundManager creates an idle manager; nil cfg uses DefaultConfig
func NewSoundManager(cfg *Config) *SoundManager {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &SoundManager{cfg: cfg}
}

// Initialize opens the speaker and starts the mixer. Calling it twice is a no-op
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrDisabled
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	sm.mixer = &beep.Mixer{}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Play queues a fresh effect. Returns false when uninitialized, unknown or over the voice cap
func (sm *SoundManager) Play(st core.SoundType) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return false
	}

	streamer := GetSoundEffect(st, sm.cfg)
	if streamer == nil {
		return false
	}

	speaker.Lock()
	if sm.mixer.Len() >= parameter.AudioMaxVoices {
		speaker.Unlock()
		sm.dropped++
		return false
	}
	sm.mixer.Add(streamer)
	speaker.Unlock()

	sm.played[st]++
	return true
}

// Played returns how many times st was queued
func (sm *SoundManager) Played(st core.SoundType) uint64 {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if st < 0 || st >= core.SoundTypeCount {
		return 0
	}
	return sm.played[st]
}

// Dropped returns requests rejected by the voice cap
func (sm *SoundManager) Dropped() uint64 {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.dropped
}

// Initialized reports whether the speaker is open
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Cleanup stops playback and releases the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	sm.mixer = nil
	sm.initialized = false
}
