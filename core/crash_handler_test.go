package core

import (
	"sync/atomic"
	"testing"
	"time"
)

// TestGoRunsFunction verifies Go executes the function on a new goroutine
func TestGoRunsFunction(t *testing.T) {
	var ran atomic.Bool
	done := make(chan struct{})
	Go(func() {
		ran.Store(true)
		close(done)
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("goroutine did not run")
	}
	if !ran.Load() {
		t.Error("function did not run")
	}
}

// TestHandleCrashNil verifies a nil recovery value is ignored
func TestHandleCrashNil(t *testing.T) {
	HandleCrash(nil)
}

// TestHandleZero verifies the zero handle is distinguishable from issued handles
func TestHandleZero(t *testing.T) {
	if !(Handle{}).IsZero() {
		t.Error("zero handle not reported as zero")
	}
	if (Handle{Index: 0, Gen: 1}).IsZero() {
		t.Error("issued handle reported as zero")
	}
}

// TestSoundTypeString covers named and out-of-range sounds
func TestSoundTypeString(t *testing.T) {
	if SoundShot.String() != "shot" {
		t.Errorf("SoundShot = %q", SoundShot.String())
	}
	if SoundType(99).String() != "unknown" {
		t.Errorf("out of range = %q", SoundType(99).String())
	}
}
