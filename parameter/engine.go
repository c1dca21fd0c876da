package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the frontend frame interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta clamps a single frame's delta after stalls (window drag, suspend)
	MaxFrameDelta = 250 * time.Millisecond

	// EventDispatchIterations bounds cascaded event settling per dispatch
	EventDispatchIterations = 8
)

// ECS & Resources Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 1024

	// EventBufferMask is the bitmask for fast modulo operations (1024 - 1)
	EventBufferMask = 1023
)
