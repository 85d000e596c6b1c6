package parameter

import "time"

// Frame Loop & Scheduler Timing
const (
	// PhysicsHz is the fixed simulation tick rate
	PhysicsHz = 60

	// PhysicsDT is the duration of one physics tick in seconds
	PhysicsDT = 1.0 / PhysicsHz

	// MaxFrameDelta caps a single frame's elapsed time to avoid spiral-of-death after stalls
	MaxFrameDelta = 0.05

	// MaxTicksPerFrame bounds physics sub-steps run inside one frame
	MaxTicksPerFrame = 4

	// AIInterval is the enemy steering and shooting step (15 Hz)
	AIInterval = 1.0 / 15

	// ParticleInterval is the complex particle behavior step (30 Hz)
	ParticleInterval = 1.0 / 30

	// UIInterval is the floating text and combo pulse step (20 Hz)
	UIInterval = 1.0 / 20

	// EffectsInterval is the screen effect step (20 Hz)
	EffectsInterval = 1.0 / 20

	// FrameInterval is the render cadence of the terminal binary
	FrameInterval = 16 * time.Millisecond
)

// Engine Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 1024

	// EventBufferMask is the bitmask for fast modulo operations (1024 - 1)
	EventBufferMask = 1023

	// ParticlePoolSize is the fixed particle pool capacity
	ParticlePoolSize = 1000

	// GridCellSize is the spatial grid cell edge at scale 1.0
	GridCellSize = 80
)
