// Package realtime plays a collision simulation back against the wall clock.
//
// The engine itself jumps from event to event and has no notion of frames.
// A Player adapts it to fixed time-step playback:
//   - Every tick advances simulated time by a fixed step (RunUntil)
//   - Each tick emits a Frame with a copy of the particle state
//   - Frames are delivered without blocking; slow readers lose frames
//   - Playback ends by itself at the simulation end time
//
// # Example Usage
//
//	sim := collisionx.New(cfg, particles)
//	p := realtime.NewPlayer(sim, realtime.Config{
//		TickRate: 16667 * time.Microsecond, // 60 FPS
//		TimeStep: 1.0 / 60,                 // real-time speed
//	})
//	p.Start(ctx)
//	for f := range p.Frames() {
//		draw(f.Particles)
//	}
//
// # Determinism
//
// Frame contents depend only on the initial scene and the time step, never
// on wall-clock jitter: a late tick still advances by exactly TimeStep.
// Step drives the same logic synchronously, which is what tests and offline
// renderers use.
//
// # Ownership
//
// A Player owns its Simulation behind a mutex. Snapshot and Undo are the
// only safe ways to touch the Simulation while playback runs.
package realtime
