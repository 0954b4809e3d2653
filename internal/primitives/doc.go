// Package primitives provides the foundational value types for the collision engine.
//
// Everything here is a plain value: Vec2, Particle, Event and Config are copied,
// never shared, so the engine can snapshot state with a slice copy.
//
// Core invariants:
// - Event is immutable once created
// - Particle.Collisions only increases outside of a rollback restore
// - Zero-allocation vector math
package primitives
