// Event provides the immutable collision prediction primitive.
//
// An Event is produced by the predictor and consumed once by the driver, or
// discarded when stale. The RevA/RevB fields hold the participants' revision
// counters at schedule time; the driver compares them against the live
// counters when the event is popped.
//
// # Immutability
//
// Event fields are exported for read-only use. Consumers MUST NOT modify
// them after construction; use NewWallEvent or NewPairEvent.
package primitives

import "fmt"

// EventKind identifies what an Event resolves to.
type EventKind uint8

const (
	WallX EventKind = iota // bounce off the left or right wall
	WallY                  // bounce off the bottom or top wall
	Pair                   // particle-particle collision
)

// Sentinels for the unused B slot of wall events.
const (
	NoParticle = -1
	NoRevision = -1
)

func (k EventKind) String() string {
	switch k {
	case WallX:
		return "wall-x"
	case WallY:
		return "wall-y"
	case Pair:
		return "pair"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// ParseEventKind is the inverse of EventKind.String.
func ParseEventKind(s string) (EventKind, error) {
	for _, k := range []EventKind{WallX, WallY, Pair} {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown event kind %q", s)
}

// IsWall reports whether k only involves participant A.
func (k EventKind) IsWall() bool {
	return k == WallX || k == WallY
}

// Event is a predicted collision, valid while both revisions still match.
type Event struct {
	Time float64 // absolute simulation time
	A    int     // participant A
	B    int     // participant B, NoParticle for walls
	Kind EventKind
	RevA int // A's revision counter at schedule time
	RevB int // B's revision counter at schedule time, NoRevision for walls
}

// NewWallEvent creates a wall-X or wall-Y event for particle a.
func NewWallEvent(t float64, a int, kind EventKind, revA int) Event {
	return Event{
		Time: t,
		A:    a,
		B:    NoParticle,
		Kind: kind,
		RevA: revA,
		RevB: NoRevision,
	}
}

// NewPairEvent creates a particle-particle event. a and b are stored as given;
// callers pass them in canonical (min, max) order.
func NewPairEvent(t float64, a, b int, revA, revB int) Event {
	return Event{
		Time: t,
		A:    a,
		B:    b,
		Kind: Pair,
		RevA: revA,
		RevB: revB,
	}
}

// Before reports whether e fires strictly earlier than o.
func (e Event) Before(o Event) bool {
	return e.Time < o.Time
}

func (e Event) String() string {
	if e.Kind.IsWall() {
		return fmt.Sprintf("%s p%d @%.6f", e.Kind, e.A, e.Time)
	}
	return fmt.Sprintf("%s p%d/p%d @%.6f", e.Kind, e.A, e.B, e.Time)
}
