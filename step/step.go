// Package step defines the uniform snapshot model every algorithm engine
// emits, and the Trace cursor that owns a fully-materialized step list.
//
// Engines record family-specific payloads (a partial hull, a sweep state, a
// half-built tree); the shared event-set projection is produced by each
// payload, so a single generic consumer can render any algorithm's queue,
// active set, and output without per-algorithm logic.
package step

// Status tags an event-set item. The vocabulary is closed; legacy synonyms
// from older traces collapse onto it via CanonicalStatus.
type Status string

const (
	Pending   Status = "pending"
	Current   Status = "current"
	Active    Status = "active"
	New       Status = "new"
	Processed Status = "processed"
	Kept      Status = "kept"
	Completed Status = "completed"
	Rejected  Status = "rejected"
)

// CanonicalStatus collapses legacy synonyms onto the canonical vocabulary.
// Unknown strings map to Pending.
func CanonicalStatus(s string) Status {
	switch Status(s) {
	case Pending, Current, Active, New, Processed, Kept, Completed, Rejected:
		return Status(s)
	}
	switch s {
	case "accepted":
		return Kept
	case "candidate":
		return Pending
	case "testing":
		return Current
	case "intersecting":
		return Active
	}
	return Pending
}

// Item is one row of an event-set table. Label carries enough formatted
// geometric data for a consumer to render the row without engine access.
type Item struct {
	Label  string
	Status Status
}

// EventSets is the three-bucket projection shared by every engine: items not
// yet processed, items live in the working set, and items already finalized.
type EventSets struct {
	Queue  []Item
	Active []Item
	Output []Item
}

// Payload is the family-specific snapshot variant recorded by an engine. The
// uniform Step record is projected from it at record time; the payload itself
// stays attached for consumers that want the typed geometry.
type Payload interface {
	Describe() string
	Events() EventSets
}

// Backtracker is implemented by payloads describing an undo of earlier
// progress, such as a Graham scan pop.
type Backtracker interface {
	IsBacktrack() bool
}

// Step is one immutable instant of an algorithm's execution. Steps are
// append-only during computation and never mutated afterward, which is what
// makes a trace safely replayable frame by frame.
type Step struct {
	Description string
	Backtrack   bool
	Events      EventSets
	Payload     Payload
}

// Make projects a payload into a Step.
func Make(p Payload) Step {
	s := Step{
		Description: p.Describe(),
		Events:      p.Events(),
		Payload:     p,
	}
	if b, ok := p.(Backtracker); ok {
		s.Backtrack = b.IsBacktrack()
	}
	return s
}
