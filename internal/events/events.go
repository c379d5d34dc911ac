// Package events carries the structured observability stream of a
// simulation run: stall warnings, completed constructions and scheduler
// decisions.
package events

import (
	"github.com/google/uuid"

	"github.com/napolitain/solver-bar/internal/economy"
)

// EventType represents the type of simulation event
type EventType int

const (
	EventConstructionCompleted EventType = iota
	EventConstructionFailed
	EventStallWarning
	EventConversion
	EventSchedulerWait
	EventSchedulerFallback
	EventSchedulerSkipped
	EventSchedulerExhausted
	EventAdvice
)

// String returns a string representation of the event type
func (et EventType) String() string {
	switch et {
	case EventConstructionCompleted:
		return "ConstructionCompleted"
	case EventConstructionFailed:
		return "ConstructionFailed"
	case EventStallWarning:
		return "StallWarning"
	case EventConversion:
		return "Conversion"
	case EventSchedulerWait:
		return "SchedulerWait"
	case EventSchedulerFallback:
		return "SchedulerFallback"
	case EventSchedulerSkipped:
		return "SchedulerSkipped"
	case EventSchedulerExhausted:
		return "SchedulerExhausted"
	case EventAdvice:
		return "Advice"
	default:
		return "Unknown"
	}
}

// Resource names used on stall warnings
const (
	ResourceMetal  = "metal"
	ResourceEnergy = "energy"
)

// Event is one entry of the observability stream
type Event struct {
	Seq   int64
	RunID uuid.UUID
	Type  EventType

	Time     float64 // Simulation time the event refers to
	Object   string
	Resource string // Set on stall warnings

	Snapshot   economy.Snapshot
	BuildTimes economy.BuildTimes
	Conversion economy.Conversion

	Theoretical bool
	Message     string
	Err         error
}

// Sink consumes events
type Sink interface {
	Emit(e Event)
}

// SinkFunc adapts a function to Sink
type SinkFunc func(Event)

// Emit calls f(e)
func (f SinkFunc) Emit(e Event) { f(e) }

// Discard drops every event
var Discard Sink = SinkFunc(func(Event) {})

// Multi fans an event out to several sinks in order
type Multi []Sink

// Emit forwards e to every sink
func (m Multi) Emit(e Event) {
	for _, s := range m {
		if s != nil {
			s.Emit(e)
		}
	}
}

// Stream stamps events with a run ID and sequence number before
// forwarding them
type Stream struct {
	runID uuid.UUID
	seq   int64
	sink  Sink
}

// NewStream creates a stream with a fresh run ID
func NewStream(sink Sink) *Stream {
	if sink == nil {
		sink = Discard
	}
	return &Stream{runID: uuid.New(), sink: sink}
}

// RunID returns the identifier shared by all events of this stream
func (s *Stream) RunID() uuid.UUID {
	return s.runID
}

// Emit stamps and forwards e
func (s *Stream) Emit(e Event) {
	s.seq++
	e.Seq = s.seq
	e.RunID = s.runID
	s.sink.Emit(e)
}
