package events

// Recorder keeps every event in memory
type Recorder struct {
	events []Event
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{events: make([]Event, 0)}
}

// Emit appends e
func (r *Recorder) Emit(e Event) {
	r.events = append(r.events, e)
}

// Events returns a copy of the recorded events
func (r *Recorder) Events() []Event {
	result := make([]Event, len(r.events))
	copy(result, r.events)
	return result
}

// OfType returns the recorded events of type et
func (r *Recorder) OfType(et EventType) []Event {
	var result []Event
	for _, e := range r.events {
		if e.Type == et {
			result = append(result, e)
		}
	}
	return result
}

// Count returns the number of recorded events of type et
func (r *Recorder) Count(et EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == et {
			n++
		}
	}
	return n
}

// Len returns the number of recorded events
func (r *Recorder) Len() int {
	return len(r.events)
}

// Clear removes all recorded events
func (r *Recorder) Clear() {
	r.events = r.events[:0]
}
