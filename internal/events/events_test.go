package events

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestEventTypeString(t *testing.T) {
	if EventStallWarning.String() != "StallWarning" {
		t.Errorf("Expected StallWarning, got %s", EventStallWarning)
	}
	if EventType(99).String() != "Unknown" {
		t.Errorf("Expected Unknown, got %s", EventType(99))
	}
}

func TestStreamStampsEvents(t *testing.T) {
	rec := NewRecorder()
	stream := NewStream(rec)

	stream.Emit(Event{Type: EventSchedulerWait})
	stream.Emit(Event{Type: EventConstructionCompleted, Object: "Wind"})

	got := rec.Events()
	if len(got) != 2 {
		t.Fatalf("Expected 2 events, got %d", len(got))
	}
	for i, e := range got {
		if e.Seq != int64(i+1) {
			t.Errorf("Event %d: expected seq %d, got %d", i, i+1, e.Seq)
		}
		if e.RunID != stream.RunID() || e.RunID == uuid.Nil {
			t.Errorf("Event %d: unexpected run id %s", i, e.RunID)
		}
	}
}

func TestStreamsHaveDistinctRunIDs(t *testing.T) {
	if NewStream(nil).RunID() == NewStream(nil).RunID() {
		t.Error("Expected distinct run ids")
	}
}

func TestMultiAndRecorder(t *testing.T) {
	a, b := NewRecorder(), NewRecorder()
	m := Multi{a, nil, b}

	m.Emit(Event{Type: EventStallWarning, Resource: ResourceEnergy})
	m.Emit(Event{Type: EventStallWarning, Resource: ResourceMetal})
	m.Emit(Event{Type: EventSchedulerFallback})

	if a.Len() != 3 || b.Len() != 3 {
		t.Errorf("Expected 3 events in both recorders, got %d and %d", a.Len(), b.Len())
	}
	if a.Count(EventStallWarning) != 2 {
		t.Errorf("Expected 2 stall warnings, got %d", a.Count(EventStallWarning))
	}
	if stalls := a.OfType(EventStallWarning); stalls[1].Resource != ResourceMetal {
		t.Errorf("Expected metal stall second, got %+v", stalls[1])
	}

	a.Clear()
	if a.Len() != 0 {
		t.Errorf("Expected empty recorder after Clear, got %d", a.Len())
	}
}

func TestLogSinkWritesStructuredRecords(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	stream := NewStream(NewLogSink(logger))

	stream.Emit(Event{Type: EventStallWarning, Object: "Mex", Resource: ResourceEnergy, Time: 12})
	stream.Emit(Event{Type: EventConstructionFailed, Object: "Nope", Err: errors.New("unknown object")})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 log lines, got %d: %s", len(lines), buf.String())
	}

	var first map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("Invalid JSON log line: %v", err)
	}
	if first["level"] != "WARN" {
		t.Errorf("Expected WARN level, got %v", first["level"])
	}
	if first["resource"] != "energy" || first["object"] != "Mex" {
		t.Errorf("Unexpected attributes: %v", first)
	}
	if first["component"] != "simulation" {
		t.Errorf("Expected component=simulation, got %v", first["component"])
	}

	var second map[string]any
	if err := json.Unmarshal([]byte(lines[1]), &second); err != nil {
		t.Fatalf("Invalid JSON log line: %v", err)
	}
	if second["level"] != "ERROR" || second["error"] != "unknown object" {
		t.Errorf("Unexpected failure record: %v", second)
	}
}
