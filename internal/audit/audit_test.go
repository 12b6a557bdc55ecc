package audit

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestLogger_LogAndEvents(t *testing.T) {
	dir := t.TempDir()
	logger := NewLogger(dir)

	now := time.Now().Truncate(time.Millisecond)

	events := []Event{
		{Timestamp: now, Type: EventCompose, Mode: "development", Presets: []string{"analyze"}, Output: "-"},
		{Timestamp: now.Add(time.Second), Type: EventRun, Mode: "production", Output: ".packcfg/webpack.config.json", Details: "webpack"},
		{Timestamp: now.Add(2 * time.Second), Type: EventError, Mode: "staging", Details: "unknown mode: staging"},
	}

	for _, e := range events {
		if err := logger.Log(e); err != nil {
			t.Fatalf("Log failed: %v", err)
		}
	}

	result, err := logger.Events(0)
	if err != nil {
		t.Fatalf("Events failed: %v", err)
	}

	if len(result) != len(events) {
		t.Fatalf("got %d events, want %d", len(result), len(events))
	}

	for i, e := range result {
		if !e.Timestamp.Equal(events[i].Timestamp) {
			t.Errorf("event %d: timestamp = %v, want %v", i, e.Timestamp, events[i].Timestamp)
		}
		e.Timestamp = events[i].Timestamp
		if diff := cmp.Diff(events[i], e); diff != "" {
			t.Errorf("event %d mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestLogger_EventsEmpty(t *testing.T) {
	logger := NewLogger(t.TempDir())

	result, err := logger.Events(0)
	if err != nil {
		t.Fatalf("Events failed: %v", err)
	}
	if len(result) != 0 {
		t.Errorf("got %d events, want 0", len(result))
	}
}

func TestLogger_TimestampDefaults(t *testing.T) {
	logger := NewLogger(t.TempDir())

	if err := logger.Log(Event{Type: EventCompose, Mode: "production"}); err != nil {
		t.Fatalf("Log failed: %v", err)
	}

	events, err := logger.Events(0)
	if err != nil {
		t.Fatalf("Events failed: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].Timestamp.IsZero() {
		t.Error("timestamp should be set automatically")
	}
}

func TestLogger_Limit(t *testing.T) {
	logger := NewLogger(t.TempDir())

	base := time.Now()
	for i := 0; i < 5; i++ {
		logger.Log(Event{
			Timestamp: base.Add(time.Duration(i) * time.Second),
			Type:      EventCompose,
			Details:   string(rune('A' + i)),
		})
	}

	events, _ := logger.Events(2)
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].Details != "D" || events[1].Details != "E" {
		t.Errorf("got %q, %q; want the newest two", events[0].Details, events[1].Details)
	}

	all, _ := logger.Events(10)
	if len(all) != 5 {
		t.Errorf("got %d events, want 5", len(all))
	}
}

func TestLogger_SkipsMalformedLines(t *testing.T) {
	dir := t.TempDir()
	logger := NewLogger(dir)

	logger.Log(Event{Type: EventCompose})
	f, err := os.OpenFile(filepath.Join(dir, FileName), os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		t.Fatal(err)
	}
	f.WriteString("not json\n\n")
	f.Close()
	logger.Log(Event{Type: EventRun})

	events, err := logger.Events(0)
	if err != nil {
		t.Fatalf("Events failed: %v", err)
	}
	if len(events) != 2 {
		t.Errorf("got %d events, want 2", len(events))
	}
}

func TestLogger_Clear(t *testing.T) {
	logger := NewLogger(t.TempDir())

	logger.Log(Event{Type: EventCompose})

	if err := logger.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	events, err := logger.Events(0)
	if err != nil {
		t.Fatalf("Events failed: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("got %d events after clear, want 0", len(events))
	}

	// Clearing again should not error
	if err := logger.Clear(); err != nil {
		t.Errorf("Clear should not error without a log: %v", err)
	}
}
