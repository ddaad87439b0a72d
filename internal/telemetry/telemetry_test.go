package telemetry

import (
	"bufio"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/papapumpkin/ndm/internal/progress"
)

func readEvents(t *testing.T, path string) []Event {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()

	var events []Event
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var evt Event
		if err := json.Unmarshal(scanner.Bytes(), &evt); err != nil {
			t.Fatalf("invalid JSONL line %q: %v", scanner.Text(), err)
		}
		events = append(events, evt)
	}
	if err := scanner.Err(); err != nil {
		t.Fatal(err)
	}
	return events
}

func TestNewEmitter_CreatesFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "events.jsonl")

	em, err := NewEmitter(path)
	if err != nil {
		t.Fatalf("NewEmitter(%q): %v", path, err)
	}
	defer em.Close()

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file to exist at %q: %v", path, err)
	}
}

func TestNewEmitter_ErrorOnBadPath(t *testing.T) {
	t.Parallel()
	_, err := NewEmitter("/nonexistent/dir/events.jsonl")
	if err == nil {
		t.Fatal("expected error for bad path, got nil")
	}
	if !strings.Contains(err.Error(), "telemetry: open") {
		t.Errorf("expected wrapped error, got: %v", err)
	}
}

func TestEmit_WritesValidJSONL(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "events.jsonl")

	em, err := NewEmitter(path)
	if err != nil {
		t.Fatalf("NewEmitter: %v", err)
	}
	ts := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	if err := em.Emit(Event{Timestamp: ts, Kind: KindCommandStart, Command: "sync"}); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if err := em.Emit(Event{Kind: KindCommandDone, Command: "sync"}); err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if err := em.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	events := readEvents(t, path)
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if !events[0].Timestamp.Equal(ts) {
		t.Errorf("events[0].Timestamp = %v, want %v", events[0].Timestamp, ts)
	}
	if events[1].Timestamp.IsZero() {
		t.Error("events[1] was not stamped")
	}
}

func TestEmit_AppendsAcrossEmitters(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "events.jsonl")

	for i := 0; i < 2; i++ {
		em, err := NewEmitter(path)
		if err != nil {
			t.Fatalf("NewEmitter: %v", err)
		}
		if err := em.Emit(Event{Kind: KindCommandStart}); err != nil {
			t.Fatalf("Emit: %v", err)
		}
		if err := em.Close(); err != nil {
			t.Fatalf("Close: %v", err)
		}
	}
	if n := len(readEvents(t, path)); n != 2 {
		t.Errorf("got %d events, want 2", n)
	}
}

func TestNilEmitter_NoOp(t *testing.T) {
	t.Parallel()
	var em *Emitter
	if err := em.Emit(Event{Kind: KindStepStart}); err != nil {
		t.Errorf("nil Emit returned %v", err)
	}
	if err := em.Close(); err != nil {
		t.Errorf("nil Close returned %v", err)
	}
	StepRecorder{Emitter: em}.StepStart("no-op")
}

func TestStepRecorder_RecordsSteps(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "events.jsonl")
	em, err := NewEmitter(path)
	if err != nil {
		t.Fatalf("NewEmitter: %v", err)
	}

	var obs progress.Observer = StepRecorder{Emitter: em, Command: "install"}
	_ = progress.Step(obs, "Installing packages...", func() error { return errors.New("pip exited with status 1") })
	if err := em.Close(); err != nil {
		t.Fatal(err)
	}

	events := readEvents(t, path)
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].Kind != KindStepStart || events[0].Step != "Installing packages..." || events[0].Command != "install" {
		t.Errorf("events[0] = %+v", events[0])
	}
	if events[1].Kind != KindStepDone || events[1].Error != "pip exited with status 1" {
		t.Errorf("events[1] = %+v", events[1])
	}
}
