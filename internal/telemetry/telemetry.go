// Package telemetry appends a JSONL record of each command and external
// step ndm runs, so a project's environment history can be audited.
package telemetry

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"
)

// Event kinds identify the type of telemetry event.
const (
	KindCommandStart = "command_start"
	KindCommandDone  = "command_done"
	KindStepStart    = "step_start"
	KindStepDone     = "step_done"
)

// Event is a single telemetry record.
type Event struct {
	Timestamp time.Time `json:"ts"`
	Kind      string    `json:"kind"`
	Command   string    `json:"command,omitempty"`
	Step      string    `json:"step,omitempty"`
	Error     string    `json:"error,omitempty"`
}

// Emitter writes telemetry events to a JSONL file. A nil *Emitter is a
// valid no-op emitter.
type Emitter struct {
	file *os.File
	enc  *json.Encoder
	mu   sync.Mutex
	now  func() time.Time
}

// NewEmitter creates a new Emitter that writes JSONL events to the file at
// path. The file is created if it does not exist, or appended to if it does.
func NewEmitter(path string) (*Emitter, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("telemetry: open %s: %w", path, err)
	}
	return &Emitter{
		file: f,
		enc:  json.NewEncoder(f),
		now:  time.Now,
	}, nil
}

// Emit writes a single event, stamping it when Timestamp is zero.
// Calling Emit on a nil Emitter is a no-op.
func (e *Emitter) Emit(evt Event) error {
	if e == nil {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if evt.Timestamp.IsZero() {
		evt.Timestamp = e.now()
	}
	if err := e.enc.Encode(evt); err != nil {
		return fmt.Errorf("telemetry: encode event: %w", err)
	}
	return nil
}

// Close closes the underlying file. Calling Close on a nil Emitter is a no-op.
func (e *Emitter) Close() error {
	if e == nil {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.file.Close(); err != nil {
		return fmt.Errorf("telemetry: close: %w", err)
	}
	return nil
}

// StepRecorder records progress steps of one command as events. It
// satisfies progress.Observer.
type StepRecorder struct {
	Emitter *Emitter
	Command string
}

// StepStart records the beginning of a step.
func (r StepRecorder) StepStart(desc string) {
	_ = r.Emitter.Emit(Event{Kind: KindStepStart, Command: r.Command, Step: desc})
}

// StepEnd records the end of a step and its failure, if any.
func (r StepRecorder) StepEnd(desc string, err error) {
	evt := Event{Kind: KindStepDone, Command: r.Command, Step: desc}
	if err != nil {
		evt.Error = err.Error()
	}
	_ = r.Emitter.Emit(evt)
}
