package simworld

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/google/uuid"
)

// EventKind classifies what the scheduler decided at a tick.
type EventKind int

const (
	EventAdmit EventKind = iota
	EventDispatch
	EventPreempt
	EventResume
	EventFinish
	EventIdle
)

func (k EventKind) String() string {
	switch k {
	case EventAdmit:
		return "Admit"
	case EventDispatch:
		return "Dispatch"
	case EventPreempt:
		return "Preempt"
	case EventResume:
		return "Resume"
	case EventFinish:
		return "Finish"
	case EventIdle:
		return "Idle"
	default:
		return "Unknown"
	}
}

// TraceEvent is one row of the dispatch trace.
type TraceEvent struct {
	Tick     uint
	Kind     EventKind
	TaskID   uint
	Priority uint
	Work     uint
}

// TraceWriter streams trace events as CSV, one simulation run per file.
type TraceWriter struct {
	runID  uuid.UUID
	writer *csv.Writer
}

// NewTraceWriter writes the CSV header and returns the writer.
func NewTraceWriter(w io.Writer, runID uuid.UUID) (*TraceWriter, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"run_id", "tick", "event", "task_id", "priority", "work"}); err != nil {
		return nil, fmt.Errorf("write trace header: %w", err)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return nil, fmt.Errorf("flush trace header: %w", err)
	}
	return &TraceWriter{runID: runID, writer: cw}, nil
}

// Write appends one event row.
func (t *TraceWriter) Write(ev TraceEvent) error {
	record := []string{
		t.runID.String(),
		strconv.FormatUint(uint64(ev.Tick), 10),
		ev.Kind.String(),
		strconv.FormatUint(uint64(ev.TaskID), 10),
		strconv.FormatUint(uint64(ev.Priority), 10),
		strconv.FormatUint(uint64(ev.Work), 10),
	}
	if err := t.writer.Write(record); err != nil {
		return fmt.Errorf("write trace event: %w", err)
	}
	return nil
}

// Flush drains buffered rows to the underlying writer.
func (t *TraceWriter) Flush() error {
	t.writer.Flush()
	return t.writer.Error()
}
