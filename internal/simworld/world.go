package simworld

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/golang-collections/collections/queue"
	"github.com/google/uuid"

	"schedkit/internal/simtask"
	"schedkit/pkg/sched"
)

// Policy names the CLI and config accept.
const (
	PolicyFIFO       = "fifo"
	PolicyRoundRobin = "rr"
	PolicyPriority   = "priority-rr"
	PolicyMLFQ       = "mlfq"
	PolicyEDF        = "edf"
)

// PolicyNames lists the supported policies in display order.
func PolicyNames() []string {
	return []string{PolicyFIFO, PolicyRoundRobin, PolicyPriority, PolicyMLFQ, PolicyEDF}
}

// BuildScheduler assembles the sample scheduler for a policy name.
// EDF schedules realtime tasks and is built inside the EDF run path.
func BuildScheduler(policy string, quanta simtask.QuantumTable, idle *simtask.Task) (*sched.Scheduler[*simtask.Task], error) {
	switch policy {
	case PolicyFIFO:
		return sched.NewFIFO(idle), nil
	case PolicyRoundRobin:
		return sched.NewRoundRobin(idle), nil
	case PolicyPriority:
		return sched.NewPrioritizedRoundRobin(idle), nil
	case PolicyMLFQ:
		return sched.NewMLFQ(quanta.Specifier(), idle), nil
	default:
		return nil, fmt.Errorf("unknown policy %q", policy)
	}
}

// Report summarizes one simulation run.
type Report struct {
	RunID       uuid.UUID
	Policy      string
	Ticks       uint
	Completions map[uint]uint // task id -> finish tick
}

// World replays a workload against an assembled scheduler, playing the
// host kernel's part: it owns the running task, fires timer interrupts,
// admits arrivals, and retires tasks whose work is done.
type World struct {
	cfg   Config
	log   *slog.Logger
	trace *TraceWriter
	runID uuid.UUID
}

// NewWorld creates a world for one run. trace may be nil; when present,
// the world adopts its run id so the report and the CSV rows agree.
func NewWorld(cfg Config, log *slog.Logger, trace *TraceWriter) *World {
	runID := uuid.New()
	if trace != nil {
		runID = trace.runID
	}
	return &World{
		cfg:   cfg,
		log:   log,
		trace: trace,
		runID: runID,
	}
}

// Run replays the configured workload under the named policy.
func (w *World) Run(ctx context.Context, policy string) (*Report, error) {
	if policy == PolicyEDF {
		return w.runEDF(ctx)
	}

	idle := simtask.New(0, simtask.MinPriority, 0)
	scheduler, err := BuildScheduler(policy, w.cfg.Quanta, idle)
	if err != nil {
		return nil, err
	}

	arrivals := w.arrivalQueue()
	remaining := arrivals.Len()

	report := &Report{
		RunID:       w.runID,
		Policy:      policy,
		Completions: make(map[uint]uint),
	}
	pacer := w.startPacer()
	if pacer != nil {
		defer pacer.Stop()
	}

	current := idle
	for tick := uint(0); tick < w.cfg.MaxTicks; tick++ {
		if err := w.awaitTick(ctx, pacer); err != nil {
			return report, err
		}
		report.Ticks = tick + 1

		// Admit every arrival due at this tick.
		for arrivals.Len() > 0 && arrivals.Peek().(TaskSpec).Arrival <= tick {
			spec := arrivals.Dequeue().(TaskSpec)
			task := simtask.New(spec.ID, spec.Priority, spec.Work)
			if policy == PolicyMLFQ {
				// A newly created task may be dispatched without ever
				// entering the ready queue, so it needs its first
				// allotment up front.
				task.AllocateTicks(simtask.QuantumTable(w.cfg.Quanta).Specifier()(task.Priority()))
			}
			w.record(TraceEvent{Tick: tick, Kind: EventAdmit, TaskID: task.ID, Priority: task.Priority(), Work: task.Work})
			current = w.transition(tick, current, scheduler.OnTaskCreated(current, task))
		}

		if current == idle {
			current = w.transition(tick, current, scheduler.OnTimerInterrupt(current))
			if current == idle && remaining == 0 {
				break
			}
			continue
		}

		// The running task burns one tick of work.
		current.Work--
		if current.Work == 0 {
			w.record(TraceEvent{Tick: tick, Kind: EventFinish, TaskID: current.ID, Priority: current.Priority()})
			report.Completions[current.ID] = tick + 1
			remaining--
			current = w.transition(tick, current, scheduler.OnTaskFinished(current))
			continue
		}

		current = w.transition(tick, current, scheduler.OnTimerInterrupt(current))
	}

	w.log.Info("simulation finished",
		"run_id", w.runID, "policy", policy,
		"ticks", report.Ticks, "completed", len(report.Completions))
	return report, w.flush()
}

// runEDF releases periodic task instances and replays them under the
// earliest-deadline-first assembly.
func (w *World) runEDF(ctx context.Context) (*Report, error) {
	idle := simtask.NewRealtime(0, math.MaxUint, 0)
	scheduler := sched.NewEDF(idle)

	report := &Report{
		RunID:       w.runID,
		Policy:      PolicyEDF,
		Completions: make(map[uint]uint),
	}
	pacer := w.startPacer()
	if pacer != nil {
		defer pacer.Stop()
	}

	current := idle
	for tick := uint(0); tick < w.cfg.MaxTicks; tick++ {
		if err := w.awaitTick(ctx, pacer); err != nil {
			return report, err
		}
		report.Ticks = tick + 1

		// Release one instance of every periodic task whose period
		// divides this tick.
		for _, spec := range w.cfg.Workload {
			if spec.Period == 0 || tick%spec.Period != 0 || tick < spec.Arrival {
				continue
			}
			instance := simtask.NewRealtime(spec.ID, tick+spec.Deadline, spec.Work)
			w.record(TraceEvent{Tick: tick, Kind: EventAdmit, TaskID: instance.ID, Work: instance.Work})
			next := scheduler.OnTaskCreated(current, instance)
			current = w.transitionRT(tick, current, next)
		}

		if current == idle {
			continue
		}

		current.Work--
		if current.Work == 0 {
			w.record(TraceEvent{Tick: tick, Kind: EventFinish, TaskID: current.ID})
			report.Completions[current.ID] = tick + 1
			current = w.transitionRT(tick, current, scheduler.OnTaskFinished(current))
			continue
		}
		current = w.transitionRT(tick, current, scheduler.OnTimerInterrupt(current))
	}

	w.log.Info("simulation finished",
		"run_id", w.runID, "policy", PolicyEDF,
		"ticks", report.Ticks, "completed", len(report.Completions))
	return report, w.flush()
}

// arrivalQueue sorts the workload by arrival tick and loads it into a
// FIFO queue the admission loop drains.
func (w *World) arrivalQueue() *queue.Queue {
	specs := make([]TaskSpec, len(w.cfg.Workload))
	copy(specs, w.cfg.Workload)
	sort.SliceStable(specs, func(i, j int) bool { return specs[i].Arrival < specs[j].Arrival })

	q := queue.New()
	for _, spec := range specs {
		q.Enqueue(spec)
	}
	return q
}

// startPacer returns a ticker pacing the run in real time, or nil when
// the configured interval asks for back-to-back ticks.
func (w *World) startPacer() *time.Ticker {
	if w.cfg.TickMS <= 0 {
		return nil
	}
	return time.NewTicker(time.Duration(w.cfg.TickMS) * time.Millisecond)
}

func (w *World) awaitTick(ctx context.Context, pacer *time.Ticker) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if pacer == nil {
		return nil
	}
	select {
	case <-pacer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// transition records the scheduler's decision and returns the new
// running task.
func (w *World) transition(tick uint, current, next *simtask.Task) *simtask.Task {
	if next == current {
		return current
	}
	kind := EventDispatch
	if next.ID == 0 {
		kind = EventIdle
	} else if current.ID != 0 {
		kind = EventPreempt
	}
	w.record(TraceEvent{Tick: tick, Kind: kind, TaskID: next.ID, Priority: next.Priority(), Work: next.Work})
	w.log.Debug("context switch", "tick", tick, "from", current.ID, "to", next.ID)
	return next
}

func (w *World) transitionRT(tick uint, current, next *simtask.RealtimeTask) *simtask.RealtimeTask {
	if next == current {
		return current
	}
	kind := EventDispatch
	if next.ID == 0 {
		kind = EventIdle
	} else if current.ID != 0 {
		kind = EventPreempt
	}
	w.record(TraceEvent{Tick: tick, Kind: kind, TaskID: next.ID, Work: next.Work})
	w.log.Debug("context switch", "tick", tick, "from", current.ID, "to", next.ID)
	return next
}

func (w *World) record(ev TraceEvent) {
	if w.trace == nil {
		return
	}
	if err := w.trace.Write(ev); err != nil {
		w.log.Warn("trace write failed", "error", err)
	}
}

func (w *World) flush() error {
	if w.trace == nil {
		return nil
	}
	return w.trace.Flush()
}
