package matching

import (
	"sync"
	"time"

	"washly/models"

	"go.uber.org/zap"
)

// TimerHandle is a cancellable pending trigger.
type TimerHandle interface {
	Stop() bool
}

// Scheduler arms a callback after a delay. The default is time.AfterFunc;
// tests inject a manual scheduler and drive simulated time.
type Scheduler func(d time.Duration, f func()) TimerHandle

// RealScheduler schedules on the wall clock.
func RealScheduler(d time.Duration, f func()) TimerHandle {
	return time.AfterFunc(d, f)
}

// FlowSnapshot is the externally visible state of a flow.
type FlowSnapshot struct {
	FlowID     string             `json:"flowId"`
	Phase      Phase              `json:"phase"`
	Elapsed    int                `json:"elapsed"`
	Candidates []models.WasherDTO `json:"candidates"`
	Selected   string             `json:"selected,omitempty"`
	Done       bool               `json:"done"`
}

// Flow is one simulated washer search. All phase triggers and the elapsed
// ticker are armed at construction; Cancel stops every pending timer, after
// which no callback can mutate the flow again.
type Flow struct {
	ID string

	mu         sync.Mutex
	phase      Phase
	candidates []models.WasherDTO
	revealed   int
	elapsed    int
	selected   string
	cancelled  bool
	done       bool
	timers     []TimerHandle
	startedAt  time.Time

	schedule Scheduler
	onChange func(FlowSnapshot)
	logger   *zap.Logger
}

// StartFlow builds a flow over the ranked candidate list and arms its timers.
// onChange is invoked after every internal state change; it may be nil.
func StartFlow(id string, candidates []models.WasherDTO, schedule Scheduler, onChange func(FlowSnapshot), logger *zap.Logger) *Flow {
	f := &Flow{
		ID:         id,
		phase:      PhaseInitializing,
		candidates: candidates,
		startedAt:  time.Now(),
		schedule:   schedule,
		onChange:   onChange,
		logger:     logger,
	}

	f.mu.Lock()
	for _, trigger := range phaseTriggers {
		if trigger.offset == 0 {
			continue // already in the initial phase
		}
		t := trigger
		f.timers = append(f.timers, schedule(t.offset, func() {
			f.enterPhase(t.phase)
		}))
	}
	// The elapsed counter is an independent timeline; it never gates or
	// resynchronizes with the phase triggers.
	f.timers = append(f.timers, schedule(time.Second, f.tick))
	f.mu.Unlock()

	logger.Info("matching flow started",
		zap.String("flow", id),
		zap.Int("candidates", len(candidates)))
	return f
}

func (f *Flow) enterPhase(p Phase) {
	f.mu.Lock()
	if f.cancelled || f.done {
		f.mu.Unlock()
		return
	}
	f.phase = p
	f.revealed = revealCount(p, len(f.candidates))
	snap := f.snapshotLocked()
	f.mu.Unlock()

	f.logger.Debug("matching flow phase",
		zap.String("flow", f.ID),
		zap.String("phase", string(p)),
		zap.Int("revealed", len(snap.Candidates)))
	f.notify(snap)
}

func (f *Flow) tick() {
	f.mu.Lock()
	if f.cancelled || f.done {
		f.mu.Unlock()
		return
	}
	f.elapsed++
	if f.elapsed < ElapsedCeiling {
		f.timers = append(f.timers, f.schedule(time.Second, f.tick))
	}
	snap := f.snapshotLocked()
	f.mu.Unlock()

	f.notify(snap)
}

func (f *Flow) notify(snap FlowSnapshot) {
	if f.onChange != nil {
		f.onChange(snap)
	}
}

// Snapshot returns the current visible state of the flow.
func (f *Flow) Snapshot() FlowSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshotLocked()
}

func (f *Flow) snapshotLocked() FlowSnapshot {
	return FlowSnapshot{
		FlowID:     f.ID,
		Phase:      f.phase,
		Elapsed:    f.elapsed,
		Candidates: append([]models.WasherDTO(nil), f.candidates[:f.revealed]...),
		Selected:   f.selected,
		Done:       f.done,
	}
}

// Select marks an available, already-revealed washer as the active selection.
// Selection is allowed in any phase; there is no wait-for-found guard.
func (f *Flow) Select(washerID string) (FlowSnapshot, error) {
	f.mu.Lock()
	if f.cancelled {
		f.mu.Unlock()
		return FlowSnapshot{}, ErrFlowCancelled
	}
	var found *models.WasherDTO
	for i := range f.candidates[:f.revealed] {
		if f.candidates[i].ID == washerID {
			found = &f.candidates[i]
			break
		}
	}
	if found == nil {
		f.mu.Unlock()
		return FlowSnapshot{}, ErrWasherNotRevealed
	}
	if found.Status != models.WasherAvailable {
		f.mu.Unlock()
		return FlowSnapshot{}, ErrWasherUnavailable
	}
	f.selected = washerID
	snap := f.snapshotLocked()
	f.mu.Unlock()

	f.notify(snap)
	return snap, nil
}

// Confirm finalizes the flow and returns the selected candidate. The flow is
// terminal afterwards; every pending timer is stopped.
func (f *Flow) Confirm() (models.WasherDTO, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cancelled {
		return models.WasherDTO{}, ErrFlowCancelled
	}
	if f.selected == "" {
		return models.WasherDTO{}, ErrNoSelection
	}
	var washer models.WasherDTO
	for _, c := range f.candidates {
		if c.ID == f.selected {
			washer = c
			break
		}
	}
	f.done = true
	f.stopTimersLocked()
	return washer, nil
}

// Cancel discards the flow. All pending phase triggers and ticks are stopped,
// so no further mutation of phase state or candidates can occur.
func (f *Flow) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cancelled {
		return
	}
	f.cancelled = true
	f.stopTimersLocked()
	f.logger.Info("matching flow cancelled", zap.String("flow", f.ID))
}

func (f *Flow) stopTimersLocked() {
	for _, t := range f.timers {
		t.Stop()
	}
	f.timers = nil
}
