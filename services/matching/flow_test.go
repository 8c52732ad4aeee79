package matching

import (
	"sync"
	"testing"
	"time"

	"washly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeClock is a manual scheduler: timers fire only when the test advances
// simulated time, in deadline order. Callbacks may schedule new timers.
type fakeClock struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*fakeTimer
}

type fakeTimer struct {
	clock    *fakeClock
	deadline time.Duration
	f        func()
	fired    bool
	stopped  bool
}

func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	return true
}

func (c *fakeClock) schedule(d time.Duration, f func()) TimerHandle {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{clock: c, deadline: c.now + d, f: f}
	c.timers = append(c.timers, t)
	return t
}

// advanceTo moves simulated time forward, firing due timers in order.
func (c *fakeClock) advanceTo(target time.Duration) {
	for {
		c.mu.Lock()
		var next *fakeTimer
		for _, t := range c.timers {
			if t.fired || t.stopped || t.deadline > target {
				continue
			}
			if next == nil || t.deadline < next.deadline {
				next = t
			}
		}
		if next == nil {
			c.now = target
			c.mu.Unlock()
			return
		}
		c.now = next.deadline
		next.fired = true
		f := next.f
		c.mu.Unlock()
		f()
	}
}

func testCandidates() []models.WasherDTO {
	mk := func(id, name string, status models.WasherStatus, price int) models.WasherDTO {
		return models.WasherDTO{Washer: models.Washer{ID: id, Name: name, Status: status, Price: price}}
	}
	return []models.WasherDTO{
		mk("w1", "Karim B.", models.WasherAvailable, 3000),
		mk("w2", "Yacine T.", models.WasherBusy, 3200),
		mk("w3", "Sofiane M.", models.WasherAvailable, 2800),
		mk("w4", "Amine K.", models.WasherAvailable, 2700),
	}
}

func startTestFlow(t *testing.T) (*Flow, *fakeClock) {
	t.Helper()
	clock := &fakeClock{}
	flow := StartFlow("flow-test", testCandidates(), clock.schedule, nil, zap.NewNop())
	return flow, clock
}

func TestFlowPhaseSequence(t *testing.T) {
	flow, clock := startTestFlow(t)

	snap := flow.Snapshot()
	assert.Equal(t, PhaseInitializing, snap.Phase)
	assert.Empty(t, snap.Candidates)

	tests := []struct {
		at         time.Duration
		wantPhase  Phase
		wantReveal int
	}{
		{2 * time.Second, PhaseSearching, 1},
		{6 * time.Second, PhaseAnalyzing, 2},
		{8 * time.Second, PhaseConnecting, 3},
		{11 * time.Second, PhaseFound, 4},
	}
	for _, tc := range tests {
		clock.advanceTo(tc.at)
		snap := flow.Snapshot()
		assert.Equal(t, tc.wantPhase, snap.Phase, "at t=%s", tc.at)
		assert.Len(t, snap.Candidates, tc.wantReveal, "at t=%s", tc.at)
	}
}

func TestFlowElapsedTickerIndependent(t *testing.T) {
	flow, clock := startTestFlow(t)

	clock.advanceTo(6 * time.Second)
	assert.Equal(t, 6, flow.Snapshot().Elapsed)

	// The ticker self-terminates at the ceiling; phases are long done.
	clock.advanceTo(40 * time.Second)
	assert.Equal(t, ElapsedCeiling, flow.Snapshot().Elapsed)
	assert.Equal(t, PhaseFound, flow.Snapshot().Phase)
}

func TestFlowSelectRules(t *testing.T) {
	flow, clock := startTestFlow(t)

	// Nothing revealed yet.
	_, err := flow.Select("w1")
	assert.ErrorIs(t, err, ErrWasherNotRevealed)

	// Early selection against a partially-revealed list is allowed.
	clock.advanceTo(2 * time.Second)
	snap, err := flow.Select("w1")
	require.NoError(t, err)
	assert.Equal(t, "w1", snap.Selected)

	// Busy washers are never selectable.
	clock.advanceTo(4 * time.Second)
	_, err = flow.Select("w2")
	assert.ErrorIs(t, err, ErrWasherUnavailable)

	// Re-selection replaces the previous choice.
	clock.advanceTo(11 * time.Second)
	snap, err = flow.Select("w3")
	require.NoError(t, err)
	assert.Equal(t, "w3", snap.Selected)
}

func TestFlowConfirm(t *testing.T) {
	flow, clock := startTestFlow(t)

	_, err := flow.Confirm()
	assert.ErrorIs(t, err, ErrNoSelection)

	clock.advanceTo(2 * time.Second)
	_, err = flow.Select("w1")
	require.NoError(t, err)

	washer, err := flow.Confirm()
	require.NoError(t, err)
	assert.Equal(t, "w1", washer.ID)
	assert.Equal(t, 3000, washer.Price)

	// Confirm is terminal: later triggers cannot advance the phase.
	clock.advanceTo(30 * time.Second)
	assert.Equal(t, PhaseSearching, flow.Snapshot().Phase)
}

func TestFlowCancelStopsAllTimers(t *testing.T) {
	flow, clock := startTestFlow(t)

	clock.advanceTo(3 * time.Second)
	before := flow.Snapshot()
	assert.Equal(t, PhaseSearching, before.Phase)
	assert.Equal(t, 3, before.Elapsed)

	flow.Cancel()

	// No further mutation regardless of additional elapsed time.
	clock.advanceTo(60 * time.Second)
	after := flow.Snapshot()
	assert.Equal(t, before.Phase, after.Phase)
	assert.Equal(t, before.Elapsed, after.Elapsed)
	assert.Len(t, after.Candidates, len(before.Candidates))

	_, err := flow.Select("w1")
	assert.ErrorIs(t, err, ErrFlowCancelled)
	_, err = flow.Confirm()
	assert.ErrorIs(t, err, ErrFlowCancelled)
}
