package matching

import "time"

// Phase names one step of the simulated washer search.
type Phase string

const (
	PhaseInitializing Phase = "initializing"
	PhaseSearching    Phase = "searching"
	PhaseAnalyzing    Phase = "analyzing"
	PhaseConnecting   Phase = "connecting"
	PhaseFound        Phase = "found"
)

// phaseTrigger is one scheduled transition, offset from flow start. Every
// trigger is armed up front against the same origin; they are independent
// timers, not a chained sequence.
type phaseTrigger struct {
	phase  Phase
	offset time.Duration
}

var phaseTriggers = []phaseTrigger{
	{PhaseInitializing, 0},
	{PhaseSearching, 2 * time.Second},
	{PhaseAnalyzing, 4 * time.Second},
	{PhaseConnecting, 8 * time.Second},
	{PhaseFound, 11 * time.Second},
}

// ElapsedCeiling is where the display tick counter self-terminates, in seconds.
const ElapsedCeiling = 25

// revealCount returns how many candidates a phase exposes out of total.
// Reveal grows by one per phase from searching onward; found shows everything.
func revealCount(p Phase, total int) int {
	var n int
	switch p {
	case PhaseInitializing:
		n = 0
	case PhaseSearching:
		n = 1
	case PhaseAnalyzing:
		n = 2
	case PhaseConnecting:
		n = 3
	case PhaseFound:
		n = total
	}
	if n > total {
		n = total
	}
	return n
}
