// Package timeline implements the animation phase state machine. Phase
// computation is a pure function of elapsed time, so the machine can be
// polled by whatever drives the frames (a timer tick, an event loop) instead
// of coordinating chained callbacks.
package timeline

import (
	"time"

	"github.com/fwojciec/codemotion"
)

// Schedule is the precomputed timing plan for one animation run: phase
// boundaries plus the per-token stagger for the adding phase.
type Schedule struct {
	timings codemotion.Timings
	added   int
}

// New creates a Schedule for a transition revealing addedCount tokens.
func New(t codemotion.Timings, addedCount int) *Schedule {
	if addedCount < 0 {
		addedCount = 0
	}
	return &Schedule{timings: t, added: addedCount}
}

// Timings returns the configuration this schedule was built from.
func (s *Schedule) Timings() codemotion.Timings {
	return s.timings
}

// PhaseAt returns the phase at the given elapsed time since the run started:
// positioning, then pause, then adding, then complete, each bounded by a
// strict "<" comparison on its end offset.
func (s *Schedule) PhaseAt(elapsed time.Duration) codemotion.Phase {
	t := s.timings
	switch {
	case elapsed < t.Positioning:
		return codemotion.PhasePositioning
	case elapsed < t.Positioning+t.Pause:
		return codemotion.PhasePause
	case elapsed < t.Positioning+t.Pause+t.Adding:
		return codemotion.PhaseAdding
	default:
		return codemotion.PhaseComplete
	}
}

// AddingStart returns the offset at which the adding phase begins.
func (s *Schedule) AddingStart() time.Duration {
	return s.timings.Positioning + s.timings.Pause
}

// StaggerDelay returns the delay of the nth added token (0-indexed, in
// new-sequence order), measured from the start of the adding phase.
func (s *Schedule) StaggerDelay(n int) time.Duration {
	return time.Duration(n) * s.timings.Stagger
}

// RevealedCount returns how many added tokens are visible at the given
// elapsed time. Before the adding phase none are; afterwards the nth token
// appears once its stagger delay has passed.
func (s *Schedule) RevealedCount(elapsed time.Duration) int {
	into := elapsed - s.AddingStart()
	if into < 0 {
		return 0
	}
	if s.timings.Stagger <= 0 {
		return s.added
	}
	n := int(into/s.timings.Stagger) + 1
	return min(n, s.added)
}

// Total returns the full run duration: the nominal phase sum, extended when
// the staggered reveal of a large added set outlasts the adding phase, plus
// the safety buffer. The completion signal never fires before the last
// staggered token has finished its own reveal.
func (s *Schedule) Total() time.Duration {
	t := s.timings
	adding := t.Adding
	if s.added > 0 {
		staggered := t.NewElement + time.Duration(s.added)*t.Stagger
		adding = max(adding, staggered)
	}
	return t.Positioning + t.Pause + adding + t.SafetyBuffer
}
