package timeline

import (
	"sync"
	"time"

	"github.com/fwojciec/codemotion"
)

// Run is one live animation: a schedule bound to a start instant. The
// completion callback fires exactly once per run, whether the run times out,
// is finalized, or is discarded; a superseded run never signals late.
type Run struct {
	schedule   *Schedule
	onComplete func()
	now        func() time.Time
	start      time.Time
	timer      *time.Timer

	once sync.Once

	mu     sync.Mutex
	forced codemotion.Phase
	isDone bool
}

// Option configures a Run.
type Option func(*Run)

// WithClock substitutes the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(r *Run) { r.now = now }
}

// Start begins a run: it records the start instant and arms a single timer
// for the schedule's total duration. onComplete may be nil.
func Start(s *Schedule, onComplete func(), opts ...Option) *Run {
	r := &Run{schedule: s, onComplete: onComplete, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	r.start = r.now()
	r.timer = time.AfterFunc(s.Total(), r.complete)
	return r
}

// Elapsed returns the time since the run started.
func (r *Run) Elapsed() time.Duration {
	return r.now().Sub(r.start)
}

// Phase returns the current phase. A stopped run reports idle and a
// finished run reports complete, regardless of elapsed time.
func (r *Run) Phase() codemotion.Phase {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.isDone {
		return r.forced
	}
	return r.schedule.PhaseAt(r.now().Sub(r.start))
}

// RevealedCount returns how many added tokens are visible right now.
func (r *Run) RevealedCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.isDone {
		if r.forced == codemotion.PhaseComplete {
			return r.schedule.added
		}
		return 0
	}
	return r.schedule.RevealedCount(r.now().Sub(r.start))
}

// Stop discards the run: the phase drops to idle and the completion
// callback fires immediately (once) so no late signal is pending.
func (r *Run) Stop() {
	r.force(codemotion.PhaseIdle)
}

// Finish finalizes the run: the phase jumps to complete and the completion
// callback fires immediately (once).
func (r *Run) Finish() {
	r.force(codemotion.PhaseComplete)
}

func (r *Run) force(p codemotion.Phase) {
	r.mu.Lock()
	if !r.isDone {
		r.isDone = true
		r.forced = p
	}
	r.mu.Unlock()
	r.timer.Stop()
	r.complete()
}

func (r *Run) complete() {
	r.mu.Lock()
	if !r.isDone {
		r.isDone = true
		r.forced = codemotion.PhaseComplete
	}
	r.mu.Unlock()
	r.once.Do(func() {
		if r.onComplete != nil {
			r.onComplete()
		}
	})
}

// Runner starts runs and guarantees that triggering a new animation while a
// previous one is still live first retires the old run, so its pending
// completion can never fire later and corrupt consumer state.
type Runner struct {
	mu      sync.Mutex
	current *Run
}

// NewRunner creates a Runner.
func NewRunner() *Runner {
	return &Runner{}
}

// Start supersedes any live run (discarding it, which fires its callback
// idempotently) and begins a new one.
func (c *Runner) Start(s *Schedule, onComplete func(), opts ...Option) *Run {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current != nil {
		c.current.Stop()
	}
	c.current = Start(s, onComplete, opts...)
	return c.current
}

// Current returns the live run, or nil.
func (c *Runner) Current() *Run {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Stop discards the live run, if any.
func (c *Runner) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current != nil {
		c.current.Stop()
		c.current = nil
	}
}
