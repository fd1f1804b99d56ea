package timeline_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/fwojciec/codemotion"
	"github.com/fwojciec/codemotion/timeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shortTimings() codemotion.Timings {
	return codemotion.Timings{
		Positioning:  time.Millisecond,
		Adding:       time.Millisecond,
		SafetyBuffer: time.Millisecond,
	}
}

func longTimings() codemotion.Timings {
	t := codemotion.DefaultTimings()
	t.Positioning = time.Hour
	t.Pause = time.Hour
	t.Adding = time.Hour
	return t
}

func TestRun_CompletesExactlyOnce(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	run := timeline.Start(timeline.New(shortTimings(), 0), func() { calls.Add(1) })

	require.Eventually(t, func() bool {
		return run.Phase() == codemotion.PhaseComplete
	}, time.Second, time.Millisecond)

	// finishing again after the timer already fired must not re-signal
	run.Finish()
	run.Stop()
	assert.Equal(t, int32(1), calls.Load())
}

func TestRun_Stop(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	run := timeline.Start(timeline.New(longTimings(), 2), func() { calls.Add(1) })

	run.Stop()

	assert.Equal(t, codemotion.PhaseIdle, run.Phase())
	assert.Equal(t, 0, run.RevealedCount())
	assert.Equal(t, int32(1), calls.Load())

	run.Stop()
	assert.Equal(t, int32(1), calls.Load(), "stop is idempotent")
}

func TestRun_Finish(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	run := timeline.Start(timeline.New(longTimings(), 2), func() { calls.Add(1) })

	run.Finish()

	assert.Equal(t, codemotion.PhaseComplete, run.Phase())
	assert.Equal(t, 2, run.RevealedCount(), "finishing reveals everything")
	assert.Equal(t, int32(1), calls.Load())
}

func TestRun_PhaseFollowsClock(t *testing.T) {
	t.Parallel()

	base := time.Now()
	now := base
	run := timeline.Start(timeline.New(longTimings(), 1), nil,
		timeline.WithClock(func() time.Time { return now }))
	t.Cleanup(run.Stop)

	assert.Equal(t, codemotion.PhasePositioning, run.Phase())

	now = base.Add(90 * time.Minute)
	assert.Equal(t, codemotion.PhasePause, run.Phase())

	now = base.Add(150 * time.Minute)
	assert.Equal(t, codemotion.PhaseAdding, run.Phase())
	assert.Equal(t, 150*time.Minute, run.Elapsed())
	assert.Equal(t, 1, run.RevealedCount())
}

func TestRunner_StartSupersedes(t *testing.T) {
	t.Parallel()

	runner := timeline.NewRunner()

	var first, second atomic.Int32
	old := runner.Start(timeline.New(longTimings(), 0), func() { first.Add(1) })
	fresh := runner.Start(timeline.New(longTimings(), 0), func() { second.Add(1) })
	t.Cleanup(runner.Stop)

	assert.Equal(t, int32(1), first.Load(), "superseded run signals immediately")
	assert.Equal(t, codemotion.PhaseIdle, old.Phase())
	assert.Equal(t, codemotion.PhasePositioning, fresh.Phase())
	assert.Equal(t, int32(0), second.Load())
	assert.Same(t, fresh, runner.Current())
}

func TestRunner_Stop(t *testing.T) {
	t.Parallel()

	runner := timeline.NewRunner()
	assert.Nil(t, runner.Current())
	runner.Stop()

	var calls atomic.Int32
	runner.Start(timeline.New(longTimings(), 0), func() { calls.Add(1) })
	runner.Stop()

	assert.Nil(t, runner.Current())
	assert.Equal(t, int32(1), calls.Load())
}
