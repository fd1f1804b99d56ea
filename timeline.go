package codemotion

import "time"

// Phase is one stage of the transition animation. Phases advance in one
// direction only, driven purely by elapsed time since the run started.
type Phase int

// Animation phases. PhaseIdle is the state of a run that has not started or
// was discarded.
const (
	PhaseIdle Phase = iota
	PhasePositioning
	PhasePause
	PhaseAdding
	PhaseComplete
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePositioning:
		return "positioning"
	case PhasePause:
		return "pause"
	case PhaseAdding:
		return "adding"
	case PhaseComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Named easing curves for the rendering collaborator. The engine never
// interprets these; they travel with the timings as configuration.
const (
	EaseInOut = "ease-in-out"
	EaseOut   = "ease-out"
	EaseIn    = "ease-in"
	EaseNone  = "linear"
)

// Timings is the fixed configuration surface for the animation phases. Any
// values are acceptable as long as the phase math holds; the defaults are
// tuned for human-paced code walkthroughs.
type Timings struct {
	Positioning     time.Duration // existing tokens move to new positions
	Pause           time.Duration // beat between positioning and adding
	Adding          time.Duration // nominal length of the reveal phase
	ExistingElement time.Duration // per-element move duration, for renderers
	NewElement      time.Duration // per-element reveal duration
	Stagger         time.Duration // delay between consecutive added tokens
	SafetyBuffer    time.Duration // margin before the completion callback
	EasingExisting  string        // curve for repositioning elements
	EasingNew       string        // curve for revealed elements
}

// DefaultTimings returns the standard pacing.
func DefaultTimings() Timings {
	return Timings{
		Positioning:     600 * time.Millisecond,
		Pause:           0,
		Adding:          2500 * time.Millisecond,
		ExistingElement: 800 * time.Millisecond,
		NewElement:      400 * time.Millisecond,
		Stagger:         120 * time.Millisecond,
		SafetyBuffer:    250 * time.Millisecond,
		EasingExisting:  EaseInOut,
		EasingNew:       EaseOut,
	}
}
