package codemotion

// TransitionInput is what the state-management collaborator hands the engine
// for one transition between code states.
// HasPrevious distinguishes a genuinely empty previous snippet (a valid
// state: everything animates in as added) from the absence of any previous
// state, which bypasses the animation entirely.
type TransitionInput struct {
	CurrentCode    string
	PreviousCode   string
	HasPrevious    bool
	Language       Language         // LangAuto detects from CurrentCode
	Highlights     []HighlightRange // manual ranges over CurrentCode
	HighlightsOnly bool             // show only highlighted tokens, as added
	Animating      bool             // false forces a static display
}

// Line groups the tokens that render on one display line. Tokens whose
// content spans multiple lines are split at newline boundaries; each part
// keeps the parent token's ID, so renderers key such parts by (ID, line
// number).
type Line struct {
	Number int // 1-based
	Tokens []AnnotatedToken
}

// RenderPlan is the engine's output for one transition: everything a
// rendering collaborator needs to assign animation keys and pick a visual
// treatment per token.
type RenderPlan struct {
	Tokens     []AnnotatedToken // diff order: new-sequence tokens, then removed
	Lines      []Line           // current-source tokens grouped by line
	AddedCount int              // number of tokens revealed during PhaseAdding
	Bypassed   bool             // static display, no timing
	Timings    Timings
}

// FileTransition is one file's worth of transition, as reconstructed from a
// patch or supplied directly.
type FileTransition struct {
	Path    string
	OldCode string
	NewCode string
}

// FilePlan pairs a planned transition with its file path.
type FilePlan struct {
	Path string
	Plan *RenderPlan
}
