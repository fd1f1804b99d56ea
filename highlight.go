package codemotion

// HighlightKind distinguishes why a manual highlight was placed.
type HighlightKind int

// Highlight kinds.
const (
	HighlightNew HighlightKind = iota
	HighlightChanged
	HighlightEmphasis
)

// String returns the highlight kind name.
func (k HighlightKind) String() string {
	switch k {
	case HighlightNew:
		return "new"
	case HighlightChanged:
		return "changed"
	case HighlightEmphasis:
		return "emphasis"
	default:
		return "unknown"
	}
}

// HighlightRange is a user-specified character range over the current source
// text, half-open [Start, End). Ranges need not be sorted or
// non-overlapping; a range with Start >= End simply matches nothing.
// Supplying offsets that are valid for the current source is the caller's
// responsibility.
type HighlightRange struct {
	Start int
	End   int
	Kind  HighlightKind
}

// Overlaps reports whether the half-open token span [start, end) overlaps
// this range. Partial overlap counts: a token straddling a range boundary is
// still flagged.
func (r HighlightRange) Overlaps(start, end int) bool {
	return start < r.End && end > r.Start
}

// AnnotatedToken is a DiffToken plus the manual-highlight flag. The flag is
// a boolean OR across all supplied ranges, never cumulative.
type AnnotatedToken struct {
	DiffToken
	Highlighted bool
}
