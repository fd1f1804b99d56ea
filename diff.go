package codemotion

// DiffStatus classifies a token relative to the previous version of the
// source.
type DiffStatus int

// Diff statuses.
const (
	StatusUnchanged DiffStatus = iota
	StatusAdded
	StatusRemoved
)

// String returns the status name.
func (s DiffStatus) String() string {
	switch s {
	case StatusUnchanged:
		return "unchanged"
	case StatusAdded:
		return "added"
	case StatusRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// NoIndex marks an absent old or new sequence position on a DiffToken.
const NoIndex = -1

// DiffToken is a token annotated with its change status.
//
// Unchanged tokens carry the matched old token's ID (not the freshly
// generated one) so a renderer can animate the same visual element moving
// rather than destroying and recreating it. Both indices are set.
// Added tokens exist only in the new sequence: OldIndex is NoIndex.
// Removed tokens exist only in the old sequence: NewIndex is NoIndex, and
// they are ordered after every new-sequence token in diff output.
type DiffToken struct {
	Token
	Status   DiffStatus
	OldIndex int
	NewIndex int
}
