// Package highlight maps user-specified character ranges onto token
// membership. It only annotates: the diff status and identity of a token are
// never touched here.
package highlight

import "github.com/fwojciec/codemotion"

// Mapper flags tokens that overlap manual highlight ranges.
type Mapper struct{}

// New creates a new Mapper.
func New() *Mapper {
	return &Mapper{}
}

// Apply walks the tokens with a running character cursor over the current
// source and flags every token that overlaps any supplied range, even
// partially. Removed tokens are not part of the current source: they are
// passed through unflagged and do not advance the cursor. With no ranges the
// tokens pass through unflagged.
func (m *Mapper) Apply(tokens []codemotion.DiffToken, ranges []codemotion.HighlightRange) []codemotion.AnnotatedToken {
	out := make([]codemotion.AnnotatedToken, len(tokens))
	cursor := 0
	for i, tok := range tokens {
		if tok.Status == codemotion.StatusRemoved {
			out[i] = codemotion.AnnotatedToken{DiffToken: tok}
			continue
		}
		start, end := cursor, cursor+len(tok.Content)
		flagged := false
		for _, r := range ranges {
			if r.Overlaps(start, end) {
				flagged = true
				break
			}
		}
		out[i] = codemotion.AnnotatedToken{DiffToken: tok, Highlighted: flagged}
		cursor = end
	}
	return out
}
