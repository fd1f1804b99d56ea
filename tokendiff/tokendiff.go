// Package tokendiff aligns two token sequences so that tokens keep their
// identity across an edit. The alignment is heuristic and perceptually
// tuned, not a shortest-edit-script diff: it favors the "something was
// inserted" shape common in teaching examples, and a poor alignment on a
// drastic rewrite degrades quality, never correctness.
package tokendiff

import (
	"math"

	"github.com/fwojciec/codemotion"
)

// Compile-time interface verification.
var _ codemotion.TokenDiffer = (*Differ)(nil)

// Scoring constants. The threshold and bonus are empirically tuned; the
// end-to-end scenario tests pin the behavior, not the exact values.
const (
	// acceptThreshold is the minimum score for a residual match, on the
	// 0–1.2 scale produced by proximity plus the exact-signature bonus.
	acceptThreshold = 0.3
	// exactBonus rewards exact signature equality over the relaxed
	// whitespace-to-whitespace equivalence.
	exactBonus = 0.2
)

// Differ aligns old and new token sequences.
type Differ struct {
	threshold float64
	bonus     float64
}

// New creates a Differ with the default scoring constants.
func New() *Differ {
	return &Differ{threshold: acceptThreshold, bonus: exactBonus}
}

// Diff classifies every token of both sequences. New-sequence tokens come
// first in output order (unchanged or added), followed by every unmatched
// old token marked removed, in old-sequence order. An unchanged token
// carries the matched old token's ID so renderers can animate a move instead
// of a destroy-and-recreate.
func (d *Differ) Diff(oldTokens, newTokens []codemotion.Token) []codemotion.DiffToken {
	matchFor := make([]int, len(newTokens)) // new index -> matched old index
	for i := range matchFor {
		matchFor[i] = codemotion.NoIndex
	}
	usedOld := make([]bool, len(oldTokens))

	// Pass 1: sequential prefix walk. While signatures agree, match and
	// advance both pointers; on a mismatch advance only the new pointer,
	// treating the divergence as an insertion rather than desynchronizing
	// both streams.
	oi, ni := 0, 0
	for oi < len(oldTokens) && ni < len(newTokens) {
		if sameSignature(oldTokens[oi], newTokens[ni]) {
			matchFor[ni] = oi
			usedOld[oi] = true
			oi++
			ni++
		} else {
			ni++
		}
	}

	// Pass 2: best-effort residual matching for everything pass 1 missed.
	for ni := range newTokens {
		if matchFor[ni] != codemotion.NoIndex {
			continue
		}
		if oi := d.bestCandidate(oldTokens, newTokens, matchFor, usedOld, ni); oi != codemotion.NoIndex {
			matchFor[ni] = oi
			usedOld[oi] = true
		}
	}

	out := make([]codemotion.DiffToken, 0, len(newTokens)+len(oldTokens))
	for ni, tok := range newTokens {
		if oi := matchFor[ni]; oi != codemotion.NoIndex {
			tok.ID = oldTokens[oi].ID
			out = append(out, codemotion.DiffToken{
				Token:    tok,
				Status:   codemotion.StatusUnchanged,
				OldIndex: oi,
				NewIndex: ni,
			})
			continue
		}
		out = append(out, codemotion.DiffToken{
			Token:    tok,
			Status:   codemotion.StatusAdded,
			OldIndex: codemotion.NoIndex,
			NewIndex: ni,
		})
	}
	for oi, tok := range oldTokens {
		if usedOld[oi] {
			continue
		}
		out = append(out, codemotion.DiffToken{
			Token:    tok,
			Status:   codemotion.StatusRemoved,
			OldIndex: oi,
			NewIndex: codemotion.NoIndex,
		})
	}
	return out
}

// bestCandidate scans unused old tokens for the highest-scoring signature
// match for new token ni. Candidates whose pairing would invert the relative
// order of two established matches are rejected, and the winner must beat
// the acceptance threshold. Ties keep the earliest-scanned old index.
func (d *Differ) bestCandidate(oldTokens, newTokens []codemotion.Token, matchFor []int, usedOld []bool, ni int) int {
	maxLen := float64(max(len(oldTokens), len(newTokens)))
	expected := float64(ni) * float64(len(oldTokens)) / float64(len(newTokens))

	best := codemotion.NoIndex
	bestScore := 0.0
	for oi := range oldTokens {
		if usedOld[oi] {
			continue
		}
		exact := sameSignature(oldTokens[oi], newTokens[ni])
		relaxed := oldTokens[oi].Type == codemotion.TokenWhitespace &&
			newTokens[ni].Type == codemotion.TokenWhitespace
		if !exact && !relaxed {
			continue
		}
		if crossesMatch(matchFor, oi, ni) {
			continue
		}

		score := 1 - math.Abs(float64(oi)-expected)/maxLen
		if exact {
			score += d.bonus
		}
		if score > bestScore {
			best = oi
			bestScore = score
		}
	}
	if bestScore <= d.threshold {
		return codemotion.NoIndex
	}
	return best
}

// crossesMatch reports whether pairing (oi, ni) would invert the relative
// order of an already-established match.
func crossesMatch(matchFor []int, oi, ni int) bool {
	for n2, o2 := range matchFor {
		if o2 == codemotion.NoIndex {
			continue
		}
		if (n2 < ni && o2 >= oi) || (n2 > ni && o2 <= oi) {
			return true
		}
	}
	return false
}

// sameSignature compares the (type, content) equality key.
func sameSignature(a, b codemotion.Token) bool {
	return a.Type == b.Type && a.Content == b.Content
}
