package highlight_test

import (
	"testing"

	"github.com/fwojciec/codemotion"
	"github.com/fwojciec/codemotion/highlight"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// diffTokens builds a current-source token sequence from contents.
func diffTokens(contents ...string) []codemotion.DiffToken {
	out := make([]codemotion.DiffToken, len(contents))
	for i, c := range contents {
		out[i] = codemotion.DiffToken{
			Token:    codemotion.Token{ID: codemotion.TokenID(c), Content: c},
			Status:   codemotion.StatusUnchanged,
			OldIndex: i,
			NewIndex: i,
		}
	}
	return out
}

func TestMapper_Apply_OverlapFlagsStraddlingTokens(t *testing.T) {
	t.Parallel()

	// "abcdef" as three 2-char tokens at offsets [0,2), [2,4), [4,6).
	toks := diffTokens("ab", "cd", "ef")
	ranges := []codemotion.HighlightRange{{Start: 1, End: 3}}

	result := highlight.New().Apply(toks, ranges)

	require.Len(t, result, 3)
	assert.True(t, result[0].Highlighted, `[1,3) overlaps "ab" at offset 1`)
	assert.True(t, result[1].Highlighted, `[1,3) overlaps "cd" at offset 2`)
	assert.False(t, result[2].Highlighted)
}

func TestMapper_Apply_NoRangesPassesThrough(t *testing.T) {
	t.Parallel()

	result := highlight.New().Apply(diffTokens("ab", "cd"), nil)

	require.Len(t, result, 2)
	for i, at := range result {
		assert.False(t, at.Highlighted)
		assert.Equal(t, codemotion.TokenID([]string{"ab", "cd"}[i]), at.ID,
			"annotation never rewrites identity")
	}
}

func TestMapper_Apply_MultipleRangesAreBooleanOR(t *testing.T) {
	t.Parallel()

	toks := diffTokens("ab", "cd", "ef")
	ranges := []codemotion.HighlightRange{
		{Start: 0, End: 1},
		{Start: 0, End: 2}, // overlaps the first token again
		{Start: 5, End: 6},
	}

	result := highlight.New().Apply(toks, ranges)

	assert.True(t, result[0].Highlighted)
	assert.False(t, result[1].Highlighted)
	assert.True(t, result[2].Highlighted)
}

func TestMapper_Apply_InvalidRangesMatchNothing(t *testing.T) {
	t.Parallel()

	toks := diffTokens("ab", "cd")
	ranges := []codemotion.HighlightRange{
		{Start: 3, End: 1},    // inverted
		{Start: 100, End: 200}, // out of range
	}

	result := highlight.New().Apply(toks, ranges)

	for _, at := range result {
		assert.False(t, at.Highlighted)
	}
}

func TestMapper_Apply_RemovedTokensDoNotAdvanceCursor(t *testing.T) {
	t.Parallel()

	toks := diffTokens("ab", "cd")
	toks = append(toks, codemotion.DiffToken{
		Token:    codemotion.Token{ID: "gone", Content: "zz"},
		Status:   codemotion.StatusRemoved,
		OldIndex: 2,
		NewIndex: codemotion.NoIndex,
	})
	// A range past the current source's end must not hit anything, even
	// though the removed token's length would reach it.
	ranges := []codemotion.HighlightRange{{Start: 4, End: 6}}

	result := highlight.New().Apply(toks, ranges)

	require.Len(t, result, 3)
	assert.False(t, result[0].Highlighted)
	assert.False(t, result[1].Highlighted)
	assert.False(t, result[2].Highlighted, "removed tokens are never flagged")
}

func TestMapper_Apply_PartialOverlapCounts(t *testing.T) {
	t.Parallel()

	toks := diffTokens("hello", " ", "world")
	// Range covering only the last char of "hello" and the space.
	ranges := []codemotion.HighlightRange{{Start: 4, End: 6, Kind: codemotion.HighlightEmphasis}}

	result := highlight.New().Apply(toks, ranges)

	assert.True(t, result[0].Highlighted)
	assert.True(t, result[1].Highlighted)
	assert.False(t, result[2].Highlighted)
}
