package engine_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/fwojciec/codemotion"
	"github.com/fwojciec/codemotion/engine"
	"github.com/fwojciec/codemotion/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanner_Plan_AnimatedTransition(t *testing.T) {
	t.Parallel()

	p := engine.New()
	plan := p.Plan(codemotion.TransitionInput{
		CurrentCode:  "let x = 2",
		PreviousCode: "let x = 1",
		HasPrevious:  true,
		Language:     codemotion.LangScript,
		Animating:    true,
	})

	assert.False(t, plan.Bypassed)
	assert.Equal(t, 1, plan.AddedCount, "only the changed literal enters")
	require.Len(t, plan.Tokens, 8, "seven current tokens plus one removed")

	var statuses []codemotion.DiffStatus
	for _, tok := range plan.Tokens {
		statuses = append(statuses, tok.Status)
	}
	assert.Equal(t, []codemotion.DiffStatus{
		codemotion.StatusUnchanged, // let
		codemotion.StatusUnchanged,
		codemotion.StatusUnchanged, // x
		codemotion.StatusUnchanged,
		codemotion.StatusUnchanged, // =
		codemotion.StatusUnchanged,
		codemotion.StatusAdded,   // 2
		codemotion.StatusRemoved, // 1
	}, statuses)
}

func TestPlanner_Plan_EmptyPreviousAnimatesEverythingIn(t *testing.T) {
	t.Parallel()

	p := engine.New()
	plan := p.Plan(codemotion.TransitionInput{
		CurrentCode:  "let x",
		PreviousCode: "",
		HasPrevious:  true,
		Language:     codemotion.LangScript,
		Animating:    true,
	})

	assert.False(t, plan.Bypassed, "an empty previous snippet still animates")
	assert.Equal(t, 3, plan.AddedCount)
	for _, tok := range plan.Tokens {
		assert.Equal(t, codemotion.StatusAdded, tok.Status)
	}
}

func TestPlanner_Plan_DeclaredLanguageCoversBothSnippets(t *testing.T) {
	t.Parallel()

	// The previous snippet has no script keywords, so detection would
	// misclassify it; the declared language must win on both sides.
	p := engine.New()
	plan := p.Plan(codemotion.TransitionInput{
		CurrentCode:  "let x = 1",
		PreviousCode: "x = 1",
		HasPrevious:  true,
		Language:     codemotion.LangScript,
		Animating:    true,
	})

	assert.False(t, plan.Bypassed)
	assert.Equal(t, 2, plan.AddedCount, "only the new declaration keyword and its space enter")
}

func TestPlanner_Plan_DeclaredLanguageSkipsDetection(t *testing.T) {
	t.Parallel()

	p := engine.New(engine.WithDetector(&mock.Detector{
		DetectFn: func(source string) codemotion.Language {
			t.Errorf("detector consulted for %q despite a declared language", source)
			return codemotion.LangMarkup
		},
	}))

	plan := p.Plan(codemotion.TransitionInput{
		CurrentCode:  "let x = 2",
		PreviousCode: "let x = 1",
		HasPrevious:  true,
		Language:     codemotion.LangScript,
		Animating:    true,
	})

	assert.False(t, plan.Bypassed)
	assert.Equal(t, 1, plan.AddedCount)
}

func TestPlanner_Plan_Bypass(t *testing.T) {
	t.Parallel()

	p := engine.New()

	tests := []struct {
		name string
		in   codemotion.TransitionInput
	}{
		{
			name: "animation disabled",
			in: codemotion.TransitionInput{
				CurrentCode:  "let x = 2",
				PreviousCode: "let x = 1",
				HasPrevious:  true,
				Language:     codemotion.LangScript,
				Animating:    false,
			},
		},
		{
			name: "no previous state",
			in: codemotion.TransitionInput{
				CurrentCode: "let x = 2",
				Language:    codemotion.LangScript,
				Animating:   true,
			},
		},
		{
			name: "incompatible detected languages",
			in: codemotion.TransitionInput{
				CurrentCode:  "<p>hello</p>",
				PreviousCode: "def f():\n    return 1",
				HasPrevious:  true,
				Language:     codemotion.LangAuto,
				Animating:    true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			plan := p.Plan(tt.in)

			assert.True(t, plan.Bypassed)
			assert.Zero(t, plan.AddedCount)
			for _, tok := range plan.Tokens {
				assert.Equal(t, codemotion.StatusUnchanged, tok.Status)
				assert.Equal(t, codemotion.NoIndex, tok.OldIndex)
			}
		})
	}
}

func TestPlanner_Plan_HighlightsOnly(t *testing.T) {
	t.Parallel()

	p := engine.New()
	plan := p.Plan(codemotion.TransitionInput{
		CurrentCode: "let x = 1",
		Language:    codemotion.LangScript,
		Highlights: []codemotion.HighlightRange{
			{Start: 0, End: 3, Kind: codemotion.HighlightEmphasis},
		},
		HighlightsOnly: true,
	})

	require.Len(t, plan.Tokens, 1, "unhighlighted tokens are dropped")
	assert.Equal(t, "let", plan.Tokens[0].Content)
	assert.True(t, plan.Tokens[0].Highlighted)
	assert.Equal(t, codemotion.StatusAdded, plan.Tokens[0].Status)
	assert.Equal(t, 1, plan.AddedCount)
}

func TestPlanner_Plan_Lines(t *testing.T) {
	t.Parallel()

	p := engine.New()

	t.Run("tokens land on numbered lines", func(t *testing.T) {
		t.Parallel()

		plan := p.Plan(codemotion.TransitionInput{
			CurrentCode: "a\nb",
			Language:    codemotion.LangScript,
		})

		require.Len(t, plan.Lines, 2)
		assert.Equal(t, 1, plan.Lines[0].Number)
		assert.Equal(t, 2, plan.Lines[1].Number)
		require.Len(t, plan.Lines[0].Tokens, 1)
		assert.Equal(t, "a", plan.Lines[0].Tokens[0].Content)
		require.Len(t, plan.Lines[1].Tokens, 1)
		assert.Equal(t, "b", plan.Lines[1].Tokens[0].Content)
	})

	t.Run("a multi-line token splits but keeps its identity", func(t *testing.T) {
		t.Parallel()

		plan := p.Plan(codemotion.TransitionInput{
			CurrentCode: "<!-- one\ntwo -->",
			Language:    codemotion.LangMarkup,
		})

		require.Len(t, plan.Lines, 2)
		require.Len(t, plan.Lines[0].Tokens, 1)
		require.Len(t, plan.Lines[1].Tokens, 1)
		assert.Equal(t, "<!-- one", plan.Lines[0].Tokens[0].Content)
		assert.Equal(t, "two -->", plan.Lines[1].Tokens[0].Content)
		assert.Equal(t, plan.Lines[0].Tokens[0].ID, plan.Lines[1].Tokens[0].ID)
	})

	t.Run("a trailing newline opens no empty line", func(t *testing.T) {
		t.Parallel()

		plan := p.Plan(codemotion.TransitionInput{
			CurrentCode: "a\nb\n",
			Language:    codemotion.LangScript,
		})

		require.Len(t, plan.Lines, 2)
		assert.Equal(t, 2, plan.Lines[1].Number)
	})

	t.Run("blank interior lines survive", func(t *testing.T) {
		t.Parallel()

		plan := p.Plan(codemotion.TransitionInput{
			CurrentCode: "a\n\nb",
			Language:    codemotion.LangScript,
		})

		require.Len(t, plan.Lines, 3)
		assert.Empty(t, plan.Lines[1].Tokens)
		require.Len(t, plan.Lines[2].Tokens, 1)
		assert.Equal(t, "b", plan.Lines[2].Tokens[0].Content)
	})

	t.Run("removed tokens stay out of the layout", func(t *testing.T) {
		t.Parallel()

		plan := p.Plan(codemotion.TransitionInput{
			CurrentCode:  "b",
			PreviousCode: "a",
			HasPrevious:  true,
			Language:     codemotion.LangScript,
			Animating:    true,
		})

		require.Len(t, plan.Lines, 1)
		require.Len(t, plan.Lines[0].Tokens, 1)
		assert.Equal(t, "b", plan.Lines[0].Tokens[0].Content)
	})
}

func TestPlanner_Plan_Deterministic(t *testing.T) {
	t.Parallel()

	p := engine.New()
	in := codemotion.TransitionInput{
		CurrentCode:  "const a = 1\nconst b = 2",
		PreviousCode: "const a = 1",
		HasPrevious:  true,
		Language:     codemotion.LangScript,
		Animating:    true,
	}

	first := p.Plan(in)
	second := p.Plan(in)

	assert.Equal(t, first, second, "replanning the same transition is a no-op")
}

func TestPlanner_Plan_AutoDetectsLanguage(t *testing.T) {
	t.Parallel()

	detected := 0
	p := engine.New(engine.WithDetector(&mock.Detector{
		DetectFn: func(source string) codemotion.Language {
			detected++
			return codemotion.LangPython
		},
	}))

	plan := p.Plan(codemotion.TransitionInput{
		CurrentCode: "x = 1",
		Language:    codemotion.LangAuto,
	})

	assert.Equal(t, 1, detected)
	assert.NotEmpty(t, plan.Tokens)
}

func TestPlanner_Options(t *testing.T) {
	t.Parallel()

	timings := codemotion.DefaultTimings()
	timings.Positioning = 42 * time.Millisecond

	var diffCalled bool
	p := engine.New(
		engine.WithTokenizer(&mock.Tokenizer{
			TokenizeFn: func(source string, lang codemotion.Language) []codemotion.Token {
				return []codemotion.Token{{ID: codemotion.TokenID(source), Content: source}}
			},
		}),
		engine.WithDiffer(&mock.Differ{
			DiffFn: func(oldTokens, newTokens []codemotion.Token) []codemotion.DiffToken {
				diffCalled = true
				return nil
			},
		}),
		engine.WithTimings(timings),
	)

	plan := p.Plan(codemotion.TransitionInput{
		CurrentCode:  "b",
		PreviousCode: "a",
		HasPrevious:  true,
		Language:     codemotion.LangScript,
		Animating:    true,
	})

	assert.True(t, diffCalled)
	assert.Equal(t, 42*time.Millisecond, plan.Timings.Positioning)
}

func TestPlanner_PlanFiles(t *testing.T) {
	t.Parallel()

	p := engine.New()

	t.Run("preserves input order", func(t *testing.T) {
		t.Parallel()

		files := make([]codemotion.FileTransition, 10)
		for i := range files {
			files[i] = codemotion.FileTransition{
				Path:    fmt.Sprintf("file%d.js", i),
				OldCode: "let x = 1",
				NewCode: fmt.Sprintf("let x = %d", i),
			}
		}

		plans, err := p.PlanFiles(context.Background(), files)
		require.NoError(t, err)
		require.Len(t, plans, 10)
		for i, fp := range plans {
			assert.Equal(t, files[i].Path, fp.Path)
			assert.NotNil(t, fp.Plan)
		}
	})

	t.Run("stops on a cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		files := make([]codemotion.FileTransition, 50)
		for i := range files {
			files[i] = codemotion.FileTransition{Path: "f.js", NewCode: "let x"}
		}

		_, err := p.PlanFiles(ctx, files)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("no files yields no plans", func(t *testing.T) {
		t.Parallel()

		plans, err := p.PlanFiles(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, plans)
	})
}
