// Package engine composes the tokenizer, detector, differ and highlight
// mapper behind the collaborator contract: a code-state transition in, a
// render plan out. Planning is total: every input produces a plan, and
// inputs too different to diff meaningfully degrade to a static display.
package engine

import (
	"context"
	"strconv"
	"strings"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/sync/errgroup"

	"github.com/fwojciec/codemotion"
	"github.com/fwojciec/codemotion/detect"
	"github.com/fwojciec/codemotion/highlight"
	"github.com/fwojciec/codemotion/lexer"
	"github.com/fwojciec/codemotion/tokendiff"
)

// planFilesLimit bounds concurrent per-file planning in PlanFiles.
const planFilesLimit = 4

// Planner turns transitions into render plans.
type Planner struct {
	tokenizer codemotion.Tokenizer
	detector  codemotion.LanguageDetector
	differ    codemotion.TokenDiffer
	mapper    *highlight.Mapper
	timings   codemotion.Timings
	memo      *gocache.Cache
}

// Option configures a Planner.
type Option func(*Planner)

// WithTokenizer substitutes the tokenizer.
func WithTokenizer(t codemotion.Tokenizer) Option {
	return func(p *Planner) { p.tokenizer = t }
}

// WithDetector substitutes the language detector.
func WithDetector(d codemotion.LanguageDetector) Option {
	return func(p *Planner) { p.detector = d }
}

// WithDiffer substitutes the token differ.
func WithDiffer(d codemotion.TokenDiffer) Option {
	return func(p *Planner) { p.differ = d }
}

// WithTimings substitutes the animation timings carried on every plan.
func WithTimings(t codemotion.Timings) Option {
	return func(p *Planner) { p.timings = t }
}

// New creates a Planner with the default pipeline.
func New(opts ...Option) *Planner {
	p := &Planner{
		tokenizer: lexer.New(),
		detector:  detect.New(),
		differ:    tokendiff.New(),
		mapper:    highlight.New(),
		timings:   codemotion.DefaultTimings(),
		memo:      gocache.New(gocache.NoExpiration, 0),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Plan computes the render plan for one transition. It never fails: the
// worst case is a bypassed (static) plan.
//
// The animation is bypassed when Animating is false, when there is no
// previous state, or when the languages of the two states form an
// incompatible pair, which is the policy for "too different to diff
// meaningfully".
func (p *Planner) Plan(in codemotion.TransitionInput) *codemotion.RenderPlan {
	lang := in.Language
	if lang == codemotion.LangAuto {
		lang = p.detector.Detect(in.CurrentCode)
	}

	current := p.tokenize(in.CurrentCode, lang)

	bypass := !in.Animating || !in.HasPrevious
	var old []codemotion.Token
	if !bypass && in.PreviousCode != "" {
		// A declared language covers both snippets; detection of the
		// previous side happens only in the auto path. An empty previous
		// snippet carries no language signal either way: skip the
		// compatibility check and let the diff mark everything added.
		prevLang := lang
		if in.Language == codemotion.LangAuto {
			prevLang = p.detector.Detect(in.PreviousCode)
		}
		if !lang.CompatibleWith(prevLang) {
			bypass = true
		} else {
			old = p.tokenize(in.PreviousCode, prevLang)
		}
	}

	var diffed []codemotion.DiffToken
	if bypass {
		diffed = staticTokens(current)
	} else {
		diffed = p.differ.Diff(old, current)
	}

	annotated := p.mapper.Apply(diffed, in.Highlights)
	if in.HighlightsOnly {
		annotated = highlightedOnly(annotated)
	}

	added := 0
	for _, tok := range annotated {
		if tok.Status == codemotion.StatusAdded {
			added++
		}
	}

	return &codemotion.RenderPlan{
		Tokens:     annotated,
		Lines:      groupLines(annotated),
		AddedCount: added,
		Bypassed:   bypass,
		Timings:    p.timings,
	}
}

// PlanFiles plans several transitions concurrently, preserving input order.
// Only the context can fail it.
func (p *Planner) PlanFiles(ctx context.Context, files []codemotion.FileTransition) ([]codemotion.FilePlan, error) {
	plans := make([]codemotion.FilePlan, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(planFilesLimit)

	for i, f := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			plans[i] = codemotion.FilePlan{
				Path: f.Path,
				Plan: p.Plan(codemotion.TransitionInput{
					CurrentCode:  f.NewCode,
					PreviousCode: f.OldCode,
					HasPrevious:  true,
					Animating:    true,
				}),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return plans, nil
}

// tokenize memoizes tokenization per (language, source) pair. Tokenization
// is pure, so the memo is idempotent: a key maps to the same value forever.
func (p *Planner) tokenize(source string, lang codemotion.Language) []codemotion.Token {
	key := strconv.Itoa(int(lang)) + "\x00" + source
	if cached, ok := p.memo.Get(key); ok {
		return cached.([]codemotion.Token)
	}
	tokens := p.tokenizer.Tokenize(source, lang)
	p.memo.Set(key, tokens, gocache.NoExpiration)
	return tokens
}

// staticTokens presents every current token as unchanged with no previous
// counterpart, for bypassed transitions.
func staticTokens(tokens []codemotion.Token) []codemotion.DiffToken {
	out := make([]codemotion.DiffToken, len(tokens))
	for i, tok := range tokens {
		out[i] = codemotion.DiffToken{
			Token:    tok,
			Status:   codemotion.StatusUnchanged,
			OldIndex: codemotion.NoIndex,
			NewIndex: i,
		}
	}
	return out
}

// highlightedOnly keeps only manually highlighted tokens and presents them
// as added so they visually enter. This is presentation policy layered on
// top of the mapper, which itself never rewrites status.
func highlightedOnly(tokens []codemotion.AnnotatedToken) []codemotion.AnnotatedToken {
	out := make([]codemotion.AnnotatedToken, 0, len(tokens))
	for _, tok := range tokens {
		if !tok.Highlighted {
			continue
		}
		tok.Status = codemotion.StatusAdded
		out = append(out, tok)
	}
	return out
}

// groupLines splits the current-source tokens into display lines at newline
// boundaries, with a running line counter starting at 1. Removed tokens are
// not part of the current text and stay out of the line layout; a token
// spanning lines contributes one part per line, each keeping the parent ID.
// A trailing newline does not open an empty final line, so the line count
// matches what the source visibly occupies; blank interior lines survive.
func groupLines(tokens []codemotion.AnnotatedToken) []codemotion.Line {
	lines := []codemotion.Line{{Number: 1}}

	for _, tok := range tokens {
		if tok.Status == codemotion.StatusRemoved {
			continue
		}
		content := tok.Content
		for {
			nl := strings.IndexByte(content, '\n')
			if nl < 0 {
				break
			}
			if nl > 0 {
				part := tok
				part.Content = content[:nl]
				cur := &lines[len(lines)-1]
				cur.Tokens = append(cur.Tokens, part)
			}
			lines = append(lines, codemotion.Line{Number: lines[len(lines)-1].Number + 1})
			content = content[nl+1:]
		}
		if content != "" {
			part := tok
			part.Content = content
			cur := &lines[len(lines)-1]
			cur.Tokens = append(cur.Tokens, part)
		}
	}

	if last := len(lines) - 1; last > 0 && len(lines[last].Tokens) == 0 {
		lines = lines[:last]
	}
	return lines
}
