// Package codemotion provides domain types for animating transitions between
// successive versions of a code snippet. The engine tokenizes both versions,
// aligns the token sequences so tokens keep their identity across the edit,
// and sequences the result into timed animation phases for a renderer.
package codemotion

import "context"

// Tokenizer converts source text into an ordered sequence of typed tokens.
// Implementations must be total: malformed input (unterminated strings,
// comments, tags) still terminates and yields a best-effort token, and
// concatenating the output reproduces the source exactly.
type Tokenizer interface {
	Tokenize(source string, lang Language) []Token
}

// LanguageDetector guesses the language of raw source text. It is a total
// function: when no signal matches it falls back to LangMarkup.
type LanguageDetector interface {
	Detect(source string) Language
}

// TokenDiffer aligns an old and a new token sequence, classifying every
// token as unchanged, added or removed. Every old token appears exactly once
// in the output (matched or removed) and every new token exactly once
// (matched or added).
type TokenDiffer interface {
	Diff(oldTokens, newTokens []Token) []DiffToken
}

// Player presents a render plan and blocks until the animation finishes or
// the user quits.
type Player interface {
	Play(ctx context.Context, title string, plan *RenderPlan) error
}
