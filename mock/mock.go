// Package mock provides test doubles for codemotion interfaces.
package mock

import (
	"context"

	"github.com/fwojciec/codemotion"
)

// Compile-time interface verification.
var (
	_ codemotion.Tokenizer        = (*Tokenizer)(nil)
	_ codemotion.LanguageDetector = (*Detector)(nil)
	_ codemotion.TokenDiffer      = (*Differ)(nil)
	_ codemotion.Player           = (*Player)(nil)
)

// Tokenizer is a mock implementation of codemotion.Tokenizer.
type Tokenizer struct {
	TokenizeFn func(source string, lang codemotion.Language) []codemotion.Token
}

func (t *Tokenizer) Tokenize(source string, lang codemotion.Language) []codemotion.Token {
	return t.TokenizeFn(source, lang)
}

// Detector is a mock implementation of codemotion.LanguageDetector.
type Detector struct {
	DetectFn func(source string) codemotion.Language
}

func (d *Detector) Detect(source string) codemotion.Language {
	return d.DetectFn(source)
}

// Differ is a mock implementation of codemotion.TokenDiffer.
type Differ struct {
	DiffFn func(oldTokens, newTokens []codemotion.Token) []codemotion.DiffToken
}

func (d *Differ) Diff(oldTokens, newTokens []codemotion.Token) []codemotion.DiffToken {
	return d.DiffFn(oldTokens, newTokens)
}

// Player is a mock implementation of codemotion.Player.
type Player struct {
	PlayFn func(ctx context.Context, title string, plan *codemotion.RenderPlan) error
}

func (p *Player) Play(ctx context.Context, title string, plan *codemotion.RenderPlan) error {
	return p.PlayFn(ctx, title, plan)
}
