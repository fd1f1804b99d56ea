// Package detect implements heuristic language detection over raw source
// text. The checks run in a fixed priority order, so detection is
// deterministic; it is a heuristic, not a grammar check, and false positives
// on ambiguous snippets are expected and acceptable.
package detect

import (
	"regexp"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/fwojciec/codemotion"
)

// Compile-time interface verification.
var _ codemotion.LanguageDetector = (*Detector)(nil)

// Detector classifies source text into a language tag. It is a total
// function: when no rule and no analyser signal matches it returns
// LangMarkup.
type Detector struct{}

// New creates a new Detector.
func New() *Detector {
	return &Detector{}
}

var (
	markupPattern = regexp.MustCompile(`<!?/?[a-zA-Z][^>]*>`)
	scriptPattern = regexp.MustCompile(`\b(function|const|let|var)\b|=>`)
	pythonPattern = regexp.MustCompile(`(?m)^\s*(def|import|from|class)\s|__main__`)
	// A selector-ish prefix, an opening brace, then a property-colon shape.
	stylePattern = regexp.MustCompile(`(?s)[a-zA-Z.#][a-zA-Z0-9_\-.#:*,>+~\s]*\{[^{}]*:`)
)

// Detect returns the language tag for the given source. First matching rule
// wins: markup, then script keywords, then python idioms, then the
// stylesheet rule shape, then a leading "{"/"[" for data. When nothing
// matches, chroma's content analyser gets a vote before the markup default.
func (d *Detector) Detect(source string) codemotion.Language {
	switch {
	case markupPattern.MatchString(source):
		return codemotion.LangMarkup
	case scriptPattern.MatchString(source):
		return codemotion.LangScript
	case pythonPattern.MatchString(source):
		return codemotion.LangPython
	case stylePattern.MatchString(source):
		return codemotion.LangStylesheet
	}

	trimmed := strings.TrimSpace(source)
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		return codemotion.LangData
	}

	if lang, ok := analyse(source); ok {
		return lang
	}
	return codemotion.LangMarkup
}

// analyse maps chroma's content analysis onto our tag set. Only confident,
// mappable results count; everything else falls through to the default.
func analyse(source string) (codemotion.Language, bool) {
	lexer := lexers.Analyse(source)
	if lexer == nil {
		return codemotion.LangAuto, false
	}
	name := strings.ToLower(lexer.Config().Name)
	switch {
	case strings.Contains(name, "html") || strings.Contains(name, "xml"):
		return codemotion.LangMarkup, true
	case strings.Contains(name, "javascript") || strings.Contains(name, "typescript"):
		return codemotion.LangScript, true
	case strings.Contains(name, "python"):
		return codemotion.LangPython, true
	case strings.Contains(name, "css"):
		return codemotion.LangStylesheet, true
	case strings.Contains(name, "json") || strings.Contains(name, "yaml"):
		return codemotion.LangData, true
	}
	return codemotion.LangAuto, false
}
