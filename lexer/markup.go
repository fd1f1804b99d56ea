package lexer

import (
	"strings"

	"github.com/fwojciec/codemotion"
)

// scanMarkup tokenizes HTML-like sources. Outside tags the text is split
// into whitespace runs and non-whitespace text runs. Open tags decompose
// into a "<name" tag token, whitespace, attribute names, "=" operators and
// quoted values, with the closing ">" (or "/>") emitted as its own tag
// token. Closing tags like "</h1>" stay one tag token.
func scanMarkup(s string) []rawToken {
	tokens := make([]rawToken, 0, len(s)/4+1)
	i := 0

	for i < len(s) {
		start := i
		c := s[i]

		switch {
		case c == '<' && i+1 < len(s) && s[i+1] == '!':
			if strings.HasPrefix(s[i:], "<!--") {
				// Comment, to the closing marker or end of input.
				end := strings.Index(s[i+4:], "-->")
				if end < 0 {
					i = len(s)
				} else {
					i += 4 + end + 3
				}
				tokens = append(tokens, rawToken{codemotion.TokenComment, s[start:i]})
				continue
			}
			// Doctype or similar declaration, one tag token.
			i = consumeUntilGT(s, i)
			tokens = append(tokens, rawToken{codemotion.TokenTag, s[start:i]})

		case c == '<' && i+1 < len(s) && s[i+1] == '/':
			// Closing tag, one token including its ">".
			i = consumeUntilGT(s, i)
			tokens = append(tokens, rawToken{codemotion.TokenTag, s[start:i]})

		case c == '<' && i+1 < len(s) && isLetterByte(s[i+1]):
			i, tokens = scanOpenTag(s, i, tokens)

		case isWhitespaceByte(c):
			i++
			for i < len(s) && isWhitespaceByte(s[i]) {
				i++
			}
			tokens = append(tokens, rawToken{codemotion.TokenWhitespace, s[start:i]})

		default:
			// Text run: up to the next tag or whitespace. A lone "<" that
			// opens nothing is plain text too.
			i++
			for i < len(s) && !isWhitespaceByte(s[i]) && !opensTag(s, i) {
				i++
			}
			tokens = append(tokens, rawToken{codemotion.TokenText, s[start:i]})
		}
	}

	return tokens
}

// opensTag reports whether position i starts a tag-like construct.
func opensTag(s string, i int) bool {
	if s[i] != '<' || i+1 >= len(s) {
		return false
	}
	return isLetterByte(s[i+1]) || s[i+1] == '/' || s[i+1] == '!'
}

// consumeUntilGT advances past the next ">", or to end of input for a
// malformed tag.
func consumeUntilGT(s string, i int) int {
	for i < len(s) {
		if s[i] == '>' {
			return i + 1
		}
		i++
	}
	return i
}

// scanOpenTag scans "<name attr="value" ...>" from position i, appending the
// decomposed tokens. The scan stops after the closing ">"/"/>" or at end of
// input.
func scanOpenTag(s string, i int, tokens []rawToken) (int, []rawToken) {
	start := i
	i++ // consume '<'
	for i < len(s) && (isWordByte(s[i]) || s[i] == '-') {
		i++
	}
	tokens = append(tokens, rawToken{codemotion.TokenTag, s[start:i]})

	for i < len(s) {
		start = i
		c := s[i]

		switch {
		case c == '>':
			i++
			tokens = append(tokens, rawToken{codemotion.TokenTag, s[start:i]})
			return i, tokens

		case c == '/' && i+1 < len(s) && s[i+1] == '>':
			i += 2
			tokens = append(tokens, rawToken{codemotion.TokenTag, s[start:i]})
			return i, tokens

		case isWhitespaceByte(c):
			i++
			for i < len(s) && isWhitespaceByte(s[i]) {
				i++
			}
			tokens = append(tokens, rawToken{codemotion.TokenWhitespace, s[start:i]})

		case c == '=':
			i++
			tokens = append(tokens, rawToken{codemotion.TokenOperator, s[start:i]})

		case c == '"' || c == '\'':
			i = scanQuoted(s, i)
			tokens = append(tokens, rawToken{codemotion.TokenString, s[start:i]})

		default:
			// Attribute name (or unquoted value) run.
			i++
			for i < len(s) && !isWhitespaceByte(s[i]) && s[i] != '=' &&
				s[i] != '>' && s[i] != '"' && s[i] != '\'' &&
				!(s[i] == '/' && i+1 < len(s) && s[i+1] == '>') {
				i++
			}
			tokens = append(tokens, rawToken{codemotion.TokenAttribute, s[start:i]})
		}
	}

	return i, tokens
}
