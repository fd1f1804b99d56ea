package lexer

import (
	"unicode/utf8"

	"github.com/fwojciec/codemotion"
)

// scanStylesheet tokenizes CSS-like sources. Comments and strings scan the
// same way as in the script scanner; numbers, including leading-dot
// fractions, keep trailing unit letters or "%" attached; "#"- and
// "."-prefixed name runs are selector tokens; bare words
// classify through fixed lookup tables (property names, pseudo selectors,
// value keywords) before falling back to plain text.
func scanStylesheet(s string) []rawToken {
	tokens := make([]rawToken, 0, len(s)/3+1)
	i := 0

	for i < len(s) {
		start := i
		c := s[i]

		switch {
		case c == '/' && i+1 < len(s) && s[i+1] == '*':
			i += 2
			for i < len(s) {
				if s[i] == '*' && i+1 < len(s) && s[i+1] == '/' {
					i += 2
					break
				}
				i++
			}
			tokens = append(tokens, rawToken{codemotion.TokenComment, s[start:i]})

		case c == '"' || c == '\'':
			i = scanQuoted(s, i)
			tokens = append(tokens, rawToken{codemotion.TokenString, s[start:i]})

		case isWhitespaceByte(c):
			i++
			for i < len(s) && isWhitespaceByte(s[i]) {
				i++
			}
			tokens = append(tokens, rawToken{codemotion.TokenWhitespace, s[start:i]})

		case isDigitByte(c) || (c == '.' && i+1 < len(s) && isDigitByte(s[i+1])):
			// Leading-dot fractions like ".5em" are numbers, not selectors.
			i = scanNumber(s, i)
			// Trailing unit: "px", "rem", "%".
			for i < len(s) && (isLetterByte(s[i]) || s[i] == '%') {
				i++
			}
			tokens = append(tokens, rawToken{codemotion.TokenNumber, s[start:i]})

		case (c == '#' || c == '.') && i+1 < len(s) && isSelectorByte(s[i+1]):
			i++
			for i < len(s) && isSelectorByte(s[i]) {
				i++
			}
			tokens = append(tokens, rawToken{codemotion.TokenTag, s[start:i]})

		case isCSSOperatorByte(c):
			i++
			tokens = append(tokens, rawToken{codemotion.TokenOperator, s[start:i]})

		case isWordStartByte(c):
			i++
			for i < len(s) && (isWordByte(s[i]) || s[i] == '-') {
				i++
			}
			word := s[start:i]
			typ := codemotion.TokenText
			switch {
			case cssProperties[word]:
				typ = codemotion.TokenAttribute
			case cssPseudo[word] || cssValues[word]:
				typ = codemotion.TokenKeyword
			}
			tokens = append(tokens, rawToken{typ, word})

		case isOperatorByte(c):
			i++
			tokens = append(tokens, rawToken{codemotion.TokenOperator, s[start:i]})

		default:
			_, size := utf8.DecodeRuneInString(s[i:])
			i += size
			tokens = append(tokens, rawToken{codemotion.TokenText, s[start:i]})
		}
	}

	return tokens
}

func isSelectorByte(c byte) bool {
	return isWordByte(c) || c == '-'
}

// isCSSOperatorByte covers the structural single-character tokens of a
// stylesheet rule.
func isCSSOperatorByte(c byte) bool {
	switch c {
	case '{', '}', '(', ')', ';', ':', ',', '.', '[', ']':
		return true
	}
	return false
}
