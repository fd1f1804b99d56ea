package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/codemotion"
)

// scanScript is the shared single-pass scanner for script-like languages.
// At each position it checks, in priority order: line comment, block
// comment, quoted string, whitespace run, numeric literal, multi-character
// operator (3-char, then 2-char, then 1-char), identifier/keyword run, and
// finally a single catch-all character, so the scan always advances.
func scanScript(s string, keywords map[string]bool) []rawToken {
	tokens := make([]rawToken, 0, len(s)/3+1)
	i := 0

	for i < len(s) {
		start := i
		c := s[i]

		switch {
		case c == '/' && i+1 < len(s) && s[i+1] == '/':
			// Line comment, to end of line (newline stays outside).
			i += 2
			for i < len(s) && s[i] != '\n' {
				i++
			}
			tokens = append(tokens, rawToken{codemotion.TokenComment, s[start:i]})

		case c == '/' && i+1 < len(s) && s[i+1] == '*':
			// Block comment, to the matching close or end of input.
			i += 2
			for i < len(s) {
				if s[i] == '*' && i+1 < len(s) && s[i+1] == '/' {
					i += 2
					break
				}
				i++
			}
			tokens = append(tokens, rawToken{codemotion.TokenComment, s[start:i]})

		case c == '"' || c == '\'' || c == '`':
			i = scanQuoted(s, i)
			tokens = append(tokens, rawToken{codemotion.TokenString, s[start:i]})

		case isWhitespaceByte(c):
			i++
			for i < len(s) && isWhitespaceByte(s[i]) {
				i++
			}
			tokens = append(tokens, rawToken{codemotion.TokenWhitespace, s[start:i]})

		case isDigitByte(c):
			i = scanNumber(s, i)
			tokens = append(tokens, rawToken{codemotion.TokenNumber, s[start:i]})

		case isOperatorByte(c):
			i += operatorLen(s[i:])
			tokens = append(tokens, rawToken{codemotion.TokenOperator, s[start:i]})

		case isPunctuationByte(c):
			i++
			tokens = append(tokens, rawToken{codemotion.TokenPunctuation, s[start:i]})

		case isWordStartByte(c):
			i++
			for i < len(s) && isWordByte(s[i]) {
				i++
			}
			word := s[start:i]
			typ := codemotion.TokenText
			if keywords[word] {
				typ = codemotion.TokenKeyword
			}
			tokens = append(tokens, rawToken{typ, word})

		default:
			// Catch-all: one rune, keeps the scan moving.
			_, size := utf8.DecodeRuneInString(s[i:])
			i += size
			tokens = append(tokens, rawToken{codemotion.TokenText, s[start:i]})
		}
	}

	return tokens
}

// scanQuoted consumes a string literal starting at i. Backslash escapes are
// honored so an escaped quote does not terminate the literal early. An
// unterminated literal runs to end of input.
func scanQuoted(s string, i int) int {
	quote := s[i]
	i++
	for i < len(s) {
		if s[i] == '\\' && i+1 < len(s) {
			i += 2
			continue
		}
		if s[i] == quote {
			return i + 1
		}
		i++
	}
	return i
}

// scanNumber consumes digits with interior dots ("1.5", "3.14.15" stays one
// token, matching the perceptual grouping the diff wants).
func scanNumber(s string, i int) int {
	for i < len(s) {
		if isDigitByte(s[i]) {
			i++
			continue
		}
		if s[i] == '.' && i+1 < len(s) && isDigitByte(s[i+1]) {
			i++
			continue
		}
		break
	}
	return i
}

// operatorLen returns the length of the operator starting at the head of s,
// preferring 3-character, then 2-character forms.
func operatorLen(s string) int {
	if len(s) >= 3 {
		for _, op := range threeCharOps {
			if strings.HasPrefix(s, op) {
				return 3
			}
		}
	}
	if len(s) >= 2 {
		for _, op := range twoCharOps {
			if strings.HasPrefix(s, op) {
				return 2
			}
		}
	}
	return 1
}
