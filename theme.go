package codemotion

// ColorPair represents a foreground and background color combination.
// Colors should be hex strings in "#RRGGBB" format (e.g., "#ff0000" for
// red). Empty strings are valid and indicate no color override (use the
// terminal default).
type ColorPair struct {
	Foreground string
	Background string
}

// Styles contains color pairs for every token type plus the overlays a
// renderer applies on top of them.
type Styles struct {
	Tag         ColorPair
	Text        ColorPair
	Attribute   ColorPair
	String      ColorPair
	Keyword     ColorPair
	Operator    ColorPair
	Punctuation ColorPair
	Number      ColorPair
	Comment     ColorPair
	Whitespace  ColorPair

	Added       ColorPair // overlay for tokens revealed during the adding phase
	Highlighted ColorPair // overlay for manually highlighted tokens
	LineNumber  ColorPair
}

// ForType returns the color pair for a token type.
func (s Styles) ForType(t TokenType) ColorPair {
	switch t {
	case TokenTag:
		return s.Tag
	case TokenText:
		return s.Text
	case TokenAttribute:
		return s.Attribute
	case TokenString:
		return s.String
	case TokenKeyword:
		return s.Keyword
	case TokenOperator:
		return s.Operator
	case TokenPunctuation:
		return s.Punctuation
	case TokenNumber:
		return s.Number
	case TokenComment:
		return s.Comment
	case TokenWhitespace:
		return s.Whitespace
	default:
		return s.Text
	}
}

// Theme provides styles for rendering animated code. Different
// implementations can provide light/dark variants.
type Theme interface {
	Styles() Styles
}
