package lexer

// scriptKeywords is the reserved-word set for JS/TS-like sources.
var scriptKeywords = map[string]bool{
	"abstract": true, "as": true, "async": true, "await": true,
	"break": true, "case": true, "catch": true, "class": true,
	"const": true, "continue": true, "debugger": true, "default": true,
	"delete": true, "do": true, "else": true, "enum": true,
	"export": true, "extends": true, "false": true, "finally": true,
	"for": true, "from": true, "function": true, "if": true,
	"implements": true, "import": true, "in": true, "instanceof": true,
	"interface": true, "let": true, "new": true, "null": true,
	"of": true, "private": true, "protected": true, "public": true,
	"return": true, "static": true, "super": true, "switch": true,
	"this": true, "throw": true, "true": true, "try": true,
	"type": true, "typeof": true, "undefined": true, "var": true,
	"void": true, "while": true, "with": true, "yield": true,
}

// pythonKeywords extends the shared scanner for python-like sources.
var pythonKeywords = map[string]bool{
	"False": true, "None": true, "True": true, "and": true,
	"as": true, "assert": true, "async": true, "await": true,
	"break": true, "class": true, "continue": true, "def": true,
	"del": true, "elif": true, "else": true, "except": true,
	"finally": true, "for": true, "from": true, "global": true,
	"if": true, "import": true, "in": true, "is": true,
	"lambda": true, "nonlocal": true, "not": true, "or": true,
	"pass": true, "raise": true, "return": true, "self": true,
	"try": true, "while": true, "with": true, "yield": true,
}

// Multi-character operators, checked longest-first so a scan like "===" is
// not split into "==" + "=".
var threeCharOps = []string{
	"===", "!==", "**=", "...", ">>>", "<<=", ">>=", "&&=", "||=", "??=",
}

var twoCharOps = []string{
	"==", "!=", "<=", ">=", "&&", "||", "??", "?.", "=>", "->",
	"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "<<", ">>",
	"++", "--", "**", "::",
}

func isOperatorByte(c byte) bool {
	switch c {
	case '+', '-', '*', '/', '=', '<', '>', '!', '&', '|', '^', '%', '?', ':', '~':
		return true
	}
	return false
}

func isPunctuationByte(c byte) bool {
	switch c {
	case '(', ')', '{', '}', '[', ']', ';', ',', '.':
		return true
	}
	return false
}

func isWhitespaceByte(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDigitByte(c byte) bool {
	return c >= '0' && c <= '9'
}

func isWordStartByte(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_' || c == '$'
}

func isWordByte(c byte) bool {
	return isWordStartByte(c) || isDigitByte(c)
}

func isLetterByte(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// cssProperties classifies bare words that name style properties.
var cssProperties = map[string]bool{
	"align-items": true, "animation": true, "background": true,
	"background-color": true, "border": true, "border-radius": true,
	"bottom": true, "box-shadow": true, "color": true, "cursor": true,
	"display": true, "flex": true, "flex-direction": true, "float": true,
	"font-family": true, "font-size": true, "font-weight": true,
	"gap": true, "grid": true, "height": true, "justify-content": true,
	"left": true, "letter-spacing": true, "line-height": true,
	"margin": true, "margin-bottom": true, "margin-left": true,
	"margin-right": true, "margin-top": true, "max-width": true,
	"min-height": true, "opacity": true, "overflow": true,
	"padding": true, "position": true, "right": true, "text-align": true,
	"text-decoration": true, "top": true, "transform": true,
	"transition": true, "visibility": true, "white-space": true,
	"width": true, "z-index": true,
}

// cssPseudo classifies pseudo-class and pseudo-element names.
var cssPseudo = map[string]bool{
	"active": true, "after": true, "before": true, "checked": true,
	"disabled": true, "first-child": true, "focus": true, "hover": true,
	"last-child": true, "not": true, "nth-child": true, "root": true,
	"visited": true,
}

// cssValues classifies common value keywords.
var cssValues = map[string]bool{
	"absolute": true, "auto": true, "baseline": true, "block": true,
	"bold": true, "both": true, "center": true, "column": true,
	"ease": true, "ease-in": true, "ease-in-out": true, "ease-out": true,
	"fixed": true, "flex-end": true, "flex-start": true, "grid-area": true,
	"hidden": true, "inherit": true, "initial": true, "inline": true,
	"inline-block": true, "italic": true, "left": true, "linear": true,
	"none": true, "normal": true, "nowrap": true, "pointer": true,
	"relative": true, "right": true, "row": true, "solid": true,
	"sticky": true, "stretch": true, "transparent": true, "underline": true,
	"uppercase": true, "visible": true, "wrap": true,
}
