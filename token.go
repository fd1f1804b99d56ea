package codemotion

// Language identifies the scanning dialect used to tokenize a source string.
type Language int

// Supported languages. LangAuto asks the engine to detect the language from
// the source text. Unknown or unlisted languages tokenize with the script
// scanner.
const (
	LangAuto Language = iota
	LangMarkup
	LangScript
	LangPython
	LangStylesheet
	LangData
)

// String returns the language tag name.
func (l Language) String() string {
	switch l {
	case LangAuto:
		return "auto"
	case LangMarkup:
		return "markup"
	case LangScript:
		return "script"
	case LangPython:
		return "python"
	case LangStylesheet:
		return "stylesheet"
	case LangData:
		return "data"
	default:
		return "unknown"
	}
}

// ParseLanguage maps a language tag name to its Language. The empty string
// parses to LangAuto; unknown names report false.
func ParseLanguage(name string) (Language, bool) {
	switch name {
	case "":
		return LangAuto, true
	case "auto":
		return LangAuto, true
	case "markup", "html":
		return LangMarkup, true
	case "script", "javascript", "typescript":
		return LangScript, true
	case "python":
		return LangPython, true
	case "stylesheet", "css":
		return LangStylesheet, true
	case "data", "json":
		return LangData, true
	}
	return LangAuto, false
}

// CompatibleWith reports whether transitions between the two languages can be
// diffed meaningfully. Incompatible pairs (e.g. markup vs. script) bypass
// diffing entirely and display the new code statically.
func (l Language) CompatibleWith(other Language) bool {
	if l == other {
		return true
	}
	a, b := l, other
	if a > b {
		a, b = b, a
	}
	switch {
	case a == LangMarkup && (b == LangScript || b == LangPython || b == LangStylesheet):
		return false
	case a == LangScript && b == LangStylesheet:
		return false
	case a == LangPython && b == LangStylesheet:
		return false
	}
	return true
}

// TokenType classifies a token. The set is closed: renderers can switch
// exhaustively over it to pick a visual treatment.
type TokenType int

// Token types.
const (
	TokenTag TokenType = iota
	TokenText
	TokenAttribute
	TokenString
	TokenKeyword
	TokenOperator
	TokenPunctuation
	TokenNumber
	TokenComment
	TokenWhitespace
)

// String returns the token type name.
func (t TokenType) String() string {
	switch t {
	case TokenTag:
		return "tag"
	case TokenText:
		return "text"
	case TokenAttribute:
		return "attribute"
	case TokenString:
		return "string"
	case TokenKeyword:
		return "keyword"
	case TokenOperator:
		return "operator"
	case TokenPunctuation:
		return "punctuation"
	case TokenNumber:
		return "number"
	case TokenComment:
		return "comment"
	case TokenWhitespace:
		return "whitespace"
	default:
		return "unknown"
	}
}

// TokenID is a stable animation key for a token. Ids are derived
// deterministically from the language, the token's byte offset, its type and
// a fingerprint of its content, so tokenizing the same source twice yields
// identical ids in identical order. Ids are unique within one tokenization
// output because byte offsets strictly increase.
type TokenID string

// Token is the smallest lexical unit produced by scanning source text.
// Concatenating the Content of all tokens in sequence order reproduces the
// original source exactly.
type Token struct {
	ID      TokenID
	Type    TokenType
	Content string
}

// Signature is the equality key used to match tokens across versions.
func (t Token) Signature() (TokenType, string) {
	return t.Type, t.Content
}
