package lexer

import (
	"github.com/forgetools/fgd/source"
)

// TokenKind enumerates the token vocabulary of the FGD format.
type TokenKind int

const (
	// StringToken covers both quoted strings (text is the unquoted payload)
	// and bare words such as classnames, helper names, and @-directives.
	StringToken TokenKind = iota

	// ParenArgsToken is the raw text between a balanced parenthesis pair.
	ParenArgsToken

	ColonToken
	PlusToken
	EqualsToken
	NewlineToken
	BrackOpenToken
	BrackCloseToken

	// EofToken marks the end of one source file; reading continues in the
	// file that included it, if any.
	EofToken

	// EoiToken marks the end of all input.
	EoiToken
)

var kindNames = map[TokenKind]string{
	StringToken:     "string",
	ParenArgsToken:  "paren args",
	ColonToken:      "\":\"",
	PlusToken:       "\"+\"",
	EqualsToken:     "\"=\"",
	NewlineToken:    "newline",
	BrackOpenToken:  "\"[\"",
	BrackCloseToken: "\"]\"",
	EofToken:        "end of file",
	EoiToken:        "end of input",
}

func (k TokenKind) String() string {
	name, has := kindNames[k]
	if !has {
		return "unknown token"
	}
	return name
}

// Token is a single lexeme with its source position.
type Token struct {
	kind      TokenKind
	text      string
	source    *source.Source
	line, col int
}

// SourcePos is used to position new tokens; source.Pos implements it.
type SourcePos interface {
	Source() *source.Source
	Line() int
	Col() int
}

func NewToken(kind TokenKind, text string, sp SourcePos) *Token {
	if sp == nil {
		return &Token{kind: kind, text: text}
	}
	return &Token{kind, text, sp.Source(), sp.Line(), sp.Col()}
}

func NewEofToken(s *source.Source) *Token {
	line, col := 0, 0
	if s != nil {
		line, col = s.LineCol(s.Len())
	}
	return &Token{kind: EofToken, source: s, line: line, col: col}
}

func NewEoiToken() *Token {
	return &Token{kind: EoiToken}
}

func (t *Token) Kind() TokenKind {
	return t.kind
}

// Text returns the token payload: the unquoted content for quoted strings,
// the inner text for paren args, the word itself for bare words.
func (t *Token) Text() string {
	return t.text
}

func (t *Token) Source() *source.Source {
	return t.source
}

func (t *Token) SourceName() string {
	if t.source == nil {
		return ""
	}
	return t.source.Name()
}

func (t *Token) Line() int {
	return t.line
}

func (t *Token) Col() int {
	return t.col
}

// IsEnd reports whether the token marks the end of a file or of all input.
func (t *Token) IsEnd() bool {
	return t.kind == EofToken || t.kind == EoiToken
}
