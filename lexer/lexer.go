// Package lexer defines the lexical analyzer for FGD text.
package lexer

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/forgetools/fgd"
	"github.com/forgetools/fgd/source"
)

// Error codes used by lexer:
const (
	// WrongCharError indicates that lexer cannot fetch any token at current position.
	// Error message contains the rune at current source position.
	WrongCharError = fgd.LexicalErrors + iota

	// BadTokenError indicates a broken lexeme, e.g. an unterminated quoted
	// string or parenthesis pair.
	BadTokenError
)

// badKind marks the capturing group matching broken lexemes; tokens of this
// kind are never returned, an error is returned instead.
const badKind = TokenKind(-1)

// One capturing group per token kind, in groupKinds order. Whitespace and
// // comments match without capturing and are skipped. Every byte of a
// source file must belong to some lexeme.
var fgdRe = regexp.MustCompile(`^(?:[ \t\r]+|//[^\n]*` +
	`|"([^"]*)"` +
	`|\(([^()]*)\)` +
	`|(\n)` +
	`|(:)` +
	`|(\+)` +
	`|(=)` +
	`|(\[)` +
	`|(\])` +
	`|([^\s"()\[\]:+=,]+)` +
	`|("[^"]{0,24}|\([^()]{0,24}))`)

var groupKinds = [...]TokenKind{
	StringToken,
	ParenArgsToken,
	NewlineToken,
	ColonToken,
	PlusToken,
	EqualsToken,
	BrackOpenToken,
	BrackCloseToken,
	StringToken,
	badKind,
}

// Tokenizer turns the sources in a queue into the FGD token stream.
// It emits an EofToken at the end of each source and an EoiToken once the
// queue is empty.
type Tokenizer struct {
	q *source.Queue
}

func New(q *source.Queue) *Tokenizer {
	return &Tokenizer{q: q}
}

func wrongCharError(s *source.Source, content []byte, line, col int) *fgd.Error {
	r, _ := utf8.DecodeRune(content)
	msg := fmt.Sprintf("wrong char %q (u+%x)", r, r)
	return fgd.NewError(WrongCharError, msg, s.Name(), line, col)
}

func badTokenError(t *Token) *fgd.Error {
	return fgd.FormatErrorPos(t, BadTokenError, "bad token %q", t.Text())
}

func matchToken(src *source.Source, content []byte, pos int) (*Token, int, error) {
	content = content[pos:]
	match := fgdRe.FindSubmatchIndex(content)
	if len(match) == 0 || match[0] != 0 || match[1] <= match[0] {
		line, col := src.LineCol(pos)
		return nil, 0, wrongCharError(src, content, line, col)
	}

	for i := 2; i < len(match); i += 2 {
		if match[i] < 0 || match[i+1] < 0 {
			continue
		}

		kind := groupKinds[(i>>1)-1]
		sp := source.NewPos(src, pos+match[i])
		token := NewToken(kind, string(content[match[i]:match[i+1]]), sp)
		if kind == badKind {
			return nil, 0, badTokenError(token)
		}

		return token, match[1], nil
	}

	// Insignificant lexeme, no group captured.
	return nil, match[1], nil
}

func (tz *Tokenizer) fetch() (*Token, bool, error) {
	content, pos := tz.q.ContentPos()
	src := tz.q.Source()
	if len(content)-pos <= 0 {
		if src == nil {
			return NewEoiToken(), false, nil
		}

		tz.q.NextSource()
		return NewEofToken(src), false, nil
	}

	tok, advance, e := matchToken(src, content, pos)
	tz.q.Skip(advance)
	return tok, advance > 0, e
}

// Next fetches the token starting at the current source position and advances
// the position. Returns a nil token and an *fgd.Error on a lexical error.
// Returns an EoiToken if the queue is empty, and an EofToken whenever the
// current source is exhausted, resuming the source that included it.
func (tz *Tokenizer) Next() (*Token, error) {
	for {
		t, _, e := tz.fetch()
		if t != nil || e != nil {
			return t, e
		}
	}
}
