package lexer

import (
	"strings"
	"testing"

	"github.com/forgetools/fgd"
	"github.com/forgetools/fgd/source"
)

func tokenizer(srcs ...string) *Tokenizer {
	q := source.NewQueue()
	for i := len(srcs) - 1; i >= 0; i-- {
		q.Push(source.New("src", []byte(srcs[i])))
	}
	return New(q)
}

func TestEmpty(t *testing.T) {
	samples := []string{"", " ", "\t\r ", "// comment only"}
	for _, src := range samples {
		tz := tokenizer(src)
		tok, e := tz.Next()
		if e != nil {
			t.Fatalf("source %q: unexpected error %s", src, e)
		}
		if tok.Kind() != EofToken {
			t.Fatalf("source %q: expecting EoF, got %s", src, tok.Kind())
		}

		tok, e = tz.Next()
		if e != nil || tok.Kind() != EoiToken {
			t.Fatalf("source %q: expecting EoI, got %v, %v", src, tok, e)
		}
	}
}

func TestTokenSamples(t *testing.T) {
	src := `@PointClass base(Targetname, Angles) = info_target : "Generic target" +
	"more" [
	health(integer) : "Health" : 100
]`
	expected := []struct {
		kind TokenKind
		text string
	}{
		{StringToken, "@PointClass"},
		{StringToken, "base"},
		{ParenArgsToken, "Targetname, Angles"},
		{EqualsToken, "="},
		{StringToken, "info_target"},
		{ColonToken, ":"},
		{StringToken, "Generic target"},
		{PlusToken, "+"},
		{NewlineToken, "\n"},
		{StringToken, "more"},
		{BrackOpenToken, "["},
		{NewlineToken, "\n"},
		{StringToken, "health"},
		{ParenArgsToken, "integer"},
		{ColonToken, ":"},
		{StringToken, "Health"},
		{ColonToken, ":"},
		{StringToken, "100"},
		{NewlineToken, "\n"},
		{BrackCloseToken, "]"},
	}

	tz := tokenizer(src)
	for i, exp := range expected {
		tok, e := tz.Next()
		if e != nil {
			t.Fatalf("token #%d: unexpected error: %s", i, e)
		}
		if tok.Kind() != exp.kind || tok.Text() != exp.text {
			t.Fatalf("token #%d: expecting %s %q, got %s %q", i, exp.kind, exp.text, tok.Kind(), tok.Text())
		}
	}

	tok, e := tz.Next()
	if e != nil || tok.Kind() != EofToken {
		t.Fatalf("expecting EoF, got %v, %v", tok, e)
	}
}

func TestComments(t *testing.T) {
	tz := tokenizer("// a comment\nfoo // trailing\n")
	expected := []TokenKind{NewlineToken, StringToken, NewlineToken, EofToken}
	for i, kind := range expected {
		tok, e := tz.Next()
		if e != nil {
			t.Fatalf("token #%d: unexpected error: %s", i, e)
		}
		if tok.Kind() != kind {
			t.Fatalf("token #%d: expecting %s, got %s %q", i, kind, tok.Kind(), tok.Text())
		}
	}
}

func TestBrokenToken(t *testing.T) {
	samples := []string{"size \"never closed", "size (4"}
	for _, src := range samples {
		tz := tokenizer(src)
		tok, e := tz.Next()
		if e != nil || tok.Text() != "size" {
			t.Fatalf("source %q: expecting size, got %v, %v", src, tok, e)
		}

		tok, e = tz.Next()
		if tok != nil {
			t.Fatalf("source %q: expected error, got %s token", src, tok.Kind())
		}
		ee, is := e.(*fgd.Error)
		if !is || ee.Code != BadTokenError {
			t.Fatalf("source %q: expected BadTokenError, got %v", src, e)
		}
		if ee.Line != 1 || ee.Col != 6 {
			t.Fatalf("source %q: expected error at 1:6, got %d:%d", src, ee.Line, ee.Col)
		}
	}
}

func TestWrongChar(t *testing.T) {
	tz := tokenizer("foo\n  , bar")
	tok, e := tz.Next()
	if e != nil || tok.Text() != "foo" {
		t.Fatalf("expecting foo, got %v, %v", tok, e)
	}
	tok, e = tz.Next() // newline
	if e != nil {
		t.Fatalf("unexpected error: %s", e)
	}

	_, e = tz.Next()
	ee, is := e.(*fgd.Error)
	if !is || ee.Code != WrongCharError {
		t.Fatalf("expected WrongCharError, got %v", e)
	}
	if ee.Line != 2 || ee.Col != 3 {
		t.Fatalf("expected error at line 2 col 3, got %d, %d", ee.Line, ee.Col)
	}
	if !strings.Contains(ee.Message, ",") {
		t.Fatalf("expected offending char in message, got %q", ee.Message)
	}
}

func TestSourceBoundary(t *testing.T) {
	q := source.NewQueue()
	q.Push(source.New("outer", []byte("foo bar")))
	tz := New(q)

	tok, e := tz.Next()
	if e != nil || tok.Text() != "foo" {
		t.Fatalf("expecting foo, got %v, %v", tok, e)
	}

	// An include suspends the outer source mid-way.
	q.Push(source.New("inner", []byte("baz")))

	expected := []struct {
		kind TokenKind
		text string
	}{
		{StringToken, "baz"},
		{EofToken, ""},
		{StringToken, "bar"},
		{EofToken, ""},
		{EoiToken, ""},
	}
	for i, exp := range expected {
		tok, e = tz.Next()
		if e != nil {
			t.Fatalf("step %d: unexpected error: %s", i, e)
		}
		if tok.Kind() != exp.kind || tok.Text() != exp.text {
			t.Fatalf("step %d: expecting %s %q, got %s %q", i, exp.kind, exp.text, tok.Kind(), tok.Text())
		}
	}
}

func TestEmptyPayloads(t *testing.T) {
	tz := tokenizer(`"" ()`)
	tok, e := tz.Next()
	if e != nil || tok.Kind() != StringToken || tok.Text() != "" {
		t.Fatalf("expecting empty string token, got %v, %v", tok, e)
	}
	tok, e = tz.Next()
	if e != nil || tok.Kind() != ParenArgsToken || tok.Text() != "" {
		t.Fatalf("expecting empty paren args token, got %v, %v", tok, e)
	}
}
