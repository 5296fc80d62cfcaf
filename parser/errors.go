package parser

import (
	"github.com/forgetools/fgd"
	"github.com/forgetools/fgd/entity"
	"github.com/forgetools/fgd/lexer"
)

// Grammar error codes:
const (
	UnexpectedEofError = fgd.SyntaxErrors + iota
	UnexpectedTokenError
	TooManyStringsError
	DanglingPlusError
	UnknownHelperError
	HelperArgsError
	HeaderUnendedError
	TwoColonsError
	UnknownValueTypeError
	IOListTypeError
	TooManyIOValuesError
	TooManyAttributesError
	EmptyListEntryError
	TooManyListValuesError
	MissingListError
	UnwantedListError
)

// File loader and base resolution error codes:
const (
	BadKeywordError = fgd.LoaderErrors + iota
	InvalidClassError
	MapSizeError
	IncludeNotFoundError
	FileReadError
	UnknownBaseError
)

func eofError(t *lexer.Token) *fgd.Error {
	return fgd.FormatErrorPos(t, UnexpectedEofError, "unexpected %s", t.Kind())
}

func unexpectedTokenError(t *lexer.Token) *fgd.Error {
	return fgd.FormatErrorPos(t, UnexpectedTokenError, "unexpected %s token", t.Kind())
}

func tooManyStringsError(t *lexer.Token) *fgd.Error {
	return fgd.FormatErrorPos(t, TooManyStringsError, "too many strings (%q)", t.Text())
}

func danglingPlusError(t *lexer.Token) *fgd.Error {
	return fgd.FormatErrorPos(t, DanglingPlusError, `"+" without a string before it`)
}

func unknownHelperError(t *lexer.Token) *fgd.Error {
	return fgd.FormatErrorPos(t, UnknownHelperError, "unknown helper type %q", t.Text())
}

func helperArgsError(t *lexer.Token) *fgd.Error {
	return fgd.FormatErrorPos(t, HelperArgsError, "args without helper type (%q)", t.Text())
}

func headerUnendedError(t *lexer.Token) *fgd.Error {
	return fgd.FormatErrorPos(t, HeaderUnendedError, "entity header never ended")
}

func twoColonsError(t *lexer.Token) *fgd.Error {
	return fgd.FormatErrorPos(t, TwoColonsError, "two colons in entity description")
}

func unknownValueTypeError(t *lexer.Token, tag string) *fgd.Error {
	return fgd.FormatErrorPos(t, UnknownValueTypeError, "unknown keyvalue type %q", tag)
}

func ioListTypeError(t *lexer.Token, typ entity.ValueType) *fgd.Error {
	return fgd.FormatErrorPos(t, IOListTypeError, "%q value type is not valid for an input or output", typ.Tag())
}

func tooManyIOValuesError(t *lexer.Token) *fgd.Error {
	return fgd.FormatErrorPos(t, TooManyIOValuesError, "too many values for IO definition %q", t.Text())
}

func tooManyAttributesError(t *lexer.Token) *fgd.Error {
	return fgd.FormatErrorPos(t, TooManyAttributesError, "too many attributes for keyvalue %q", t.Text())
}

func emptyListEntryError(t *lexer.Token) *fgd.Error {
	return fgd.FormatErrorPos(t, EmptyListEntryError, "missing label for list value %q", t.Text())
}

func tooManyListValuesError(t *lexer.Token) *fgd.Error {
	return fgd.FormatErrorPos(t, TooManyListValuesError, "too many values for list entry %q", t.Text())
}

func missingListError(t *lexer.Token, typ entity.ValueType) *fgd.Error {
	return fgd.FormatErrorPos(t, MissingListError, "no list for %q value type", typ.Tag())
}

func unwantedListError(t *lexer.Token, typ entity.ValueType) *fgd.Error {
	return fgd.FormatErrorPos(t, UnwantedListError, "%q value types can't have lists", typ.Tag())
}

func badKeywordError(t *lexer.Token) *fgd.Error {
	return fgd.FormatErrorPos(t, BadKeywordError, "bad keyword %q", t.Text())
}

func invalidClassError(t *lexer.Token) *fgd.Error {
	return fgd.FormatErrorPos(t, InvalidClassError, "invalid entity type %q", t.Text())
}

func mapSizeError(t *lexer.Token) *fgd.Error {
	return fgd.FormatErrorPos(t, MapSizeError, "invalid @mapsize (%s)", t.Text())
}

func includeNotFoundError(at *lexer.Token, name string) *fgd.Error {
	if at == nil {
		return fgd.FormatError(IncludeNotFoundError, "file not found: %q", name)
	}
	return fgd.FormatErrorPos(at, IncludeNotFoundError, "file not found: %q", name)
}

func fileReadError(name string, e error) *fgd.Error {
	return fgd.FormatError(FileReadError, "cannot read %q: %s", name, e.Error())
}

func unknownBaseError(e *entity.UnknownBaseError) *fgd.Error {
	return fgd.FormatError(UnknownBaseError, "unknown base %q for entity %q", e.Base, e.Classname)
}
