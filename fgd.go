/*
Package fgd reads Valve's FGD ("Forge Game Data") entity-definition format
into a queryable in-memory registry.

Consists of subpackages:
  - cmd/fgdinfo: console utility inspecting FGD files (check, dump, show, watch);
  - entity: value-type taxonomy and the entity record model populated by the parser;
  - filesys: filesystem abstraction used to resolve @include targets;
  - lexer: lexical analyzer producing the FGD token stream;
  - parser: the grammar engine — colon-list reader, entity definition parser,
    registry and file loader with include and base-class resolution;
  - source: source files and the nested-source queue consumed by the lexer.

Typical usage is:

	fs := filesys.Dir("game/bin")
	reg, err := parser.Parse(fs, "portal2.fgd")
	if err != nil { ... }
	ent := reg.Entity("info_target")
*/
package fgd

import (
	"fmt"
)

// Error code classes. Each subpackage draws its codes from its own range of
// up to 99 values:
const (
	LexicalErrors = 101 // lexer
	SyntaxErrors  = 201 // parser grammar
	LoaderErrors  = 301 // file loading and base resolution
)

// Error is the error type returned by every fgd subpackage.
type Error struct {
	Code int

	// Message already carries the source name and position when known.
	Message string

	// SourceName, Line and Col locate the failure in its source file.
	// Zero values mean the error is not tied to a position.
	SourceName string
	Line       int
	Col        int
}

// SourcePos supplies the location an error is constructed at;
// source.Pos and lexer.Token both implement it.
type SourcePos interface {
	SourceName() string
	Line() int
	Col() int
}

// NewError builds an Error, appending the location to the message when name,
// line and col are all set.
func NewError(code int, msg, name string, line, col int) *Error {
	if name != "" && line != 0 && col != 0 {
		msg += fmt.Sprintf(" in %s at line %d col %d", name, line, col)
	}
	return &Error{code, msg, name, line, col}
}

// Error returns the formatted message.
func (e *Error) Error() string {
	return e.Message
}

// FormatError builds a position-less Error; params are applied to msg with
// fmt.Sprintf.
func FormatError(code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, "", 0, 0)
}

// FormatErrorPos builds an Error located at pos, which must not be nil;
// params are applied to msg with fmt.Sprintf.
func FormatErrorPos(pos SourcePos, code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, pos.SourceName(), pos.Line(), pos.Col())
}
