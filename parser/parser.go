// Package parser implements the FGD grammar engine: the colon-list reader,
// the entity definition parser, and the registry file loader with @include
// and base-class resolution.
package parser

import (
	"strconv"
	"strings"

	"github.com/forgetools/fgd/entity"
	"github.com/forgetools/fgd/filesys"
	"github.com/forgetools/fgd/lexer"
	"github.com/forgetools/fgd/source"
)

// context carries the state of one load: the registry being populated, the
// filesystem resolving includes, and the token stream.
type context struct {
	reg *FGD
	fs  filesys.FileSystem
	q   *source.Queue
	tz  *lexer.Tokenizer
}

func newContext(reg *FGD, fs filesys.FileSystem) *context {
	q := source.NewQueue()
	return &context{reg: reg, fs: fs, q: q, tz: lexer.New(q)}
}

func (c *context) next() (*lexer.Token, error) {
	return c.tz.Next()
}

// expect fetches the next token of the given kind, skipping newlines.
// Any other token is a syntax error.
func (c *context) expect(kind lexer.TokenKind) (*lexer.Token, error) {
	for {
		t, e := c.next()
		if e != nil {
			return nil, e
		}

		switch {
		case t.Kind() == kind:
			return t, nil
		case t.Kind() == lexer.NewlineToken:
			continue
		case t.IsEnd():
			return nil, eofError(t)
		default:
			return nil, unexpectedTokenError(t)
		}
	}
}

// readColonList reads strings separated by colons, up to the end of the line.
// hadColon tells whether the caller already consumed the opening colon.
// Returns the collected strings and the token that terminated the list.
func (c *context) readColonList(hadColon bool) ([]string, *lexer.Token, error) {
	strs := []string{}
	ready := hadColon // expecting a string next?
	for {
		t, e := c.next()
		if e != nil {
			return nil, nil, e
		}

		switch t.Kind() {
		case lexer.StringToken:
			if !ready {
				return nil, nil, tooManyStringsError(t)
			}
			strs = append(strs, t.Text())
			ready = false

		case lexer.ColonToken:
			if ready {
				// ": :" means to have an empty string there.
				strs = append(strs, "")
			}
			ready = true

		case lexer.PlusToken:
			if ready || len(strs) == 0 {
				return nil, nil, danglingPlusError(t)
			}
			s, e := c.expect(lexer.StringToken)
			if e != nil {
				return nil, nil, e
			}
			strs[len(strs)-1] += s.Text()

		case lexer.NewlineToken:
			// A colon may be followed by a line break before its string.
			if ready {
				continue
			}
			return strs, t, nil

		default:
			// A list can never legitimately run to the end of a file.
			if t.IsEnd() {
				return nil, nil, eofError(t)
			}
			if ready {
				return nil, nil, unexpectedTokenError(t)
			}
			return strs, t, nil
		}
	}
}

// splitArgs splits raw parenthesized text on commas, trimming each piece.
// Empty parentheses yield no arguments.
func splitArgs(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}

	args := strings.Split(raw, ",")
	for i, a := range args {
		args[i] = strings.TrimSpace(a)
	}
	return args
}

// flagDefault interprets the second attribute of a spawnflags list entry:
// non-zero means the flag starts set.
func flagDefault(s string) bool {
	n, e := strconv.Atoi(strings.TrimSpace(s))
	return e == nil && n != 0
}

// parseEntity parses one entity definition, from right after the @-keyword
// to the closing "]", and registers it as soon as the classname is known.
func (c *context) parseEntity(class entity.Class) error {
	ent := entity.NewDef(class)

	if e := c.parseHeader(ent); e != nil {
		return e
	}

	nameTok, e := c.expect(lexer.StringToken)
	if e != nil {
		return e
	}
	ent.Classname = strings.TrimSpace(nameTok.Text())

	// Registered before the body is read, so entities later in this file or
	// in files included afterwards can already refer to it.
	c.reg.Entities[strings.ToLower(ent.Classname)] = ent

	if e := c.parseDescription(ent); e != nil {
		return e
	}

	return c.parseBody(ent)
}

// parseHeader consumes helper invocations up to the "=" separating the header
// from the classname. base() calls populate the base-class list instead of
// the helper list.
func (c *context) parseHeader(ent *entity.Def) error {
	var pending entity.HelperKind
	hasPending := false

	flushPending := func() {
		// A helper without parentheses is recorded with no arguments.
		// Inherit is never stored as a helper.
		if hasPending && pending != entity.HelperInherit {
			ent.Helpers = append(ent.Helpers, entity.Helper{Kind: pending, Args: []string{}})
		}
		hasPending = false
	}

	for {
		t, e := c.next()
		if e != nil {
			return e
		}

		switch t.Kind() {
		case lexer.NewlineToken:
			continue

		case lexer.StringToken:
			flushPending()
			kind, has := entity.LookupHelper(t.Text())
			if !has {
				return unknownHelperError(t)
			}
			pending = kind
			hasPending = true

		case lexer.ParenArgsToken:
			if !hasPending {
				return helperArgsError(t)
			}
			args := splitArgs(t.Text())
			if pending == entity.HelperInherit {
				for _, base := range args {
					ent.Bases.AddName(base)
				}
			} else {
				ent.Helpers = append(ent.Helpers, entity.Helper{Kind: pending, Args: args})
			}
			hasPending = false

		case lexer.EqualsToken:
			flushPending()
			return nil

		default:
			if t.IsEnd() {
				return headerUnendedError(t)
			}
			return unexpectedTokenError(t)
		}
	}
}

// parseDescription consumes the optional ": "text" + "more"" preamble between
// the classname and the opening "[".
func (c *context) parseDescription(ent *entity.Def) error {
	var frags []string
	opened := false

	for {
		t, e := c.next()
		if e != nil {
			return e
		}

		switch t.Kind() {
		case lexer.NewlineToken:
			continue

		case lexer.ColonToken:
			if opened {
				return twoColonsError(t)
			}
			opened = true

		case lexer.StringToken:
			// Only valid right after the opening colon; a second bare string
			// needs a "+" between.
			if !opened || len(frags) > 0 {
				return unexpectedTokenError(t)
			}
			frags = append(frags, t.Text())

		case lexer.PlusToken:
			if len(frags) == 0 {
				return danglingPlusError(t)
			}
			s, e := c.expect(lexer.StringToken)
			if e != nil {
				return e
			}
			frags = append(frags, s.Text())

		case lexer.BrackOpenToken:
			if len(frags) > 0 {
				ent.Desc = strings.Join(frags, "")
			}
			return nil

		default:
			if t.IsEnd() {
				return eofError(t)
			}
			return unexpectedTokenError(t)
		}
	}
}

// parseBody consumes keyvalue and input/output definitions up to the closing "]".
func (c *context) parseBody(ent *entity.Def) error {
	for {
		t, e := c.next()
		if e != nil {
			return e
		}

		switch t.Kind() {
		case lexer.BrackCloseToken:
			return nil

		case lexer.NewlineToken:
			continue

		case lexer.StringToken:
			word := strings.ToLower(t.Text())
			var closed bool
			if word == "input" || word == "output" {
				closed, e = c.parseIO(ent, word)
			} else {
				closed, e = c.parseKeyValue(ent, t)
			}
			if e != nil {
				return e
			}
			// A "]" terminating the member's own line closes the body.
			if closed {
				return nil
			}

		default:
			if t.IsEnd() {
				return eofError(t)
			}
			return unexpectedTokenError(t)
		}
	}
}

// parseIO parses one input or output definition; direction is the case-folded
// keyword that introduced it. Reports whether the definition's terminator was
// the "]" closing the entity body.
func (c *context) parseIO(ent *entity.Def, direction string) (bool, error) {
	nameTok, e := c.expect(lexer.StringToken)
	if e != nil {
		return false, e
	}

	argsTok, e := c.expect(lexer.ParenArgsToken)
	if e != nil {
		return false, e
	}
	rawType := strings.TrimSpace(argsTok.Text())
	typ, te := entity.LookupValueType(rawType)
	if te != nil {
		return false, unknownValueTypeError(argsTok, rawType)
	}

	// Can't have a spawnflags or choices input type.
	if typ.HasList() {
		return false, ioListTypeError(argsTok, typ)
	}

	attrs, term, e := c.readColonList(false)
	if e != nil {
		return false, e
	}
	closed := term.Kind() == lexer.BrackCloseToken
	if !closed && term.Kind() != lexer.NewlineToken {
		return false, unexpectedTokenError(term)
	}

	desc := ""
	switch len(attrs) {
	case 0:
	case 1:
		desc = attrs[0]
	default:
		return false, tooManyIOValuesError(nameTok)
	}

	io := &entity.IODef{Name: nameTok.Text(), Type: typ, Desc: desc}
	if direction == "input" {
		ent.Inputs[strings.ToLower(io.Name)] = io
	} else {
		ent.Outputs[strings.ToLower(io.Name)] = io
	}
	return closed, nil
}

// parseKeyValue parses one keyvalue definition whose name token has already
// been consumed. A later definition with the same name overwrites an earlier
// one. Reports whether the definition's terminator was the "]" closing the
// entity body.
func (c *context) parseKeyValue(ent *entity.Def, nameTok *lexer.Token) (bool, error) {
	name := nameTok.Text()

	argsTok, e := c.expect(lexer.ParenArgsToken)
	if e != nil {
		return false, e
	}
	rawType := strings.TrimSpace(argsTok.Text())
	typ, te := entity.LookupValueType(rawType)
	if te != nil {
		return false, unknownValueTypeError(argsTok, rawType)
	}

	readOnly := false
	hadColon := false
	var attrs []string
	var term *lexer.Token

	t, e := c.next()
	if e != nil {
		return false, e
	}
	switch t.Kind() {
	case lexer.StringToken:
		// A flag word: "readonly" marks the keyvalue, any other word
		// ("report" occurs in the wild) is accepted and discarded.
		if strings.ToLower(t.Text()) == "readonly" {
			readOnly = true
		}

	case lexer.ColonToken:
		hadColon = true

	case lexer.EqualsToken:
		// Spawnflags may skip all attributes and go straight to the list.
		if typ != entity.ValSpawnFlags {
			return false, unexpectedTokenError(t)
		}
		attrs = []string{}
		term = t

	case lexer.NewlineToken:
		attrs = []string{}
		term = t

	default:
		if t.IsEnd() {
			return false, eofError(t)
		}
		return false, unexpectedTokenError(t)
	}

	if term == nil {
		attrs, term, e = c.readColonList(hadColon)
		if e != nil {
			return false, e
		}
	}

	kv := &entity.KeyValue{Name: name, Type: typ, ReadOnly: readOnly}
	switch len(attrs) {
	case 0:
		kv.DispName = name
	case 1:
		kv.DispName = attrs[0]
	case 2:
		kv.DispName, kv.Default, kv.HasDefault = attrs[0], attrs[1], true
	case 3:
		kv.DispName, kv.Default, kv.HasDefault = attrs[0], attrs[1], true
		kv.Desc = attrs[2]
	default:
		return false, tooManyAttributesError(nameTok)
	}

	closed := false
	if typ.HasList() {
		if term.Kind() != lexer.EqualsToken {
			return false, missingListError(term, typ)
		}
		list, e := c.parseValueList(typ)
		if e != nil {
			return false, e
		}
		kv.ValList = list
	} else {
		switch term.Kind() {
		case lexer.NewlineToken:
		case lexer.BrackCloseToken:
			closed = true
		case lexer.EqualsToken:
			return false, unwantedListError(term, typ)
		default:
			return false, unexpectedTokenError(term)
		}
	}

	ent.Keyvalues[strings.ToLower(name)] = kv
	return closed, nil
}

// parseValueList reads the bracketed choices/spawnflags rows following a
// keyvalue's "=".
func (c *context) parseValueList(typ entity.ValueType) ([]entity.ListEntry, error) {
	if _, e := c.expect(lexer.BrackOpenToken); e != nil {
		return nil, e
	}

	list := make([]entity.ListEntry, 0)
	for {
		t, e := c.next()
		if e != nil {
			return nil, e
		}

		switch t.Kind() {
		case lexer.NewlineToken:
			continue

		case lexer.BrackCloseToken:
			return list, nil

		case lexer.StringToken:
			vals, term, e := c.readColonList(false)
			if e != nil {
				return nil, e
			}

			switch {
			case len(vals) == 2 && typ == entity.ValSpawnFlags:
				list = append(list, entity.ListEntry{Value: t.Text(), Label: vals[0], Default: flagDefault(vals[1])})
			case len(vals) == 1 && typ == entity.ValSpawnFlags:
				// Spawnflags default to set when the flag column is omitted.
				list = append(list, entity.ListEntry{Value: t.Text(), Label: vals[0], Default: true})
			case len(vals) == 1:
				list = append(list, entity.ListEntry{Value: t.Text(), Label: vals[0]})
			case len(vals) == 0:
				return nil, emptyListEntryError(t)
			default:
				return nil, tooManyListValuesError(t)
			}

			// A "]" terminating a ": :" line closes the whole list.
			if term.Kind() == lexer.BrackCloseToken {
				return list, nil
			}

		default:
			if t.IsEnd() {
				return nil, eofError(t)
			}
			return nil, unexpectedTokenError(t)
		}
	}
}
