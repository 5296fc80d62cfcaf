package parser

import (
	"errors"
	"strconv"
	"strings"

	"github.com/forgetools/fgd/entity"
	"github.com/forgetools/fgd/filesys"
	"github.com/forgetools/fgd/lexer"
	"github.com/forgetools/fgd/source"
)

// Extension is appended to file references that lack it.
const Extension = ".fgd"

// Parse loads the named root file and all its transitive includes from fs
// into a fresh registry, then resolves every entity's base classes. On any
// error the whole load fails and no registry is returned.
func Parse(fs filesys.FileSystem, name string) (*FGD, error) {
	reg := NewFGD()
	c := newContext(reg, fs)

	if e := c.pushFile(name, nil); e != nil {
		return nil, e
	}
	if e := c.run(); e != nil {
		return nil, e
	}
	if e := reg.resolveBases(); e != nil {
		return nil, e
	}

	return reg, nil
}

// pushFile resolves a file reference and makes it the current token source,
// suspending the file that included it. Files already visited are silently
// skipped. at is the token to blame in errors, nil for the root file.
func (c *context) pushFile(name string, at *lexer.Token) error {
	if !strings.HasSuffix(strings.ToLower(name), Extension) {
		name += Extension
	}

	file, e := c.fs.Open(name)
	if e != nil {
		var nf *filesys.NotFoundError
		if errors.As(e, &nf) {
			return includeNotFoundError(at, name)
		}
		return e
	}

	if c.reg.visited[file.Path()] {
		return nil
	}
	c.reg.visited[file.Path()] = true

	content, e := file.ReadAll()
	if e != nil {
		return fileReadError(file.Path(), e)
	}

	c.q.Push(source.New(file.Path(), content))
	return nil
}

// run is the top-level directive loop. The only things at top level are
// @-directives and blank lines; file boundaries of includes pass through as
// end-of-file tokens.
func (c *context) run() error {
	for {
		t, e := c.next()
		if e != nil {
			return e
		}

		switch t.Kind() {
		case lexer.NewlineToken, lexer.EofToken:
			continue
		case lexer.EoiToken:
			return nil
		case lexer.StringToken:
		default:
			return unexpectedTokenError(t)
		}

		word := strings.ToLower(t.Text())
		switch {
		case word == "@include":
			nameTok, e := c.expect(lexer.StringToken)
			if e != nil {
				return e
			}
			// Depth-first: the included file is fully consumed before the
			// current one continues.
			if e = c.pushFile(nameTok.Text(), nameTok); e != nil {
				return e
			}

		case word == "@mapsize":
			if e := c.parseMapSize(); e != nil {
				return e
			}

		case strings.HasPrefix(word, "@"):
			class, has := entity.LookupClass(word[1:])
			if !has {
				return invalidClassError(t)
			}
			if e := c.parseEntity(class); e != nil {
				return e
			}

		default:
			return badKeywordError(t)
		}
	}
}

// parseMapSize reads a "(min, max)" pair of integers into the registry.
func (c *context) parseMapSize() error {
	argsTok, e := c.expect(lexer.ParenArgsToken)
	if e != nil {
		return e
	}

	parts := strings.Split(argsTok.Text(), ",")
	if len(parts) != 2 {
		return mapSizeError(argsTok)
	}

	minSize, e1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	maxSize, e2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	if e1 != nil || e2 != nil {
		return mapSizeError(argsTok)
	}

	c.reg.MapSizeMin = minSize
	c.reg.MapSizeMax = maxSize
	return nil
}
