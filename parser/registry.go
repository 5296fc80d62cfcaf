package parser

import (
	"sort"
	"strings"

	"github.com/forgetools/fgd/entity"
)

// FGD is the entity registry for one game, possibly composed of several
// files. It is populated by Parse and safe to query afterwards; it must not
// be shared across concurrent loads.
type FGD struct {
	// Entities is keyed by case-folded classname.
	Entities map[string]*entity.Def

	// Maximum bounding box of a map; the last @mapsize directive wins.
	MapSizeMin int
	MapSizeMax int

	// Canonical paths of the files already parsed, so diamond-shaped or
	// cyclic include graphs terminate and never double-register entities.
	visited map[string]bool
}

func NewFGD() *FGD {
	return &FGD{
		Entities: make(map[string]*entity.Def),
		visited:  make(map[string]bool),
	}
}

// Entity looks up an entity definition by classname, case-insensitively.
// Returns nil if no such class is registered.
func (f *FGD) Entity(classname string) *entity.Def {
	return f.Entities[strings.ToLower(classname)]
}

// Classnames returns all registered case-folded classnames, sorted.
func (f *FGD) Classnames() []string {
	names := make([]string, 0, len(f.Entities))
	for name := range f.Entities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// resolveBases converts every entity's textual base names into direct
// references. Runs strictly after all files are loaded, since a base class
// may be defined later, in an included file processed after the reference.
func (f *FGD) resolveBases() error {
	for _, name := range f.Classnames() {
		e := f.Entities[name].ResolveBases(f.Entities)
		if e != nil {
			return unknownBaseError(e.(*entity.UnknownBaseError))
		}
	}
	return nil
}
