package entity

import (
	"fmt"
	"strings"
)

// ListEntry is one row of a choices or spawnflags list.
// Default is meaningful for spawnflags entries only.
type ListEntry struct {
	Value   string // raw stored value, type-uninterpreted
	Label   string // display label
	Default bool   // spawnflags: whether the flag starts set
}

// KeyValue is a named, typed property an entity instance can carry.
type KeyValue struct {
	Name     string // original casing; map keys are case-folded
	Type     ValueType
	DispName string // defaults to Name
	Default  string // raw default, type-uninterpreted
	// HasDefault distinguishes an absent default from an explicit empty one.
	HasDefault bool
	Desc       string
	// ValList is non-nil exactly when Type.HasList().
	ValList  []ListEntry
	ReadOnly bool
}

// IODef is an input or output of an entity. Direction is the namespace the
// definition is stored under, not a field.
type IODef struct {
	Name string
	Type ValueType // never a list-bearing type
	Desc string
}

// Helper is one editor-rendering helper invocation from an entity header.
type Helper struct {
	Kind HelperKind
	Args []string
}

// UnknownBaseError reports a base classname that no entity defines.
type UnknownBaseError struct {
	Base      string
	Classname string
}

func (e *UnknownBaseError) Error() string {
	return fmt.Sprintf("unknown base %q for %q", e.Base, e.Classname)
}

// BaseList tracks an entity's inherited classes. During parsing it holds
// case-folded classnames; after the registry-wide resolution pass it holds
// direct references instead. The transition happens exactly once.
type BaseList struct {
	names    []string
	refs     []*Def
	resolved bool
}

// AddName records a base classname, case-folded and trimmed.
// Duplicates are skipped.
func (b *BaseList) AddName(name string) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, n := range b.names {
		if n == name {
			return
		}
	}
	b.names = append(b.names, name)
}

// Names returns the recorded base classnames in declaration order.
func (b *BaseList) Names() []string {
	return b.names
}

// Resolved reports whether classnames have been replaced with references.
func (b *BaseList) Resolved() bool {
	return b.resolved
}

// Refs returns the resolved base entities in declaration order, or nil while
// the list is still unresolved.
func (b *BaseList) Refs() []*Def {
	return b.refs
}

// Def is a parsed entity class definition.
type Def struct {
	Class     Class
	Classname string

	// All three maps are keyed by case-folded names; inputs and outputs are
	// independent namespaces.
	Keyvalues map[string]*KeyValue
	Inputs    map[string]*IODef
	Outputs   map[string]*IODef

	Bases   BaseList
	Helpers []Helper
	Desc    string
}

func NewDef(class Class) *Def {
	return &Def{
		Class:     class,
		Keyvalues: make(map[string]*KeyValue),
		Inputs:    make(map[string]*IODef),
		Outputs:   make(map[string]*IODef),
	}
}

// KeyValue looks up a keyvalue by name, case-insensitively.
func (d *Def) KeyValue(name string) *KeyValue {
	return d.Keyvalues[strings.ToLower(name)]
}

// Input looks up an input by name, case-insensitively.
func (d *Def) Input(name string) *IODef {
	return d.Inputs[strings.ToLower(name)]
}

// Output looks up an output by name, case-insensitively.
func (d *Def) Output(name string) *IODef {
	return d.Outputs[strings.ToLower(name)]
}

// ResolveBases replaces the recorded base classnames with direct references,
// preserving order. lookup is keyed by case-folded classname. Fails on the
// first name with no matching entity. Resolving an already resolved list is
// a no-op.
func (d *Def) ResolveBases(lookup map[string]*Def) error {
	if d.Bases.resolved {
		return nil
	}

	refs := make([]*Def, 0, len(d.Bases.names))
	for _, name := range d.Bases.names {
		base, has := lookup[name]
		if !has {
			return &UnknownBaseError{Base: name, Classname: d.Classname}
		}
		refs = append(refs, base)
	}

	d.Bases.refs = refs
	d.Bases.resolved = true
	return nil
}

func (d *Def) String() string {
	if d.Class == ClassBase {
		return fmt.Sprintf("<Entity Base %q>", d.Classname)
	}
	return fmt.Sprintf("<Entity %s>", d.Classname)
}
