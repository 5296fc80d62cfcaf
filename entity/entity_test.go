package entity

import (
	"strings"
	"testing"
)

func TestBaseListAddName(t *testing.T) {
	var b BaseList
	b.AddName("Targetname")
	b.AddName(" Angles ")
	b.AddName("TARGETNAME") // duplicate after folding

	names := b.Names()
	if len(names) != 2 || names[0] != "targetname" || names[1] != "angles" {
		t.Fatalf("unexpected names: %v", names)
	}
	if b.Resolved() || b.Refs() != nil {
		t.Fatalf("fresh list must be unresolved")
	}
}

func TestDefLookups(t *testing.T) {
	d := NewDef(ClassPoint)
	d.Classname = "info_target"
	d.Keyvalues["health"] = &KeyValue{Name: "Health", Type: ValInt}
	d.Inputs["sethealth"] = &IODef{Name: "SetHealth", Type: ValInt}
	d.Outputs["ondamaged"] = &IODef{Name: "OnDamaged", Type: ValVoid}

	if kv := d.KeyValue("HEALTH"); kv == nil || kv.Name != "Health" {
		t.Fatalf("case-insensitive keyvalue lookup failed: %v", kv)
	}
	if in := d.Input("SetHealth"); in == nil || in.Type != ValInt {
		t.Fatalf("case-insensitive input lookup failed: %v", in)
	}
	if out := d.Output("OnDamaged"); out == nil {
		t.Fatalf("case-insensitive output lookup failed")
	}

	// Inputs and outputs are separate namespaces.
	if d.Input("OnDamaged") != nil || d.Output("SetHealth") != nil {
		t.Fatalf("input and output namespaces leaked into each other")
	}
	if d.KeyValue("missing") != nil {
		t.Fatalf("lookup of an absent keyvalue returned a value")
	}
}

func TestResolveBases(t *testing.T) {
	base := NewDef(ClassBase)
	base.Classname = "Targetname"
	child := NewDef(ClassPoint)
	child.Classname = "info_target"
	child.Bases.AddName("Targetname")

	lookup := map[string]*Def{"targetname": base, "info_target": child}
	if e := child.ResolveBases(lookup); e != nil {
		t.Fatalf("unexpected error: %s", e)
	}
	if !child.Bases.Resolved() {
		t.Fatalf("list still unresolved after ResolveBases")
	}
	refs := child.Bases.Refs()
	if len(refs) != 1 || refs[0] != base {
		t.Fatalf("unexpected refs: %v", refs)
	}

	// A second pass must be a no-op, even with an empty lookup.
	if e := child.ResolveBases(nil); e != nil {
		t.Fatalf("re-resolving failed: %s", e)
	}
}

func TestResolveBasesUnknown(t *testing.T) {
	child := NewDef(ClassPoint)
	child.Classname = "info_target"
	child.Bases.AddName("NoSuchBase")

	e := child.ResolveBases(map[string]*Def{})
	ue, is := e.(*UnknownBaseError)
	if !is {
		t.Fatalf("expected UnknownBaseError, got %v", e)
	}
	if ue.Base != "nosuchbase" || ue.Classname != "info_target" {
		t.Fatalf("error does not name base and entity: %v", ue)
	}
	if child.Bases.Resolved() {
		t.Fatalf("failed resolution must leave the list unresolved")
	}
}

func TestDefString(t *testing.T) {
	base := NewDef(ClassBase)
	base.Classname = "Targetname"
	if s := base.String(); !strings.Contains(s, "Base") || !strings.Contains(s, "Targetname") {
		t.Fatalf("unexpected base string: %q", s)
	}

	point := NewDef(ClassPoint)
	point.Classname = "info_target"
	if s := point.String(); strings.Contains(s, "Base") || !strings.Contains(s, "info_target") {
		t.Fatalf("unexpected entity string: %q", s)
	}
}
