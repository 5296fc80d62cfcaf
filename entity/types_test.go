package entity

import (
	"strings"
	"testing"
)

func TestLookupValueType(t *testing.T) {
	samples := []struct {
		tag string
		typ ValueType
	}{
		{"void", ValVoid},
		{"choices", ValChoices},
		{"flags", ValSpawnFlags},
		{"integer", ValInt},
		{"int", ValInt},
		{"boolean", ValBool},
		{"bool", ValBool},
		{"STRING", ValString},
		{"Target_Destination", ValTargDest},
		{"studio", ValStrModel},
		{"instance_variable", ValInstVarRep},
	}
	for _, s := range samples {
		typ, e := LookupValueType(s.tag)
		if e != nil {
			t.Fatalf("tag %q: unexpected error %s", s.tag, e)
		}
		if typ != s.typ {
			t.Fatalf("tag %q: expecting %s, got %s", s.tag, s.typ, typ)
		}
	}
}

func TestLookupValueTypeUnknown(t *testing.T) {
	_, e := LookupValueType("bogus")
	te, is := e.(*ValueTypeError)
	if !is {
		t.Fatalf("expected ValueTypeError, got %v", e)
	}
	if te.Tag != "bogus" || !strings.Contains(te.Error(), "bogus") {
		t.Fatalf("error does not name the tag: %s", te)
	}
}

func TestValueTypeTags(t *testing.T) {
	if ValInt.Tag() != "integer" || ValBool.Tag() != "boolean" {
		t.Fatalf("alias types must report their canonical tags, got %q, %q", ValInt.Tag(), ValBool.Tag())
	}
	for typ, tag := range valueTypeTags {
		back, e := LookupValueType(tag)
		if e != nil || back != typ {
			t.Fatalf("tag %q does not round-trip: %v, %v", tag, back, e)
		}
	}
}

func TestHasList(t *testing.T) {
	for typ := range valueTypeTags {
		want := typ == ValChoices || typ == ValSpawnFlags
		if typ.HasList() != want {
			t.Fatalf("%s: HasList() = %v", typ, typ.HasList())
		}
	}
}

func TestLookupClass(t *testing.T) {
	samples := []struct {
		tag   string
		class Class
	}{
		{"baseclass", ClassBase},
		{"PointClass", ClassPoint},
		{"SolidClass", ClassBrush},
		{"KeyFrameClass", ClassRopes},
		{"MoveClass", ClassTrack},
		{"FilterClass", ClassFilter},
		{"NPCClass", ClassNPC},
	}
	for _, s := range samples {
		class, has := LookupClass(s.tag)
		if !has || class != s.class {
			t.Fatalf("tag %q: expecting %s, got %v, %v", s.tag, s.class, class, has)
		}
	}

	if _, has := LookupClass("WeirdClass"); has {
		t.Fatalf("unknown class tag resolved")
	}
}

func TestLookupHelper(t *testing.T) {
	kind, has := LookupHelper("iconsprite")
	if !has || kind != HelperIconSprite {
		t.Fatalf("expecting iconsprite helper, got %v, %v", kind, has)
	}

	// Helper tags are matched exactly, unlike classes and value types.
	if _, has := LookupHelper("IconSprite"); has {
		t.Fatalf("helper lookup must not case-fold")
	}
	if _, has := LookupHelper("studio3"); has {
		t.Fatalf("unknown helper tag resolved")
	}
}
