package filesys

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
)

func memFS(t *testing.T, files map[string]string) FileSystem {
	t.Helper()
	mem := afero.NewMemMapFs()
	for name, content := range files {
		if e := afero.WriteFile(mem, name, []byte(content), 0644); e != nil {
			t.Fatalf("writing %q: %s", name, e)
		}
	}
	return New(mem, "game")
}

func TestOpen(t *testing.T) {
	fs := memFS(t, map[string]string{"game/base.fgd": "@mapsize(-1024, 1024)\n"})

	f, e := fs.Open("base.fgd")
	if e != nil {
		t.Fatalf("unexpected error: %s", e)
	}
	if f.Path() != "game/base.fgd" {
		t.Fatalf("unexpected path: %q", f.Path())
	}

	content, e := f.ReadAll()
	if e != nil || string(content) != "@mapsize(-1024, 1024)\n" {
		t.Fatalf("unexpected content: %q, %v", content, e)
	}
}

func TestOpenCanonical(t *testing.T) {
	fs := memFS(t, map[string]string{"game/inc/extra.fgd": ""})

	// Backslash references and redundant segments resolve to one identity.
	samples := []string{"inc/extra.fgd", "inc\\extra.fgd", "./inc/../inc/extra.fgd"}
	for _, name := range samples {
		f, e := fs.Open(name)
		if e != nil {
			t.Fatalf("name %q: unexpected error %s", name, e)
		}
		if f.Path() != "game/inc/extra.fgd" {
			t.Fatalf("name %q: unexpected path %q", name, f.Path())
		}
	}
}

func TestOpenNotFound(t *testing.T) {
	fs := memFS(t, nil)

	_, e := fs.Open("missing.fgd")
	var nf *NotFoundError
	if !errors.As(e, &nf) {
		t.Fatalf("expected NotFoundError, got %v", e)
	}
	if nf.Name != "missing.fgd" {
		t.Fatalf("error does not name the reference: %q", nf.Name)
	}
}
