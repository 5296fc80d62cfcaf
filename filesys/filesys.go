// Package filesys abstracts the filesystem used to resolve @include targets.
package filesys

import (
	"fmt"
	"path"
	"strings"

	"github.com/spf13/afero"
)

// File is an openable FGD file. Path is the canonical resolved path, used
// both for diagnostics and as the re-inclusion identity: two references
// denoting the same file must report the same path.
type File interface {
	Path() string

	// ReadAll returns the whole file content. The underlying handle is
	// acquired, consumed, and released within the call.
	ReadAll() ([]byte, error)
}

// FileSystem resolves a textual file reference to an openable file.
type FileSystem interface {
	// Open resolves name relative to the filesystem root.
	// Returns *NotFoundError if no such file exists.
	Open(name string) (File, error)
}

// NotFoundError reports a file reference that resolves to nothing.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("file not found: %q", e.Name)
}

type aferoFS struct {
	fs   afero.Fs
	root string
}

type aferoFile struct {
	fs   afero.Fs
	path string
}

// New returns a FileSystem resolving names against root inside fs.
func New(fs afero.Fs, root string) FileSystem {
	return &aferoFS{fs: fs, root: root}
}

// Dir returns a FileSystem serving files from a directory of the OS tree.
func Dir(root string) FileSystem {
	return New(afero.NewOsFs(), root)
}

func (a *aferoFS) Open(name string) (File, error) {
	p := path.Clean(path.Join(a.root, strings.ReplaceAll(name, "\\", "/")))
	ok, err := afero.Exists(a.fs, p)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &NotFoundError{Name: name}
	}

	return &aferoFile{fs: a.fs, path: p}, nil
}

func (f *aferoFile) Path() string {
	return f.path
}

func (f *aferoFile) ReadAll() ([]byte, error) {
	return afero.ReadFile(f.fs, f.path)
}
