package billyfs

import (
	"github.com/go-git/go-billy/v5/util"

	"github.com/jmgilman/go/pathassert"
)

// Fixture arranges filesystem state for assertion tests. It satisfies the
// assertest.Fixture interface, letting the conformance suite run against any
// billy-backed provider. Fixtures exist for test setup only; the assertion
// surface itself never writes.
type Fixture struct {
	fsys *FS
}

// NewFixture creates a fixture backed by the given filesystem.
func NewFixture(fsys *FS) *Fixture {
	return &Fixture{fsys: fsys}
}

// FS returns the filesystem under test.
func (f *Fixture) FS() pathassert.FS {
	return f.fsys
}

// WriteFile creates a regular file with the given contents. The parent
// directory must exist.
func (f *Fixture) WriteFile(name string, data []byte) error {
	return util.WriteFile(f.fsys.bfs, normalize(name), data, 0o644)
}

// MkdirAll creates a directory along with any missing parents.
func (f *Fixture) MkdirAll(name string) error {
	return f.fsys.bfs.MkdirAll(normalize(name), 0o755)
}

// Symlink creates a symbolic link at link pointing at target. The target is
// stored as given and is not required to exist, so dangling links can be
// arranged.
func (f *Fixture) Symlink(target, link string) error {
	return f.fsys.bfs.Symlink(target, normalize(link))
}
