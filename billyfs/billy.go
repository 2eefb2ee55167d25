// Package billyfs provides go-billy backed filesystem providers for
// pathassert. It offers a local (disk-backed) provider and an in-memory
// provider with symbolic link support, plus Wrap for binding assertions to
// any other billy.Filesystem while maintaining access to the underlying
// filesystem for go-git integration.
package billyfs

import (
	"io/fs"
	"path"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/jmgilman/go/pathassert"
)

// Provider identities reported by the built-in constructors.
const (
	ProviderLocal  = "local"
	ProviderMemory = "memory"
)

// FS adapts a billy.Filesystem to the read-only pathassert.FS interface.
type FS struct {
	bfs      billy.Filesystem
	provider string
}

// NewLocal creates a go-billy backed local filesystem rooted at the
// filesystem root ("/").
func NewLocal() *FS {
	return &FS{bfs: osfs.New("/"), provider: ProviderLocal}
}

// NewLocalRooted creates a go-billy backed local filesystem rooted at the
// given directory. Paths are resolved relative to root, and symbolic links
// escaping it are rejected by billy's chroot handling.
func NewLocalRooted(root string) *FS {
	return &FS{bfs: osfs.New(root), provider: ProviderLocal}
}

// NewMemory creates a go-billy backed in-memory filesystem. The filesystem
// is initially empty and supports symbolic links.
func NewMemory() *FS {
	return &FS{bfs: memfs.New(), provider: ProviderMemory}
}

// Wrap adapts an arbitrary billy.Filesystem under the given provider
// identity. Two wrapped filesystems are comparable by pathassert's
// two-handle predicates iff they share the provider string.
func Wrap(bfs billy.Filesystem, provider string) *FS {
	return &FS{bfs: bfs, provider: provider}
}

// Unwrap returns the underlying billy.Filesystem for go-git integration and
// for test fixture setup.
func (f *FS) Unwrap() billy.Filesystem {
	return f.bfs
}

// Path binds a name to this filesystem, returning a handle ready for
// assertion.
func (f *FS) Path(name string) pathassert.Path {
	return pathassert.New(f, name)
}

// normalize converts paths to a clean, root-anchored slash form before
// handing them to billy. Anchoring at the root keeps relative and absolute
// spellings of the same name pointing at the same entry; billy's chroot
// handling covers security.
func normalize(name string) string {
	return path.Join("/", filepath.ToSlash(name))
}

// Stat returns file metadata for the named path, following symbolic links.
func (f *FS) Stat(name string) (fs.FileInfo, error) {
	return f.bfs.Stat(normalize(name))
}

// Lstat returns file metadata for the named path without following symbolic
// links.
func (f *FS) Lstat(name string) (fs.FileInfo, error) {
	return f.bfs.Lstat(normalize(name))
}

// Readlink returns the destination of the named symbolic link as stored.
func (f *FS) Readlink(name string) (string, error) {
	return f.bfs.Readlink(normalize(name))
}

// Provider returns the provider identity given at construction.
func (f *FS) Provider() string {
	return f.provider
}

// Compile-time interface check.
var _ pathassert.FS = (*FS)(nil)
