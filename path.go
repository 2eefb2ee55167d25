package pathassert

import (
	"path"
	"strings"
)

// Path is an opaque handle to a location in a specific filesystem instance.
// It carries the name exactly as given by the caller together with the
// filesystem it is bound to; no segment is reinterpreted or resolved until a
// predicate asks for it.
//
// The zero Path is the absent handle. Every predicate rejects it with a
// usage-error failure before touching the filesystem.
//
// Path values are immutable. Normalize and Canonicalize return new handles
// bound to the same filesystem.
type Path struct {
	fsys FS
	name string
}

// New binds a slash-separated name to a filesystem. An empty name or nil
// filesystem yields the zero Path.
func New(fsys FS, name string) Path {
	if fsys == nil || name == "" {
		return Path{}
	}
	return Path{fsys: fsys, name: name}
}

// IsZero reports whether p is the zero Path.
func (p Path) IsZero() bool {
	return p.fsys == nil && p.name == ""
}

// String returns the name as given to New. The zero Path renders as "<zero>".
func (p Path) String() string {
	if p.IsZero() {
		return "<zero>"
	}
	return p.name
}

// FS returns the filesystem this handle is bound to, or nil for the zero
// Path.
func (p Path) FS() FS {
	return p.fsys
}

// Provider returns the provider identity of the owning filesystem, or the
// empty string for the zero Path.
func (p Path) Provider() string {
	if p.fsys == nil {
		return ""
	}
	return p.fsys.Provider()
}

// IsAbs reports whether the path is absolute, that is, rooted at the
// filesystem root.
func (p Path) IsAbs() bool {
	return strings.HasPrefix(p.name, "/")
}

// Segments returns the path's name elements as given, with empty elements
// dropped. "." and ".." are kept: they are name elements until Normalize or
// Canonicalize removes them. The root path has no segments.
func (p Path) Segments() []string {
	var segs []string
	for _, s := range strings.Split(p.name, "/") {
		if s != "" {
			segs = append(segs, s)
		}
	}
	return segs
}

// FileName returns the last segment of the path, or the empty string if the
// path has none (the root path and the zero Path).
func (p Path) FileName() string {
	segs := p.Segments()
	if len(segs) == 0 {
		return ""
	}
	return segs[len(segs)-1]
}

// Parent returns the path with its last segment removed. The second return
// value is false when the path has no parent: the root path, a single-segment
// relative path, and the zero Path.
func (p Path) Parent() (Path, bool) {
	segs := p.Segments()
	switch {
	case len(segs) == 0:
		return Path{}, false
	case len(segs) == 1:
		if p.IsAbs() {
			return Path{fsys: p.fsys, name: "/"}, true
		}
		return Path{}, false
	default:
		name := strings.Join(segs[:len(segs)-1], "/")
		if p.IsAbs() {
			name = "/" + name
		}
		return Path{fsys: p.fsys, name: name}, true
	}
}

// Normalize returns the path with redundant segments removed ("." elements,
// ".." elements and the segments they cancel, repeated separators). It is
// purely syntactic, never touches the filesystem, and never fails. The zero
// Path normalizes to itself.
func (p Path) Normalize() Path {
	if p.IsZero() {
		return Path{}
	}
	return Path{fsys: p.fsys, name: path.Clean(p.name)}
}

// Equal reports whether the two handles denote the same path: same provider,
// same absoluteness, same segments as given. It does not consult the
// filesystem, so "a/b" and "a/./b" are not equal until normalized.
func (p Path) Equal(other Path) bool {
	if p.IsZero() || other.IsZero() {
		return p.IsZero() && other.IsZero()
	}
	if p.Provider() != other.Provider() || p.IsAbs() != other.IsAbs() {
		return false
	}
	return segmentsEqual(p.Segments(), other.Segments())
}

// StartsWith reports whether the path begins with the given path, comparing
// segments as given. An absolute path never starts with a relative one and
// vice versa.
func (p Path) StartsWith(other Path) bool {
	if p.IsZero() || other.IsZero() || p.IsAbs() != other.IsAbs() {
		return false
	}
	segs, prefix := p.Segments(), other.Segments()
	if len(prefix) > len(segs) {
		return false
	}
	return segmentsEqual(segs[:len(prefix)], prefix)
}

// EndsWith reports whether the path finishes with the given path, comparing
// segments as given. If other is absolute, the two paths must denote the same
// absolute path entirely.
func (p Path) EndsWith(other Path) bool {
	if p.IsZero() || other.IsZero() {
		return false
	}
	segs, suffix := p.Segments(), other.Segments()
	if other.IsAbs() {
		return p.IsAbs() && segmentsEqual(segs, suffix)
	}
	if len(suffix) > len(segs) {
		return false
	}
	return segmentsEqual(segs[len(segs)-len(suffix):], suffix)
}

// SameProvider reports whether both handles are bound to filesystem instances
// from the same provider. Predicates that compare two handles require this;
// handles from different providers fail with a provider-mismatch failure
// rather than being silently coerced. The zero Path shares a provider with
// nothing.
func SameProvider(a, b Path) bool {
	if a.IsZero() || b.IsZero() {
		return false
	}
	return a.Provider() == b.Provider()
}

func segmentsEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
