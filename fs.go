package pathassert

import (
	"errors"
	"io/fs"
)

// FS is the minimal read-only view of a filesystem that path assertions need.
// Implementations answer metadata queries for slash-separated names resolved
// against the filesystem root.
//
// The three query methods differ in how they treat symbolic links: Stat
// follows them, Lstat does not, and Readlink reads a link's target without
// resolving it. Providers that do not support symbolic links should return an
// error wrapping ErrUnsupported from Readlink; Lstat may then behave like
// Stat.
type FS interface {
	// Stat returns metadata for the named path, following symbolic links.
	// A symbolic link whose target does not exist reports ErrNotExist.
	Stat(name string) (fs.FileInfo, error)

	// Lstat returns metadata for the named path without following symbolic
	// links. If the path is a symbolic link, the returned FileInfo describes
	// the link itself, not its target.
	Lstat(name string) (fs.FileInfo, error)

	// Readlink returns the destination of the named symbolic link as stored,
	// without resolving it. It returns an error if the path is not a
	// symbolic link.
	Readlink(name string) (string, error)

	// Provider identifies the filesystem implementation backing this
	// instance, in the manner of a URI scheme (for example "local" or
	// "memory"). Two Path handles are comparable only when their filesystems
	// report the same provider; see SameProvider.
	Provider() string
}

// Sentinel errors re-exported from io/fs for convenience, so callers do not
// need a separate import to classify inspector causes.
var (
	// ErrNotExist is returned when a file or directory does not exist.
	ErrNotExist = fs.ErrNotExist

	// ErrPermission is returned when permission is denied.
	ErrPermission = fs.ErrPermission

	// ErrInvalid is returned for invalid operations, such as canonicalizing
	// the zero Path.
	ErrInvalid = fs.ErrInvalid

	// ErrUnsupported is returned by providers for operations they cannot
	// perform, such as Readlink on a filesystem without symbolic links.
	ErrUnsupported = errors.ErrUnsupported
)

// IOError wraps any error raised while reading filesystem metadata, so the
// validation engine has a single failure shape to handle regardless of the
// provider. The original error is preserved as Err and remains reachable
// through errors.Is and errors.As.
type IOError struct {
	// Op is the failed operation ("stat", "lstat", "readlink", "resolve").
	Op string
	// Path is the name the operation was invoked with.
	Path string
	// Err is the underlying provider error.
	Err error
}

// Error returns the string representation of the error.
func (e *IOError) Error() string {
	if e.Err == nil {
		return e.Op + " " + e.Path
	}
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

// Unwrap returns the underlying provider error.
func (e *IOError) Unwrap() error {
	return e.Err
}
