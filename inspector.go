package pathassert

import (
	"errors"
	"io/fs"
)

// Inspector performs the raw existence, type, and symbolic-link queries
// behind the validation engine. The engine supplies handles that have already
// passed argument validation, so implementations may assume non-zero paths.
//
// Non-existence is an answer, not an error: the boolean result is false and
// the error is nil. Any other failure to read filesystem metadata (permission
// denied, closed filesystem, provider errors) is wrapped into *IOError so the
// engine has one failure shape to handle. The engine decides whether
// non-existence is itself a violation; the inspector never does.
//
//go:generate moq -pkg mocks -out mocks/inspector.go . Inspector
type Inspector interface {
	// Exists reports whether the path exists. With followLinks true, a
	// symbolic link whose target is missing reports false. With followLinks
	// false, the link's own existence is reported regardless of its target.
	Exists(p Path, followLinks bool) (bool, error)

	// IsRegularFile reports whether the path resolves to a regular file.
	// Symbolic links are always followed. A non-existent path answers false.
	IsRegularFile(p Path) (bool, error)

	// IsDirectory reports whether the path resolves to a directory.
	// Symbolic links are always followed. A non-existent path answers false.
	IsDirectory(p Path) (bool, error)

	// IsSymbolicLink reports whether the path itself is a symbolic link,
	// dangling or not. Symbolic links are never followed.
	IsSymbolicLink(p Path) (bool, error)
}

// fsInspector is the default Inspector, answering queries through the
// handle's own filesystem. It is stateless; the zero value is ready to use.
type fsInspector struct{}

func (fsInspector) Exists(p Path, followLinks bool) (bool, error) {
	op := "stat"
	var err error
	if followLinks {
		_, err = p.fsys.Stat(p.name)
	} else {
		op = "lstat"
		_, err = p.fsys.Lstat(p.name)
	}
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, &IOError{Op: op, Path: p.name, Err: err}
}

func (fsInspector) IsRegularFile(p Path) (bool, error) {
	fi, err := p.fsys.Stat(p.name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, &IOError{Op: "stat", Path: p.name, Err: err}
	}
	return fi.Mode().IsRegular(), nil
}

func (fsInspector) IsDirectory(p Path) (bool, error) {
	fi, err := p.fsys.Stat(p.name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, &IOError{Op: "stat", Path: p.name, Err: err}
	}
	return fi.IsDir(), nil
}

func (fsInspector) IsSymbolicLink(p Path) (bool, error) {
	fi, err := p.fsys.Lstat(p.name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, &IOError{Op: "lstat", Path: p.name, Err: err}
	}
	return fi.Mode()&fs.ModeSymlink != 0, nil
}

// Compile-time interface check.
var _ Inspector = fsInspector{}
