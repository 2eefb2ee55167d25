package pathassert

import (
	"errors"
	"io/fs"
	"path"
	"strings"
)

// maxLinkResolutions caps how many symbolic links a single canonicalization
// will expand before giving up, mirroring the kernel's ELOOP limit.
const maxLinkResolutions = 40

// errTooManyLinks is the cause attached when link expansion exceeds
// maxLinkResolutions, which indicates a symbolic link cycle.
var errTooManyLinks = errors.New("too many levels of symbolic links")

// Canonicalize resolves every symbolic link in the path and makes it absolute
// against the filesystem root. Canonicalization includes normalization.
//
// Unlike Normalize this touches the filesystem and may fail: every prefix of
// the path must exist, and the filesystem must be able to answer Lstat and
// Readlink for each segment. Failures are returned as *IOError with the
// provider's error as cause. Canonicalizing the zero Path fails with
// ErrInvalid.
func (p Path) Canonicalize() (Path, error) {
	if p.IsZero() {
		return Path{}, &IOError{Op: "resolve", Path: p.String(), Err: ErrInvalid}
	}
	resolved, err := resolveLinks(p.fsys, p.name)
	if err != nil {
		return Path{}, err
	}
	return Path{fsys: p.fsys, name: resolved}, nil
}

// resolveLinks walks name segment by segment, expanding every symbolic link
// it encounters, and returns the resulting absolute, clean path. Relative
// names resolve against the filesystem root, which is the working context of
// a provider-rooted filesystem.
//
// ".." is applied against the already-resolved prefix rather than collapsed
// lexically up front, so "link/../x" resolves through the link first.
func resolveLinks(fsys FS, name string) (string, error) {
	left := splitSegments(name)
	resolved := "/"

	links := 0
	for len(left) > 0 {
		seg := left[0]
		left = left[1:]

		// The resolved prefix is link-free at this point, so collapsing
		// ".." against it lexically is correct.
		next := path.Join(resolved, seg)
		if seg == ".." {
			resolved = next
			continue
		}

		fi, err := fsys.Lstat(next)
		if err != nil {
			return "", &IOError{Op: "resolve", Path: next, Err: err}
		}
		if fi.Mode()&fs.ModeSymlink == 0 {
			resolved = next
			continue
		}

		links++
		if links > maxLinkResolutions {
			return "", &IOError{Op: "resolve", Path: next, Err: errTooManyLinks}
		}
		target, err := fsys.Readlink(next)
		if err != nil {
			return "", &IOError{Op: "readlink", Path: next, Err: err}
		}
		if path.IsAbs(target) {
			resolved = "/"
		}
		// The link target's segments are walked in place of the link,
		// followed by whatever was left of the original path.
		left = append(splitSegments(target), left...)
	}
	return resolved, nil
}

// splitSegments splits name into segments, dropping empty and "." elements.
// ".." is kept: it is applied against the resolved prefix during the walk.
func splitSegments(name string) []string {
	var segs []string
	for _, s := range strings.Split(name, "/") {
		if s != "" && s != "." {
			segs = append(segs, s)
		}
	}
	return segs
}
