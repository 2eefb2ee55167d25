package pathassert

// TestingT is the subset of *testing.T the assertion chain reports through.
// Anything satisfying it can act as the reporting boundary.
type TestingT interface {
	Errorf(format string, args ...interface{})
	FailNow()
}

type tHelper interface {
	Helper()
}

// PathAssert is the fluent assertion chain for a single path handle. Each
// predicate method delegates to the validation engine and returns the
// receiver, so assertions chain:
//
//	pathassert.Assert(t, p).Exists().IsRegularFile()
//
// Plain violations are reported through t.Errorf and the chain continues.
// Usage errors, provider mismatches, and I/O failures end the test
// immediately: the remaining assertions could not be answered meaningfully.
type PathAssert struct {
	t      TestingT
	engine Engine
	path   Path
}

// Assert starts an assertion chain for the given path, reporting failures
// through t.
func Assert(t TestingT, p Path) *PathAssert {
	return &PathAssert{t: t, path: p}
}

// WithEngine replaces the engine used by subsequent assertions. Useful for
// injecting an Inspector in tests of the chain itself.
func (a *PathAssert) WithEngine(engine Engine) *PathAssert {
	a.engine = engine
	return a
}

// Path returns the handle under assertion.
func (a *PathAssert) Path() Path {
	return a.path
}

func (a *PathAssert) report(o Outcome) *PathAssert {
	if o.Satisfied() {
		return a
	}
	if h, ok := a.t.(tHelper); ok {
		h.Helper()
	}
	f := o.Failure()
	a.t.Errorf("%s", f.Error())
	if f.Kind() != KindViolation {
		a.t.FailNow()
	}
	return a
}

// Exists asserts that the path exists, following symbolic links.
func (a *PathAssert) Exists() *PathAssert {
	return a.report(a.engine.Exists(a.path))
}

// ExistsNoFollow asserts that the path exists without following symbolic
// links, so a dangling link passes.
func (a *PathAssert) ExistsNoFollow() *PathAssert {
	return a.report(a.engine.ExistsNoFollow(a.path))
}

// DoesNotExist asserts that the path does not exist. Symbolic links are not
// followed: a dangling link counts as existing and fails this assertion.
func (a *PathAssert) DoesNotExist() *PathAssert {
	return a.report(a.engine.DoesNotExist(a.path))
}

// IsRegularFile asserts that the path exists and resolves to a regular file,
// following symbolic links.
func (a *PathAssert) IsRegularFile() *PathAssert {
	return a.report(a.engine.IsRegularFile(a.path))
}

// IsDirectory asserts that the path exists and resolves to a directory,
// following symbolic links.
func (a *PathAssert) IsDirectory() *PathAssert {
	return a.report(a.engine.IsDirectory(a.path))
}

// IsSymbolicLink asserts that the path itself is a symbolic link, dangling
// or not.
func (a *PathAssert) IsSymbolicLink() *PathAssert {
	return a.report(a.engine.IsSymbolicLink(a.path))
}

// IsAbsolute asserts that the path is absolute.
func (a *PathAssert) IsAbsolute() *PathAssert {
	return a.report(a.engine.IsAbsolute(a.path))
}

// IsRelative asserts that the path is not absolute.
func (a *PathAssert) IsRelative() *PathAssert {
	return a.report(a.engine.IsRelative(a.path))
}

// IsNormalized asserts that the path carries no redundant segments.
func (a *PathAssert) IsNormalized() *PathAssert {
	return a.report(a.engine.IsNormalized(a.path))
}

// IsCanonical asserts that the path equals its own canonicalization.
func (a *PathAssert) IsCanonical() *PathAssert {
	return a.report(a.engine.IsCanonical(a.path))
}

// HasFileName asserts that the path's last segment equals name.
func (a *PathAssert) HasFileName(name string) *PathAssert {
	return a.report(a.engine.HasFileName(a.path, name))
}

// HasParent asserts that the canonical path's parent is the canonical given
// parent.
func (a *PathAssert) HasParent(parent Path) *PathAssert {
	return a.report(a.engine.HasParent(a.path, parent))
}

// HasParentRaw asserts that the path's syntactic parent equals the given
// parent as given.
func (a *PathAssert) HasParentRaw(parent Path) *PathAssert {
	return a.report(a.engine.HasParentRaw(a.path, parent))
}

// HasNoParent asserts that the canonical path has no parent.
func (a *PathAssert) HasNoParent() *PathAssert {
	return a.report(a.engine.HasNoParent(a.path))
}

// HasNoParentRaw asserts that the path, as given, has no syntactic parent.
func (a *PathAssert) HasNoParentRaw() *PathAssert {
	return a.report(a.engine.HasNoParentRaw(a.path))
}

// StartsWith asserts that the canonical path starts with the canonical given
// prefix.
func (a *PathAssert) StartsWith(prefix Path) *PathAssert {
	return a.report(a.engine.StartsWith(a.path, prefix))
}

// StartsWithRaw asserts that the path starts with the given prefix, segments
// compared as given.
func (a *PathAssert) StartsWithRaw(prefix Path) *PathAssert {
	return a.report(a.engine.StartsWithRaw(a.path, prefix))
}

// EndsWith asserts that the canonical path ends with the normalized given
// suffix.
func (a *PathAssert) EndsWith(suffix Path) *PathAssert {
	return a.report(a.engine.EndsWith(a.path, suffix))
}

// EndsWithRaw asserts that the path ends with the given suffix, segments
// compared as given.
func (a *PathAssert) EndsWithRaw(suffix Path) *PathAssert {
	return a.report(a.engine.EndsWithRaw(a.path, suffix))
}
