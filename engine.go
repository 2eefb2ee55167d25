package pathassert

import "fmt"

// Engine evaluates path predicates. It is stateless: the zero value is ready
// to use, holds nothing between calls, and is safe for concurrent use to the
// extent the underlying filesystem is.
//
// Every predicate follows the same four-step protocol:
//
//  1. Argument validation. The tested path and any path argument must be
//     non-zero; a zero handle fails with a usage-error outcome before any
//     filesystem access.
//  2. Resolution mode. Each predicate is fixed as either "raw" (segments
//     compared as given, at most normalized) or "canonicalizing" (symbolic
//     links resolved and the path made absolute before testing). This is a
//     property of the predicate, not a runtime option.
//  3. Cross-handle compatibility. Predicates taking a second handle fail
//     with a provider-mismatch outcome when the handles come from different
//     providers, before any inspection.
//  4. Evaluation. The Inspector (or a syntactic comparison) answers, and the
//     result becomes either a satisfied outcome or a structured violation.
//     Inspector errors surface as I/O-failure outcomes carrying the wrapped
//     cause; they are never reported as a plain "false".
type Engine struct {
	// Inspector answers the raw filesystem queries. Leave nil to query the
	// handle's own filesystem.
	Inspector Inspector
}

func (e Engine) inspector() Inspector {
	if e.Inspector != nil {
		return e.Inspector
	}
	return fsInspector{}
}

// checkUsage implements step one: the tested path and every path argument
// must be non-zero before any filesystem access happens.
func checkUsage(predicate string, p Path, args ...Path) (Outcome, bool) {
	if p.IsZero() {
		return usageError(predicate, p, "a non-zero tested path"), false
	}
	for _, a := range args {
		if a.IsZero() {
			return usageError(predicate, a, "a non-zero path argument"), false
		}
	}
	return Outcome{}, true
}

// checkProvider implements step three for two-handle predicates.
func checkProvider(predicate string, p, other Path) (Outcome, bool) {
	if !SameProvider(p, other) {
		return providerMismatch(predicate, p, other), false
	}
	return Outcome{}, true
}

// canonicalize resolves p for a canonicalizing predicate, converting a
// resolution failure into an I/O-failure outcome.
func canonicalize(predicate string, p Path, expected string) (Path, Outcome, bool) {
	canon, err := p.Canonicalize()
	if err != nil {
		return Path{}, ioFailure(predicate, p, expected, err), false
	}
	return canon, Outcome{}, true
}

// Exists passes when the path exists, following symbolic links: a link whose
// target is missing does not exist. Use ExistsNoFollow to assert the
// existence of the link itself.
func (e Engine) Exists(p Path) Outcome {
	const predicate = "Exists"
	if o, ok := checkUsage(predicate, p); !ok {
		return o
	}
	exists, err := e.inspector().Exists(p, true)
	if err != nil {
		return ioFailure(predicate, p, "path to exist", err)
	}
	if !exists {
		return violated(predicate, p, "path to exist (symbolic links followed)")
	}
	return satisfied()
}

// ExistsNoFollow passes when the path exists without following symbolic
// links, so a dangling link still passes.
func (e Engine) ExistsNoFollow(p Path) Outcome {
	const predicate = "ExistsNoFollow"
	if o, ok := checkUsage(predicate, p); !ok {
		return o
	}
	exists, err := e.inspector().Exists(p, false)
	if err != nil {
		return ioFailure(predicate, p, "path to exist", err)
	}
	if !exists {
		return violated(predicate, p, "path to exist (symbolic links not followed)")
	}
	return satisfied()
}

// DoesNotExist passes when the path does not exist, without following
// symbolic links: a dangling link counts as existing, so this predicate
// fails for it. This asymmetry with Exists is deliberate and mirrors
// no-follow existence.
func (e Engine) DoesNotExist(p Path) Outcome {
	const predicate = "DoesNotExist"
	if o, ok := checkUsage(predicate, p); !ok {
		return o
	}
	exists, err := e.inspector().Exists(p, false)
	if err != nil {
		return ioFailure(predicate, p, "path not to exist", err)
	}
	if exists {
		return violated(predicate, p, "path not to exist (a dangling symbolic link counts as existing)")
	}
	return satisfied()
}

// IsRegularFile passes when the path exists and resolves to a regular file.
// Symbolic links are followed, so a link to a regular file passes. Existence
// is asserted first: a missing path fails as non-existent, not as "not a
// regular file".
func (e Engine) IsRegularFile(p Path) Outcome {
	const predicate = "IsRegularFile"
	if o, ok := checkUsage(predicate, p); !ok {
		return o
	}
	insp := e.inspector()
	exists, err := insp.Exists(p, true)
	if err != nil {
		return ioFailure(predicate, p, "path to exist", err)
	}
	if !exists {
		return violated(predicate, p, "path to exist (symbolic links followed)")
	}
	regular, err := insp.IsRegularFile(p)
	if err != nil {
		return ioFailure(predicate, p, "path to be a regular file", err)
	}
	if !regular {
		return violated(predicate, p, "path to be a regular file")
	}
	return satisfied()
}

// IsDirectory passes when the path exists and resolves to a directory.
// Symbolic links are followed, so a link to a directory passes.
func (e Engine) IsDirectory(p Path) Outcome {
	const predicate = "IsDirectory"
	if o, ok := checkUsage(predicate, p); !ok {
		return o
	}
	insp := e.inspector()
	exists, err := insp.Exists(p, true)
	if err != nil {
		return ioFailure(predicate, p, "path to exist", err)
	}
	if !exists {
		return violated(predicate, p, "path to exist (symbolic links followed)")
	}
	dir, err := insp.IsDirectory(p)
	if err != nil {
		return ioFailure(predicate, p, "path to be a directory", err)
	}
	if !dir {
		return violated(predicate, p, "path to be a directory")
	}
	return satisfied()
}

// IsSymbolicLink passes when the path itself is a symbolic link, dangling or
// not. Links are never followed here.
func (e Engine) IsSymbolicLink(p Path) Outcome {
	const predicate = "IsSymbolicLink"
	if o, ok := checkUsage(predicate, p); !ok {
		return o
	}
	link, err := e.inspector().IsSymbolicLink(p)
	if err != nil {
		return ioFailure(predicate, p, "path to be a symbolic link", err)
	}
	if !link {
		return violated(predicate, p, "path to be a symbolic link")
	}
	return satisfied()
}

// IsAbsolute passes when the handle is absolute. Purely syntactic.
func (e Engine) IsAbsolute(p Path) Outcome {
	const predicate = "IsAbsolute"
	if o, ok := checkUsage(predicate, p); !ok {
		return o
	}
	if !p.IsAbs() {
		return violated(predicate, p, "path to be absolute")
	}
	return satisfied()
}

// IsRelative passes when the handle is not absolute. Purely syntactic.
func (e Engine) IsRelative(p Path) Outcome {
	const predicate = "IsRelative"
	if o, ok := checkUsage(predicate, p); !ok {
		return o
	}
	if p.IsAbs() {
		return violated(predicate, p, "path to be relative")
	}
	return satisfied()
}

// IsNormalized passes when the handle equals its own normalization, that is,
// it carries no redundant segments. Purely syntactic.
func (e Engine) IsNormalized(p Path) Outcome {
	const predicate = "IsNormalized"
	if o, ok := checkUsage(predicate, p); !ok {
		return o
	}
	if !p.Equal(p.Normalize()) {
		return violated(predicate, p, "path to be normalized")
	}
	return satisfied()
}

// IsCanonical passes when the handle equals its own canonicalization: it is
// absolute and contains no symbolic link segments. Canonicalization may fail
// with an I/O failure, for instance when the path does not exist.
func (e Engine) IsCanonical(p Path) Outcome {
	const predicate = "IsCanonical"
	if o, ok := checkUsage(predicate, p); !ok {
		return o
	}
	canon, o, ok := canonicalize(predicate, p, "path to be canonical")
	if !ok {
		return o
	}
	if !p.Equal(canon) {
		return violated(predicate, p, fmt.Sprintf("path to be canonical (resolves to %q)", canon))
	}
	return satisfied()
}

// HasFileName passes when the path's last segment equals the given name.
// An empty expected name is caller misuse. Purely syntactic.
func (e Engine) HasFileName(p Path, name string) Outcome {
	const predicate = "HasFileName"
	if o, ok := checkUsage(predicate, p); !ok {
		return o
	}
	if name == "" {
		return usageError(predicate, p, "a non-empty file name argument")
	}
	if p.FileName() != name {
		return violated(predicate, p, fmt.Sprintf("path to have file name %q", name))
	}
	return satisfied()
}

// HasParent passes when the canonical tested path's parent equals the
// canonical expected parent. Both handles are canonicalized first; see
// HasParentRaw for the purely structural version.
func (e Engine) HasParent(p, parent Path) Outcome {
	const predicate = "HasParent"
	if o, ok := checkUsage(predicate, p, parent); !ok {
		return o
	}
	if o, ok := checkProvider(predicate, p, parent); !ok {
		return o
	}
	expected := fmt.Sprintf("path to have parent %q", parent.String())
	canon, o, ok := canonicalize(predicate, p, expected)
	if !ok {
		return o
	}
	canonParent, o, ok := canonicalize(predicate, parent, expected)
	if !ok {
		return o
	}
	actualParent, hasParent := canon.Parent()
	if !hasParent || !actualParent.Equal(canonParent) {
		return violated(predicate, p, fmt.Sprintf("path to have parent %q (canonically %q)", parent.String(), canonParent.String()))
	}
	return satisfied()
}

// HasParentRaw behaves like HasParent but compares structure as given: the
// tested path's syntactic parent must equal the argument, with no
// canonicalization and no filesystem access.
func (e Engine) HasParentRaw(p, parent Path) Outcome {
	const predicate = "HasParentRaw"
	if o, ok := checkUsage(predicate, p, parent); !ok {
		return o
	}
	if o, ok := checkProvider(predicate, p, parent); !ok {
		return o
	}
	actualParent, hasParent := p.Parent()
	if !hasParent || !actualParent.Equal(parent) {
		return violated(predicate, p, fmt.Sprintf("path to have parent %q", parent.String()))
	}
	return satisfied()
}

// HasNoParent passes when the canonical tested path has no parent, that is,
// it resolves to the filesystem root.
func (e Engine) HasNoParent(p Path) Outcome {
	const predicate = "HasNoParent"
	if o, ok := checkUsage(predicate, p); !ok {
		return o
	}
	canon, o, ok := canonicalize(predicate, p, "path to have no parent")
	if !ok {
		return o
	}
	if _, hasParent := canon.Parent(); hasParent {
		return violated(predicate, p, "path to have no parent")
	}
	return satisfied()
}

// HasNoParentRaw passes when the tested path, taken as given, has no
// syntactic parent. No filesystem access.
func (e Engine) HasNoParentRaw(p Path) Outcome {
	const predicate = "HasNoParentRaw"
	if o, ok := checkUsage(predicate, p); !ok {
		return o
	}
	if _, hasParent := p.Parent(); hasParent {
		return violated(predicate, p, "path to have no parent")
	}
	return satisfied()
}

// StartsWith passes when the canonical tested path starts with the canonical
// given path. Both handles are canonicalized first.
func (e Engine) StartsWith(p, prefix Path) Outcome {
	const predicate = "StartsWith"
	if o, ok := checkUsage(predicate, p, prefix); !ok {
		return o
	}
	if o, ok := checkProvider(predicate, p, prefix); !ok {
		return o
	}
	expected := fmt.Sprintf("path to start with %q", prefix.String())
	canon, o, ok := canonicalize(predicate, p, expected)
	if !ok {
		return o
	}
	canonPrefix, o, ok := canonicalize(predicate, prefix, expected)
	if !ok {
		return o
	}
	if !canon.StartsWith(canonPrefix) {
		return violated(predicate, p, expected)
	}
	return satisfied()
}

// StartsWithRaw behaves like StartsWith but compares segments as given, with
// no canonicalization and no filesystem access.
func (e Engine) StartsWithRaw(p, prefix Path) Outcome {
	const predicate = "StartsWithRaw"
	if o, ok := checkUsage(predicate, p, prefix); !ok {
		return o
	}
	if o, ok := checkProvider(predicate, p, prefix); !ok {
		return o
	}
	if !p.StartsWith(prefix) {
		return violated(predicate, p, fmt.Sprintf("path to start with %q", prefix.String()))
	}
	return satisfied()
}

// EndsWith passes when the canonical tested path ends with the normalized
// given path. Only the tested path touches the filesystem; the argument is
// normalized syntactically.
func (e Engine) EndsWith(p, suffix Path) Outcome {
	const predicate = "EndsWith"
	if o, ok := checkUsage(predicate, p, suffix); !ok {
		return o
	}
	if o, ok := checkProvider(predicate, p, suffix); !ok {
		return o
	}
	expected := fmt.Sprintf("path to end with %q", suffix.String())
	canon, o, ok := canonicalize(predicate, p, expected)
	if !ok {
		return o
	}
	if !canon.EndsWith(suffix.Normalize()) {
		return violated(predicate, p, expected)
	}
	return satisfied()
}

// EndsWithRaw behaves like EndsWith but compares segments as given, with no
// canonicalization and no filesystem access.
func (e Engine) EndsWithRaw(p, suffix Path) Outcome {
	const predicate = "EndsWithRaw"
	if o, ok := checkUsage(predicate, p, suffix); !ok {
		return o
	}
	if o, ok := checkProvider(predicate, p, suffix); !ok {
		return o
	}
	if !p.EndsWith(suffix) {
		return violated(predicate, p, fmt.Sprintf("path to end with %q", suffix.String()))
	}
	return satisfied()
}
