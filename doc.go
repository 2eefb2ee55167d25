// Package pathassert provides fluent, filesystem-independent assertions for
// paths. It is built around three pieces: a provider-bound Path handle, a
// stateless validation Engine that evaluates predicates against the handle's
// filesystem, and a fluent assertion chain for use inside tests.
//
// Paths are bound to a filesystem through the FS interface, so the same
// assertions work against a local disk, an in-memory filesystem, or any other
// provider (see the billyfs subpackage for go-billy backed providers).
//
// # Predicates and symbolic links
//
// Some predicates have two versions: a normal one and a "raw" one (for
// instance, HasParent and HasParentRaw). The difference is that normal
// predicates will canonicalize or normalize the tested path and, where
// applicable, the path argument before performing the actual test.
// Canonicalization resolves all symbolic links and makes the path absolute
// against the filesystem root; it may fail with an I/O failure if the path
// does not exist.
//
// Existence predicates are explicit about symbolic links. Exists follows
// links, so a dangling link does not exist. ExistsNoFollow treats the link
// itself as existing regardless of its target. DoesNotExist does not follow
// links either, which means a dangling link still counts as existing and the
// assertion fails for it.
//
// # Failure taxonomy
//
// Every predicate evaluation produces an Outcome. A failed outcome carries a
// *Failure with one of four kinds, so callers can always tell "the assertion
// is false" apart from "the truth could not be determined":
//
//   - KindUsageError: a required path was the zero Path; reported before any
//     filesystem access is attempted.
//   - KindViolation: the predicate evaluated successfully and was false.
//   - KindIOFailure: the filesystem could not answer the query; the original
//     error is attached as the failure's cause.
//   - KindProviderMismatch: two handles from different providers were given
//     to a predicate that requires comparability.
//
// # Usage
//
// The fluent chain converts failed outcomes into test failures:
//
//	func TestConfigLayout(t *testing.T) {
//	    fsys := billyfs.NewLocal()
//
//	    pathassert.Assert(t, fsys.Path("/etc/app/config.yaml")).
//	        Exists().
//	        IsRegularFile()
//	}
//
// Non-test callers can use an Engine directly and consume the Outcome:
//
//	var engine pathassert.Engine
//	if o := engine.IsRegularFile(p); !o.Satisfied() {
//	    return o.Failure()
//	}
//
// The package performs read-only inspection only; no predicate ever mutates
// the filesystem. Filesystem state is re-queried on every evaluation, nothing
// is cached between calls.
package pathassert
