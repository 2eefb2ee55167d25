package assertest

import (
	"testing"

	"github.com/jmgilman/go/pathassert"
)

// TestStructure verifies the syntactic predicates and the canonicalizing
// comparison predicates against a small directory tree. Symlink-dependent
// cases run only when the provider supports symbolic links.
func TestStructure(t *testing.T, fx Fixture, config Config) {
	if err := fx.MkdirAll("base/sub"); err != nil {
		t.Fatalf("MkdirAll(base/sub): setup failed: %v", err)
	}
	if err := fx.WriteFile("base/sub/file.txt", []byte("content")); err != nil {
		t.Fatalf("WriteFile(base/sub/file.txt): setup failed: %v", err)
	}

	var engine pathassert.Engine
	fsys := fx.FS()
	p := func(name string) pathassert.Path { return pathassert.New(fsys, name) }

	t.Run("Syntactic", func(t *testing.T) {
		wantSatisfied(t, "IsAbsolute(/base)", engine.IsAbsolute(p("/base")))
		wantViolated(t, "IsAbsolute(base)", engine.IsAbsolute(p("base")))
		wantSatisfied(t, "IsRelative(base)", engine.IsRelative(p("base")))
		wantViolated(t, "IsRelative(/base)", engine.IsRelative(p("/base")))

		wantSatisfied(t, "IsNormalized(/base/sub)", engine.IsNormalized(p("/base/sub")))
		wantViolated(t, "IsNormalized(/base/./sub)", engine.IsNormalized(p("/base/./sub")))
		wantViolated(t, "IsNormalized(/base/sub/../sub)", engine.IsNormalized(p("/base/sub/../sub")))

		wantSatisfied(t, "HasFileName(file.txt)", engine.HasFileName(p("/base/sub/file.txt"), "file.txt"))
		wantViolated(t, "HasFileName(other.txt)", engine.HasFileName(p("/base/sub/file.txt"), "other.txt"))

		wantSatisfied(t, "StartsWithRaw(/base)", engine.StartsWithRaw(p("/base/sub"), p("/base")))
		wantViolated(t, "StartsWithRaw(/sub)", engine.StartsWithRaw(p("/base/sub"), p("/sub")))
		wantSatisfied(t, "EndsWithRaw(sub/file.txt)", engine.EndsWithRaw(p("/base/sub/file.txt"), p("sub/file.txt")))
		wantViolated(t, "EndsWithRaw(base)", engine.EndsWithRaw(p("/base/sub/file.txt"), p("base")))

		wantSatisfied(t, "HasParentRaw(/base)", engine.HasParentRaw(p("/base/sub"), p("/base")))
		wantViolated(t, "HasParentRaw(/other)", engine.HasParentRaw(p("/base/sub"), p("/other")))
		wantSatisfied(t, "HasNoParentRaw(/)", engine.HasNoParentRaw(p("/")))
		wantSatisfied(t, "HasNoParentRaw(file)", engine.HasNoParentRaw(p("file")))
		wantViolated(t, "HasNoParentRaw(/base/sub)", engine.HasNoParentRaw(p("/base/sub")))
	})

	t.Run("Canonical", func(t *testing.T) {
		wantSatisfied(t, "IsCanonical(/base/sub/file.txt)", engine.IsCanonical(p("/base/sub/file.txt")))
		wantViolated(t, "IsCanonical(/base/../base/sub)", engine.IsCanonical(p("/base/../base/sub")))
		wantViolated(t, "IsCanonical(base/sub)", engine.IsCanonical(p("base/sub")))

		wantSatisfied(t, "HasParent(/base/./sub)", engine.HasParent(p("/base/sub/file.txt"), p("/base/./sub")))
		wantViolated(t, "HasParent(/base)", engine.HasParent(p("/base/sub/file.txt"), p("/base")))
		wantSatisfied(t, "HasNoParent(/)", engine.HasNoParent(p("/")))
		wantViolated(t, "HasNoParent(/base)", engine.HasNoParent(p("/base")))

		wantSatisfied(t, "StartsWith(/base)", engine.StartsWith(p("/base/sub"), p("/base")))
		wantSatisfied(t, "StartsWith(base, relative actual)", engine.StartsWith(p("base/sub"), p("/base")))
		wantViolated(t, "StartsWith(prefix longer than actual)", engine.StartsWith(p("/base"), p("/base/sub")))

		wantSatisfied(t, "EndsWith(sub/file.txt)", engine.EndsWith(p("/base/sub/file.txt"), p("sub/file.txt")))
		wantSatisfied(t, "EndsWith normalizes argument", engine.EndsWith(p("/base/sub/file.txt"), p("sub/./file.txt")))
		wantViolated(t, "EndsWith(base)", engine.EndsWith(p("/base/sub/file.txt"), p("base")))
	})

	if !config.SupportsSymlinks {
		return
	}

	if err := fx.Symlink("base", "alias"); err != nil {
		t.Fatalf("Symlink(base, alias): setup failed: %v", err)
	}

	// Predicates that canonicalize must see through the "alias" link.
	t.Run("CanonicalThroughLinks", func(t *testing.T) {
		wantViolated(t, "IsCanonical(/alias/sub)", engine.IsCanonical(p("/alias/sub")))
		wantSatisfied(t, "StartsWith(/base) through link", engine.StartsWith(p("/alias/sub/file.txt"), p("/base")))
		wantSatisfied(t, "HasParent(/base/sub) through link", engine.HasParent(p("/alias/sub/file.txt"), p("/base/sub")))
		wantSatisfied(t, "EndsWith(file.txt) through link", engine.EndsWith(p("/alias/sub/file.txt"), p("file.txt")))
	})
}
