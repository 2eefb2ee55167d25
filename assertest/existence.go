package assertest

import (
	"testing"

	"github.com/jmgilman/go/pathassert"
)

// TestExistence verifies the existence predicates against a plain regular
// file and a missing path. Symbolic-link cases live in TestSymbolicLinks.
func TestExistence(t *testing.T, fx Fixture) {
	if err := fx.WriteFile("file.txt", []byte("content")); err != nil {
		t.Fatalf("WriteFile(file.txt): setup failed: %v", err)
	}

	var engine pathassert.Engine
	file := pathassert.New(fx.FS(), "file.txt")
	missing := pathassert.New(fx.FS(), "nonexistent.txt")

	t.Run("ExistingFile", func(t *testing.T) {
		wantSatisfied(t, "Exists(file.txt)", engine.Exists(file))
		wantSatisfied(t, "ExistsNoFollow(file.txt)", engine.ExistsNoFollow(file))
		wantViolated(t, "DoesNotExist(file.txt)", engine.DoesNotExist(file))
		wantSatisfied(t, "IsRegularFile(file.txt)", engine.IsRegularFile(file))
	})

	t.Run("MissingPath", func(t *testing.T) {
		wantViolated(t, "Exists(nonexistent.txt)", engine.Exists(missing))
		wantViolated(t, "ExistsNoFollow(nonexistent.txt)", engine.ExistsNoFollow(missing))
		wantSatisfied(t, "DoesNotExist(nonexistent.txt)", engine.DoesNotExist(missing))
		wantViolated(t, "IsRegularFile(nonexistent.txt)", engine.IsRegularFile(missing))
	})
}

// TestFileType verifies the type predicates against a regular file and a
// directory.
func TestFileType(t *testing.T, fx Fixture) {
	if err := fx.WriteFile("file.txt", []byte("content")); err != nil {
		t.Fatalf("WriteFile(file.txt): setup failed: %v", err)
	}
	if err := fx.MkdirAll("dir"); err != nil {
		t.Fatalf("MkdirAll(dir): setup failed: %v", err)
	}

	var engine pathassert.Engine
	file := pathassert.New(fx.FS(), "file.txt")
	dir := pathassert.New(fx.FS(), "dir")

	t.Run("RegularFile", func(t *testing.T) {
		wantSatisfied(t, "IsRegularFile(file.txt)", engine.IsRegularFile(file))
		wantViolated(t, "IsDirectory(file.txt)", engine.IsDirectory(file))
		wantViolated(t, "IsSymbolicLink(file.txt)", engine.IsSymbolicLink(file))
	})

	t.Run("Directory", func(t *testing.T) {
		wantSatisfied(t, "IsDirectory(dir)", engine.IsDirectory(dir))
		wantViolated(t, "IsRegularFile(dir)", engine.IsRegularFile(dir))
		wantViolated(t, "IsSymbolicLink(dir)", engine.IsSymbolicLink(dir))
	})
}
