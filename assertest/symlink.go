package assertest

import (
	"testing"

	"github.com/jmgilman/go/pathassert"
)

// TestSymbolicLinks verifies the follow/no-follow semantics that distinguish
// the existence predicates: a live link, a dangling link, and a link to a
// directory.
func TestSymbolicLinks(t *testing.T, fx Fixture) {
	if err := fx.WriteFile("target.txt", []byte("target content")); err != nil {
		t.Fatalf("WriteFile(target.txt): setup failed: %v", err)
	}
	if err := fx.Symlink("target.txt", "link.txt"); err != nil {
		t.Fatalf("Symlink(target.txt, link.txt): setup failed: %v", err)
	}
	if err := fx.Symlink("nonexistent.txt", "dangling.txt"); err != nil {
		t.Fatalf("Symlink(nonexistent.txt, dangling.txt): setup failed: %v", err)
	}
	if err := fx.MkdirAll("target-dir"); err != nil {
		t.Fatalf("MkdirAll(target-dir): setup failed: %v", err)
	}
	if err := fx.Symlink("target-dir", "link-dir"); err != nil {
		t.Fatalf("Symlink(target-dir, link-dir): setup failed: %v", err)
	}

	var engine pathassert.Engine
	link := pathassert.New(fx.FS(), "link.txt")
	dangling := pathassert.New(fx.FS(), "dangling.txt")
	dirLink := pathassert.New(fx.FS(), "link-dir")

	t.Run("LiveLink", func(t *testing.T) {
		wantSatisfied(t, "Exists(link.txt)", engine.Exists(link))
		wantSatisfied(t, "ExistsNoFollow(link.txt)", engine.ExistsNoFollow(link))
		wantViolated(t, "DoesNotExist(link.txt)", engine.DoesNotExist(link))
		wantSatisfied(t, "IsRegularFile(link.txt)", engine.IsRegularFile(link))
		wantSatisfied(t, "IsSymbolicLink(link.txt)", engine.IsSymbolicLink(link))
	})

	// A dangling link does not exist when links are followed, but the link
	// itself exists: ExistsNoFollow passes and DoesNotExist still fails.
	t.Run("DanglingLink", func(t *testing.T) {
		wantViolated(t, "Exists(dangling.txt)", engine.Exists(dangling))
		wantSatisfied(t, "ExistsNoFollow(dangling.txt)", engine.ExistsNoFollow(dangling))
		wantViolated(t, "DoesNotExist(dangling.txt)", engine.DoesNotExist(dangling))
		wantViolated(t, "IsRegularFile(dangling.txt)", engine.IsRegularFile(dangling))
		wantSatisfied(t, "IsSymbolicLink(dangling.txt)", engine.IsSymbolicLink(dangling))
	})

	t.Run("DirectoryLink", func(t *testing.T) {
		wantSatisfied(t, "Exists(link-dir)", engine.Exists(dirLink))
		wantSatisfied(t, "IsDirectory(link-dir)", engine.IsDirectory(dirLink))
		wantViolated(t, "IsRegularFile(link-dir)", engine.IsRegularFile(dirLink))
		wantSatisfied(t, "IsSymbolicLink(link-dir)", engine.IsSymbolicLink(dirLink))
	})
}
