// Package assertest provides a conformance test suite for validating
// filesystem providers against the pathassert predicate contracts.
//
// Provider packages import this package and run the suite against a fresh
// fixture to verify that existence, file-type, and symbolic-link semantics
// hold on their filesystem, in particular the follow/no-follow asymmetries
// around dangling links.
//
// Example usage:
//
//	func TestMyProvider(t *testing.T) {
//	    assertest.TestSuite(t, func() assertest.Fixture {
//	        return myprovider.NewFixture()
//	    })
//	}
package assertest

import (
	"testing"

	"github.com/jmgilman/go/pathassert"
)

// Fixture arranges filesystem state for the suite. Each test group receives
// a fresh fixture, writes its own setup through it, and then asserts through
// the read-only pathassert surface.
type Fixture interface {
	// FS returns the filesystem under test.
	FS() pathassert.FS

	// WriteFile creates a regular file with the given contents. The parent
	// directory must exist.
	WriteFile(name string, data []byte) error

	// MkdirAll creates a directory along with any missing parents.
	MkdirAll(name string) error

	// Symlink creates a symbolic link at link pointing at target. The
	// target is not required to exist.
	Symlink(target, link string) error
}

// Config adapts the suite to provider capabilities.
type Config struct {
	// SupportsSymlinks indicates the provider can create and report
	// symbolic links. When false, the symbolic-link test group is skipped.
	SupportsSymlinks bool

	// SkipTests lists test group names to skip (e.g. "Structure").
	SkipTests []string
}

// POSIXConfig returns configuration for POSIX-like providers (local,
// memory).
func POSIXConfig() Config {
	return Config{SupportsSymlinks: true}
}

// TestSuite runs all applicable conformance tests against a provider.
// The newFixture function should return a fresh, empty fixture for each test
// group. Uses POSIXConfig() by default.
func TestSuite(t *testing.T, newFixture func() Fixture) {
	TestSuiteWithConfig(t, newFixture, POSIXConfig())
}

// TestSuiteWithConfig runs the conformance tests with behavior
// configuration.
func TestSuiteWithConfig(t *testing.T, newFixture func() Fixture, config Config) {
	shouldSkip := func(testName string) bool {
		for _, skip := range config.SkipTests {
			if skip == testName {
				return true
			}
		}
		return false
	}

	t.Run("Existence", func(t *testing.T) {
		if shouldSkip("Existence") {
			t.Skip("Skipped by provider configuration")
			return
		}
		TestExistence(t, newFixture())
	})

	t.Run("FileType", func(t *testing.T) {
		if shouldSkip("FileType") {
			t.Skip("Skipped by provider configuration")
			return
		}
		TestFileType(t, newFixture())
	})

	t.Run("SymbolicLinks", func(t *testing.T) {
		if shouldSkip("SymbolicLinks") {
			t.Skip("Skipped by provider configuration")
			return
		}
		if !config.SupportsSymlinks {
			t.Skip("Symbolic links not supported")
			return
		}
		TestSymbolicLinks(t, newFixture())
	})

	t.Run("Structure", func(t *testing.T) {
		if shouldSkip("Structure") {
			t.Skip("Skipped by provider configuration")
			return
		}
		TestStructure(t, newFixture(), config)
	})
}

// wantSatisfied fails the test when the outcome is not satisfied.
func wantSatisfied(t *testing.T, name string, o pathassert.Outcome) {
	t.Helper()
	if !o.Satisfied() {
		t.Errorf("%s: got failure %v, want satisfied", name, o.Failure())
	}
}

// wantViolated fails the test unless the outcome is a plain assertion
// violation. Any other failure kind means the provider could not answer,
// which the suite treats as a failure in its own right.
func wantViolated(t *testing.T, name string, o pathassert.Outcome) {
	t.Helper()
	if o.Satisfied() {
		t.Errorf("%s: got satisfied, want violated", name)
		return
	}
	if kind := o.Failure().Kind(); kind != pathassert.KindViolation {
		t.Errorf("%s: got failure kind %s (%v), want %s", name, kind, o.Failure(), pathassert.KindViolation)
	}
}
