package pathassert_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/pathassert"
	"github.com/jmgilman/go/pathassert/billyfs"
	"github.com/jmgilman/go/pathassert/mocks"
)

// recordingT captures reported failures instead of failing the real test.
type recordingT struct {
	errors      []string
	failedNow   bool
	helperCalls int
}

func (r *recordingT) Errorf(format string, args ...interface{}) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

func (r *recordingT) FailNow() {
	r.failedNow = true
}

func (r *recordingT) Helper() {
	r.helperCalls++
}

func TestAssert_Satisfied(t *testing.T) {
	fsys := billyfs.NewMemory()
	fx := billyfs.NewFixture(fsys)
	require.NoError(t, fx.MkdirAll("dir"))
	require.NoError(t, fx.WriteFile("dir/file.txt", []byte("content")))

	rec := &recordingT{}
	p := fsys.Path("dir/file.txt")

	a := pathassert.Assert(rec, p).
		Exists().
		IsRegularFile().
		HasFileName("file.txt").
		IsRelative()

	require.Empty(t, rec.errors)
	require.False(t, rec.failedNow)
	require.Equal(t, p, a.Path())
}

func TestAssert_ViolationContinuesChain(t *testing.T) {
	fsys := billyfs.NewMemory()
	rec := &recordingT{}

	// Both violations are reported: a plain violation does not stop the
	// chain.
	pathassert.Assert(rec, fsys.Path("/missing")).
		Exists().
		IsDirectory()

	require.Len(t, rec.errors, 2)
	require.False(t, rec.failedNow)
	require.Contains(t, rec.errors[0], "[ASSERTION_VIOLATED]")
	require.Contains(t, rec.errors[0], "Exists")
	require.Positive(t, rec.helperCalls)
}

func TestAssert_UsageErrorFailsNow(t *testing.T) {
	rec := &recordingT{}

	pathassert.Assert(rec, pathassert.Path{}).Exists()

	require.Len(t, rec.errors, 1)
	require.Contains(t, rec.errors[0], "[USAGE_ERROR]")
	require.True(t, rec.failedNow)
}

func TestAssert_IOFailureFailsNow(t *testing.T) {
	fsys := billyfs.NewMemory()
	rec := &recordingT{}

	engine := pathassert.Engine{Inspector: &mocks.InspectorMock{
		ExistsFunc: func(pathassert.Path, bool) (bool, error) {
			return false, fmt.Errorf("device gone")
		},
	}}

	pathassert.Assert(rec, fsys.Path("/p")).
		WithEngine(engine).
		Exists()

	require.Len(t, rec.errors, 1)
	require.Contains(t, rec.errors[0], "[FILESYSTEM_IO_FAILURE]")
	require.Contains(t, rec.errors[0], "device gone")
	require.True(t, rec.failedNow)
}

func TestAssert_ProviderMismatchFailsNow(t *testing.T) {
	mem := billyfs.NewMemory()
	local := billyfs.NewLocal()
	rec := &recordingT{}

	pathassert.Assert(rec, mem.Path("/a/b")).
		StartsWithRaw(local.Path("/a"))

	require.Len(t, rec.errors, 1)
	require.Contains(t, rec.errors[0], "[PROVIDER_MISMATCH]")
	require.True(t, rec.failedNow)
}

func TestAssert_AllPredicatesWired(t *testing.T) {
	fsys := billyfs.NewMemory()
	fx := billyfs.NewFixture(fsys)
	require.NoError(t, fx.MkdirAll("base/sub"))
	require.NoError(t, fx.WriteFile("base/sub/file.txt", []byte("content")))
	require.NoError(t, fx.Symlink("base/sub/file.txt", "link.txt"))

	rec := &recordingT{}

	pathassert.Assert(rec, fsys.Path("/base/sub/file.txt")).
		Exists().
		ExistsNoFollow().
		IsRegularFile().
		IsAbsolute().
		IsNormalized().
		IsCanonical().
		HasFileName("file.txt").
		HasParent(fsys.Path("/base/sub")).
		HasParentRaw(fsys.Path("/base/sub")).
		StartsWith(fsys.Path("/base")).
		StartsWithRaw(fsys.Path("/base")).
		EndsWith(fsys.Path("sub/file.txt")).
		EndsWithRaw(fsys.Path("sub/file.txt"))

	pathassert.Assert(rec, fsys.Path("/base/sub/absent")).DoesNotExist()
	pathassert.Assert(rec, fsys.Path("link.txt")).IsSymbolicLink()
	pathassert.Assert(rec, fsys.Path("relative")).IsRelative().HasNoParentRaw()
	pathassert.Assert(rec, fsys.Path("/")).HasNoParent()

	if len(rec.errors) != 0 {
		t.Fatalf("unexpected failures:\n%s", strings.Join(rec.errors, "\n"))
	}
}
