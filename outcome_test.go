package pathassert_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/pathassert"
	"github.com/jmgilman/go/pathassert/billyfs"
	"github.com/jmgilman/go/pathassert/mocks"
)

func TestOutcome_Satisfied(t *testing.T) {
	fsys := billyfs.NewMemory()
	fx := billyfs.NewFixture(fsys)
	require.NoError(t, fx.WriteFile("file.txt", nil))

	var engine pathassert.Engine
	o := engine.Exists(fsys.Path("file.txt"))
	require.True(t, o.Satisfied())
	require.Nil(t, o.Failure())
}

func TestFailure_Error(t *testing.T) {
	var engine pathassert.Engine
	fsys := billyfs.NewMemory()

	o := engine.Exists(fsys.Path("/missing"))
	require.False(t, o.Satisfied())
	require.Equal(t,
		"[ASSERTION_VIOLATED] Exists: expected path to exist (symbolic links followed), actual /missing",
		o.Failure().Error())
}

func TestFailure_Error_WithCause(t *testing.T) {
	cause := errors.New("boom")
	engine := pathassert.Engine{Inspector: &mocks.InspectorMock{
		ExistsFunc: func(pathassert.Path, bool) (bool, error) { return false, cause },
	}}

	fsys := billyfs.NewMemory()
	o := engine.Exists(fsys.Path("/p"))
	require.False(t, o.Satisfied())

	f := o.Failure()
	require.Equal(t, "[FILESYSTEM_IO_FAILURE] Exists: expected path to exist, actual /p: boom", f.Error())
	require.ErrorIs(t, f, cause)
	require.Equal(t, cause, f.Unwrap())
}

func TestKindOf(t *testing.T) {
	var engine pathassert.Engine
	fsys := billyfs.NewMemory()

	violation := engine.Exists(fsys.Path("/missing")).Failure()
	usage := engine.Exists(pathassert.Path{}).Failure()

	require.Equal(t, pathassert.KindViolation, pathassert.KindOf(violation))
	require.Equal(t, pathassert.KindUsageError, pathassert.KindOf(usage))
	require.Equal(t, pathassert.KindUnknown, pathassert.KindOf(nil))
	require.Equal(t, pathassert.KindUnknown, pathassert.KindOf(errors.New("plain")))

	// A wrapped failure is still recognized through the chain.
	wrapped := errors.Join(errors.New("context"), violation)
	require.Equal(t, pathassert.KindViolation, pathassert.KindOf(wrapped))
}

func TestIsViolation(t *testing.T) {
	var engine pathassert.Engine
	fsys := billyfs.NewMemory()

	require.True(t, pathassert.IsViolation(engine.Exists(fsys.Path("/missing")).Failure()))
	require.False(t, pathassert.IsViolation(engine.Exists(pathassert.Path{}).Failure()))
	require.False(t, pathassert.IsViolation(nil))
}
