package pathassert_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/pathassert"
	"github.com/jmgilman/go/pathassert/billyfs"
)

func TestNew(t *testing.T) {
	fsys := billyfs.NewMemory()

	p := pathassert.New(fsys, "a/b")
	require.False(t, p.IsZero())
	require.Equal(t, "a/b", p.String())
	require.Equal(t, billyfs.ProviderMemory, p.Provider())
}

func TestNew_Zero(t *testing.T) {
	fsys := billyfs.NewMemory()

	require.True(t, pathassert.New(nil, "a/b").IsZero())
	require.True(t, pathassert.New(fsys, "").IsZero())
	require.True(t, pathassert.Path{}.IsZero())
	require.Equal(t, "<zero>", pathassert.Path{}.String())
	require.Equal(t, "", pathassert.Path{}.Provider())
}

func TestPath_IsAbs(t *testing.T) {
	fsys := billyfs.NewMemory()

	require.True(t, pathassert.New(fsys, "/a/b").IsAbs())
	require.False(t, pathassert.New(fsys, "a/b").IsAbs())
}

func TestPath_Segments(t *testing.T) {
	fsys := billyfs.NewMemory()

	tests := []struct {
		name string
		want []string
	}{
		{"/a/b", []string{"a", "b"}},
		{"a//b", []string{"a", "b"}},
		{"a/./b", []string{"a", ".", "b"}},
		{"a/../b", []string{"a", "..", "b"}},
		{"/", nil},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, pathassert.New(fsys, tt.name).Segments(), "Segments(%q)", tt.name)
	}
}

func TestPath_FileName(t *testing.T) {
	fsys := billyfs.NewMemory()

	require.Equal(t, "b", pathassert.New(fsys, "/a/b").FileName())
	require.Equal(t, "a", pathassert.New(fsys, "a").FileName())
	require.Equal(t, "", pathassert.New(fsys, "/").FileName())
}

func TestPath_Parent(t *testing.T) {
	fsys := billyfs.NewMemory()

	parent, ok := pathassert.New(fsys, "/a/b").Parent()
	require.True(t, ok)
	require.Equal(t, "/a", parent.String())

	parent, ok = pathassert.New(fsys, "/a").Parent()
	require.True(t, ok)
	require.Equal(t, "/", parent.String())

	_, ok = pathassert.New(fsys, "/").Parent()
	require.False(t, ok)

	_, ok = pathassert.New(fsys, "a").Parent()
	require.False(t, ok)

	parent, ok = pathassert.New(fsys, "a/b").Parent()
	require.True(t, ok)
	require.Equal(t, "a", parent.String())
}

func TestPath_Normalize(t *testing.T) {
	fsys := billyfs.NewMemory()

	tests := []struct {
		name string
		want string
	}{
		{"/a/./b", "/a/b"},
		{"/a/b/../c", "/a/c"},
		{"a//b/", "a/b"},
		{"/..", "/"},
		{"/a/b", "/a/b"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, pathassert.New(fsys, tt.name).Normalize().String(), "Normalize(%q)", tt.name)
	}

	require.True(t, pathassert.Path{}.Normalize().IsZero())
}

func TestPath_Equal(t *testing.T) {
	fsys := billyfs.NewMemory()

	require.True(t, pathassert.New(fsys, "/a/b").Equal(pathassert.New(fsys, "/a//b")))
	require.False(t, pathassert.New(fsys, "/a/b").Equal(pathassert.New(fsys, "/a/./b")))
	require.False(t, pathassert.New(fsys, "/a/b").Equal(pathassert.New(fsys, "a/b")))
	require.True(t, pathassert.Path{}.Equal(pathassert.Path{}))
	require.False(t, pathassert.New(fsys, "/a").Equal(pathassert.Path{}))

	// Same name on a different provider is a different path.
	other := billyfs.NewLocal()
	require.False(t, pathassert.New(fsys, "/a/b").Equal(pathassert.New(other, "/a/b")))
}

func TestPath_StartsWith(t *testing.T) {
	fsys := billyfs.NewMemory()
	p := func(name string) pathassert.Path { return pathassert.New(fsys, name) }

	require.True(t, p("/a/b/c").StartsWith(p("/a/b")))
	require.True(t, p("a/b").StartsWith(p("a")))
	require.False(t, p("/a/b").StartsWith(p("a")))
	require.False(t, p("a/b").StartsWith(p("/a")))
	require.False(t, p("/a").StartsWith(p("/a/b")))
	require.False(t, p("/ab/c").StartsWith(p("/a")))
}

func TestPath_EndsWith(t *testing.T) {
	fsys := billyfs.NewMemory()
	p := func(name string) pathassert.Path { return pathassert.New(fsys, name) }

	require.True(t, p("/a/b/c").EndsWith(p("b/c")))
	require.True(t, p("a/b").EndsWith(p("b")))
	require.False(t, p("/a/b").EndsWith(p("a")))
	require.False(t, p("/a/bc").EndsWith(p("c")))

	// An absolute suffix must match the whole path.
	require.True(t, p("/a/b").EndsWith(p("/a/b")))
	require.False(t, p("/a/b").EndsWith(p("/b")))
}

func TestSameProvider(t *testing.T) {
	mem := billyfs.NewMemory()
	mem2 := billyfs.NewMemory()
	local := billyfs.NewLocal()

	require.True(t, pathassert.SameProvider(pathassert.New(mem, "/a"), pathassert.New(mem2, "/b")))
	require.False(t, pathassert.SameProvider(pathassert.New(mem, "/a"), pathassert.New(local, "/a")))
	require.False(t, pathassert.SameProvider(pathassert.New(mem, "/a"), pathassert.Path{}))
}
