package pathassert_test

import (
	"fmt"

	"github.com/jmgilman/go/pathassert"
	"github.com/jmgilman/go/pathassert/billyfs"
)

func ExampleEngine() {
	fsys := billyfs.NewMemory()
	fx := billyfs.NewFixture(fsys)
	_ = fx.WriteFile("config.yaml", []byte("retries: 3"))

	var engine pathassert.Engine

	fmt.Println(engine.Exists(fsys.Path("config.yaml")).Satisfied())
	fmt.Println(engine.IsDirectory(fsys.Path("config.yaml")).Failure().Kind())
	// Output:
	// true
	// ASSERTION_VIOLATED
}

func ExampleEngine_symbolicLinks() {
	fsys := billyfs.NewMemory()
	fx := billyfs.NewFixture(fsys)
	_ = fx.Symlink("missing.txt", "dangling.txt")

	var engine pathassert.Engine
	p := fsys.Path("dangling.txt")

	// Following links, a dangling link does not exist. Without following,
	// the link itself does.
	fmt.Println(engine.Exists(p).Satisfied())
	fmt.Println(engine.ExistsNoFollow(p).Satisfied())
	fmt.Println(engine.IsSymbolicLink(p).Satisfied())
	// Output:
	// false
	// true
	// true
}

func ExampleFailure() {
	var engine pathassert.Engine
	fsys := billyfs.NewMemory()

	f := engine.Exists(fsys.Path("/missing")).Failure()

	fmt.Println(f.Kind())
	fmt.Println(f.Predicate())
	fmt.Println(f.Actual())
	// Output:
	// ASSERTION_VIOLATED
	// Exists
	// /missing
}

func ExampleKindOf() {
	var engine pathassert.Engine

	f := engine.Exists(pathassert.Path{}).Failure()
	fmt.Println(pathassert.KindOf(f))
	// Output:
	// USAGE_ERROR
}

func ExamplePath_Canonicalize() {
	fsys := billyfs.NewMemory()
	fx := billyfs.NewFixture(fsys)
	_ = fx.MkdirAll("base/sub")
	_ = fx.Symlink("base", "alias")

	canon, _ := fsys.Path("alias/sub").Canonicalize()
	fmt.Println(canon)
	// Output:
	// /base/sub
}
