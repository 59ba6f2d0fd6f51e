package pass

import (
	"errors"
	"testing"

	"github.com/signadot/yangstyle/grammar"
	"github.com/signadot/yangstyle/stmt"
)

type testPass struct {
	name string
	run  func(*stmt.Statement, *Context) error
}

func (p testPass) Name() string { return p.name }
func (p testPass) Run(root *stmt.Statement, ctx *Context) error {
	return p.run(root, ctx)
}

func TestSelected(t *testing.T) {
	for _, tc := range []struct {
		opts Options
		name string
		err  error
	}{
		{Options{}, "", ErrNoPass},
		{Options{SplitStateTree: true}, SplitStateTree, nil},
		{Options{CombineStateTree: true, RemoveStateNodes: true}, CombineStateTree, nil},
		{Options{ToOpenConfigStyle: true, CanonicalOrder: true}, ToOpenConfigStyle, nil},
		{Options{SplitStateTree: true, ToOpenConfigStyle: true}, "", ErrMultiplePasses},
	} {
		name, err := tc.opts.Selected()
		if name != tc.name || !errors.Is(err, tc.err) {
			t.Errorf("%+v: got %q %v", tc.opts, name, err)
		}
	}
}

func TestRunRegistered(t *testing.T) {
	// the conversion passes register themselves from their own packages;
	// here a stand-in is registered under the split name if it is free.
	calls := 0
	if Lookup(SplitStateTree) == nil {
		err := Register(testPass{name: SplitStateTree, run: func(root *stmt.Statement, ctx *Context) error {
			calls++
			return root.Append(stmt.New("leaf", "b"), stmt.New("description", "d"))
		}})
		if err != nil {
			t.Fatal(err)
		}
	}
	if err := Register(Lookup(SplitStateTree)); !errors.Is(err, ErrPassExists) {
		t.Errorf("expected ErrPassExists, got %v", err)
	}
	root := stmt.New("container", "c", stmt.New("leaf", "a"))
	ctx := &Context{
		Table:   grammar.Default(),
		Options: &Options{SplitStateTree: true, CanonicalOrder: true},
	}
	if err := Run(root, ctx); err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Fatalf("pass not run")
	}
	if root.Children[0].Keyword != "description" {
		t.Errorf("result not sorted")
	}
	if ctx.Report == nil {
		t.Errorf("report not created")
	}
}

func TestRunErrors(t *testing.T) {
	root := stmt.New("module", "m")
	if err := Run(root, &Context{}); !errors.Is(err, ErrNoPass) {
		t.Errorf("expected ErrNoPass, got %v", err)
	}
	err := Run(root, &Context{Options: &Options{CombineStateTree: true}})
	if Lookup(CombineStateTree) == nil && !errors.Is(err, ErrUnknownPass) {
		t.Errorf("expected ErrUnknownPass, got %v", err)
	}
}
