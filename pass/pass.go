// Package pass selects and runs one conversion pass over a module.
package pass

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/signadot/yangstyle/diag"
	"github.com/signadot/yangstyle/grammar"
	"github.com/signadot/yangstyle/stmt"
)

const (
	SplitStateTree    = "split-state-tree"
	CombineStateTree  = "combine-state-tree"
	ToOpenConfigStyle = "to-openconfig-style"
)

var (
	ErrNoPass         = errors.New("no pass selected")
	ErrMultiplePasses = errors.New("more than one pass selected")
	ErrUnknownPass    = errors.New("unknown pass")
)

// Options is the configuration surface of the passes.
type Options struct {
	SplitStateTree    bool
	CombineStateTree  bool
	RemoveStateNodes  bool
	ToOpenConfigStyle bool
	CanonicalOrder    bool

	StateSuffix   string
	OCSuffix      string
	Rename        string
	RenameImports []string
	BaseImport    string
	OCImport      string
	OCPrefix      string
}

// Selected returns the name of the one selected pass.
func (o *Options) Selected() (string, error) {
	var names []string
	if o.SplitStateTree {
		names = append(names, SplitStateTree)
	}
	if o.CombineStateTree {
		names = append(names, CombineStateTree)
	}
	if o.ToOpenConfigStyle {
		names = append(names, ToOpenConfigStyle)
	}
	switch len(names) {
	case 0:
		return "", ErrNoPass
	case 1:
		return names[0], nil
	default:
		return "", fmt.Errorf("%w: %v", ErrMultiplePasses, names)
	}
}

type Pass interface {
	Name() string
	Run(root *stmt.Statement, ctx *Context) error
}

type Context struct {
	Table   *grammar.Table
	Report  *diag.Report
	Options *Options
	Log     *slog.Logger
}

func (c *Context) logger() *slog.Logger {
	if c.Log == nil {
		return slog.Default()
	}
	return c.Log
}

// Run runs the selected pass on root, sorts the result when canonical
// order is requested and checks the parent links of the result.
func Run(root *stmt.Statement, ctx *Context) error {
	if ctx.Options == nil {
		return ErrNoPass
	}
	name, err := ctx.Options.Selected()
	if err != nil {
		return err
	}
	p := Lookup(name)
	if p == nil {
		return fmt.Errorf("%w: %s", ErrUnknownPass, name)
	}
	if ctx.Table == nil {
		ctx.Table = grammar.Default()
	}
	if ctx.Report == nil {
		ctx.Report = diag.NewReport(ctx.Log)
	}
	log := ctx.logger()
	log.Debug("running pass", "pass", name, "module", root.Arg)
	if err := p.Run(root, ctx); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if ctx.Options.CanonicalOrder {
		ctx.Table.SortTree(root)
	}
	if err := stmt.Validate(root); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	log.Debug("pass done", "pass", name, "module", root.Arg, "warnings", ctx.Report.Len())
	return nil
}
