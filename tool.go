// Package yangstyle converts YANG statement trees between the combined,
// split config/state and OpenConfig styles.
package yangstyle

import (
	"log/slog"

	"github.com/signadot/yangstyle/combine"
	"github.com/signadot/yangstyle/diag"
	"github.com/signadot/yangstyle/grammar"
	"github.com/signadot/yangstyle/pass"
	"github.com/signadot/yangstyle/split"
	"github.com/signadot/yangstyle/stmt"

	_ "github.com/signadot/yangstyle/ocstyle"
)

type Tool struct {
	Options pass.Options
	Table   *grammar.Table
	Log     *slog.Logger
}

func DefaultTool() *Tool {
	return &Tool{
		Options: pass.Options{
			StateSuffix: split.DefaultSuffix,
		},
		Table: grammar.Default(),
		Log:   slog.Default(),
	}
}

func (t *Tool) table() *grammar.Table {
	if t.Table == nil {
		t.Table = grammar.Default()
	}
	return t.Table
}

// Convert runs the selected pass on a copy of root and returns the copy
// together with the warnings produced.
func (t *Tool) Convert(root *stmt.Statement) (*stmt.Statement, *diag.Report, error) {
	res := stmt.Copy(root, stmt.CopyAnnotations)
	opts := t.Options
	ctx := &pass.Context{
		Table:   t.table(),
		Report:  diag.NewReport(t.Log),
		Options: &opts,
		Log:     t.Log,
	}
	if err := pass.Run(res, ctx); err != nil {
		return nil, ctx.Report, err
	}
	return res, ctx.Report, nil
}

// Split produces both the config module and the state module of a
// combined module.
func (t *Tool) Split(root *stmt.Statement) (*split.Pair, *diag.Report, error) {
	rep := diag.NewReport(t.Log)
	opts := split.Options{
		Suffix:    t.Options.StateSuffix,
		Canonical: t.Options.CanonicalOrder,
	}
	p, err := split.Split(root, t.table(), opts, rep)
	if err != nil {
		return nil, rep, err
	}
	if t.Options.CanonicalOrder {
		t.table().SortTree(p.Config)
		t.table().SortTree(p.State)
	}
	return p, rep, nil
}

// Combine merges a config module and its state module into one module.
func (t *Tool) Combine(cfg, state *stmt.Statement) (*stmt.Statement, *diag.Report, error) {
	rep := diag.NewReport(t.Log)
	opts := combine.Options{
		Suffix:           t.Options.StateSuffix,
		RemoveStateNodes: t.Options.RemoveStateNodes,
		Rename:           t.Options.Rename,
		RenameImports:    t.Options.RenameImports,
	}
	res, err := combine.Modules(cfg, state, t.table(), opts, rep)
	if err != nil {
		return nil, rep, err
	}
	if t.Options.CanonicalOrder {
		t.table().SortTree(res)
	}
	if err := stmt.Validate(res); err != nil {
		return nil, rep, err
	}
	return res, rep, nil
}
