package combine

import (
	"github.com/signadot/yangstyle/pass"
	"github.com/signadot/yangstyle/stmt"
)

type combinePass struct{}

func (combinePass) Name() string { return pass.CombineStateTree }

func (combinePass) Run(root *stmt.Statement, ctx *pass.Context) error {
	o := ctx.Options
	opts := Options{
		Suffix:           o.StateSuffix,
		RemoveStateNodes: o.RemoveStateNodes,
		Rename:           o.Rename,
		RenameImports:    o.RenameImports,
	}
	return Convert(root, ctx.Table, opts, ctx.Report)
}

func init() {
	if err := pass.Register(combinePass{}); err != nil {
		panic(err)
	}
}
