package split

import (
	"github.com/signadot/yangstyle/pass"
	"github.com/signadot/yangstyle/stmt"
)

type splitPass struct{}

func (splitPass) Name() string { return pass.SplitStateTree }

func (splitPass) Run(root *stmt.Statement, ctx *pass.Context) error {
	opts := Options{
		Suffix:    ctx.Options.StateSuffix,
		Canonical: ctx.Options.CanonicalOrder,
	}
	return Convert(root, ctx.Table, opts, ctx.Report)
}

func init() {
	if err := pass.Register(splitPass{}); err != nil {
		panic(err)
	}
}
