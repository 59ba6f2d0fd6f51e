package ocstyle

import (
	"github.com/signadot/yangstyle/pass"
	"github.com/signadot/yangstyle/stmt"
)

type ocPass struct{}

func (ocPass) Name() string { return pass.ToOpenConfigStyle }

func (ocPass) Run(root *stmt.Statement, ctx *pass.Context) error {
	o := ctx.Options
	opts := Options{
		Suffix:     o.OCSuffix,
		BaseImport: o.BaseImport,
		OCImport:   o.OCImport,
		OCPrefix:   o.OCPrefix,
	}
	return Convert(root, ctx.Table, opts, ctx.Report)
}

func init() {
	if err := pass.Register(ocPass{}); err != nil {
		panic(err)
	}
}
