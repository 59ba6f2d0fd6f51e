package main

import (
	"github.com/scott-cotton/cli"
	"github.com/signadot/yangstyle/stmt"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	res := make([]*stmt.Statement, 0, len(args))
	for _, file := range args {
		m, err := cfg.getModule(cc, file)
		if err != nil {
			return err
		}
		res = append(res, m)
	}
	return cfg.writeStmts(cc.Out, res...)
}
