package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/signadot/yangstyle/query"
)

func find(cfg *FindConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Find.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Expr == "" {
		return fmt.Errorf("%w: find requires -e", cli.ErrUsage)
	}
	q, err := query.Compile(cfg.Expr)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		m, err := cfg.getModule(cc, file)
		if err != nil {
			return err
		}
		res, err := query.Find(m, q)
		if err != nil {
			return err
		}
		for _, s := range res {
			if _, err := fmt.Fprintf(cc.Out, "%s\t%s\n", s.Pos, s.Path()); err != nil {
				return err
			}
		}
	}
	return nil
}
