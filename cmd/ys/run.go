package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/signadot/yangstyle/pass"
	"github.com/signadot/yangstyle/stmt"
)

func run(cfg *RunConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Run.Parse(cc, args)
	if err != nil {
		return err
	}
	opts := cfg.options()
	opts.SplitStateTree = cfg.Split
	opts.CombineStateTree = cfg.Combine
	opts.ToOpenConfigStyle = cfg.OC
	if _, err := opts.Selected(); err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return convert(cfg.PassConfig, cc, args, opts)
}

func convert(cfg *PassConfig, cc *cli.Context, args []string, opts pass.Options) error {
	file, err := oneFile(args)
	if err != nil {
		return err
	}
	m, err := cfg.getModule(cc, file)
	if err != nil {
		return err
	}
	res, rep, err := cfg.tool(opts).Convert(m)
	rep.Flush()
	if err != nil {
		return fmt.Errorf("error converting %s: %w", file, err)
	}
	return cfg.writeStmts(cc.Out, res)
}

func splitModule(cfg *SplitConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Split.Parse(cc, args)
	if err != nil {
		return err
	}
	opts := cfg.options()
	opts.SplitStateTree = true
	if !cfg.Pair {
		return convert(cfg.PassConfig, cc, args, opts)
	}
	file, err := oneFile(args)
	if err != nil {
		return err
	}
	m, err := cfg.getModule(cc, file)
	if err != nil {
		return err
	}
	p, rep, err := cfg.tool(opts).Split(m)
	rep.Flush()
	if err != nil {
		return fmt.Errorf("error splitting %s: %w", file, err)
	}
	return cfg.writeStmts(cc.Out, p.Config, p.State)
}

func combineModules(cfg *CombineConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Combine.Parse(cc, args)
	if err != nil {
		return err
	}
	opts := cfg.options()
	opts.CombineStateTree = true
	if len(args) != 2 {
		return convert(cfg.PassConfig, cc, args, opts)
	}
	var ms [2]*stmt.Statement
	for i, file := range args {
		ms[i], err = cfg.getModule(cc, file)
		if err != nil {
			return err
		}
	}
	res, rep, err := cfg.tool(opts).Combine(ms[0], ms[1])
	rep.Flush()
	if err != nil {
		return fmt.Errorf("error combining %s and %s: %w", args[0], args[1], err)
	}
	return cfg.writeStmts(cc.Out, res)
}

func ocStyle(cfg *OCConfig, cc *cli.Context, args []string) error {
	args, err := cfg.OC.Parse(cc, args)
	if err != nil {
		return err
	}
	opts := cfg.options()
	opts.ToOpenConfigStyle = true
	return convert(cfg.PassConfig, cc, args, opts)
}

func order(cfg *OrderConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Order.Parse(cc, args)
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
		cfg.table().SortTree(m)
		res = append(res, m)
	}
	return cfg.writeStmts(cc.Out, res...)
}
