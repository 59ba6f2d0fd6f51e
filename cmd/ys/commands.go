package main

import (
	"github.com/scott-cotton/cli"
	"github.com/signadot/yangstyle/annotate"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{Registry: annotate.NewRegistry()}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: yang/g, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		},
		&cli.Opt{
			Name:        "table",
			Description: "statement ordering table overriding the default orders",
			Type:        cli.NamedFuncOpt(cfg.tableOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "patch",
			Description: "json patch applied to each input before conversion",
			Type:        cli.NamedFuncOpt(cfg.patchOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "m",
			Aliases:     []string{"module"},
			Description: "load a module for resolving prefixed names with -annotate",
			Type:        cli.NamedFuncOpt(cfg.moduleOpt, "(filepath)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "ys").
		WithSynopsis("ys [opts] command [opts]").
		WithDescription("ys converts yang statement trees between combined, split config/state and openconfig styles.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return ysMain(cfg, cc, args)
		}).
		WithSubs(
			RunCommand(cfg),
			SplitCommand(cfg),
			CombineCommand(cfg),
			OCCommand(cfg),
			OrderCommand(cfg),
			ViewCommand(cfg),
			DiffCommand(cfg),
			FindCommand(cfg))
}

func passOpts(cfg any, pCfg *PassConfig) []*cli.Opt {
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	pOpts, err := pCfg.opts()
	if err != nil {
		panic(err)
	}
	return append(opts, pOpts...)
}

func RunCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RunConfig{PassConfig: &PassConfig{MainConfig: mainCfg}}
	return cli.NewCommandAt(&cfg.Run, "run").
		WithSynopsis("run -split-state-tree|-combine-state-tree|-to-openconfig-style [opts] file").
		WithDescription("run the selected conversion pass on a module").
		WithOpts(passOpts(cfg, cfg.PassConfig)...).
		WithRun(func(cc *cli.Context, args []string) error {
			return run(cfg, cc, args)
		})
}

func SplitCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SplitConfig{PassConfig: &PassConfig{MainConfig: mainCfg}}
	return cli.NewCommandAt(&cfg.Split, "split").
		WithAliases("s").
		WithSynopsis("split [-pair] [opts] file").
		WithDescription("split the state tree of a combined module into a -state module").
		WithOpts(passOpts(cfg, cfg.PassConfig)...).
		WithRun(func(cc *cli.Context, args []string) error {
			return splitModule(cfg, cc, args)
		})
}

func CombineCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CombineConfig{PassConfig: &PassConfig{MainConfig: mainCfg}}
	return cli.NewCommandAt(&cfg.Combine, "combine").
		WithAliases("c").
		WithSynopsis("combine [-remove] [opts] file [state-file]").
		WithDescription("merge state containers, or a separate state module, into the config tree").
		WithOpts(passOpts(cfg, cfg.PassConfig)...).
		WithRun(func(cc *cli.Context, args []string) error {
			return combineModules(cfg, cc, args)
		})
}

func OCCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &OCConfig{PassConfig: &PassConfig{MainConfig: mainCfg}}
	return cli.NewCommandAt(&cfg.OC, "oc-style").
		WithAliases("oc").
		WithSynopsis("oc-style [opts] file").
		WithDescription("convert a module to openconfig style").
		WithOpts(passOpts(cfg, cfg.PassConfig)...).
		WithRun(func(cc *cli.Context, args []string) error {
			return ocStyle(cfg, cc, args)
		})
}

func OrderCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &OrderConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Order, "order").
		WithSynopsis("order [files]").
		WithDescription("put the statements of modules in canonical order").
		WithRun(func(cc *cli.Context, args []string) error {
			return order(cfg, cc, args)
		})
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.View, "view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("view statement trees").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d").
		WithSynopsis("diff file1 file2").
		WithDescription("diff the yang views of two statement trees").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func FindCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FindConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Find, "find").
		WithAliases("f").
		WithSynopsis("find -e expr [files]").
		WithDescription("print the paths of statements matching an expression").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return find(cfg, cc, args)
		})
}
