package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/scott-cotton/cli"
)

func ysMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		logLevel.Set(slog.LevelDebug)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) tableOpt(_ *cli.Context, a string) (any, error) {
	f, err := os.Open(a)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	t, err := loadTable(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", cli.ErrUsage, a, err)
	}
	cfg.Table = t
	return a, nil
}

func (cfg *MainConfig) patchOpt(_ *cli.Context, a string) (any, error) {
	d, err := os.ReadFile(a)
	if err != nil {
		return nil, err
	}
	cfg.Patch = d
	return a, nil
}

func (cfg *MainConfig) moduleOpt(cc *cli.Context, a string) (any, error) {
	m, err := getStmtFile(cc, a, cfg.parseOpts(a)...)
	if err != nil {
		return nil, err
	}
	if err := cfg.Registry.Add(m); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", cli.ErrUsage, a, err)
	}
	return a, nil
}
