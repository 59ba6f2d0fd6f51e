package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	"github.com/signadot/yangstyle/encode"
	"github.com/signadot/yangstyle/format"
	"github.com/signadot/yangstyle/libdiff"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := cfg.getModule(cc, args[0])
	if err != nil {
		return err
	}
	b, err := cfg.getModule(cc, args[1])
	if err != nil {
		return err
	}
	lines, err := libdiff.Statements(a, b,
		encode.EncodeFormat(format.YANGFormat),
		encode.EncodeAnnotations(cfg.Annotations))
	if err != nil {
		return err
	}
	if !libdiff.Changed(lines) {
		return nil
	}
	if err := writeDiff(cfg, cc.Out, lines); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

func writeDiff(cfg *DiffConfig, w io.Writer, lines []libdiff.Line) error {
	var ins, del func(string, ...any) string
	if cfg.colored(w) {
		ins = color.GreenString
		del = color.RedString
	}
	_, err := io.WriteString(w, libdiff.Render(lines, ins, del))
	return err
}
