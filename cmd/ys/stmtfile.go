package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"
	"github.com/signadot/yangstyle/annotate"
	"github.com/signadot/yangstyle/diag"
	"github.com/signadot/yangstyle/encode"
	"github.com/signadot/yangstyle/parse"
	"github.com/signadot/yangstyle/stmt"
)

func getStmtFile(cc *cli.Context, path string, opts ...parse.ParseOption) (*stmt.Statement, error) {
	var (
		r io.Reader
	)
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}

	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return parse.Parse(d, opts...)
}

// getModule reads the module in path, annotating it when requested.
func (cfg *MainConfig) getModule(cc *cli.Context, path string) (*stmt.Statement, error) {
	m, err := getStmtFile(cc, path, cfg.parseOpts(path)...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", path, err)
	}
	if cfg.Annotate {
		rep := diag.NewReport(theLog)
		annotate.Module(m, cfg.Registry, rep)
		rep.Flush()
	}
	return m, nil
}

func (cfg *MainConfig) writeStmts(w io.Writer, ss ...*stmt.Statement) error {
	opts := cfg.encOpts(w)
	for i, s := range ss {
		if i > 0 {
			if _, err := w.Write([]byte("\n---\n")); err != nil {
				return fmt.Errorf("error writing document %d: %w", i, err)
			}
		}
		if err := encode.Encode(s, w, opts...); err != nil {
			return fmt.Errorf("error encoding result %d: %w", i, err)
		}
	}
	return nil
}

func oneFile(args []string) (string, error) {
	switch len(args) {
	case 0:
		return "-", nil
	case 1:
		return args[0], nil
	default:
		return "", fmt.Errorf("%w: expected at most one file, got %v", cli.ErrUsage, args)
	}
}
