package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/yangstyle"
	"github.com/signadot/yangstyle/annotate"
	"github.com/signadot/yangstyle/encode"
	"github.com/signadot/yangstyle/format"
	"github.com/signadot/yangstyle/grammar"
	"github.com/signadot/yangstyle/parse"
	"github.com/signadot/yangstyle/pass"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color       bool `cli:"name=color desc='encode with color'"`
	Verbose     bool `cli:"name=v desc='log debug messages'"`
	Annotations bool `cli:"name=a desc='show config annotations in the yang view'"`
	Annotate    bool `cli:"name=annotate desc='compute module, config and reference annotations of the input'"`

	InFormat, OutFormat *format.Format

	Table    *grammar.Table
	Patch    []byte
	Registry *annotate.Registry

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func loadTable(r io.Reader) (*grammar.Table, error) {
	t, err := grammar.LoadTable(r)
	if err != nil {
		return nil, err
	}
	return grammar.Default().Merge(t), nil
}

func (cfg *MainConfig) table() *grammar.Table {
	if cfg.Table == nil {
		cfg.Table = grammar.Default()
	}
	return cfg.Table
}

// parseOpts returns the options to decode file with: the format given by
// -I, else the one its extension names, else YAML.
func (cfg *MainConfig) parseOpts(file string) []parse.ParseOption {
	fmat := format.YAMLFormat
	if f, ok := format.FromPath(file); ok && f.Readable() {
		fmat = f
	}
	if cfg.InFormat != nil {
		fmat = *cfg.InFormat
	}
	res := []parse.ParseOption{
		parse.ParseFormat(fmat),
	}
	if file != "-" {
		res = append(res, parse.ParseFile(file))
	}
	if cfg.Patch != nil {
		res = append(res, parse.ParsePatch(cfg.Patch))
	}
	return res
}

func (cfg *MainConfig) colored(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	fmat := format.YANGFormat
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	res := []encode.EncodeOption{
		encode.EncodeFormat(fmat),
		encode.EncodeAnnotations(cfg.Annotations),
	}
	if fmat.IsYANG() && cfg.colored(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

func (cfg *MainConfig) tool(opts pass.Options) *yangstyle.Tool {
	t := yangstyle.DefaultTool()
	t.Options = opts
	t.Table = cfg.table()
	t.Log = theLog
	return t
}

// PassConfig holds the options shared by the converting commands.
type PassConfig struct {
	*MainConfig

	Remove     bool   `cli:"name=remove-state-nodes aliases=remove desc='remove merged state nodes instead of deprecating them'"`
	Canonical  bool   `cli:"name=canonical-order desc='place inserted statements and the result in canonical order'"`
	Suffix     string `cli:"name=state-suffix desc='suffix of state container and module names (default -state)'"`
	OCSuffix   string `cli:"name=oc-suffix desc='suffix of openconfig style module names (default -oc-style)'"`
	Rename     string `cli:"name=rename desc='suffix appended to the combined module name and namespace'"`
	BaseImport string `cli:"name=base-import desc='import retargeted to its openconfig style module'"`
	OCImport   string `cli:"name=oc-import desc='name of the retargeted import'"`
	OCPrefix   string `cli:"name=oc-prefix desc='prefix of the retargeted import'"`

	RenameImports []string
}

func (cfg *PassConfig) renameImportOpt(_ *cli.Context, a string) (any, error) {
	cfg.RenameImports = append(cfg.RenameImports, a)
	return a, nil
}

func (cfg *PassConfig) opts() ([]*cli.Opt, error) {
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		return nil, err
	}
	return append(opts, &cli.Opt{
		Name:        "rename-import",
		Description: "import renamed along with the module when combining",
		Type:        cli.NamedFuncOpt(cfg.renameImportOpt, "(module)"),
	}), nil
}

func (cfg *PassConfig) options() pass.Options {
	return pass.Options{
		RemoveStateNodes: cfg.Remove,
		CanonicalOrder:   cfg.Canonical,
		StateSuffix:      cfg.Suffix,
		OCSuffix:         cfg.OCSuffix,
		Rename:           cfg.Rename,
		RenameImports:    cfg.RenameImports,
		BaseImport:       cfg.BaseImport,
		OCImport:         cfg.OCImport,
		OCPrefix:         cfg.OCPrefix,
	}
}

type RunConfig struct {
	*PassConfig

	Split   bool `cli:"name=split-state-tree desc='split the state tree out of a combined module'"`
	Combine bool `cli:"name=combine-state-tree desc='merge state containers into their config containers'"`
	OC      bool `cli:"name=to-openconfig-style desc='convert to openconfig style'"`

	Run *cli.Command
}

type SplitConfig struct {
	*PassConfig
	Pair bool `cli:"name=pair desc='output the config module before the state module'"`

	Split *cli.Command
}

type CombineConfig struct {
	*PassConfig

	Combine *cli.Command
}

type OCConfig struct {
	*PassConfig

	OC *cli.Command
}

type OrderConfig struct {
	*MainConfig

	Order *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type FindConfig struct {
	*MainConfig

	Expr string `cli:"name=e desc='expr-lang predicate over keyword, arg, path, config, depth, parent and children'"`

	Find *cli.Command
}
