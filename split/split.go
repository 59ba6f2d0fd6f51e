// Package split converts a combined config and state module into the
// state half of a split module pair.
package split

import (
	"maps"
	"strings"

	"github.com/signadot/yangstyle/debug"
	"github.com/signadot/yangstyle/diag"
	"github.com/signadot/yangstyle/grammar"
	"github.com/signadot/yangstyle/refs"
	"github.com/signadot/yangstyle/stmt"
)

const DefaultSuffix = "-state"

type Options struct {
	// Suffix is appended to the module, namespace, prefix and top-level
	// container names. Empty means DefaultSuffix.
	Suffix string
	// Canonical inserts the synthesized config statements in grammar
	// order instead of appending them.
	Canonical bool
}

func (o *Options) suffix() string {
	if o.Suffix == "" {
		return DefaultSuffix
	}
	return o.Suffix
}

// Convert rewrites module in place into its state counterpart.
func Convert(module *stmt.Statement, table *grammar.Table, opts Options, rep *diag.Report) error {
	suffix := opts.suffix()
	hdr, err := renameHeader(module, suffix)
	if err != nil {
		return err
	}
	imp := stmt.NewAt(module, "import", hdr.importName,
		stmt.NewAt(module, "prefix", hdr.origPrefix))
	if err := table.AddCanonical(module, imp); err != nil {
		return err
	}
	relabel(module, hdr)

	names := refs.ModuleNames(module, hdr.origPrefix, "feature", "identity", "typedef")
	removeDefinitions(module)
	refs.Qualify(module, names, rep)

	stmt.StripConfig(module)

	for _, c := range table.Sorted(module) {
		if !stmt.IsNodeBearing(c.Keyword) {
			continue
		}
		if c.Keyword == "container" && !strings.HasSuffix(c.Arg, suffix) {
			if debug.Split() {
				debug.Logf("split: %s -> %s\n", c.Arg, c.Arg+suffix)
			}
			c.Arg += suffix
		}
		if err := markState(c, table, opts.Canonical); err != nil {
			return err
		}
	}
	return nil
}

type header struct {
	origName   string
	origPrefix string
	importName string
	newPrefix  string
}

func renameHeader(module *stmt.Statement, suffix string) (*header, error) {
	hdr := &header{origName: module.Arg, importName: module.Arg}
	var prefix *stmt.Statement
	switch module.Keyword {
	case "module":
		prefix = module.SearchOne("prefix")
		if ns := module.SearchOne("namespace"); ns != nil {
			ns.Arg += suffix
		}
	case "submodule":
		bt := module.SearchOne("belongs-to")
		if bt == nil {
			return nil, stmt.Structuralf(module, "submodule without belongs-to")
		}
		hdr.importName = bt.Arg
		prefix = bt.SearchOne("prefix")
		bt.Arg += suffix
	default:
		return nil, stmt.Structuralf(module, "expected module or submodule, got %s", module.Keyword)
	}
	if prefix == nil {
		return nil, stmt.Structuralf(module, "missing prefix")
	}
	hdr.origPrefix = prefix.Arg
	prefix.Arg += suffix
	hdr.newPrefix = prefix.Arg
	module.Arg += suffix
	return hdr, nil
}

// relabel points the statements of the original module at a module info
// describing the renamed one.
func relabel(module *stmt.Statement, hdr *header) {
	old := module.Module
	info := &stmt.ModuleInfo{
		Name:    module.Arg,
		Prefix:  hdr.newPrefix,
		Imports: map[string]string{hdr.origPrefix: hdr.importName},
	}
	if old != nil {
		maps.Copy(info.Imports, old.Imports)
		info.Imports[hdr.origPrefix] = hdr.importName
	}
	module.Walk(func(s *stmt.Statement) bool {
		if s.Module == old {
			s.Module = info
		}
		return true
	})
}

func removeDefinitions(module *stmt.Statement) {
	module.Walk(func(s *stmt.Statement) bool {
		switch s.Keyword {
		case "feature", "identity", "typedef":
			if debug.Split() {
				debug.Logf("split: remove %s\n", s.Path())
			}
			s.Remove()
			return false
		}
		return true
	})
}

func markState(c *stmt.Statement, table *grammar.Table, canonical bool) error {
	cf := stmt.NewAt(c, "config", "false")
	c.Config = stmt.ConfigFalse
	if canonical {
		return table.AddCanonical(c, cf)
	}
	return c.Append(cf)
}
