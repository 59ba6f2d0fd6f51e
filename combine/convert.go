package combine

import (
	"maps"
	"slices"
	"strings"

	"github.com/signadot/yangstyle/debug"
	"github.com/signadot/yangstyle/diag"
	"github.com/signadot/yangstyle/grammar"
	"github.com/signadot/yangstyle/refs"
	"github.com/signadot/yangstyle/stmt"
)

type pair struct {
	cfg, state *stmt.Statement
}

// Convert merges, in place, the state containers and state augments of
// module into their config counterparts.
func Convert(module *stmt.Statement, table *grammar.Table, opts Options, rep *diag.Report) error {
	if module.Keyword != "module" && module.Keyword != "submodule" {
		return stmt.Structuralf(module, "expected module or submodule, got %s", module.Keyword)
	}
	suffix := opts.suffix()
	rename(module, &opts)
	m := &merger{
		table:       table,
		opts:        &opts,
		rep:         rep,
		pathRenames: map[string]string{},
		typeRenames: stateRefs(module, suffix),
	}
	refs.RetypeStateRefs(module, m.typeRenames)

	kids := table.Sorted(module)
	var pairs []pair
	for _, c := range kids {
		switch {
		case IsConfigContainer(c, suffix):
			for _, s := range kids {
				if MatchesState(c, s, suffix) {
					pairs = append(pairs, pair{c, s})
					m.pathRenames[s.Arg] = c.Arg
					break
				}
			}
		case IsStateAugment(c, suffix):
			cfgPath, _ := ConfigAugmentPath(c.Arg, suffix)
			i := slices.IndexFunc(kids, func(x *stmt.Statement) bool {
				return x.Keyword == "augment" && x.Arg == cfgPath
			})
			if i >= 0 {
				pairs = append(pairs, pair{kids[i], c})
				continue
			}
			if debug.Combine() {
				debug.Logf("combine: retarget augment %s -> %s\n", c.Arg, cfgPath)
			}
			c.Arg = cfgPath
		}
	}

	for _, p := range pairs {
		if debug.Combine() {
			debug.Logf("combine: merge %s into %s\n", p.state.Path(), p.cfg.Path())
		}
		if err := m.merge(p.cfg, p.state); err != nil {
			return err
		}
		if opts.RemoveStateNodes {
			p.state.Remove()
			continue
		}
		if err := Deprecate(p.state, table); err != nil {
			return err
		}
	}
	if opts.RemoveStateNodes {
		refs.RenamePathSegments(module, m.pathRenames)
		return nil
	}
	for _, g := range module.Search("grouping") {
		m.fixup(g)
	}
	return nil
}

func rename(module *stmt.Statement, opts *Options) {
	if opts.Rename == "" {
		return
	}
	module.Arg += opts.Rename
	for _, c := range module.Children {
		switch c.Keyword {
		case "namespace", "belongs-to":
			c.Arg += opts.Rename
		case "import", "include":
			if slices.Contains(opts.RenameImports, c.Arg) {
				c.Arg += opts.Rename
			}
		}
	}
}

// stateRefs removes the top-level typedefs X<suffix>-ref that have an
// X-ref counterpart and returns the type renames retargeting their uses.
// References to such typedefs in other modules are retargeted as well.
func stateRefs(module *stmt.Statement, suffix string) map[string]string {
	res := map[string]string{}
	stateRef := suffix + "-ref"
	for _, td := range module.Search("typedef") {
		if !strings.HasSuffix(td.Arg, stateRef) {
			continue
		}
		to := strings.TrimSuffix(td.Arg, stateRef) + "-ref"
		if module.SearchArg("typedef", to) == nil {
			continue
		}
		res[td.Arg] = to
		td.Remove()
	}
	own := ownPrefix(module)
	for k, v := range maps.Clone(res) {
		if own != "" {
			res[own+":"+k] = own + ":" + v
		}
	}
	module.Walk(func(x *stmt.Statement) bool {
		if x.Keyword != "type" {
			return true
		}
		i := strings.IndexByte(x.Arg, ':')
		if i < 0 || x.Arg[:i] == own {
			return true
		}
		local := x.Arg[i+1:]
		if strings.HasSuffix(local, stateRef) {
			res[x.Arg] = x.Arg[:i+1] + strings.TrimSuffix(local, stateRef) + "-ref"
		}
		return true
	})
	return res
}

func ownPrefix(module *stmt.Statement) string {
	p := module.SearchOne("prefix")
	if bt := module.SearchOne("belongs-to"); bt != nil {
		p = bt.SearchOne("prefix")
	}
	if p == nil {
		return ""
	}
	return p.Arg
}
