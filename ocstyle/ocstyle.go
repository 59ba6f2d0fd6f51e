package ocstyle

import (
	"strings"

	"github.com/signadot/yangstyle/annotate"
	"github.com/signadot/yangstyle/debug"
	"github.com/signadot/yangstyle/diag"
	"github.com/signadot/yangstyle/grammar"
	"github.com/signadot/yangstyle/refs"
	"github.com/signadot/yangstyle/stmt"
)

type converter struct {
	table  *grammar.Table
	opts   *Options
	rep    *diag.Report
	module *stmt.ModuleInfo
}

// Convert rewrites module in place.
func Convert(module *stmt.Statement, table *grammar.Table, opts Options, rep *diag.Report) error {
	if module.Keyword != "module" && module.Keyword != "submodule" {
		return stmt.Structuralf(module, "expected module or submodule, got %s", module.Keyword)
	}
	c := &converter{table: table, opts: &opts, rep: rep, module: module.Module}
	if c.module == nil {
		c.module = annotate.Info(module)
	}
	if err := c.hoistIncludeImports(module); err != nil {
		return err
	}
	c.retargetBaseImport(module)
	// typedef owners are resolved through the module name
	if err := c.node(module); err != nil {
		return err
	}
	module.Arg += opts.suffix()
	return nil
}

// node converts the children of n, a module, augment or configurable
// container or list.
func (c *converter) node(n *stmt.Statement) error {
	if debug.OCStyle() {
		debug.Logf("ocstyle: %s\n", n.Path())
	}
	var newKids []*stmt.Statement
	if n.Keyword == "list" {
		newKids = append(newKids, c.keyLeafrefs(n)...)
	}
	p := &pair{parent: n}
	if pr := n.SearchOne("presence"); pr != nil && n.Keyword == "container" {
		p.enabled = pr.Arg
	}

	items := c.table.Sorted(n)
	for i := 0; i < len(items); i++ {
		ch := items[i]
		switch {
		case ch.Keyword == "uses":
			exp, err := c.expand(ch, nil)
			if err != nil {
				return err
			}
			if exp == nil {
				newKids = append(newKids, ch)
				continue
			}
			items = splice(items, i+1, exp)
		case ch.Keyword == "grouping":
		case ch.Keyword == "presence" && p.enabled != "":
		case (ch.Keyword == "container" || ch.Keyword == "list" || ch.Keyword == "augment") && ch.EffectiveConfig():
			if err := c.node(ch); err != nil {
				return err
			}
			newKids = append(newKids, ch)
		case isUnit(ch.Keyword) && ch.EffectiveConfig():
			if err := c.flatten(ch); err != nil {
				return err
			}
			newKids = p.ensure(newKids)
			if err := c.settable(ch, p); err != nil {
				return err
			}
		case stmt.IsNodeBearing(ch.Keyword) || ch.Keyword == "case":
			if err := c.flatten(ch); err != nil {
				return err
			}
			newKids = p.ensure(newKids)
			refs.FixSubtreeLeafrefs(ch, 1)
			stmt.StripConfig(ch)
			if err := p.state.Append(ch); err != nil {
				return err
			}
		case ch.Keyword == "rpc" || ch.Keyword == "action" || ch.Keyword == "notification":
			if err := c.flatten(ch); err != nil {
				return err
			}
			newKids = append(newKids, ch)
		default:
			newKids = append(newKids, ch)
		}
	}
	if p.enabled != "" {
		newKids = p.ensure(newKids)
	}
	return n.SetChildren(newKids)
}

// units placed under config and state as a whole
func isUnit(kw string) bool {
	switch kw {
	case "leaf", "leaf-list", "choice", "case", "anydata", "anyxml":
		return true
	}
	return false
}

// settable places ch under p.config and a read-only copy under p.state.
func (c *converter) settable(ch *stmt.Statement, p *pair) error {
	switch ch.Keyword {
	case "leaf", "leaf-list":
		refs.FixLeafrefPath(ch, 1)
		refs.QualifyTypedef(ch, c.module, c.rep)
	default:
		refs.FixSubtreeLeafrefs(ch, 1)
		ch.Walk(func(x *stmt.Statement) bool {
			if x.Keyword == "leaf" || x.Keyword == "leaf-list" {
				refs.QualifyTypedef(x, c.module, c.rep)
			}
			return true
		})
	}
	st := stmt.Copy(ch, stmt.RecomputeConfig)
	stmt.StripConfig(st)
	st.Config = stmt.ConfigFalse

	stmt.PruneState(ch)
	stmt.StripConfig(ch)
	if debug.OCStyle() {
		debug.Logf("ocstyle: %s -> config, state\n", ch.Path())
	}
	if err := p.config.Append(ch); err != nil {
		return err
	}
	return p.state.Append(st)
}

// keyLeafrefs returns one leaf per key of list, referencing the key leaf
// in the list's config container.
func (c *converter) keyLeafrefs(list *stmt.Statement) []*stmt.Statement {
	key := list.SearchOne("key")
	if key == nil {
		return nil
	}
	var res []*stmt.Statement
	for _, k := range strings.Fields(key.Arg) {
		if i := strings.IndexByte(k, ':'); i >= 0 {
			k = k[i+1:]
		}
		res = append(res, stmt.NewAt(list, "leaf", k,
			stmt.NewAt(list, "type", "leafref",
				stmt.NewAt(list, "path", "../config/"+k)),
			stmt.NewAt(list, "description", KeyDescription)))
	}
	return res
}

func splice(items []*stmt.Statement, at int, ins []*stmt.Statement) []*stmt.Statement {
	res := make([]*stmt.Statement, 0, len(items)+len(ins))
	res = append(res, items[:at]...)
	res = append(res, ins...)
	return append(res, items[at:]...)
}
