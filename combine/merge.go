package combine

import (
	"github.com/signadot/yangstyle/debug"
	"github.com/signadot/yangstyle/diag"
	"github.com/signadot/yangstyle/grammar"
	"github.com/signadot/yangstyle/libdiff"
	"github.com/signadot/yangstyle/refs"
	"github.com/signadot/yangstyle/stmt"
)

// Marker separates a config text from the differing state text appended
// to it.
const Marker = "FROM STATE TREE (NEEDS MANUAL RECONCILIATION):"

type merger struct {
	table *grammar.Table
	opts  *Options
	rep   *diag.Report
	// applied to every statement copied from a state tree
	pathRenames map[string]string
	typeRenames map[string]string
}

// Merge folds the state subtree into the cfg subtree. state is not
// modified.
//
// A state child matches a cfg child with the same keyword and either the
// same argument or, for description and presence, any argument. Matched
// statements are merged recursively; unmatched ones are copied over and
// marked config false. Types of matched leaves are not compared.
func Merge(cfg, state *stmt.Statement, table *grammar.Table, opts Options, rep *diag.Report) error {
	m := &merger{table: table, opts: &opts, rep: rep}
	return m.merge(cfg, state)
}

func isContent(kw string) bool {
	return kw == "description" || kw == "presence"
}

func matches(c, s *stmt.Statement) bool {
	return c.Keyword == s.Keyword && (isContent(s.Keyword) || c.Arg == s.Arg)
}

func (m *merger) merge(cfg, state *stmt.Statement) error {
	cfgKids := m.table.Sorted(cfg)
	for _, s := range m.table.Sorted(state) {
		var match *stmt.Statement
		for _, c := range cfgKids {
			if matches(c, s) {
				match = c
				break
			}
		}
		switch {
		case match != nil && isContent(s.Keyword):
			if s.Arg != match.Arg {
				detail := libdiff.Text(match.Arg, s.Arg)
				match.Arg = match.Arg + "\n\n" + Marker + "\n" + s.Arg
				m.rep.Ambiguous(match, detail)
			}
		case match != nil:
			if err := m.merge(match, s); err != nil {
				return err
			}
		case s.Keyword != "config":
			if err := m.copyState(cfg, s); err != nil {
				return err
			}
		}
	}
	return nil
}

func (m *merger) copyState(cfg, s *stmt.Statement) error {
	cp := stmt.Copy(s, stmt.RecomputeConfig)
	if debug.Combine() {
		debug.Logf("combine: copy %s into %s\n", s.Path(), cfg.Path())
	}
	m.fixup(cp)
	if stmt.IsNodeBearing(cp.Keyword) {
		if cf := cp.SearchOne("config"); cf != nil {
			cf.Arg = "false"
		} else if err := m.table.AddCanonical(cp, stmt.NewAt(cp, "config", "false")); err != nil {
			return err
		}
		cp.Config = stmt.ConfigFalse
	}
	return m.table.AddCanonical(cfg, cp)
}

func (m *merger) fixup(s *stmt.Statement) {
	refs.RetypeStateRefs(s, m.typeRenames)
	refs.RenamePathSegments(s, m.pathRenames)
}
