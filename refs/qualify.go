package refs

import (
	"strings"

	"github.com/signadot/yangstyle/debug"
	"github.com/signadot/yangstyle/diag"
	"github.com/signadot/yangstyle/stmt"
)

// Qualify rewrites references to the names in names found in s and its
// descendants. if-feature expressions, type and base arguments are
// tokenized and every bare identifier in names is replaced by its
// qualified form; bare identifiers not in names (builtin types and
// feature operators aside) are reported as unresolved and left alone. In
// must and when expressions only quoted literals are considered, and
// those not in names are not reported.
func Qualify(s *stmt.Statement, names NameSet, rep *diag.Report) {
	s.Walk(func(x *stmt.Statement) bool {
		switch x.Keyword {
		case "if-feature":
			x.Arg = qualifyExpr(x, names, rep, featureOps)
		case "type":
			if !IsBuiltinType(x.Arg) {
				x.Arg = qualifyExpr(x, names, rep, nil)
			}
		case "base":
			x.Arg = qualifyExpr(x, names, rep, nil)
		case "must", "when":
			x.Arg = qualifyLiterals(x, names)
		}
		return true
	})
}

func qualifyExpr(x *stmt.Statement, names NameSet, rep *diag.Report, skip map[string]bool) string {
	return identRe.ReplaceAllStringFunc(x.Arg, func(tok string) string {
		if strings.IndexByte(tok, ':') >= 0 || skip[tok] {
			return tok
		}
		q, ok := names[tok]
		if !ok {
			rep.Unresolved(x, tok)
			return tok
		}
		if debug.Refs() {
			debug.Logf("qualify %s: %s -> %s\n", x.Path(), tok, q)
		}
		return q
	})
}

func qualifyLiterals(x *stmt.Statement, names NameSet) string {
	return literalRe.ReplaceAllStringFunc(x.Arg, func(lit string) string {
		q := lit[:1]
		name := lit[1 : len(lit)-1]
		if qn, ok := names[name]; ok {
			return q + qn + q
		}
		return lit
	})
}

// QualifyTypedef gives an unprefixed type reference in n (n itself, its
// type, or union members) the prefix under which module reaches the
// module defining the typedef. Only top-level typedefs are considered:
// nested ones cannot be referenced with a prefix.
func QualifyTypedef(n *stmt.Statement, module *stmt.ModuleInfo, rep *diag.Report) {
	for _, t := range typeStatements(n) {
		td := t.Target
		if td == nil || td.Keyword != "typedef" || strings.IndexByte(t.Arg, ':') >= 0 {
			continue
		}
		if p := td.Parent; p == nil || (p.Keyword != "module" && p.Keyword != "submodule") {
			continue
		}
		prefix, ok := module.PrefixFor(owner(td))
		if !ok {
			rep.Unresolved(t, t.Arg)
			continue
		}
		t.Arg = prefix + ":" + t.Arg
	}
}

// owner returns the name of the module defining the top-level statement
// td.
func owner(td *stmt.Statement) string {
	if td.Module != nil {
		return td.Module.Name
	}
	m := td.Parent
	if bt := m.SearchOne("belongs-to"); m.Keyword == "submodule" && bt != nil {
		return bt.Arg
	}
	return m.Arg
}

// RetypeStateRefs rewrites type arguments in root's subtree. An argument
// is looked up in renames as written first; failing that its local name
// is, and the prefix is kept.
func RetypeStateRefs(root *stmt.Statement, renames map[string]string) {
	if len(renames) == 0 {
		return
	}
	root.Walk(func(x *stmt.Statement) bool {
		if x.Keyword != "type" {
			return true
		}
		to, ok := renames[x.Arg]
		if !ok {
			p, local := splitName(x.Arg)
			if to, ok = renames[local]; !ok {
				return true
			}
			if p != "" {
				to = p + ":" + to
			}
		}
		if debug.Refs() {
			debug.Logf("retype %s: %s -> %s\n", x.Path(), x.Arg, to)
		}
		x.Arg = to
		return true
	})
}

// typeStatements returns the type statements of n: n itself if it is a
// type, otherwise its type child, followed by union members.
func typeStatements(n *stmt.Statement) []*stmt.Statement {
	t := n
	if n.Keyword != "type" {
		t = n.SearchOne("type")
	}
	if t == nil {
		return nil
	}
	res := []*stmt.Statement{t}
	for i := 0; i < len(res); i++ {
		if res[i].Arg == "union" {
			res = append(res, res[i].Search("type")...)
		}
	}
	return res
}
