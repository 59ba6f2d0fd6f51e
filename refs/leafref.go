package refs

import (
	"strings"

	"github.com/signadot/yangstyle/debug"
	"github.com/signadot/yangstyle/stmt"
)

// FixLeafrefPath adds levels "../" steps to the relative leafref path of
// n. n is a type statement or a statement carrying one; union members are
// included. Absolute paths are left alone. It returns the number of paths
// changed.
func FixLeafrefPath(n *stmt.Statement, levels int) int {
	if levels <= 0 {
		return 0
	}
	fixed := 0
	for _, t := range typeStatements(n) {
		if t.Arg != "leafref" {
			continue
		}
		if p := t.SearchOne("path"); p != nil && upSteps(p.Arg) > 0 {
			up(p, levels)
			fixed++
		}
	}
	return fixed
}

// FixSubtreeLeafrefs adjusts every relative leafref path under root whose
// target lies outside root, for root being moved levels data levels
// deeper. Paths staying inside root are unchanged. Typedefs are skipped:
// their paths are relative to each use. A choice or case root is not a
// data node, so the first step out of its nearest data ancestor already
// leaves it.
func FixSubtreeLeafrefs(root *stmt.Statement, levels int) int {
	if levels <= 0 {
		return 0
	}
	fixed := 0
	inside := 0
	if !stmt.IsDataNode(root.Keyword) {
		inside = 1
	}
	root.Walk(func(x *stmt.Statement) bool {
		if x.Keyword == "typedef" || x.Keyword == "grouping" {
			return false
		}
		if x.Keyword != "leaf" && x.Keyword != "leaf-list" {
			return true
		}
		d := x.DataDepth(root)
		for _, t := range typeStatements(x) {
			if t.Arg != "leafref" {
				continue
			}
			p := t.SearchOne("path")
			if p == nil {
				continue
			}
			if upSteps(p.Arg) > d-inside {
				up(p, levels)
				fixed++
			}
		}
		return false
	})
	return fixed
}

// RenamePathSegments renames steps of the leafref paths under root. A
// step matches on its local name; a prefix is kept.
func RenamePathSegments(root *stmt.Statement, renames map[string]string) {
	if len(renames) == 0 {
		return
	}
	root.Walk(func(x *stmt.Statement) bool {
		if x.Keyword != "path" || x.Parent == nil || x.Parent.Keyword != "type" {
			return true
		}
		arg := identRe.ReplaceAllStringFunc(x.Arg, func(tok string) string {
			p, local := splitName(tok)
			to, ok := renames[local]
			if !ok {
				return tok
			}
			if p != "" {
				return p + ":" + to
			}
			return to
		})
		if arg != x.Arg && debug.Refs() {
			debug.Logf("rename path %s: %s -> %s\n", x.Path(), x.Arg, arg)
		}
		x.Arg = arg
		return true
	})
}

func upSteps(path string) int {
	path = strings.TrimSpace(path)
	n := 0
	for strings.HasPrefix(path, "../") {
		n++
		path = strings.TrimLeft(path[3:], " ")
	}
	return n
}

func up(p *stmt.Statement, levels int) {
	arg := strings.Repeat("../", levels) + strings.TrimLeft(p.Arg, " ")
	if debug.Refs() {
		debug.Logf("leafref %s: %s -> %s\n", p.Path(), p.Arg, arg)
	}
	p.Arg = arg
}
