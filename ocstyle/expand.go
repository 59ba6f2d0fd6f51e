package ocstyle

import (
	"slices"
	"strings"

	"github.com/signadot/yangstyle/annotate"
	"github.com/signadot/yangstyle/stmt"
)

// grouping metadata not carried into the expansion
var groupingOnly = map[string]bool{
	"description": true,
	"reference":   true,
	"status":      true,
}

func grouping(u *stmt.Statement) *stmt.Statement {
	if u.Target != nil && u.Target.Keyword == "grouping" {
		return u.Target
	}
	return annotate.Resolve(u, "grouping", u.Arg, nil)
}

// expand returns detached copies of the children of the grouping used by
// u, nested top-level uses expanded and u's refine, augment, if-feature
// and when substatements applied. It returns nil if the grouping cannot
// be resolved, after reporting it.
func (c *converter) expand(u *stmt.Statement, stack []*stmt.Statement) ([]*stmt.Statement, error) {
	g := grouping(u)
	if g == nil {
		c.rep.Unresolved(u, u.Arg)
		return nil, nil
	}
	if slices.Contains(stack, g) {
		return nil, stmt.Structuralf(u, "grouping %q uses itself", g.Arg)
	}
	stack = append(stack, g)
	holder := stmt.NewAt(u, "uses", u.Arg)
	for _, ch := range g.Children {
		switch {
		case groupingOnly[ch.Keyword]:
		case ch.Keyword == "uses":
			exp, err := c.expand(ch, stack)
			if err != nil {
				return nil, err
			}
			if exp == nil {
				exp = []*stmt.Statement{copyResolved(ch)}
			}
			if err := holder.Append(exp...); err != nil {
				return nil, err
			}
		default:
			if err := holder.Append(copyResolved(ch)); err != nil {
				return nil, err
			}
		}
	}
	for _, r := range u.Search("refine") {
		t := descend(holder, r.Arg)
		if t == nil {
			c.rep.Unresolved(r, r.Arg)
			continue
		}
		if err := c.refine(t, r); err != nil {
			return nil, err
		}
	}
	for _, a := range u.Search("augment") {
		t := descend(holder, a.Arg)
		if t == nil {
			c.rep.Unresolved(a, a.Arg)
			continue
		}
		for _, ac := range a.Children {
			if groupingOnly[ac.Keyword] || ac.Keyword == "when" || ac.Keyword == "if-feature" {
				continue
			}
			cp := copyResolved(ac)
			if err := c.conditions(cp, a); err != nil {
				return nil, err
			}
			if err := c.table.AddCanonical(t, cp); err != nil {
				return nil, err
			}
		}
	}
	res := slices.Clone(holder.Children)
	for _, x := range res {
		if stmt.IsDataDef(x.Keyword) {
			if err := c.conditions(x, u); err != nil {
				return nil, err
			}
		}
	}
	return res, nil
}

// conditions copies the if-feature and when statements of from onto x.
func (c *converter) conditions(x, from *stmt.Statement) error {
	for _, fc := range from.Children {
		if fc.Keyword != "if-feature" && fc.Keyword != "when" {
			continue
		}
		if err := c.table.AddCanonical(x, stmt.Copy(fc, stmt.CopyAnnotations)); err != nil {
			return err
		}
	}
	return nil
}

func (c *converter) refine(t, r *stmt.Statement) error {
	for _, rc := range r.Children {
		cp := stmt.Copy(rc, stmt.CopyAnnotations)
		ex := t.SearchOne(rc.Keyword)
		if ex == nil || rc.Keyword == "must" || rc.Keyword == "if-feature" {
			if err := c.table.AddCanonical(t, cp); err != nil {
				return err
			}
		} else if err := stmt.Replace(ex, cp); err != nil {
			return err
		}
		if rc.Keyword == "config" {
			t.Config = stmt.ConfigUnset
			t.Config = t.ExplicitConfig()
		}
	}
	return nil
}

// descend follows a descendant schema node id such as "a/p:b" from s.
func descend(s *stmt.Statement, path string) *stmt.Statement {
	cur := s
	for _, seg := range strings.Split(strings.Trim(path, "/ "), "/") {
		if i := strings.IndexByte(seg, ':'); i >= 0 {
			seg = seg[i+1:]
		}
		var next *stmt.Statement
		for _, ch := range cur.Children {
			if ch.Arg == seg && (stmt.IsNodeBearing(ch.Keyword) || ch.Keyword == "case" ||
				ch.Keyword == "action" || ch.Keyword == "notification") {
				next = ch
				break
			}
			if ch.Arg == "" && ch.Keyword == seg && (seg == "input" || seg == "output") {
				next = ch
				break
			}
		}
		if next == nil {
			return nil
		}
		cur = next
	}
	return cur
}

// copyResolved copies s, setting the target of uses statements in the copy
// from their originals, which can still be resolved in place.
func copyResolved(s *stmt.Statement) *stmt.Statement {
	cp := stmt.Copy(s, stmt.CopyAnnotations)
	var visit func(o, c *stmt.Statement)
	visit = func(o, c *stmt.Statement) {
		if o.Keyword == "uses" && c.Target == nil {
			c.Target = grouping(o)
		}
		for i := range o.Children {
			visit(o.Children[i], c.Children[i])
		}
	}
	visit(s, cp)
	return cp
}

// flatten expands every uses statement below root and drops groupings.
func (c *converter) flatten(root *stmt.Statement) error {
	var err error
	root.Walk(func(x *stmt.Statement) bool {
		if err != nil {
			return false
		}
		for _, ch := range slices.Clone(x.Children) {
			switch ch.Keyword {
			case "grouping":
				ch.Remove()
			case "uses":
				var exp []*stmt.Statement
				exp, err = c.expand(ch, nil)
				if err != nil {
					return false
				}
				if exp == nil {
					continue
				}
				i := ch.Remove()
				for j, e := range exp {
					if err = stmt.Move(e, x, i+j); err != nil {
						return false
					}
				}
			}
		}
		return true
	})
	return err
}
