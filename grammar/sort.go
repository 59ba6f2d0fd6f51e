package grammar

import (
	"slices"

	"github.com/signadot/yangstyle/debug"
	"github.com/signadot/yangstyle/stmt"
)

// Sorted returns a snapshot of s.Children in canonical order. s is not
// modified. Passes iterate over the snapshot and edit the live tree.
func (t *Table) Sorted(s *stmt.Statement) []*stmt.Statement {
	res := make([]*stmt.Statement, len(s.Children))
	copy(res, s.Children)
	if t == nil || !t.Has(s.Keyword) {
		return res
	}
	const unknown = 1 << 30
	rank := func(c *stmt.Statement) int {
		if r, ok := t.Rank(s.Keyword, c.Keyword); ok {
			return r
		}
		return unknown
	}
	slices.SortStableFunc(res, func(a, b *stmt.Statement) int {
		return rank(a) - rank(b)
	})
	return res
}

// Sort reorders the children of s in place.
func (t *Table) Sort(s *stmt.Statement) {
	sorted := t.Sorted(s)
	if debug.Order() && !slices.Equal(sorted, s.Children) {
		debug.Logf("reordered children of %s\n", s.Path())
	}
	// same members, so only the order changes
	s.Children = sorted
}

// SortTree sorts every statement under root, root included.
func (t *Table) SortTree(root *stmt.Statement) {
	root.Walk(func(s *stmt.Statement) bool {
		t.Sort(s)
		return true
	})
}

// AddCanonical appends child to parent and restores canonical order.
func (t *Table) AddCanonical(parent, child *stmt.Statement) error {
	if err := parent.Append(child); err != nil {
		return err
	}
	t.Sort(parent)
	return nil
}

// IsCanonical reports whether the children of s are in canonical order.
func (t *Table) IsCanonical(s *stmt.Statement) bool {
	return slices.Equal(t.Sorted(s), s.Children)
}
