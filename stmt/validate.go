package stmt

// Validate checks the parent links of the tree rooted at root: every child
// points back at the statement that lists it, no statement is listed twice,
// and the root has no parent.
func Validate(root *Statement) error {
	if root.Parent != nil {
		return structErr(root, "root has a parent")
	}
	seen := map[*Statement]bool{}
	var check func(*Statement) error
	check = func(s *Statement) error {
		if seen[s] {
			return structErr(s, "statement reachable twice")
		}
		seen[s] = true
		for _, c := range s.Children {
			if c == nil {
				return structErr(s, "nil child")
			}
			if c.Parent != s {
				return structErr(c, "parent link does not point at %q", s.String())
			}
			if err := check(c); err != nil {
				return err
			}
		}
		return nil
	}
	return check(root)
}
