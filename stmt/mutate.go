package stmt

// Move detaches node from its current parent and inserts it in newParent's
// children at index. A negative index, or one past the end, appends.
func Move(node, newParent *Statement, index int) error {
	if node == nil || newParent == nil {
		return structErr(newParent, "move of nil statement")
	}
	if node.IsAncestorOf(newParent) {
		return structErr(newParent, "cannot move %q under itself", node.String())
	}
	if node.Parent == newParent {
		if i := newParent.IndexOf(node); i >= 0 && i < index {
			index--
		}
	}
	node.detach()
	node.Parent = newParent
	kids := newParent.Children
	if index < 0 || index >= len(kids) {
		newParent.Children = append(kids, node)
		return nil
	}
	kids = append(kids, nil)
	copy(kids[index+1:], kids[index:])
	kids[index] = node
	newParent.Children = kids
	return nil
}

func (s *Statement) Append(children ...*Statement) error {
	for _, c := range children {
		if err := Move(c, s, -1); err != nil {
			return err
		}
	}
	return nil
}

func (s *Statement) InsertAt(index int, c *Statement) error {
	return Move(c, s, index)
}

// Remove detaches s from its parent and returns the index it occupied, or
// -1 if it had no parent. Descendants are left intact.
func (s *Statement) Remove() int {
	return s.detach()
}

func (s *Statement) detach() int {
	p := s.Parent
	if p == nil {
		return -1
	}
	i := p.IndexOf(s)
	if i >= 0 {
		p.Children = append(p.Children[:i:i], p.Children[i+1:]...)
	}
	s.Parent = nil
	return i
}

// SetChildren replaces the children of s with kids, in order. Current
// children not in kids are detached; kids are moved from wherever they are.
func (s *Statement) SetChildren(kids []*Statement) error {
	for _, k := range kids {
		if k.IsAncestorOf(s) {
			return structErr(s, "cannot move %q under itself", k.String())
		}
	}
	seen := make(map[*Statement]bool, len(kids))
	for _, k := range kids {
		if seen[k] {
			return structErr(s, "statement %q listed twice", k.String())
		}
		seen[k] = true
	}
	for _, c := range s.Children {
		c.Parent = nil
	}
	s.Children = nil
	for _, k := range kids {
		k.detach()
		k.Parent = s
	}
	s.Children = append(make([]*Statement, 0, len(kids)), kids...)
	return nil
}

// Replace puts repl where old is in its parent.
func Replace(old, repl *Statement) error {
	p := old.Parent
	if p == nil {
		return structErr(old, "cannot replace a root statement")
	}
	if old == repl {
		return nil
	}
	i := old.detach()
	return Move(repl, p, i)
}
