package stmt

// CopyPolicy decides how Copy treats the Config annotation.
type CopyPolicy int

const (
	// CopyAnnotations carries every annotation verbatim.
	CopyAnnotations CopyPolicy = iota
	// RecomputeConfig clears Config in the copy so it is derived from the
	// ancestry the copy is attached to.
	RecomputeConfig
)

// Copy returns a detached deep copy of s.
func Copy(s *Statement, policy CopyPolicy) *Statement {
	return copyTo(s, &Statement{}, policy)
}

func copyTo(s, dst *Statement, policy CopyPolicy) *Statement {
	dst.Keyword = s.Keyword
	dst.Arg = s.Arg
	dst.Pos = s.Pos
	dst.Module = s.Module
	dst.Target = s.Target
	if policy == CopyAnnotations {
		dst.Config = s.Config
	}
	if len(s.Children) != 0 {
		dst.Children = make([]*Statement, len(s.Children))
	}
	for i, c := range s.Children {
		dc := copyTo(c, &Statement{}, policy)
		dc.Parent = dst
		dst.Children[i] = dc
	}
	return dst
}

// Clone is Copy with CopyAnnotations.
func (s *Statement) Clone() *Statement {
	return Copy(s, CopyAnnotations)
}
