package stmt

import "strings"

// Path returns a diagnostic path such as
// "module=ex/container=interfaces/list=interface".
func (s *Statement) Path() string {
	var parts []string
	for x := s; x != nil; x = x.Parent {
		part := x.Keyword
		if x.Arg != "" {
			arg := x.Arg
			if strings.ContainsAny(arg, "/\n") || len(arg) > 32 {
				arg = "…"
			}
			part += "=" + arg
		}
		parts = append(parts, part)
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, "/")
}

// DataDepth counts the data-tree levels between s and its ancestor anc:
// container, list, leaf, leaf-list, anydata and anyxml statements strictly
// below anc up to and including s. choice and case are schema-only and do
// not count. It returns -1 if anc is not an ancestor of s.
func (s *Statement) DataDepth(anc *Statement) int {
	n := 0
	for x := s; x != anc; x = x.Parent {
		if x == nil {
			return -1
		}
		if IsDataNode(x.Keyword) {
			n++
		}
	}
	return n
}
