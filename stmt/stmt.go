package stmt

import (
	"fmt"
	"strings"
)

// Pos is an opaque source position carried through copies.
type Pos struct {
	File string
	Line int
	Col  int
}

func (p Pos) String() string {
	if p.File == "" && p.Line == 0 {
		return "-"
	}
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Col)
}

type Statement struct {
	Keyword  string
	Arg      string
	Pos      Pos
	Parent   *Statement
	Children []*Statement

	Config Config
	Module *ModuleInfo
	Target *Statement
}

// New creates a statement with the given children attached. Children that
// already have a parent are moved.
func New(keyword, arg string, children ...*Statement) *Statement {
	s := &Statement{Keyword: keyword, Arg: arg}
	for _, c := range children {
		if c == nil {
			continue
		}
		c.detach()
		c.Parent = s
		s.Children = append(s.Children, c)
	}
	return s
}

// NewAt is New with the position and module annotation of at.
func NewAt(at *Statement, keyword, arg string, children ...*Statement) *Statement {
	s := New(keyword, arg, children...)
	if at != nil {
		s.Pos = at.Pos
		s.Module = at.Module
	}
	return s
}

func (s *Statement) String() string {
	if s.Arg == "" {
		return s.Keyword
	}
	return s.Keyword + " " + s.Arg
}

// Prefix returns the prefix part of a prefixed (extension) keyword.
func (s *Statement) Prefix() string {
	if i := strings.IndexByte(s.Keyword, ':'); i >= 0 {
		return s.Keyword[:i]
	}
	return ""
}

func (s *Statement) SearchOne(keyword string) *Statement {
	for _, c := range s.Children {
		if c.Keyword == keyword {
			return c
		}
	}
	return nil
}

func (s *Statement) Search(keyword string) []*Statement {
	var res []*Statement
	for _, c := range s.Children {
		if c.Keyword == keyword {
			res = append(res, c)
		}
	}
	return res
}

func (s *Statement) SearchArg(keyword, arg string) *Statement {
	for _, c := range s.Children {
		if c.Keyword == keyword && c.Arg == arg {
			return c
		}
	}
	return nil
}

// IndexOf returns the position of c in s.Children or -1.
func (s *Statement) IndexOf(c *Statement) int {
	for i, x := range s.Children {
		if x == c {
			return i
		}
	}
	return -1
}

// IsAncestorOf reports whether s is o or one of o's ancestors.
func (s *Statement) IsAncestorOf(o *Statement) bool {
	for x := o; x != nil; x = x.Parent {
		if x == s {
			return true
		}
	}
	return false
}

func (s *Statement) Root() *Statement {
	x := s
	for x.Parent != nil {
		x = x.Parent
	}
	return x
}

// Walk calls f on s and its descendants in pre-order. If f returns false the
// children of that statement are skipped. Children are snapshotted before
// they are visited, so f may edit the tree below the statement it is given.
func (s *Statement) Walk(f func(*Statement) bool) {
	if !f(s) {
		return
	}
	kids := make([]*Statement, len(s.Children))
	copy(kids, s.Children)
	for _, c := range kids {
		c.Walk(f)
	}
}

// ModuleStatement returns the enclosing module or submodule statement.
func (s *Statement) ModuleStatement() *Statement {
	for x := s; x != nil; x = x.Parent {
		if x.Keyword == "module" || x.Keyword == "submodule" {
			return x
		}
	}
	return nil
}
