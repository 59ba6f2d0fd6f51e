// Package query selects statements with expr-lang predicates.
//
// A predicate sees the fields of Env under their lower-case names, for
// example
//
//	keyword == "leaf" && !config && depth > 2
//	keyword == "container" && "presence" in children
package query

import (
	"errors"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/signadot/yangstyle/stmt"
)

var ErrQuery = errors.New("query error")

// Env is the environment a predicate is evaluated in.
type Env struct {
	Keyword string `expr:"keyword"`
	Arg     string `expr:"arg"`
	Path    string `expr:"path"`
	Config  bool   `expr:"config"`
	// Depth is the number of statements between the statement and the
	// root Find was called with.
	Depth int `expr:"depth"`
	// Parent is the keyword of the parent, "" at the root.
	Parent   string   `expr:"parent"`
	Children []string `expr:"children"`
}

type Query struct {
	src string
	prg *vm.Program
}

func Compile(src string) (*Query, error) {
	prg, err := expr.Compile(src, expr.Env(Env{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQuery, err)
	}
	return &Query{src: src, prg: prg}, nil
}

func (q *Query) String() string { return q.src }

func EnvOf(s *stmt.Statement, depth int) *Env {
	env := &Env{
		Keyword: s.Keyword,
		Arg:     s.Arg,
		Path:    s.Path(),
		Config:  s.EffectiveConfig(),
		Depth:   depth,
	}
	if s.Parent != nil {
		env.Parent = s.Parent.Keyword
	}
	for _, c := range s.Children {
		env.Children = append(env.Children, c.Keyword)
	}
	return env
}

func (q *Query) Match(s *stmt.Statement, depth int) (bool, error) {
	res, err := expr.Run(q.prg, EnvOf(s, depth))
	if err != nil {
		return false, fmt.Errorf("%w: %s: %w", ErrQuery, s.Path(), err)
	}
	b, _ := res.(bool)
	return b, nil
}

// Find returns the statements under root, root included, matched by q in
// pre-order.
func Find(root *stmt.Statement, q *Query) ([]*stmt.Statement, error) {
	var res []*stmt.Statement
	var find func(s *stmt.Statement, depth int) error
	find = func(s *stmt.Statement, depth int) error {
		ok, err := q.Match(s, depth)
		if err != nil {
			return err
		}
		if ok {
			res = append(res, s)
		}
		for _, c := range s.Children {
			if err := find(c, depth+1); err != nil {
				return err
			}
		}
		return nil
	}
	if err := find(root, 0); err != nil {
		return nil, err
	}
	return res, nil
}
