// Package annotate fills in the annotations of a statement tree read from
// an interchange document that carries none: module info, config marks
// and resolved definition targets.
package annotate

import (
	"strings"

	"github.com/signadot/yangstyle/diag"
	"github.com/signadot/yangstyle/refs"
	"github.com/signadot/yangstyle/stmt"
)

// Info computes the module info of a module or submodule statement.
func Info(module *stmt.Statement) *stmt.ModuleInfo {
	info := &stmt.ModuleInfo{Name: module.Arg, Imports: map[string]string{}}
	p := module.SearchOne("prefix")
	if bt := module.SearchOne("belongs-to"); bt != nil {
		p = bt.SearchOne("prefix")
		info.Name = bt.Arg
	}
	if p != nil {
		info.Prefix = p.Arg
	}
	for _, imp := range module.Search("import") {
		if ip := imp.SearchOne("prefix"); ip != nil {
			info.Imports[ip.Arg] = imp.Arg
		}
	}
	return info
}

// Module annotates module in place. Names that cannot be resolved are
// reported. reg may be nil, in which case only local names resolve.
func Module(module *stmt.Statement, reg *Registry, rep *diag.Report) {
	info := Info(module)
	for _, inc := range module.Search("include") {
		inc.Target = reg.Lookup(inc.Arg)
	}
	module.Walk(func(s *stmt.Statement) bool {
		s.Module = info
		if c := s.ExplicitConfig(); c != stmt.ConfigUnset {
			s.Config = c
		}
		var kw string
		switch s.Keyword {
		case "uses":
			kw = "grouping"
		case "type":
			if refs.IsBuiltinType(s.Arg) {
				return true
			}
			kw = "typedef"
		case "base":
			kw = "identity"
		case "if-feature":
			if strings.ContainsAny(s.Arg, " ()") {
				return true
			}
			kw = "feature"
		default:
			return true
		}
		if s.Target = Resolve(s, kw, s.Arg, reg); s.Target == nil {
			rep.Unresolved(s, s.Arg)
		}
		return true
	})
}

// Resolve finds the definition with keyword kw named name as seen from
// s. A name with a foreign prefix is looked up at the top of the imported
// module in reg; other names are looked up lexically, then in included
// submodules.
func Resolve(s *stmt.Statement, kw, name string, reg *Registry) *stmt.Statement {
	m := s.ModuleStatement()
	info := s.Module
	if info == nil && m != nil {
		info = Info(m)
	}
	if i := strings.IndexByte(name, ':'); i >= 0 {
		p := name[:i]
		name = name[i+1:]
		if info != nil && p != info.Prefix {
			modName, ok := info.ModuleFor(p)
			if !ok {
				return nil
			}
			return top(reg.Lookup(modName), kw, name, reg)
		}
		return top(m, kw, name, reg)
	}
	if d := Lexical(s, kw, name); d != nil {
		return d
	}
	return top(m, kw, name, reg)
}

// Lexical looks for a definition named name among the children of s and
// of each of its ancestors.
func Lexical(s *stmt.Statement, kw, name string) *stmt.Statement {
	for x := s.Parent; x != nil; x = x.Parent {
		if d := x.SearchArg(kw, name); d != nil {
			return d
		}
	}
	return nil
}

func top(m *stmt.Statement, kw, name string, reg *Registry) *stmt.Statement {
	if m == nil {
		return nil
	}
	if d := m.SearchArg(kw, name); d != nil {
		return d
	}
	for _, inc := range m.Search("include") {
		sub := inc.Target
		if sub == nil {
			sub = reg.Lookup(inc.Arg)
		}
		if sub == nil {
			continue
		}
		if d := sub.SearchArg(kw, name); d != nil {
			return d
		}
	}
	return nil
}
