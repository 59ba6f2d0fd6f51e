package stmt

// ModuleInfo describes the module a statement was defined in.
type ModuleInfo struct {
	Name   string
	Prefix string
	// Imports maps an import prefix to the imported module name.
	Imports map[string]string
}

// PrefixFor returns the prefix under which module is reachable from m.
func (m *ModuleInfo) PrefixFor(module string) (string, bool) {
	if m == nil {
		return "", false
	}
	if module == m.Name {
		return m.Prefix, true
	}
	for p, name := range m.Imports {
		if name == module {
			return p, true
		}
	}
	return "", false
}

// ModuleFor returns the module imported under prefix p, or m's own name for
// its own prefix.
func (m *ModuleInfo) ModuleFor(p string) (string, bool) {
	if m == nil {
		return "", false
	}
	if p == m.Prefix {
		return m.Name, true
	}
	name, ok := m.Imports[p]
	return name, ok
}
