package annotate

import (
	"fmt"
	"sync"

	"github.com/signadot/yangstyle/stmt"
)

// Registry holds the loaded modules and submodules that prefixed
// references and includes resolve against.
type Registry struct {
	mu      sync.RWMutex
	modules map[string]*stmt.Statement
}

func NewRegistry() *Registry {
	return &Registry{modules: make(map[string]*stmt.Statement)}
}

// Add registers module under its name.
func (r *Registry) Add(module *stmt.Statement) error {
	if module.Keyword != "module" && module.Keyword != "submodule" {
		return fmt.Errorf("cannot register %s %q: not a module", module.Keyword, module.Arg)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.modules[module.Arg]; exists {
		return fmt.Errorf("module %q already registered", module.Arg)
	}
	r.modules[module.Arg] = module
	return nil
}

func (r *Registry) Lookup(name string) *stmt.Statement {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.modules[name]
}
