package ocstyle

import (
	"maps"

	"github.com/signadot/yangstyle/refs"
	"github.com/signadot/yangstyle/stmt"
)

// hoistIncludeImports adds to module the imports of its included
// submodules that it lacks.
func (c *converter) hoistIncludeImports(module *stmt.Statement) error {
	for _, inc := range module.Search("include") {
		sub := inc.Target
		if sub == nil {
			continue
		}
		for _, imp := range sub.Search("import") {
			if module.SearchArg("import", imp.Arg) != nil {
				continue
			}
			if err := c.table.AddCanonical(module, stmt.Copy(imp, stmt.CopyAnnotations)); err != nil {
				return err
			}
		}
	}
	return nil
}

// retargetBaseImport replaces the import of the base module by one of its
// OpenConfig style counterpart when module augments anything. References
// through the old prefix are rewritten to the new one.
func (c *converter) retargetBaseImport(module *stmt.Statement) {
	o := c.opts
	if o.BaseImport == "" || module.SearchOne("augment") == nil {
		return
	}
	imp := module.SearchArg("import", o.BaseImport)
	if imp == nil {
		return
	}
	imp.Arg = o.OCImport
	if imp.Arg == "" {
		imp.Arg = o.BaseImport + o.suffix()
	}
	p := imp.SearchOne("prefix")
	if p == nil || o.OCPrefix == "" || p.Arg == o.OCPrefix {
		return
	}
	old := p.Arg
	p.Arg = o.OCPrefix
	refs.RenamePrefix(module, old, o.OCPrefix)

	// typedefs of the base module are reached through the new prefix
	info := &stmt.ModuleInfo{Imports: map[string]string{}}
	if c.module != nil {
		*info = *c.module
		info.Imports = maps.Clone(c.module.Imports)
	}
	delete(info.Imports, old)
	info.Imports[o.OCPrefix] = o.BaseImport
	c.module = info
}
