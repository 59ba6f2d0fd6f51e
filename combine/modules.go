package combine

import (
	"github.com/signadot/yangstyle/diag"
	"github.com/signadot/yangstyle/grammar"
	"github.com/signadot/yangstyle/refs"
	"github.com/signadot/yangstyle/stmt"
)

// Modules combines a config module and the state module split from it
// into a new module. The top-level data nodes and augments of stateMod
// are grafted into a copy of cfgMod, references through the state
// module's prefix or qualified with cfgMod's prefix are brought back to
// cfgMod's form, and the result is converted. Neither input is modified.
func Modules(cfgMod, stateMod *stmt.Statement, table *grammar.Table, opts Options, rep *diag.Report) (*stmt.Statement, error) {
	res := stmt.Copy(cfgMod, stmt.CopyAnnotations)
	cfgPrefix := ownPrefix(res)
	if cfgPrefix == "" {
		return nil, stmt.Structuralf(cfgMod, "missing prefix")
	}
	statePrefix := ownPrefix(stateMod)
	if statePrefix == "" {
		return nil, stmt.Structuralf(stateMod, "missing prefix")
	}
	names := refs.ModuleNames(res, cfgPrefix, "feature", "identity", "typedef")
	for _, s := range table.Sorted(stateMod) {
		if !stmt.IsDataDef(s.Keyword) && s.Keyword != "augment" {
			continue
		}
		cp := stmt.Copy(s, stmt.CopyAnnotations)
		refs.RenamePrefix(cp, statePrefix, cfgPrefix)
		refs.Unqualify(cp, names)
		if err := table.AddCanonical(res, cp); err != nil {
			return nil, err
		}
	}
	if err := Convert(res, table, opts, rep); err != nil {
		return nil, err
	}
	return res, nil
}
