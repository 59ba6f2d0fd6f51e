package split

import (
	"github.com/signadot/yangstyle/diag"
	"github.com/signadot/yangstyle/grammar"
	"github.com/signadot/yangstyle/stmt"
)

// Pair is a split module pair.
type Pair struct {
	Config *stmt.Statement
	State  *stmt.Statement
}

// Split returns the config and state modules of module, which is left
// untouched. The config module is a copy of module without its
// non-configurable data nodes.
func Split(module *stmt.Statement, table *grammar.Table, opts Options, rep *diag.Report) (*Pair, error) {
	state := stmt.Copy(module, stmt.CopyAnnotations)
	if err := Convert(state, table, opts, rep); err != nil {
		return nil, err
	}
	cfg := stmt.Copy(module, stmt.CopyAnnotations)
	stmt.PruneState(cfg)
	return &Pair{Config: cfg, State: state}, nil
}
