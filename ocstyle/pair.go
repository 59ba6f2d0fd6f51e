package ocstyle

import "github.com/signadot/yangstyle/stmt"

// pair is the config and state container pair of one parent. It is
// created the first time a child needs it.
type pair struct {
	parent        *stmt.Statement
	config, state *stmt.Statement
	// presence text of the parent, for its enabled leaf
	enabled string
}

// ensure creates the pair if needed and appends it to kids.
func (p *pair) ensure(kids []*stmt.Statement) []*stmt.Statement {
	if p.config != nil {
		return kids
	}
	at := p.parent
	var en, st *stmt.Statement
	if p.enabled != "" {
		en = enabledLeaf(at, p.enabled)
		st = stmt.Copy(en, stmt.RecomputeConfig)
		st.Config = stmt.ConfigFalse
	}
	p.config = stmt.NewAt(at, "container", "config",
		stmt.NewAt(at, "description", ConfigDescription),
		en)
	p.state = stmt.NewAt(at, "container", "state",
		stmt.NewAt(at, "config", "false"),
		stmt.NewAt(at, "description", StateDescription),
		st)
	p.state.Config = stmt.ConfigFalse
	return append(kids, p.config, p.state)
}

func enabledLeaf(at *stmt.Statement, desc string) *stmt.Statement {
	return stmt.NewAt(at, "leaf", "enabled",
		stmt.NewAt(at, "type", "boolean"),
		stmt.NewAt(at, "description", desc))
}
