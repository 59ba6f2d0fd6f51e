package annotate

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/yangstyle/diag"
	"github.com/signadot/yangstyle/stmt"
)

func types() *stmt.Statement {
	return stmt.New("module", "ex-types",
		stmt.New("prefix", "et"),
		stmt.New("typedef", "speed", stmt.New("type", "uint32")),
		stmt.New("identity", "base-kind"))
}

func TestModule(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Add(types()); err != nil {
		t.Fatal(err)
	}
	if err := reg.Add(types()); err == nil {
		t.Errorf("expected duplicate registration error")
	}
	m := stmt.New("module", "ex",
		stmt.New("prefix", "ex"),
		stmt.New("import", "ex-types", stmt.New("prefix", "t")),
		stmt.New("feature", "f"),
		stmt.New("grouping", "g", stmt.New("leaf", "a", stmt.New("type", "string"))),
		stmt.New("container", "c",
			stmt.New("if-feature", "f"),
			stmt.New("typedef", "local", stmt.New("type", "string")),
			stmt.New("uses", "g"),
			stmt.New("leaf", "s", stmt.New("type", "t:speed")),
			stmt.New("leaf", "l", stmt.New("type", "local")),
			stmt.New("leaf", "k",
				stmt.New("type", "identityref", stmt.New("base", "t:base-kind"))),
			stmt.New("container", "st",
				stmt.New("config", "false"),
				stmt.New("leaf", "x", stmt.New("type", "missing")))))
	rep := diag.NewReport(nil)
	Module(m, reg, rep)

	c := m.SearchOne("container")
	if c.Module == nil || c.Module.Prefix != "ex" || c.Module.Imports["t"] != "ex-types" {
		t.Fatalf("bad module info %+v", c.Module)
	}
	if got := c.SearchOne("uses").Target; got != m.SearchOne("grouping") {
		t.Errorf("uses target %v", got)
	}
	if got := c.SearchOne("if-feature").Target; got != m.SearchOne("feature") {
		t.Errorf("if-feature target %v", got)
	}
	s := c.SearchArg("leaf", "s").SearchOne("type").Target
	if s == nil || s.Arg != "speed" || s.Parent.Arg != "ex-types" {
		t.Errorf("imported typedef target %v", s)
	}
	if got := c.SearchArg("leaf", "l").SearchOne("type").Target; got != c.SearchOne("typedef") {
		t.Errorf("local typedef target %v", got)
	}
	base := c.SearchArg("leaf", "k").SearchOne("type").SearchOne("base")
	if base.Target == nil || base.Target.Arg != "base-kind" {
		t.Errorf("identity target %v", base.Target)
	}
	st := c.SearchArg("container", "st")
	if st.Config != stmt.ConfigFalse {
		t.Errorf("config annotation not set")
	}
	var names []string
	for _, w := range rep.Of(diag.UnresolvedReference) {
		names = append(names, w.Name)
	}
	if diff := cmp.Diff([]string{"missing"}, names); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestResolveInclude(t *testing.T) {
	reg := NewRegistry()
	sub := stmt.New("submodule", "ex-sub",
		stmt.New("belongs-to", "ex", stmt.New("prefix", "ex")),
		stmt.New("grouping", "from-sub"))
	if err := reg.Add(sub); err != nil {
		t.Fatal(err)
	}
	u := stmt.New("uses", "from-sub")
	m := stmt.New("module", "ex",
		stmt.New("prefix", "ex"),
		stmt.New("include", "ex-sub"),
		stmt.New("container", "c", u))
	Module(m, reg, nil)
	if u.Target != sub.SearchOne("grouping") {
		t.Errorf("grouping from submodule not resolved")
	}
	if m.SearchOne("include").Target != sub {
		t.Errorf("include target not set")
	}
	if info := Info(sub); info.Name != "ex" || info.Prefix != "ex" {
		t.Errorf("submodule info %+v", info)
	}
}
