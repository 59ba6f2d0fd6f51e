package ocstyle

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/yangstyle/diag"
	"github.com/signadot/yangstyle/encode"
	"github.com/signadot/yangstyle/grammar"
	"github.com/signadot/yangstyle/stmt"
)

func leaf(name, typ string, kids ...*stmt.Statement) *stmt.Statement {
	return stmt.New("leaf", name, append([]*stmt.Statement{stmt.New("type", typ)}, kids...)...)
}

func leafref(name, path string) *stmt.Statement {
	return stmt.New("leaf", name, stmt.New("type", "leafref", stmt.New("path", path)))
}

func module(kids ...*stmt.Statement) *stmt.Statement {
	return stmt.New("module", "ex", append([]*stmt.Statement{stmt.New("prefix", "ex")}, kids...)...)
}

func convert(t *testing.T, m *stmt.Statement, opts Options) *diag.Report {
	t.Helper()
	rep := diag.NewReport(nil)
	if err := Convert(m, grammar.Default(), opts, rep); err != nil {
		t.Fatal(err)
	}
	if err := stmt.Validate(m); err != nil {
		t.Fatal(err)
	}
	return rep
}

func TestConvertList(t *testing.T) {
	m := module(
		stmt.New("container", "interfaces",
			stmt.New("list", "interface",
				stmt.New("key", "name"),
				leaf("name", "string"),
				leaf("mtu", "uint16"),
				leaf("oper-status", "string", stmt.New("config", "false")))))
	convert(t, m, Options{})
	want := `module ex-oc-style {
  prefix ex;
  container interfaces {
    list interface {
      leaf name {
        type leafref {
          path ../config/name;
        }
        description "Structural leafref to equivalent leaf in ./config container";
      }
      key name;
      container config {
        description "Contains intended configuration";
        leaf name {
          type string;
        }
        leaf mtu {
          type uint16;
        }
      }
      container state {
        config false;
        description "Contains applied configuration and derived state";
        leaf name {
          type string;
        }
        leaf mtu {
          type uint16;
        }
        leaf oper-status {
          type string;
        }
      }
    }
  }
}
`
	if diff := cmp.Diff(want, encode.MustString(m)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestKeyLeafrefs(t *testing.T) {
	m := module(
		stmt.New("list", "route",
			stmt.New("key", "prefix ex:next-hop"),
			leaf("next-hop", "string"),
			leaf("prefix", "string")))
	convert(t, m, Options{})
	list := m.SearchOne("list")
	var got []string
	for _, c := range list.Children[:2] {
		ty := c.SearchOne("type")
		got = append(got, c.Keyword+" "+c.Arg+" "+ty.Arg+" "+ty.SearchOne("path").Arg)
	}
	want := []string{
		"leaf prefix leafref ../config/prefix",
		"leaf next-hop leafref ../config/next-hop",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestLeafrefDepth(t *testing.T) {
	m := module(
		stmt.New("container", "c",
			leaf("target", "string"),
			leafref("r", "../target"),
			leafref("abs", "/ex:c/ex:target"),
			stmt.New("container", "counters",
				stmt.New("config", "false"),
				leafref("in", "../../target"),
				leafref("peer", "../sibling"))))
	convert(t, m, Options{})
	c := m.SearchOne("container")
	path := func(parent, name string) string {
		return c.SearchArg("container", parent).SearchArg("leaf", name).SearchOne("type").SearchOne("path").Arg
	}
	got := []string{path("config", "r"), path("state", "r"), path("config", "abs")}
	want := []string{"../../target", "../../target", "/ex:c/ex:target"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	counters := c.SearchArg("container", "state").SearchArg("container", "counters")
	if counters == nil {
		t.Fatalf("counters not moved under state")
	}
	if counters.SearchOne("config") != nil {
		t.Errorf("config statement kept on moved container")
	}
	in := counters.SearchArg("leaf", "in").SearchOne("type").SearchOne("path").Arg
	peer := counters.SearchArg("leaf", "peer").SearchOne("type").SearchOne("path").Arg
	if in != "../../../target" || peer != "../sibling" {
		t.Errorf("moved subtree paths: %q %q", in, peer)
	}
}

func TestLeafrefInChoice(t *testing.T) {
	for _, tc := range []struct {
		name   string
		config bool
		paths  []string
	}{
		{"configurable", true, []string{"config", "state"}},
		{"state", false, []string{"state"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			ch := stmt.New("choice", "ch",
				stmt.New("case", "a", leafref("r", "../target")))
			if !tc.config {
				ch = stmt.New("choice", "ch",
					stmt.New("config", "false"),
					stmt.New("case", "a", leafref("r", "../target")))
			}
			m := module(stmt.New("container", "c", leaf("target", "string"), ch))
			convert(t, m, Options{})
			c := m.SearchArg("container", "c")
			for _, parent := range tc.paths {
				p := c.SearchArg("container", parent)
				if p == nil {
					t.Fatalf("no %s container", parent)
				}
				r := p.SearchArg("choice", "ch").SearchArg("case", "a").SearchArg("leaf", "r")
				if got := r.SearchOne("type").SearchOne("path").Arg; got != "../../target" {
					t.Errorf("%s: path %q", parent, got)
				}
			}
			if !tc.config && c.SearchArg("container", "config").SearchArg("choice", "ch") != nil {
				t.Errorf("state choice placed under config")
			}
		})
	}
}

func TestPresence(t *testing.T) {
	m := module(
		stmt.New("container", "c",
			stmt.New("presence", "Enables c"),
			stmt.New("description", "C"),
			leaf("x", "string")),
		stmt.New("container", "empty", stmt.New("presence", "Enables empty")))
	convert(t, m, Options{})
	for _, name := range []string{"c", "empty"} {
		c := m.SearchArg("container", name)
		if c.SearchOne("presence") != nil {
			t.Errorf("%s: presence kept", name)
		}
		for _, sub := range []string{"config", "state"} {
			en := c.SearchArg("container", sub).SearchArg("leaf", "enabled")
			if en == nil {
				t.Fatalf("%s: no enabled leaf under %s", name, sub)
			}
			if en.SearchOne("type").Arg != "boolean" || en.SearchOne("description").Arg != "Enables "+name {
				t.Errorf("%s: bad enabled leaf %s", name, encode.MustString(en))
			}
		}
	}
	cfg := m.SearchArg("container", "c").SearchArg("container", "config")
	if got := []string{cfg.Children[1].Arg, cfg.Children[2].Arg}; !cmp.Equal(got, []string{"enabled", "x"}) {
		t.Errorf("config children %v", got)
	}
}

func TestNoConfigUnderState(t *testing.T) {
	m := module(
		stmt.New("container", "sys",
			stmt.New("presence", "p"),
			leaf("hostname", "string", stmt.New("config", "true")),
			stmt.New("choice", "mode",
				stmt.New("case", "a", leaf("x", "string")),
				stmt.New("case", "b", leaf("y", "string", stmt.New("config", "false")))),
			stmt.New("list", "user",
				stmt.New("key", "name"),
				leaf("name", "string"),
				stmt.New("container", "stats",
					stmt.New("config", "false"),
					leaf("logins", "uint32"),
					stmt.New("container", "inner", leaf("z", "string", stmt.New("config", "true")))))))
	convert(t, m, Options{})
	m.Walk(func(s *stmt.Statement) bool {
		if s.Keyword != "container" {
			return true
		}
		switch s.Arg {
		case "config":
			s.Walk(func(x *stmt.Statement) bool {
				if x != s && x.ExplicitConfig() == stmt.ConfigFalse {
					t.Errorf("config false under config: %s", x.Path())
				}
				return true
			})
		case "state":
			s.Walk(func(x *stmt.Statement) bool {
				if stmt.IsNodeBearing(x.Keyword) && x.EffectiveConfig() {
					t.Errorf("configurable node under state: %s", x.Path())
				}
				return true
			})
		}
		return true
	})
	cfg := m.SearchOne("container").SearchArg("container", "config")
	choice := cfg.SearchArg("choice", "mode")
	if choice == nil || choice.SearchArg("case", "b").SearchOne("leaf") != nil {
		t.Errorf("non-config leaf kept in config choice: %v", choice)
	}
}

func TestUses(t *testing.T) {
	m := module(
		stmt.New("grouping", "g",
			stmt.New("description", "G"),
			leaf("a", "string"),
			stmt.New("uses", "h"),
			stmt.New("container", "inner", leaf("b", "string"))),
		stmt.New("grouping", "h", leaf("from-h", "string")),
		stmt.New("container", "c",
			stmt.New("uses", "g",
				stmt.New("if-feature", "f"),
				stmt.New("refine", "a", stmt.New("description", "refined")),
				stmt.New("augment", "inner", leaf("added", "string")))),
		stmt.New("rpc", "reset",
			stmt.New("input", "", stmt.New("uses", "h"))))
	convert(t, m, Options{})
	if m.SearchOne("grouping") != nil {
		t.Errorf("groupings emitted")
	}
	c := m.SearchArg("container", "c")
	var kids []string
	for _, k := range c.Children {
		kids = append(kids, k.String())
	}
	if diff := cmp.Diff([]string{"container config", "container state", "container inner"}, kids); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	cfg := c.SearchArg("container", "config")
	a := cfg.SearchArg("leaf", "a")
	if a == nil || a.SearchOne("description").Arg != "refined" || a.SearchOne("if-feature").Arg != "f" {
		t.Errorf("refine or if-feature not applied: %v", a)
	}
	if cfg.SearchArg("leaf", "from-h") == nil {
		t.Errorf("nested uses not expanded")
	}
	if cfg.SearchArg("description", "G") != nil {
		t.Errorf("grouping description kept")
	}
	inner := c.SearchArg("container", "inner")
	if inner.SearchArg("container", "config").SearchArg("leaf", "added") == nil {
		t.Errorf("uses augment not applied: %s", encode.MustString(inner))
	}
	if m.SearchOne("rpc").SearchOne("input").SearchArg("leaf", "from-h") == nil {
		t.Errorf("uses in rpc not expanded")
	}
}

func TestUsesUnresolved(t *testing.T) {
	m := module(stmt.New("container", "c", stmt.New("uses", "nope")))
	rep := convert(t, m, Options{})
	if m.SearchOne("container").SearchOne("uses") == nil {
		t.Errorf("unresolved uses dropped")
	}
	if len(rep.Of(diag.UnresolvedReference)) != 1 {
		t.Errorf("expected a warning, got %v", rep.Warnings)
	}
}

func TestUsesCycle(t *testing.T) {
	m := module(
		stmt.New("grouping", "g", stmt.New("uses", "g")),
		stmt.New("container", "c", stmt.New("uses", "g")))
	err := Convert(m, grammar.Default(), Options{}, nil)
	if err == nil {
		t.Errorf("expected error for recursive grouping")
	}
}

func TestAugmentImport(t *testing.T) {
	m := module(
		stmt.New("import", "base", stmt.New("prefix", "b")),
		stmt.New("augment", "/b:top/b:item",
			leaf("x", "string"),
			leafref("y", "/b:top/b:name")))
	convert(t, m, Options{BaseImport: "base", OCPrefix: "boc"})
	imp := m.SearchOne("import")
	if imp.Arg != "base-oc-style" || imp.SearchOne("prefix").Arg != "boc" {
		t.Errorf("import not retargeted: %s", encode.MustString(imp))
	}
	aug := m.SearchOne("augment")
	if aug.Arg != "/boc:top/boc:item" {
		t.Errorf("augment path %q", aug.Arg)
	}
	y := aug.SearchArg("container", "config").SearchArg("leaf", "y")
	if got := y.SearchOne("type").SearchOne("path").Arg; got != "/boc:top/boc:name" {
		t.Errorf("path %q", got)
	}

	// no augment, no retargeting
	m = module(stmt.New("import", "base", stmt.New("prefix", "b")))
	convert(t, m, Options{BaseImport: "base", OCPrefix: "boc"})
	if m.SearchOne("import").Arg != "base" {
		t.Errorf("import retargeted without augments")
	}
}

func TestQualifyTypedefAndIncludes(t *testing.T) {
	sub := stmt.New("submodule", "ex-sub",
		stmt.New("belongs-to", "ex", stmt.New("prefix", "ex")),
		stmt.New("import", "ex-types", stmt.New("prefix", "et")))
	td := stmt.New("typedef", "speed", stmt.New("type", "uint32"))
	m := module(
		stmt.New("include", "ex-sub"),
		td,
		stmt.New("container", "c", leaf("s", "speed")))
	m.SearchOne("include").Target = sub
	c := m.SearchArg("container", "c")
	c.SearchOne("leaf").SearchOne("type").Target = td
	rep := convert(t, m, Options{})
	if rep.Len() != 0 {
		t.Errorf("warnings: %v", rep.Warnings)
	}
	if m.Arg != "ex-oc-style" {
		t.Errorf("module name %q", m.Arg)
	}
	if m.SearchArg("import", "ex-types") == nil {
		t.Errorf("submodule import not hoisted")
	}
	got := c.SearchArg("container", "config").SearchOne("leaf").SearchOne("type").Arg
	if got != "ex:speed" {
		t.Errorf("typedef reference %q", got)
	}
}
