package refs

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/yangstyle/diag"
	"github.com/signadot/yangstyle/stmt"
)

func leafref(name, path string) *stmt.Statement {
	return stmt.New("leaf", name,
		stmt.New("type", "leafref", stmt.New("path", path)))
}

func pathOf(leaf *stmt.Statement) string {
	return leaf.SearchOne("type").SearchOne("path").Arg
}

func TestQualify(t *testing.T) {
	names := NameSet{
		"feat-a": "ex:feat-a",
		"feat-b": "ex:feat-b",
		"my-id":  "ex:my-id",
		"my-t":   "ex:my-t",
	}
	c := stmt.New("container", "c",
		stmt.New("if-feature", "feat-a and not (feat-b or other:feat-c)"),
		stmt.New("when", "derived-from(../kind, 'my-id') and ../name = 'my-idx'"),
		stmt.New("must", `count(x) > 0 or "my-t" = ../t`),
		stmt.New("leaf", "a", stmt.New("type", "my-t")),
		stmt.New("leaf", "b", stmt.New("type", "string")),
		stmt.New("leaf", "c", stmt.New("type", "identityref", stmt.New("base", "my-id"))),
		stmt.New("leaf", "d", stmt.New("type", "missing-t")),
		stmt.New("leaf", "e", stmt.New("type", "other:t")),
	)
	rep := diag.NewReport(nil)
	Qualify(c, names, rep)
	got := map[string]string{}
	c.Walk(func(x *stmt.Statement) bool {
		switch x.Keyword {
		case "if-feature", "when", "must":
			got[x.Keyword] = x.Arg
		case "type", "base":
			got[x.Parent.Arg+"/"+x.Keyword] = x.Arg
		}
		return true
	})
	want := map[string]string{
		"if-feature":       "ex:feat-a and not (ex:feat-b or other:feat-c)",
		"when":             "derived-from(../kind, 'ex:my-id') and ../name = 'my-idx'",
		"must":             `count(x) > 0 or "ex:my-t" = ../t`,
		"a/type":           "ex:my-t",
		"b/type":           "string",
		"c/type":           "identityref",
		"identityref/base": "ex:my-id",
		"d/type":           "missing-t",
		"e/type":           "other:t",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	u := rep.Of(diag.UnresolvedReference)
	if len(u) != 1 || u[0].Name != "missing-t" {
		t.Errorf("expected one unresolved missing-t, got %v", u)
	}
}

func TestModuleNames(t *testing.T) {
	m := stmt.New("module", "ex",
		stmt.New("feature", "f"),
		stmt.New("identity", "i"),
		stmt.New("typedef", "t"),
		stmt.New("container", "c", stmt.New("typedef", "nested")))
	got := ModuleNames(m, "ex", "feature", "identity", "typedef")
	want := NameSet{"f": "ex:f", "i": "ex:i", "t": "ex:t"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestFixLeafrefPath(t *testing.T) {
	for _, tc := range []struct {
		path, want string
		levels     int
	}{
		{"../foo", "../../foo", 1},
		{"../../foo", "../../../../foo", 2},
		{"/if:interfaces/if:interface/if:name", "/if:interfaces/if:interface/if:name", 1},
		{"../foo", "../foo", 0},
	} {
		l := leafref("x", tc.path)
		FixLeafrefPath(l, tc.levels)
		if got := pathOf(l); got != tc.want {
			t.Errorf("%q +%d: got %q want %q", tc.path, tc.levels, got, tc.want)
		}
	}
}

func TestFixLeafrefPathUnion(t *testing.T) {
	l := stmt.New("leaf", "u",
		stmt.New("type", "union",
			stmt.New("type", "string"),
			stmt.New("type", "leafref", stmt.New("path", "../name"))))
	if n := FixLeafrefPath(l, 1); n != 1 {
		t.Fatalf("expected one fix, got %d", n)
	}
	if got := l.SearchOne("type").Children[1].SearchOne("path").Arg; got != "../../name" {
		t.Errorf("got %q", got)
	}
}

func TestFixSubtreeLeafrefs(t *testing.T) {
	inner := leafref("inner", "../peer")
	escape := leafref("escape", "../../outside")
	deep := leafref("deep", "../../sibling-of-x")
	far := leafref("far", "../../../outside")
	root := stmt.New("container", "x",
		inner,
		escape,
		stmt.New("container", "y", deep, far),
	)
	if n := FixSubtreeLeafrefs(root, 1); n != 2 {
		t.Errorf("expected 2 fixes, got %d", n)
	}
	want := []string{"../peer", "../../../outside", "../../sibling-of-x", "../../../../outside"}
	got := []string{pathOf(inner), pathOf(escape), pathOf(deep), pathOf(far)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	// a moved leaf is its own root
	leaf := leafref("l", "../name")
	FixSubtreeLeafrefs(leaf, 1)
	if got := pathOf(leaf); got != "../../name" {
		t.Errorf("got %q", got)
	}
}

func TestFixSubtreeLeafrefsChoice(t *testing.T) {
	sib := leafref("sib", "../target")
	local := leafref("local", "../other")
	nested := leafref("nested", "../../target")
	ch := stmt.New("choice", "ch",
		stmt.New("case", "a", sib),
		stmt.New("case", "b", stmt.New("container", "box", local, nested)))
	if n := FixSubtreeLeafrefs(ch, 1); n != 2 {
		t.Errorf("expected 2 fixes, got %d", n)
	}
	want := []string{"../../target", "../other", "../../../target"}
	got := []string{pathOf(sib), pathOf(local), pathOf(nested)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestQualifyTypedef(t *testing.T) {
	other := &stmt.ModuleInfo{Name: "ex-types", Prefix: "et"}
	td := stmt.New("typedef", "speed")
	td.Module = other
	stmt.New("module", "ex-types", td)
	nested := stmt.New("typedef", "local")
	stmt.New("container", "c", nested)

	out := &stmt.ModuleInfo{Name: "ex", Prefix: "ex", Imports: map[string]string{"t": "ex-types"}}
	l := stmt.New("leaf", "s", stmt.New("type", "speed"))
	l.SearchOne("type").Target = td
	n := stmt.New("leaf", "n", stmt.New("type", "local"))
	n.SearchOne("type").Target = nested
	rep := diag.NewReport(nil)
	QualifyTypedef(l, out, rep)
	QualifyTypedef(n, out, rep)
	if got := l.SearchOne("type").Arg; got != "t:speed" {
		t.Errorf("got %q", got)
	}
	if got := n.SearchOne("type").Arg; got != "local" {
		t.Errorf("nested typedef reference changed to %q", got)
	}

	l2 := stmt.New("leaf", "s", stmt.New("type", "speed"))
	l2.SearchOne("type").Target = td
	QualifyTypedef(l2, &stmt.ModuleInfo{Name: "ex", Prefix: "ex"}, rep)
	if rep.Len() != 1 {
		t.Errorf("expected unresolved warning for unreachable module")
	}
}

func TestRenamesAndRetype(t *testing.T) {
	root := stmt.New("container", "c",
		leafref("a", "/ex:interfaces-state/ex:interface/ex:name"),
		leafref("b", "../interfaces-state-x"),
		stmt.New("leaf", "r", stmt.New("type", "ex:interface-state-ref")),
		stmt.New("leaf", "s", stmt.New("type", "interface-state-ref")))
	RenamePathSegments(root, map[string]string{"interfaces-state": "interfaces"})
	RetypeStateRefs(root, map[string]string{"interface-state-ref": "interface-ref"})
	got := []string{
		pathOf(root.Children[0]),
		pathOf(root.Children[1]),
		root.Children[2].SearchOne("type").Arg,
		root.Children[3].SearchOne("type").Arg,
	}
	want := []string{
		"/ex:interfaces/ex:interface/ex:name",
		"../interfaces-state-x",
		"ex:interface-ref",
		"interface-ref",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestRetypeExact(t *testing.T) {
	a := stmt.New("type", "if:x-state-ref")
	b := stmt.New("type", "x-state-ref")
	root := stmt.New("leaf", "l", a, b)
	RetypeStateRefs(root, map[string]string{"if:x-state-ref": "if:x-ref"})
	if a.Arg != "if:x-ref" || b.Arg != "x-state-ref" {
		t.Errorf("got %q %q", a.Arg, b.Arg)
	}
}

func TestRenamePrefix(t *testing.T) {
	root := stmt.New("augment", "/ex-state:system-state",
		stmt.New("leaf", "l",
			stmt.New("type", "leafref",
				stmt.New("path", "/ex-state:a/ex-state:b"))),
		stmt.New("leaf", "m", stmt.New("type", "myex-state:t")),
		stmt.New("description", "ex-state:untouched"))
	RenamePrefix(root, "ex-state", "ex")
	got := []string{
		root.Arg,
		root.Children[0].SearchOne("type").SearchOne("path").Arg,
		root.Children[1].SearchOne("type").Arg,
		root.Children[2].Arg,
	}
	want := []string{"/ex:system-state", "/ex:a/ex:b", "myex-state:t", "ex-state:untouched"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestUnqualifyInvertsQualify(t *testing.T) {
	names := NameSet{"f": "ex:f", "t": "ex:t", "i": "ex:i"}
	mk := func() *stmt.Statement {
		return stmt.New("container", "c",
			stmt.New("if-feature", "f or other:g"),
			stmt.New("when", "../k = 'i'"),
			stmt.New("leaf", "x", stmt.New("type", "t")),
			stmt.New("leaf", "y", stmt.New("type", "identityref", stmt.New("base", "i"))))
	}
	orig := mk()
	s := mk()
	Qualify(s, names, nil)
	if s.SearchOne("if-feature").Arg != "ex:f or other:g" {
		t.Fatalf("qualify failed: %q", s.SearchOne("if-feature").Arg)
	}
	Unqualify(s, names)
	var want, got []string
	orig.Walk(func(x *stmt.Statement) bool { want = append(want, x.String()); return true })
	s.Walk(func(x *stmt.Statement) bool { got = append(got, x.String()); return true })
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
