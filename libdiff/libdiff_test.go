package libdiff

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/yangstyle/stmt"
)

func TestText(t *testing.T) {
	if got := Text("same", "same"); got != "" {
		t.Errorf("expected empty diff, got %q", got)
	}
	got := Text("interface state", "interface config")
	if got == "" || got == "interface config" {
		t.Errorf("expected marked diff, got %q", got)
	}
}

func TestLines(t *testing.T) {
	from := "a\nb\nc\n"
	to := "a\nc\nd\n"
	want := []Line{
		{Equal, "a"},
		{Delete, "b"},
		{Equal, "c"},
		{Insert, "d"},
	}
	got := Lines(from, to)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if !Changed(got) || Changed(Lines(from, from)) {
		t.Errorf("Changed is wrong")
	}
}

func TestStatements(t *testing.T) {
	a := stmt.New("container", "x", stmt.New("leaf", "a"))
	b := stmt.New("container", "x", stmt.New("leaf", "b"))
	lines, err := Statements(a, b)
	if err != nil {
		t.Fatal(err)
	}
	got := Render(lines, nil, nil)
	want := "  container x {\n-   leaf a;\n+   leaf b;\n  }\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
