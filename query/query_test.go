package query

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/yangstyle/stmt"
)

func tree() *stmt.Statement {
	return stmt.New("module", "ex",
		stmt.New("prefix", "ex"),
		stmt.New("container", "system",
			stmt.New("presence", "enables system"),
			stmt.New("leaf", "hostname", stmt.New("type", "string")),
			stmt.New("container", "clock",
				stmt.New("config", "false"),
				stmt.New("leaf", "now", stmt.New("type", "string")))))
}

func TestFind(t *testing.T) {
	for _, tc := range []struct {
		src  string
		want []string
	}{
		{`keyword == "leaf"`, []string{"hostname", "now"}},
		{`keyword == "leaf" && !config`, []string{"now"}},
		{`keyword == "container" && "presence" in children`, []string{"system"}},
		{`parent == "module"`, []string{"ex", "system"}},
		{`depth == 0`, []string{"ex"}},
		{`keyword == "type" && depth > 3`, []string{"string"}},
		{`arg startsWith "host"`, []string{"hostname"}},
	} {
		t.Run(tc.src, func(t *testing.T) {
			q, err := Compile(tc.src)
			if err != nil {
				t.Fatal(err)
			}
			res, err := Find(tree(), q)
			if err != nil {
				t.Fatal(err)
			}
			var got []string
			for _, s := range res {
				got = append(got, s.Arg)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestCompileErrors(t *testing.T) {
	for _, src := range []string{`keyword +`, `arg`, `nosuchfield == 1`} {
		if _, err := Compile(src); !errors.Is(err, ErrQuery) {
			t.Errorf("%q: expected ErrQuery, got %v", src, err)
		}
	}
}
