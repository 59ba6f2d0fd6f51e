package combine

import (
	"github.com/signadot/yangstyle/grammar"
	"github.com/signadot/yangstyle/stmt"
)

// Deprecate marks s and every status bearing statement below it as
// deprecated. Existing current statuses are changed; other statuses are
// kept. Enums and bits inside types are left alone.
func Deprecate(s *stmt.Statement, table *grammar.Table) error {
	var err error
	s.Walk(func(x *stmt.Statement) bool {
		if err != nil || x.Keyword == "type" {
			return false
		}
		if x != s && !stmt.CanHaveStatus(x.Keyword) {
			return true
		}
		st := x.SearchOne("status")
		switch {
		case st == nil:
			err = table.AddCanonical(x, stmt.NewAt(x, "status", "deprecated"))
		case st.Arg == "current":
			st.Arg = "deprecated"
		}
		return true
	})
	return err
}
