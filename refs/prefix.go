package refs

import (
	"regexp"

	"github.com/signadot/yangstyle/stmt"
)

// keywords whose arguments may carry prefixed names
var prefixed = map[string]bool{
	"augment":    true,
	"base":       true,
	"deviation":  true,
	"if-feature": true,
	"must":       true,
	"path":       true,
	"type":       true,
	"uses":       true,
	"when":       true,
}

// RenamePrefix replaces the prefix from by to in the references under
// root.
func RenamePrefix(root *stmt.Statement, from, to string) {
	if from == to {
		return
	}
	re := regexp.MustCompile(`(^|[^A-Za-z0-9_.\-])` + regexp.QuoteMeta(from) + `:`)
	root.Walk(func(x *stmt.Statement) bool {
		if prefixed[x.Keyword] {
			x.Arg = re.ReplaceAllString(x.Arg, "${1}"+to+":")
		}
		return true
	})
}

// Unqualify is the inverse of Qualify: qualified names that are values
// of names are replaced by their bare form, in if-feature, type and base
// arguments and in must and when literals.
func Unqualify(s *stmt.Statement, names NameSet) {
	bare := make(map[string]string, len(names))
	for k, v := range names {
		bare[v] = k
	}
	s.Walk(func(x *stmt.Statement) bool {
		switch x.Keyword {
		case "if-feature", "type", "base":
			x.Arg = identRe.ReplaceAllStringFunc(x.Arg, func(tok string) string {
				if b, ok := bare[tok]; ok {
					return b
				}
				return tok
			})
		case "must", "when":
			x.Arg = literalRe.ReplaceAllStringFunc(x.Arg, func(lit string) string {
				if b, ok := bare[lit[1:len(lit)-1]]; ok {
					return lit[:1] + b + lit[:1]
				}
				return lit
			})
		}
		return true
	})
}
