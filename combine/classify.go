package combine

import (
	"regexp"
	"strings"

	"github.com/signadot/yangstyle/stmt"
)

func countConfigFalse(s *stmt.Statement) int {
	n := 0
	for _, c := range s.Search("config") {
		if c.Arg == "false" {
			n++
		}
	}
	return n
}

// IsConfigContainer reports whether s is a container whose name lacks
// suffix and which carries no config false substatement.
func IsConfigContainer(s *stmt.Statement, suffix string) bool {
	return s.Keyword == "container" &&
		!strings.HasSuffix(s.Arg, suffix) &&
		countConfigFalse(s) == 0
}

// IsStateContainer reports whether s is a container whose name ends in
// suffix and which carries exactly one config false substatement.
func IsStateContainer(s *stmt.Statement, suffix string) bool {
	return s.Keyword == "container" &&
		strings.HasSuffix(s.Arg, suffix) &&
		countConfigFalse(s) == 1
}

// MatchesState reports whether state is the state container of cfg.
func MatchesState(cfg, state *stmt.Statement, suffix string) bool {
	return state.Arg == cfg.Arg+suffix && IsStateContainer(state, suffix)
}

func augmentRe(suffix string) *regexp.Regexp {
	return regexp.MustCompile(`^(/[^/]+?)` + regexp.QuoteMeta(suffix) + `(/.*)?$`)
}

// IsStateAugment reports whether s augments a path whose first segment
// ends in suffix.
func IsStateAugment(s *stmt.Statement, suffix string) bool {
	return s.Keyword == "augment" && augmentRe(suffix).MatchString(s.Arg)
}

// ConfigAugmentPath returns the state augment path with the suffix
// removed from its first segment.
func ConfigAugmentPath(path, suffix string) (string, bool) {
	m := augmentRe(suffix).FindStringSubmatch(path)
	if m == nil {
		return "", false
	}
	return m[1] + m[2], true
}
