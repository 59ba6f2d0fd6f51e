package refs

import (
	"regexp"
	"strings"

	"github.com/signadot/yangstyle/stmt"
)

// NameSet maps a bare name to the qualified name that replaces it.
type NameSet map[string]string

// ModuleNames collects the top-level definitions of module m with one of
// the given keywords, qualified with prefix.
func ModuleNames(m *stmt.Statement, prefix string, keywords ...string) NameSet {
	res := NameSet{}
	for _, c := range m.Children {
		for _, kw := range keywords {
			if c.Keyword == kw {
				res[c.Arg] = prefix + ":" + c.Arg
			}
		}
	}
	return res
}

// identifier, optionally prefixed
var identRe = regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_.\-]*(?::[A-Za-z_][A-Za-z0-9_.\-]*)?`)

// literal XPath strings
var literalRe = regexp.MustCompile(`'[^']*'|"[^"]*"`)

func splitName(n string) (prefix, local string) {
	if i := strings.IndexByte(n, ':'); i >= 0 {
		return n[:i], n[i+1:]
	}
	return "", n
}

var builtinTypes = map[string]bool{
	"binary":              true,
	"bits":                true,
	"boolean":             true,
	"decimal64":           true,
	"empty":               true,
	"enumeration":         true,
	"identityref":         true,
	"instance-identifier": true,
	"int8":                true,
	"int16":               true,
	"int32":               true,
	"int64":               true,
	"leafref":             true,
	"string":              true,
	"uint8":               true,
	"uint16":              true,
	"uint32":              true,
	"uint64":              true,
	"union":               true,
}

func IsBuiltinType(name string) bool {
	return builtinTypes[name]
}

var featureOps = map[string]bool{
	"and": true,
	"or":  true,
	"not": true,
}
