package parse

import "github.com/signadot/yangstyle/format"

type parseOpts struct {
	format format.Format
	patch  []byte
	file   string
}

type ParseOption func(*parseOpts)

func ParseYAML() ParseOption {
	return ParseFormat(format.YAMLFormat)
}
func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}

// ParsePatch applies an RFC 6902 JSON patch (in JSON or YAML) to the
// document before it is decoded.
func ParsePatch(p []byte) ParseOption {
	return func(o *parseOpts) { o.patch = p }
}

// ParseFile records the file name in statement positions lacking one.
func ParseFile(name string) ParseOption {
	return func(o *parseOpts) { o.file = name }
}
