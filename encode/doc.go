// Package encode writes statement trees.
//
// Three formats are supported: the JSON and YAML interchange documents
// (see stmt.Doc) and a read-only YANG-like view, optionally colored, used
// by the CLI and by debug tracing. The view is meant for people; it is not
// a canonical YANG emitter.
//
//	err := encode.Encode(module, os.Stdout,
//	    encode.EncodeFormat(format.YANGFormat),
//	    encode.EncodeColors(encode.NewColors()))
package encode
