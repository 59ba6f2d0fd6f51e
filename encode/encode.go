package encode

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/yangstyle/format"
	"github.com/signadot/yangstyle/stmt"

	"github.com/goccy/go-yaml"
)

type EncState struct {
	depth, indent int
	annotations   bool

	format format.Format

	Color func(ColorAttr, string) string
}

func Encode(s *stmt.Statement, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
		format: format.YANGFormat,
	}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.JSONFormat:
		d, err := json.MarshalIndent(stmt.ToDoc(s), "", strings.Repeat(" ", es.indent))
		if err != nil {
			return err
		}
		return writeString(w, string(d)+"\n")
	case format.YAMLFormat:
		d, err := yaml.MarshalWithOptions(stmt.ToDoc(s), yaml.Indent(es.indent))
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	case format.YANGFormat:
		return encodeYANG(s, w, es)
	default:
		return fmt.Errorf("%w: cannot encode %s", format.ErrBadFormat, es.format)
	}
}

func encodeYANG(s *stmt.Statement, w io.Writer, es *EncState) error {
	pad := strings.Repeat(" ", es.depth*es.indent)
	kwAttr := KeywordColor
	if s.Prefix() != "" {
		kwAttr = ExtensionColor
	}
	line := pad + es.color(kwAttr, s.Keyword)
	if s.Arg != "" {
		line += " " + es.arg(s.Arg, pad)
	}
	note := ""
	if es.annotations && s.Config != stmt.ConfigUnset {
		note = es.color(CommentColor, " // config="+s.Config.String())
	}
	if len(s.Children) == 0 {
		return writeString(w, line+es.color(SepColor, ";")+note+"\n")
	}
	if err := writeString(w, line+" "+es.color(SepColor, "{")+note+"\n"); err != nil {
		return err
	}
	es.depth++
	for _, c := range s.Children {
		if err := encodeYANG(c, w, es); err != nil {
			return err
		}
	}
	es.depth--
	return writeString(w, pad+es.color(SepColor, "}")+"\n")
}

func (es *EncState) color(a ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(a, v)
}

func (es *EncState) arg(v, pad string) string {
	if !needsQuote(v) {
		return es.color(ArgColor, v)
	}
	q := strings.ReplaceAll(v, `\`, `\\`)
	q = strings.ReplaceAll(q, `"`, `\"`)
	q = strings.ReplaceAll(q, "\n", "\n"+pad+strings.Repeat(" ", es.indent))
	return es.color(StringColor, `"`+q+`"`)
}

func needsQuote(v string) bool {
	if v == "" {
		return true
	}
	if strings.ContainsAny(v, " \t\n\r;{}\"'") {
		return true
	}
	return strings.Contains(v, "//") || strings.Contains(v, "/*")
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
