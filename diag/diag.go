// Package diag collects the non-fatal findings of a conversion pass.
package diag

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/signadot/yangstyle/stmt"
)

type Kind int

const (
	// UnresolvedReference: a reference name could not be matched against
	// the rewrite set. The reference is left as is.
	UnresolvedReference Kind = iota
	// AmbiguousMerge: two differing texts were found for a matched
	// description or presence statement. They are concatenated.
	AmbiguousMerge
)

func (k Kind) String() string {
	switch k {
	case UnresolvedReference:
		return "unresolved-reference"
	case AmbiguousMerge:
		return "ambiguous-merge"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

type Warning struct {
	Kind    Kind
	Path    string
	Pos     stmt.Pos
	Keyword string
	Name    string
	Detail  string
}

func (w *Warning) String() string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "%s: %s at %s", w.Pos, w.Kind, w.Path)
	if w.Name != "" {
		fmt.Fprintf(b, ": %s %q", w.Keyword, w.Name)
	}
	if w.Detail != "" {
		b.WriteString(": ")
		b.WriteString(w.Detail)
	}
	return b.String()
}

// Report accumulates warnings. A nil *Report discards them.
type Report struct {
	Warnings []*Warning
	Log      *slog.Logger
}

func NewReport(log *slog.Logger) *Report {
	return &Report{Log: log}
}

func (r *Report) logger() *slog.Logger {
	if r.Log == nil {
		return slog.Default()
	}
	return r.Log
}

func (r *Report) add(w *Warning) {
	if r == nil {
		return
	}
	r.Warnings = append(r.Warnings, w)
	r.logger().Debug("warning", "kind", w.Kind, "path", w.Path, "name", w.Name)
}

// Unresolved records a reference name in s that has no rewrite.
func (r *Report) Unresolved(s *stmt.Statement, name string) {
	r.add(&Warning{
		Kind:    UnresolvedReference,
		Path:    s.Path(),
		Pos:     s.Pos,
		Keyword: s.Keyword,
		Name:    name,
	})
}

// Ambiguous records a merge of two differing texts into s.
func (r *Report) Ambiguous(s *stmt.Statement, detail string) {
	r.add(&Warning{
		Kind:    AmbiguousMerge,
		Path:    s.Path(),
		Pos:     s.Pos,
		Keyword: s.Keyword,
		Detail:  detail,
	})
}

func (r *Report) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Warnings)
}

func (r *Report) Of(k Kind) []*Warning {
	if r == nil {
		return nil
	}
	var res []*Warning
	for _, w := range r.Warnings {
		if w.Kind == k {
			res = append(res, w)
		}
	}
	return res
}

// Flush logs every warning at warn level.
func (r *Report) Flush() {
	if r == nil {
		return
	}
	for _, w := range r.Warnings {
		r.logger().Warn(w.Kind.String(), "pos", w.Pos.String(), "path", w.Path, "detail", w.detail())
	}
}

func (w *Warning) detail() string {
	if w.Name == "" {
		return w.Detail
	}
	if w.Detail == "" {
		return w.Keyword + " " + w.Name
	}
	return w.Keyword + " " + w.Name + ": " + w.Detail
}
