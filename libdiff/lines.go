package libdiff

import (
	"strings"

	"github.com/signadot/yangstyle/encode"
	"github.com/signadot/yangstyle/stmt"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Line struct {
	Op   Op
	Text string
}

// Lines computes a line oriented diff from one text to another.
func Lines(from, to string) []Line {
	diffCfg := diffpatch.New()
	a, b, lineArray := diffCfg.DiffLinesToChars(from, to)
	diffs := diffCfg.DiffMain(a, b, false)
	diffs = diffCfg.DiffCharsToLines(diffs, lineArray)
	var res []Line
	for _, d := range diffs {
		op := Equal
		switch d.Type {
		case diffpatch.DiffInsert:
			op = Insert
		case diffpatch.DiffDelete:
			op = Delete
		}
		text := strings.TrimSuffix(d.Text, "\n")
		for _, l := range strings.Split(text, "\n") {
			res = append(res, Line{Op: op, Text: l})
		}
	}
	return res
}

// Changed reports whether any line was inserted or deleted.
func Changed(lines []Line) bool {
	for _, l := range lines {
		if l.Op != Equal {
			return true
		}
	}
	return false
}

// Statements diffs the YANG-like renderings of two statement trees.
func Statements(from, to *stmt.Statement, opts ...encode.EncodeOption) ([]Line, error) {
	fb := &strings.Builder{}
	if err := encode.Encode(from, fb, opts...); err != nil {
		return nil, err
	}
	tb := &strings.Builder{}
	if err := encode.Encode(to, tb, opts...); err != nil {
		return nil, err
	}
	return Lines(fb.String(), tb.String()), nil
}

// Render writes lines with a one character mark. Inserted and deleted lines
// are passed through ins and del, which may be nil.
func Render(lines []Line, ins, del func(string, ...any) string) string {
	b := &strings.Builder{}
	for _, l := range lines {
		s := l.Op.Mark() + " " + l.Text
		switch {
		case l.Op == Insert && ins != nil:
			s = ins("%s", s)
		case l.Op == Delete && del != nil:
			s = del("%s", s)
		}
		b.WriteString(s)
		b.WriteByte('\n')
	}
	return b.String()
}
