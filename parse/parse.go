// Package parse decodes statement tree interchange documents.
//
// The documents are produced by an external parser/validator (see
// stmt.Doc). Parsing YANG source text is not a concern of this package.
package parse

import (
	"encoding/json"
	"fmt"

	"github.com/signadot/yangstyle/format"
	"github.com/signadot/yangstyle/stmt"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/goccy/go-yaml"
)

func Parse(d []byte, opts ...ParseOption) (*stmt.Statement, error) {
	pOpts := &parseOpts{format: format.YAMLFormat}
	for _, f := range opts {
		f(pOpts)
	}
	if !pOpts.format.Readable() {
		return nil, fmt.Errorf("%w: cannot read %s", format.ErrBadFormat, pOpts.format)
	}
	doc := &stmt.Doc{}
	if pOpts.patch != nil {
		jd, err := toJSON(d, pOpts.format)
		if err != nil {
			return nil, err
		}
		jd, err = applyPatch(jd, pOpts.patch)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(jd, doc); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
	} else {
		var err error
		switch pOpts.format {
		case format.JSONFormat:
			err = json.Unmarshal(d, doc)
		default:
			err = yaml.Unmarshal(d, doc)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
	}
	if err := check(doc, "$"); err != nil {
		return nil, err
	}
	res := stmt.FromDoc(doc)
	if pOpts.file != "" {
		res.Walk(func(s *stmt.Statement) bool {
			if s.Pos.File == "" {
				s.Pos.File = pOpts.file
			}
			return true
		})
	}
	return res, nil
}

func check(d *stmt.Doc, path string) error {
	if d.Keyword == "" {
		return fmt.Errorf("%w at %s", ErrKeyword, path)
	}
	for i, c := range d.Children {
		if c == nil {
			return fmt.Errorf("%w: null child at %s.children[%d]", ErrParse, path, i)
		}
		if err := check(c, fmt.Sprintf("%s.children[%d]", path, i)); err != nil {
			return err
		}
	}
	return nil
}

func toJSON(d []byte, f format.Format) ([]byte, error) {
	if f.IsJSON() {
		return d, nil
	}
	jd, err := yaml.YAMLToJSON(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return jd, nil
}

func applyPatch(doc, patch []byte) ([]byte, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		jp, yerr := yaml.YAMLToJSON(patch)
		if yerr != nil {
			return nil, fmt.Errorf("%w: %w", ErrPatch, err)
		}
		ops, err = jsonpatch.DecodePatch(jp)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrPatch, err)
		}
	}
	out, err := ops.Apply(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return out, nil
}
