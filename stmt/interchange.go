package stmt

import "encoding/json"

// Doc is the serializable form of a statement tree used for the JSON and
// YAML interchange formats.
type Doc struct {
	Keyword  string  `json:"keyword" yaml:"keyword"`
	Arg      string  `json:"arg,omitempty" yaml:"arg,omitempty"`
	Pos      *DocPos `json:"pos,omitempty" yaml:"pos,omitempty"`
	Config   *bool   `json:"config,omitempty" yaml:"config,omitempty"`
	Children []*Doc  `json:"children,omitempty" yaml:"children,omitempty"`
}

type DocPos struct {
	File string `json:"file,omitempty" yaml:"file,omitempty"`
	Line int    `json:"line,omitempty" yaml:"line,omitempty"`
	Col  int    `json:"col,omitempty" yaml:"col,omitempty"`
}

// ToDoc converts s to its interchange form. Module and Target annotations
// are not serialized; they are recomputed by the annotate package.
func ToDoc(s *Statement) *Doc {
	d := &Doc{Keyword: s.Keyword, Arg: s.Arg}
	if s.Pos != (Pos{}) {
		d.Pos = &DocPos{File: s.Pos.File, Line: s.Pos.Line, Col: s.Pos.Col}
	}
	if s.Config != ConfigUnset {
		b := s.Config.Value()
		d.Config = &b
	}
	for _, c := range s.Children {
		d.Children = append(d.Children, ToDoc(c))
	}
	return d
}

// FromDoc builds a statement tree from d.
func FromDoc(d *Doc) *Statement {
	s := &Statement{Keyword: d.Keyword, Arg: d.Arg}
	if d.Pos != nil {
		s.Pos = Pos{File: d.Pos.File, Line: d.Pos.Line, Col: d.Pos.Col}
	}
	if d.Config != nil {
		s.Config = ConfigOf(*d.Config)
	}
	for _, cd := range d.Children {
		if cd == nil {
			continue
		}
		c := FromDoc(cd)
		c.Parent = s
		s.Children = append(s.Children, c)
	}
	return s
}

func (s *Statement) MarshalJSON() ([]byte, error) {
	return json.Marshal(ToDoc(s))
}

func (s *Statement) UnmarshalJSON(d []byte) error {
	doc := &Doc{}
	if err := json.Unmarshal(d, doc); err != nil {
		return err
	}
	tmp := FromDoc(doc)
	*s = *tmp
	for _, c := range s.Children {
		c.Parent = s
	}
	return nil
}
