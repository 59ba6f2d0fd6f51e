package grammar

import "slices"

// Table is a canonical ordering table.
type Table struct {
	ranks map[string]map[string]int
}

// Slot is a group of keywords sharing one rank.
type Slot []string

func NewTable(orders map[string][]Slot) *Table {
	t := &Table{ranks: make(map[string]map[string]int, len(orders))}
	for kw, slots := range orders {
		t.Set(kw, slots...)
	}
	return t
}

// Set defines the child order of keyword.
func (t *Table) Set(keyword string, slots ...Slot) {
	r := make(map[string]int)
	for i, slot := range slots {
		for _, kw := range slot {
			if _, ok := r[kw]; !ok {
				r[kw] = i
			}
		}
	}
	t.ranks[keyword] = r
}

// Has reports whether keyword defines a child order.
func (t *Table) Has(keyword string) bool {
	_, ok := t.ranks[keyword]
	return ok
}

// Rank returns the rank of child under parent and whether the table knows
// it.
func (t *Table) Rank(parent, child string) (int, bool) {
	r, ok := t.ranks[parent]
	if !ok {
		return 0, false
	}
	i, ok := r[child]
	return i, ok
}

// Keywords lists the parent keywords with a defined order.
func (t *Table) Keywords() []string {
	res := make([]string, 0, len(t.ranks))
	for k := range t.ranks {
		res = append(res, k)
	}
	slices.Sort(res)
	return res
}

func one(kws ...string) []Slot {
	res := make([]Slot, len(kws))
	for i, kw := range kws {
		res[i] = Slot{kw}
	}
	return res
}

func join(parts ...[]Slot) []Slot {
	var res []Slot
	for _, p := range parts {
		res = append(res, p...)
	}
	return res
}

var (
	dataDefSlot = Slot{"container", "leaf", "leaf-list", "list", "choice", "anydata", "anyxml", "uses"}
	caseSlot    = Slot{"container", "leaf", "leaf-list", "list", "choice", "anydata", "anyxml", "case"}
	augmentSlot = Slot{"container", "leaf", "leaf-list", "list", "choice", "anydata", "anyxml", "uses", "case"}
)

// Default returns the built-in YANG 1.1 ordering table.
func Default() *Table {
	header := one("yang-version", "namespace", "prefix", "belongs-to", "import", "include",
		"organization", "contact", "description", "reference", "revision",
		"extension", "feature", "identity", "typedef", "grouping")
	body := join([]Slot{dataDefSlot}, one("augment", "rpc", "notification", "deviation"))
	return NewTable(map[string][]Slot{
		"module":     join(header, body),
		"submodule":  join(header, body),
		"import":     one("prefix", "revision-date", "description", "reference"),
		"include":    one("revision-date", "description", "reference"),
		"belongs-to": one("prefix"),
		"revision":   one("description", "reference"),
		"extension":  one("argument", "status", "description", "reference"),
		"argument":   one("yin-element"),
		"feature":    one("if-feature", "status", "description", "reference"),
		"identity":   one("if-feature", "base", "status", "description", "reference"),
		"typedef":    one("type", "units", "default", "status", "description", "reference"),
		"type": one("path", "require-instance", "base", "fraction-digits", "range",
			"length", "pattern", "enum", "bit", "type"),
		"range":   one("error-message", "error-app-tag", "description", "reference"),
		"length":  one("error-message", "error-app-tag", "description", "reference"),
		"pattern": one("modifier", "error-message", "error-app-tag", "description", "reference"),
		"enum":    one("if-feature", "value", "status", "description", "reference"),
		"bit":     one("if-feature", "position", "status", "description", "reference"),
		"must":    one("error-message", "error-app-tag", "description", "reference"),
		"when":    one("description", "reference"),
		"grouping": join(one("status", "description", "reference", "typedef", "grouping"),
			[]Slot{dataDefSlot}, one("action", "notification")),
		"container": join(one("when", "if-feature", "must", "presence", "config", "status",
			"description", "reference", "typedef", "grouping"),
			[]Slot{dataDefSlot}, one("action", "notification")),
		"leaf": one("when", "if-feature", "type", "units", "must", "default", "config",
			"mandatory", "status", "description", "reference"),
		"leaf-list": one("when", "if-feature", "type", "units", "must", "default", "config",
			"min-elements", "max-elements", "ordered-by", "status", "description", "reference"),
		"list": join(one("when", "if-feature", "must", "key", "unique", "config",
			"min-elements", "max-elements", "ordered-by", "status", "description",
			"reference", "typedef", "grouping"),
			[]Slot{dataDefSlot}, one("action", "notification")),
		"choice": join(one("when", "if-feature", "default", "config", "mandatory", "status",
			"description", "reference"), []Slot{caseSlot}),
		"case": join(one("when", "if-feature", "status", "description", "reference"),
			[]Slot{dataDefSlot}),
		"anydata": one("when", "if-feature", "must", "config", "mandatory", "status",
			"description", "reference"),
		"anyxml": one("when", "if-feature", "must", "config", "mandatory", "status",
			"description", "reference"),
		"uses": one("when", "if-feature", "status", "description", "reference", "refine",
			"augment"),
		"refine": one("if-feature", "must", "presence", "default", "config", "mandatory",
			"min-elements", "max-elements", "description", "reference"),
		"augment": join(one("when", "if-feature", "status", "description", "reference"),
			[]Slot{augmentSlot}, one("action", "notification")),
		"rpc": one("if-feature", "status", "description", "reference", "typedef", "grouping",
			"input", "output"),
		"action": one("if-feature", "status", "description", "reference", "typedef",
			"grouping", "input", "output"),
		"input":  join(one("must", "typedef", "grouping"), []Slot{dataDefSlot}),
		"output": join(one("must", "typedef", "grouping"), []Slot{dataDefSlot}),
		"notification": join(one("if-feature", "must", "status", "description", "reference",
			"typedef", "grouping"), []Slot{dataDefSlot}),
		"deviation": one("description", "reference", "deviate"),
		"deviate": one("units", "must", "unique", "default", "config", "mandatory",
			"min-elements", "max-elements", "type"),
	})
}
