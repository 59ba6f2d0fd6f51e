package grammar

import (
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
)

var ErrBadTable = errors.New("bad ordering table")

// LoadTable reads an ordering table. The document maps a keyword to a list
// whose items are either a keyword or a list of keywords sharing a rank.
// JSON documents are accepted as well, JSON being a subset of YAML.
func LoadTable(r io.Reader) (*Table, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	raw := map[string][]any{}
	if err := yaml.Unmarshal(d, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadTable, err)
	}
	orders := make(map[string][]Slot, len(raw))
	for kw, items := range raw {
		slots := make([]Slot, 0, len(items))
		for i, item := range items {
			slot, err := toSlot(item)
			if err != nil {
				return nil, fmt.Errorf("%w: %s[%d]: %w", ErrBadTable, kw, i, err)
			}
			slots = append(slots, slot)
		}
		orders[kw] = slots
	}
	return NewTable(orders), nil
}

func toSlot(item any) (Slot, error) {
	switch x := item.(type) {
	case string:
		return Slot{x}, nil
	case []any:
		slot := make(Slot, 0, len(x))
		for _, y := range x {
			s, ok := y.(string)
			if !ok {
				return nil, fmt.Errorf("slot member %v is not a keyword", y)
			}
			slot = append(slot, s)
		}
		if len(slot) == 0 {
			return nil, errors.New("empty slot")
		}
		return slot, nil
	default:
		return nil, fmt.Errorf("%v is neither a keyword nor a list", item)
	}
}

// Merge returns a table with the orders of o overriding those of t.
func (t *Table) Merge(o *Table) *Table {
	res := &Table{ranks: make(map[string]map[string]int, len(t.ranks)+len(o.ranks))}
	for k, v := range t.ranks {
		res.ranks[k] = v
	}
	for k, v := range o.ranks {
		res.ranks[k] = v
	}
	return res
}
