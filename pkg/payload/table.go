package payload

import (
	"fmt"
	"sort"
)

// Table maps transaction type tags to body schemas. It's immutable after
// creation and can be shared between goroutines.
type Table struct {
	schemas map[string]Schema
}

// NewTable creates a table from the given schemas. Every schema is validated
// and tags must be unique.
func NewTable(schemas ...Schema) (*Table, error) {
	t := &Table{schemas: make(map[string]Schema, len(schemas))}
	for _, s := range schemas {
		if err := s.Validate(); err != nil {
			return nil, err
		}
		if _, ok := t.schemas[s.Tag]; ok {
			return nil, fmt.Errorf("%w: duplicate tag %s", ErrInvalidSchema, s.Tag)
		}
		t.schemas[s.Tag] = s.Copy()
	}
	return t, nil
}

// With returns a new table containing schemas of t extended with the given
// ones. Schemas with tags already present in t replace the old ones.
func (t *Table) With(schemas ...Schema) (*Table, error) {
	ext, err := NewTable(schemas...)
	if err != nil {
		return nil, err
	}
	for tag, s := range t.schemas {
		if _, ok := ext.schemas[tag]; !ok {
			ext.schemas[tag] = s
		}
	}
	return ext, nil
}

// Get returns the schema for the exact type tag given.
func (t *Table) Get(tag string) (Schema, bool) {
	s, ok := t.schemas[tag]
	if !ok {
		return Schema{}, false
	}
	return s.Copy(), true
}

// Len returns the number of schemas in the table.
func (t *Table) Len() int {
	return len(t.schemas)
}

// Schemas returns all table schemas sorted by tag.
func (t *Table) Schemas() []Schema {
	res := make([]Schema, 0, len(t.schemas))
	for _, s := range t.schemas {
		res = append(res, s.Copy())
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].Tag < res[j].Tag
	})
	return res
}
