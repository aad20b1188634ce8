package itemdb

// Lookup resolves item ids to display names.
type Lookup interface {
	Name(id int) (string, bool)
}

// Table is an immutable id→name map. It is safe for concurrent reads and a
// nil *Table behaves as an empty table.
type Table struct {
	names map[int]string
}

// NewTable copies names into a new Table.
func NewTable(names map[int]string) *Table {
	t := &Table{names: make(map[int]string, len(names))}
	for id, name := range names {
		t.names[id] = name
	}
	return t
}

// Empty returns a table with no entries.
func Empty() *Table {
	return &Table{names: map[int]string{}}
}

// Name returns the display name for id.
func (t *Table) Name(id int) (string, bool) {
	if t == nil {
		return "", false
	}
	name, ok := t.names[id]
	return name, ok
}

// Len returns the number of known items.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.names)
}

// Map is a Lookup backed by a plain map, handy for tests and fixtures.
type Map map[int]string

// Name implements Lookup.
func (m Map) Name(id int) (string, bool) {
	name, ok := m[id]
	return name, ok
}
