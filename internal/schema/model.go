package schema

import "strings"

type Table struct {
	Name         string
	Columns      []*Column
	ForeignKeys  []*ForeignKey
	Dependencies []string // referenced table names, for ordering
}

type Column struct {
	Name       string
	DataType   string // engine-native declared type, passed through verbatim
	IsNullable bool
	IsPK       bool
	Default    *string
}

type ForeignKey struct {
	Column    string
	RefTable  string
	RefColumn string
}

// ColumnNames returns the column names in declaration order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// Catalog is a point-in-time snapshot of one database's tables.
// Tables keeps dependency order (parents before children); lookups are
// case-normalized for Oracle compatibility.
type Catalog struct {
	Tables []*Table
	index  map[string]*Table
}

func NewCatalog(tables []*Table) *Catalog {
	c := &Catalog{Tables: tables, index: make(map[string]*Table, len(tables))}
	for _, t := range tables {
		c.index[strings.ToUpper(t.Name)] = t
	}
	return c
}

func (c *Catalog) Get(name string) (*Table, bool) {
	t, ok := c.index[strings.ToUpper(name)]
	return t, ok
}

func (c *Catalog) Has(name string) bool {
	_, ok := c.index[strings.ToUpper(name)]
	return ok
}

func (c *Catalog) Len() int {
	return len(c.Tables)
}

// Filter returns a catalog restricted to the requested table names.
// Unknown names simply produce no match; nil or empty means all tables.
func (c *Catalog) Filter(names []string) *Catalog {
	if len(names) == 0 {
		return c
	}
	requested := make(map[string]bool, len(names))
	for _, n := range names {
		requested[strings.ToUpper(strings.TrimSpace(n))] = true
	}
	var kept []*Table
	for _, t := range c.Tables {
		if requested[strings.ToUpper(t.Name)] {
			kept = append(kept, t)
		}
	}
	return NewCatalog(kept)
}

// SyncResult is the per-table outcome reported back to the CLI.
type SyncResult struct {
	TableName string
	Rows      int
	Status    string
	ErrorMsg  string
}
