package dialect

import (
	"fmt"
	"strings"
)

// GeneratePlaceholders is a helper function to create a slice of placeholder strings.
// It takes the number of placeholders needed and a function that returns the placeholder for a given index.
// It returns a comma-separated string of the generated placeholders.
func GeneratePlaceholders(count int, placeholderFunc func(int) string) string {
	placeholders := make([]string, count)
	for i := 0; i < count; i++ {
		placeholders[i] = placeholderFunc(i)
	}
	return strings.Join(placeholders, ", ")
}

// QuoteAll quotes every identifier in names with the dialect's quoting rule
// and joins them with commas.
func QuoteAll(d Dialect, names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = d.QuoteIdent(n)
	}
	return strings.Join(quoted, ", ")
}

// RenderCreateTable builds a CREATE TABLE statement from column specs.
// Column order is preserved; a composite PRIMARY KEY clause is appended when
// more than zero columns carry the primary-key flag. Shared by all dialects
// since the reference DDL shape is ANSI enough for every supported engine.
func RenderCreateTable(d Dialect, table string, cols []ColumnSpec) string {
	defs := make([]string, 0, len(cols)+1)
	var pks []string
	for _, c := range cols {
		def := d.QuoteIdent(c.Name) + " " + c.Type
		if !c.Nullable {
			def += " NOT NULL"
		}
		if c.Default != nil {
			def += " DEFAULT " + *c.Default
		}
		defs = append(defs, def)
		if c.PrimaryKey {
			pks = append(pks, d.QuoteIdent(c.Name))
		}
	}
	if len(pks) > 0 {
		defs = append(defs, fmt.Sprintf("PRIMARY KEY (%s)", strings.Join(pks, ", ")))
	}
	return fmt.Sprintf("CREATE TABLE %s (%s)", d.QuoteIdent(table), strings.Join(defs, ", "))
}

// DefaultGetSchemaName is a default implementation for Getting Schema Name (identity).
func DefaultGetSchemaName(input string) string {
	return input
}
