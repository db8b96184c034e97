package dialect

import (
	"fmt"
	"strings"
)

type SQLiteDialect struct{}

// SQLite has no schema argument for introspection; the dummy ?1 clause
// consumes the bind parameter standard callers always pass (same trick the
// Oracle dialect uses for USER_ tables).

func (d *SQLiteDialect) GetTablesQuery(schema string) string {
	return `SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' AND ?1 <> '' ORDER BY name`
}

func (d *SQLiteDialect) GetColumnsQuery(schema string) string {
	// pragma_table_info is the table-valued form of PRAGMA table_info, which
	// lets all columns of all tables come back in one ordered result set.
	return `SELECT m.name, p.name, p.type,
    CASE WHEN p."notnull" = 1 THEN 'NO' ELSE 'YES' END,
    CASE WHEN p.pk > 0 THEN 'PRI' ELSE '' END,
    p.dflt_value
FROM sqlite_master m
JOIN pragma_table_info(m.name) p
WHERE m.type = 'table' AND m.name NOT LIKE 'sqlite_%' AND ?1 <> ''
ORDER BY m.name, p.cid`
}

func (d *SQLiteDialect) GetForeignKeysQuery(schema string) string {
	return `SELECT m.name, 'fk_' || m.name || '_' || f.id, f."from", f."table", f."to"
FROM sqlite_master m
JOIN pragma_foreign_key_list(m.name) f
WHERE m.type = 'table' AND m.name NOT LIKE 'sqlite_%' AND ?1 <> ''
ORDER BY m.name, f.id, f.seq`
}

func (d *SQLiteDialect) CreateTableQuery(table string, cols []ColumnSpec) string {
	return RenderCreateTable(d, table, cols)
}

func (d *SQLiteDialect) InsertQuery(table string, cols []string) string {
	vals := GeneratePlaceholders(len(cols), d.Placeholder)
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", d.QuoteIdent(table), QuoteAll(d, cols), vals)
}

func (d *SQLiteDialect) TruncateQuery(table string) string {
	// SQLite has no TRUNCATE statement.
	return fmt.Sprintf("DELETE FROM %s", d.QuoteIdent(table))
}

func (d *SQLiteDialect) Placeholder(index int) string {
	return "?"
}

func (d *SQLiteDialect) QuoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func (d *SQLiteDialect) GetSchemaName(input string) string {
	if input == "" {
		return "main"
	}
	return input
}
