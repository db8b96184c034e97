package dialect

import (
	"fmt"
	"strings"
)

type PostgresDialect struct{}

func (d *PostgresDialect) GetTablesQuery(schema string) string {
	// use $1 placeholder
	return `SELECT TABLE_NAME FROM information_schema.TABLES WHERE TABLE_SCHEMA = $1 AND TABLE_TYPE = 'BASE TABLE' ORDER BY TABLE_NAME`
}

func (d *PostgresDialect) GetColumnsQuery(schema string) string {
	// Length is folded back into the declared type so varchar(n) round-trips.
	// Subquery used to fetch PRIMARY KEY membership correctly.
	return `SELECT 
    c.table_name, 
    c.column_name, 
    CASE WHEN c.character_maximum_length IS NOT NULL 
         THEN c.data_type || '(' || c.character_maximum_length || ')' 
         ELSE c.data_type END, 
    c.is_nullable, 
    (SELECT 'PRI' FROM information_schema.table_constraints tc 
     JOIN information_schema.key_column_usage kcu ON tc.constraint_name = kcu.constraint_name 
     WHERE tc.constraint_type = 'PRIMARY KEY' 
     AND kcu.table_schema = c.table_schema AND kcu.table_name = c.table_name AND kcu.column_name = c.column_name LIMIT 1) AS COLUMN_KEY,
    c.column_default
FROM information_schema.columns c
WHERE c.table_schema = $1 
ORDER BY c.table_name, c.ordinal_position`
}

func (d *PostgresDialect) GetForeignKeysQuery(schema string) string {
	return `SELECT kcu.table_name, kcu.constraint_name, kcu.column_name, ccu.table_name AS referenced_table_name, ccu.column_name AS referenced_column_name FROM information_schema.key_column_usage kcu JOIN information_schema.constraint_column_usage ccu ON kcu.constraint_name = ccu.constraint_name JOIN information_schema.table_constraints tc ON kcu.constraint_name = tc.constraint_name WHERE kcu.table_schema = $1 AND tc.constraint_type = 'FOREIGN KEY'`
}

func (d *PostgresDialect) CreateTableQuery(table string, cols []ColumnSpec) string {
	return RenderCreateTable(d, table, cols)
}

func (d *PostgresDialect) InsertQuery(table string, cols []string) string {
	vals := GeneratePlaceholders(len(cols), d.Placeholder)
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", d.QuoteIdent(table), QuoteAll(d, cols), vals)
}

func (d *PostgresDialect) TruncateQuery(table string) string {
	return fmt.Sprintf("DELETE FROM %s", d.QuoteIdent(table))
}

func (d *PostgresDialect) Placeholder(index int) string {
	return fmt.Sprintf("$%d", index+1)
}

func (d *PostgresDialect) QuoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func (d *PostgresDialect) GetSchemaName(input string) string {
	if input == "" {
		return "public"
	}
	return input
}
