package dialect

import (
	"fmt"
	"strings"
)

type MysqlDialect struct{}

func (d *MysqlDialect) GetTablesQuery(schema string) string {
	return `SELECT TABLE_NAME FROM information_schema.TABLES WHERE TABLE_SCHEMA = ? AND TABLE_TYPE = 'BASE TABLE' ORDER BY TABLE_NAME`
}

func (d *MysqlDialect) GetColumnsQuery(schema string) string {
	// COLUMN_TYPE carries the full declared type (e.g. varchar(255)) so the
	// target DDL can reproduce it verbatim. COLUMN_DEFAULT stores literal
	// defaults bare ('active', not '''active'''), so literals are re-quoted
	// with QUOTE() to yield a valid DDL expression; CURRENT_TIMESTAMP-class
	// defaults and 8.0 generated expressions (EXTRA carries
	// DEFAULT_GENERATED) pass through untouched.
	return `SELECT
    TABLE_NAME,
    COLUMN_NAME,
    COLUMN_TYPE,
    IS_NULLABLE,
    COLUMN_KEY,
    CASE
        WHEN COLUMN_DEFAULT IS NULL THEN NULL
        WHEN EXTRA LIKE '%DEFAULT_GENERATED%' THEN COLUMN_DEFAULT
        WHEN COLUMN_DEFAULT = 'CURRENT_TIMESTAMP' OR COLUMN_DEFAULT LIKE 'CURRENT_TIMESTAMP(%' THEN COLUMN_DEFAULT
        ELSE QUOTE(COLUMN_DEFAULT)
    END
FROM information_schema.COLUMNS WHERE TABLE_SCHEMA = ? ORDER BY TABLE_NAME, ORDINAL_POSITION`
}

func (d *MysqlDialect) GetForeignKeysQuery(schema string) string {
	return `SELECT TABLE_NAME, CONSTRAINT_NAME, COLUMN_NAME, REFERENCED_TABLE_NAME, REFERENCED_COLUMN_NAME FROM information_schema.KEY_COLUMN_USAGE WHERE TABLE_SCHEMA = ? AND REFERENCED_TABLE_NAME IS NOT NULL`
}

func (d *MysqlDialect) CreateTableQuery(table string, cols []ColumnSpec) string {
	return RenderCreateTable(d, table, cols)
}

func (d *MysqlDialect) InsertQuery(table string, cols []string) string {
	vals := GeneratePlaceholders(len(cols), d.Placeholder)
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", d.QuoteIdent(table), QuoteAll(d, cols), vals)
}

func (d *MysqlDialect) TruncateQuery(table string) string {
	// DELETE rather than TRUNCATE so the statement participates in the
	// surrounding transaction and works under FK constraints.
	return fmt.Sprintf("DELETE FROM %s", d.QuoteIdent(table))
}

func (d *MysqlDialect) Placeholder(index int) string {
	return "?"
}

func (d *MysqlDialect) QuoteIdent(name string) string {
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

func (d *MysqlDialect) GetSchemaName(input string) string {
	return DefaultGetSchemaName(input)
}
