package dialect

import (
	"fmt"
	"strings"
)

type MSSQLDialect struct{}

// MSSQL Driver (go-mssqldb) prefers @p1, @p2 named parameters over ?
// especially when prepared statements are involved.

func (d *MSSQLDialect) GetTablesQuery(schema string) string {
	return `SELECT TABLE_NAME FROM INFORMATION_SCHEMA.TABLES WHERE TABLE_SCHEMA = @p1 AND TABLE_TYPE = 'BASE TABLE' ORDER BY TABLE_NAME`
}

func (d *MSSQLDialect) GetColumnsQuery(schema string) string {
	// DATA_TYPE is widened with CHARACTER_MAXIMUM_LENGTH so nvarchar(n)
	// round-trips; -1 means MAX.
	return `
		SELECT 
			c.TABLE_NAME, 
			c.COLUMN_NAME, 
			CASE 
				WHEN c.CHARACTER_MAXIMUM_LENGTH = -1 THEN c.DATA_TYPE + '(max)'
				WHEN c.CHARACTER_MAXIMUM_LENGTH IS NOT NULL THEN c.DATA_TYPE + '(' + CAST(c.CHARACTER_MAXIMUM_LENGTH AS VARCHAR(10)) + ')'
				ELSE c.DATA_TYPE 
			END,
			c.IS_NULLABLE, 
			CASE WHEN pk.COLUMN_NAME IS NOT NULL THEN 'PRI' ELSE '' END AS COLUMN_KEY,
			c.COLUMN_DEFAULT
		FROM INFORMATION_SCHEMA.COLUMNS c
		LEFT JOIN (
			SELECT kcu.TABLE_NAME, kcu.COLUMN_NAME
			FROM INFORMATION_SCHEMA.TABLE_CONSTRAINTS tc
			JOIN INFORMATION_SCHEMA.KEY_COLUMN_USAGE kcu 
				ON tc.CONSTRAINT_NAME = kcu.CONSTRAINT_NAME
			WHERE tc.CONSTRAINT_TYPE = 'PRIMARY KEY' AND tc.TABLE_SCHEMA = @p1
		) pk ON c.TABLE_NAME = pk.TABLE_NAME AND c.COLUMN_NAME = pk.COLUMN_NAME
		WHERE c.TABLE_SCHEMA = @p1 
		ORDER BY c.TABLE_NAME, c.ORDINAL_POSITION
	`
}

func (d *MSSQLDialect) GetForeignKeysQuery(schema string) string {
	return `SELECT KCU1.TABLE_NAME, KCU1.CONSTRAINT_NAME, KCU1.COLUMN_NAME, KCU2.TABLE_NAME AS REF_TABLE, KCU2.COLUMN_NAME AS REF_COLUMN FROM INFORMATION_SCHEMA.REFERENTIAL_CONSTRAINTS RC JOIN INFORMATION_SCHEMA.KEY_COLUMN_USAGE KCU1 ON RC.CONSTRAINT_NAME = KCU1.CONSTRAINT_NAME JOIN INFORMATION_SCHEMA.KEY_COLUMN_USAGE KCU2 ON RC.UNIQUE_CONSTRAINT_NAME = KCU2.CONSTRAINT_NAME WHERE KCU1.TABLE_SCHEMA = @p1`
}

func (d *MSSQLDialect) CreateTableQuery(table string, cols []ColumnSpec) string {
	return RenderCreateTable(d, table, cols)
}

func (d *MSSQLDialect) InsertQuery(table string, cols []string) string {
	vals := GeneratePlaceholders(len(cols), d.Placeholder)
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", d.QuoteIdent(table), QuoteAll(d, cols), vals)
}

func (d *MSSQLDialect) TruncateQuery(table string) string {
	// DELETE instead of TRUNCATE to avoid FK issues on MSSQL.
	return fmt.Sprintf("DELETE FROM %s", d.QuoteIdent(table))
}

func (d *MSSQLDialect) Placeholder(index int) string {
	return fmt.Sprintf("@p%d", index+1)
}

func (d *MSSQLDialect) QuoteIdent(name string) string {
	return "[" + strings.ReplaceAll(name, "]", "]]") + "]"
}

func (d *MSSQLDialect) GetSchemaName(input string) string {
	if input == "" {
		return "dbo"
	}
	return input
}
