package dialect

import (
	"fmt"
	"strings"
)

type OracleDialect struct{}

func (d *OracleDialect) GetTablesQuery(schema string) string {
	// Oracle doesn't have a "schema" string concept in quite the same way for
	// current user tables. USER_TABLES lists tables owned by the current user.
	// We include a dummy clause to consume the schema argument passed by
	// standard callers.
	return `SELECT TABLE_NAME FROM USER_TABLES WHERE :1 IS NOT NULL ORDER BY TABLE_NAME`
}

func (d *OracleDialect) GetColumnsQuery(schema string) string {
	// DATA_DEFAULT is a LONG column and cannot be scanned through database/sql
	// reliably, so defaults are reported as NULL on Oracle sources.
	return `
SELECT
    t.TABLE_NAME,
    t.COLUMN_NAME,
    t.DATA_TYPE || CASE WHEN t.DATA_TYPE IN ('VARCHAR2', 'NVARCHAR2', 'CHAR', 'NCHAR', 'RAW') THEN '(' || t.DATA_LENGTH || ')' ELSE '' END,
    CASE WHEN t.NULLABLE = 'Y' THEN 'YES' ELSE 'NO' END,
    CASE WHEN p.CONSTRAINT_NAME IS NOT NULL THEN 'PRI' ELSE '' END,
    NULL
FROM USER_TAB_COLUMNS t
LEFT JOIN (
    SELECT cc.TABLE_NAME, cc.COLUMN_NAME, cc.CONSTRAINT_NAME
    FROM USER_CONS_COLUMNS cc
    JOIN USER_CONSTRAINTS uc ON cc.CONSTRAINT_NAME = uc.CONSTRAINT_NAME
    WHERE uc.CONSTRAINT_TYPE = 'P'
) p ON t.TABLE_NAME = p.TABLE_NAME AND t.COLUMN_NAME = p.COLUMN_NAME
WHERE :1 IS NOT NULL
ORDER BY t.TABLE_NAME, t.COLUMN_ID`
}

func (d *OracleDialect) GetForeignKeysQuery(schema string) string {
	return `
SELECT
    c.TABLE_NAME,
    c.CONSTRAINT_NAME,
    cc.COLUMN_NAME,
    r.TABLE_NAME AS REF_TABLE,
    rcc.COLUMN_NAME AS REF_COLUMN
FROM USER_CONSTRAINTS c
JOIN USER_CONS_COLUMNS cc
    ON c.CONSTRAINT_NAME = cc.CONSTRAINT_NAME
    AND c.OWNER = cc.OWNER
JOIN USER_CONSTRAINTS r
    ON c.R_CONSTRAINT_NAME = r.CONSTRAINT_NAME
    AND c.R_OWNER = r.OWNER
JOIN USER_CONS_COLUMNS rcc
    ON r.CONSTRAINT_NAME = rcc.CONSTRAINT_NAME
    AND r.OWNER = rcc.OWNER
    AND cc.POSITION = rcc.POSITION
WHERE c.CONSTRAINT_TYPE = 'R'
AND :1 IS NOT NULL`
}

func (d *OracleDialect) CreateTableQuery(table string, cols []ColumnSpec) string {
	return RenderCreateTable(d, table, cols)
}

func (d *OracleDialect) InsertQuery(table string, cols []string) string {
	vals := GeneratePlaceholders(len(cols), d.Placeholder)
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", d.QuoteIdent(table), QuoteAll(d, cols), vals)
}

func (d *OracleDialect) TruncateQuery(table string) string {
	return fmt.Sprintf("DELETE FROM %s", d.QuoteIdent(table))
}

func (d *OracleDialect) Placeholder(index int) string {
	return fmt.Sprintf(":%d", index+1)
}

func (d *OracleDialect) QuoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func (d *OracleDialect) GetSchemaName(input string) string {
	// The USER_* views are already scoped to the connected account, so the
	// value only feeds the dummy bind in the introspection queries. Oracle
	// treats '' as NULL, which would make ":1 IS NOT NULL" false for every row.
	if input == "" {
		return "user"
	}
	return input
}
