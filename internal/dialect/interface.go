package dialect

// ColumnSpec describes one column of a table to be created on the target.
// Types are engine-native tokens carried over from introspection unchanged.
type ColumnSpec struct {
	Name       string
	Type       string
	Nullable   bool
	PrimaryKey bool
	Default    *string
}

// Dialect abstracts database-specific operations.
type Dialect interface {
	// Metadata Queries (Schema Introspection)
	GetTablesQuery(schema string) string
	GetColumnsQuery(schema string) string
	GetForeignKeysQuery(schema string) string

	// Query Generation
	CreateTableQuery(table string, cols []ColumnSpec) string
	InsertQuery(table string, cols []string) string
	TruncateQuery(table string) string
	Placeholder(index int) string // Returns ?, $1, @p1, etc.
	QuoteIdent(name string) string

	// Helpers
	GetSchemaName(input string) string
}
