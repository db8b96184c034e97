package dialect_test

import (
	"strings"
	"testing"

	"db-sync/internal/dialect"
)

func strPtr(s string) *string { return &s }

func TestInsertQuery(t *testing.T) {
	cols := []string{"id", "name"}
	cases := []struct {
		driver string
		want   string
	}{
		{"mysql", "INSERT INTO `users` (`id`, `name`) VALUES (?, ?)"},
		{"postgres", `INSERT INTO "users" ("id", "name") VALUES ($1, $2)`},
		{"sqlserver", "INSERT INTO [users] ([id], [name]) VALUES (@p1, @p2)"},
		{"oracle", `INSERT INTO "users" ("id", "name") VALUES (:1, :2)`},
		{"sqlite3", `INSERT INTO "users" ("id", "name") VALUES (?, ?)`},
	}

	for _, c := range cases {
		d := dialect.GetDialect(c.driver)
		if got := d.InsertQuery("users", cols); got != c.want {
			t.Errorf("%s InsertQuery = %q, want %q", c.driver, got, c.want)
		}
	}
}

func TestTruncateQueryUsesDelete(t *testing.T) {
	for _, driver := range []string{"mysql", "postgres", "sqlserver", "oracle", "sqlite3"} {
		d := dialect.GetDialect(driver)
		got := d.TruncateQuery("users")
		if got[:11] != "DELETE FROM" {
			t.Errorf("%s TruncateQuery = %q, expected DELETE FROM form", driver, got)
		}
	}
}

func TestCreateTableQuery(t *testing.T) {
	cols := []dialect.ColumnSpec{
		{Name: "id", Type: "INTEGER", Nullable: false, PrimaryKey: true},
		{Name: "name", Type: "TEXT", Nullable: false},
		{Name: "email", Type: "TEXT", Nullable: true},
		{Name: "status", Type: "TEXT", Nullable: true, Default: strPtr("'active'")},
	}

	d := dialect.GetDialect("sqlite3")
	got := d.CreateTableQuery("users", cols)
	want := `CREATE TABLE "users" ("id" INTEGER NOT NULL, "name" TEXT NOT NULL, "email" TEXT, "status" TEXT DEFAULT 'active', PRIMARY KEY ("id"))`
	if got != want {
		t.Errorf("CreateTableQuery = %q, want %q", got, want)
	}
}

func TestCreateTableQueryCompositePK(t *testing.T) {
	cols := []dialect.ColumnSpec{
		{Name: "order_id", Type: "int", PrimaryKey: true},
		{Name: "item_id", Type: "int", PrimaryKey: true},
		{Name: "qty", Type: "int", Nullable: true},
	}

	d := dialect.GetDialect("mysql")
	got := d.CreateTableQuery("order_items", cols)
	want := "CREATE TABLE `order_items` (`order_id` int NOT NULL, `item_id` int NOT NULL, `qty` int, PRIMARY KEY (`order_id`, `item_id`))"
	if got != want {
		t.Errorf("CreateTableQuery = %q, want %q", got, want)
	}
}

func TestQuoteIdentEscapes(t *testing.T) {
	if got := dialect.GetDialect("mysql").QuoteIdent("we`ird"); got != "`we``ird`" {
		t.Errorf("mysql QuoteIdent = %q", got)
	}
	if got := dialect.GetDialect("postgres").QuoteIdent(`we"ird`); got != `"we""ird"` {
		t.Errorf("postgres QuoteIdent = %q", got)
	}
	if got := dialect.GetDialect("sqlserver").QuoteIdent("we]ird"); got != "[we]]ird]" {
		t.Errorf("mssql QuoteIdent = %q", got)
	}
}

func TestGetSchemaNameDefaults(t *testing.T) {
	cases := map[string]string{
		"postgres":  "public",
		"sqlserver": "dbo",
		"oracle":    "user",
		"sqlite3":   "main",
	}
	for driver, want := range cases {
		if got := dialect.GetDialect(driver).GetSchemaName(""); got != want {
			t.Errorf("%s GetSchemaName(\"\") = %q, want %q", driver, got, want)
		}
	}
	if got := dialect.GetDialect("mysql").GetSchemaName("shop"); got != "shop" {
		t.Errorf("mysql GetSchemaName passthrough = %q", got)
	}
}

// The schema value is bound to the dummy predicates in the oracle and sqlite
// introspection queries (":1 IS NOT NULL", "?1 <> ''"). Oracle treats the
// empty string as NULL, which would filter out every catalog row, so the
// resolved name must never be empty on the non-mysql path.
func TestGetSchemaNameNonEmptyForDummyBinds(t *testing.T) {
	for _, driver := range []string{"postgres", "sqlserver", "oracle", "sqlite3"} {
		if dialect.GetDialect(driver).GetSchemaName("") == "" {
			t.Errorf("%s GetSchemaName(\"\") is empty", driver)
		}
	}
}

func TestMysqlColumnsQueryQuotesLiteralDefaults(t *testing.T) {
	q := dialect.GetDialect("mysql").GetColumnsQuery("shop")
	// information_schema stores 'active' as the bare string active; splicing
	// that into DDL yields DEFAULT active, which MySQL rejects.
	if !strings.Contains(q, "QUOTE(COLUMN_DEFAULT)") {
		t.Error("columns query must re-quote literal defaults")
	}
	if !strings.Contains(q, "DEFAULT_GENERATED") {
		t.Error("columns query must pass generated default expressions through")
	}
	if !strings.Contains(q, "CURRENT_TIMESTAMP") {
		t.Error("columns query must pass CURRENT_TIMESTAMP defaults through")
	}
}

func TestGeneratePlaceholders(t *testing.T) {
	d := dialect.GetDialect("postgres")
	if got := dialect.GeneratePlaceholders(3, d.Placeholder); got != "$1, $2, $3" {
		t.Errorf("GeneratePlaceholders = %q", got)
	}
}
