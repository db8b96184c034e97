package endpoint_test

import (
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"db-sync/internal/endpoint"

	_ "github.com/mattn/go-sqlite3"
)

func newTestDB(t *testing.T, name string) (string, *sql.DB) {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return path, db
}

func TestTablesBeforeConnect(t *testing.T) {
	ep := endpoint.New("sqlite://whatever.db", "source")
	if _, err := ep.Tables(); !errors.Is(err, endpoint.ErrNotConnected) {
		t.Errorf("Expected ErrNotConnected, got %v", err)
	}
	if err := ep.Refresh(); !errors.Is(err, endpoint.ErrNotConnected) {
		t.Errorf("Expected ErrNotConnected from Refresh, got %v", err)
	}
}

func TestConnectLoadsCatalog(t *testing.T) {
	path, db := newTestDB(t, "source.db")
	if _, err := db.Exec(`CREATE TABLE users (id INTEGER PRIMARY KEY, name TEXT NOT NULL, email TEXT)`); err != nil {
		t.Fatalf("failed to create table: %v", err)
	}

	ep := endpoint.New(fmt.Sprintf("sqlite://%s", path), "source")
	if err := ep.Connect(); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	defer ep.Close()

	cat, err := ep.Tables()
	if err != nil {
		t.Fatalf("Tables failed: %v", err)
	}
	tbl, ok := cat.Get("users")
	if !ok {
		t.Fatal("Expected users table in catalog")
	}
	if len(tbl.Columns) != 3 {
		t.Fatalf("Expected 3 columns, got %d", len(tbl.Columns))
	}
	if tbl.Columns[0].Name != "id" || !tbl.Columns[0].IsPK {
		t.Errorf("Expected first column id with PK flag, got %+v", tbl.Columns[0])
	}
	if tbl.Columns[1].Name != "name" || tbl.Columns[1].IsNullable {
		t.Errorf("Expected name NOT NULL, got %+v", tbl.Columns[1])
	}
	if tbl.Columns[2].Name != "email" || !tbl.Columns[2].IsNullable {
		t.Errorf("Expected email nullable, got %+v", tbl.Columns[2])
	}
}

func TestRefreshPicksUpNewTables(t *testing.T) {
	path, db := newTestDB(t, "source.db")
	if _, err := db.Exec(`CREATE TABLE first (id INTEGER PRIMARY KEY)`); err != nil {
		t.Fatalf("failed to create table: %v", err)
	}

	ep := endpoint.New(fmt.Sprintf("sqlite://%s", path), "target")
	if err := ep.Connect(); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	defer ep.Close()

	if _, err := db.Exec(`CREATE TABLE second (id INTEGER PRIMARY KEY)`); err != nil {
		t.Fatalf("failed to create table: %v", err)
	}

	cat, _ := ep.Tables()
	if cat.Has("second") {
		t.Fatal("Snapshot should not see tables created after the read")
	}

	if err := ep.Refresh(); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	cat, _ = ep.Tables()
	if !cat.Has("second") {
		t.Error("Expected refreshed catalog to include second")
	}
}

func TestTablesAfterClose(t *testing.T) {
	path, _ := newTestDB(t, "source.db")
	ep := endpoint.New(fmt.Sprintf("sqlite://%s", path), "source")
	if err := ep.Connect(); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	if err := ep.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if _, err := ep.Tables(); !errors.Is(err, endpoint.ErrNotConnected) {
		t.Errorf("Expected ErrNotConnected after Close, got %v", err)
	}
	// Close is safe to call twice
	if err := ep.Close(); err != nil {
		t.Errorf("Second Close returned error: %v", err)
	}
}
