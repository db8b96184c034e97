package endpoint

import (
	"database/sql"
	"errors"
	"fmt"
	"log"

	"db-sync/internal/dialect"
	"db-sync/internal/schema"
)

// ErrNotConnected is returned when the catalog is accessed before Connect.
// Hitting it indicates a usage bug in the caller, not a runtime condition.
var ErrNotConnected = errors.New("database not connected")

// Endpoint represents one live database taking part in a sync. The caller
// that creates an endpoint owns its lifecycle; the sync engine only borrows
// it and never closes it.
type Endpoint struct {
	Name       string // role label ("source", "target"), diagnostics only
	Descriptor string

	driver  string
	dsn     string
	schema  string
	db      *sql.DB
	dialect dialect.Dialect
	catalog *schema.Catalog
}

func New(descriptor, name string) *Endpoint {
	return &Endpoint{Name: name, Descriptor: descriptor}
}

// Connect opens the underlying handle, verifies it with a ping, resolves the
// engine's schema name and loads the initial catalog snapshot.
func (e *Endpoint) Connect() error {
	driver, dsn, err := ParseDescriptor(e.Descriptor)
	if err != nil {
		return fmt.Errorf("endpoint %s: %w", e.Name, err)
	}
	e.driver = driver
	e.dsn = dsn
	e.dialect = dialect.GetDialect(driver)

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return fmt.Errorf("endpoint %s: failed to open db: %w", e.Name, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("endpoint %s: failed to connect: %w", e.Name, err)
	}
	e.db = db

	// Fetch current database/schema name for the analyzer
	if driver == "mysql" {
		if err := db.QueryRow("SELECT DATABASE()").Scan(&e.schema); err != nil {
			e.drop()
			return fmt.Errorf("endpoint %s: failed to get database name: %w", e.Name, err)
		}
		if e.schema == "" {
			e.drop()
			return fmt.Errorf("endpoint %s: no database selected in DSN", e.Name)
		}
	} else {
		e.schema = e.dialect.GetSchemaName("")
	}

	if err := e.Refresh(); err != nil {
		e.drop()
		return err
	}

	log.Printf("Connected to %s database (%s)", e.Name, driver)
	return nil
}

// Tables returns the cached catalog snapshot.
func (e *Endpoint) Tables() (*schema.Catalog, error) {
	if e.db == nil || e.catalog == nil {
		return nil, fmt.Errorf("endpoint %s: %w", e.Name, ErrNotConnected)
	}
	return e.catalog, nil
}

// Refresh replaces the catalog snapshot wholesale with a fresh read.
func (e *Endpoint) Refresh() error {
	if e.db == nil {
		return fmt.Errorf("endpoint %s: %w", e.Name, ErrNotConnected)
	}
	cat, err := schema.Analyze(e.db, e.dialect, e.schema)
	if err != nil {
		return fmt.Errorf("endpoint %s: %w", e.Name, err)
	}
	e.catalog = cat
	return nil
}

func (e *Endpoint) DB() *sql.DB {
	return e.db
}

func (e *Endpoint) Dialect() dialect.Dialect {
	return e.dialect
}

func (e *Endpoint) Driver() string {
	return e.driver
}

// Close releases the underlying handle. Safe to call on an endpoint that
// never connected.
func (e *Endpoint) Close() error {
	if e.db == nil {
		return nil
	}
	err := e.db.Close()
	e.db = nil
	e.catalog = nil
	log.Printf("Closed connection to %s database", e.Name)
	return err
}

func (e *Endpoint) drop() {
	if e.db != nil {
		e.db.Close()
		e.db = nil
	}
	e.catalog = nil
}
