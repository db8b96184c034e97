package engine

import (
	"log"

	"db-sync/internal/dialect"
	"db-sync/internal/endpoint"
	"db-sync/internal/schema"
)

// Syncer copies schema and data from a source endpoint to a target endpoint.
// It borrows both endpoints; connecting and closing them is the caller's job.
type Syncer struct {
	source *endpoint.Endpoint
	target *endpoint.Endpoint

	// OnRow, when set, is called once per row written during data sync.
	OnRow func()

	results []schema.SyncResult
}

func New(source, target *endpoint.Endpoint) *Syncer {
	return &Syncer{source: source, target: target}
}

// Results returns the per-table outcomes of the last operation.
func (s *Syncer) Results() []schema.SyncResult {
	return s.results
}

// SyncSchema creates every selected source table that is missing from the
// target, column-for-column (name, type, nullability, primary key, default).
// Existing target tables are left untouched; columns are never compared or
// reconciled. The first failed CREATE aborts the whole call. On success the
// target catalog is refreshed so later steps observe the new tables.
func (s *Syncer) SyncSchema(tables []string) error {
	s.results = nil

	src, err := s.source.Tables()
	if err != nil {
		return err
	}
	tgt, err := s.target.Tables()
	if err != nil {
		return err
	}

	d := s.target.Dialect()
	created := 0
	for _, t := range src.Filter(tables).Tables {
		if tgt.Has(t.Name) {
			log.Printf("Table %s already exists in target database", t.Name)
			s.results = append(s.results, schema.SyncResult{TableName: t.Name, Status: "EXISTS"})
			continue
		}

		log.Printf("Creating table %s in target database", t.Name)
		query := d.CreateTableQuery(t.Name, columnSpecs(t))
		if _, err := s.target.DB().Exec(query); err != nil {
			serr := &SchemaError{Table: t.Name, Err: err}
			s.results = append(s.results, schema.SyncResult{TableName: t.Name, Status: "FAILED", ErrorMsg: serr.Error()})
			return serr
		}
		s.results = append(s.results, schema.SyncResult{TableName: t.Name, Status: "CREATED"})
		created++
	}

	if err := s.target.Refresh(); err != nil {
		return err
	}
	log.Printf("Schema sync complete (%d tables created)", created)
	return nil
}

// SyncData copies all rows of every selected table present in both catalogs.
// The target catalog is refreshed first so tables created by a prior schema
// sync are visible. Tables missing from the target are skipped with a log
// line, not an error; the first hard failure aborts the call without rolling
// back tables already copied.
func (s *Syncer) SyncData(tables []string, truncate bool) error {
	s.results = nil

	src, err := s.source.Tables()
	if err != nil {
		return err
	}
	if err := s.target.Refresh(); err != nil {
		return err
	}
	tgt, err := s.target.Tables()
	if err != nil {
		return err
	}

	for _, t := range src.Filter(tables).Tables {
		if !tgt.Has(t.Name) {
			log.Printf("Table %s does not exist in target database, skipping", t.Name)
			s.results = append(s.results, schema.SyncResult{TableName: t.Name, Status: "SKIPPED"})
			continue
		}

		log.Printf("Syncing data for table %s", t.Name)
		rows, err := s.copyTable(t, truncate)
		if err != nil {
			terr := &TransferError{Table: t.Name, Err: err}
			s.results = append(s.results, schema.SyncResult{TableName: t.Name, Rows: rows, Status: "FAILED", ErrorMsg: terr.Error()})
			return terr
		}
		s.results = append(s.results, schema.SyncResult{TableName: t.Name, Rows: rows, Status: "OK"})
	}
	return nil
}

// SyncAll runs schema sync then data sync, short-circuiting if the schema
// step fails. Results cover both phases.
func (s *Syncer) SyncAll(tables []string, truncate bool) error {
	log.Println("Starting full database synchronization")

	if err := s.SyncSchema(tables); err != nil {
		log.Printf("Schema synchronization failed, aborting: %v", err)
		return err
	}
	schemaResults := s.results

	err := s.SyncData(tables, truncate)
	s.results = append(schemaResults, s.results...)
	if err != nil {
		log.Printf("Data synchronization failed: %v", err)
		return err
	}

	log.Println("Database synchronization completed successfully")
	return nil
}

func columnSpecs(t *schema.Table) []dialect.ColumnSpec {
	specs := make([]dialect.ColumnSpec, len(t.Columns))
	for i, c := range t.Columns {
		specs[i] = dialect.ColumnSpec{
			Name:       c.Name,
			Type:       c.DataType,
			Nullable:   c.IsNullable,
			PrimaryKey: c.IsPK,
			Default:    c.Default,
		}
	}
	return specs
}
