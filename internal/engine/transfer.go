package engine

import (
	"fmt"
	"log"

	"db-sync/internal/dialect"
	"db-sync/internal/schema"
)

// copyTable copies all rows of one table from source to target. Row values
// are read in the source's column order and addressed to the target by
// column name, passed through without type coercion.
//
// Truncation is issued and committed before any source row is read. Inserts
// run inside a single transaction committed once at the end, so a failed
// table leaves no partial rows behind.
func (s *Syncer) copyTable(t *schema.Table, truncate bool) (int, error) {
	srcDialect := s.source.Dialect()
	tgtDialect := s.target.Dialect()

	if truncate {
		if _, err := s.target.DB().Exec(tgtDialect.TruncateQuery(t.Name)); err != nil {
			return 0, fmt.Errorf("failed to truncate: %w", err)
		}
		log.Printf("Truncated target table %s", t.Name)
	}

	cols := t.ColumnNames()
	selectQuery := fmt.Sprintf("SELECT %s FROM %s",
		dialect.QuoteAll(srcDialect, cols), srcDialect.QuoteIdent(t.Name))
	rows, err := s.source.DB().Query(selectQuery)
	if err != nil {
		return 0, fmt.Errorf("failed to read source rows: %w", err)
	}
	defer rows.Close()

	tx, err := s.target.DB().Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(tgtDialect.InsertQuery(t.Name, cols))
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	values := make([]interface{}, len(cols))
	ptrs := make([]interface{}, len(cols))
	for i := range values {
		ptrs[i] = &values[i]
	}

	count := 0
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return 0, fmt.Errorf("failed to scan source row: %w", err)
		}
		if _, err := stmt.Exec(values...); err != nil {
			return 0, fmt.Errorf("failed to insert row: %w", err)
		}
		count++
		if s.OnRow != nil {
			s.OnRow()
		}
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("error iterating source rows: %w", err)
	}

	if count == 0 {
		// Deferred rollback discards the empty transaction.
		log.Printf("No data to sync for table %s", t.Name)
		return 0, nil
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit: %w", err)
	}
	log.Printf("Synced %d rows for table %s", count, t.Name)
	return count, nil
}
