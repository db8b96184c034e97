package schema

import (
	"database/sql"
	"db-sync/internal/dialect"
	"fmt"
	"strings"
)

// Analyze introspects every base table visible to the connection and returns
// a fresh catalog snapshot. It is safe to call repeatedly on the same
// connection; the syncer relies on that to refresh the target after DDL.
func Analyze(db *sql.DB, d dialect.Dialect, schemaName string) (*Catalog, error) {
	target := d.GetSchemaName(schemaName)

	// Use map for O(1) lookups, with normalized keys for case-insensitive
	// matching (Oracle support)
	tableMap := make(map[string]*Table)
	var tables []*Table

	// --- Step 1: Fetch Tables ---
	rows, err := db.Query(d.GetTablesQuery(target), target)
	if err != nil {
		return nil, fmt.Errorf("failed to query tables: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan table name: %w", err)
		}
		t := &Table{Name: name, Dependencies: []string{}}
		tableMap[strings.ToUpper(name)] = t
		tables = append(tables, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tables: %w", err)
	}

	// --- Step 2: Fetch Columns ---
	colRows, err := db.Query(d.GetColumnsQuery(target), target)
	if err != nil {
		return nil, fmt.Errorf("failed to query columns: %w", err)
	}
	defer colRows.Close()

	for colRows.Next() {
		var tName, cName, dType, isNull, cKey, cDefault sql.NullString

		if err := colRows.Scan(&tName, &cName, &dType, &isNull, &cKey, &cDefault); err != nil {
			return nil, fmt.Errorf("failed to scan column (table: %s): %w", tName.String, err)
		}

		if !tName.Valid || !cName.Valid {
			continue // Skip invalid rows
		}

		t, ok := tableMap[strings.ToUpper(tName.String)]
		if !ok {
			continue
		}

		col := &Column{
			Name:       cName.String,
			DataType:   dType.String,
			IsNullable: isNull.String == "YES",
			IsPK:       strings.Contains(cKey.String, "PRI"),
		}
		if cDefault.Valid {
			v := cDefault.String
			col.Default = &v
		}
		t.Columns = append(t.Columns, col)
	}
	if err := colRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating columns: %w", err)
	}

	// --- Step 3: Fetch Foreign Keys ---
	fkRows, err := db.Query(d.GetForeignKeysQuery(target), target)
	if err != nil {
		return nil, fmt.Errorf("failed to query foreign keys: %w", err)
	}
	defer fkRows.Close()

	for fkRows.Next() {
		var tName, cConst, cName, rTable, rCol sql.NullString
		if err := fkRows.Scan(&tName, &cConst, &cName, &rTable, &rCol); err != nil {
			return nil, fmt.Errorf("failed to scan foreign key: %w", err)
		}

		if tName.Valid && rTable.Valid && tName.String != rTable.String {
			tKey := strings.ToUpper(tName.String)
			rKey := strings.ToUpper(rTable.String)

			if t, ok := tableMap[tKey]; ok {
				// Only record references to tables we can see; external refs
				// cannot influence ordering anyway.
				if ref, exists := tableMap[rKey]; exists {
					t.Dependencies = append(t.Dependencies, ref.Name)
					t.ForeignKeys = append(t.ForeignKeys, &ForeignKey{
						Column:    cName.String,
						RefTable:  ref.Name,
						RefColumn: rCol.String,
					})
				}
			}
		}
	}
	if err := fkRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating foreign keys: %w", err)
	}

	return NewCatalog(SortTablesByDependency(tables)), nil
}

// SortTablesByDependency orders tables so referenced tables come before the
// tables referencing them. Cycles are broken by picking the table with the
// fewest unmet dependencies, name as tie-breaker, so the order stays
// deterministic.
func SortTablesByDependency(tables []*Table) []*Table {
	var sorted []*Table
	processed := make(map[string]bool)

	for len(sorted) < len(tables) {
		added := false

		// Pass 1: Add tables whose dependencies are fully satisfied
		for _, t := range tables {
			if processed[t.Name] {
				continue
			}

			allDepsProcessed := true
			for _, depName := range t.Dependencies {
				if !processed[depName] {
					allDepsProcessed = false
					break
				}
			}

			if allDepsProcessed {
				sorted = append(sorted, t)
				processed[t.Name] = true
				added = true
			}
		}

		// Pass 2: If no table was added, the remaining tables form a cycle.
		if !added {
			var best *Table
			bestUnmet := 0

			for _, t := range tables {
				if processed[t.Name] {
					continue
				}

				unmet := 0
				for _, dep := range t.Dependencies {
					if !processed[dep] {
						unmet++
					}
				}

				if best == nil || unmet < bestUnmet || (unmet == bestUnmet && t.Name < best.Name) {
					best = t
					bestUnmet = unmet
				}
			}

			if best == nil {
				break
			}
			sorted = append(sorted, best)
			processed[best.Name] = true
		}
	}

	return sorted
}
