package schema_test

import (
	"db-sync/internal/schema"
	"testing"
)

func TestSortTablesByDependency_Simple(t *testing.T) {
	// Users -> Orders -> OrderItems
	tables := []*schema.Table{
		{Name: "OrderItems", Dependencies: []string{"Orders"}},
		{Name: "Orders", Dependencies: []string{"Users"}},
		{Name: "Users", Dependencies: []string{}},
	}

	sorted := schema.SortTablesByDependency(tables)

	if sorted[0].Name != "Users" {
		t.Errorf("Expected Users first, got %s", sorted[0].Name)
	}
	if sorted[1].Name != "Orders" {
		t.Errorf("Expected Orders second, got %s", sorted[1].Name)
	}
	if sorted[2].Name != "OrderItems" {
		t.Errorf("Expected OrderItems third, got %s", sorted[2].Name)
	}
}

func TestSortTablesByDependency_Circular(t *testing.T) {
	// A -> B -> C -> A (cycle), D -> C, E independent
	tables := []*schema.Table{
		{Name: "A", Dependencies: []string{"B"}},
		{Name: "B", Dependencies: []string{"C"}},
		{Name: "C", Dependencies: []string{"A"}},
		{Name: "D", Dependencies: []string{"C"}},
		{Name: "E", Dependencies: []string{}},
	}

	sorted := schema.SortTablesByDependency(tables)

	if len(sorted) != len(tables) {
		t.Fatalf("Expected %d tables, got %d", len(tables), len(sorted))
	}

	visited := make(map[string]bool)
	for _, tbl := range sorted {
		visited[tbl.Name] = true
	}
	for _, name := range []string{"A", "B", "C", "D", "E"} {
		if !visited[name] {
			t.Errorf("Table %s missing from sorted list", name)
		}
	}

	if sorted[0].Name != "E" {
		t.Errorf("Expected independent table E first, got %s", sorted[0].Name)
	}
}

func TestSortTablesByDependency_Deterministic(t *testing.T) {
	build := func() []*schema.Table {
		return []*schema.Table{
			{Name: "X", Dependencies: []string{"Y"}},
			{Name: "Y", Dependencies: []string{"X"}},
		}
	}

	first := schema.SortTablesByDependency(build())
	second := schema.SortTablesByDependency(build())

	for i := range first {
		if first[i].Name != second[i].Name {
			t.Fatalf("Sort not deterministic: %s vs %s at index %d", first[i].Name, second[i].Name, i)
		}
	}
}

func TestCatalogFilter(t *testing.T) {
	cat := schema.NewCatalog([]*schema.Table{
		{Name: "users"},
		{Name: "orders"},
	})

	filtered := cat.Filter([]string{"users", "missing"})
	if filtered.Len() != 1 {
		t.Fatalf("Expected 1 table after filter, got %d", filtered.Len())
	}
	if !filtered.Has("users") {
		t.Error("Expected users to survive the filter")
	}
	if filtered.Has("orders") {
		t.Error("orders should have been filtered out")
	}

	// nil filter means all tables
	if cat.Filter(nil).Len() != 2 {
		t.Error("nil filter should keep every table")
	}
}

func TestCatalogLookupIsCaseInsensitive(t *testing.T) {
	cat := schema.NewCatalog([]*schema.Table{{Name: "Users"}})

	if _, ok := cat.Get("USERS"); !ok {
		t.Error("Expected case-insensitive lookup to find Users")
	}
	if !cat.Has("users") {
		t.Error("Expected Has to be case-insensitive")
	}
}
