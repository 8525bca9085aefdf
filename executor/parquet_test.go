package executor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/segmentio/parquet-go"
)

// userRow is the fixture schema for parquet backend tests.
type userRow struct {
	ID   int64  `parquet:"id"`
	Name string `parquet:"name"`
	Age  int64  `parquet:"age"`
}

// writeParquet writes a parquet table file into dir.
func writeParquet(t *testing.T, dir, name string, rows []userRow) {
	t.Helper()
	f, err := os.Create(filepath.Join(dir, name+".parquet"))
	if err != nil {
		t.Fatalf("failed to create fixture: %v", err)
	}
	defer func() { _ = f.Close() }()

	writer := parquet.NewGenericWriter[userRow](f)
	if _, err := writer.Write(rows); err != nil {
		t.Fatalf("failed to write fixture rows: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close writer: %v", err)
	}
}

func TestExecute_Parquet(t *testing.T) {
	dir := t.TempDir()
	writeParquet(t, dir, "users", []userRow{
		{ID: 1, Name: "Alice", Age: 30},
		{ID: 2, Name: "Bob", Age: 25},
		{ID: 3, Name: "Carol", Age: 30},
	})

	tests := []struct {
		name      string
		statement string
		wantRows  int
	}{
		{name: "wildcard", statement: "SELECT * FROM users", wantRows: 3},
		{name: "numeric filter coerces int64", statement: "SELECT * FROM users WHERE age = 30", wantRows: 2},
		{name: "string filter", statement: "SELECT id FROM users WHERE name = 'Bob'", wantRows: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := compilePlan(t, dir, ".parquet", tt.statement)
			rows, err := Execute(p)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if len(rows) != tt.wantRows {
				t.Errorf("Execute() returned %d rows, want %d: %+v", len(rows), tt.wantRows, rows)
			}
		})
	}
}

func TestExecute_EmptyParquet(t *testing.T) {
	dir := t.TempDir()
	writeParquet(t, dir, "users", []userRow{})

	p := compilePlan(t, dir, ".parquet", "SELECT * FROM users")
	rows, err := Execute(p)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("Execute() returned %d rows from empty table", len(rows))
	}
}
