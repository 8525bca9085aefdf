package server

import (
	"bytes"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/segmentio/encoding/json"
)

// newTestServer builds a server over a temp store with one users table.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	dir := t.TempDir()
	records := `{"id": 1, "name": "Alice", "age": 30}
{"id": 2, "name": "Bob", "age": 25}
`
	if err := os.WriteFile(filepath.Join(dir, "users.jsonl"), []byte(records), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	srv, err := New(Config{DataDir: dir, Extension: ".jsonl"}, log.New(io.Discard, "", 0))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func postQuery(t *testing.T, ts *httptest.Server, path, query string) (int, map[string]interface{}) {
	t.Helper()
	body, err := json.Marshal(map[string]string{"query": query})
	if err != nil {
		t.Fatalf("failed to marshal request: %v", err)
	}
	resp, err := http.Post(ts.URL+path, "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST failed: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	decoded := make(map[string]interface{})
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp.StatusCode, decoded
}

func TestServer_Query(t *testing.T) {
	ts := newTestServer(t)

	status, body := postQuery(t, ts, "/query", "SELECT name FROM users WHERE age = 30")
	if status != http.StatusOK {
		t.Fatalf("status = %d, body = %v", status, body)
	}
	if body["request_id"] == "" {
		t.Error("response lacks request_id")
	}
	rows, ok := body["rows"].([]interface{})
	if !ok || len(rows) != 1 {
		t.Fatalf("rows = %v, want one row", body["rows"])
	}
	row := rows[0].(map[string]interface{})
	if row["name"] != "Alice" {
		t.Errorf("row = %v, want Alice", row)
	}
	if body["plan"] == nil {
		t.Error("response lacks the compiled plan")
	}
}

func TestServer_PlanOnly(t *testing.T) {
	ts := newTestServer(t)

	status, body := postQuery(t, ts, "/query?plan=only", "SELECT * FROM users")
	if status != http.StatusOK {
		t.Fatalf("status = %d, body = %v", status, body)
	}
	if _, ok := body["rows"]; ok {
		t.Errorf("plan-only response carries rows: %v", body)
	}
	planBody, ok := body["plan"].(map[string]interface{})
	if !ok {
		t.Fatalf("plan = %v", body["plan"])
	}
	source := planBody["source"].(map[string]interface{})
	if source["logical_name"] != "users" {
		t.Errorf("plan source = %v", source)
	}
}

func TestServer_ErrorMapping(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantKind   string
	}{
		{
			name:       "missing FROM",
			query:      "SELECT name",
			wantStatus: http.StatusBadRequest,
			wantKind:   "missing_from_clause",
		},
		{
			name:       "unsupported predicate",
			query:      "SELECT * FROM users WHERE age IN (25, 30)",
			wantStatus: http.StatusBadRequest,
			wantKind:   "unsupported_predicate",
		},
		{
			name:       "invalid table name",
			query:      "SELECT * FROM users.archive",
			wantStatus: http.StatusBadRequest,
			wantKind:   "invalid_table_name",
		},
		{
			name:       "missing projection",
			query:      "SELECT FROM users",
			wantStatus: http.StatusBadRequest,
			wantKind:   "missing_projection",
		},
		{
			name:       "table file absent",
			query:      "SELECT * FROM ghosts",
			wantStatus: http.StatusNotFound,
			wantKind:   "table_not_found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := postQuery(t, ts, "/query", tt.query)
			if status != tt.wantStatus {
				t.Errorf("status = %d, want %d (body %v)", status, tt.wantStatus, body)
			}
			if body["kind"] != tt.wantKind {
				t.Errorf("kind = %v, want %q", body["kind"], tt.wantKind)
			}
		})
	}
}

func TestServer_BadRequests(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Post(ts.URL+"/query", "application/json", bytes.NewReader([]byte("{")))
	if err != nil {
		t.Fatalf("POST failed: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("malformed body: status = %d, want 400", resp.StatusCode)
	}

	resp, err = http.Get(ts.URL + "/query")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("GET /query: status = %d, want 405", resp.StatusCode)
	}
}

func TestServer_Status(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/status")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	body := make(map[string]interface{})
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["data_dir"] == "" {
		t.Errorf("status body = %v", body)
	}
}
