package server

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/encoding/json"

	"github.com/minipg/minipg/catalog"
	"github.com/minipg/minipg/executor"
	"github.com/minipg/minipg/plan"
	"github.com/minipg/minipg/token"
)

// Config holds the store location the server plans against.
type Config struct {
	DataDir   string
	Extension string
}

// Server handles query requests against one table store.
type Server struct {
	cfg      Config
	resolver *catalog.Resolver
	logger   *log.Logger
	started  time.Time
}

// New builds a server for the given store. A nil logger logs to stderr.
func New(cfg Config, logger *log.Logger) (*Server, error) {
	if logger == nil {
		logger = log.New(os.Stderr, "minipg: ", log.LstdFlags)
	}
	resolver, err := catalog.NewResolver(catalog.Config{DataDir: cfg.DataDir, Extension: cfg.Extension})
	if err != nil {
		return nil, err
	}
	return &Server{
		cfg:      cfg,
		resolver: resolver,
		logger:   logger,
		started:  time.Now(),
	}, nil
}

// Handler returns the server's route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/query", s.handleQuery)
	mux.HandleFunc("/status", s.handleStatus)
	return mux
}

type queryRequest struct {
	Query string `json:"query"`
}

type queryResponse struct {
	RequestID string                   `json:"request_id"`
	Plan      *plan.ExecutionPlan      `json:"plan"`
	Rows      []map[string]interface{} `json:"rows,omitempty"`
}

type errorResponse struct {
	RequestID string `json:"request_id"`
	Kind      string `json:"kind"`
	Error     string `json:"error"`
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	requestID := uuid.NewString()

	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Query == "" {
		s.writeError(w, requestID, http.StatusBadRequest, "bad_request", fmt.Errorf("body must be a JSON object with a non-empty \"query\" field"))
		return
	}

	root, err := token.Parse(req.Query)
	if err != nil {
		s.writeError(w, requestID, http.StatusBadRequest, "syntax_error", err)
		return
	}

	p, err := plan.Build(root, s.resolver)
	if err != nil {
		kind, status := classify(err)
		s.writeError(w, requestID, status, kind, err)
		return
	}

	resp := queryResponse{RequestID: requestID, Plan: p}
	if r.URL.Query().Get("plan") != "only" {
		rows, err := executor.Execute(p)
		if err != nil {
			if os.IsNotExist(err) {
				s.writeError(w, requestID, http.StatusNotFound, "table_not_found", err)
				return
			}
			s.writeError(w, requestID, http.StatusInternalServerError, "execution_error", err)
			return
		}
		resp.Rows = rows
	}

	s.logger.Printf("%s planned %q table=%s rows=%d", requestID, req.Query, p.Source.LogicalName, len(resp.Rows))
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"data_dir":       s.cfg.DataDir,
		"extension":      s.cfg.Extension,
		"uptime_seconds": int64(time.Since(s.started).Seconds()),
	})
}

// planErrorKinds maps each planning failure to the kind label clients see.
var planErrorKinds = []struct {
	err  error
	kind string
}{
	{plan.ErrMalformedTree, "malformed_tree"},
	{plan.ErrMissingFromClause, "missing_from_clause"},
	{plan.ErrMissingProjection, "missing_projection"},
	{plan.ErrInvalidTableName, "invalid_table_name"},
	{plan.ErrUnsupportedPredicate, "unsupported_predicate"},
	{plan.ErrInvalidLiteral, "invalid_literal"},
	{plan.ErrInvalidProjection, "invalid_projection"},
}

// classify maps a planning error to its kind label and HTTP status. Every
// taxonomy kind is a client error; anything unrecognized is a 500.
func classify(err error) (string, int) {
	for _, e := range planErrorKinds {
		if errors.Is(err, e.err) {
			return e.kind, http.StatusBadRequest
		}
	}
	return "internal_error", http.StatusInternalServerError
}

func (s *Server) writeError(w http.ResponseWriter, requestID string, status int, kind string, err error) {
	s.logger.Printf("%s %s: %v", requestID, kind, err)
	s.writeJSON(w, status, errorResponse{RequestID: requestID, Kind: kind, Error: err.Error()})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Printf("failed to write response: %v", err)
	}
}
