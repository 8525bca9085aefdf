// Package executor runs compiled execution plans against the file-backed
// table store.
//
// The executor performs the only I/O in the system: it opens the plan's
// resolved storage path with the backend matching the descriptor's format
// (jsonl, csv or parquet), applies the plan's filter, and yields only the
// projected columns. Plans are treated as read-only input.
package executor
