// Package output renders query result rows in several textual formats.
//
// Supported formats:
//   - JSON Lines: one JSON object per row, suitable for piping
//   - CSV: header row plus one record per row
//   - table: aligned, human-readable table
//
// All formatters work with rows represented as []map[string]interface{},
// the shape the executor produces.
//
// Example usage:
//
//	formatter := output.NewJSONFormatter(os.Stdout)
//	if err := formatter.Format(rows); err != nil {
//	    log.Fatal(err)
//	}
package output
