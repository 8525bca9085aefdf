package executor

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// csvBackend reads comma-separated table files with a header row. Values
// are inferred: numbers become float64, true/false become bool, everything
// else stays a string.
type csvBackend struct{}

func (csvBackend) ReadAll(path string) ([]map[string]interface{}, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(records) == 0 {
		return []map[string]interface{}{}, nil
	}

	header := records[0]
	rows := make([]map[string]interface{}, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) != len(header) {
			return nil, fmt.Errorf("%s: record has %d fields, header has %d", path, len(record), len(header))
		}
		row := make(map[string]interface{}, len(header))
		for i, col := range header {
			row[col] = inferValue(record[i])
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func inferValue(s string) interface{} {
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return n
	}
	switch s {
	case "true":
		return true
	case "false":
		return false
	}
	return s
}
