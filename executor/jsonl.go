package executor

import (
	"bufio"
	"bytes"
	"fmt"
	"os"

	"github.com/segmentio/encoding/json"
)

// maxRecordSize bounds a single jsonl record.
const maxRecordSize = 16 * 1024 * 1024

// jsonlBackend reads the store's native format: one JSON object per line,
// appended in insertion order.
type jsonlBackend struct{}

func (jsonlBackend) ReadAll(path string) ([]map[string]interface{}, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	rows := make([]map[string]interface{}, 0)
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxRecordSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		row := make(map[string]interface{})
		if err := json.Unmarshal(line, &row); err != nil {
			return nil, fmt.Errorf("%s:%d: bad record: %w", path, lineNo, err)
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return rows, nil
}
