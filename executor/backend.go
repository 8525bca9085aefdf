package executor

import (
	"fmt"

	"github.com/minipg/minipg/plan"
)

// Backend reads every record from one physical table file.
//
// Each row is a map keyed by column name. Backends load the whole file;
// tables in this store are expected to be modest.
type Backend interface {
	ReadAll(path string) ([]map[string]interface{}, error)
}

// backendFor picks the backend matching a descriptor's format.
func backendFor(format plan.Format) (Backend, error) {
	switch format {
	case plan.FormatJSONL, "":
		return jsonlBackend{}, nil
	case plan.FormatCSV:
		return csvBackend{}, nil
	case plan.FormatParquet:
		return parquetBackend{}, nil
	default:
		return nil, fmt.Errorf("unsupported storage format %q", format)
	}
}
