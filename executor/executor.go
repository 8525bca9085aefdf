package executor

import (
	"fmt"

	"github.com/minipg/minipg/plan"
)

// Execute runs a compiled plan and returns the qualifying rows with only
// the projected columns. The plan is read-only input; missing table files
// surface as ordinary file-open errors, not planner errors.
func Execute(p *plan.ExecutionPlan) ([]map[string]interface{}, error) {
	backend, err := backendFor(p.Source.Format)
	if err != nil {
		return nil, err
	}

	rows, err := backend.ReadAll(p.Source.StoragePath)
	if err != nil {
		return nil, err
	}

	results := make([]map[string]interface{}, 0, len(rows))
	for _, row := range rows {
		if p.Filter != nil {
			match, err := matchesFilter(row, p.Filter)
			if err != nil {
				return nil, err
			}
			if !match {
				continue
			}
		}

		projected, err := projectRow(row, p.Projection)
		if err != nil {
			return nil, fmt.Errorf("table %q: %w", p.Source.LogicalName, err)
		}
		results = append(results, projected)
	}
	return results, nil
}

// projectRow keeps only the requested columns. The wildcard projection
// passes the row through unchanged.
func projectRow(row map[string]interface{}, projection plan.Projection) (map[string]interface{}, error) {
	if projection.All {
		return row, nil
	}

	projected := make(map[string]interface{}, len(projection.Columns))
	for _, col := range projection.Columns {
		value, ok := row[col.Name]
		if !ok {
			return nil, fmt.Errorf("column %q not found", col.Name)
		}
		projected[col.Name] = value
	}
	return projected, nil
}
