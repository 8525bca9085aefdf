package plan

import (
	"fmt"
	"regexp"
)

// Operator is a predicate comparison operator. Equals is the only operator
// this planner supports; the closed enum leaves room for more.
type Operator int

const (
	// OpEquals is the = comparison.
	OpEquals Operator = iota
)

// String returns the SQL spelling of the operator.
func (o Operator) String() string {
	switch o {
	case OpEquals:
		return "="
	default:
		return fmt.Sprintf("operator(%d)", int(o))
	}
}

// MarshalJSON renders the operator as its SQL spelling.
func (o Operator) MarshalJSON() ([]byte, error) {
	if o != OpEquals {
		return nil, fmt.Errorf("cannot serialize unknown operator %d", int(o))
	}
	return []byte(`"="`), nil
}

// UnmarshalJSON parses the SQL spelling back into an Operator.
func (o *Operator) UnmarshalJSON(data []byte) error {
	if string(data) != `"="` {
		return fmt.Errorf("unknown operator %s", data)
	}
	*o = OpEquals
	return nil
}

// Format identifies the physical encoding of a table file.
type Format string

const (
	// FormatJSONL is the record-per-line JSON encoding, the store's native format.
	FormatJSONL Format = "jsonl"

	// FormatCSV is comma-separated records with a header row.
	FormatCSV Format = "csv"

	// FormatParquet is Apache Parquet.
	FormatParquet Format = "parquet"
)

// ColumnRef is one column requested by the projection. Position is its
// ordinal in the SELECT list; source order is preserved and duplicates are
// kept.
type ColumnRef struct {
	Name     string `json:"name"`
	Position int    `json:"position"`
}

// TableDescriptor is the resolved physical identity of a logical table.
// StoragePath is a pure function of the logical name and the resolver's
// configuration; whether the file exists is the executor's concern.
type TableDescriptor struct {
	LogicalName string `json:"logical_name"`
	StoragePath string `json:"storage_path"`
	Format      Format `json:"format"`
}

// FilterCondition is the typed WHERE predicate. Value is a string with its
// quoting stripped, or a float64 for numeric literals. A plan either has a
// fully populated filter or none at all.
type FilterCondition struct {
	Column   string      `json:"column"`
	Operator Operator    `json:"operator"`
	Value    interface{} `json:"value"`
}

// Projection is the ordered set of requested columns. All is the sentinel
// for SELECT *; it is distinct from an empty column list so that "no
// columns" and "every column" can never be confused.
type Projection struct {
	All     bool        `json:"all,omitempty"`
	Columns []ColumnRef `json:"columns,omitempty"`
}

// ExecutionPlan is the planner's output artifact. It is immutable once
// built, owns no reference back into the token tree, and carries the
// verbatim statement text for audit and debugging.
type ExecutionPlan struct {
	Projection Projection       `json:"projection"`
	Source     TableDescriptor  `json:"source"`
	Filter     *FilterCondition `json:"filter,omitempty"`
	Statement  string           `json:"statement"`
}

var identPattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// ValidIdentifier reports whether name satisfies the identifier grammar
// (letters, digits, underscore, non-empty). Table names must pass this
// check before a storage path is derived from them, which also rules out
// path traversal through the logical name.
func ValidIdentifier(name string) bool {
	return identPattern.MatchString(name)
}
