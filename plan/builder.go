package plan

import (
	"fmt"

	"github.com/minipg/minipg/token"
)

// Resolver maps a logical table name to its physical descriptor.
// Implementations must be pure: no I/O, identical input yields an
// identical descriptor.
type Resolver interface {
	Resolve(name string) (TableDescriptor, error)
}

// Build compiles a statement token tree into an ExecutionPlan.
//
// It normalizes the tree, extracts the clauses, resolves the table and
// translates the predicate, aborting on the first failure and returning it
// unchanged. The returned plan is independently owned by the caller and
// holds no reference into the tree.
func Build(root *token.Node, resolver Resolver) (*ExecutionPlan, error) {
	tree, err := NewTree(root)
	if err != nil {
		return nil, err
	}

	clauses, err := ExtractClauses(tree)
	if err != nil {
		return nil, err
	}

	source, err := resolver.Resolve(clauses.Table.Text)
	if err != nil {
		return nil, err
	}

	filter, err := TranslatePredicate(clauses.Predicate)
	if err != nil {
		return nil, err
	}

	projection, err := buildProjection(clauses.Projection)
	if err != nil {
		return nil, err
	}

	return &ExecutionPlan{
		Projection: projection,
		Source:     source,
		Filter:     filter,
		Statement:  tree.Statement(),
	}, nil
}

// buildProjection converts the projection clause token into an ordered
// column list, or the all-columns sentinel for the * wildcard.
func buildProjection(node *token.Node) (Projection, error) {
	switch node.Kind {
	case token.KindPunctuation: // the * wildcard
		return Projection{All: true}, nil

	case token.KindIdentifier:
		return Projection{Columns: []ColumnRef{{Name: node.Text, Position: 0}}}, nil

	case token.KindIdentifierList:
		columns, err := splitProjectionList(node.Text)
		if err != nil {
			return Projection{}, err
		}
		return Projection{Columns: columns}, nil

	default:
		return Projection{}, fmt.Errorf("%w: %q", ErrInvalidProjection, node.Text)
	}
}

// splitProjectionList re-scans an identifier list's raw text and checks
// that every comma-separated member is a plain identifier. Source order is
// preserved and duplicates are kept.
func splitProjectionList(text string) ([]ColumnRef, error) {
	atoms, err := token.Scan(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidProjection, text)
	}

	var columns []ColumnRef
	expectMember := true
	for _, atom := range atoms {
		if atom.Kind == token.KindWhitespace {
			continue
		}
		if expectMember {
			if atom.Kind != token.KindIdentifier {
				return nil, fmt.Errorf("%w: member %q is not a plain identifier", ErrInvalidProjection, atom.Text)
			}
			columns = append(columns, ColumnRef{Name: atom.Text, Position: len(columns)})
		} else if !atom.IsPunctuation(",") {
			return nil, fmt.Errorf("%w: unexpected %q in projection list", ErrInvalidProjection, atom.Text)
		}
		expectMember = !expectMember
	}
	if expectMember || len(columns) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidProjection, text)
	}
	return columns, nil
}
