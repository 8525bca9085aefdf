package plan

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/minipg/minipg/token"
)

// TranslatePredicate converts a WHERE clause group into a typed filter
// condition. A nil group means the statement has no WHERE clause and
// yields a nil filter.
//
// The only supported shape is a single "identifier = literal" comparison.
// Any other operator, arity or combinator (AND, OR, IN, LIKE, nesting)
// fails with ErrUnsupportedPredicate.
func TranslatePredicate(group *token.Node) (*FilterCondition, error) {
	if group == nil {
		return nil, nil
	}

	clause := strings.TrimSpace(group.Text)
	var comparison *token.Node
	for _, child := range group.Children {
		switch {
		case child.Kind == token.KindWhitespace:
		case child.IsKeyword("where"):
		case child.IsPunctuation(";"):
		case child.Kind == token.KindComparison && comparison == nil:
			comparison = child
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedPredicate, clause)
		}
	}
	if comparison == nil {
		return nil, fmt.Errorf("%w: %q has no recognizable comparison", ErrUnsupportedPredicate, clause)
	}

	return translateComparison(comparison.Text)
}

// translateComparison re-scans the comparison's raw text into its three
// atoms and normalizes them into a FilterCondition.
func translateComparison(text string) (*FilterCondition, error) {
	atoms, err := token.Scan(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedPredicate, text)
	}

	parts := make([]*token.Node, 0, 3)
	for _, atom := range atoms {
		if atom.Kind != token.KindWhitespace {
			parts = append(parts, atom)
		}
	}
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedPredicate, text)
	}

	column, op, literal := parts[0], parts[1], parts[2]
	if column.Kind != token.KindIdentifier {
		return nil, fmt.Errorf("%w: left side of %q is not a column", ErrUnsupportedPredicate, text)
	}
	if !op.IsPunctuation("=") {
		return nil, fmt.Errorf("%w: operator %q is not supported", ErrUnsupportedPredicate, op.Text)
	}
	value, err := normalizeLiteral(literal)
	if err != nil {
		return nil, err
	}

	return &FilterCondition{Column: column.Text, Operator: OpEquals, Value: value}, nil
}

// normalizeLiteral strips quoting from string literals and parses numeric
// literals into float64.
func normalizeLiteral(n *token.Node) (interface{}, error) {
	if n.Kind != token.KindLiteral {
		return nil, fmt.Errorf("%w: right side %q is not a literal", ErrUnsupportedPredicate, n.Text)
	}

	text := n.Text
	if len(text) >= 2 && (text[0] == '\'' || text[0] == '"') && text[len(text)-1] == text[0] {
		return text[1 : len(text)-1], nil
	}

	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is neither a quoted string nor a number", ErrInvalidLiteral, text)
	}
	return value, nil
}
