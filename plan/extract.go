package plan

import (
	"fmt"
	"strings"

	"github.com/minipg/minipg/token"
)

// Clauses bundles the clause tokens located in a statement.
type Clauses struct {
	Projection *token.Node // identifier list, single identifier, or the * wildcard
	Table      *token.Node // identifier naming the source table
	Predicate  *token.Node // WHERE group, nil when the statement has none
}

// extractor states for the single left-to-right scan.
const (
	scanStart = iota // before the SELECT keyword
	scanSelect       // collecting the projection, watching for FROM
	scanFrom         // expecting the table reference
	scanRest         // after the table, watching for the WHERE group
)

// ExtractClauses locates the projection, table and optional predicate
// clauses in one left-to-right scan over the tree's children.
//
// Clause boundaries are recognized by keyword role, never by matching raw
// token text: a column named "fromage" or a string literal containing
// "FROM" cannot be mistaken for a clause boundary. The scan is total — a
// statement with no FROM clause yields ErrMissingFromClause rather than
// any unrecoverable condition.
func ExtractClauses(tree *Tree) (Clauses, error) {
	var clauses Clauses
	sawFrom := false
	state := scanStart

	for _, child := range tree.Filtered(token.KindWhitespace) {
		switch state {
		case scanStart:
			if child.IsKeyword("select") {
				state = scanSelect
			}
		case scanSelect:
			if child.IsKeyword("from") {
				sawFrom = true
				state = scanFrom
				continue
			}
			if clauses.Projection == nil && isProjectionToken(child) {
				clauses.Projection = child
			}
		case scanFrom:
			if child.Kind == token.KindIdentifier {
				clauses.Table = child
				state = scanRest
			}
		case scanRest:
			if clauses.Predicate == nil && isWhereGroup(child) {
				clauses.Predicate = child
			}
		}
	}

	if state == scanStart {
		return Clauses{}, fmt.Errorf("%w: statement %q has no SELECT clause", ErrMissingProjection, strings.TrimSpace(tree.Statement()))
	}
	if !sawFrom {
		return Clauses{}, fmt.Errorf("%w: statement %q has no FROM keyword", ErrMissingFromClause, strings.TrimSpace(tree.Statement()))
	}
	if clauses.Projection == nil {
		return Clauses{}, fmt.Errorf("%w: nothing to project between SELECT and FROM", ErrMissingProjection)
	}
	if clauses.Table == nil {
		return Clauses{}, fmt.Errorf("%w: no table reference follows FROM", ErrMissingFromClause)
	}
	return clauses, nil
}

// isProjectionToken reports whether n can serve as the projection clause:
// an identifier list, a single identifier, or the * wildcard.
func isProjectionToken(n *token.Node) bool {
	return n.Kind == token.KindIdentifierList ||
		n.Kind == token.KindIdentifier ||
		n.IsPunctuation("*")
}

// isWhereGroup reports whether n is the materialized WHERE clause: a group
// whose first significant child is the WHERE keyword.
func isWhereGroup(n *token.Node) bool {
	if n.Kind != token.KindGroup {
		return false
	}
	for _, child := range n.Children {
		if child.Kind == token.KindWhitespace {
			continue
		}
		return child.IsKeyword("where")
	}
	return false
}
