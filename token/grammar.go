package token

import (
	"strings"

	"golang.org/x/exp/slices"
)

// comparisonOps are the operator spellings the grammar coalesces into a
// Comparison token. Which of them the planner supports is its own concern.
var comparisonOps = []string{"=", "!=", "<", ">", "<=", ">="}

// Parse lexes statement and assembles its token tree: a Group root whose
// children are the statement's tokens, with identifier lists, comparisons
// and the WHERE clause coalesced into single nodes.
func Parse(statement string) (*Node, error) {
	atoms, err := Scan(statement)
	if err != nil {
		return nil, err
	}
	nodes := groupComparisons(atoms)
	nodes = groupIdentifierLists(nodes)
	nodes = groupWhere(nodes)
	return &Node{Kind: KindGroup, Text: statement, Children: nodes}, nil
}

// groupComparisons folds every "identifier <op> literal-or-identifier" span
// into one atomic Comparison token covering the raw source slice.
func groupComparisons(nodes []*Node) []*Node {
	var out []*Node
	for i := 0; i < len(nodes); {
		if nodes[i].Kind == KindIdentifier {
			j, op := nextSignificant(nodes, i+1)
			if op != nil && op.Kind == KindPunctuation && slices.Contains(comparisonOps, op.Text) {
				k, rhs := nextSignificant(nodes, j+1)
				if rhs != nil && (rhs.Kind == KindLiteral || rhs.Kind == KindIdentifier) {
					out = append(out, &Node{Kind: KindComparison, Text: joinText(nodes[i : k+1])})
					i = k + 1
					continue
				}
			}
		}
		out = append(out, nodes[i])
		i++
	}
	return out
}

// groupIdentifierLists folds comma-separated runs of identifiers or
// literals into one IdentifierList token. A run needs at least one comma;
// lone identifiers stay atomic.
func groupIdentifierLists(nodes []*Node) []*Node {
	var out []*Node
	for i := 0; i < len(nodes); {
		if isListMember(nodes[i]) {
			end := i
			for {
				c, comma := nextSignificant(nodes, end+1)
				if comma == nil || !comma.IsPunctuation(",") {
					break
				}
				m, member := nextSignificant(nodes, c+1)
				if member == nil || !isListMember(member) {
					break
				}
				end = m
			}
			if end > i {
				out = append(out, &Node{Kind: KindIdentifierList, Text: joinText(nodes[i : end+1])})
				i = end + 1
				continue
			}
		}
		out = append(out, nodes[i])
		i++
	}
	return out
}

// groupWhere materializes the WHERE clause, when present, as a single
// Group child spanning from the WHERE keyword to the end of the statement.
func groupWhere(nodes []*Node) []*Node {
	for i, n := range nodes {
		if n.IsKeyword("where") {
			group := &Node{Kind: KindGroup, Text: joinText(nodes[i:]), Children: nodes[i:]}
			out := make([]*Node, 0, i+1)
			out = append(out, nodes[:i]...)
			return append(out, group)
		}
	}
	return nodes
}

func isListMember(n *Node) bool {
	return n.Kind == KindIdentifier || n.Kind == KindLiteral
}

// nextSignificant returns the first non-whitespace node at or after from,
// along with its index.
func nextSignificant(nodes []*Node, from int) (int, *Node) {
	for i := from; i < len(nodes); i++ {
		if nodes[i].Kind != KindWhitespace {
			return i, nodes[i]
		}
	}
	return -1, nil
}

func joinText(nodes []*Node) string {
	var b strings.Builder
	for _, n := range nodes {
		b.WriteString(n.Text)
	}
	return b.String()
}
