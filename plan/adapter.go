package plan

import (
	"fmt"

	"github.com/minipg/minipg/token"
)

// Tree is a structurally normalized, read-only view of a statement's token
// tree. It carries no clause semantics; it only guarantees the root is a
// group and lets callers walk its children with noise tokens filtered out.
type Tree struct {
	root *token.Node
}

// NewTree wraps the root of a statement tree. The root must be a group
// node; anything else is a malformed tree.
func NewTree(root *token.Node) (*Tree, error) {
	if root == nil || root.Kind != token.KindGroup {
		return nil, fmt.Errorf("%w: statement root must be a group node", ErrMalformedTree)
	}
	return &Tree{root: root}, nil
}

// Children returns the root's immediate children in source order.
func (t *Tree) Children() []*token.Node {
	return t.root.Children
}

// Filtered returns the root's immediate children with the given kinds
// removed, preserving source order.
func (t *Tree) Filtered(skip ...token.Kind) []*token.Node {
	filtered := make([]*token.Node, 0, len(t.root.Children))
	for _, child := range t.root.Children {
		if skipKind(child.Kind, skip) {
			continue
		}
		filtered = append(filtered, child)
	}
	return filtered
}

// Statement returns the verbatim statement text the tree covers.
func (t *Tree) Statement() string {
	return t.root.Text
}

func skipKind(k token.Kind, skip []token.Kind) bool {
	for _, s := range skip {
		if k == s {
			return true
		}
	}
	return false
}
