package token

import "strings"

// Kind identifies the lexical or structural role of a Node.
type Kind int

const (
	KindKeyword Kind = iota
	KindIdentifier
	KindIdentifierList
	KindComparison
	KindLiteral
	KindWhitespace
	KindPunctuation
	KindGroup
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindKeyword:
		return "keyword"
	case KindIdentifier:
		return "identifier"
	case KindIdentifierList:
		return "identifier_list"
	case KindComparison:
		return "comparison"
	case KindLiteral:
		return "literal"
	case KindWhitespace:
		return "whitespace"
	case KindPunctuation:
		return "punctuation"
	case KindGroup:
		return "group"
	default:
		return "unknown"
	}
}

// Node is one node of a parsed statement tree.
//
// Text holds the raw source slice the node covers. Only Group nodes have
// non-empty Children; all other kinds are atomic. Trees are read-only
// after construction.
type Node struct {
	Kind     Kind
	Text     string
	Children []*Node
}

// IsKeyword reports whether n is a keyword token whose text matches word,
// ignoring case. Matching is restricted to keyword-kind tokens so that an
// identifier or string literal containing a keyword can never be mistaken
// for a clause boundary.
func (n *Node) IsKeyword(word string) bool {
	return n.Kind == KindKeyword && strings.EqualFold(n.Text, word)
}

// IsPunctuation reports whether n is a punctuation token with the given text.
func (n *Node) IsPunctuation(text string) bool {
	return n.Kind == KindPunctuation && n.Text == text
}
