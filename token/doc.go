// Package token turns raw SQL text into a statement token tree.
//
// The tree is the input contract for the planner: a Group root whose
// children are atomic tokens (keywords, identifiers, literals, whitespace,
// punctuation) plus a few coalesced constructs. Comma-separated identifier
// runs become a single IdentifierList token, a recognized
// "identifier = literal" span becomes a single Comparison token, and a
// trailing WHERE clause is materialized as one Group child. Only Group
// nodes carry children; every other kind is atomic and carries only its
// raw source text.
//
// Example usage:
//
//	root, err := token.Parse("SELECT name, age FROM users WHERE age = 30")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, child := range root.Children {
//	    fmt.Println(child.Kind, child.Text)
//	}
package token
