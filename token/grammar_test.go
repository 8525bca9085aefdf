package token

import (
	"testing"
)

// kinds extracts the kind sequence of a node list, skipping whitespace.
func kinds(nodes []*Node) []Kind {
	var out []Kind
	for _, n := range nodes {
		if n.Kind != KindWhitespace {
			out = append(out, n.Kind)
		}
	}
	return out
}

func TestParse_TreeShape(t *testing.T) {
	tests := []struct {
		name      string
		statement string
		wantKinds []Kind
	}{
		{
			name:      "wildcard select",
			statement: "SELECT * FROM users",
			wantKinds: []Kind{KindKeyword, KindPunctuation, KindKeyword, KindIdentifier},
		},
		{
			name:      "single column",
			statement: "SELECT name FROM users",
			wantKinds: []Kind{KindKeyword, KindIdentifier, KindKeyword, KindIdentifier},
		},
		{
			name:      "column list coalesces",
			statement: "SELECT a, b, c FROM t",
			wantKinds: []Kind{KindKeyword, KindIdentifierList, KindKeyword, KindIdentifier},
		},
		{
			name:      "where clause becomes one group",
			statement: "SELECT * FROM users WHERE age = 30",
			wantKinds: []Kind{KindKeyword, KindPunctuation, KindKeyword, KindIdentifier, KindGroup},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := Parse(tt.statement)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if root.Kind != KindGroup {
				t.Fatalf("root kind = %v, want group", root.Kind)
			}
			if root.Text != tt.statement {
				t.Errorf("root text = %q, want verbatim statement", root.Text)
			}

			got := kinds(root.Children)
			if len(got) != len(tt.wantKinds) {
				t.Fatalf("child kinds = %v, want %v", got, tt.wantKinds)
			}
			for i := range got {
				if got[i] != tt.wantKinds[i] {
					t.Errorf("child %d kind = %v, want %v", i, got[i], tt.wantKinds[i])
				}
			}
		})
	}
}

func TestParse_OnlyGroupsHaveChildren(t *testing.T) {
	root, err := Parse("SELECT a, b FROM t WHERE x = 'from where'")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	var walk func(n *Node)
	walk = func(n *Node) {
		if n.Kind != KindGroup && len(n.Children) > 0 {
			t.Errorf("%v node %q has children", n.Kind, n.Text)
		}
		for _, child := range n.Children {
			walk(child)
		}
	}
	walk(root)
}

func TestParse_WhereGroup(t *testing.T) {
	root, err := Parse("SELECT * FROM users WHERE name = 'Alice'")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	var group *Node
	for _, child := range root.Children {
		if child.Kind == KindGroup {
			group = child
		}
	}
	if group == nil {
		t.Fatal("no WHERE group in tree")
	}
	if group.Text != "WHERE name = 'Alice'" {
		t.Errorf("group text = %q", group.Text)
	}

	var comparison *Node
	for _, child := range group.Children {
		if child.Kind == KindComparison {
			comparison = child
		}
	}
	if comparison == nil {
		t.Fatal("no comparison inside WHERE group")
	}
	if comparison.Text != "name = 'Alice'" {
		t.Errorf("comparison text = %q", comparison.Text)
	}
}

func TestParse_ComparisonCoalescing(t *testing.T) {
	tests := []struct {
		name      string
		statement string
		wantComp  int // comparisons anywhere in the tree
	}{
		{name: "equals", statement: "SELECT * FROM t WHERE a = 1", wantComp: 1},
		{name: "not equals", statement: "SELECT * FROM t WHERE a != 1", wantComp: 1},
		{name: "two comparisons around AND", statement: "SELECT * FROM t WHERE a = 1 AND b = 2", wantComp: 2},
		{name: "no comparison in IN clause", statement: "SELECT * FROM t WHERE a IN (1, 2)", wantComp: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := Parse(tt.statement)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			count := 0
			var walk func(n *Node)
			walk = func(n *Node) {
				if n.Kind == KindComparison {
					count++
				}
				for _, child := range n.Children {
					walk(child)
				}
			}
			walk(root)
			if count != tt.wantComp {
				t.Errorf("found %d comparisons, want %d", count, tt.wantComp)
			}
		})
	}
}

func TestIsKeyword(t *testing.T) {
	kw := &Node{Kind: KindKeyword, Text: "From"}
	if !kw.IsKeyword("FROM") || !kw.IsKeyword("from") {
		t.Error("keyword match should ignore case")
	}

	ident := &Node{Kind: KindIdentifier, Text: "FROM"}
	if ident.IsKeyword("FROM") {
		t.Error("identifier must never match as keyword, regardless of text")
	}
}
