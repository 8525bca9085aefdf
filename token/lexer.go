package token

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/exp/slices"
)

// keywords are the words the lexer tags with the keyword role. Everything
// else that looks like a word is an identifier.
var keywords = []string{
	"select",
	"from",
	"where",
	"and",
	"or",
	"not",
	"in",
	"like",
	"between",
	"is",
	"null",
	"order",
	"by",
	"group",
	"limit",
	"offset",
}

// lexer scans SQL statement text into atomic tokens.
type lexer struct {
	input string
	pos   int
}

// Scan splits input into its atomic tokens, preserving whitespace runs and
// the raw text of every token (string literals keep their quotes).
func Scan(input string) ([]*Node, error) {
	l := &lexer{input: input}
	var tokens []*Node
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		if tok == nil {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}

func (l *lexer) next() (*Node, error) {
	if l.pos >= len(l.input) {
		return nil, nil
	}

	ch := rune(l.input[l.pos])
	switch {
	case unicode.IsSpace(ch):
		return l.readWhitespace(), nil
	case ch == '\'' || ch == '"':
		return l.readString(byte(ch))
	case ch == '=' || ch == ',' || ch == '(' || ch == ')' || ch == '*' || ch == ';':
		l.pos++
		return &Node{Kind: KindPunctuation, Text: string(ch)}, nil
	case ch == '<' || ch == '>' || ch == '!':
		return l.readOperator()
	case unicode.IsDigit(ch) || (ch == '-' && l.pos+1 < len(l.input) && unicode.IsDigit(rune(l.input[l.pos+1]))):
		return l.readNumber(), nil
	case unicode.IsLetter(ch) || ch == '_':
		return l.readWord(), nil
	default:
		return nil, fmt.Errorf("unexpected character %q at offset %d", ch, l.pos)
	}
}

// readWhitespace consumes a run of whitespace characters.
func (l *lexer) readWhitespace() *Node {
	start := l.pos
	for l.pos < len(l.input) && unicode.IsSpace(rune(l.input[l.pos])) {
		l.pos++
	}
	return &Node{Kind: KindWhitespace, Text: l.input[start:l.pos]}
}

// readString consumes a quoted literal. The raw text keeps its quoting
// delimiters; stripping them is the predicate translator's job.
func (l *lexer) readString(quote byte) (*Node, error) {
	start := l.pos
	l.pos++ // opening quote
	for l.pos < len(l.input) && l.input[l.pos] != quote {
		l.pos++
	}
	if l.pos >= len(l.input) {
		return nil, fmt.Errorf("unterminated string literal at offset %d", start)
	}
	l.pos++ // closing quote
	return &Node{Kind: KindLiteral, Text: l.input[start:l.pos]}, nil
}

// readOperator consumes <, >, <=, >= or !=.
func (l *lexer) readOperator() (*Node, error) {
	start := l.pos
	l.pos++
	if l.pos < len(l.input) && l.input[l.pos] == '=' {
		l.pos++
	} else if l.input[start] == '!' {
		return nil, fmt.Errorf("unexpected character '!' at offset %d", start)
	}
	return &Node{Kind: KindPunctuation, Text: l.input[start:l.pos]}, nil
}

// readNumber consumes a numeric literal, including an optional leading
// minus sign and decimal points. Malformed numbers such as "1.2.3" are
// scanned whole and rejected later during literal normalization.
func (l *lexer) readNumber() *Node {
	start := l.pos
	if l.input[l.pos] == '-' {
		l.pos++
	}
	for l.pos < len(l.input) && (unicode.IsDigit(rune(l.input[l.pos])) || l.input[l.pos] == '.') {
		l.pos++
	}
	return &Node{Kind: KindLiteral, Text: l.input[start:l.pos]}
}

// readWord consumes an identifier or keyword. Dots are allowed so that
// qualified names stay one token.
func (l *lexer) readWord() *Node {
	start := l.pos
	for l.pos < len(l.input) {
		ch := rune(l.input[l.pos])
		if !unicode.IsLetter(ch) && !unicode.IsDigit(ch) && ch != '_' && ch != '.' {
			break
		}
		l.pos++
	}
	word := l.input[start:l.pos]
	if slices.Contains(keywords, strings.ToLower(word)) {
		return &Node{Kind: KindKeyword, Text: word}
	}
	return &Node{Kind: KindIdentifier, Text: word}
}
