package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Program is a sequence of top-level forms, e.g. the dumps of several passes.
type Program struct {
	Pos   lexer.Position
	Exprs []*Expr `@@*`
}

// Expr is one datum of IR text. Exactly one field is set.
type Expr struct {
	Pos     lexer.Position
	EndPos  lexer.Position
	Quote   *Expr    `  "'" @@`
	Vector  *Vector  `| @@`
	List    *List    `| @@`
	Bracket *Bracket `| @@`
	Brace   *Brace   `| @@`
	Bool    *string  `| @Bool`
	Int     *int64   `| @Int`
	Atom    *string  `| @Atom`
}

// List is a parenthesized form such as (set! x 1).
type List struct {
	Pos   lexer.Position
	Items []*Expr `"(" @@* ")"`
}

// Bracket is a bracketed binding such as [x (alloc 16)].
type Bracket struct {
	Pos   lexer.Position
	Items []*Expr `"[" @@* "]"`
}

// Brace is a conflict set such as {a b}.
type Brace struct {
	Pos   lexer.Position
	Items []*Expr `"{" @@* "}"`
}

// Vector is a literal vector #(1 2 3).
type Vector struct {
	Pos   lexer.Position
	Items []*Expr `"#(" @@* ")"`
}

// Head returns the leading atom of a list form, or "" when e is not a list
// or does not start with an atom.
func (e *Expr) Head() string {
	if e.List == nil || len(e.List.Items) == 0 || e.List.Items[0].Atom == nil {
		return ""
	}
	return *e.List.Items[0].Atom
}

// Children returns the sub-expressions of a compound datum.
func (e *Expr) Children() []*Expr {
	switch {
	case e.Quote != nil:
		return []*Expr{e.Quote}
	case e.Vector != nil:
		return e.Vector.Items
	case e.List != nil:
		return e.List.Items
	case e.Bracket != nil:
		return e.Bracket.Items
	case e.Brace != nil:
		return e.Brace.Items
	}
	return nil
}
