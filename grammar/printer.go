package grammar

import (
	"strconv"
	"strings"
)

// String reprints the program one top-level form per line, each form on a
// single line. Two dumps that differ only in layout reprint identically.
func (p *Program) String() string {
	var b strings.Builder
	for _, e := range p.Exprs {
		e.write(&b)
		b.WriteString("\n")
	}
	return b.String()
}

// String reprints e on a single line with single spaces between items.
func (e *Expr) String() string {
	var b strings.Builder
	e.write(&b)
	return b.String()
}

func (e *Expr) write(b *strings.Builder) {
	switch {
	case e.Quote != nil:
		b.WriteString("'")
		e.Quote.write(b)
	case e.Vector != nil:
		writeSeq(b, "#(", e.Vector.Items, ")")
	case e.List != nil:
		writeSeq(b, "(", e.List.Items, ")")
	case e.Bracket != nil:
		writeSeq(b, "[", e.Bracket.Items, "]")
	case e.Brace != nil:
		writeSeq(b, "{", e.Brace.Items, "}")
	case e.Bool != nil:
		b.WriteString(*e.Bool)
	case e.Int != nil:
		b.WriteString(strconv.FormatInt(*e.Int, 10))
	case e.Atom != nil:
		b.WriteString(*e.Atom)
	}
}

func writeSeq(b *strings.Builder, opener string, items []*Expr, closer string) {
	b.WriteString(opener)
	for i, item := range items {
		if i > 0 {
			b.WriteString(" ")
		}
		item.write(b)
	}
	b.WriteString(closer)
}

// Equal reports whether two programs have the same structure.
func Equal(a, b *Program) bool {
	return a.String() == b.String()
}
