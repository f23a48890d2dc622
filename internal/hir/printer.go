package hir

import (
	"scmc/internal/form"
)

// Print returns the canonical text of a high-level tree.
func Print(n Node) string {
	return form.Render(n)
}

func (l *Letrec) Print(p *form.Printer) {
	p.WriteString("(letrec (")
	printBindings(p, l.Bindings, "\n")
	p.WriteString(")\n ")
	p.Print(l.Body)
	p.WriteString(")")
}

func (l *Let) Print(p *form.Printer) {
	p.WriteString("(let (")
	printBindings(p, l.Bindings, " ")
	p.WriteString(")\n ")
	p.Print(l.Tail)
	p.WriteString(")")
}

func printBindings(p *form.Printer, bindings []Binding, sep string) {
	for i, b := range bindings {
		if i > 0 {
			p.WriteString(sep)
		}
		p.WriteString("[")
		p.WriteString(b.Name)
		p.WriteString(" ")
		p.Print(b.Value)
		p.WriteString("]")
	}
}

func (l *Locals) Print(p *form.Printer)   { form.Wrap(p, "locals", l.Vars.Names(), " ", l.Tail) }
func (a *Assigned) Print(p *form.Printer) { form.Wrap(p, "assigned", a.Vars.Names(), " ", a.Tail) }
func (f *Free) Print(p *form.Printer)     { form.Wrap(p, "free", f.Vars, " ", f.Tail) }
func (b *Bindfree) Print(p *form.Printer) { form.Wrap(p, "bind-free", b.Vars, " ", b.Tail) }

func (l *Lambda) Print(p *form.Printer) {
	p.WriteString("(lambda (")
	form.JoinNames(p, l.Args, " ")
	p.WriteString(") ")
	p.Print(l.Body)
	p.WriteString(")")
}

func (c *Closures) Print(p *form.Printer) {
	p.WriteString("(closures (")
	for i, r := range c.Records {
		if i > 0 {
			p.WriteString(" ")
		}
		p.WriteString("[")
		p.WriteString(r.Name)
		p.WriteString(" ")
		p.WriteString(r.Label)
		for _, fv := range r.Free {
			p.WriteString(" ")
			p.WriteString(fv)
		}
		p.WriteString("]")
	}
	p.WriteString(")\n")
	p.Print(c.Tail)
	p.WriteString(")")
}

func (b *Begin) Print(p *form.Printer) { form.Block(p, b.Exprs) }

func (s *Set) Print(p *form.Printer)   { form.Call(p, "set!", s.Dst, s.Value) }
func (x *Prim1) Print(p *form.Printer) { form.Call(p, x.Op, x.Arg) }
func (x *Prim2) Print(p *form.Printer) { form.Call(p, x.Op, x.Left, x.Right) }
func (x *Prim3) Print(p *form.Printer) { form.Call(p, x.Op, x.A, x.B, x.C) }
func (x *If) Print(p *form.Printer)    { form.Call(p, "if", x.Cond, x.Then, x.Else) }
func (a *Alloc) Print(p *form.Printer) { form.Call(p, "alloc", a.Size) }
func (m *Mref) Print(p *form.Printer)  { form.Call(p, "mref", m.Base, m.Offset) }
func (m *Mset) Print(p *form.Printer)  { form.Call(p, "mset!", m.Base, m.Offset, m.Value) }

func (f *Funcall) Print(p *form.Printer) {
	p.WriteString("(")
	p.Print(f.Func)
	for _, arg := range f.Args {
		p.WriteString(" ")
		p.Print(arg)
	}
	p.WriteString(")")
}

// Print renders a quoted datum. A quoted boolean takes the reader syntax
// '#t / '#f rather than the bare (true) / (false) form.
func (q *Quote) Print(p *form.Printer) {
	if b, ok := q.Datum.(Bool); ok {
		if b {
			p.WriteString("'#t")
		} else {
			p.WriteString("'#f")
		}
		return
	}
	p.WriteString("'")
	p.Print(q.Datum)
}

func (l *LiteralList) Print(p *form.Printer) {
	p.WriteString("(")
	form.Join(p, l.Items, " ")
	p.WriteString(")")
}

func (v *LiteralVector) Print(p *form.Printer) {
	p.WriteString("#(")
	form.Join(p, v.Items, " ")
	p.WriteString(")")
}

func (s Symbol) Print(p *form.Printer)  { p.WriteString(string(s)) }
func (n Int64) Print(p *form.Printer)   { p.WriteInt(int64(n)) }
func (b Bool) Print(p *form.Printer)    { form.Bool(p, bool(b)) }
func (EmptyList) Print(p *form.Printer) { p.WriteString("()") }
func (Void) Print(p *form.Printer)      { p.WriteString("(void)") }
func (Nop) Print(p *form.Printer)       { p.WriteString("(nop)") }

// String methods

func (l *Letrec) String() string        { return Print(l) }
func (l *Locals) String() string        { return Print(l) }
func (a *Assigned) String() string      { return Print(a) }
func (f *Free) String() string          { return Print(f) }
func (b *Bindfree) String() string      { return Print(b) }
func (l *Lambda) String() string        { return Print(l) }
func (c *Closures) String() string      { return Print(c) }
func (l *Let) String() string           { return Print(l) }
func (b *Begin) String() string         { return Print(b) }
func (s *Set) String() string           { return Print(s) }
func (x *Prim1) String() string         { return Print(x) }
func (x *Prim2) String() string         { return Print(x) }
func (x *Prim3) String() string         { return Print(x) }
func (x *If) String() string            { return Print(x) }
func (a *Alloc) String() string         { return Print(a) }
func (m *Mref) String() string          { return Print(m) }
func (m *Mset) String() string          { return Print(m) }
func (f *Funcall) String() string       { return Print(f) }
func (q *Quote) String() string         { return Print(q) }
func (l *LiteralList) String() string   { return Print(l) }
func (v *LiteralVector) String() string { return Print(v) }
func (s Symbol) String() string         { return string(s) }
func (n Int64) String() string          { return Print(n) }
func (b Bool) String() string           { return Print(b) }
func (e EmptyList) String() string      { return "()" }
func (v Void) String() string           { return "(void)" }
func (n Nop) String() string            { return "(nop)" }
