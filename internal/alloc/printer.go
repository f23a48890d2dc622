package alloc

import (
	"scmc/internal/form"
)

// Print returns the canonical text of a register-allocation tree.
func Print(n Node) string {
	return form.Render(n)
}

func (l *Letrec) Print(p *form.Printer) { form.WrapNodes(p, "letrec", l.Lambdas, "\n", l.Body) }

func (l *Lambda) Print(p *form.Printer) {
	p.WriteString("(")
	p.WriteString(l.Label)
	p.WriteString(" (lambda (")
	form.JoinNames(p, l.Args, " ")
	p.WriteString(") ")
	p.Print(l.Body)
	p.WriteString("))")
}

func (l *Locals) Print(p *form.Printer)   { form.Wrap(p, "locals", l.Vars.Names(), " ", l.Tail) }
func (u *Ulocals) Print(p *form.Printer)  { form.Wrap(p, "ulocals", u.Vars.Names(), " ", u.Tail) }
func (s *Spills) Print(p *form.Printer)   { form.Wrap(p, "spills", s.Vars.Names(), " ", s.Tail) }
func (c *CallLive) Print(p *form.Printer) { form.Wrap(p, "call-live", c.Vars.Names(), " ", c.Tail) }

func (l *Locate) Print(p *form.Printer) {
	p.WriteString("(locate (")
	for i, b := range l.Bindings {
		if i > 0 {
			p.WriteString(" ")
		}
		p.WriteString("[")
		p.WriteString(b.Name)
		p.WriteString(" ")
		p.WriteString(b.Location)
		p.WriteString("]")
	}
	p.WriteString(")\n ")
	p.Print(l.Tail)
	p.WriteString(")")
}

func (r *RegisterConflict) Print(p *form.Printer) {
	form.FormatConflictGraph(p, "register-conflict", r.Graph, r.Tail)
}

func (f *FrameConflict) Print(p *form.Printer) {
	form.FormatConflictGraph(p, "frame-conflict", f.Graph, f.Tail)
}

func (n *NewFrames) Print(p *form.Printer) {
	p.WriteString("(new-frames (")
	p.WriteString(n.Frames.String())
	p.WriteString(") ")
	p.Print(n.Tail)
	p.WriteString(")")
}

func (r *ReturnPoint) Print(p *form.Printer) {
	p.WriteString("(return-point ")
	p.WriteString(r.Label)
	p.WriteString(" ")
	p.Print(r.Expr)
	p.WriteString(")")
}

func (b *Begin) Print(p *form.Printer) { form.Block(p, b.Exprs) }

func (s *Set) Print(p *form.Printer)   { form.Call(p, "set!", s.Dst, s.Value) }
func (x *Prim1) Print(p *form.Printer) { form.Call(p, x.Op, x.Arg) }
func (x *Prim2) Print(p *form.Printer) { form.Call(p, x.Op, x.Left, x.Right) }
func (x *If) Print(p *form.Printer)    { form.Call(p, "if", x.Cond, x.Then, x.Else) }
func (x *If1) Print(p *form.Printer)   { form.Call(p, "if", x.Cond, x.Then) }
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

func (s Symbol) Print(p *form.Printer) { p.WriteString(string(s)) }
func (n Int64) Print(p *form.Printer)  { p.WriteInt(int64(n)) }
func (b Bool) Print(p *form.Printer)   { form.Bool(p, bool(b)) }
func (Nop) Print(p *form.Printer)      { p.WriteString("(nop)") }

func (l *Letrec) String() string           { return Print(l) }
func (l *Lambda) String() string           { return Print(l) }
func (l *Locals) String() string           { return Print(l) }
func (u *Ulocals) String() string          { return Print(u) }
func (s *Spills) String() string           { return Print(s) }
func (l *Locate) String() string           { return Print(l) }
func (r *RegisterConflict) String() string { return Print(r) }
func (f *FrameConflict) String() string    { return Print(f) }
func (n *NewFrames) String() string        { return Print(n) }
func (r *ReturnPoint) String() string      { return Print(r) }
func (c *CallLive) String() string         { return Print(c) }
func (b *Begin) String() string            { return Print(b) }
func (s *Set) String() string              { return Print(s) }
func (x *Prim1) String() string            { return Print(x) }
func (x *Prim2) String() string            { return Print(x) }
func (x *If) String() string               { return Print(x) }
func (x *If1) String() string              { return Print(x) }
func (a *Alloc) String() string            { return Print(a) }
func (m *Mref) String() string             { return Print(m) }
func (m *Mset) String() string             { return Print(m) }
func (f *Funcall) String() string          { return Print(f) }
func (s Symbol) String() string            { return string(s) }
func (n Int64) String() string             { return Print(n) }
func (b Bool) String() string              { return Print(b) }
func (Nop) String() string                 { return "(nop)" }
