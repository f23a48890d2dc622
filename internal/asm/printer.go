package asm

import (
	"strconv"
	"strings"

	"scmc/internal/form"
)

var mangler = strings.NewReplacer("-", "_", "?", "q", "!", "l")

// Mangle turns a compiler-internal identifier into an assembly label:
// '-' becomes '_', '?' becomes 'q' and '!' becomes 'l'. Distinct names may
// collide; see CheckLabels.
func Mangle(name string) string {
	return mangler.Replace(name)
}

// Print returns the assembly text of an assembly tree.
func Print(n Node) string {
	return form.Render(n)
}

func (r Reg) Print(p *form.Printer) {
	p.WriteString("%")
	p.WriteString(r.Name())
}

func (i Imm) Print(p *form.Printer) {
	p.WriteString("$")
	p.WriteInt(int64(i))
}

func (l Label) Print(p *form.Printer) { p.WriteString(Mangle(string(l))) }

func (d *Deref) Print(p *form.Printer) {
	p.WriteInt(d.Offset)
	p.WriteString("(")
	p.Print(d.Base)
	p.WriteString(")")
}

func (d *DerefLabel) Print(p *form.Printer) {
	p.Print(d.Label)
	p.WriteString("(")
	p.Print(d.Base)
	p.WriteString(")")
}

func (d *DerefRegister) Print(p *form.Printer) {
	p.WriteString("(")
	p.Print(d.Base)
	p.WriteString(",")
	p.Print(d.Index)
	p.WriteString(")")
}

func (o *Op2) Print(p *form.Printer) {
	p.WriteString("\t")
	p.WriteString(o.Mnemonic)
	p.WriteString(" ")
	p.Print(o.Src)
	p.WriteString(", ")
	p.Print(o.Dst)
	p.WriteString("\n")
}

func (Retq) Print(p *form.Printer) { p.WriteString("\tretq\n") }

func (x *Push) Print(p *form.Printer) {
	p.WriteString("\tpushq ")
	p.Print(x.Src)
	p.WriteString("\n")
}

func (x *Pop) Print(p *form.Printer) {
	p.WriteString("\tpopq ")
	p.Print(x.Dst)
	p.WriteString("\n")
}

func (j *Jmp) Print(p *form.Printer) {
	p.WriteString("\tjmp ")
	printTarget(p, j.Target)
	p.WriteString("\n")
}

func (j *Jmpif) Print(p *form.Printer) {
	p.WriteString("\tj")
	p.WriteString(j.Cond)
	p.WriteString(" ")
	printTarget(p, j.Target)
	p.WriteString("\n")
}

// printTarget writes a jump target: a direct label as is, anything else as an
// indirect "*operand".
func printTarget(p *form.Printer, target Operand) {
	if _, direct := target.(Label); !direct {
		p.WriteString("*")
	}
	p.Print(target)
}

func (c *Cfg) Print(p *form.Printer) {
	p.WriteString(Mangle(c.Label))
	p.WriteString(":\n")
	form.Join(p, c.Instrs, "")
}

func (c *Code) Print(p *form.Printer) { form.Join(p, c.Instrs, "") }

func (x *Prog) Print(p *form.Printer) {
	for _, b := range x.Blocks {
		p.Print(b)
		p.WriteString("\n")
	}
}

func (r Reg) String() string {
	return "%" + r.Name()
}

func (i Imm) String() string   { return "$" + strconv.FormatInt(int64(i), 10) }
func (l Label) String() string { return Mangle(string(l)) }

func (d *DerefLabel) String() string    { return Print(d) }
func (d *Deref) String() string         { return Print(d) }
func (d *DerefRegister) String() string { return Print(d) }
func (o *Op2) String() string           { return Print(o) }
func (Retq) String() string             { return "\tretq\n" }
func (x *Push) String() string          { return Print(x) }
func (x *Pop) String() string           { return Print(x) }
func (j *Jmp) String() string           { return Print(j) }
func (j *Jmpif) String() string         { return Print(j) }
func (c *Cfg) String() string           { return Print(c) }
func (c *Code) String() string          { return Print(c) }
func (x *Prog) String() string          { return Print(x) }
