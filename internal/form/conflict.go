package form

// FormatConflictGraph prints g under heading as
// "(heading ((v1 {c1 c2}) (v2 {c3}))\n  tail)", variables and conflicts sorted.
func FormatConflictGraph(p *Printer, heading string, g ConflictGraph, tail Node) {
	p.WriteString("(")
	p.WriteString(heading)
	p.WriteString(" (")
	for i, v := range g.vars {
		if i > 0 {
			p.WriteString(" ")
		}
		p.WriteString("(")
		p.WriteString(v)
		p.WriteString(" {")
		JoinNames(p, g.conflicts[v].names, " ")
		p.WriteString("})")
	}
	p.WriteString(")\n  ")
	p.Print(tail)
	p.WriteString(")")
}
