// Package form holds the rendering primitives shared by every tree form of the
// compiler: a buffered printer, sequence joining, the annotation-form wrapper and
// the ordered containers whose iteration order is part of the output contract.
package form

import (
	"strconv"
	"strings"
)

// Node is anything that can render itself into a Printer.
type Node interface {
	Print(p *Printer)
}

// piece is one pending write: literal text, or a node still to be expanded.
// A text piece stands for repeat+1 copies of text.
type piece struct {
	text   string
	node   Node
	repeat int
}

// Printer accumulates rendered text. Nodes write into one shared builder so a
// whole tree renders in time linear in its size.
//
// Children are never printed by recursion. A node's Print only queues its
// writes; Print then drains them from an explicit stack, so nesting depth is
// bounded by heap rather than goroutine stack.
type Printer struct {
	output  strings.Builder
	running bool
	frame   []piece // writes queued by the node being expanded
	stack   []piece // top is written next
}

// NewPrinter creates an empty printer
func NewPrinter() *Printer {
	return &Printer{}
}

func (p *Printer) WriteString(s string) {
	// Text queued before the first child of the node being expanded is the
	// next output anyway.
	if p.running && len(p.frame) > 0 {
		p.frame = append(p.frame, piece{text: s})
		return
	}
	p.output.WriteString(s)
}

func (p *Printer) WriteInt(n int64) {
	p.WriteString(strconv.FormatInt(n, 10))
}

// Print renders n at the current position. Called from inside a node's Print,
// it queues n behind the writes already made by that node.
func (p *Printer) Print(n Node) {
	if p.running {
		p.frame = append(p.frame, piece{node: n})
		return
	}

	p.running = true
	defer p.reset()

	p.push(piece{node: n})
	for len(p.stack) > 0 {
		top := len(p.stack) - 1
		next := p.stack[top]

		if next.node == nil {
			p.output.WriteString(next.text)
			if next.repeat > 0 {
				p.stack[top].repeat--
				continue
			}
			p.stack[top] = piece{}
			p.stack = p.stack[:top]
			continue
		}

		p.stack[top] = piece{}
		p.stack = p.stack[:top]
		p.frame = p.frame[:0]
		next.node.Print(p)
		for i := len(p.frame) - 1; i >= 0; i-- {
			p.push(p.frame[i])
		}
	}
}

// push adds pc on top of the stack. Equal text runs collapse into one piece,
// which keeps the closing parens of a long chain of nested forms constant-size.
func (p *Printer) push(pc piece) {
	if top := len(p.stack) - 1; pc.node == nil && top >= 0 {
		if last := &p.stack[top]; last.node == nil && last.text == pc.text {
			last.repeat += pc.repeat + 1
			return
		}
	}
	p.stack = append(p.stack, pc)
}

func (p *Printer) reset() {
	p.running = false
	clear(p.frame)
	p.frame = p.frame[:0]
	p.stack = p.stack[:0]
}

func (p *Printer) String() string {
	return p.output.String()
}

// Render returns the text of a single tree.
func Render(n Node) string {
	p := NewPrinter()
	p.Print(n)
	return p.String()
}

// Join prints every item, separated by sep. An empty slice prints nothing.
func Join[T Node](p *Printer, items []T, sep string) {
	for i, item := range items {
		if i > 0 {
			p.WriteString(sep)
		}
		p.Print(item)
	}
}

// JoinNames is Join for plain identifiers.
func JoinNames(p *Printer, names []string, sep string) {
	for i, name := range names {
		if i > 0 {
			p.WriteString(sep)
		}
		p.WriteString(name)
	}
}

// Wrap prints the annotation form "(name (items)\n  tail)".
func Wrap(p *Printer, name string, items []string, sep string, tail Node) {
	p.WriteString("(")
	p.WriteString(name)
	p.WriteString(" (")
	JoinNames(p, items, sep)
	p.WriteString(")\n  ")
	p.Print(tail)
	p.WriteString(")")
}

// WrapNodes is Wrap for items that are trees themselves.
func WrapNodes[T Node](p *Printer, name string, items []T, sep string, tail Node) {
	p.WriteString("(")
	p.WriteString(name)
	p.WriteString(" (")
	Join(p, items, sep)
	p.WriteString(")\n  ")
	p.Print(tail)
	p.WriteString(")")
}

// Call prints the call-style form "(op a b ...)".
func Call(p *Printer, op string, args ...Node) {
	p.WriteString("(")
	p.WriteString(op)
	for _, arg := range args {
		p.WriteString(" ")
		p.Print(arg)
	}
	p.WriteString(")")
}

// Block prints "(begin \n  c1\n  c2 ...)", one child per indented line.
func Block[T Node](p *Printer, children []T) {
	p.WriteString("(begin \n")
	for i, child := range children {
		if i > 0 {
			p.WriteString("\n")
		}
		p.WriteString("  ")
		p.Print(child)
	}
	p.WriteString(")")
}

// Bool prints the bare boolean form "(true)" or "(false)".
func Bool(p *Printer, b bool) {
	if b {
		p.WriteString("(true)")
	} else {
		p.WriteString("(false)")
	}
}
