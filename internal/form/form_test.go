package form

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type atom string

func (a atom) Print(p *Printer) { p.WriteString(string(a)) }

func TestJoin(t *testing.T) {
	tests := []struct {
		name  string
		items []atom
		sep   string
		want  string
	}{
		{"empty", nil, " ", ""},
		{"single", []atom{"a"}, " ", "a"},
		{"several", []atom{"a", "b", "c"}, ", ", "a, b, c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPrinter()
			Join(p, tt.items, tt.sep)
			assert.Equal(t, tt.want, p.String())
		})
	}
}

func TestWrap(t *testing.T) {
	p := NewPrinter()
	Wrap(p, "locals", []string{"x.1", "y.2"}, " ", atom("(nop)"))
	assert.Equal(t, "(locals (x.1 y.2)\n  (nop))", p.String())

	p = NewPrinter()
	Wrap(p, "spills", nil, " ", atom("x"))
	assert.Equal(t, "(spills ()\n  x)", p.String())

	p = NewPrinter()
	WrapNodes(p, "letrec", []atom{"(f)", "(g)"}, "\n", atom("body"))
	assert.Equal(t, "(letrec ((f)\n(g))\n  body)", p.String())
}

func TestCallAndBlock(t *testing.T) {
	p := NewPrinter()
	Call(p, "+", atom("1"), atom("2"))
	assert.Equal(t, "(+ 1 2)", p.String())

	p = NewPrinter()
	Call(p, "f")
	assert.Equal(t, "(f)", p.String())

	p = NewPrinter()
	Block(p, []atom{"(nop)", "(nop)"})
	assert.Equal(t, "(begin \n  (nop)\n  (nop))", p.String())

	p = NewPrinter()
	Block[atom](p, nil)
	assert.Equal(t, "(begin \n)", p.String())
}

func TestBool(t *testing.T) {
	p := NewPrinter()
	Bool(p, true)
	p.WriteString(" ")
	Bool(p, false)
	assert.Equal(t, "(true) (false)", p.String())
}

func TestRenderInt(t *testing.T) {
	p := NewPrinter()
	p.WriteInt(-42)
	assert.Equal(t, "-42", p.String())
	assert.Equal(t, "x", Render(atom("x")))
}

func TestNameSetSortedAndDeduplicated(t *testing.T) {
	s := NewNameSet("y.2", "x.1", "y.2", "a")
	assert.Equal(t, []string{"a", "x.1", "y.2"}, s.Names())
	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Contains("x.1"))
	assert.False(t, s.Contains("z"))

	names := s.Names()
	names[0] = "mutated"
	assert.Equal(t, "a", s.Names()[0])

	assert.Equal(t, 0, NewNameSet().Len())
}

func TestConflictGraphOrder(t *testing.T) {
	g := NewConflictGraph(map[string][]string{
		"c": {"a"},
		"a": {"c", "b"},
		"b": {"a"},
	})
	assert.Equal(t, []string{"a", "b", "c"}, g.Vars())
	assert.Equal(t, []string{"b", "c"}, g.Conflicts("a").Names())
	assert.Equal(t, 0, g.Conflicts("missing").Len())
	assert.Equal(t, 3, g.Len())
}

func TestFormatConflictGraph(t *testing.T) {
	g := NewConflictGraph(map[string][]string{
		"a": {"b", "c"},
		"b": {"a"},
		"c": {"a"},
	})

	first := NewPrinter()
	FormatConflictGraph(first, "register-conflict", g, atom("(nop)"))
	assert.Equal(t, "(register-conflict ((a {b c}) (b {a}) (c {a}))\n  (nop))", first.String())

	for range 20 {
		p := NewPrinter()
		FormatConflictGraph(p, "register-conflict", g, atom("(nop)"))
		assert.Equal(t, first.String(), p.String())
	}

	empty := NewPrinter()
	FormatConflictGraph(empty, "frame-conflict", NewConflictGraph(nil), atom("x"))
	assert.Equal(t, "(frame-conflict ()\n  x)", empty.String())

	lonely := NewPrinter()
	FormatConflictGraph(lonely, "frame-conflict", NewConflictGraph(map[string][]string{"z": nil}), atom("x"))
	assert.Equal(t, "(frame-conflict ((z {}))\n  x)", lonely.String())
}

func TestFramesOrder(t *testing.T) {
	f := NewFrames([]string{"c"}, []string{"b", "a"}, []string{"a", "z"}, []string{"c"})
	assert.Equal(t, 3, f.Len())
	assert.Equal(t, [][]string{{"a", "z"}, {"b", "a"}, {"c"}}, f.Layouts())
	assert.Equal(t, "(a z) (b a) (c)", f.String())
	assert.Equal(t, "", NewFrames().String())
}

type nest struct {
	op   string
	kids []Node
}

func (n *nest) Print(p *Printer) { Call(p, n.op, n.kids...) }

func TestPrintKeepsChildOrder(t *testing.T) {
	tree := &nest{"a", []Node{
		atom("1"),
		&nest{"b", []Node{&nest{"c", nil}, atom("2")}},
		atom("3"),
	}}
	assert.Equal(t, "(a 1 (b (c) 2) 3)", Render(tree))

	p := NewPrinter()
	Wrap(p, "locals", []string{"x"}, " ", tree)
	p.WriteString(" ")
	p.Print(&nest{"d", nil})
	assert.Equal(t, "(locals (x)\n  (a 1 (b (c) 2) 3)) (d)", p.String())
}

func TestPrintDeepChainUsesConstantStack(t *testing.T) {
	const depth = 200000
	var n Node = atom("x")
	for range depth {
		n = &nest{"car", []Node{n}}
	}

	p := NewPrinter()
	p.Print(n)
	text := p.String()

	assert.Len(t, text, 6*depth+1)
	assert.LessOrEqual(t, cap(p.stack), 4)
	assert.Equal(t, "(car (car ", text[:10])
	assert.Equal(t, "(car x))", text[5*depth-5:5*depth+3])
	assert.Equal(t, depth, strings.Count(text, ")"))
}
