// Package hir is the high-level tree form produced by closure conversion. It
// still expresses structured control flow and the memory primitives.
package hir

import (
	"scmc/internal/form"
)

// Node is a high-level IR tree.
type Node interface {
	form.Node
	String() string
	isNode()
}

type (
	// Binding pairs a name with the tree bound to it.
	Binding struct {
		Name  string
		Value Node
	}

	// Closure describes one closure allocation: the procedure it binds, the
	// label of its code and the free variables it captures, in slot order.
	Closure struct {
		Name  string
		Label string
		Free  []string
	}

	Letrec struct {
		Bindings []Binding
		Body     Node
	}

	Locals struct {
		Vars form.NameSet
		Tail Node
	}

	Assigned struct {
		Vars form.NameSet
		Tail Node
	}

	Free struct {
		Vars []string
		Tail Node
	}

	Bindfree struct {
		Vars []string
		Tail Node
	}

	Lambda struct {
		Args []string
		Body Node
	}

	Closures struct {
		Records []Closure
		Tail    Node
	}

	Let struct {
		Bindings []Binding
		Tail     Node
	}

	Begin struct {
		Exprs []Node
	}

	Set struct {
		Dst   Node
		Value Node
	}

	Prim1 struct {
		Op  string
		Arg Node
	}

	Prim2 struct {
		Op          string
		Left, Right Node
	}

	Prim3 struct {
		Op      string
		A, B, C Node
	}

	If struct {
		Cond, Then, Else Node
	}

	Alloc struct {
		Size Node
	}

	Mref struct {
		Base, Offset Node
	}

	Mset struct {
		Base, Offset, Value Node
	}

	Funcall struct {
		Func Node
		Args []Node
	}

	Quote struct {
		Datum Node
	}

	LiteralList struct {
		Items []Node
	}

	LiteralVector struct {
		Items []Node
	}

	Symbol string
	Int64  int64
	Bool   bool

	EmptyList struct{}
	Void      struct{}
	Nop       struct{}
)

func (*Letrec) isNode()        {}
func (*Locals) isNode()        {}
func (*Assigned) isNode()      {}
func (*Free) isNode()          {}
func (*Bindfree) isNode()      {}
func (*Lambda) isNode()        {}
func (*Closures) isNode()      {}
func (*Let) isNode()           {}
func (*Begin) isNode()         {}
func (*Set) isNode()           {}
func (*Prim1) isNode()         {}
func (*Prim2) isNode()         {}
func (*Prim3) isNode()         {}
func (*If) isNode()            {}
func (*Alloc) isNode()         {}
func (*Mref) isNode()          {}
func (*Mset) isNode()          {}
func (*Funcall) isNode()       {}
func (*Quote) isNode()         {}
func (*LiteralList) isNode()   {}
func (*LiteralVector) isNode() {}
func (Symbol) isNode()         {}
func (Int64) isNode()          {}
func (Bool) isNode()           {}
func (EmptyList) isNode()      {}
func (Void) isNode()           {}
func (Nop) isNode()            {}
