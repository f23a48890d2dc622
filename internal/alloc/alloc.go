// Package alloc is the tree form used during register allocation. It carries
// the metadata the allocator accumulates while assigning physical storage to
// variables: unassigned and unspillable locals, spills, locations, conflict
// graphs, frame layouts and call-live sets.
package alloc

import (
	"scmc/internal/form"
)

// Node is a register-allocation IR tree.
type Node interface {
	form.Node
	String() string
	isNode()
}

type (
	// Location binds a variable to the register or frame slot it was assigned.
	Location struct {
		Name     string
		Location string
	}

	// Letrec binds a flat sequence of labeled lambdas.
	Letrec struct {
		Lambdas []*Lambda
		Body    Node
	}

	// Lambda is a procedure body bound to a code label.
	Lambda struct {
		Label string
		Args  []string
		Body  Node
	}

	// Locals lists variables not yet assigned a location.
	Locals struct {
		Vars form.NameSet
		Tail Node
	}

	// Ulocals lists variables that must not be spilled.
	Ulocals struct {
		Vars form.NameSet
		Tail Node
	}

	// Spills lists variables chosen for spilling.
	Spills struct {
		Vars form.NameSet
		Tail Node
	}

	Locate struct {
		Bindings []Location
		Tail     Node
	}

	RegisterConflict struct {
		Graph form.ConflictGraph
		Tail  Node
	}

	FrameConflict struct {
		Graph form.ConflictGraph
		Tail  Node
	}

	NewFrames struct {
		Frames form.Frames
		Tail   Node
	}

	// ReturnPoint marks where control resumes after a non-tail call.
	ReturnPoint struct {
		Label string
		Expr  Node
	}

	// CallLive lists variables whose values survive across a call.
	CallLive struct {
		Vars form.NameSet
		Tail Node
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

	If struct {
		Cond, Then, Else Node
	}

	// If1 is a one-armed conditional; the false branch falls through.
	If1 struct {
		Cond, Then Node
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

	Symbol string
	Int64  int64
	Bool   bool
	Nop    struct{}
)

func (*Letrec) isNode()           {}
func (*Lambda) isNode()           {}
func (*Locals) isNode()           {}
func (*Ulocals) isNode()          {}
func (*Spills) isNode()           {}
func (*Locate) isNode()           {}
func (*RegisterConflict) isNode() {}
func (*FrameConflict) isNode()    {}
func (*NewFrames) isNode()        {}
func (*ReturnPoint) isNode()      {}
func (*CallLive) isNode()         {}
func (*Begin) isNode()            {}
func (*Set) isNode()              {}
func (*Prim1) isNode()            {}
func (*Prim2) isNode()            {}
func (*If) isNode()               {}
func (*If1) isNode()              {}
func (*Alloc) isNode()            {}
func (*Mref) isNode()             {}
func (*Mset) isNode()             {}
func (*Funcall) isNode()          {}
func (Symbol) isNode()            {}
func (Int64) isNode()             {}
func (Bool) isNode()              {}
func (Nop) isNode()               {}
