// Package asm models x86-64 assembly in AT&T syntax: registers, addressing
// modes, instructions and labeled control-flow blocks. Its text is handed to an
// external assembler, so every rendering here is byte-exact.
package asm

import (
	"fmt"

	"scmc/internal/form"
)

// Node is any assembly tree.
type Node interface {
	form.Node
	String() string
}

// Operand is a register, immediate, label or memory reference.
type Operand interface {
	Node
	isOperand()
}

// Instr is an instruction, a labeled block or a run of instructions.
type Instr interface {
	Node
	isInstr()
}

type Reg int

const (
	RSP Reg = iota
	RBP
	RAX
	RBX
	RCX
	RDX
	RSI
	RDI
	R8
	R9
	R10
	R11
	R12
	R13
	R14
	R15
	RIP
)

var regNames = [...]string{
	RSP: "rsp",
	RBP: "rbp",
	RAX: "rax",
	RBX: "rbx",
	RCX: "rcx",
	RDX: "rdx",
	RSI: "rsi",
	RDI: "rdi",
	R8:  "r8",
	R9:  "r9",
	R10: "r10",
	R11: "r11",
	R12: "r12",
	R13: "r13",
	R14: "r14",
	R15: "r15",
	RIP: "rip",
}

// Registers lists the sixteen general-purpose registers in encoding order
// followed by the instruction pointer.
func Registers() []Reg {
	regs := make([]Reg, 0, len(regNames))
	for r := range regNames {
		regs = append(regs, Reg(r))
	}
	return regs
}

// Name returns the register name without the % sigil. Only the constants
// above are registers; any other value panics.
func (r Reg) Name() string {
	if r < 0 || int(r) >= len(regNames) {
		panic(fmt.Sprintf("asm: invalid register %d", int(r)))
	}
	return regNames[r]
}

type (
	Imm int64

	// Label is a compiler-internal identifier emitted as an assembly symbol.
	Label string

	// Deref is the memory operand offset(base).
	Deref struct {
		Base   Reg
		Offset int64
	}

	// DerefLabel is the label-relative operand label(base), e.g. label(%rip).
	DerefLabel struct {
		Base  Reg
		Label Label
	}

	// DerefRegister is the indexed operand (base,index).
	DerefRegister struct {
		Base, Index Reg
	}

	// Op2 is a two-operand instruction in source, destination order.
	Op2 struct {
		Mnemonic string
		Src, Dst Operand
	}

	Retq struct{}

	Push struct {
		Src Operand
	}

	Pop struct {
		Dst Operand
	}

	// Jmp is a direct jump when Target is a Label and an indirect one otherwise.
	Jmp struct {
		Target Operand
	}

	// Jmpif jumps when condition code Cond holds, e.g. "e", "l", "ge".
	Jmpif struct {
		Cond   string
		Target Operand
	}

	// Cfg is one labeled control-flow block.
	Cfg struct {
		Label  string
		Instrs []Instr
	}

	// Code is an unlabeled run of instructions spliced into its parent.
	Code struct {
		Instrs []Instr
	}

	// Prog is a complete compilation unit.
	Prog struct {
		Blocks []Instr
	}
)

func (Reg) isOperand()            {}
func (Imm) isOperand()            {}
func (Label) isOperand()          {}
func (*Deref) isOperand()         {}
func (*DerefLabel) isOperand()    {}
func (*DerefRegister) isOperand() {}

func (*Op2) isInstr()   {}
func (Retq) isInstr()   {}
func (*Push) isInstr()  {}
func (*Pop) isInstr()   {}
func (*Jmp) isInstr()   {}
func (*Jmpif) isInstr() {}
func (*Cfg) isInstr()   {}
func (*Code) isInstr()  {}
