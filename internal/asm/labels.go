package asm

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrLabelCollision is returned by Emit when two distinct identifiers mangle to
// the same assembly label.
var ErrLabelCollision = errors.New("mangled label collision")

// LabelCollision is one assembly label claimed by several source identifiers.
type LabelCollision struct {
	Label string
	Names []string
}

func (c LabelCollision) String() string {
	return fmt.Sprintf("%s <- %s", c.Label, strings.Join(c.Names, ", "))
}

// CheckLabels collects every identifier prog emits as a label (block labels,
// label operands and jump targets) and reports the mangled labels that more
// than one distinct identifier maps to, sorted by label.
func CheckLabels(prog *Prog) []LabelCollision {
	owners := map[string][]string{}
	for _, b := range prog.Blocks {
		collectLabels(b, owners)
	}
	return collisions(owners)
}

// CheckNames reports collisions among a plain list of identifiers.
func CheckNames(names []string) []LabelCollision {
	owners := map[string][]string{}
	for _, n := range names {
		addLabel(owners, n)
	}
	return collisions(owners)
}

func collisions(owners map[string][]string) []LabelCollision {
	var out []LabelCollision
	for label, names := range owners {
		if len(names) > 1 {
			slices.Sort(names)
			out = append(out, LabelCollision{Label: label, Names: names})
		}
	}
	slices.SortFunc(out, func(a, b LabelCollision) int { return strings.Compare(a.Label, b.Label) })
	return out
}

func addLabel(owners map[string][]string, name string) {
	m := Mangle(name)
	if !slices.Contains(owners[m], name) {
		owners[m] = append(owners[m], name)
	}
}

func collectLabels(n Node, owners map[string][]string) {
	switch n := n.(type) {
	case Label:
		addLabel(owners, string(n))
	case *DerefLabel:
		addLabel(owners, string(n.Label))
	case *Op2:
		collectLabels(n.Src, owners)
		collectLabels(n.Dst, owners)
	case *Push:
		collectLabels(n.Src, owners)
	case *Pop:
		collectLabels(n.Dst, owners)
	case *Jmp:
		collectLabels(n.Target, owners)
	case *Jmpif:
		collectLabels(n.Target, owners)
	case *Cfg:
		addLabel(owners, n.Label)
		for _, i := range n.Instrs {
			collectLabels(i, owners)
		}
	case *Code:
		for _, i := range n.Instrs {
			collectLabels(i, owners)
		}
	}
}

// Emit renders prog for the assembler after checking that no two identifiers
// share a mangled label.
func Emit(prog *Prog) (string, error) {
	if cs := CheckLabels(prog); len(cs) > 0 {
		msgs := make([]string, len(cs))
		for i, c := range cs {
			msgs[i] = c.String()
		}
		return "", fmt.Errorf("%w: %s", ErrLabelCollision, strings.Join(msgs, "; "))
	}
	return Print(prog), nil
}
