package form

import (
	"slices"
	"strings"
)

// NameSet is an immutable set of variable names. Names are kept sorted, which
// is the order every name-set is rendered in.
type NameSet struct {
	names []string
}

// NewNameSet builds a set from names, dropping duplicates.
func NewNameSet(names ...string) NameSet {
	sorted := slices.Clone(names)
	slices.Sort(sorted)
	return NameSet{names: slices.Compact(sorted)}
}

// Names returns the members in rendering order.
func (s NameSet) Names() []string {
	return slices.Clone(s.names)
}

func (s NameSet) Len() int {
	return len(s.names)
}

func (s NameSet) Contains(name string) bool {
	_, found := slices.BinarySearch(s.names, name)
	return found
}

// ConflictGraph maps a variable to the variables it must not share a location
// with. Symmetry is the builder's responsibility.
type ConflictGraph struct {
	vars      []string
	conflicts map[string]NameSet
}

// NewConflictGraph copies adjacency into an immutable graph.
func NewConflictGraph(adjacency map[string][]string) ConflictGraph {
	g := ConflictGraph{conflicts: make(map[string]NameSet, len(adjacency))}
	for v, cs := range adjacency {
		g.vars = append(g.vars, v)
		g.conflicts[v] = NewNameSet(cs...)
	}
	slices.Sort(g.vars)
	return g
}

// Vars returns the graph's variables, sorted.
func (g ConflictGraph) Vars() []string {
	return slices.Clone(g.vars)
}

// Conflicts returns the conflict set of v. An unknown variable has none.
func (g ConflictGraph) Conflicts(v string) NameSet {
	return g.conflicts[v]
}

func (g ConflictGraph) Len() int {
	return len(g.vars)
}

// Frames is a set of candidate frame layouts. Each layout keeps its own slot
// order; the set itself is ordered lexicographically.
type Frames struct {
	layouts [][]string
}

// NewFrames builds a frame set, dropping duplicate layouts.
func NewFrames(layouts ...[]string) Frames {
	var f Frames
	for _, l := range layouts {
		f.layouts = append(f.layouts, slices.Clone(l))
	}
	slices.SortFunc(f.layouts, slices.Compare[[]string])
	f.layouts = slices.CompactFunc(f.layouts, slices.Equal[[]string])
	return f
}

// Layouts returns a copy of the layouts in rendering order.
func (f Frames) Layouts() [][]string {
	out := make([][]string, len(f.layouts))
	for i, l := range f.layouts {
		out[i] = slices.Clone(l)
	}
	return out
}

func (f Frames) Len() int {
	return len(f.layouts)
}

func (f Frames) String() string {
	var b strings.Builder
	for i, l := range f.layouts {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString("(")
		b.WriteString(strings.Join(l, " "))
		b.WriteString(")")
	}
	return b.String()
}
