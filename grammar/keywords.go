package grammar

// formHeads are the atoms that open a structural form in high-level or
// register-allocation IR text. Any other head is a primitive or a call.
var formHeads = map[string]bool{
	"letrec":            true,
	"locals":            true,
	"assigned":          true,
	"free":              true,
	"bind-free":         true,
	"lambda":            true,
	"closures":          true,
	"let":               true,
	"begin":             true,
	"set!":              true,
	"if":                true,
	"alloc":             true,
	"mref":              true,
	"mset!":             true,
	"void":              true,
	"nop":               true,
	"true":              true,
	"false":             true,
	"ulocals":           true,
	"spills":            true,
	"locate":            true,
	"register-conflict": true,
	"frame-conflict":    true,
	"new-frames":        true,
	"return-point":      true,
	"call-live":         true,
}

// IsFormHead reports whether atom opens one of the IR's structural forms.
func IsFormHead(atom string) bool {
	return formHeads[atom]
}
