package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// IRLexer tokenizes the s-expression text the high-level and
// register-allocation tree forms render to.
var IRLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Trace comments
		{"Comment", `;[^\n]*`, nil},

		// #t / #f
		{"Bool", `#[tf]`, nil},

		// Delimiters, vector opener and quote (order matters: #( before #)
		{"Punct", `#\(|[()\[\]{}']`, nil},

		// Integer literals, optionally negative
		{"Int", `-?[0-9]+`, nil},

		// Identifiers, labels and operators: anything up to a delimiter
		{"Atom", `[^\s()\[\]{}'#;]+`, nil},

		// Whitespace
		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})
