package errors

// Error codes for the scmc tools.
//
// Error code ranges:
// E0100-E0199: IR text syntax errors
// E0900-E0999: Assembly emission errors

const (
	// E0100: Token does not fit the IR text grammar
	ErrorSyntax = "E0100"

	// E0101: Input ends inside an open form
	ErrorUnexpectedEOF = "E0101"

	// E0900: Distinct identifiers mangle to one assembly label
	ErrorLabelCollision = "E0900"
)

// GetErrorDescription returns a human-readable description of the error code
func GetErrorDescription(code string) string {
	switch code {
	case ErrorSyntax:
		return "Text does not follow the IR s-expression grammar"
	case ErrorUnexpectedEOF:
		return "Input ended before every form was closed"
	case ErrorLabelCollision:
		return "Two identifiers produce the same assembly label after mangling"
	default:
		return "Unknown error code"
	}
}

// GetErrorCategory returns the category of the error based on its code
func GetErrorCategory(code string) string {
	switch {
	case code >= "E0100" && code < "E0200":
		return "IR Syntax"
	case code >= "E0900" && code < "E1000":
		return "Assembly"
	default:
		return "Unknown"
	}
}
