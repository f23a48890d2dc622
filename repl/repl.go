// SPDX-License-Identifier: Apache-2.0

// Package repl reads IR forms interactively and echoes them in canonical form.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"scmc/grammar"
	"scmc/internal/errors"
)

const (
	PROMPT       = ">> "
	CONTINUE     = ".. "
	replFilename = "<repl>"
)

// Start reads from in until EOF. Lines are buffered until they form complete
// forms, so a dump pasted across several lines is read as one input.
func Start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	var pending strings.Builder

	fmt.Fprint(out, PROMPT)
	for scanner.Scan() {
		pending.WriteString(scanner.Text())
		pending.WriteString("\n")

		source := pending.String()
		if strings.TrimSpace(source) == "" {
			pending.Reset()
			fmt.Fprint(out, PROMPT)
			continue
		}

		program, err := grammar.Parse(replFilename, source)
		if err != nil {
			diag := grammar.Diagnose(err)
			if diag.Code == errors.ErrorUnexpectedEOF {
				fmt.Fprint(out, CONTINUE)
				continue
			}
			fmt.Fprint(out, errors.NewErrorReporter(replFilename, source).FormatError(diag))
		} else {
			fmt.Fprint(out, program.String())
		}

		pending.Reset()
		fmt.Fprint(out, PROMPT)
	}
	fmt.Fprintln(out)
}
