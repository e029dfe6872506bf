package opalgebra

import (
	"io"
	"strings"

	"github.com/mbharadwaj13/casadi/internal/opalgebra/core"
)

// PrintPrefix writes op's print-grammar prefix to stream.
func PrintPrefix(op OpCode, stream io.Writer) {
	io.WriteString(stream, core.Descriptor(op).PrintPrefix)
}

// PrintSeparator writes op's print-grammar separator to stream; a no-op
// for unary ops, whose separator is the empty string.
func PrintSeparator(op OpCode, stream io.Writer) {
	io.WriteString(stream, core.Descriptor(op).PrintSep)
}

// PrintPostfix writes op's print-grammar postfix to stream.
func PrintPostfix(op OpCode, stream io.Writer) {
	io.WriteString(stream, core.Descriptor(op).PrintPostfix)
}

// Print renders "prefix xRepr postfix" for unary ops, or
// "prefix xRepr separator yRepr postfix" for binary ops, to stream. For
// unary ops yRepr is ignored.
func Print(op OpCode, stream io.Writer, xRepr, yRepr string) {
	d := core.Descriptor(op)
	io.WriteString(stream, d.PrintPrefix)
	io.WriteString(stream, xRepr)
	if d.Arity == 2 {
		io.WriteString(stream, d.PrintSep)
		io.WriteString(stream, yRepr)
	}
	io.WriteString(stream, d.PrintPostfix)
}

// PrintString is a convenience wrapper around Print returning a string
// directly, used by consumers (e.g. symbolic.Node.String) that don't
// already hold an io.Writer.
func PrintString(op OpCode, xRepr, yRepr string) string {
	var b strings.Builder
	Print(op, &b, xRepr, yRepr)
	return b.String()
}
