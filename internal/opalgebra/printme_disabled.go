//go:build !withprintme

package opalgebra

// PrintmeEnabled reports whether the PRINTME diagnostic side channel
// (spec §6, §9) is active in this build. It is off by default: the
// WITH_PRINTME build contract this was distilled from defaults to no
// diagnostic output.
const PrintmeEnabled = false

// EmitPrintme is a no-op in builds without the withprintme tag.
func EmitPrintme(y any) {}
