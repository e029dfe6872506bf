// Package main provides a small CLI over the opalgebra catalogue: list the
// registered operations, or evaluate one against a pair of scalar operands.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/mbharadwaj13/casadi/opalgebra"
	"github.com/mbharadwaj13/casadi/scalar"
)

const version = "v0.0.1-dev"

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("opalgebra %s\n", version)
	case "list":
		listOps()
	case "eval":
		if err := evalOp(os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, "opalgebra:", err)
			os.Exit(1)
		}
	default:
		usage()
	}
}

func usage() {
	fmt.Println("opalgebra - scalar-operation algebra catalogue")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version             Show version")
	fmt.Println("  list                List every registered OpCode")
	fmt.Println("  eval OP X [Y]       Evaluate OP on float64 operands X and Y")
}

func listOps() {
	for op := opalgebra.OpCode(0); op < opalgebra.NumBuiltInOps; op++ {
		arity := opalgebra.Arity(op)
		fmt.Printf("%-8s arity=%d commutative=%v\n", op, arity, opalgebra.IsCommutative(op))
	}
}

func evalOp(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: eval OP X [Y]")
	}

	op, err := parseOp(args[0])
	if err != nil {
		return err
	}

	x, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("parsing X: %w", err)
	}

	y := 0.0
	if opalgebra.Arity(op) == 2 {
		if len(args) < 3 {
			return fmt.Errorf("%s takes two operands", op)
		}
		y, err = strconv.ParseFloat(args[2], 64)
		if err != nil {
			return fmt.Errorf("parsing Y: %w", err)
		}
	}

	yRepr := ""
	if opalgebra.Arity(op) == 2 {
		yRepr = args[2]
	}

	f, d0, d1 := opalgebra.EvalAndPartials(op, scalar.F64(x), scalar.F64(y))
	fmt.Printf("%s = %g\n", opalgebra.PrintString(op, args[1], yRepr), f.X)
	fmt.Printf("d/dx = %g\n", d0.X)
	if opalgebra.Arity(op) == 2 {
		fmt.Printf("d/dy = %g\n", d1.X)
	}
	return nil
}

func parseOp(name string) (opalgebra.OpCode, error) {
	for op := opalgebra.OpCode(0); op < opalgebra.NumBuiltInOps; op++ {
		if op.String() == name {
			return op, nil
		}
	}
	return 0, fmt.Errorf("unknown op %q", name)
}
