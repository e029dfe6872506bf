// Package opalgebra is the generic dispatch surface over the built-in
// scalar operation catalogue (internal/opalgebra/ops): per-operand-type
// tables of evaluators and partial-derivative rules, built once per T and
// published for unlimited concurrent read access (spec §5).
package opalgebra

import (
	"reflect"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/mbharadwaj13/casadi/internal/opalgebra/core"
	"github.com/mbharadwaj13/casadi/internal/opalgebra/ops"
)

// OpTable holds, for every OpCode, the evaluator and partial-derivative
// rule for one operand type T. It is built exhaustively once per T and is
// read-only for the remainder of the process (spec §3, §5).
type OpTable[T core.Value[T]] struct {
	eval     [core.NumBuiltInOps]core.EvalFunc[T]
	partials [core.NumBuiltInOps]core.PartialFunc[T]
}

// buildTable assembles the table for T from ops.Rules and panics if any
// OpCode is left unpopulated — the same exhaustiveness contract the
// descriptor catalogue enforces (spec §4.2: "implementations must check at
// construction that every ordinal ... has been populated, and fail loudly
// otherwise").
func buildTable[T core.Value[T]]() *OpTable[T] {
	var t OpTable[T]
	for _, rule := range ops.Rules[T]() {
		t.eval[rule.Op] = rule.Eval
		t.partials[rule.Op] = rule.Partials
	}

	var missingErr error
	for op := core.OpCode(0); op < core.NumBuiltInOps; op++ {
		if t.eval[op] == nil || t.partials[op] == nil {
			missingErr = multierr.Append(missingErr, errors.Errorf("opalgebra: no rule registered for %s", op))
		}
	}
	if missingErr != nil {
		panic(errors.Wrap(missingErr, "opalgebra: table construction failed").Error())
	}

	if missing := core.CheckCatalogueComplete(); len(missing) > 0 {
		var descErr error
		for _, op := range missing {
			descErr = multierr.Append(descErr, errors.Errorf("opalgebra: no descriptor registered for %s", op))
		}
		panic(errors.Wrap(descErr, "opalgebra: descriptor catalogue incomplete").Error())
	}

	var zero T
	logger.Infow("opalgebra: built operation table", "type", reflect.TypeOf(zero), "ops", core.NumBuiltInOps)
	return &t
}

// tableEntry is the registry's per-T cell: a one-shot initializer guarding
// a lazily-built table, published to other goroutines only after Do
// returns (spec §5's "one-shot initialisation pattern").
type tableEntry struct {
	once  sync.Once
	table any
}

var registry sync.Map // map[reflect.Type]*tableEntry

// tableFor returns the OpTable for T, building and publishing it on first
// use and reusing the published table on every subsequent call from any
// goroutine.
func tableFor[T core.Value[T]]() *OpTable[T] {
	key := reflect.TypeFor[T]()
	entryAny, _ := registry.LoadOrStore(key, &tableEntry{})
	entry := entryAny.(*tableEntry)
	entry.once.Do(func() {
		entry.table = buildTable[T]()
	})
	return entry.table.(*OpTable[T])
}
