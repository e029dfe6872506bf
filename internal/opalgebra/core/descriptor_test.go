package core_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mbharadwaj13/casadi/internal/opalgebra/core"
	_ "github.com/mbharadwaj13/casadi/internal/opalgebra/ops"
)

// TestPowAndConstpowDescriptorsAgree pins the structural shape of two
// related descriptors with cmp.Diff rather than testify's reflect-based
// equality: OpDescriptor has no exported identity beyond its fields, so a
// field-by-field diff is the clearer failure report when one of POW's or
// CONSTPOW's flags drifts.
func TestPowAndConstpowDescriptorsAgree(t *testing.T) {
	pow := *core.Descriptor(core.POW)
	constpow := *core.Descriptor(core.CONSTPOW)

	// Both take two operands, are non-commutative and print as pow(x,y);
	// the two ops differ only in their derivative rules, not in their
	// descriptors.
	want := core.OpDescriptor{
		Arity:        2,
		Commutative:  false,
		PrintPrefix:  "pow(",
		PrintSep:     ",",
		PrintPostfix: ")",
	}
	if diff := cmp.Diff(want, constpow); diff != "" {
		t.Errorf("CONSTPOW descriptor mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff(pow.Arity, constpow.Arity); diff != "" {
		t.Errorf("POW and CONSTPOW arity mismatch (-POW +CONSTPOW):\n%s", diff)
	}
	if diff := cmp.Diff(pow.Commutative, constpow.Commutative); diff != "" {
		t.Errorf("POW and CONSTPOW commutativity mismatch (-POW +CONSTPOW):\n%s", diff)
	}
}

// TestAddDescriptorStructure pins ADD's full descriptor shape, the
// catalogue's simplest commutative, zero-absorbing binary operation.
func TestAddDescriptorStructure(t *testing.T) {
	want := core.OpDescriptor{
		Arity:        2,
		Commutative:  true,
		F00IsZero:    true,
		PrintPrefix:  "(",
		PrintSep:     "+",
		PrintPostfix: ")",
	}
	got := *core.Descriptor(core.ADD)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ADD descriptor mismatch (-want +got):\n%s", diff)
	}
}
