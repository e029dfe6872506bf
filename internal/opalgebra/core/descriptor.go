package core

// OpDescriptor is the static, compile-time-constant record attached to one
// OpCode: arity, commutativity, the zero-absorption triple, and the print
// grammar. It never varies across operand type T.
type OpDescriptor struct {
	Arity        int
	Commutative  bool
	F00IsZero    bool // output is exactly zero when both operands are zero
	F0xIsZero    bool // output is exactly zero when only the first operand is zero
	Fx0IsZero    bool // output is exactly zero when only the second operand is zero
	PrintPrefix  string
	PrintSep     string // empty for unary ops
	PrintPostfix string
}

// descriptors is populated by each per-op file's init, one entry per
// OpCode. Register panics if an OpCode is registered twice; Descriptor
// panics if an OpCode was never registered, since that is the same
// construction-time defect the dispatch tables guard against.
var descriptors [NumBuiltInOps]*OpDescriptor

// Register attaches d to op. It is called once per OpCode from that
// operation's own file's init(), so the catalogue is assembled the same
// way the dispatch tables are: exhaustively, and checked at load time.
func Register(op OpCode, d OpDescriptor) {
	if !op.Valid() {
		panic("core: Register called with invalid OpCode " + op.String())
	}
	if descriptors[op] != nil {
		panic("core: duplicate descriptor registration for " + op.String())
	}
	descriptors[op] = &d
}

// Descriptor returns the static descriptor for op. It panics if op has no
// registered descriptor — a build-time catalogue defect, not a runtime
// condition a caller can recover from.
func Descriptor(op OpCode) *OpDescriptor {
	d := descriptors[op]
	if d == nil {
		panic("core: no descriptor registered for " + op.String())
	}
	return d
}

// CheckCatalogueComplete reports every OpCode missing a descriptor. Callers
// that want a single aggregated error (rather than the first-found panic
// from Descriptor) use this at program start.
func CheckCatalogueComplete() []OpCode {
	var missing []OpCode
	for op := OpCode(0); op < NumBuiltInOps; op++ {
		if descriptors[op] == nil {
			missing = append(missing, op)
		}
	}
	return missing
}
