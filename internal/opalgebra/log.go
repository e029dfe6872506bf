package opalgebra

import "go.uber.org/zap"

// logger is the package-level diagnostic collaborator, swappable the same
// way the teacher's tensor.Backend is swapped rather than hard-wired. It
// defaults to a no-op sink so importing this package never produces
// output on its own.
var logger = zap.NewNop().Sugar()

// SetLogger installs l as the destination for table-construction events
// and, when the withprintme build tag is active, the PRINTME diagnostic
// side channel. Passing nil restores the no-op default.
func SetLogger(l *zap.SugaredLogger) {
	if l == nil {
		l = zap.NewNop().Sugar()
	}
	logger = l
}
