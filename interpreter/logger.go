package interpreter

import (
	"fmt"
	"io"
)

// stepLogger is a side channel that mirrors execution to a human-readable
// stream, independent of the structured event trace. It is purely a
// debugging aid: nothing about the interpreter's behavior or the trace it
// produces depends on whether one is attached.
type stepLogger struct {
	out io.Writer
}

// newStepLogger wraps out in a stepLogger, or returns nil if out is nil so
// that logging calls become no-ops.
func newStepLogger(out io.Writer) *stepLogger {
	if out == nil {
		return nil
	}
	return &stepLogger{out: out}
}

// logStep writes a "<name>, <gas>, <top-of-stack>" line for the instruction
// about to execute.
func (l *stepLogger) logStep(name string, gas int64, stack *Stack) {
	if l == nil {
		return
	}
	top := "-empty-"
	if v, err := stack.Peek(); err == nil {
		top = v.Decimal()
	}
	fmt.Fprintf(l.out, "%s, %d, %v\n", name, gas, top)
}

// logHalt writes the terminal halt reason.
func (l *stepLogger) logHalt(reason string) {
	if l == nil {
		return
	}
	fmt.Fprintf(l.out, "halt: %s\n", reason)
}
