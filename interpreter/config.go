package interpreter

import (
	"io"

	"github.com/blue-yard/evmix/host"
	"github.com/blue-yard/evmix/jumpdest"
	"github.com/blue-yard/evmix/trace"
)

// Config holds everything an Interpreter needs to execute a single run.
type Config struct {
	// Bytecode is the program to execute.
	Bytecode []byte
	// InitialGas is the gas budget execution starts with.
	InitialGas int64
	// Calldata is the input data made available to CALLDATA* opcodes.
	Calldata []byte
	// Host provides storage and log access. Must not be nil.
	Host host.Host
	// Logger, if non-nil, receives a one-line-per-step human-readable trace
	// independent of the structured event trace. Optional.
	Logger io.Writer
	// JumpdestCache, if non-nil, is consulted for this run's jump-destination
	// analysis instead of computing it fresh. Sharing one Cache across
	// Configs avoids re-scanning bytecode that has already been analyzed.
	JumpdestCache *jumpdest.Cache
}

// Interpreter executes a single contract's bytecode against a Host, one
// opcode at a time, recording an ordered trace of every observable event.
// An Interpreter is single-use: construct one per run.
type Interpreter struct {
	code     []byte
	calldata []byte
	host     host.Host
	logger   *stepLogger

	state *MachineState
	stack *Stack
	dests jumpdest.Set
	tr    *trace.Collector
}

// NewInterpreter constructs an Interpreter ready to execute cfg.Bytecode
// from PC 0 with cfg.InitialGas gas.
func NewInterpreter(cfg Config) *Interpreter {
	dests := analyzeJumpdests(cfg.JumpdestCache, cfg.Bytecode)
	return &Interpreter{
		code:     cfg.Bytecode,
		calldata: cfg.Calldata,
		host:     cfg.Host,
		logger:   newStepLogger(cfg.Logger),
		state:    NewMachineState(cfg.InitialGas),
		stack:    NewStack(),
		dests:    dests,
		tr:       trace.NewCollector(),
	}
}

// analyzeJumpdests uses cache if non-nil, otherwise analyzes code directly.
func analyzeJumpdests(cache *jumpdest.Cache, code []byte) jumpdest.Set {
	if cache == nil {
		return jumpdest.Analyze(code)
	}
	return cache.Analyze(code)
}

// GetState returns the interpreter's current machine state.
func (it *Interpreter) GetState() *MachineState { return it.state }

// GetStack returns the interpreter's current stack.
func (it *Interpreter) GetStack() *Stack { return it.stack }

// GetTrace returns the collector holding every event recorded so far.
func (it *Interpreter) GetTrace() *trace.Collector { return it.tr }

// IsHalted reports whether execution has stopped.
func (it *Interpreter) IsHalted() bool { return it.state.Halted }

// GetHaltReason returns the reason execution stopped, or nil if it is still
// running.
func (it *Interpreter) GetHaltReason() *trace.HaltReason {
	if !it.state.Halted {
		return nil
	}
	reason := it.state.HaltReason
	return &reason
}

// Run invokes Step until it returns false.
func (it *Interpreter) Run() {
	for it.Step() {
	}
}
