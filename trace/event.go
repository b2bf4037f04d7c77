// Package trace implements the append-only, replayable event pipeline that
// mirrors every semantically meaningful action taken by the interpreter: a
// structured, JSON-round-trippable event per mutation, suitable for offline
// replay, rather than an ad-hoc human-readable log line.
package trace

import "fmt"

// EventType names the variant of a TraceEvent, matching the wire format's
// "type" discriminator.
type EventType string

const (
	TypeOpcodeStart  EventType = "opcode.start"
	TypeStackPush    EventType = "stack.push"
	TypeStackPop     EventType = "stack.pop"
	TypeMemoryWrite  EventType = "memory.write"
	TypeMemoryRead   EventType = "memory.read"
	TypeStorageRead  EventType = "storage.read"
	TypeStorageWrite EventType = "storage.write"
	TypeGasCharge    EventType = "gas.charge"
	TypeJump         EventType = "jump"
	TypeHalt         EventType = "halt"
	TypeLog          EventType = "log"
)

// Event is the common interface implemented by every trace event variant.
// All variants carry a monotonically increasing sequence index, the PC at
// which they were generated, and the gas remaining at the moment of
// recording.
type Event interface {
	Type() EventType
	Index() int
	PC() int
	GasRemaining() int64
}

// base holds the fields common to every event variant.
type base struct {
	index int
	pc    int
	gas   int64
}

func (b base) Index() int          { return b.index }
func (b base) PC() int             { return b.pc }
func (b base) GasRemaining() int64 { return b.gas }

// OpcodeStart records the start of processing for a single instruction.
type OpcodeStart struct {
	base
	Opcode byte
	Name   string
}

func (OpcodeStart) Type() EventType { return TypeOpcodeStart }

// StackPush records a value pushed onto the stack.
type StackPush struct {
	base
	Value [32]byte
}

func (StackPush) Type() EventType { return TypeStackPush }

// StackPop records a value popped off the stack.
type StackPop struct {
	base
	Value [32]byte
}

func (StackPop) Type() EventType { return TypeStackPop }

// MemoryWrite records bytes written into memory.
type MemoryWrite struct {
	base
	Offset uint64
	Data   []byte
}

func (MemoryWrite) Type() EventType { return TypeMemoryWrite }

// MemoryRead records a memory read of a given length.
type MemoryRead struct {
	base
	Offset uint64
	Length uint64
}

func (MemoryRead) Type() EventType { return TypeMemoryRead }

// StorageRead records a value loaded from host storage.
type StorageRead struct {
	base
	Address [20]byte
	Key     [32]byte
	Value   [32]byte
}

func (StorageRead) Type() EventType { return TypeStorageRead }

// StorageWrite records a value committed to host storage.
type StorageWrite struct {
	base
	Address [20]byte
	Key     [32]byte
	Value   [32]byte
}

func (StorageWrite) Type() EventType { return TypeStorageWrite }

// GasCharge records a single gas deduction and the mnemonic/category that
// incurred it.
type GasCharge struct {
	base
	Amount int64
	Reason string
}

func (GasCharge) Type() EventType { return TypeGasCharge }

// Jump records a control-flow transfer attempt, taken or not.
type Jump struct {
	base
	From        int
	To          int
	Conditional bool
	Taken       bool
}

func (Jump) Type() EventType { return TypeJump }

// Halt records the terminal event of an execution.
type Halt struct {
	base
	Reason HaltReason
}

func (Halt) Type() EventType { return TypeHalt }

// Log records a LOG0..LOG4 emission.
type Log struct {
	base
	Address [20]byte
	Topics  [][32]byte
	Data    []byte
}

func (Log) Type() EventType { return TypeLog }

// newBase is used by the collector to stamp common fields onto a freshly
// constructed event before recording it.
func newBase(index, pc int, gas int64) base {
	return base{index: index, pc: pc, gas: gas}
}

// String implements fmt.Stringer for debugging convenience; it is not part
// of the wire format.
func (e base) String() string {
	return fmt.Sprintf("#%d@pc=%d gas=%d", e.index, e.pc, e.gas)
}
