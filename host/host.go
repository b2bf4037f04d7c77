// Package host defines the capability surface the interpreter uses to reach
// outside of a single execution: persistent storage and log emission,
// pared down to exactly the operations this interpreter's opcode set needs
// (SLOAD/SSTORE/LOG0-4). CALL/CREATE/balance/nonce/code-hash style
// capabilities are deliberately absent since the opcodes that would use
// them are out of scope.
package host

import (
	"github.com/blue-yard/evmix/address"
	"github.com/blue-yard/evmix/word256"
)

// LogEntry is a single emitted log record, as produced by LOG0..LOG4.
type LogEntry struct {
	Address address.Address
	Topics  []word256.Word
	Data    []byte
}

//go:generate mockgen -source host.go -destination host_mock.go -package host

// Host is the capability set available to interpreter handlers. A Host
// implementation must be deterministic relative to the sequence of calls
// made against it: given the same sequence of sload/sstore/log calls, it
// must produce the same sequence of responses. The core makes no assumption
// about how a Host persists its data; it may be in-memory, mocked, or
// database-backed.
type Host interface {
	// SLoad returns the value stored at (addr, key), or the zero word if
	// the slot has never been set (storage is sparse).
	SLoad(addr address.Address, key word256.Word) word256.Word

	// SStore stores value at (addr, key). Storing the zero word deletes the
	// slot.
	SStore(addr address.Address, key, value word256.Word)

	// Log appends a log entry to the host's log.
	Log(entry LogEntry)

	// GetLogs returns all log entries appended so far, in emission order.
	GetLogs() []LogEntry

	// GetAddress returns the address of the contract currently executing.
	GetAddress() address.Address
}
