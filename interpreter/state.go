package interpreter

import "github.com/blue-yard/evmix/trace"

// MachineState holds everything about a single execution that is not the
// stack: the program counter, remaining gas, memory, the bytes returned by
// a terminal RETURN/REVERT, and the halt status once execution stops.
type MachineState struct {
	PC           int
	GasRemaining int64
	Memory       *Memory
	ReturnData   []byte
	Halted       bool
	HaltReason   trace.HaltReason
}

// NewMachineState returns a fresh, running state with the given initial gas.
func NewMachineState(initialGas int64) *MachineState {
	return &MachineState{
		GasRemaining: initialGas,
		Memory:       NewMemory(),
	}
}

// chargeGas deducts amount from the remaining gas. If amount exceeds what
// remains, gas is left untouched, the state is marked halted with
// OutOfGas, and errOutOfGas is returned: the caller must stop executing
// without applying any side effect the charge was meant to guard.
func (st *MachineState) chargeGas(amount int64) error {
	if amount > st.GasRemaining {
		st.halt(trace.OutOfGas)
		return errOutOfGas
	}
	st.GasRemaining -= amount
	return nil
}

// halt marks the state as stopped with the given reason. It is a no-op if
// the state is already halted, since only the first halt reason is
// meaningful.
func (st *MachineState) halt(reason trace.HaltReason) {
	if st.Halted {
		return
	}
	st.Halted = true
	st.HaltReason = reason
}

// expandMemory grows Memory to cover a read or write of length bytes at
// offset, charging the incremental memory-expansion cost. A length of 0
// requires no expansion and charges nothing, regardless of offset.
func (st *MachineState) expandMemory(offset, length uint64) error {
	words := requiredWords(offset, length)
	cost := st.Memory.expansionCost(words)
	if err := st.chargeGas(cost); err != nil {
		return err
	}
	st.Memory.grow(words)
	return nil
}

// clone returns an independent deep copy of the state.
func (st *MachineState) clone() *MachineState {
	c := *st
	c.Memory = &Memory{data: append([]byte(nil), st.Memory.data...)}
	c.ReturnData = append([]byte(nil), st.ReturnData...)
	return &c
}
