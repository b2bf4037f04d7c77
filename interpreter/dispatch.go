package interpreter

import (
	"errors"

	"github.com/blue-yard/evmix/opcodes"
	"github.com/blue-yard/evmix/trace"
	"github.com/blue-yard/evmix/word256"
)

// chargeAndRecord charges amount for reason and, if the charge succeeds,
// records the corresponding GasCharge event. A failed charge records no
// event: nothing was actually deducted, so there is nothing to report other
// than the terminal Halt the caller will emit.
func (it *Interpreter) chargeAndRecord(amount int64, reason string) error {
	if err := it.state.chargeGas(amount); err != nil {
		return err
	}
	it.tr.GasCharge(it.state.PC, it.state.GasRemaining, amount, reason)
	return nil
}

// pop removes the top stack item and records a StackPop for it.
func (it *Interpreter) pop() (word256.Word, error) {
	v, err := it.stack.Pop()
	if err != nil {
		return v, err
	}
	b := v.Bytes32()
	it.tr.StackPop(it.state.PC, it.state.GasRemaining, b)
	return v, nil
}

// push adds v to the stack and records a StackPush for it.
func (it *Interpreter) push(v word256.Word) error {
	if err := it.stack.Push(v); err != nil {
		return err
	}
	it.tr.StackPush(it.state.PC, it.state.GasRemaining, v.Bytes32())
	return nil
}

// Step executes a single opcode. It returns false once execution has
// halted, including the call that caused the halt; a halted interpreter's
// further Step calls are no-ops also returning false.
func (it *Interpreter) Step() bool {
	if it.state.Halted {
		return false
	}

	if it.state.PC >= len(it.code) {
		it.haltWith(trace.Stop)
		it.recordHalt()
		return false
	}

	opByte := it.code[it.state.PC]
	op := opcodes.OpCode(opByte)
	it.tr.OpcodeStart(it.state.PC, it.state.GasRemaining, opByte, opcodes.Name(op))
	it.logger.logStep(opcodes.Name(op), it.state.GasRemaining, it.stack)

	err := it.dispatch(op)
	if err != nil && !it.state.Halted {
		it.haltWith(reasonFor(err))
	}

	if it.state.Halted {
		it.recordHalt()
		return false
	}
	return true
}

// haltWith marks the state halted with reason, unless it already is.
func (it *Interpreter) haltWith(reason trace.HaltReason) {
	it.state.halt(reason)
}

// recordHalt emits the terminal Halt event for the current halt reason.
func (it *Interpreter) recordHalt() {
	it.tr.Halt(it.state.PC, it.state.GasRemaining, it.state.HaltReason)
	it.logger.logHalt(it.state.HaltReason.String())
}

// reasonFor translates a handler's sentinel error into the halt reason it
// represents. errOutOfGas already halted the state and is not routed here;
// this covers the errors a handler returns without touching Halted (stack
// errors, errInvalidOpcode, errInvalidJump).
func reasonFor(err error) trace.HaltReason {
	switch {
	case errors.Is(err, errStackUnderflow):
		return trace.StackUnderflow
	case errors.Is(err, errStackOverflow):
		return trace.StackOverflow
	case errors.Is(err, errInvalidOpcode):
		return trace.InvalidOpcode
	case errors.Is(err, errInvalidJump):
		return trace.InvalidJump
	default:
		return trace.InvalidInstruction
	}
}

// dispatch runs the handler for op. It does not touch PC itself: each
// handler advances or sets PC on its own.
func (it *Interpreter) dispatch(op opcodes.OpCode) error {
	switch {
	case opcodes.IsPush(op):
		return it.opPush(opcodes.PushBytes(op))
	case opcodes.IsDup(op):
		return it.opDup(opcodes.DupDepth(op))
	case opcodes.IsSwap(op):
		return it.opSwap(opcodes.SwapDepth(op))
	case opcodes.IsLog(op):
		return it.opLog(opcodes.LogTopicCount(op))
	}

	switch op {
	case opcodes.STOP:
		return it.opStop()
	case opcodes.ADD:
		return it.opAdd()
	case opcodes.MUL:
		return it.opMul()
	case opcodes.SUB:
		return it.opSub()
	case opcodes.DIV:
		return it.opDiv()
	case opcodes.POP:
		return it.opPop()
	case opcodes.MLOAD:
		return it.opMload()
	case opcodes.MSTORE:
		return it.opMstore()
	case opcodes.MSTORE8:
		return it.opMstore8()
	case opcodes.SLOAD:
		return it.opSload()
	case opcodes.SSTORE:
		return it.opSstore()
	case opcodes.JUMP:
		return it.opJump()
	case opcodes.JUMPI:
		return it.opJumpi()
	case opcodes.PC:
		return it.opPc()
	case opcodes.MSIZE:
		return it.opMsize()
	case opcodes.JUMPDEST:
		return it.opJumpdest()
	case opcodes.CALLDATALOAD:
		return it.opCalldataload()
	case opcodes.CALLDATASIZE:
		return it.opCalldatasize()
	case opcodes.CALLDATACOPY:
		return it.opCalldatacopy()
	case opcodes.RETURN:
		return it.opReturn()
	case opcodes.REVERT:
		return it.opRevert()
	default:
		return errInvalidOpcode
	}
}
