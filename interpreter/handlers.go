package interpreter

import (
	"github.com/blue-yard/evmix/host"
	"github.com/blue-yard/evmix/trace"
	"github.com/blue-yard/evmix/word256"
)

// Each handler below charges baseline gas, pops inputs (recording a
// StackPop per item), computes, charges any dynamic gas, performs side
// effects and pushes results (recording a StackPush per item). SSTORE,
// whose whole cost depends on the slot's current and new value, pops its
// operands before charging; STOP, RETURN and REVERT have no baseline
// charge. Each handler moves PC itself: JUMP and a taken JUMPI set it
// directly, STOP/RETURN/REVERT halt, and every other handler calls
// advancePC.

// advancePC moves PC forward by n, unless the state has already halted.
func (it *Interpreter) advancePC(n int) {
	if it.state.Halted {
		return
	}
	it.state.PC += n
}

func (it *Interpreter) opStop() error {
	it.haltWith(trace.Stop)
	return nil
}

func (it *Interpreter) opAdd() error {
	if err := it.chargeAndRecord(gasFastest, "ADD"); err != nil {
		return err
	}
	b, err := it.pop()
	if err != nil {
		return err
	}
	a, err := it.pop()
	if err != nil {
		return err
	}
	if err := it.push(a.Add(b)); err != nil {
		return err
	}
	it.advancePC(1)
	return nil
}

func (it *Interpreter) opSub() error {
	if err := it.chargeAndRecord(gasFastest, "SUB"); err != nil {
		return err
	}
	b, err := it.pop()
	if err != nil {
		return err
	}
	a, err := it.pop()
	if err != nil {
		return err
	}
	if err := it.push(a.Sub(b)); err != nil {
		return err
	}
	it.advancePC(1)
	return nil
}

func (it *Interpreter) opMul() error {
	if err := it.chargeAndRecord(gasFast, "MUL"); err != nil {
		return err
	}
	b, err := it.pop()
	if err != nil {
		return err
	}
	a, err := it.pop()
	if err != nil {
		return err
	}
	if err := it.push(a.Mul(b)); err != nil {
		return err
	}
	it.advancePC(1)
	return nil
}

func (it *Interpreter) opDiv() error {
	if err := it.chargeAndRecord(gasFast, "DIV"); err != nil {
		return err
	}
	b, err := it.pop()
	if err != nil {
		return err
	}
	a, err := it.pop()
	if err != nil {
		return err
	}
	if err := it.push(a.Div(b)); err != nil {
		return err
	}
	it.advancePC(1)
	return nil
}

func (it *Interpreter) opPop() error {
	if err := it.chargeAndRecord(gasQuick, "POP"); err != nil {
		return err
	}
	if _, err := it.pop(); err != nil {
		return err
	}
	it.advancePC(1)
	return nil
}

func (it *Interpreter) opMload() error {
	if err := it.chargeAndRecord(gasFastest, "MLOAD"); err != nil {
		return err
	}
	addrWord, err := it.pop()
	if err != nil {
		return err
	}
	offset := addrWord.Uint64()
	if err := it.state.expandMemory(offset, 32); err != nil {
		return err
	}
	data := it.state.Memory.Read(offset, 32)
	it.tr.MemoryRead(it.state.PC, it.state.GasRemaining, offset, 32)
	var b32 [32]byte
	copy(b32[:], data)
	if err := it.push(word256.FromBytes32(b32)); err != nil {
		return err
	}
	it.advancePC(1)
	return nil
}

func (it *Interpreter) opMstore() error {
	if err := it.chargeAndRecord(gasFastest, "MSTORE"); err != nil {
		return err
	}
	offsetWord, err := it.pop()
	if err != nil {
		return err
	}
	value, err := it.pop()
	if err != nil {
		return err
	}
	offset := offsetWord.Uint64()
	if err := it.state.expandMemory(offset, 32); err != nil {
		return err
	}
	b32 := value.Bytes32()
	it.state.Memory.Write(offset, b32[:])
	it.tr.MemoryWrite(it.state.PC, it.state.GasRemaining, offset, b32[:])
	it.advancePC(1)
	return nil
}

func (it *Interpreter) opMstore8() error {
	if err := it.chargeAndRecord(gasFastest, "MSTORE8"); err != nil {
		return err
	}
	offsetWord, err := it.pop()
	if err != nil {
		return err
	}
	value, err := it.pop()
	if err != nil {
		return err
	}
	offset := offsetWord.Uint64()
	if err := it.state.expandMemory(offset, 1); err != nil {
		return err
	}
	b := value.ByteAt(31)
	it.state.Memory.WriteByte(offset, b)
	it.tr.MemoryWrite(it.state.PC, it.state.GasRemaining, offset, []byte{b})
	it.advancePC(1)
	return nil
}

func (it *Interpreter) opMsize() error {
	if err := it.chargeAndRecord(gasQuick, "MSIZE"); err != nil {
		return err
	}
	if err := it.push(word256.FromUint64(uint64(it.state.Memory.Len()))); err != nil {
		return err
	}
	it.advancePC(1)
	return nil
}

func (it *Interpreter) opSload() error {
	if err := it.chargeAndRecord(gasSload, "SLOAD"); err != nil {
		return err
	}
	key, err := it.pop()
	if err != nil {
		return err
	}
	addr := it.host.GetAddress()
	value := it.host.SLoad(addr, key)
	it.tr.StorageRead(it.state.PC, it.state.GasRemaining, addr.Bytes(), key.Bytes32(), value.Bytes32())
	if err := it.push(value); err != nil {
		return err
	}
	it.advancePC(1)
	return nil
}

func (it *Interpreter) opSstore() error {
	key, err := it.pop()
	if err != nil {
		return err
	}
	value, err := it.pop()
	if err != nil {
		return err
	}
	addr := it.host.GetAddress()
	current := it.host.SLoad(addr, key)
	cost := sstoreCost(current.IsZero(), value.IsZero())
	if err := it.chargeAndRecord(cost, "SSTORE"); err != nil {
		return err
	}
	it.tr.StorageWrite(it.state.PC, it.state.GasRemaining, addr.Bytes(), key.Bytes32(), value.Bytes32())
	it.host.SStore(addr, key, value)
	it.advancePC(1)
	return nil
}

func (it *Interpreter) opJumpdest() error {
	if err := it.chargeAndRecord(gasJumpdest, "JUMPDEST"); err != nil {
		return err
	}
	it.advancePC(1)
	return nil
}

func (it *Interpreter) opJump() error {
	if err := it.chargeAndRecord(gasJump, "JUMP"); err != nil {
		return err
	}
	destWord, err := it.pop()
	if err != nil {
		return err
	}
	from := it.state.PC
	dest := destWord.Uint64()
	valid := dest < uint64(len(it.code)) && it.dests.Contains(int(dest))
	it.tr.Jump(it.state.PC, it.state.GasRemaining, from, int(dest), false, true)
	if !valid {
		return errInvalidJump
	}
	it.state.PC = int(dest)
	return nil
}

func (it *Interpreter) opJumpi() error {
	if err := it.chargeAndRecord(gasJumpi, "JUMPI"); err != nil {
		return err
	}
	condWord, err := it.pop()
	if err != nil {
		return err
	}
	destWord, err := it.pop()
	if err != nil {
		return err
	}
	from := it.state.PC
	taken := !condWord.IsZero()
	dest := destWord.Uint64()
	if !taken {
		it.tr.Jump(it.state.PC, it.state.GasRemaining, from, int(dest), true, false)
		it.advancePC(1)
		return nil
	}
	valid := dest < uint64(len(it.code)) && it.dests.Contains(int(dest))
	it.tr.Jump(it.state.PC, it.state.GasRemaining, from, int(dest), true, true)
	if !valid {
		return errInvalidJump
	}
	it.state.PC = int(dest)
	return nil
}

func (it *Interpreter) opPc() error {
	if err := it.chargeAndRecord(gasQuick, "PC"); err != nil {
		return err
	}
	if err := it.push(word256.FromUint64(uint64(it.state.PC))); err != nil {
		return err
	}
	it.advancePC(1)
	return nil
}

func (it *Interpreter) opPush(n int) error {
	if err := it.chargeAndRecord(gasFastest, "PUSH"); err != nil {
		return err
	}
	var buf [32]byte
	start := it.state.PC + 1
	for i := 0; i < n; i++ {
		srcIdx := start + i
		if srcIdx < len(it.code) {
			buf[32-n+i] = it.code[srcIdx]
		}
	}
	if err := it.push(word256.FromBytes32(buf)); err != nil {
		return err
	}
	it.advancePC(1 + n)
	return nil
}

func (it *Interpreter) opDup(n int) error {
	if err := it.chargeAndRecord(gasFastest, "DUP"); err != nil {
		return err
	}
	v, err := it.stack.PeekAt(n - 1)
	if err != nil {
		return err
	}
	if err := it.push(v); err != nil {
		return err
	}
	it.advancePC(1)
	return nil
}

func (it *Interpreter) opSwap(n int) error {
	if err := it.chargeAndRecord(gasFastest, "SWAP"); err != nil {
		return err
	}
	if err := it.stack.Swap(n); err != nil {
		return err
	}
	it.advancePC(1)
	return nil
}

func (it *Interpreter) opCalldataload() error {
	if err := it.chargeAndRecord(gasFastest, "CALLDATALOAD"); err != nil {
		return err
	}
	offsetWord, err := it.pop()
	if err != nil {
		return err
	}
	offset := offsetWord.Uint64()
	var buf [32]byte
	for i := 0; i < 32; i++ {
		idx := offset + uint64(i)
		if idx < uint64(len(it.calldata)) {
			buf[i] = it.calldata[idx]
		}
	}
	if err := it.push(word256.FromBytes32(buf)); err != nil {
		return err
	}
	it.advancePC(1)
	return nil
}

func (it *Interpreter) opCalldatasize() error {
	if err := it.chargeAndRecord(gasQuick, "CALLDATASIZE"); err != nil {
		return err
	}
	if err := it.push(word256.FromUint64(uint64(len(it.calldata)))); err != nil {
		return err
	}
	it.advancePC(1)
	return nil
}

func (it *Interpreter) opCalldatacopy() error {
	if err := it.chargeAndRecord(gasFastest, "CALLDATACOPY"); err != nil {
		return err
	}
	destWord, err := it.pop()
	if err != nil {
		return err
	}
	srcWord, err := it.pop()
	if err != nil {
		return err
	}
	lengthWord, err := it.pop()
	if err != nil {
		return err
	}
	dest := destWord.Uint64()
	src := srcWord.Uint64()
	length := lengthWord.Uint64()

	if err := it.chargeAndRecord(copyWordCost(length), "CALLDATACOPY_WORD"); err != nil {
		return err
	}
	if err := it.state.expandMemory(dest, length); err != nil {
		return err
	}

	buf := make([]byte, length)
	for i := uint64(0); i < length; i++ {
		idx := src + i
		if idx < uint64(len(it.calldata)) {
			buf[i] = it.calldata[idx]
		}
	}
	if length > 0 {
		it.state.Memory.Write(dest, buf)
		it.tr.MemoryWrite(it.state.PC, it.state.GasRemaining, dest, buf)
	}
	it.advancePC(1)
	return nil
}

func (it *Interpreter) opReturn() error {
	offsetWord, err := it.pop()
	if err != nil {
		return err
	}
	lengthWord, err := it.pop()
	if err != nil {
		return err
	}
	offset := offsetWord.Uint64()
	length := lengthWord.Uint64()
	if err := it.state.expandMemory(offset, length); err != nil {
		return err
	}
	it.state.ReturnData = it.state.Memory.Read(offset, length)
	it.haltWith(trace.Return)
	return nil
}

func (it *Interpreter) opRevert() error {
	offsetWord, err := it.pop()
	if err != nil {
		return err
	}
	lengthWord, err := it.pop()
	if err != nil {
		return err
	}
	offset := offsetWord.Uint64()
	length := lengthWord.Uint64()
	if err := it.state.expandMemory(offset, length); err != nil {
		return err
	}
	it.state.ReturnData = it.state.Memory.Read(offset, length)
	it.haltWith(trace.Revert)
	return nil
}

func (it *Interpreter) opLog(topicCount int) error {
	if err := it.chargeAndRecord(gasLogBase+int64(topicCount)*gasLogPerTopic, "LOG"); err != nil {
		return err
	}
	offsetWord, err := it.pop()
	if err != nil {
		return err
	}
	lengthWord, err := it.pop()
	if err != nil {
		return err
	}
	topics := make([]word256.Word, topicCount)
	for i := 0; i < topicCount; i++ {
		topics[i], err = it.pop()
		if err != nil {
			return err
		}
	}
	offset := offsetWord.Uint64()
	length := lengthWord.Uint64()

	if err := it.chargeAndRecord(int64(length)*gasLogPerByte, "LOG_DATA"); err != nil {
		return err
	}
	if err := it.state.expandMemory(offset, length); err != nil {
		return err
	}

	data := it.state.Memory.Read(offset, length)
	addr := it.host.GetAddress()
	wireTopics := make([][32]byte, topicCount)
	for i, t := range topics {
		wireTopics[i] = t.Bytes32()
	}
	it.tr.Log(it.state.PC, it.state.GasRemaining, addr.Bytes(), wireTopics, data)
	it.host.Log(host.LogEntry{Address: addr, Topics: topics, Data: data})
	it.advancePC(1)
	return nil
}
