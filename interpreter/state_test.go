package interpreter

import (
	"errors"
	"testing"

	"github.com/blue-yard/evmix/trace"
)

func TestMachineState_ChargeGas_Succeeds(t *testing.T) {
	st := NewMachineState(100)
	if err := st.chargeGas(40); err != nil {
		t.Fatal(err)
	}
	if st.GasRemaining != 60 {
		t.Errorf("GasRemaining = %d, want 60", st.GasRemaining)
	}
	if st.Halted {
		t.Error("state should not be halted")
	}
}

func TestMachineState_ChargeGas_InsufficientHaltsOutOfGas(t *testing.T) {
	st := NewMachineState(10)
	if err := st.chargeGas(11); !errors.Is(err, errOutOfGas) {
		t.Errorf("chargeGas(11) with 10 remaining = %v, want errOutOfGas", err)
	}
	if !st.Halted || st.HaltReason != trace.OutOfGas {
		t.Errorf("state Halted=%v HaltReason=%v, want Halted=true HaltReason=OutOfGas", st.Halted, st.HaltReason)
	}
	if st.GasRemaining != 10 {
		t.Errorf("GasRemaining = %d after failed charge, want unchanged 10", st.GasRemaining)
	}
}

func TestMachineState_Halt_FirstReasonWins(t *testing.T) {
	st := NewMachineState(100)
	st.halt(trace.Stop)
	st.halt(trace.Revert)
	if st.HaltReason != trace.Stop {
		t.Errorf("HaltReason = %v, want first reason Stop", st.HaltReason)
	}
}

func TestMachineState_ExpandMemory_ChargesIncrementalCost(t *testing.T) {
	st := NewMachineState(100)
	if err := st.expandMemory(0, 32); err != nil {
		t.Fatal(err)
	}
	if st.GasRemaining != 97 {
		t.Errorf("GasRemaining after expanding to 1 word = %d, want 97", st.GasRemaining)
	}
	if st.Memory.wordCount() != 1 {
		t.Errorf("wordCount() = %d, want 1", st.Memory.wordCount())
	}
}

func TestMachineState_ExpandMemory_ZeroLengthIsFree(t *testing.T) {
	st := NewMachineState(5)
	if err := st.expandMemory(1000, 0); err != nil {
		t.Fatal(err)
	}
	if st.GasRemaining != 5 {
		t.Errorf("GasRemaining = %d, want unchanged 5", st.GasRemaining)
	}
}

func TestMachineState_ExpandMemory_OutOfGas(t *testing.T) {
	st := NewMachineState(2)
	if err := st.expandMemory(0, 32); !errors.Is(err, errOutOfGas) {
		t.Errorf("expandMemory with insufficient gas = %v, want errOutOfGas", err)
	}
	if st.Memory.wordCount() != 0 {
		t.Error("memory must not grow when the expansion charge fails")
	}
}

func TestMachineState_Clone_IsIndependent(t *testing.T) {
	st := NewMachineState(100)
	st.expandMemory(0, 32)
	st.Memory.Write(0, []byte{1, 2, 3})
	clone := st.clone()
	clone.Memory.Write(0, []byte{9, 9, 9})
	if st.Memory.Read(0, 3)[0] != 1 {
		t.Error("mutating the clone's memory must not affect the original")
	}
}
