package interpreter

import (
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/blue-yard/evmix/address"
	"github.com/blue-yard/evmix/host"
	"github.com/blue-yard/evmix/trace"
	"github.com/blue-yard/evmix/word256"
)

// These tests pin SLOAD/SSTORE's interaction with host.Host at the
// interface boundary, against a generated mock rather than memhost.Host:
// unlike the end-to-end scenarios elsewhere in this package, they assert
// exactly which Host methods a handler invokes, with which arguments, in
// response to controlled stub return values.

func TestSload_QueriesHostWithPoppedKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockHost := host.NewMockHost(ctrl)

	contract, _ := address.FromBytes([]byte{0x42})
	key := word256.FromUint64(7)
	stored := word256.FromUint64(99)

	mockHost.EXPECT().GetAddress().Return(contract)
	mockHost.EXPECT().SLoad(contract, key).Return(stored)

	code := []byte{0x60, 0x07, 0x54, 0x00} // PUSH1 7, SLOAD, STOP
	it := NewInterpreter(Config{Bytecode: code, InitialGas: 1_000_000, Host: mockHost})
	it.Run()

	if *it.GetHaltReason() != trace.Stop {
		t.Fatalf("halt reason = %v, want Stop", it.GetHaltReason())
	}
	top, err := it.GetStack().Peek()
	if err != nil {
		t.Fatal(err)
	}
	if !top.Eq(stored) {
		t.Errorf("top of stack after SLOAD = %v, want %v", top.Hex(), stored.Hex())
	}

	var sawStorageRead bool
	for _, e := range it.GetTrace().Events() {
		if _, ok := e.(trace.StorageRead); ok {
			sawStorageRead = true
		}
	}
	if !sawStorageRead {
		t.Error("no StorageRead event recorded")
	}
}

func TestSstore_ZeroToNonZero_ChargesSetCostAndWritesThroughHost(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockHost := host.NewMockHost(ctrl)

	contract, _ := address.FromBytes([]byte{0x01})
	key := word256.FromUint64(5)
	value := word256.FromUint64(42)

	mockHost.EXPECT().GetAddress().Return(contract)
	mockHost.EXPECT().SLoad(contract, key).Return(word256.Zero) // current value: unset slot
	mockHost.EXPECT().SStore(contract, key, value)

	code := []byte{0x60, 0x2a, 0x60, 0x05, 0x55, 0x00} // PUSH1 42, PUSH1 5, SSTORE, STOP
	it := NewInterpreter(Config{Bytecode: code, InitialGas: 1_000_000, Host: mockHost})
	it.Run()

	if *it.GetHaltReason() != trace.Stop {
		t.Fatalf("halt reason = %v, want Stop", it.GetHaltReason())
	}

	var gotCharge int64
	for _, e := range it.GetTrace().Events() {
		if gc, ok := e.(trace.GasCharge); ok && gc.Reason == "SSTORE" {
			gotCharge = gc.Amount
		}
	}
	if gotCharge != gasSstoreSet {
		t.Errorf("SSTORE gas charge = %d, want %d (zero->nonzero)", gotCharge, gasSstoreSet)
	}
}

func TestSstore_NonZeroToNonZero_ChargesResetCost(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockHost := host.NewMockHost(ctrl)

	contract, _ := address.FromBytes([]byte{0x01})
	key := word256.FromUint64(5)
	value := word256.FromUint64(99)

	mockHost.EXPECT().GetAddress().Return(contract)
	mockHost.EXPECT().SLoad(contract, key).Return(word256.FromUint64(7)) // current value: already set
	mockHost.EXPECT().SStore(contract, key, value)

	code := []byte{0x60, 0x63, 0x60, 0x05, 0x55, 0x00} // PUSH1 99, PUSH1 5, SSTORE, STOP
	it := NewInterpreter(Config{Bytecode: code, InitialGas: 1_000_000, Host: mockHost})
	it.Run()

	var gotCharge int64
	for _, e := range it.GetTrace().Events() {
		if gc, ok := e.(trace.GasCharge); ok && gc.Reason == "SSTORE" {
			gotCharge = gc.Amount
		}
	}
	if gotCharge != gasSstoreReset {
		t.Errorf("SSTORE gas charge = %d, want %d (nonzero->nonzero)", gotCharge, gasSstoreReset)
	}
}
