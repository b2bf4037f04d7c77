package interpreter

import (
	"bytes"
	"testing"
)

func TestMemory_RequiredWords(t *testing.T) {
	cases := []struct {
		offset, length uint64
		want           uint64
	}{
		{0, 0, 0},
		{0, 1, 1},
		{0, 32, 1},
		{0, 33, 2},
		{31, 1, 1},
		{32, 1, 2},
	}
	for _, c := range cases {
		got := requiredWords(c.offset, c.length)
		if got != c.want {
			t.Errorf("requiredWords(%d, %d) = %d, want %d", c.offset, c.length, got, c.want)
		}
	}
}

func TestMemory_ExpansionCost_ZeroWhenNoGrowth(t *testing.T) {
	m := NewMemory()
	m.grow(4)
	if cost := m.expansionCost(4); cost != 0 {
		t.Errorf("expansionCost(4) after growing to 4 = %d, want 0", cost)
	}
	if cost := m.expansionCost(2); cost != 0 {
		t.Errorf("expansionCost(2) when already at 4 = %d, want 0", cost)
	}
}

func TestMemory_ExpansionCost_MatchesFormula(t *testing.T) {
	m := NewMemory()
	// C(1) = 3*1 + floor(1/512) = 3
	if cost := m.expansionCost(1); cost != 3 {
		t.Errorf("expansionCost(1) from empty = %d, want 3", cost)
	}
	m.grow(1)
	// C(2) - C(1) = (6+0) - (3+0) = 3
	if cost := m.expansionCost(2); cost != 3 {
		t.Errorf("expansionCost(2) from 1 = %d, want 3", cost)
	}
}

func TestMemory_ExpansionCost_LargeGrowthIsQuadratic(t *testing.T) {
	m := NewMemory()
	// C(1000) = 3000 + floor(1000000/512) = 3000 + 1953 = 4953
	if cost := m.expansionCost(1000); cost != 4953 {
		t.Errorf("expansionCost(1000) from empty = %d, want 4953", cost)
	}
}

func TestMemory_Grow_NeverShrinks(t *testing.T) {
	m := NewMemory()
	m.grow(4)
	m.grow(2)
	if m.wordCount() != 4 {
		t.Errorf("wordCount() = %d after growing to 2 from 4, want 4", m.wordCount())
	}
}

func TestMemory_Grow_ZeroesNewSpace(t *testing.T) {
	m := NewMemory()
	m.grow(1)
	m.Write(0, []byte{0xFF, 0xFF})
	m.grow(2)
	got := m.Read(0, 64)
	want := make([]byte, 64)
	want[0], want[1] = 0xFF, 0xFF
	if !bytes.Equal(got, want) {
		t.Errorf("Read(0, 64) after growth = %x, want %x", got, want)
	}
}

func TestMemory_WriteThenRead_RoundTrips(t *testing.T) {
	m := NewMemory()
	m.grow(requiredWords(10, 5))
	m.Write(10, []byte{1, 2, 3, 4, 5})
	got := m.Read(10, 5)
	if !bytes.Equal(got, []byte{1, 2, 3, 4, 5}) {
		t.Errorf("Read(10, 5) = %v, want [1 2 3 4 5]", got)
	}
}

func TestMemory_Read_ZeroLengthReturnsEmpty(t *testing.T) {
	m := NewMemory()
	if got := m.Read(0, 0); len(got) != 0 {
		t.Errorf("Read(0, 0) = %v, want empty", got)
	}
}

func TestMemory_WriteByte(t *testing.T) {
	m := NewMemory()
	m.grow(1)
	m.WriteByte(5, 0x42)
	got := m.Read(5, 1)
	if got[0] != 0x42 {
		t.Errorf("Read(5, 1)[0] = %x, want 0x42", got[0])
	}
}
