package jumpdest

import "testing"

func TestAnalyze_FindsTopLevelJumpdest(t *testing.T) {
	// PUSH1 0x05, JUMPDEST, PUSH1 0x03, ADD, STOP
	code := []byte{0x60, 0x05, 0x5B, 0x60, 0x03, 0x01, 0x00}
	set := Analyze(code)
	if !set.Contains(2) {
		t.Errorf("expected position 2 (JUMPDEST) to be a valid target")
	}
	if set.Contains(0) || set.Contains(1) {
		t.Errorf("expected positions inside PUSH1 immediate not to be valid targets")
	}
}

func TestAnalyze_JumpdestByteInsidePushImmediateIsNotATarget(t *testing.T) {
	// PUSH1 0x5B -- the immediate data byte happens to equal the JUMPDEST opcode.
	code := []byte{0x60, 0x5B, 0x00}
	set := Analyze(code)
	if set.Contains(1) {
		t.Error("0x5B inside PUSH1 immediate data must not be a valid jump target")
	}
}

func TestAnalyze_LargePushSkipsCorrectSpan(t *testing.T) {
	// PUSH32 followed by 32 bytes of 0x5B, then JUMPDEST at position 33.
	code := make([]byte, 0, 34)
	code = append(code, 0x7F)
	for i := 0; i < 32; i++ {
		code = append(code, 0x5B)
	}
	code = append(code, 0x5B) // real JUMPDEST at position 33
	set := Analyze(code)
	for i := 1; i <= 32; i++ {
		if set.Contains(i) {
			t.Errorf("position %d is inside PUSH32 immediate data, should not be a target", i)
		}
	}
	if !set.Contains(33) {
		t.Error("position 33 is a real JUMPDEST and should be a valid target")
	}
}

func TestAnalyze_EmptyCode(t *testing.T) {
	set := Analyze(nil)
	if set.Contains(0) {
		t.Error("empty code should have no valid targets")
	}
}

func TestCache_ReturnsSameResultAsAnalyze(t *testing.T) {
	code := []byte{0x60, 0x05, 0x5B, 0x00}
	want := Analyze(code)
	c := NewCache()
	got := c.Analyze(code)
	if len(got.positions) != len(want.positions) {
		t.Fatalf("cached analysis has %d positions, want %d", len(got.positions), len(want.positions))
	}
	for pos := range want.positions {
		if !got.Contains(pos) {
			t.Errorf("cached analysis missing position %d", pos)
		}
	}
}

func TestCache_DistinctBytecodesGetDistinctSets(t *testing.T) {
	c := NewCache()
	a := []byte{0x60, 0x05, 0x5B, 0x00}
	b := []byte{0x5B, 0x00}
	setA := c.Analyze(a)
	setB := c.Analyze(b)
	if setA.Contains(0) {
		t.Error("position 0 of 'a' should not be a target")
	}
	if !setB.Contains(0) {
		t.Error("position 0 of 'b' should be a target (no collision with 'a's cache entry)")
	}
}
