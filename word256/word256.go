// Package word256 implements the EVM's universal 256-bit unsigned integer
// value type. It is a thin wrapper around github.com/holiman/uint256 rather
// than a hand-rolled arbitrary-precision type: Go has no native 256-bit
// integer, and uint256.Int already provides allocation-free modular
// arithmetic at exactly this width.
package word256

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/holiman/uint256"
)

// Word is an unsigned integer in [0, 2^256). The zero value is zero.
type Word struct {
	v uint256.Int
}

// Zero is the additive identity.
var Zero = Word{}

// One is the multiplicative identity.
var One = FromUint64(1)

// Max is the largest representable value, 2^256 - 1.
var Max = func() Word {
	var w Word
	for i := range w.v {
		w.v[i] = ^uint64(0)
	}
	return w
}()

// FromUint64 constructs a Word from a native unsigned integer.
func FromUint64(v uint64) Word {
	var w Word
	w.v.SetUint64(v)
	return w
}

// FromBytes constructs a Word from a big-endian byte slice of length at most
// 32. Longer inputs are an error, since they cannot be losslessly represented.
func FromBytes(b []byte) (Word, error) {
	if len(b) > 32 {
		return Word{}, fmt.Errorf("word256: byte slice of length %d exceeds 32 bytes", len(b))
	}
	var w Word
	w.v.SetBytes(b)
	return w, nil
}

// FromBytes32 constructs a Word from an exact 32-byte big-endian array.
func FromBytes32(b [32]byte) Word {
	var w Word
	w.v.SetBytes32(b[:])
	return w
}

// FromHex parses a 256-bit value from a hex string. The "0x" prefix is
// optional. Non-hex characters or an input representing more than 32 bytes
// are rejected.
func FromHex(s string) (Word, error) {
	s = strings.TrimPrefix(s, "0x")
	s = strings.TrimPrefix(s, "0X")
	if s == "" {
		return Word{}, nil
	}
	if len(s)%2 != 0 {
		s = "0" + s
	}
	if len(s) > 64 {
		return Word{}, fmt.Errorf("word256: hex string %q exceeds 32 bytes", s)
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return Word{}, fmt.Errorf("word256: invalid hex string %q: %w", s, err)
	}
	return FromBytes(b)
}

// Bytes32 returns the big-endian 32-byte representation of w.
func (w Word) Bytes32() [32]byte {
	return w.v.Bytes32()
}

// Hex returns the 64-character, zero-padded hex representation with a "0x"
// prefix.
func (w Word) Hex() string {
	return "0x" + w.HexNoPrefix()
}

// HexNoPrefix returns the 64-character, zero-padded hex representation
// without a "0x" prefix.
func (w Word) HexNoPrefix() string {
	b := w.v.Bytes32()
	return hex.EncodeToString(b[:])
}

// Decimal returns the base-10 representation of w.
func (w Word) Decimal() string {
	return w.v.Dec()
}

// Binary returns the 256-character, zero-padded base-2 representation.
func (w Word) Binary() string {
	b := w.v.Bytes32()
	var sb strings.Builder
	sb.Grow(256)
	for _, by := range b {
		fmt.Fprintf(&sb, "%08b", by)
	}
	return sb.String()
}

// ByteAt returns the byte at the given big-endian index, where index 0 is
// the most significant byte. Indices outside [0, 31] yield 0.
func (w Word) ByteAt(index int) byte {
	if index < 0 || index > 31 {
		return 0
	}
	b := w.v.Bytes32()
	return b[index]
}

// Add returns w + o mod 2^256.
func (w Word) Add(o Word) Word {
	var r Word
	r.v.Add(&w.v, &o.v)
	return r
}

// Sub returns w - o mod 2^256.
func (w Word) Sub(o Word) Word {
	var r Word
	r.v.Sub(&w.v, &o.v)
	return r
}

// Mul returns w * o mod 2^256.
func (w Word) Mul(o Word) Word {
	var r Word
	r.v.Mul(&w.v, &o.v)
	return r
}

// Div returns floor(w / o), or 0 if o is zero.
func (w Word) Div(o Word) Word {
	var r Word
	r.v.Div(&w.v, &o.v)
	return r
}

// Mod returns w mod o, or 0 if o is zero.
func (w Word) Mod(o Word) Word {
	var r Word
	r.v.Mod(&w.v, &o.v)
	return r
}

// Exp returns w ^ e mod 2^256, computed by square-and-multiply.
func (w Word) Exp(e Word) Word {
	var r Word
	r.v.Exp(&w.v, &e.v)
	return r
}

// And returns the bitwise AND of w and o.
func (w Word) And(o Word) Word {
	var r Word
	r.v.And(&w.v, &o.v)
	return r
}

// Or returns the bitwise OR of w and o.
func (w Word) Or(o Word) Word {
	var r Word
	r.v.Or(&w.v, &o.v)
	return r
}

// Xor returns the bitwise XOR of w and o.
func (w Word) Xor(o Word) Word {
	var r Word
	r.v.Xor(&w.v, &o.v)
	return r
}

// Not returns the bitwise complement of w.
func (w Word) Not() Word {
	var r Word
	r.v.Not(&w.v)
	return r
}

// Lsh returns w shifted left by n bits. Shifting by 256 or more yields 0.
func (w Word) Lsh(n uint) Word {
	if n >= 256 {
		return Zero
	}
	var r Word
	r.v.Lsh(&w.v, n)
	return r
}

// Rsh returns w shifted right (logically) by n bits. Shifting by 256 or more
// yields 0.
func (w Word) Rsh(n uint) Word {
	if n >= 256 {
		return Zero
	}
	var r Word
	r.v.Rsh(&w.v, n)
	return r
}

// Eq reports whether w equals o.
func (w Word) Eq(o Word) bool {
	return w.v.Eq(&o.v)
}

// Lt reports whether w is (unsigned) less than o.
func (w Word) Lt(o Word) bool {
	return w.v.Lt(&o.v)
}

// Gt reports whether w is (unsigned) greater than o.
func (w Word) Gt(o Word) bool {
	return w.v.Gt(&o.v)
}

// IsZero reports whether w is the zero value.
func (w Word) IsZero() bool {
	return w.v.IsZero()
}

// Uint64 returns the low 64 bits of w, truncating silently. Useful for values
// known in context to fit (e.g. memory offsets read off the stack).
func (w Word) Uint64() uint64 {
	return w.v.Uint64()
}

// String implements fmt.Stringer as the zero-padded hex form.
func (w Word) String() string {
	return w.Hex()
}
