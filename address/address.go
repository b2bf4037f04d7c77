// Package address implements the EVM's 160-bit account address type as a
// fixed-width byte array.
package address

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Address is an unsigned integer in [0, 2^160), represented as 20 big-endian
// bytes.
type Address [20]byte

// Zero is the all-zero address.
var Zero = Address{}

// FromBytes constructs an Address from a big-endian byte slice of length at
// most 20.
func FromBytes(b []byte) (Address, error) {
	if len(b) > 20 {
		return Address{}, fmt.Errorf("address: byte slice of length %d exceeds 20 bytes", len(b))
	}
	var a Address
	copy(a[20-len(b):], b)
	return a, nil
}

// FromHex parses a 160-bit address from a hex string. The "0x" prefix is
// optional. Non-hex characters or an input representing more than 20 bytes
// are rejected.
func FromHex(s string) (Address, error) {
	s = strings.TrimPrefix(s, "0x")
	s = strings.TrimPrefix(s, "0X")
	if len(s)%2 != 0 {
		s = "0" + s
	}
	if len(s) > 40 {
		return Address{}, fmt.Errorf("address: hex string %q exceeds 20 bytes", s)
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return Address{}, fmt.Errorf("address: invalid hex string %q: %w", s, err)
	}
	return FromBytes(b)
}

// Bytes returns the 20-byte big-endian representation of a.
func (a Address) Bytes() [20]byte {
	return a
}

// Hex returns the 40-character, zero-padded hex representation with a "0x"
// prefix.
func (a Address) Hex() string {
	return "0x" + hex.EncodeToString(a[:])
}

// String implements fmt.Stringer as the hex form.
func (a Address) String() string {
	return a.Hex()
}

// Eq reports whether a equals o.
func (a Address) Eq(o Address) bool {
	return a == o
}

// IsZero reports whether a is the zero address.
func (a Address) IsZero() bool {
	return a == Zero
}
