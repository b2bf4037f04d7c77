// Package jumpdest implements the one-pass scan that determines the set of
// valid JUMP/JUMPI targets in a bytecode. Results are memoized in a bounded
// LRU keyed by the bytecode itself: analysis is a pure, deterministic
// function of the bytecode, and interpreters are frequently constructed
// repeatedly over the same program. The cache is purely an internal
// optimization and never affects observable trace output.
package jumpdest

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/blue-yard/evmix/opcodes"
)

// Set is the immutable set of valid jump-destination positions for a given
// bytecode.
type Set struct {
	positions map[int]struct{}
}

// Contains reports whether pos is a valid JUMP/JUMPI target.
func (s Set) Contains(pos int) bool {
	_, ok := s.positions[pos]
	return ok
}

// Analyze walks code once, collecting every position holding a JUMPDEST
// opcode that is not inside a PUSH immediate. PUSH immediate data is skipped
// wholesale, so a 0x5B byte appearing inside it is never added to the set.
func Analyze(code []byte) Set {
	positions := make(map[int]struct{})
	for i := 0; i < len(code); {
		op := opcodes.OpCode(code[i])
		if op == opcodes.JUMPDEST {
			positions[i] = struct{}{}
			i++
			continue
		}
		if opcodes.IsPush(op) {
			i += 1 + opcodes.PushBytes(op)
			continue
		}
		i++
	}
	return Set{positions: positions}
}

// Cache is an LRU-memoized front end for Analyze, keyed by the bytecode
// itself (as a string, so it is comparable) rather than a hash digest of it:
// the bytecodes analyzed here are at most a few tens of kilobytes, so using
// the exact content as the key avoids any possibility of a hash collision
// silently returning another program's jump-destination set.
type Cache struct {
	cache *lru.Cache[string, Set]
}

// defaultCacheSize bounds the number of distinct bytecodes whose analysis is
// retained.
const defaultCacheSize = 256

// NewCache creates an empty jump-destination cache with room for
// defaultCacheSize distinct bytecodes.
func NewCache() *Cache {
	c, err := lru.New[string, Set](defaultCacheSize)
	if err != nil {
		// lru.New only errors for a non-positive size, which defaultCacheSize
		// never is.
		panic(err)
	}
	return &Cache{cache: c}
}

// Analyze returns the jump-destination set for code, computing and caching
// it on first use.
func (c *Cache) Analyze(code []byte) Set {
	key := string(code)
	if set, ok := c.cache.Get(key); ok {
		return set
	}
	set := Analyze(code)
	c.cache.Add(key, set)
	return set
}
