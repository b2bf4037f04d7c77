// Package memhost provides an in-memory reference implementation of
// host.Host: a plain Go map keyed by storage slot, with no persistence and
// no internal synchronization.
package memhost

import (
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/blue-yard/evmix/address"
	"github.com/blue-yard/evmix/host"
	"github.com/blue-yard/evmix/word256"
)

type storageKey struct {
	addr address.Address
	key  word256.Word
}

// Host is a map-backed, non-thread-safe host.Host implementation. It is
// intended as a reference collaborator for tests and simple tooling; callers
// sharing a Host across goroutines must serialize access externally.
type Host struct {
	contract address.Address
	storage  map[storageKey]word256.Word
	logs     []host.LogEntry
}

// New creates a Host whose GetAddress() reports contract.
func New(contract address.Address) *Host {
	return &Host{
		contract: contract,
		storage:  make(map[storageKey]word256.Word),
	}
}

// SLoad returns the value at (addr, key), or zero if unset.
func (h *Host) SLoad(addr address.Address, key word256.Word) word256.Word {
	v, ok := h.storage[storageKey{addr, key}]
	if !ok {
		return word256.Zero
	}
	return v
}

// SStore stores value at (addr, key). Storing zero deletes the slot, keeping
// storage sparse.
func (h *Host) SStore(addr address.Address, key, value word256.Word) {
	k := storageKey{addr, key}
	if value.IsZero() {
		delete(h.storage, k)
		return
	}
	h.storage[k] = value
}

// Log appends entry to the host's log.
func (h *Host) Log(entry host.LogEntry) {
	h.logs = append(h.logs, entry)
}

// GetLogs returns all logs appended so far, in emission order. The returned
// slice must not be mutated by the caller.
func (h *Host) GetLogs() []host.LogEntry {
	return h.logs
}

// GetAddress returns the address this host was constructed with.
func (h *Host) GetAddress() address.Address {
	return h.contract
}

// StorageEntry is a single set slot, as reported by StorageSnapshot.
type StorageEntry struct {
	Address address.Address
	Key     word256.Word
	Value   word256.Word
}

// StorageSnapshot returns every currently-set slot across all addresses, in
// a deterministic order (by address, then by key) regardless of Go's
// randomized map iteration order. Intended for dumping final state after a
// run completes, for offline inspection or golden-file comparison.
func (h *Host) StorageSnapshot() []StorageEntry {
	keys := maps.Keys(h.storage)
	slices.SortFunc(keys, func(a, b storageKey) int {
		if a.addr != b.addr {
			return strings.Compare(a.addr.Hex(), b.addr.Hex())
		}
		return strings.Compare(a.key.Hex(), b.key.Hex())
	})
	entries := make([]StorageEntry, len(keys))
	for i, k := range keys {
		entries[i] = StorageEntry{Address: k.addr, Key: k.key, Value: h.storage[k]}
	}
	return entries
}

var _ host.Host = (*Host)(nil)
