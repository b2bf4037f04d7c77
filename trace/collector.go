package trace

// Collector is an append-only list of trace events plus a monotonic
// next-index counter. It is the sole mechanism by which interpreter
// handlers make their mutations observable.
type Collector struct {
	events []Event
	next   int
}

// NewCollector returns an empty Collector with its index counter at 0.
func NewCollector() *Collector {
	return &Collector{}
}

// NextIndex returns the next sequence number and post-increments the
// counter, without recording anything. Event constructors use this to stamp
// their index before the event is built.
func (c *Collector) NextIndex() int {
	i := c.next
	c.next++
	return i
}

// Record appends an event. Events are never reordered or removed.
func (c *Collector) Record(e Event) {
	c.events = append(c.events, e)
}

// Events returns the recorded events in recording order. The returned slice
// must not be mutated by the caller.
func (c *Collector) Events() []Event {
	return c.events
}

// Len returns the number of recorded events.
func (c *Collector) Len() int {
	return len(c.events)
}

// Clone returns an independent Collector sharing no state with c.
func (c *Collector) Clone() *Collector {
	clone := &Collector{
		events: make([]Event, len(c.events)),
		next:   c.next,
	}
	copy(clone.events, c.events)
	return clone
}

// --- Convenience recorders ---
//
// Each method stamps common fields (index, pc, gasRemaining) using the
// collector's own counter, builds the corresponding event, records it, and
// returns it to the caller. This keeps the index/pc/gas bookkeeping in one
// place instead of at every call site in the interpreter package; the order
// in which events are recorded is decided by the callers.

func (c *Collector) OpcodeStart(pc int, gas int64, opcode byte, name string) OpcodeStart {
	e := OpcodeStart{base: newBase(c.NextIndex(), pc, gas), Opcode: opcode, Name: name}
	c.Record(e)
	return e
}

func (c *Collector) StackPush(pc int, gas int64, value [32]byte) StackPush {
	e := StackPush{base: newBase(c.NextIndex(), pc, gas), Value: value}
	c.Record(e)
	return e
}

func (c *Collector) StackPop(pc int, gas int64, value [32]byte) StackPop {
	e := StackPop{base: newBase(c.NextIndex(), pc, gas), Value: value}
	c.Record(e)
	return e
}

func (c *Collector) MemoryWrite(pc int, gas int64, offset uint64, data []byte) MemoryWrite {
	cp := make([]byte, len(data))
	copy(cp, data)
	e := MemoryWrite{base: newBase(c.NextIndex(), pc, gas), Offset: offset, Data: cp}
	c.Record(e)
	return e
}

func (c *Collector) MemoryRead(pc int, gas int64, offset, length uint64) MemoryRead {
	e := MemoryRead{base: newBase(c.NextIndex(), pc, gas), Offset: offset, Length: length}
	c.Record(e)
	return e
}

func (c *Collector) StorageRead(pc int, gas int64, addr [20]byte, key, value [32]byte) StorageRead {
	e := StorageRead{base: newBase(c.NextIndex(), pc, gas), Address: addr, Key: key, Value: value}
	c.Record(e)
	return e
}

func (c *Collector) StorageWrite(pc int, gas int64, addr [20]byte, key, value [32]byte) StorageWrite {
	e := StorageWrite{base: newBase(c.NextIndex(), pc, gas), Address: addr, Key: key, Value: value}
	c.Record(e)
	return e
}

func (c *Collector) GasCharge(pc int, gas int64, amount int64, reason string) GasCharge {
	e := GasCharge{base: newBase(c.NextIndex(), pc, gas), Amount: amount, Reason: reason}
	c.Record(e)
	return e
}

func (c *Collector) Jump(pc int, gas int64, from, to int, conditional, taken bool) Jump {
	e := Jump{base: newBase(c.NextIndex(), pc, gas), From: from, To: to, Conditional: conditional, Taken: taken}
	c.Record(e)
	return e
}

func (c *Collector) Halt(pc int, gas int64, reason HaltReason) Halt {
	e := Halt{base: newBase(c.NextIndex(), pc, gas), Reason: reason}
	c.Record(e)
	return e
}

func (c *Collector) Log(pc int, gas int64, addr [20]byte, topics [][32]byte, data []byte) Log {
	ts := make([][32]byte, len(topics))
	copy(ts, topics)
	d := make([]byte, len(data))
	copy(d, data)
	e := Log{base: newBase(c.NextIndex(), pc, gas), Address: addr, Topics: ts, Data: d}
	c.Record(e)
	return e
}
