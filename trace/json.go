package trace

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"
)

// decimal is an int64 that marshals as a JSON string, matching the wire
// format's requirement that gasRemaining and gas.charge.amount are decimal
// strings (avoiding precision loss for clients that decode JSON numbers as
// floats).
type decimal int64

func (d decimal) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.FormatInt(int64(d), 10))
}

func (d *decimal) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("trace: invalid decimal %q: %w", s, err)
	}
	*d = decimal(v)
	return nil
}

func hexBytes(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}

func mustDecodeHex(s string) ([]byte, error) {
	if len(s) < 2 || (s[:2] != "0x" && s[:2] != "0X") {
		return nil, fmt.Errorf("trace: hex value %q missing 0x prefix", s)
	}
	return hex.DecodeString(s[2:])
}

// --- per-variant wire encoding ---

func (e OpcodeStart) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type         EventType `json:"type"`
		Index        int       `json:"index"`
		PC           int       `json:"pc"`
		GasRemaining decimal   `json:"gasRemaining"`
		Opcode       int       `json:"opcode"`
		OpcodeName   string    `json:"opcodeName"`
	}{e.Type(), e.index, e.pc, decimal(e.gas), int(e.Opcode), e.Name})
}

func (e StackPush) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type         EventType `json:"type"`
		Index        int       `json:"index"`
		PC           int       `json:"pc"`
		GasRemaining decimal   `json:"gasRemaining"`
		Value        string    `json:"value"`
	}{e.Type(), e.index, e.pc, decimal(e.gas), hexBytes(e.Value[:])})
}

func (e StackPop) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type         EventType `json:"type"`
		Index        int       `json:"index"`
		PC           int       `json:"pc"`
		GasRemaining decimal   `json:"gasRemaining"`
		Value        string    `json:"value"`
	}{e.Type(), e.index, e.pc, decimal(e.gas), hexBytes(e.Value[:])})
}

func (e MemoryWrite) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type         EventType `json:"type"`
		Index        int       `json:"index"`
		PC           int       `json:"pc"`
		GasRemaining decimal   `json:"gasRemaining"`
		Offset       uint64    `json:"offset"`
		Data         string    `json:"data"`
	}{e.Type(), e.index, e.pc, decimal(e.gas), e.Offset, hexBytes(e.Data)})
}

func (e MemoryRead) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type         EventType `json:"type"`
		Index        int       `json:"index"`
		PC           int       `json:"pc"`
		GasRemaining decimal   `json:"gasRemaining"`
		Offset       uint64    `json:"offset"`
		Length       uint64    `json:"length"`
	}{e.Type(), e.index, e.pc, decimal(e.gas), e.Offset, e.Length})
}

func (e StorageRead) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type         EventType `json:"type"`
		Index        int       `json:"index"`
		PC           int       `json:"pc"`
		GasRemaining decimal   `json:"gasRemaining"`
		Address      string    `json:"address"`
		Key          string    `json:"key"`
		Value        string    `json:"value"`
	}{e.Type(), e.index, e.pc, decimal(e.gas), hexBytes(e.Address[:]), hexBytes(e.Key[:]), hexBytes(e.Value[:])})
}

func (e StorageWrite) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type         EventType `json:"type"`
		Index        int       `json:"index"`
		PC           int       `json:"pc"`
		GasRemaining decimal   `json:"gasRemaining"`
		Address      string    `json:"address"`
		Key          string    `json:"key"`
		Value        string    `json:"value"`
	}{e.Type(), e.index, e.pc, decimal(e.gas), hexBytes(e.Address[:]), hexBytes(e.Key[:]), hexBytes(e.Value[:])})
}

func (e GasCharge) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type         EventType `json:"type"`
		Index        int       `json:"index"`
		PC           int       `json:"pc"`
		GasRemaining decimal   `json:"gasRemaining"`
		Amount       decimal   `json:"amount"`
		Reason       string    `json:"reason"`
	}{e.Type(), e.index, e.pc, decimal(e.gas), decimal(e.Amount), e.Reason})
}

func (e Jump) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type         EventType `json:"type"`
		Index        int       `json:"index"`
		PC           int       `json:"pc"`
		GasRemaining decimal   `json:"gasRemaining"`
		From         int       `json:"from"`
		To           int       `json:"to"`
		Conditional  bool      `json:"conditional"`
		Taken        bool      `json:"taken"`
	}{e.Type(), e.index, e.pc, decimal(e.gas), e.From, e.To, e.Conditional, e.Taken})
}

func (e Halt) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type         EventType  `json:"type"`
		Index        int        `json:"index"`
		PC           int        `json:"pc"`
		GasRemaining decimal    `json:"gasRemaining"`
		Reason       HaltReason `json:"reason"`
	}{e.Type(), e.index, e.pc, decimal(e.gas), e.Reason})
}

func (e Log) MarshalJSON() ([]byte, error) {
	topics := make([]string, len(e.Topics))
	for i, t := range e.Topics {
		topics[i] = hexBytes(t[:])
	}
	return json.Marshal(struct {
		Type         EventType `json:"type"`
		Index        int       `json:"index"`
		PC           int       `json:"pc"`
		GasRemaining decimal   `json:"gasRemaining"`
		Address      string    `json:"address"`
		Topics       []string  `json:"topics"`
		Data         string    `json:"data"`
	}{e.Type(), e.index, e.pc, decimal(e.gas), hexBytes(e.Address[:]), topics, hexBytes(e.Data)})
}

// --- decode ---

type wireEvent struct {
	Type         EventType  `json:"type"`
	Index        int        `json:"index"`
	PC           int        `json:"pc"`
	GasRemaining decimal    `json:"gasRemaining"`
	Opcode       int        `json:"opcode"`
	OpcodeName   string     `json:"opcodeName"`
	Value        string     `json:"value"`
	Offset       uint64     `json:"offset"`
	Data         string     `json:"data"`
	Length       uint64     `json:"length"`
	Address      string     `json:"address"`
	Key          string     `json:"key"`
	Amount       decimal    `json:"amount"`
	Reason       string     `json:"reason"`
	From         int        `json:"from"`
	To           int        `json:"to"`
	Conditional  bool       `json:"conditional"`
	Taken        bool       `json:"taken"`
	Topics       []string   `json:"topics"`
}

func decodeEvent(raw json.RawMessage) (Event, error) {
	var w wireEvent
	if err := json.Unmarshal(raw, &w); err != nil {
		return nil, err
	}
	b := base{index: w.Index, pc: w.PC, gas: int64(w.GasRemaining)}

	hexTo32 := func(s string) ([32]byte, error) {
		var out [32]byte
		b, err := mustDecodeHex(s)
		if err != nil {
			return out, err
		}
		if len(b) != 32 {
			return out, fmt.Errorf("trace: expected 32-byte hex value, got %d bytes", len(b))
		}
		copy(out[:], b)
		return out, nil
	}
	hexTo20 := func(s string) ([20]byte, error) {
		var out [20]byte
		b, err := mustDecodeHex(s)
		if err != nil {
			return out, err
		}
		if len(b) != 20 {
			return out, fmt.Errorf("trace: expected 20-byte hex value, got %d bytes", len(b))
		}
		copy(out[:], b)
		return out, nil
	}

	switch w.Type {
	case TypeOpcodeStart:
		return OpcodeStart{base: b, Opcode: byte(w.Opcode), Name: w.OpcodeName}, nil
	case TypeStackPush:
		v, err := hexTo32(w.Value)
		if err != nil {
			return nil, err
		}
		return StackPush{base: b, Value: v}, nil
	case TypeStackPop:
		v, err := hexTo32(w.Value)
		if err != nil {
			return nil, err
		}
		return StackPop{base: b, Value: v}, nil
	case TypeMemoryWrite:
		data, err := mustDecodeHex(w.Data)
		if err != nil {
			return nil, err
		}
		return MemoryWrite{base: b, Offset: w.Offset, Data: data}, nil
	case TypeMemoryRead:
		return MemoryRead{base: b, Offset: w.Offset, Length: w.Length}, nil
	case TypeStorageRead:
		addr, err := hexTo20(w.Address)
		if err != nil {
			return nil, err
		}
		key, err := hexTo32(w.Key)
		if err != nil {
			return nil, err
		}
		val, err := hexTo32(w.Value)
		if err != nil {
			return nil, err
		}
		return StorageRead{base: b, Address: addr, Key: key, Value: val}, nil
	case TypeStorageWrite:
		addr, err := hexTo20(w.Address)
		if err != nil {
			return nil, err
		}
		key, err := hexTo32(w.Key)
		if err != nil {
			return nil, err
		}
		val, err := hexTo32(w.Value)
		if err != nil {
			return nil, err
		}
		return StorageWrite{base: b, Address: addr, Key: key, Value: val}, nil
	case TypeGasCharge:
		return GasCharge{base: b, Amount: int64(w.Amount), Reason: w.Reason}, nil
	case TypeJump:
		return Jump{base: b, From: w.From, To: w.To, Conditional: w.Conditional, Taken: w.Taken}, nil
	case TypeHalt:
		return Halt{base: b, Reason: HaltReason(w.Reason)}, nil
	case TypeLog:
		addr, err := hexTo20(w.Address)
		if err != nil {
			return nil, err
		}
		data, err := mustDecodeHex(w.Data)
		if err != nil {
			return nil, err
		}
		topics := make([][32]byte, len(w.Topics))
		for i, t := range w.Topics {
			tb, err := hexTo32(t)
			if err != nil {
				return nil, err
			}
			topics[i] = tb
		}
		return Log{base: b, Address: addr, Topics: topics, Data: data}, nil
	default:
		return nil, fmt.Errorf("trace: unknown event type %q", w.Type)
	}
}

// ToJSON serializes the collected events as a JSON array, in recording
// order, with the field layout of each event type's MarshalJSON.
func (c *Collector) ToJSON() ([]byte, error) {
	return json.Marshal(c.events)
}

// FromJSON rebuilds a Collector from its JSON array form, restoring both the
// event list and the next-index counter (set to the array length).
func FromJSON(data []byte) (*Collector, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, err
	}
	events := make([]Event, 0, len(raws))
	for _, raw := range raws {
		e, err := decodeEvent(raw)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return &Collector{events: events, next: len(events)}, nil
}
