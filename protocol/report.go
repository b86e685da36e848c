package protocol

import (
	"fmt"
	"io"
)

// Message ids
const (
	MsgConfig = 1 // config mapr=%u mapr2=%u debug=%c
	MsgBus    = 2 // bus name=%s pins=%s base=%u banks=%c master=%c owner=%c
	MsgTrace  = 3 // trace kind=%c value=%u
	MsgEnd    = 4 // end
)

// Bus describes one CAN controller after pin assignment
type Bus struct {
	Name        string
	Pins        string
	Base        uint32
	FilterBanks uint8
	Master      bool
	FilterOwner bool
}

// TraceEvent is one register write from the firmware's trace ring
type TraceEvent struct {
	Kind  uint8
	Value uint32
}

// Report is the state of the pin-mux and CAN setup after init
type Report struct {
	MAPR         uint32
	MAPR2        uint32
	DebugEnabled bool
	Buses        []Bus
	Trace        []TraceEvent
}

func boolByte(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

// Encoder writes reports as frames
type Encoder struct {
	w   io.Writer
	seq uint8
}

func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

func (e *Encoder) send(payload []byte) error {
	frame, err := AppendFrame(nil, e.seq, payload)
	if err != nil {
		return err
	}
	e.seq = (e.seq + 1) & MessageSeqMask
	_, err = e.w.Write(frame)
	return err
}

// WriteReport sends r as a config message, one message per bus and trace
// event, and an end marker.
func (e *Encoder) WriteReport(r *Report) error {
	msg := AppendVLQUint(nil, MsgConfig)
	msg = AppendVLQUint(msg, r.MAPR)
	msg = AppendVLQUint(msg, r.MAPR2)
	msg = AppendVLQUint(msg, boolByte(r.DebugEnabled))
	if err := e.send(msg); err != nil {
		return fmt.Errorf("send config: %w", err)
	}

	for _, b := range r.Buses {
		msg = AppendVLQUint(msg[:0], MsgBus)
		msg = AppendVLQString(msg, b.Name)
		msg = AppendVLQString(msg, b.Pins)
		msg = AppendVLQUint(msg, b.Base)
		msg = AppendVLQUint(msg, uint32(b.FilterBanks))
		msg = AppendVLQUint(msg, boolByte(b.Master))
		msg = AppendVLQUint(msg, boolByte(b.FilterOwner))
		if err := e.send(msg); err != nil {
			return fmt.Errorf("send bus %s: %w", b.Name, err)
		}
	}

	for _, evt := range r.Trace {
		msg = AppendVLQUint(msg[:0], MsgTrace)
		msg = AppendVLQUint(msg, uint32(evt.Kind))
		msg = AppendVLQUint(msg, evt.Value)
		if err := e.send(msg); err != nil {
			return fmt.Errorf("send trace: %w", err)
		}
	}

	if err := e.send(AppendVLQUint(msg[:0], MsgEnd)); err != nil {
		return fmt.Errorf("send end: %w", err)
	}
	return nil
}

// ReadReport reads frames until an end marker and assembles the report.
// Messages before the first config message belong to an earlier report and
// are discarded.
func (d *Decoder) ReadReport() (*Report, error) {
	var r *Report
	for {
		payload, err := d.ReadFrame()
		if err != nil {
			return nil, err
		}

		id, err := DecodeVLQUint(&payload)
		if err != nil {
			return nil, fmt.Errorf("message id: %w", err)
		}

		switch id {
		case MsgConfig:
			r = &Report{}
			if err := decodeConfig(&payload, r); err != nil {
				return nil, fmt.Errorf("config: %w", err)
			}
		case MsgBus:
			if r == nil {
				continue
			}
			b, err := decodeBus(&payload)
			if err != nil {
				return nil, fmt.Errorf("bus: %w", err)
			}
			r.Buses = append(r.Buses, b)
		case MsgTrace:
			if r == nil {
				continue
			}
			kind, err := DecodeVLQUint(&payload)
			if err != nil {
				return nil, fmt.Errorf("trace: %w", err)
			}
			value, err := DecodeVLQUint(&payload)
			if err != nil {
				return nil, fmt.Errorf("trace: %w", err)
			}
			r.Trace = append(r.Trace, TraceEvent{Kind: uint8(kind), Value: value})
		case MsgEnd:
			if r == nil {
				return nil, ErrIncompleteReport
			}
			return r, nil
		default:
			return nil, fmt.Errorf("%w: %d", ErrUnknownMessage, id)
		}
	}
}

func decodeConfig(data *[]byte, r *Report) error {
	var err error
	if r.MAPR, err = DecodeVLQUint(data); err != nil {
		return err
	}
	if r.MAPR2, err = DecodeVLQUint(data); err != nil {
		return err
	}
	debug, err := DecodeVLQUint(data)
	if err != nil {
		return err
	}
	r.DebugEnabled = debug != 0
	return nil
}

func decodeBus(data *[]byte) (Bus, error) {
	var b Bus
	var err error
	if b.Name, err = DecodeVLQString(data); err != nil {
		return b, err
	}
	if b.Pins, err = DecodeVLQString(data); err != nil {
		return b, err
	}
	if b.Base, err = DecodeVLQUint(data); err != nil {
		return b, err
	}
	fields := make([]uint32, 3)
	for i := range fields {
		if fields[i], err = DecodeVLQUint(data); err != nil {
			return b, err
		}
	}
	b.FilterBanks = uint8(fields[0])
	b.Master = fields[1] != 0
	b.FilterOwner = fields[2] != 0
	return b, nil
}
