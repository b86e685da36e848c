package protocol

import (
	"bytes"
	"io"
)

// AppendFrame wraps payload in a frame with sequence seq, preceded by a sync byte
func AppendFrame(buf []byte, seq uint8, payload []byte) ([]byte, error) {
	if len(payload) > MessagePayloadMax {
		return buf, ErrFrameTooLarge
	}
	buf = append(buf, MessageValueSync)
	start := len(buf)
	buf = append(buf, byte(len(payload)+MessageLengthMin), MessageDest|seq&MessageSeqMask)
	buf = append(buf, payload...)
	crc := CRC16(buf[start:])
	return append(buf, byte(crc>>8), byte(crc), MessageValueSync), nil
}

// Decoder pulls frames out of a byte stream. Anything that is not a valid
// frame (debug text, corrupted frames) is skipped.
type Decoder struct {
	r      io.Reader
	buf    []byte
	synced bool

	// Dropped counts frames rejected for a bad length, destination or CRC
	Dropped int
}

func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r, synced: true}
}

// ReadFrame returns the payload of the next valid frame
func (d *Decoder) ReadFrame() ([]byte, error) {
	chunk := make([]byte, MessageLengthMax)
	for {
		if payload, ok := d.scan(); ok {
			return payload, nil
		}
		n, err := d.r.Read(chunk)
		d.buf = append(d.buf, chunk[:n]...)
		if err != nil && n == 0 {
			return nil, err
		}
	}
}

func (d *Decoder) desync() {
	d.synced = false
	d.Dropped++
}

// scan consumes buffered bytes until one frame is complete or more input is needed
func (d *Decoder) scan() ([]byte, bool) {
	for len(d.buf) > 0 {
		if !d.synced {
			i := bytes.IndexByte(d.buf, MessageValueSync)
			if i < 0 {
				d.buf = d.buf[:0]
				return nil, false
			}
			d.buf = d.buf[i+1:]
			d.synced = true
			continue
		}

		if d.buf[0] == MessageValueSync {
			d.buf = d.buf[1:]
			continue
		}
		if len(d.buf) < MessageLengthMin {
			return nil, false
		}

		msgLen := int(d.buf[0])
		if msgLen < MessageLengthMin || msgLen > MessageLengthMax {
			d.desync()
			continue
		}
		if d.buf[1]&^MessageSeqMask != MessageDest {
			d.desync()
			continue
		}
		if len(d.buf) < msgLen {
			return nil, false
		}
		if d.buf[msgLen-1] != MessageValueSync {
			d.desync()
			continue
		}

		body := d.buf[:msgLen-MessageTrailerSize]
		frameCRC := uint16(d.buf[msgLen-3])<<8 | uint16(d.buf[msgLen-2])
		if frameCRC != CRC16(body) {
			d.desync()
			continue
		}

		payload := append([]byte(nil), d.buf[MessageHeaderSize:msgLen-MessageTrailerSize]...)
		d.buf = d.buf[msgLen:]
		return payload, true
	}
	return nil, false
}
