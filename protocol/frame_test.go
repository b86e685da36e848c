package protocol

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestAppendFrameLayout(t *testing.T) {
	frame, err := AppendFrame(nil, 3, []byte{0x01, 0x02})
	if err != nil {
		t.Fatalf("AppendFrame failed: %v", err)
	}

	if len(frame) != 1+MessageLengthMin+2 {
		t.Fatalf("Expected %d bytes, got %d", 1+MessageLengthMin+2, len(frame))
	}
	if frame[0] != MessageValueSync {
		t.Errorf("Expected leading sync, got 0x%02X", frame[0])
	}
	if frame[1] != MessageLengthMin+2 {
		t.Errorf("Expected length %d, got %d", MessageLengthMin+2, frame[1])
	}
	if frame[2] != MessageDest|3 {
		t.Errorf("Expected seq byte 0x13, got 0x%02X", frame[2])
	}
	crc := CRC16(frame[1:5])
	if frame[5] != byte(crc>>8) || frame[6] != byte(crc) {
		t.Errorf("Expected CRC 0x%04X, got 0x%02X%02X", crc, frame[5], frame[6])
	}
	if frame[7] != MessageValueSync {
		t.Errorf("Expected trailing sync, got 0x%02X", frame[7])
	}
}

func TestAppendFrameTooLarge(t *testing.T) {
	_, err := AppendFrame(nil, 0, make([]byte, MessagePayloadMax+1))
	if !errors.Is(err, ErrFrameTooLarge) {
		t.Errorf("Expected ErrFrameTooLarge, got %v", err)
	}
	if _, err := AppendFrame(nil, 0, make([]byte, MessagePayloadMax)); err != nil {
		t.Errorf("Expected max payload to fit, got %v", err)
	}
}

func TestDecoderReadFrame(t *testing.T) {
	var stream []byte
	stream, _ = AppendFrame(stream, 0, []byte{1, 2, 3})
	stream, _ = AppendFrame(stream, 1, []byte{4})

	d := NewDecoder(bytes.NewReader(stream))
	p, err := d.ReadFrame()
	if err != nil || !bytes.Equal(p, []byte{1, 2, 3}) {
		t.Fatalf("Expected [1 2 3], got %v (%v)", p, err)
	}
	p, err = d.ReadFrame()
	if err != nil || !bytes.Equal(p, []byte{4}) {
		t.Fatalf("Expected [4], got %v (%v)", p, err)
	}
	if _, err := d.ReadFrame(); err != io.EOF {
		t.Errorf("Expected io.EOF, got %v", err)
	}
}

func TestDecoderSkipsDebugText(t *testing.T) {
	stream := []byte("MAPR <- 0x02004000\r\n")
	stream, _ = AppendFrame(stream, 0, []byte{9})

	d := NewDecoder(bytes.NewReader(stream))
	p, err := d.ReadFrame()
	if err != nil || !bytes.Equal(p, []byte{9}) {
		t.Fatalf("Expected [9], got %v (%v)", p, err)
	}
	if d.Dropped == 0 {
		t.Error("Expected leading text to count as dropped")
	}
}

func TestDecoderDropsBadCRC(t *testing.T) {
	bad, _ := AppendFrame(nil, 0, []byte{1, 2})
	bad[4] ^= 0xFF
	stream, _ := AppendFrame(bad, 1, []byte{7})

	d := NewDecoder(bytes.NewReader(stream))
	p, err := d.ReadFrame()
	if err != nil || !bytes.Equal(p, []byte{7}) {
		t.Fatalf("Expected [7], got %v (%v)", p, err)
	}
	if d.Dropped != 1 {
		t.Errorf("Expected 1 dropped frame, got %d", d.Dropped)
	}
}

// oneByteReader returns a single byte per Read
type oneByteReader struct{ data []byte }

func (r *oneByteReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, io.EOF
	}
	p[0] = r.data[0]
	r.data = r.data[1:]
	return 1, nil
}

func TestDecoderPartialReads(t *testing.T) {
	stream, _ := AppendFrame(nil, 5, []byte("CAN1 TX=PB9 RX=PB8"))

	d := NewDecoder(&oneByteReader{data: stream})
	p, err := d.ReadFrame()
	if err != nil || string(p) != "CAN1 TX=PB9 RX=PB8" {
		t.Fatalf("Expected pin string, got %q (%v)", p, err)
	}
}
