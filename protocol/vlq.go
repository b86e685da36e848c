package protocol

// AppendVLQ appends v in Klipper's variable-length encoding. Values in
// [-32, 96) take one byte; each extra byte adds seven bits of range.
func AppendVLQ(buf []byte, v int32) []byte {
	if !(-(1<<26) <= v && v < (3<<26)) {
		buf = append(buf, byte((v>>28)&0x7F)|0x80)
	}
	if !(-(1<<19) <= v && v < (3<<19)) {
		buf = append(buf, byte((v>>21)&0x7F)|0x80)
	}
	if !(-(1<<12) <= v && v < (3<<12)) {
		buf = append(buf, byte((v>>14)&0x7F)|0x80)
	}
	if !(-(1<<5) <= v && v < (3<<5)) {
		buf = append(buf, byte((v>>7)&0x7F)|0x80)
	}
	return append(buf, byte(v&0x7F))
}

// AppendVLQUint appends an unsigned value. Values above 2^31 wrap, as on the MCU.
func AppendVLQUint(buf []byte, v uint32) []byte {
	return AppendVLQ(buf, int32(v))
}

// AppendVLQString appends a length-prefixed string
func AppendVLQString(buf []byte, s string) []byte {
	buf = AppendVLQUint(buf, uint32(len(s)))
	return append(buf, s...)
}

// DecodeVLQ decodes one value and advances data past it
func DecodeVLQ(data *[]byte) (int32, error) {
	if len(*data) == 0 {
		return 0, ErrBufferTooSmall
	}
	c := uint32((*data)[0])
	*data = (*data)[1:]

	v := c & 0x7F
	if c&0x60 == 0x60 {
		v |= ^uint32(0x1F)
	}
	for c&0x80 != 0 {
		if len(*data) == 0 {
			return 0, ErrBufferTooSmall
		}
		c = uint32((*data)[0])
		*data = (*data)[1:]
		v = v<<7 | c&0x7F
	}
	return int32(v), nil
}

func DecodeVLQUint(data *[]byte) (uint32, error) {
	v, err := DecodeVLQ(data)
	return uint32(v), err
}

// DecodeVLQString decodes a length-prefixed string
func DecodeVLQString(data *[]byte) (string, error) {
	n, err := DecodeVLQUint(data)
	if err != nil {
		return "", err
	}
	if uint32(len(*data)) < n {
		return "", ErrBufferTooSmall
	}
	s := string((*data)[:n])
	*data = (*data)[n:]
	return s, nil
}
