package debug

// Printf provides formatted output without the fmt package.
// Supported verbs: %s (string), %d/%u (int and unsigned types), %x (as 0x%08x).
func Printf(format string, args ...interface{}) {
	if !enabled {
		return
	}
	writer(Sprintf(format, args...))
}

// Sprintf formats like Printf and returns the result
func Sprintf(format string, args ...interface{}) string {
	result := make([]byte, 0, 64)
	argIndex := 0

	for i := 0; i < len(format); i++ {
		if format[i] != '%' || i+1 >= len(format) || argIndex >= len(args) {
			result = append(result, format[i])
			continue
		}
		switch format[i+1] {
		case 's':
			if str, ok := args[argIndex].(string); ok {
				result = append(result, str...)
			}
		case 'd', 'u':
			result = appendInt(result, args[argIndex])
		case 'x':
			v, _ := toUint(args[argIndex])
			result = append(result, Hex(uint32(v))...)
		default:
			result = append(result, format[i], format[i+1])
		}
		argIndex++
		i++
	}
	return string(result)
}

// toUint returns v widened to 64 bits and whether it is a negative int
func toUint(v interface{}) (uint64, bool) {
	switch val := v.(type) {
	case int:
		if val < 0 {
			return uint64(-(val + 1)) + 1, true
		}
		return uint64(val), false
	case uint:
		return uint64(val), false
	case uint8:
		return uint64(val), false
	case uint16:
		return uint64(val), false
	case uint32:
		return uint64(val), false
	case uintptr:
		return uint64(val), false
	case bool:
		if val {
			return 1, false
		}
		return 0, false
	default:
		return 0, false
	}
}

func appendInt(buf []byte, v interface{}) []byte {
	u, negative := toUint(v)
	if negative {
		buf = append(buf, '-')
	}
	return append(buf, Utoa(u)...)
}

// Itoa converts an integer to a string
func Itoa(n int) string {
	return string(appendInt(nil, n))
}

// Utoa converts an unsigned integer to a string. Register values above
// 2^31 stay positive on 32-bit targets.
func Utoa(n uint64) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	pos := len(buf)
	for n > 0 {
		pos--
		buf[pos] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[pos:])
}

// Hex formats a register value as 0x%08x
func Hex(v uint32) string {
	const hexDigits = "0123456789abcdef"
	var buf [10]byte
	buf[0] = '0'
	buf[1] = 'x'
	for i := 9; i >= 2; i-- {
		buf[i] = hexDigits[v&0xf]
		v >>= 4
	}
	return string(buf[:])
}
