// Package debug is the firmware's logging hook and register-write trace.
// Output goes wherever the target points the Writer (normally the debug UART).
package debug

// Writer is a function type for writing debug lines
type Writer func(string)

// Event kinds recorded in the trace ring
const (
	EvtMAPRWrite  = 1 // AFIO MAPR written
	EvtJTAGOff    = 2 // SWJ flag cleared
	EvtClockOn    = 3 // peripheral clock enabled (value = bus<<8 | bit)
	EvtPinsRouted = 4 // remap proof issued (value = MAPR after write)
	EvtCRWrite    = 5 // GPIO CRL/CRH written
)

// Event is one entry in the trace ring
type Event struct {
	Kind  uint8
	Value uint32
}

const (
	TraceRingSize = 32 // keep the last 32 register writes
)

var (
	writer  Writer = func(s string) {} // No-op by default
	enabled bool

	traceRing [TraceRingSize]Event
	traceHead uint8
	traceLen  uint8
)

// SetWriter sets the platform-specific output function
func SetWriter(w Writer) {
	if w == nil {
		w = func(s string) {}
	}
	writer = w
}

// SetEnabled enables or disables debug output. The trace ring records regardless.
func SetEnabled(on bool) {
	enabled = on
}

// Enabled reports whether debug output is active
func Enabled() bool {
	return enabled
}

// Println writes one line when output is enabled
func Println(msg string) {
	if enabled {
		writer(msg)
	}
}

// Record appends an event to the trace ring
func Record(kind uint8, value uint32) {
	traceRing[traceHead] = Event{Kind: kind, Value: value}
	traceHead = (traceHead + 1) % TraceRingSize
	if traceLen < TraceRingSize {
		traceLen++
	}
}

// Trace returns the recorded events, oldest first
func Trace() []Event {
	out := make([]Event, 0, traceLen)
	start := (traceHead + TraceRingSize - traceLen) % TraceRingSize
	for i := uint8(0); i < traceLen; i++ {
		out = append(out, traceRing[(start+i)%TraceRingSize])
	}
	return out
}

// ClearTrace empties the trace ring
func ClearTrace() {
	for i := range traceRing {
		traceRing[i] = Event{}
	}
	traceHead = 0
	traceLen = 0
}

// EventName returns a short label for an event kind
func EventName(kind uint8) string {
	switch kind {
	case EvtMAPRWrite:
		return "MAPR"
	case EvtJTAGOff:
		return "JTAG_OFF"
	case EvtClockOn:
		return "CLOCK_ON"
	case EvtPinsRouted:
		return "ROUTED"
	case EvtCRWrite:
		return "CR"
	default:
		return "UNKNOWN"
	}
}

// DumpTrace writes the trace ring through the writer, ignoring the enable flag.
// Call it from a fault path.
func DumpTrace() {
	writer("[TRACE] === Register trace ===")
	for _, evt := range Trace() {
		writer("[TRACE] " + EventName(evt.Kind) + " " + Hex(evt.Value))
	}
	writer("[TRACE] === End ===")
}
