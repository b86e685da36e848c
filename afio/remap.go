package afio

import (
	"f1can/debug"
	"f1can/gpio"
	"f1can/periph"
)

// Pins is proof that a pin pair has been routed to peripheral PER.
// Only Remap methods in this package produce one.
type Pins[PER any] interface {
	// Routed is false for a zero Alt that did not come from Remap
	Routed() bool
	String() string
	routedTo(PER)
}

// Alt is the proof returned by a remap. It keeps the routed pins.
type Alt[PER any, PINS Remap[PER]] struct {
	pins PINS
	ok   bool
}

func (a Alt[PER, PINS]) Routed() bool { return a.ok }
func (a Alt[PER, PINS]) routedTo(PER) {}

func (a Alt[PER, PINS]) String() string {
	if !a.ok {
		return "unrouted"
	}
	return a.pins.String()
}

// Remap is implemented by every legal (pin pair, peripheral) combination
// and by nothing else.
type Remap[PER any] interface {
	String() string
	field() (mask, bits uint32)
	usable() bool
	bind()
	peripheral(PER)
}

// apply checks the pins before touching MAPR, so a rejected remap leaves
// both the register and the handles as they were.
func apply[PER any, R Remap[PER]](m *MAPR, pins R) Alt[PER, R] {
	if !pins.usable() {
		panic("afio: " + pins.String() + ": pin handle is stale, bound or zero")
	}
	mask, bits := pins.field()
	m.Modify(func(r uint32) uint32 {
		return r&^mask | bits
	})
	pins.bind()

	debug.Record(debug.EvtPinsRouted, m.Bits())
	debug.Println("afio: " + pins.String())
	return Alt[PER, R]{pins: pins, ok: true}
}

// CAN1NoRemap routes CAN1 to TX=PA12, RX=PA11 (CAN_REMAP=00)
type CAN1NoRemap[D gpio.Drive, P gpio.Pull] struct {
	TX gpio.Pin[gpio.PA12, gpio.Alternate[D]]
	RX gpio.Pin[gpio.PA11, gpio.Input[P]]
}

func NewCAN1NoRemap[D gpio.Drive, P gpio.Pull](
	tx gpio.Pin[gpio.PA12, gpio.Alternate[D]],
	rx gpio.Pin[gpio.PA11, gpio.Input[P]],
) CAN1NoRemap[D, P] {
	return CAN1NoRemap[D, P]{TX: tx, RX: rx}
}

func (p CAN1NoRemap[D, P]) Remap(m *MAPR) Alt[*periph.CAN1, CAN1NoRemap[D, P]] {
	return apply[*periph.CAN1](m, p)
}

func (CAN1NoRemap[D, P]) field() (uint32, uint32) {
	return canRemapMask, 0b00 << canRemapShift
}
func (p CAN1NoRemap[D, P]) usable() bool          { return p.TX.Usable() && p.RX.Usable() }
func (p CAN1NoRemap[D, P]) bind()                 { p.TX.Bind(); p.RX.Bind() }
func (CAN1NoRemap[D, P]) peripheral(*periph.CAN1) {}
func (CAN1NoRemap[D, P]) String() string          { return "CAN1 TX=PA12 RX=PA11" }

// CAN1Remap routes CAN1 to TX=PB9, RX=PB8 (CAN_REMAP=10)
type CAN1Remap[D gpio.Drive, P gpio.Pull] struct {
	TX gpio.Pin[gpio.PB9, gpio.Alternate[D]]
	RX gpio.Pin[gpio.PB8, gpio.Input[P]]
}

func NewCAN1Remap[D gpio.Drive, P gpio.Pull](
	tx gpio.Pin[gpio.PB9, gpio.Alternate[D]],
	rx gpio.Pin[gpio.PB8, gpio.Input[P]],
) CAN1Remap[D, P] {
	return CAN1Remap[D, P]{TX: tx, RX: rx}
}

func (p CAN1Remap[D, P]) Remap(m *MAPR) Alt[*periph.CAN1, CAN1Remap[D, P]] {
	return apply[*periph.CAN1](m, p)
}

func (CAN1Remap[D, P]) field() (uint32, uint32) {
	return canRemapMask, 0b10 << canRemapShift
}
func (p CAN1Remap[D, P]) usable() bool          { return p.TX.Usable() && p.RX.Usable() }
func (p CAN1Remap[D, P]) bind()                 { p.TX.Bind(); p.RX.Bind() }
func (CAN1Remap[D, P]) peripheral(*periph.CAN1) {}
func (CAN1Remap[D, P]) String() string          { return "CAN1 TX=PB9 RX=PB8" }
