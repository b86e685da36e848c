// Package gpio provides pin handles typed by pin identity and mode.
//
// A Pin[ID, M] is a value. Mode transitions return a new handle and leave
// every older copy stale; using a stale handle panics. I/O is only offered
// for modes that allow it, so reading or driving a Debugger pin does not
// compile.
package gpio

import (
	"f1can/debug"
	"f1can/hal"
	"f1can/internal/swj"
)

type pinID struct {
	port int
	n    uint8
}

// PinID identifies a physical pin. Implemented by PA0..PC15 only.
type PinID interface {
	id() pinID
}

// line is the state shared by every handle to one physical pin
type line struct {
	regs  *hal.GPIORegisters
	n     uint8
	gen   uint32
	bound bool
}

// Pin is a handle to pin ID in mode M
type Pin[ID PinID, M Mode] struct {
	l   *line
	gen uint32
}

func newPin[ID PinID, M Mode](regs *hal.GPIORegisters) Pin[ID, M] {
	var id ID
	return Pin[ID, M]{l: &line{regs: regs, n: id.id().n}}
}

// live returns the line if p is the current handle for it
func (p Pin[ID, M]) live() *line {
	if p.l == nil {
		panic("gpio: " + p.Name() + " handle was not obtained from Split")
	}
	if p.l.bound {
		panic("gpio: " + p.Name() + " is bound to a peripheral")
	}
	if p.gen != p.l.gen {
		panic("gpio: " + p.Name() + " used after mode change")
	}
	return p.l
}

// Usable reports whether p is the current handle for its pin
func (p Pin[ID, M]) Usable() bool {
	return p.l != nil && !p.l.bound && p.gen == p.l.gen
}

// Name returns the pin name, e.g. "PA12"
func (p Pin[ID, M]) Name() string {
	var id ID
	i := id.id()
	return "P" + string(rune('A'+i.port)) + debug.Itoa(int(i.n))
}

// Mode returns a readable name for M
func (p Pin[ID, M]) Mode() string {
	var m M
	return m.info().name
}

// Number returns the pin number within its port
func (p Pin[ID, M]) Number() uint8 {
	var id ID
	return id.id().n
}

// Bind hands the pin to a peripheral for good. The handle and every copy
// of it become unusable.
func (p Pin[ID, M]) Bind() {
	l := p.live()
	l.gen++
	l.bound = true
}

func (l *line) configure(m modeInfo) {
	switch m.pull {
	case pullUp:
		l.regs.BSRR.Set(1 << l.n)
	case pullDown:
		l.regs.BRR.Set(1 << l.n)
	}

	cr := l.regs.CRL
	shift := uint(l.n) * 4
	if l.n >= 8 {
		cr = l.regs.CRH
		shift = uint(l.n-8) * 4
	}
	hal.Modify(cr, func(v uint32) uint32 {
		return v&^(0xF<<shift) | m.cr<<shift
	})
	debug.Record(debug.EvtCRWrite, cr.Get())
}

func convert[ID PinID, M Mode, N Mode](p Pin[ID, M]) Pin[ID, N] {
	l := p.live()
	var n N
	l.configure(n.info())
	l.gen++
	return Pin[ID, N]{l: l, gen: l.gen}
}

func IntoFloatingInput[ID PinID, M Configurable](p Pin[ID, M]) Pin[ID, Input[Floating]] {
	return convert[ID, M, Input[Floating]](p)
}

func IntoPullUpInput[ID PinID, M Configurable](p Pin[ID, M]) Pin[ID, Input[PullUp]] {
	return convert[ID, M, Input[PullUp]](p)
}

func IntoPullDownInput[ID PinID, M Configurable](p Pin[ID, M]) Pin[ID, Input[PullDown]] {
	return convert[ID, M, Input[PullDown]](p)
}

func IntoPushPullOutput[ID PinID, M Configurable](p Pin[ID, M]) Pin[ID, Output[PushPull]] {
	return convert[ID, M, Output[PushPull]](p)
}

func IntoOpenDrainOutput[ID PinID, M Configurable](p Pin[ID, M]) Pin[ID, Output[OpenDrain]] {
	return convert[ID, M, Output[OpenDrain]](p)
}

// IntoAlternatePushPull gives the output stage to a peripheral (CAN TX, USART TX, ...)
func IntoAlternatePushPull[ID PinID, M Configurable](p Pin[ID, M]) Pin[ID, Alternate[PushPull]] {
	return convert[ID, M, Alternate[PushPull]](p)
}

func IntoAlternateOpenDrain[ID PinID, M Configurable](p Pin[ID, M]) Pin[ID, Alternate[OpenDrain]] {
	return convert[ID, M, Alternate[OpenDrain]](p)
}

func IntoAnalog[ID PinID, M Configurable](p Pin[ID, M]) Pin[ID, Analog] {
	return convert[ID, M, Analog](p)
}

// Reclaim turns a debug-port pin into a floating input. r proves that the
// SWJ configuration no longer claims the pin.
func Reclaim[ID PinID](p Pin[ID, Debugger], r swj.Released) Pin[ID, Input[Floating]] {
	if !r.Valid() {
		panic("gpio: debug port still owns " + p.Name())
	}
	return convert[ID, Debugger, Input[Floating]](p)
}

// IsHigh samples the input data register
func IsHigh[ID PinID, M Readable](p Pin[ID, M]) bool {
	l := p.live()
	return l.regs.IDR.Get()&(1<<l.n) != 0
}

func IsLow[ID PinID, M Readable](p Pin[ID, M]) bool {
	return !IsHigh(p)
}

// SetHigh drives the pin high through BSRR
func SetHigh[ID PinID, M Writable](p Pin[ID, M]) {
	l := p.live()
	l.regs.BSRR.Set(1 << l.n)
}

// SetLow drives the pin low through BRR
func SetLow[ID PinID, M Writable](p Pin[ID, M]) {
	l := p.live()
	l.regs.BRR.Set(1 << l.n)
}

// IsSetHigh reports the driven level from the output data register
func IsSetHigh[ID PinID, M Writable](p Pin[ID, M]) bool {
	l := p.live()
	return l.regs.ODR.Get()&(1<<l.n) != 0
}

func Toggle[ID PinID, M Writable](p Pin[ID, M]) {
	if IsSetHigh(p) {
		SetLow(p)
	} else {
		SetHigh(p)
	}
}
