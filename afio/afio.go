// Package afio owns the alternate-function I/O block.
//
// The AF remap and debug I/O configuration register (MAPR) is shared by
// every remappable peripheral and by the SWJ debug port. All writes to it go
// through the single *MAPR handle returned by Constrain, which re-asserts the
// debug port configuration on every write.
package afio

import (
	"f1can/debug"
	"f1can/hal"
	"f1can/periph"
	"f1can/rcc"
)

// MAPR fields (RM0008 §9.4.2)
const (
	swjCfgShift = 24
	swjCfgMask  = 0x7 << swjCfgShift
	swjFull     = 0b000 << swjCfgShift // JTAG-DP and SW-DP
	swjNoJTAG   = 0b010 << swjCfgShift // SW-DP only; PA15, PB3, PB4 released

	canRemapShift = 13
	canRemapMask  = 0x3 << canRemapShift
	can2RemapBit  = 1 << 22
)

// Parts is the constrained AFIO block
type Parts struct {
	EVCR    *EVCR
	MAPR    *MAPR
	EXTICR1 *EXTICR
	EXTICR2 *EXTICR
	EXTICR3 *EXTICR
	EXTICR4 *EXTICR
	MAPR2   *MAPR2
}

// Constrain claims the AFIO token, enables and resets the AFIO clock and
// splits the register block. MAPR starts with the debug port fully enabled.
func Constrain(tok *periph.AFIO) *Parts {
	if tok == nil {
		panic("afio: nil AFIO token")
	}
	tok.Claim()

	regs := hal.MustRegisters()
	rcc.Enable(&regs.RCC, tok)
	rcc.Reset(&regs.RCC, tok)

	a := &regs.AFIO
	return &Parts{
		EVCR:    &EVCR{reg: a.EVCR},
		MAPR:    &MAPR{reg: a.MAPR, jtagEnabled: true},
		EXTICR1: &EXTICR{reg: a.EXTICR1, first: 0},
		EXTICR2: &EXTICR{reg: a.EXTICR2, first: 4},
		EXTICR3: &EXTICR{reg: a.EXTICR3, first: 8},
		EXTICR4: &EXTICR{reg: a.EXTICR4, first: 12},
		MAPR2:   &MAPR2{reg: a.MAPR2},
	}
}

// MAPR is the handle to the AF remap and debug I/O configuration register.
// Do not copy it; pass the pointer.
type MAPR struct {
	reg         hal.Register
	jtagEnabled bool
}

func (m *MAPR) swjBits() uint32 {
	if m.jtagEnabled {
		return swjFull
	}
	return swjNoJTAG
}

// Modify read-modify-writes MAPR. Whatever fn does to SWJ_CFG is replaced
// by the handle's own debug port setting.
func (m *MAPR) Modify(fn func(r uint32) uint32) {
	var r uint32
	w := hal.Modify(m.reg, func(v uint32) uint32 {
		r = v
		return fn(v)&^swjCfgMask | m.swjBits()
	})

	debug.Record(debug.EvtMAPRWrite, w)
	debug.Printf("afio: MAPR %x -> %x", r, w)
}

// Bits returns the current register value
func (m *MAPR) Bits() uint32 {
	return m.reg.Get()
}

// DebugEnabled reports whether JTAG still owns its pins
func (m *MAPR) DebugEnabled() bool {
	return m.jtagEnabled
}
