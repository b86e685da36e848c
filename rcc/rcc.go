// Package rcc enables and resets peripheral clocks.
package rcc

import (
	"f1can/debug"
	"f1can/hal"
)

// Bus identifies the clock domain a peripheral hangs off
type Bus uint8

const (
	AHB Bus = iota
	APB1
	APB2
)

// Clock locates a peripheral's enable/reset bit
type Clock struct {
	Bus Bus
	Bit uint8
}

// Enabler is implemented by peripheral tokens that can be clocked
type Enabler interface {
	Clock() Clock
}

// Clock bits (RM0008 §7.3.7, §7.3.8)
var (
	AFIO = Clock{APB2, 0}
	IOPA = Clock{APB2, 2}
	IOPB = Clock{APB2, 3}
	IOPC = Clock{APB2, 4}
	USB  = Clock{APB1, 23}
	CAN1 = Clock{APB1, 25}
	CAN2 = Clock{APB1, 26}
)

func enableRegister(regs *hal.RCCRegisters, bus Bus) hal.Register {
	switch bus {
	case APB1:
		return regs.APB1ENR
	case APB2:
		return regs.APB2ENR
	default:
		return regs.AHBENR
	}
}

// resetRegister returns nil for AHB, which has no reset register on F1 parts.
func resetRegister(regs *hal.RCCRegisters, bus Bus) hal.Register {
	switch bus {
	case APB1:
		return regs.APB1RSTR
	case APB2:
		return regs.APB2RSTR
	default:
		return nil
	}
}

// Enable turns on the clock of p
func Enable(regs *hal.RCCRegisters, p Enabler) {
	c := p.Clock()
	hal.Modify(enableRegister(regs, c.Bus), func(v uint32) uint32 {
		return v | 1<<c.Bit
	})
	debug.Record(debug.EvtClockOn, uint32(c.Bus)<<8|uint32(c.Bit))
}

// Reset pulses the reset bit of p
func Reset(regs *hal.RCCRegisters, p Enabler) {
	c := p.Clock()
	r := resetRegister(regs, c.Bus)
	if r == nil {
		return
	}
	hal.Modify(r, func(v uint32) uint32 { return v | 1<<c.Bit })
	hal.Modify(r, func(v uint32) uint32 { return v &^ (1 << c.Bit) })
}

// IsEnabled reports whether the clock of p is on
func IsEnabled(regs *hal.RCCRegisters, p Enabler) bool {
	c := p.Clock()
	return enableRegister(regs, c.Bus).Get()&(1<<c.Bit) != 0
}

// Clock lets a bare Clock act as its own Enabler
func (c Clock) Clock() Clock {
	return c
}
