// Package periph hands out one ownership token per hardware peripheral.
//
// Tokens carry no data. Holding one is the right to configure that
// peripheral, and each constructor that needs a peripheral claims its token
// exactly once. Take can only succeed once per process.
package periph

import (
	"sync/atomic"

	"f1can/hal"
	"f1can/rcc"
)

type token struct {
	name    string
	issued  bool
	claimed bool
}

// Claim marks the token as consumed. It panics if the token was not issued
// by Take/Steal or was already claimed.
func (t *token) Claim() {
	if !t.issued {
		panic("periph: " + t.name + " token was not issued by Take")
	}
	if t.claimed {
		panic("periph: " + t.name + " already claimed")
	}
	t.claimed = true
}

// Claimed reports whether the token has been consumed
func (t *token) Claimed() bool {
	return t.claimed
}

// Available reports whether Claim would succeed
func (t *token) Available() bool {
	return t.issued && !t.claimed
}

func (t *token) String() string {
	return t.name
}

func issue(name string) token {
	return token{name: name, issued: true}
}

// Token is implemented by every peripheral token
type Token interface {
	Claim()
	Claimed() bool
	Available() bool
	String() string
}

// AFIO is the alternate-function I/O block
type AFIO struct{ token }

func (*AFIO) Clock() rcc.Clock { return rcc.AFIO }

// GPIOA, GPIOB and GPIOC are the GPIO ports with pins broken out on F1 boards
type GPIOA struct{ token }
type GPIOB struct{ token }
type GPIOC struct{ token }

func (*GPIOA) Clock() rcc.Clock { return rcc.IOPA }
func (*GPIOB) Clock() rcc.Clock { return rcc.IOPB }
func (*GPIOC) Clock() rcc.Clock { return rcc.IOPC }

func (*GPIOA) Port() int { return hal.PortA }
func (*GPIOB) Port() int { return hal.PortB }
func (*GPIOC) Port() int { return hal.PortC }

// CAN1 is the first bxCAN controller
type CAN1 struct{ token }

func (*CAN1) Clock() rcc.Clock { return rcc.CAN1 }
func (*CAN1) Base() uintptr    { return hal.CAN1Base }
func (*CAN1) CANInstance()     {}

// Peripherals is the full set of tokens. Variant-specific tokens come from
// the embedded variant struct.
type Peripherals struct {
	AFIO  *AFIO
	GPIOA *GPIOA
	GPIOB *GPIOB
	GPIOC *GPIOC
	CAN1  *CAN1
	variant
}

var taken atomic.Bool

// Take returns the peripheral tokens the first time it is called and
// nil, false on every later call.
func Take() (*Peripherals, bool) {
	if !taken.CompareAndSwap(false, true) {
		return nil, false
	}
	return newPeripherals(), true
}

// Steal returns a fresh set of tokens without consulting the Take guard.
// Only host tests and code that takes over from a bootloader should use it.
func Steal() *Peripherals {
	return newPeripherals()
}

func newPeripherals() *Peripherals {
	return &Peripherals{
		AFIO:    &AFIO{issue("AFIO")},
		GPIOA:   &GPIOA{issue("GPIOA")},
		GPIOB:   &GPIOB{issue("GPIOB")},
		GPIOC:   &GPIOC{issue("GPIOC")},
		CAN1:    &CAN1{issue("CAN1")},
		variant: newVariant(),
	}
}
