package gpio

import (
	"f1can/hal"
	"f1can/periph"
	"f1can/rcc"
)

// PortA holds every pin of GPIOA in its reset mode.
// PA13 (SWDIO), PA14 (SWCLK) and PA15 (JTDI) start out owned by the debug port.
type PortA struct {
	PA0  Pin[PA0, Input[Floating]]
	PA1  Pin[PA1, Input[Floating]]
	PA2  Pin[PA2, Input[Floating]]
	PA3  Pin[PA3, Input[Floating]]
	PA4  Pin[PA4, Input[Floating]]
	PA5  Pin[PA5, Input[Floating]]
	PA6  Pin[PA6, Input[Floating]]
	PA7  Pin[PA7, Input[Floating]]
	PA8  Pin[PA8, Input[Floating]]
	PA9  Pin[PA9, Input[Floating]]
	PA10 Pin[PA10, Input[Floating]]
	PA11 Pin[PA11, Input[Floating]]
	PA12 Pin[PA12, Input[Floating]]
	PA13 Pin[PA13, Debugger]
	PA14 Pin[PA14, Debugger]
	PA15 Pin[PA15, Debugger]
}

// PortB holds every pin of GPIOB in its reset mode.
// PB3 (JTDO) and PB4 (NJTRST) start out owned by the debug port.
type PortB struct {
	PB0  Pin[PB0, Input[Floating]]
	PB1  Pin[PB1, Input[Floating]]
	PB2  Pin[PB2, Input[Floating]]
	PB3  Pin[PB3, Debugger]
	PB4  Pin[PB4, Debugger]
	PB5  Pin[PB5, Input[Floating]]
	PB6  Pin[PB6, Input[Floating]]
	PB7  Pin[PB7, Input[Floating]]
	PB8  Pin[PB8, Input[Floating]]
	PB9  Pin[PB9, Input[Floating]]
	PB10 Pin[PB10, Input[Floating]]
	PB11 Pin[PB11, Input[Floating]]
	PB12 Pin[PB12, Input[Floating]]
	PB13 Pin[PB13, Input[Floating]]
	PB14 Pin[PB14, Input[Floating]]
	PB15 Pin[PB15, Input[Floating]]
}

// PortC holds the bonded pins of GPIOC
type PortC struct {
	PC13 Pin[PC13, Input[Floating]]
	PC14 Pin[PC14, Input[Floating]]
	PC15 Pin[PC15, Input[Floating]]
}

type port interface {
	periph.Token
	rcc.Enabler
	Port() int
}

// enable claims the port token, turns on its clock and returns its registers
func enable(tok port) *hal.GPIORegisters {
	tok.Claim()
	regs := hal.MustRegisters()
	rcc.Enable(&regs.RCC, tok)
	return &regs.GPIO[tok.Port()]
}

// SplitA clock-enables GPIOA and returns its pins
func SplitA(tok *periph.GPIOA) *PortA {
	if tok == nil {
		panic("gpio: nil GPIOA token")
	}
	regs := enable(tok)
	return &PortA{
		PA0:  newPin[PA0, Input[Floating]](regs),
		PA1:  newPin[PA1, Input[Floating]](regs),
		PA2:  newPin[PA2, Input[Floating]](regs),
		PA3:  newPin[PA3, Input[Floating]](regs),
		PA4:  newPin[PA4, Input[Floating]](regs),
		PA5:  newPin[PA5, Input[Floating]](regs),
		PA6:  newPin[PA6, Input[Floating]](regs),
		PA7:  newPin[PA7, Input[Floating]](regs),
		PA8:  newPin[PA8, Input[Floating]](regs),
		PA9:  newPin[PA9, Input[Floating]](regs),
		PA10: newPin[PA10, Input[Floating]](regs),
		PA11: newPin[PA11, Input[Floating]](regs),
		PA12: newPin[PA12, Input[Floating]](regs),
		PA13: newPin[PA13, Debugger](regs),
		PA14: newPin[PA14, Debugger](regs),
		PA15: newPin[PA15, Debugger](regs),
	}
}

// SplitB clock-enables GPIOB and returns its pins
func SplitB(tok *periph.GPIOB) *PortB {
	if tok == nil {
		panic("gpio: nil GPIOB token")
	}
	regs := enable(tok)
	return &PortB{
		PB0:  newPin[PB0, Input[Floating]](regs),
		PB1:  newPin[PB1, Input[Floating]](regs),
		PB2:  newPin[PB2, Input[Floating]](regs),
		PB3:  newPin[PB3, Debugger](regs),
		PB4:  newPin[PB4, Debugger](regs),
		PB5:  newPin[PB5, Input[Floating]](regs),
		PB6:  newPin[PB6, Input[Floating]](regs),
		PB7:  newPin[PB7, Input[Floating]](regs),
		PB8:  newPin[PB8, Input[Floating]](regs),
		PB9:  newPin[PB9, Input[Floating]](regs),
		PB10: newPin[PB10, Input[Floating]](regs),
		PB11: newPin[PB11, Input[Floating]](regs),
		PB12: newPin[PB12, Input[Floating]](regs),
		PB13: newPin[PB13, Input[Floating]](regs),
		PB14: newPin[PB14, Input[Floating]](regs),
		PB15: newPin[PB15, Input[Floating]](regs),
	}
}

// SplitC clock-enables GPIOC and returns its pins
func SplitC(tok *periph.GPIOC) *PortC {
	if tok == nil {
		panic("gpio: nil GPIOC token")
	}
	regs := enable(tok)
	return &PortC{
		PC13: newPin[PC13, Input[Floating]](regs),
		PC14: newPin[PC14, Input[Floating]](regs),
		PC15: newPin[PC15, Input[Floating]](regs),
	}
}
