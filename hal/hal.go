// Package hal is the raw register layer the rest of the module is written
// against. Target code installs a memory-mapped block; host builds and tests
// install a simulated one.
package hal

// Register is a 32-bit peripheral register.
// TinyGo's *volatile.Register32 satisfies it.
type Register interface {
	Get() uint32
	Set(value uint32)
}

// Modify performs a read-modify-write of r with interrupts disabled, so a
// handler touching the same register cannot interleave. It returns the
// value written.
func Modify(r Register, fn func(uint32) uint32) uint32 {
	state := disableInterrupts()
	defer restoreInterrupts(state)
	v := fn(r.Get())
	r.Set(v)
	return v
}

// RCCRegisters are the reset and clock control registers this module touches.
type RCCRegisters struct {
	APB2RSTR Register
	APB1RSTR Register
	AHBENR   Register
	APB2ENR  Register
	APB1ENR  Register
}

// AFIORegisters is the alternate-function I/O register block.
type AFIORegisters struct {
	EVCR    Register
	MAPR    Register
	EXTICR1 Register
	EXTICR2 Register
	EXTICR3 Register
	EXTICR4 Register
	MAPR2   Register
}

// GPIORegisters is one GPIO port.
type GPIORegisters struct {
	CRL  Register
	CRH  Register
	IDR  Register
	ODR  Register
	BSRR Register
	BRR  Register
}

// Port indices into Registers.GPIO
const (
	PortA = iota
	PortB
	PortC
	PortD
	PortE
	NumPorts
)

// Registers is the full set of register blocks used by the module.
type Registers struct {
	RCC  RCCRegisters
	AFIO AFIORegisters
	GPIO [NumPorts]GPIORegisters
}

// Global singleton used by afio, gpio and can.
var registers *Registers

// SetRegisters is called by target code (or tests) to install a register block.
func SetRegisters(r *Registers) {
	registers = r
}

// MustRegisters returns the installed block or panics if missing.
func MustRegisters() *Registers {
	if registers == nil {
		panic("hal: register block not configured")
	}
	return registers
}
