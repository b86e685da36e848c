// Package can wraps the bxCAN controllers.
//
// | Function | CAN1 default | CAN1 remap | CAN2 default | CAN2 remap |
// |----------|--------------|------------|--------------|------------|
// | TX       | PA12         | PB9        | PB13         | PB6        |
// | RX       | PA11         | PB8        | PB12         | PB5        |
//
// TX must be an alternate-function output, RX an input. CAN2 exists only
// in connectivity builds.
//
// A Can only becomes something a bus driver can use once AssignPins has
// been given a proof from afio that its pins are routed.
package can

import (
	"f1can/afio"
	"f1can/debug"
	"f1can/hal"
	"f1can/periph"
	"f1can/rcc"
)

// Peripheral is implemented by the bxCAN controller tokens
type Peripheral interface {
	periph.Token
	rcc.Enabler
	Base() uintptr
	CANInstance()
}

// Instance is what a bxCAN driver needs to reach a controller
type Instance interface {
	// Registers returns the base address of the controller's register block
	Registers() uintptr
}

// FilterOwner is an instance that exposes the filter bank pool
type FilterOwner interface {
	Instance
	NumFilterBanks() uint8
}

// MasterInstance marks the controller that arbitrates shared filter banks
// on dual-CAN parts
type MasterInstance interface {
	FilterOwner
	ArbitrationMaster()
}

// Can owns one bxCAN controller. The clock is left running when it is
// dropped.
type Can[PER Peripheral] struct {
	peripheral PER
	shared

	// set by New; a zero Can never had its token claimed or clock enabled
	ready bool
}

func newCan[PER Peripheral](p PER, s shared) *Can[PER] {
	p.Claim()
	regs := hal.MustRegisters()
	rcc.Enable(&regs.RCC, p)
	debug.Println("can: " + p.String() + " clock enabled")
	return &Can[PER]{peripheral: p, shared: s, ready: true}
}

// AssignPins accepts proof that TX/RX are routed to this controller and
// returns the bus handle for the driver. It writes no registers.
func (c *Can[PER]) AssignPins(pins afio.Pins[PER]) *Bus[PER] {
	if c == nil || !c.ready {
		panic("can: controller was not created by New")
	}
	if pins == nil || !pins.Routed() {
		panic("can: " + c.peripheral.String() + " pins were not routed by afio")
	}
	debug.Println("can: " + pins.String())
	return &Bus[PER]{can: c, pins: pins}
}

// Peripheral returns the controller token
func (c *Can[PER]) Peripheral() PER {
	return c.peripheral
}

// Bus is a controller with routed pins, ready for a bxCAN driver
type Bus[PER Peripheral] struct {
	can  *Can[PER]
	pins afio.Pins[PER]
}

func (b *Bus[PER]) Registers() uintptr {
	return b.can.peripheral.Base()
}

// NumFilterBanks returns the size of the filter bank pool. On dual-CAN
// parts CAN2 draws from the same pool, split by the master.
func (b *Bus[PER]) NumFilterBanks() uint8 {
	return NumFilterBanks
}

// FilterOwner reports whether this controller owns the filter registers
func (b *Bus[PER]) FilterOwner() bool {
	_, ok := any(b.can.peripheral).(*periph.CAN1)
	return ok
}

// IsMaster reports whether this controller is the arbitration master.
// Only CAN1 on dual-CAN parts is.
func (b *Bus[PER]) IsMaster() bool {
	return dualCAN && b.FilterOwner()
}

func (b *Bus[PER]) Name() string {
	return b.can.peripheral.String()
}

// Pins describes the routed pin pair
func (b *Bus[PER]) Pins() string {
	return b.pins.String()
}

func (b *Bus[PER]) Peripheral() PER {
	return b.can.peripheral
}
