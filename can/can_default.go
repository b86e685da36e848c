//go:build !connectivity

package can

import "f1can/periph"

// NumFilterBanks is the bxCAN filter bank count of low/medium/high-density parts
const NumFilterBanks = 14

const dualCAN = false

type shared struct {
	usb *periph.USB
}

// New claims the controller token, enables its clock and returns the façade.
//
// CAN shares its SRAM with the USB peripheral, so the USB token is taken too
// to keep the two from being used at the same time.
func New[PER Peripheral](can PER, usb *periph.USB) *Can[PER] {
	if usb == nil {
		panic("can: nil USB token")
	}
	// Check both before claiming either, so a failed New consumes nothing
	if !can.Available() {
		panic("can: " + can.String() + " token already claimed or not issued")
	}
	if !usb.Available() {
		panic("can: USB token already claimed or not issued")
	}
	c := newCan(can, shared{usb: usb})
	usb.Claim()
	return c
}
