//go:build !connectivity

package periph

import (
	"f1can/hal"
	"f1can/rcc"
)

// USB is the full-speed USB device. On non-connectivity parts it shares
// its packet SRAM with CAN1.
type USB struct{ token }

func (*USB) Clock() rcc.Clock { return rcc.USB }
func (*USB) Base() uintptr    { return hal.USBBase }

type variant struct {
	USB *USB
}

func newVariant() variant {
	return variant{USB: &USB{issue("USB")}}
}
