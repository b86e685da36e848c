//go:build connectivity

package periph

import (
	"f1can/hal"
	"f1can/rcc"
)

// CAN2 is the second bxCAN controller of connectivity-line parts.
// It has no filter banks of its own and is a slave of CAN1.
type CAN2 struct{ token }

func (*CAN2) Clock() rcc.Clock { return rcc.CAN2 }
func (*CAN2) Base() uintptr    { return hal.CAN2Base }
func (*CAN2) CANInstance()     {}

type variant struct {
	CAN2 *CAN2
}

func newVariant() variant {
	return variant{CAN2: &CAN2{issue("CAN2")}}
}
