//go:build connectivity

package afio

import (
	"f1can/gpio"
	"f1can/periph"
)

// CAN2NoRemap routes CAN2 to TX=PB13, RX=PB12 (CAN2_REMAP=0)
type CAN2NoRemap[D gpio.Drive, P gpio.Pull] struct {
	TX gpio.Pin[gpio.PB13, gpio.Alternate[D]]
	RX gpio.Pin[gpio.PB12, gpio.Input[P]]
}

func NewCAN2NoRemap[D gpio.Drive, P gpio.Pull](
	tx gpio.Pin[gpio.PB13, gpio.Alternate[D]],
	rx gpio.Pin[gpio.PB12, gpio.Input[P]],
) CAN2NoRemap[D, P] {
	return CAN2NoRemap[D, P]{TX: tx, RX: rx}
}

func (p CAN2NoRemap[D, P]) Remap(m *MAPR) Alt[*periph.CAN2, CAN2NoRemap[D, P]] {
	return apply[*periph.CAN2](m, p)
}

func (CAN2NoRemap[D, P]) field() (uint32, uint32) { return can2RemapBit, 0 }
func (p CAN2NoRemap[D, P]) usable() bool          { return p.TX.Usable() && p.RX.Usable() }
func (p CAN2NoRemap[D, P]) bind()                 { p.TX.Bind(); p.RX.Bind() }
func (CAN2NoRemap[D, P]) peripheral(*periph.CAN2) {}
func (CAN2NoRemap[D, P]) String() string          { return "CAN2 TX=PB13 RX=PB12" }

// CAN2Remap routes CAN2 to TX=PB6, RX=PB5 (CAN2_REMAP=1)
type CAN2Remap[D gpio.Drive, P gpio.Pull] struct {
	TX gpio.Pin[gpio.PB6, gpio.Alternate[D]]
	RX gpio.Pin[gpio.PB5, gpio.Input[P]]
}

func NewCAN2Remap[D gpio.Drive, P gpio.Pull](
	tx gpio.Pin[gpio.PB6, gpio.Alternate[D]],
	rx gpio.Pin[gpio.PB5, gpio.Input[P]],
) CAN2Remap[D, P] {
	return CAN2Remap[D, P]{TX: tx, RX: rx}
}

func (p CAN2Remap[D, P]) Remap(m *MAPR) Alt[*periph.CAN2, CAN2Remap[D, P]] {
	return apply[*periph.CAN2](m, p)
}

func (CAN2Remap[D, P]) field() (uint32, uint32) { return can2RemapBit, can2RemapBit }
func (p CAN2Remap[D, P]) usable() bool          { return p.TX.Usable() && p.RX.Usable() }
func (p CAN2Remap[D, P]) bind()                 { p.TX.Bind(); p.RX.Bind() }
func (CAN2Remap[D, P]) peripheral(*periph.CAN2) {}
func (CAN2Remap[D, P]) String() string          { return "CAN2 TX=PB6 RX=PB5" }
