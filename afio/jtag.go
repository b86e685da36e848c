package afio

import (
	"f1can/debug"
	"f1can/gpio"
	"f1can/internal/swj"
)

// DisableJTAG switches the debug port to SW-DP only and hands PA15, PB3 and
// PB4 back as floating inputs. SWDIO/SWCLK stay with the debugger. There is
// no way back.
func (m *MAPR) DisableJTAG(
	pa15 gpio.Pin[gpio.PA15, gpio.Debugger],
	pb3 gpio.Pin[gpio.PB3, gpio.Debugger],
	pb4 gpio.Pin[gpio.PB4, gpio.Debugger],
) (
	gpio.Pin[gpio.PA15, gpio.Input[gpio.Floating]],
	gpio.Pin[gpio.PB3, gpio.Input[gpio.Floating]],
	gpio.Pin[gpio.PB4, gpio.Input[gpio.Floating]],
) {
	if !pa15.Usable() || !pb3.Usable() || !pb4.Usable() {
		panic("afio: JTAG pins already reclaimed")
	}

	// The flag must change before the write so Modify emits the new SWJ bits.
	m.jtagEnabled = false
	m.Modify(func(r uint32) uint32 { return r })
	debug.Record(debug.EvtJTAGOff, m.reg.Get())
	debug.Println("afio: JTAG disabled, PA15 PB3 PB4 released")

	released := swj.Release()
	return gpio.Reclaim(pa15, released), gpio.Reclaim(pb3, released), gpio.Reclaim(pb4, released)
}
