// Package swj carries the capability that the serial-wire/JTAG debug port
// has given up its JTAG-only pins. Only packages in this module can mint it.
package swj

// Released is returned once the SWJ_CFG bits no longer claim PA15, PB3, PB4.
type Released struct {
	ok bool
}

// Release mints the capability. Call it only after the MAPR write that
// disabled JTAG.
func Release() Released {
	return Released{ok: true}
}

// Valid reports whether r came from Release
func (r Released) Valid() bool {
	return r.ok
}
