package afio

import "f1can/hal"

// EVCR is the event control register (Cortex EVENTOUT routing)
type EVCR struct {
	reg hal.Register
}

func (e *EVCR) Modify(fn func(r uint32) uint32) {
	hal.Modify(e.reg, fn)
}

func (e *EVCR) Bits() uint32 {
	return e.reg.Get()
}

// EXTICR is one of the four external interrupt source selection registers.
// Each covers four EXTI lines starting at first.
type EXTICR struct {
	reg   hal.Register
	first uint8
}

func (e *EXTICR) Modify(fn func(r uint32) uint32) {
	hal.Modify(e.reg, fn)
}

func (e *EXTICR) Bits() uint32 {
	return e.reg.Get()
}

// SelectPort routes EXTI line to port (hal.PortA..hal.PortE).
// line must belong to this register.
func (e *EXTICR) SelectPort(line uint8, port int) {
	if line < e.first || line >= e.first+4 {
		panic("afio: EXTI line not covered by this register")
	}
	shift := uint(line-e.first) * 4
	e.Modify(func(r uint32) uint32 {
		return r&^(0xF<<shift) | uint32(port)<<shift
	})
}

// MAPR2 is the secondary remap register
type MAPR2 struct {
	reg hal.Register
}

func (m *MAPR2) Modify(fn func(r uint32) uint32) {
	hal.Modify(m.reg, fn)
}

func (m *MAPR2) Bits() uint32 {
	return m.reg.Get()
}
