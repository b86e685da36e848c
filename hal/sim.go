package hal

// SimRegister is an in-memory register used on the host.
// It keeps every value written so tests can count hardware accesses.
type SimRegister struct {
	value  uint32
	writes []uint32
}

// NewSimRegister returns a register holding reset.
func NewSimRegister(reset uint32) *SimRegister {
	return &SimRegister{value: reset}
}

func (r *SimRegister) Get() uint32 {
	return r.value
}

func (r *SimRegister) Set(value uint32) {
	r.value = value
	r.writes = append(r.writes, value)
}

// Writes returns the values written since creation, oldest first.
func (r *SimRegister) Writes() []uint32 {
	return r.writes
}

// NewSimRegisters builds a complete block of SimRegisters at their reset values.
func NewSimRegisters() *Registers {
	r := &Registers{
		RCC: RCCRegisters{
			APB2RSTR: NewSimRegister(0),
			APB1RSTR: NewSimRegister(0),
			AHBENR:   NewSimRegister(0x14),
			APB2ENR:  NewSimRegister(0),
			APB1ENR:  NewSimRegister(0),
		},
		AFIO: AFIORegisters{
			EVCR:    NewSimRegister(0),
			MAPR:    NewSimRegister(0),
			EXTICR1: NewSimRegister(0),
			EXTICR2: NewSimRegister(0),
			EXTICR3: NewSimRegister(0),
			EXTICR4: NewSimRegister(0),
			MAPR2:   NewSimRegister(0),
		},
	}
	for i := range r.GPIO {
		odr := NewSimRegister(0)
		r.GPIO[i] = GPIORegisters{
			CRL:  NewSimRegister(GPIOResetCR),
			CRH:  NewSimRegister(GPIOResetCR),
			IDR:  NewSimRegister(0),
			ODR:  odr,
			BSRR: &SetResetRegister{odr: odr},
			BRR:  &SetResetRegister{odr: odr, resetOnly: true},
		}
	}
	return r
}

// SetResetRegister emulates GPIO BSRR/BRR: writes land in the port's ODR.
type SetResetRegister struct {
	SimRegister
	odr       *SimRegister
	resetOnly bool
}

func (r *SetResetRegister) Set(value uint32) {
	r.SimRegister.Set(value)
	if r.resetOnly {
		r.odr.value &^= value & 0xFFFF
		return
	}
	r.odr.value |= value & 0xFFFF
	r.odr.value &^= value >> 16
}

// Sim returns the simulated register behind r, or nil when r is memory-mapped.
func Sim(r Register) *SimRegister {
	switch s := r.(type) {
	case *SimRegister:
		return s
	case *SetResetRegister:
		return &s.SimRegister
	}
	return nil
}
