package hal

import "testing"

func TestModifyIsReadModifyWrite(t *testing.T) {
	r := NewSimRegister(0xF0)

	w := Modify(r, func(v uint32) uint32 { return v | 0x01 })

	if w != 0xF1 {
		t.Errorf("Expected Modify to return 0xF1, got 0x%X", w)
	}
	if r.Get() != 0xF1 {
		t.Errorf("Expected 0xF1, got 0x%X", r.Get())
	}
	if len(r.Writes()) != 1 {
		t.Errorf("Expected 1 write, got %d", len(r.Writes()))
	}
}

func TestModifyRestoresInterruptsOnPanic(t *testing.T) {
	r := NewSimRegister(0xF0)

	func() {
		defer func() { recover() }()
		Modify(r, func(uint32) uint32 { panic("bad transform") })
	}()

	if masked != 0 {
		t.Errorf("Expected interrupts restored, %d sections still open", masked)
	}
	if len(r.Writes()) != 0 {
		t.Errorf("Expected no write after panic, got %d", len(r.Writes()))
	}
}

func TestSimRegistersResetValues(t *testing.T) {
	r := NewSimRegisters()

	for i, port := range r.GPIO {
		if port.CRL.Get() != GPIOResetCR || port.CRH.Get() != GPIOResetCR {
			t.Errorf("Port %d: expected CR reset 0x%X", i, GPIOResetCR)
		}
	}
	if r.AFIO.MAPR.Get() != 0 {
		t.Errorf("Expected MAPR reset 0, got 0x%X", r.AFIO.MAPR.Get())
	}
}

func TestMustRegistersPanicsWhenUnset(t *testing.T) {
	SetRegisters(nil)
	defer func() {
		if recover() == nil {
			t.Error("Expected panic with no register block configured")
		}
	}()
	MustRegisters()
}

func TestSimOnlyForSimRegisters(t *testing.T) {
	var r Register = NewSimRegister(0)
	if Sim(r) == nil {
		t.Error("Expected SimRegister back")
	}
}

func TestSetResetLandsInODR(t *testing.T) {
	r := NewSimRegisters()
	port := r.GPIO[PortB]

	port.BSRR.Set(1<<9 | 1<<3)
	if port.ODR.Get() != 1<<9|1<<3 {
		t.Errorf("Expected ODR 0x%X, got 0x%X", 1<<9|1<<3, port.ODR.Get())
	}

	port.BSRR.Set(1 << (3 + 16))
	port.BRR.Set(1 << 9)
	if port.ODR.Get() != 0 {
		t.Errorf("Expected ODR cleared, got 0x%X", port.ODR.Get())
	}
	if len(Sim(port.ODR).Writes()) != 0 {
		t.Error("Expected ODR to change without direct writes")
	}
}
