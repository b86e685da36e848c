package gpio

import (
	"testing"

	"f1can/hal"
	"f1can/internal/swj"
	"f1can/periph"
	"f1can/rcc"
)

func setup(t *testing.T) *hal.Registers {
	t.Helper()
	regs := hal.NewSimRegisters()
	hal.SetRegisters(regs)
	return regs
}

func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}

func TestSplitEnablesClockAndResetModes(t *testing.T) {
	regs := setup(t)
	p := periph.Steal()

	pa := SplitA(p.GPIOA)
	pb := SplitB(p.GPIOB)

	if !rcc.IsEnabled(&regs.RCC, rcc.IOPA) || !rcc.IsEnabled(&regs.RCC, rcc.IOPB) {
		t.Error("Expected GPIOA and GPIOB clocks enabled")
	}
	if pa.PA15.Mode() != "debugger" {
		t.Errorf("Expected PA15 in debugger mode, got %s", pa.PA15.Mode())
	}
	if pb.PB3.Mode() != "debugger" || pb.PB4.Mode() != "debugger" {
		t.Error("Expected PB3/PB4 in debugger mode")
	}
	if pa.PA12.Mode() != "input floating" {
		t.Errorf("Expected PA12 floating input, got %s", pa.PA12.Mode())
	}
	if pb.PB13.Name() != "PB13" {
		t.Errorf("Expected name PB13, got %s", pb.PB13.Name())
	}
}

func TestSplitClaimsToken(t *testing.T) {
	setup(t)
	p := periph.Steal()

	SplitC(p.GPIOC)
	expectPanic(t, "second split", func() { SplitC(p.GPIOC) })
}

func TestAlternatePushPullWritesCRH(t *testing.T) {
	regs := setup(t)
	pa := SplitA(periph.Steal().GPIOA)

	tx := IntoAlternatePushPull(pa.PA12)

	crh := regs.GPIO[hal.PortA].CRH.Get()
	if got := (crh >> 16) & 0xF; got != crAltPushPull {
		t.Errorf("Expected PA12 nibble 0x%X, got 0x%X", crAltPushPull, got)
	}
	if crh&0xFFFF != 0x4444 {
		t.Errorf("Expected other CRH nibbles untouched, got 0x%08X", crh)
	}
	if tx.Mode() != "alternate push-pull" {
		t.Errorf("Unexpected mode %s", tx.Mode())
	}
}

func TestPullUpSetsODRBeforeCR(t *testing.T) {
	regs := setup(t)
	pb := SplitB(periph.Steal().GPIOB)

	in := IntoPullUpInput(pb.PB5)

	port := regs.GPIO[hal.PortB]
	if port.ODR.Get()&(1<<5) == 0 {
		t.Error("Expected ODR bit 5 set for pull-up")
	}
	if got := (port.CRL.Get() >> 20) & 0xF; got != crInPull {
		t.Errorf("Expected PB5 nibble 0x%X, got 0x%X", crInPull, got)
	}
	if in.Mode() != "input pull-up" {
		t.Errorf("Unexpected mode %s", in.Mode())
	}
}

func TestOutputDrive(t *testing.T) {
	regs := setup(t)
	pc := SplitC(periph.Steal().GPIOC)

	led := IntoPushPullOutput(pc.PC13)
	SetHigh(led)
	if !IsSetHigh(led) {
		t.Error("Expected PC13 driven high")
	}
	Toggle(led)
	if IsSetHigh(led) {
		t.Error("Expected PC13 driven low after toggle")
	}
	if regs.GPIO[hal.PortC].ODR.Get() != 0 {
		t.Errorf("Expected ODR 0, got 0x%X", regs.GPIO[hal.PortC].ODR.Get())
	}
}

func TestInputReadsIDR(t *testing.T) {
	regs := setup(t)
	pa := SplitA(periph.Steal().GPIOA)

	btn := IntoPullDownInput(pa.PA0)
	regs.GPIO[hal.PortA].IDR.Set(1)

	if !IsHigh(btn) || IsLow(btn) {
		t.Error("Expected PA0 to read high")
	}
}

func TestStaleHandlePanics(t *testing.T) {
	setup(t)
	pa := SplitA(periph.Steal().GPIOA)

	old := pa.PA8
	IntoPushPullOutput(old)

	expectPanic(t, "reuse after transition", func() { IntoAnalog(old) })
}

func TestBindRetiresHandles(t *testing.T) {
	setup(t)
	pa := SplitA(periph.Steal().GPIOA)

	tx := IntoAlternatePushPull(pa.PA9)
	copyOfTx := tx
	tx.Bind()

	expectPanic(t, "use after bind", func() { IntoFloatingInput(copyOfTx) })
}

func TestForgedHandlePanics(t *testing.T) {
	setup(t)
	var forged Pin[PA1, Output[PushPull]]
	expectPanic(t, "forged handle", func() { SetHigh(forged) })
}

func TestReclaimNeedsRelease(t *testing.T) {
	regs := setup(t)
	pa := SplitA(periph.Steal().GPIOA)

	expectPanic(t, "reclaim without release", func() { Reclaim(pa.PA15, swj.Released{}) })

	pin := Reclaim(pa.PA15, swj.Release())
	if pin.Mode() != "input floating" {
		t.Errorf("Expected floating input, got %s", pin.Mode())
	}
	if got := regs.GPIO[hal.PortA].CRH.Get() >> 28; got != crInFloating {
		t.Errorf("Expected PA15 nibble 0x%X, got 0x%X", crInFloating, got)
	}
}

func TestUsable(t *testing.T) {
	setup(t)
	pb := SplitB(periph.Steal().GPIOB)

	old := pb.PB12
	if !old.Usable() {
		t.Error("Expected fresh handle usable")
	}
	IntoFloatingInput(old)
	if old.Usable() {
		t.Error("Expected stale handle unusable")
	}
	var zero Pin[PB12, Input[Floating]]
	if zero.Usable() {
		t.Error("Expected zero handle unusable")
	}
}
