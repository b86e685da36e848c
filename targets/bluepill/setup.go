//go:build !connectivity

package main

import (
	"f1can/afio"
	"f1can/can"
	"f1can/debug"
	"f1can/gpio"
	"f1can/periph"
)

// board is everything the firmware keeps after init
type board struct {
	afio *afio.Parts
	can1 *can.Bus[*periph.CAN1]
	led  gpio.Pin[gpio.PC13, gpio.Output[gpio.PushPull]]

	// Transceiver standby on PB4 (NJTRST), only when JTAG is reclaimed
	standby    gpio.Pin[gpio.PB4, gpio.Output[gpio.OpenDrain]]
	hasStandby bool
}

// setup runs the init sequence: AFIO, ports, debug port, CAN1
func setup(p *periph.Peripherals) *board {
	b := &board{afio: afio.Constrain(p.AFIO)}
	pa := gpio.SplitA(p.GPIOA)
	pb := gpio.SplitB(p.GPIOB)
	pc := gpio.SplitC(p.GPIOC)

	// LED is active low
	b.led = gpio.IntoPushPullOutput(pc.PC13)
	gpio.SetHigh(b.led)

	if reclaimJTAG {
		_, _, pb4 := b.afio.MAPR.DisableJTAG(pa.PA15, pb.PB3, pb.PB4)
		b.standby = gpio.IntoOpenDrainOutput(pb4)
		gpio.SetLow(b.standby)
		b.hasStandby = true
	}

	c := can.New(p.CAN1, p.USB)
	if remapCAN1 {
		pins := afio.NewCAN1Remap(
			gpio.IntoAlternatePushPull(pb.PB9),
			gpio.IntoPullUpInput(pb.PB8),
		)
		b.can1 = c.AssignPins(pins.Remap(b.afio.MAPR))
	} else {
		pins := afio.NewCAN1NoRemap(
			gpio.IntoAlternatePushPull(pa.PA12),
			gpio.IntoPullUpInput(pa.PA11),
		)
		b.can1 = c.AssignPins(pins.Remap(b.afio.MAPR))
	}

	debug.Printf("bluepill: %s ready, %d filter banks", b.can1.Pins(), b.can1.NumFilterBanks())
	return b
}
