// Full init sequence; must build. Keeps the corpus honest.
package main

import (
	"f1can/afio"
	"f1can/can"
	"f1can/gpio"
	"f1can/periph"
)

func main() {
	p, _ := periph.Take()
	parts := afio.Constrain(p.AFIO)
	pa := gpio.SplitA(p.GPIOA)
	pb := gpio.SplitB(p.GPIOB)

	pa15, pb3, pb4 := parts.MAPR.DisableJTAG(pa.PA15, pb.PB3, pb.PB4)
	gpio.SetLow(gpio.IntoPushPullOutput(pa15))
	_ = gpio.IsHigh(pb3)
	gpio.IntoAnalog(pb4)

	tx := gpio.IntoAlternatePushPull(pb.PB9)
	proof := afio.NewCAN1Remap(tx, pb.PB8).Remap(parts.MAPR)

	var inst can.FilterOwner = can.New(p.CAN1, p.USB).AssignPins(proof)
	println(inst.Registers(), inst.NumFilterBanks())
}
