// want: does not match

// PA12 with PB8 is not a CAN1 pin pair.
package main

import (
	"f1can/afio"
	"f1can/gpio"
	"f1can/periph"
)

func main() {
	p, _ := periph.Take()
	parts := afio.Constrain(p.AFIO)
	pa := gpio.SplitA(p.GPIOA)
	pb := gpio.SplitB(p.GPIOB)

	afio.NewCAN1Remap(gpio.IntoAlternatePushPull(pa.PA12), pb.PB8).Remap(parts.MAPR)
}
