// want: does not implement afio.Pins[*periph.CAN2]
// tags: connectivity

// A CAN1 pin proof handed to the CAN2 façade.
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
	pb := gpio.SplitB(p.GPIOB)

	proof := afio.NewCAN1Remap(gpio.IntoAlternatePushPull(pb.PB9), pb.PB8).Remap(parts.MAPR)
	can.New(p.CAN2).AssignPins(proof)
}
