// want: undefined: afio.NewCAN2Remap

// CAN2 routing does not exist outside connectivity builds.
package main

import (
	"f1can/afio"
	"f1can/gpio"
	"f1can/periph"
)

func main() {
	p, _ := periph.Take()
	parts := afio.Constrain(p.AFIO)
	pb := gpio.SplitB(p.GPIOB)

	afio.NewCAN2Remap(gpio.IntoAlternatePushPull(pb.PB6), pb.PB5).Remap(parts.MAPR)
}
