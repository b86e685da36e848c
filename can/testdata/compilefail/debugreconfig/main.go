// want: does not satisfy gpio.Configurable

// PB3 cannot be reconfigured without going through DisableJTAG.
package main

import (
	"f1can/gpio"
	"f1can/periph"
)

func main() {
	p, _ := periph.Take()
	pb := gpio.SplitB(p.GPIOB)

	gpio.SetHigh(gpio.IntoPushPullOutput(pb.PB3))
}
