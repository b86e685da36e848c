// want: does not match

// TX must be in an alternate-function mode.
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

	afio.NewCAN1NoRemap(pa.PA12, pa.PA11).Remap(parts.MAPR)
}
