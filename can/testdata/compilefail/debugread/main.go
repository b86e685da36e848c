// want: does not satisfy gpio.Readable

// PA15 belongs to the debug port until JTAG is disabled.
package main

import (
	"f1can/gpio"
	"f1can/periph"
)

func main() {
	p, _ := periph.Take()
	pa := gpio.SplitA(p.GPIOA)

	println(gpio.IsHigh(pa.PA15))
}
