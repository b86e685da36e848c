// want: does not satisfy can.Peripheral

// The USB token is not a CAN controller.
package main

import (
	"f1can/can"
	"f1can/periph"
)

func main() {
	p, _ := periph.Take()
	can.New(p.USB, p.USB)
}
