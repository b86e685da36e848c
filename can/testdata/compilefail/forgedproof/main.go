// want: missing method routedTo

// Proofs cannot be implemented outside afio.
package main

import (
	"f1can/can"
	"f1can/periph"
)

type fake struct{}

func (fake) Routed() bool   { return true }
func (fake) String() string { return "CAN1 TX=PA12 RX=PA11" }

func main() {
	p, _ := periph.Take()
	can.New(p.CAN1, p.USB).AssignPins(fake{})
}
