//go:build !stm32f103 && !connectivity

package main

import (
	"fmt"
	"os"

	"f1can/debug"
	"f1can/hal"
	"f1can/periph"
	"f1can/protocol"
)

// On a host the firmware runs against simulated registers and writes one
// report to stdout, for piping into f1can-monitor -device -.
func main() {
	hal.SetRegisters(hal.NewSimRegisters())
	debug.SetWriter(func(s string) { fmt.Fprintln(os.Stderr, s) })
	debug.SetEnabled(true)

	p, ok := periph.Take()
	if !ok {
		panic("bluepill: peripherals already taken")
	}
	b := setup(p)

	if err := protocol.NewEncoder(os.Stdout).WriteReport(buildReport(b)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
