package main

import (
	"fmt"
	"io"

	"f1can/debug"
	"f1can/protocol"
)

// swjName labels the debug port from the firmware's own flag. SWJ_CFG is
// write-only, so the MAPR readback always shows 000 there.
func swjName(debugEnabled bool) string {
	if debugEnabled {
		return "full SWJ"
	}
	return "SW-DP only"
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func printReport(w io.Writer, r *protocol.Report) {
	fmt.Fprintln(w, "=== f1can init report ===")
	fmt.Fprintf(w, "MAPR  0x%08X\n", r.MAPR)
	fmt.Fprintf(w, "MAPR2 0x%08X\n", r.MAPR2)
	fmt.Fprintf(w, "JTAG  %s (%s)\n", yesNo(r.DebugEnabled), swjName(r.DebugEnabled))

	for _, b := range r.Buses {
		fmt.Fprintf(w, "%s @ 0x%08X: %s\n", b.Name, b.Base, b.Pins)
		fmt.Fprintf(w, "  filter banks %d, owner %s, master %s\n",
			b.FilterBanks, yesNo(b.FilterOwner), yesNo(b.Master))
	}

	if len(r.Trace) > 0 {
		fmt.Fprintln(w, "Register trace:")
		for _, evt := range r.Trace {
			fmt.Fprintf(w, "  %-8s 0x%08X\n", debug.EventName(evt.Kind), evt.Value)
		}
	}
}
