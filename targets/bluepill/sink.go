//go:build !connectivity

package main

import (
	"io"

	"f1can/debug"
)

// openReportSink configures the report line and returns it, or nil when
// configure fails so callers never write to an unconfigured UART. On
// success debug output is routed to the same line.
func openReportSink(w io.Writer, configure func() error) io.Writer {
	if err := configure(); err != nil {
		return nil
	}

	debug.SetWriter(func(s string) {
		w.Write([]byte(s))
		w.Write([]byte("\r\n"))
	})
	debug.SetEnabled(true)
	debug.Println("=== f1can Blue Pill ===")
	return w
}
