package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"f1can/host/pinmap"
	"f1can/host/serial"
	"f1can/protocol"
)

var ErrRouteMismatch = errors.New("pin route does not match")

type options struct {
	device  string
	baud    int
	count   int
	verbose bool
	expect  []string
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "f1can-monitor",
		Short: "Print init reports from an f1can board",
		Long: `Reads the framed init reports a board sends on its debug UART and prints
the MAPR setting, the routed CAN pins and the register trace.

Examples:
  f1can-monitor --device /dev/ttyUSB0                    # Print one report
  f1can-monitor --count 0 --verbose                      # Keep printing
  f1can-monitor --expect "CAN1 TX=PB9 RX=PB8"            # Fail if CAN1 is routed elsewhere
  go run ./targets/bluepill | f1can-monitor --device -   # Simulated board`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.device, "device", "d", "/dev/ttyUSB0", "serial device path, or - for stdin")
	flags.IntVarP(&opts.baud, "baud", "b", serial.DefaultBaud, "baud rate of the debug UART")
	flags.IntVarP(&opts.count, "count", "n", 1, "reports to print before exiting (0 = until the stream ends)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "print dropped frame counts")
	flags.StringArrayVar(&opts.expect, "expect", nil, "expected pin route, e.g. \"CAN1 TX=PB9 RX=PB8\" (repeatable)")
	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	var expected []*pinmap.Route
	for _, s := range opts.expect {
		r, err := pinmap.Parse(s)
		if err != nil {
			return err
		}
		expected = append(expected, r)
	}

	in := cmd.InOrStdin()
	if opts.device != "-" {
		cfg := serial.DefaultConfig(opts.device)
		cfg.Baud = opts.baud
		port, err := serial.Open(cfg)
		if err != nil {
			return err
		}
		defer port.Close()
		in = port
		fmt.Fprintf(cmd.ErrOrStderr(), "Waiting for init report on %s (reset the board)...\n", opts.device)
	}

	return monitor(in, cmd.OutOrStdout(), opts, expected)
}

// monitor reads up to opts.count reports from r (all of them when count is
// 0), prints each and checks it against the expected routes
func monitor(r io.Reader, w io.Writer, opts *options, expected []*pinmap.Route) error {
	dec := protocol.NewDecoder(r)
	read := 0
	for opts.count == 0 || read < opts.count {
		report, err := dec.ReadReport()
		if errors.Is(err, io.EOF) {
			if len(expected) > 0 && read == 0 {
				return fmt.Errorf("%w: no report received", ErrRouteMismatch)
			}
			return nil
		}
		if err != nil {
			return fmt.Errorf("read report: %w", err)
		}

		read++
		printReport(w, report)
		if opts.verbose {
			fmt.Fprintf(w, "  (%d frames dropped so far)\n", dec.Dropped)
		}
		if err := checkRoutes(report, expected); err != nil {
			return err
		}
	}
	return nil
}

// checkRoutes verifies every expected route against the bus of the same peripheral
func checkRoutes(report *protocol.Report, expected []*pinmap.Route) error {
	for _, want := range expected {
		var got *pinmap.Route
		for _, b := range report.Buses {
			r, err := pinmap.Parse(b.Pins)
			if err != nil {
				return fmt.Errorf("bus %s: %w", b.Name, err)
			}
			if r.Peripheral == want.Peripheral {
				got = r
				break
			}
		}
		if got == nil {
			return fmt.Errorf("%w: %s not in report", ErrRouteMismatch, want.Peripheral)
		}
		if !got.Equal(want) {
			return fmt.Errorf("%w: expected %s, got %s", ErrRouteMismatch, want, got)
		}
	}
	return nil
}
