package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"f1can/debug"
	"f1can/protocol"
)

func remappedReport() *protocol.Report {
	return &protocol.Report{
		MAPR: 0x02004000,
		Buses: []protocol.Bus{{
			Name:        "CAN1",
			Pins:        "CAN1 TX=PB9 RX=PB8",
			Base:        0x40006400,
			FilterBanks: 14,
			FilterOwner: true,
		}},
		Trace: []protocol.TraceEvent{{Kind: debug.EvtJTAGOff, Value: 0x02000000}},
	}
}

func encodeReports(t *testing.T, reports ...*protocol.Report) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	buf.WriteString("afio: MAPR 0x00000000 -> 0x02000000\r\n")
	enc := protocol.NewEncoder(&buf)
	for _, r := range reports {
		if err := enc.WriteReport(r); err != nil {
			t.Fatalf("WriteReport failed: %v", err)
		}
	}
	return &buf
}

func execute(t *testing.T, in *bytes.Buffer, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(append([]string{"--device", "-"}, args...))
	cmd.SetIn(in)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()
	return out.String(), err
}

func TestMonitorPrintsReport(t *testing.T) {
	out, err := execute(t, encodeReports(t, remappedReport()))
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	for _, want := range []string{
		"MAPR  0x02004000",
		"JTAG  no (SW-DP only)",
		"CAN1 @ 0x40006400: CAN1 TX=PB9 RX=PB8",
		"filter banks 14, owner yes, master no",
		"JTAG_OFF",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestMonitorStopsAtEOF(t *testing.T) {
	in := encodeReports(t, &protocol.Report{DebugEnabled: true}, &protocol.Report{DebugEnabled: true})

	out, err := execute(t, in, "--count", "0", "--verbose")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if n := strings.Count(out, "=== f1can init report ==="); n != 2 {
		t.Errorf("Expected 2 reports, got %d", n)
	}
	if !strings.Contains(out, "JTAG  yes (full SWJ)") {
		t.Errorf("Expected full SWJ with debug enabled, got:\n%s", out)
	}
	if !strings.Contains(out, "frames dropped") {
		t.Errorf("Expected dropped frame count, got:\n%s", out)
	}
}

func TestMonitorExpectRoute(t *testing.T) {
	if _, err := execute(t, encodeReports(t, remappedReport()), "--expect", "can1 rx=pb8 tx=pb9"); err != nil {
		t.Errorf("Expected matching route to pass, got %v", err)
	}

	_, err := execute(t, encodeReports(t, remappedReport()), "--expect", "CAN1 TX=PA12 RX=PA11")
	if !errors.Is(err, ErrRouteMismatch) {
		t.Errorf("Expected ErrRouteMismatch for wrong pins, got %v", err)
	}

	_, err = execute(t, encodeReports(t, remappedReport()), "--expect", "CAN2 TX=PB6 RX=PB5")
	if !errors.Is(err, ErrRouteMismatch) {
		t.Errorf("Expected ErrRouteMismatch for missing bus, got %v", err)
	}
}

func TestMonitorExpectWithoutReport(t *testing.T) {
	in := bytes.NewBufferString("garbage text, board never reported\n")
	_, err := execute(t, in, "--expect", "CAN1 TX=PB9 RX=PB8")
	if !errors.Is(err, ErrRouteMismatch) {
		t.Errorf("Expected ErrRouteMismatch when no report arrives, got %v", err)
	}

	if _, err := execute(t, &bytes.Buffer{}, "--expect", "CAN1 TX=PB9 RX=PB8"); !errors.Is(err, ErrRouteMismatch) {
		t.Errorf("Expected ErrRouteMismatch on empty stream, got %v", err)
	}

	if _, err := execute(t, &bytes.Buffer{}); err != nil {
		t.Errorf("Expected empty stream without --expect to pass, got %v", err)
	}
}

func TestMonitorBadExpect(t *testing.T) {
	if _, err := execute(t, encodeReports(t, remappedReport()), "--expect", "CAN1 TX=PB9"); err == nil {
		t.Error("Expected error for incomplete --expect route")
	}
}

func TestSWJNameFollowsDebugFlag(t *testing.T) {
	// A board with JTAG off still reads SWJ_CFG back as 000
	r := &protocol.Report{MAPR: 0x00004000, DebugEnabled: false}
	var out bytes.Buffer
	printReport(&out, r)
	if !strings.Contains(out.String(), "SW-DP only") {
		t.Errorf("Expected label from debug flag, got:\n%s", out.String())
	}
	if swjName(true) != "full SWJ" {
		t.Errorf("Expected full SWJ, got %s", swjName(true))
	}
}
