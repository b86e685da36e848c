//go:build !connectivity

package main

import "time"

// Board configuration. PA11/PA12 carry USB on the Blue Pill, so CAN1 goes
// to PB8/PB9 by default.
const (
	remapCAN1      = true
	reclaimJTAG    = true
	reportBaud     = 115200
	reportInterval = 2 * time.Second
)
