//go:build !connectivity

package main

import (
	"f1can/debug"
	"f1can/protocol"
)

func buildReport(b *board) *protocol.Report {
	r := &protocol.Report{
		MAPR:         b.afio.MAPR.Bits(),
		MAPR2:        b.afio.MAPR2.Bits(),
		DebugEnabled: b.afio.MAPR.DebugEnabled(),
		Buses: []protocol.Bus{{
			Name:        b.can1.Name(),
			Pins:        b.can1.Pins(),
			Base:        uint32(b.can1.Registers()),
			FilterBanks: b.can1.NumFilterBanks(),
			Master:      b.can1.IsMaster(),
			FilterOwner: b.can1.FilterOwner(),
		}},
	}
	for _, evt := range debug.Trace() {
		r.Trace = append(r.Trace, protocol.TraceEvent{Kind: evt.Kind, Value: evt.Value})
	}
	return r
}
