//go:build stm32f103

package main

import (
	"machine"
	"time"

	"f1can/debug"
	"f1can/gpio"
	"f1can/hal"
	"f1can/periph"
	"f1can/protocol"
)

func main() {
	hal.SetRegisters(hal.Hardware())

	// USART1 on PA9 (TX) / PA10 (RX); debug text and reports share it
	uart := machine.UART1
	sink := openReportSink(uart, func() error {
		return uart.Configure(machine.UARTConfig{BaudRate: reportBaud})
	})

	p, ok := periph.Take()
	if !ok {
		panic("bluepill: peripherals already taken")
	}
	b := setup(p)

	if sink == nil {
		// Nowhere to send reports; blink so the board still shows life
		for {
			gpio.Toggle(b.led)
			time.Sleep(reportInterval / 4)
		}
	}

	enc := protocol.NewEncoder(sink)
	for {
		if err := enc.WriteReport(buildReport(b)); err != nil {
			debug.Println("bluepill: report: " + err.Error())
		}
		gpio.Toggle(b.led)
		time.Sleep(reportInterval)
	}
}
