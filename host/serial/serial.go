// Package serial opens the debug UART of a board from the host.
package serial

import (
	"errors"
	"io"
)

// DefaultBaud matches the firmware's debug UART
const DefaultBaud = 115200

var ErrNoDevice = errors.New("no serial device given")

// Port is what the monitor needs from a serial connection. Tests substitute
// an in-memory pipe.
type Port interface {
	io.ReadWriteCloser

	// Flush discards data received but not yet read
	Flush() error
}

// Config holds serial port configuration
type Config struct {
	// Device path (e.g., "/dev/ttyUSB0", "COM3")
	Device string

	Baud int

	// Read timeout in milliseconds (0 = blocking). A timed out read
	// returns io.EOF, which ends a report in progress.
	ReadTimeout int
}

func DefaultConfig(device string) *Config {
	return &Config{
		Device: device,
		Baud:   DefaultBaud,
	}
}

func (c *Config) validate() error {
	if c == nil || c.Device == "" {
		return ErrNoDevice
	}
	if c.Baud <= 0 {
		c.Baud = DefaultBaud
	}
	return nil
}
