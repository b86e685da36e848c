//go:build !wasm

package serial

import (
	"fmt"
	"time"

	"github.com/tarm/serial"
)

// NativePort wraps the tarm/serial implementation
type NativePort struct {
	port *serial.Port
	cfg  *Config
}

// Open opens a native serial port and drops anything already buffered, so
// the first read starts at a fresh frame boundary or debug line.
func Open(cfg *Config) (Port, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	port, err := serial.OpenPort(&serial.Config{
		Name:        cfg.Device,
		Baud:        cfg.Baud,
		ReadTimeout: time.Duration(cfg.ReadTimeout) * time.Millisecond,
	})
	if err != nil {
		return nil, fmt.Errorf("open serial port %s: %w", cfg.Device, err)
	}

	p := &NativePort{port: port, cfg: cfg}
	if err := p.Flush(); err != nil {
		p.Close()
		return nil, fmt.Errorf("flush %s: %w", cfg.Device, err)
	}
	return p, nil
}

func (p *NativePort) Read(b []byte) (int, error)  { return p.port.Read(b) }
func (p *NativePort) Write(b []byte) (int, error) { return p.port.Write(b) }
func (p *NativePort) Flush() error                { return p.port.Flush() }

func (p *NativePort) Close() error {
	if p.port != nil {
		return p.port.Close()
	}
	return nil
}

func (p *NativePort) String() string {
	return fmt.Sprintf("%s@%d", p.cfg.Device, p.cfg.Baud)
}
