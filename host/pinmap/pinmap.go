// Package pinmap parses the pin route descriptions boards put in their
// init reports, such as "CAN1 TX=PB9 RX=PB8".
package pinmap

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	ErrMissingSignal   = errors.New("route needs both TX and RX")
	ErrDuplicateSignal = errors.New("signal given twice")
)

var routeLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Signal", Pattern: `(?i)\b(TX|RX)\b`},
	{Name: "Pin", Pattern: `(?i)\bP[A-G](1[0-5]|[0-9])\b`},
	{Name: "Ident", Pattern: `[A-Za-z][A-Za-z0-9_]*`},
	{Name: "Assign", Pattern: `=`},
})

// Route is a peripheral and the pins its signals are routed to
type Route struct {
	Peripheral string    `@Ident`
	Signals    []*Signal `@@+`
}

type Signal struct {
	Name string `@Signal Assign`
	Pin  string `@Pin`
}

var parser = participle.MustBuild[Route](
	participle.Lexer(routeLexer),
	participle.Elide("Whitespace"),
)

// Parse parses a route description. Names are case-insensitive and
// normalised to upper case.
func Parse(s string) (*Route, error) {
	r, err := parser.ParseString("", s)
	if err != nil {
		return nil, fmt.Errorf("parse route %q: %w", s, err)
	}

	r.Peripheral = strings.ToUpper(r.Peripheral)
	seen := map[string]bool{}
	for _, sig := range r.Signals {
		sig.Name = strings.ToUpper(sig.Name)
		sig.Pin = strings.ToUpper(sig.Pin)
		if seen[sig.Name] {
			return nil, fmt.Errorf("%w: %s in %q", ErrDuplicateSignal, sig.Name, s)
		}
		seen[sig.Name] = true
	}
	if !seen["TX"] || !seen["RX"] {
		return nil, fmt.Errorf("%w: %q", ErrMissingSignal, s)
	}
	return r, nil
}

// Pin returns the pin a signal is routed to, or "" if the route has no such signal
func (r *Route) Pin(signal string) string {
	for _, sig := range r.Signals {
		if sig.Name == signal {
			return sig.Pin
		}
	}
	return ""
}

func (r *Route) TX() string { return r.Pin("TX") }
func (r *Route) RX() string { return r.Pin("RX") }

// Equal compares peripheral and pins, ignoring signal order
func (r *Route) Equal(o *Route) bool {
	return r.Peripheral == o.Peripheral && r.TX() == o.TX() && r.RX() == o.RX()
}

func (r *Route) String() string {
	return fmt.Sprintf("%s TX=%s RX=%s", r.Peripheral, r.TX(), r.RX())
}
