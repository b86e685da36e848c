package gpio

// CRL/CRH nibble: CNF[3:2] MODE[1:0]
const (
	crAnalog      = 0x0
	crInFloating  = 0x4
	crInPull      = 0x8
	crOutPushPull = 0x2 // 2 MHz
	crOutOpenDrn  = 0x6
	crAltPushPull = 0xB // 50 MHz
	crAltOpenDrn  = 0xF
)

type pullKind int8

const (
	pullNone pullKind = iota
	pullUp
	pullDown
)

type modeInfo struct {
	cr   uint32
	pull pullKind
	name string
}

// Mode is the electrical/functional state of a pin. The set of modes is closed.
type Mode interface {
	info() modeInfo
}

// Configurable modes can be left by a mode transition. Debugger is not one of them.
type Configurable interface {
	Mode
	configurable()
}

// Readable modes allow sampling the input data register
type Readable interface {
	Mode
	readable()
}

// Writable modes allow driving the output data register
type Writable interface {
	Mode
	writable()
}

// Pull selects the input bias
type Pull interface {
	pull() (pullKind, string)
}

type (
	Floating struct{}
	PullUp   struct{}
	PullDown struct{}
)

func (Floating) pull() (pullKind, string) { return pullNone, "floating" }
func (PullUp) pull() (pullKind, string)   { return pullUp, "pull-up" }
func (PullDown) pull() (pullKind, string) { return pullDown, "pull-down" }

// Drive selects the output stage
type Drive interface {
	openDrain() bool
}

type (
	PushPull  struct{}
	OpenDrain struct{}
)

func (PushPull) openDrain() bool  { return false }
func (OpenDrain) openDrain() bool { return true }

// Debugger pins belong to the SWJ debug port. They cannot be read, written
// or reconfigured until the port releases them.
type Debugger struct{}

func (Debugger) info() modeInfo { return modeInfo{cr: crInFloating, name: "debugger"} }

// Input is a digital input with pull P
type Input[P Pull] struct{}

func (Input[P]) info() modeInfo {
	var p P
	kind, name := p.pull()
	cr := uint32(crInPull)
	if kind == pullNone {
		cr = crInFloating
	}
	return modeInfo{cr: cr, pull: kind, name: "input " + name}
}
func (Input[P]) configurable() {}
func (Input[P]) readable()     {}

// Output is a general-purpose output with drive D
type Output[D Drive] struct{}

func (Output[D]) info() modeInfo {
	var d D
	if d.openDrain() {
		return modeInfo{cr: crOutOpenDrn, name: "output open-drain"}
	}
	return modeInfo{cr: crOutPushPull, name: "output push-pull"}
}
func (Output[D]) configurable() {}
func (Output[D]) readable()     {}
func (Output[D]) writable()     {}

// Alternate hands the output stage to a peripheral
type Alternate[D Drive] struct{}

func (Alternate[D]) info() modeInfo {
	var d D
	if d.openDrain() {
		return modeInfo{cr: crAltOpenDrn, name: "alternate open-drain"}
	}
	return modeInfo{cr: crAltPushPull, name: "alternate push-pull"}
}
func (Alternate[D]) configurable() {}

// Analog disconnects the digital input stage
type Analog struct{}

func (Analog) info() modeInfo { return modeInfo{cr: crAnalog, name: "analog"} }
func (Analog) configurable()  {}
