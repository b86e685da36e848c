// Pin identity types, one per bonded pin of the 48-pin STM32F103.

package gpio

import "f1can/hal"

// Port A
type (
	PA0  struct{}
	PA1  struct{}
	PA2  struct{}
	PA3  struct{}
	PA4  struct{}
	PA5  struct{}
	PA6  struct{}
	PA7  struct{}
	PA8  struct{}
	PA9  struct{}
	PA10 struct{}
	PA11 struct{}
	PA12 struct{}
	PA13 struct{}
	PA14 struct{}
	PA15 struct{}
)

// Port B
type (
	PB0  struct{}
	PB1  struct{}
	PB2  struct{}
	PB3  struct{}
	PB4  struct{}
	PB5  struct{}
	PB6  struct{}
	PB7  struct{}
	PB8  struct{}
	PB9  struct{}
	PB10 struct{}
	PB11 struct{}
	PB12 struct{}
	PB13 struct{}
	PB14 struct{}
	PB15 struct{}
)

// Port C (only PC13-PC15 are bonded on 48-pin parts)
type (
	PC13 struct{}
	PC14 struct{}
	PC15 struct{}
)

func (PA0) id() pinID  { return pinID{hal.PortA, 0} }
func (PA1) id() pinID  { return pinID{hal.PortA, 1} }
func (PA2) id() pinID  { return pinID{hal.PortA, 2} }
func (PA3) id() pinID  { return pinID{hal.PortA, 3} }
func (PA4) id() pinID  { return pinID{hal.PortA, 4} }
func (PA5) id() pinID  { return pinID{hal.PortA, 5} }
func (PA6) id() pinID  { return pinID{hal.PortA, 6} }
func (PA7) id() pinID  { return pinID{hal.PortA, 7} }
func (PA8) id() pinID  { return pinID{hal.PortA, 8} }
func (PA9) id() pinID  { return pinID{hal.PortA, 9} }
func (PA10) id() pinID { return pinID{hal.PortA, 10} }
func (PA11) id() pinID { return pinID{hal.PortA, 11} }
func (PA12) id() pinID { return pinID{hal.PortA, 12} }
func (PA13) id() pinID { return pinID{hal.PortA, 13} }
func (PA14) id() pinID { return pinID{hal.PortA, 14} }
func (PA15) id() pinID { return pinID{hal.PortA, 15} }

func (PB0) id() pinID  { return pinID{hal.PortB, 0} }
func (PB1) id() pinID  { return pinID{hal.PortB, 1} }
func (PB2) id() pinID  { return pinID{hal.PortB, 2} }
func (PB3) id() pinID  { return pinID{hal.PortB, 3} }
func (PB4) id() pinID  { return pinID{hal.PortB, 4} }
func (PB5) id() pinID  { return pinID{hal.PortB, 5} }
func (PB6) id() pinID  { return pinID{hal.PortB, 6} }
func (PB7) id() pinID  { return pinID{hal.PortB, 7} }
func (PB8) id() pinID  { return pinID{hal.PortB, 8} }
func (PB9) id() pinID  { return pinID{hal.PortB, 9} }
func (PB10) id() pinID { return pinID{hal.PortB, 10} }
func (PB11) id() pinID { return pinID{hal.PortB, 11} }
func (PB12) id() pinID { return pinID{hal.PortB, 12} }
func (PB13) id() pinID { return pinID{hal.PortB, 13} }
func (PB14) id() pinID { return pinID{hal.PortB, 14} }
func (PB15) id() pinID { return pinID{hal.PortB, 15} }

func (PC13) id() pinID { return pinID{hal.PortC, 13} }
func (PC14) id() pinID { return pinID{hal.PortC, 14} }
func (PC15) id() pinID { return pinID{hal.PortC, 15} }
