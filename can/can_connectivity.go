//go:build connectivity

package can

import "f1can/periph"

// NumFilterBanks is the bxCAN filter bank count shared by CAN1 and CAN2
const NumFilterBanks = 28

const dualCAN = true

type shared struct{}

// New claims the controller token, enables its clock and returns the façade.
func New[PER Peripheral](can PER) *Can[PER] {
	return newCan(can, shared{})
}

type master struct {
	*Bus[*periph.CAN1]
}

func (master) ArbitrationMaster() {}

// AsMaster marks the CAN1 bus as the arbitration master for a driver that
// needs one. Only a CAN1 bus is accepted.
func AsMaster(b *Bus[*periph.CAN1]) MasterInstance {
	return master{b}
}
