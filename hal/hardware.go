//go:build stm32f1

package hal

import (
	"runtime/volatile"
	"unsafe"
)

func reg(addr uintptr) Register {
	return (*volatile.Register32)(unsafe.Pointer(addr))
}

// Hardware returns the memory-mapped register block of the running chip.
func Hardware() *Registers {
	r := &Registers{
		RCC: RCCRegisters{
			APB2RSTR: reg(RCCBase + rccAPB2RSTR),
			APB1RSTR: reg(RCCBase + rccAPB1RSTR),
			AHBENR:   reg(RCCBase + rccAHBENR),
			APB2ENR:  reg(RCCBase + rccAPB2ENR),
			APB1ENR:  reg(RCCBase + rccAPB1ENR),
		},
		AFIO: AFIORegisters{
			EVCR:    reg(AFIOBase + afioEVCR),
			MAPR:    reg(AFIOBase + afioMAPR),
			EXTICR1: reg(AFIOBase + afioEXTICR1),
			EXTICR2: reg(AFIOBase + afioEXTICR2),
			EXTICR3: reg(AFIOBase + afioEXTICR3),
			EXTICR4: reg(AFIOBase + afioEXTICR4),
			MAPR2:   reg(AFIOBase + afioMAPR2),
		},
	}
	for i := range r.GPIO {
		base := uintptr(GPIOABase + i*GPIOStep)
		r.GPIO[i] = GPIORegisters{
			CRL:  reg(base + gpioCRL),
			CRH:  reg(base + gpioCRH),
			IDR:  reg(base + gpioIDR),
			ODR:  reg(base + gpioODR),
			BSRR: reg(base + gpioBSRR),
			BRR:  reg(base + gpioBRR),
		}
	}
	return r
}
