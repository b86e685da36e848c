package hal

// STM32F1 peripheral memory map (RM0008 §3.3)
const (
	PeriphBase = 0x40000000

	USBBase  = PeriphBase + 0x5C00
	CAN1Base = PeriphBase + 0x6400
	CAN2Base = PeriphBase + 0x6800

	AFIOBase  = PeriphBase + 0x10000
	GPIOABase = PeriphBase + 0x10800
	GPIOStep  = 0x400 // distance between GPIO port blocks

	RCCBase = PeriphBase + 0x21000
)

// RCC register offsets
const (
	rccAPB2RSTR = 0x0C
	rccAPB1RSTR = 0x10
	rccAHBENR   = 0x14
	rccAPB2ENR  = 0x18
	rccAPB1ENR  = 0x1C
)

// AFIO register offsets (0x18 is reserved)
const (
	afioEVCR    = 0x00
	afioMAPR    = 0x04
	afioEXTICR1 = 0x08
	afioEXTICR2 = 0x0C
	afioEXTICR3 = 0x10
	afioEXTICR4 = 0x14
	afioMAPR2   = 0x1C
)

// GPIO register offsets
const (
	gpioCRL  = 0x00
	gpioCRH  = 0x04
	gpioIDR  = 0x08
	gpioODR  = 0x0C
	gpioBSRR = 0x10
	gpioBRR  = 0x14
)

// GPIOResetCR is the CRL/CRH reset value: every line a floating input.
const GPIOResetCR = 0x44444444
