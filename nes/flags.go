package nes

// Flag identifies a single bit of the 6502 processor status register (P).
type Flag uint8

const (
	FlagC Flag = 1 << iota // Carry
	FlagZ                  // Zero
	FlagI                  // Interrupt Disable
	FlagD                  // Decimal Mode (accepted, never acted on; see Non-goals)
	FlagB                  // Break Command (only meaningful on the pushed copy)
	FlagU                  // Unused, always reads back as 1
	FlagV                  // Overflow
	FlagN                  // Negative
)

func (cpu *CPU) getFlag(f Flag) bool {
	return cpu.P&uint8(f) != 0
}

func (cpu *CPU) setFlag(f Flag, set bool) {
	if set {
		cpu.P |= uint8(f)
	} else {
		cpu.P &^= uint8(f)
	}
}

// setZN sets the Zero and Negative flags from the given result byte, the
// pattern nearly every load/transfer/arithmetic instruction follows.
func (cpu *CPU) setZN(v uint8) {
	cpu.setFlag(FlagZ, v == 0)
	cpu.setFlag(FlagN, v&0x80 != 0)
}
