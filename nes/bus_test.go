package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBusRamMirroring(t *testing.T) {
	bus := NewBus()

	bus.CpuWrite(0x0001, 0x42)
	assert.Equal(t, uint8(0x42), bus.CpuRead(0x0801)) // mirrored every 0x0800
	assert.Equal(t, uint8(0x42), bus.CpuRead(0x1801))
}

func TestBusIOWritesDoNotTouchRAM(t *testing.T) {
	bus := NewBus()

	bus.CpuWrite(0x2000, 0x99)
	assert.Equal(t, uint8(0xFF), bus.CpuRead(0x2000)) // open bus stand-in, never RAM
	assert.Equal(t, uint8(0), bus.Ram[0x2000&ramMirror])
}

func TestBusPPURegisterMirroring(t *testing.T) {
	bus := NewBus()
	rec := &recordingPort{}
	bus.PPU = rec

	bus.CpuWrite(0x2008, 0x07) // mirrors register 0 every 8 bytes
	assert.Equal(t, uint16(0x0000), rec.lastWriteAddr)
	assert.Equal(t, uint8(0x07), rec.lastWriteVal)
}

func TestBusUnmappedCartridgeWindowIsOpenBus(t *testing.T) {
	bus := NewBus()
	// No cartridge inserted.
	assert.Equal(t, uint8(0xFF), bus.CpuRead(0x8000))
	bus.CpuWrite(0x8000, 0x11) // must not panic
}

func TestBusResetDelegatesToCPU(t *testing.T) {
	// Reset and interrupt vectors live in cartridge space (0xFFFC-0xFFFF),
	// so exercising them needs a real cartridge behind the bus.
	cart, err := NewCartridge(buildINES(1, 0, 0, false, 0))
	assert.NoError(t, err)
	cart.prgMem[0x3FFC] = 0x34
	cart.prgMem[0x3FFD] = 0x12

	bus := NewBus()
	bus.InsertCartridge(cart)
	bus.Reset()

	assert.Equal(t, uint16(0x1234), bus.Cpu.PC)
}

type recordingPort struct {
	lastWriteAddr uint16
	lastWriteVal  uint8
}

func (r *recordingPort) Read(addr uint16) uint8 { return 0 }
func (r *recordingPort) Write(addr uint16, v uint8) {
	r.lastWriteAddr = addr
	r.lastWriteVal = v
}
