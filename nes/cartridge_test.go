package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// buildINES assembles a minimal iNES file: a 16-byte header followed by
// prgBanks*16KB of PRG data and chrBanks*8KB of CHR data, every byte filled
// with fill so tests can tell PRG and CHR data apart at a glance.
func buildINES(prgBanks, chrBanks uint8, mapperID uint8, verticalMirroring bool, fill byte) []byte {
	header := make([]byte, 16)
	copy(header[0:4], []byte{'N', 'E', 'S', 0x1A})
	header[4] = prgBanks
	header[5] = chrBanks
	header[6] = (mapperID & 0x0F) << 4
	if verticalMirroring {
		header[6] |= 0x01
	}
	header[7] = mapperID & 0xF0

	data := append([]byte{}, header...)
	for i := 0; i < int(prgBanks)*16*1024; i++ {
		data = append(data, fill)
	}
	for i := 0; i < int(chrBanks)*8*1024; i++ {
		data = append(data, fill+1)
	}
	return data
}

func TestNewCartridgeParsesHeaderAndMemory(t *testing.T) {
	cart, err := NewCartridge(buildINES(2, 1, 0, false, 0xAB))
	assert.NoError(t, err)
	assert.Equal(t, uint8(2), cart.Header.PrgRomChunks)
	assert.Equal(t, uint8(1), cart.Header.ChrRomChunks)
	assert.Equal(t, "Horizontal", cart.Header.Mirroring())

	v, ok := cart.ppuRead(0x0000)
	assert.True(t, ok)
	assert.Equal(t, uint8(0xAC), v)
}

func TestNewCartridgeRejectsBadMagic(t *testing.T) {
	data := buildINES(1, 1, 0, false, 0)
	data[0] = 'X'
	_, err := NewCartridge(data)
	assert.ErrorIs(t, err, ErrBadHeader)
}

func TestNewCartridgeRejectsUnsupportedMapper(t *testing.T) {
	_, err := NewCartridge(buildINES(1, 1, 4, false, 0))
	assert.ErrorIs(t, err, ErrUnsupportedMapper)
}

func TestNewCartridgeSkipsTrainer(t *testing.T) {
	data := buildINES(1, 0, 0, false, 0x55)
	header := data[:16]
	header[6] |= 1 << 2 // trainer present

	withTrainer := append([]byte{}, header...)
	withTrainer = append(withTrainer, make([]byte, 512)...) // trainer bytes
	withTrainer = append(withTrainer, data[16:]...)         // PRG data

	cart, err := NewCartridge(withTrainer)
	assert.NoError(t, err)
	v, ok := cart.cpuRead(0xC000) // single 16KB bank, mirrored: base of PRG
	assert.True(t, ok)
	assert.Equal(t, uint8(0x55), v)
}

func TestMapper000MirrorsSingleBankAcrossWindow(t *testing.T) {
	prg := buildINES(1, 0, 0, false, 0)
	prg[16] = 0x77 // first byte of the single 16KB bank

	cart, err := NewCartridge(prg)
	assert.NoError(t, err)

	lo, ok := cart.cpuRead(0x8000)
	assert.True(t, ok)
	hi, ok := cart.cpuRead(0xC000)
	assert.True(t, ok)
	assert.Equal(t, uint8(0x77), lo)
	assert.Equal(t, uint8(0x77), hi) // 16KB bank mirrored into both halves
}

func TestMapper000MapsTwoBanksStraightThrough(t *testing.T) {
	prg := buildINES(2, 0, 0, false, 0)
	// Differentiate the two banks so a straight-through map is verifiable.
	for i := 16; i < 16+16*1024; i++ {
		prg[i] = 0x01
	}
	for i := 16 + 16*1024; i < len(prg); i++ {
		prg[i] = 0x02
	}

	cart, err := NewCartridge(prg)
	assert.NoError(t, err)

	lo, _ := cart.cpuRead(0x8000)
	hi, _ := cart.cpuRead(0xC000)
	assert.Equal(t, uint8(0x01), lo)
	assert.Equal(t, uint8(0x02), hi)
}

func TestCHRRamIsWritableWhenNoCHRROMPresent(t *testing.T) {
	cart, err := NewCartridge(buildINES(1, 0, 0, false, 0))
	assert.NoError(t, err)
	assert.Equal(t, 8*1024, len(cart.chrMem))

	ok := cart.ppuWrite(0x0010, 0x9A)
	assert.True(t, ok)
	v, _ := cart.ppuRead(0x0010)
	assert.Equal(t, uint8(0x9A), v)
}

func TestBusRoundTripWithRealCartridge(t *testing.T) {
	cart, err := NewCartridge(buildINES(1, 0, 0, false, 0xEA)) // fill PRG with NOPs
	assert.NoError(t, err)

	bus := NewBus()
	bus.InsertCartridge(cart)

	// Point the reset vector (mirrored at the top of the single 16KB bank)
	// at the start of PRG space and confirm the CPU can fetch through it.
	cart.prgMem[0x3FFC] = 0x00
	cart.prgMem[0x3FFD] = 0xC0
	bus.Reset()

	assert.Equal(t, uint16(0xC000), bus.Cpu.PC)
	cycles, err := bus.Cpu.Step()
	assert.NoError(t, err)
	assert.Equal(t, uint64(2), cycles) // NOP
}
