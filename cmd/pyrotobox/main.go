// Command pyrotobox loads an iNES ROM, resets a CPU core against it, and
// reports what it found. It is a thin round-trip harness over the nes
// package, not a playable front end: the PPU/APU stay on the core's
// default open-bus stand-ins, so nothing ever gets drawn or sounded.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/pyrotobox/pyrotobox/nes"
)

const (
	majorVersion = 0
	minorVersion = 1
	patchVersion = 0
)

const (
	exitInvalidArguments = -1
	exitReadROMFailed    = -2
	exitBuildFailed      = -3
)

func main() {
	app := &cli.App{
		Name:      "pyrotobox",
		Usage:     "A NES Emulator",
		UsageText: "pyrotobox <ROM_PATH>",
		Version:   fmt.Sprintf("%d.%d.%d", majorVersion, minorVersion, patchVersion),
		Action:    run,
	}

	if err := app.Run(os.Args); err != nil {
		if exitErr, ok := err.(cli.ExitCoder); ok {
			os.Exit(exitErr.ExitCode())
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitBuildFailed)
	}
}

func run(c *cli.Context) error {
	if c.Args().Len() < 1 {
		cli.ShowAppHelp(c)
		return cli.Exit("", exitInvalidArguments)
	}
	romPath := c.Args().First()

	data, err := os.ReadFile(romPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "reading rom: %v\n", err)
		return cli.Exit("", exitReadROMFailed)
	}

	cart, err := nes.NewCartridge(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "building cartridge: %v\n", err)
		return cli.Exit("", exitBuildFailed)
	}

	bus := nes.NewBus()
	bus.InsertCartridge(cart)
	bus.Reset()

	fmt.Printf("\n> pyrotobox v%d.%d.%d, A NES Emulator\n\n", majorVersion, minorVersion, patchVersion)
	fmt.Printf("ROM Path: %s\n", romPath)
	fmt.Printf("PRG ROM Size: %d, CHR ROM Size: %d, Mirroring: %s\n",
		cart.Header.PrgRomChunks, cart.Header.ChrRomChunks, cart.Header.Mirroring())

	return nil
}
