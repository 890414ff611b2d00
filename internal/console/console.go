// Package console wires a cartridge, the CPU/PPU buses, and the CPU and
// PPU cores into a single clocked system, and drives them at the NTSC 3:1
// PPU:CPU tick ratio. It owns no goroutines, channels, or locks: the NES
// core is a single-threaded cooperative state machine driven by the host
// calling Clock in a loop.
package console

import (
	"io"

	"github.com/8bitlab/nesgo/internal/cartridge"
	"github.com/8bitlab/nesgo/internal/cpu"
	"github.com/8bitlab/nesgo/internal/cpubus"
	"github.com/8bitlab/nesgo/internal/ppu"
	"github.com/8bitlab/nesgo/internal/ppubus"
)

// Console is a fully wired NES: one cartridge driving one CPU and one PPU.
type Console struct {
	Cart *cartridge.Cartridge
	CPU  *cpu.CPU
	PPU  *ppu.PPU

	cpuBus *cpubus.Bus
	ppuBus *ppubus.Bus
}

// Load builds a Console from an iNES image read from r.
func Load(r io.Reader) (*Console, error) {
	cart, err := cartridge.LoadFrom(r)
	if err != nil {
		return nil, err
	}
	return New(cart), nil
}

// New wires a Console around an already-loaded cartridge.
func New(cart *cartridge.Cartridge) *Console {
	ppuBus := ppubus.New(cart, cart.Mirror())
	ppuCore := ppu.New(ppuBus)
	cpuBus := cpubus.New(ppuCore, cart)
	cpuCore := cpu.New(cpuBus)

	c := &Console{Cart: cart, CPU: cpuCore, PPU: ppuCore, cpuBus: cpuBus, ppuBus: ppuBus}
	c.Reset()
	return c
}

// Reset resets both cores to their power-up state.
func (c *Console) Reset() {
	c.PPU.Reset()
	c.CPU.Reset()
}

// Clock advances the system by one CPU clock: three PPU dots, then one CPU
// tick, checking for a PPU-raised NMI after every dot so the CPU sees it
// on the correct cycle.
func (c *Console) Clock() {
	for i := 0; i < 3; i++ {
		c.PPU.Clock()
		if c.PPU.NMIAsserted() {
			c.CPU.SetNMI()
		}
	}
	c.CPU.Clock()
}

// RunFrame clocks the system until the PPU has produced one full frame.
func (c *Console) RunFrame() {
	for !c.PPU.FrameReady() {
		c.Clock()
	}
}
