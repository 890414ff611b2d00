// Package cartridge ties a loaded ROM image to its mapper and exposes the
// narrow read/write surface the CPU and PPU buses decode into.
package cartridge

import (
	"io"
	"os"

	"github.com/8bitlab/nesgo/internal/mapper"
	"github.com/8bitlab/nesgo/internal/rom"
)

// Mirror is the nametable mirroring arrangement the PPU bus should apply.
type Mirror = rom.Mirror

const (
	MirrorHorizontal = rom.MirrorHorizontal
	MirrorVertical   = rom.MirrorVertical
	MirrorFourScreen = rom.MirrorFourScreen
)

// Cartridge wires a ROM image's mapper to the rest of the system.
type Cartridge struct {
	mapper *mapper.Mapper
	mirror Mirror
}

// Load reads an iNES file from disk and constructs its cartridge.
func Load(path string) (*Cartridge, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadFrom(f)
}

// LoadFrom builds a cartridge from an iNES image read from r.
func LoadFrom(r io.Reader) (*Cartridge, error) {
	img, err := rom.Load(r)
	if err != nil {
		return nil, err
	}
	m, err := mapper.New(img)
	if err != nil {
		return nil, err
	}
	return &Cartridge{mapper: m, mirror: img.Header.Mirror}, nil
}

// Mirror reports the nametable mirroring mode named by the ROM header.
func (c *Cartridge) Mirror() Mirror { return c.mirror }

func (c *Cartridge) ReadPRG(addr uint16) (uint8, error)        { return c.mapper.ReadPRG(addr) }
func (c *Cartridge) WritePRG(addr uint16, v uint8) error       { return c.mapper.WritePRG(addr, v) }
func (c *Cartridge) ReadCHR(addr uint16) (uint8, error)        { return c.mapper.ReadCHR(addr) }
func (c *Cartridge) WriteCHR(addr uint16, v uint8) error       { return c.mapper.WriteCHR(addr, v) }
