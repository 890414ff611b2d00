// Package rom parses iNES ROM images into raw PRG/CHR banks and header
// metadata, ahead of mapper construction.
package rom

import (
	"encoding/binary"
	"io"

	"github.com/8bitlab/nesgo/internal/neserr"
)

const component = "rom"

// Mirror is the nametable mirroring arrangement named by the header.
type Mirror uint8

const (
	MirrorHorizontal Mirror = iota
	MirrorVertical
	MirrorFourScreen
)

// Header is the parsed form of the 16-byte iNES header.
type Header struct {
	PRGBanks   uint8 // number of 16KiB PRG ROM banks
	CHRBanks   uint8 // number of 8KiB CHR ROM banks (0 means CHR RAM)
	MapperID   uint8
	Mirror     Mirror
	HasBattery bool
	HasTrainer bool
}

// Image is a fully loaded ROM: header plus raw bank data.
type Image struct {
	Header Header
	PRG    []uint8
	CHR    []uint8 // empty when the cartridge uses CHR RAM
}

var magic = [4]byte{'N', 'E', 'S', 0x1A}

type rawHeader struct {
	Magic      [4]uint8
	PRGBanks   uint8
	CHRBanks   uint8
	Flags6     uint8
	Flags7     uint8
	PRGRAMSize uint8
	Flags9     uint8
	Flags10    uint8
	Padding    [5]uint8
}

// Load reads and validates an iNES image from r.
func Load(r io.Reader) (*Image, error) {
	var raw rawHeader
	if err := binary.Read(r, binary.LittleEndian, &raw); err != nil {
		return nil, neserr.Wrap(neserr.InvalidImage, component, err, "reading header")
	}
	if raw.Magic != magic {
		return nil, neserr.New(neserr.InvalidImage, component, "bad magic %v", raw.Magic)
	}
	if raw.PRGBanks == 0 {
		return nil, neserr.New(neserr.InvalidImage, component, "PRG ROM size is zero")
	}

	h := Header{
		PRGBanks:   raw.PRGBanks,
		CHRBanks:   raw.CHRBanks,
		MapperID:   (raw.Flags7 & 0xF0) | (raw.Flags6 >> 4),
		HasBattery: raw.Flags6&0x02 != 0,
		HasTrainer: raw.Flags6&0x04 != 0,
	}
	switch {
	case raw.Flags6&0x08 != 0:
		h.Mirror = MirrorFourScreen
	case raw.Flags6&0x01 != 0:
		h.Mirror = MirrorVertical
	default:
		h.Mirror = MirrorHorizontal
	}

	if h.HasTrainer {
		trainer := make([]uint8, 512)
		if _, err := io.ReadFull(r, trainer); err != nil {
			return nil, neserr.Wrap(neserr.InvalidImage, component, err, "reading trainer")
		}
	}

	prg := make([]uint8, int(h.PRGBanks)*16*1024)
	if _, err := io.ReadFull(r, prg); err != nil {
		return nil, neserr.Wrap(neserr.InvalidImage, component, err, "reading PRG ROM")
	}

	var chr []uint8
	if h.CHRBanks > 0 {
		chr = make([]uint8, int(h.CHRBanks)*8*1024)
		if _, err := io.ReadFull(r, chr); err != nil {
			return nil, neserr.Wrap(neserr.InvalidImage, component, err, "reading CHR ROM")
		}
	}

	return &Image{Header: h, PRG: prg, CHR: chr}, nil
}
