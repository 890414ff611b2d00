// Package mapper implements cartridge mappers as a closed set of variants
// selected by iNES mapper ID. Only mapper 0 (NROM) is supported; any other
// ID fails registration with an unsupported-mapper error rather than
// silently falling back to NROM.
package mapper

import (
	"github.com/8bitlab/nesgo/internal/neserr"
	"github.com/8bitlab/nesgo/internal/rom"
)

const component = "mapper"

// Kind tags which mapper variant a Mapper holds. The set is closed: adding
// a new mapper means adding a Kind and a case in each switch below, not an
// open-ended interface implementation.
type Kind int

const (
	KindNROM Kind = iota
)

// Mapper is a tagged-variant cartridge mapper. Its behavior is selected by
// Kind rather than by dynamic dispatch, matching the fixed, small set of
// boards this emulator targets.
type Mapper struct {
	kind Kind

	prg      []uint8
	chr      []uint8
	chrIsRAM bool
	prgRAM   [0x2000]uint8
	prgBanks uint8
}

// New constructs the mapper named by img's header, or an unsupported-mapper
// error if the ID has no registered variant.
func New(img *rom.Image) (*Mapper, error) {
	switch img.Header.MapperID {
	case 0:
		m := &Mapper{
			kind:     KindNROM,
			prg:      img.PRG,
			prgBanks: img.Header.PRGBanks,
		}
		if len(img.CHR) == 0 {
			m.chr = make([]uint8, 8*1024)
			m.chrIsRAM = true
		} else {
			m.chr = img.CHR
		}
		return m, nil
	default:
		return nil, neserr.New(neserr.UnsupportedMapper, component, "mapper %d is not registered", img.Header.MapperID)
	}
}

// ReadPRG reads an 8-bit value from CPU address space $6000-$FFFF.
func (m *Mapper) ReadPRG(addr uint16) (uint8, error) {
	switch m.kind {
	case KindNROM:
		switch {
		case addr >= 0x8000:
			off := addr - 0x8000
			if m.prgBanks == 1 {
				off &= 0x3FFF
			}
			return m.prg[off], nil
		case addr >= 0x6000:
			return m.prgRAM[addr-0x6000], nil
		default:
			return 0, neserr.New(neserr.BadAddress, component, "PRG read $%04X", addr)
		}
	default:
		return 0, neserr.New(neserr.UnsupportedMapper, component, "unknown kind %d", m.kind)
	}
}

// WritePRG writes an 8-bit value to CPU address space $6000-$FFFF. NROM has
// no registers, so writes to $8000-$FFFF fail with unsupported-write; only
// the $6000-$7FFF PRG RAM window accepts writes.
func (m *Mapper) WritePRG(addr uint16, v uint8) error {
	switch m.kind {
	case KindNROM:
		switch {
		case addr >= 0x8000:
			return neserr.New(neserr.UnsupportedWrite, component, "NROM has no PRG registers, write $%04X", addr)
		case addr >= 0x6000:
			m.prgRAM[addr-0x6000] = v
			return nil
		default:
			return neserr.New(neserr.BadAddress, component, "PRG write $%04X", addr)
		}
	default:
		return neserr.New(neserr.UnsupportedMapper, component, "unknown kind %d", m.kind)
	}
}

// ReadCHR reads an 8-bit value from PPU pattern-table address space
// $0000-$1FFF.
func (m *Mapper) ReadCHR(addr uint16) (uint8, error) {
	if addr >= 0x2000 {
		return 0, neserr.New(neserr.BadAddress, component, "CHR read $%04X", addr)
	}
	return m.chr[addr], nil
}

// WriteCHR writes an 8-bit value to PPU pattern-table address space. CHR
// ROM rejects the write with unsupported-write; CHR RAM accepts it.
func (m *Mapper) WriteCHR(addr uint16, v uint8) error {
	if addr >= 0x2000 {
		return neserr.New(neserr.BadAddress, component, "CHR write $%04X", addr)
	}
	if !m.chrIsRAM {
		return neserr.New(neserr.UnsupportedWrite, component, "CHR ROM write $%04X", addr)
	}
	m.chr[addr] = v
	return nil
}
