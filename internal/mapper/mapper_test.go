package mapper

import (
	"testing"

	"github.com/8bitlab/nesgo/internal/neserr"
	"github.com/8bitlab/nesgo/internal/rom"
)

func TestNew_UnsupportedMapper(t *testing.T) {
	img := &rom.Image{Header: rom.Header{MapperID: 4, PRGBanks: 1}, PRG: make([]uint8, 16*1024)}
	_, err := New(img)
	if !neserr.Is(err, neserr.UnsupportedMapper) {
		t.Fatalf("err = %v, want unsupported-mapper", err)
	}
}

func TestNROM_PRGMirror16K(t *testing.T) {
	prg := make([]uint8, 16*1024)
	prg[0] = 0xAA
	prg[0x3FFF] = 0xBB
	img := &rom.Image{Header: rom.Header{MapperID: 0, PRGBanks: 1}, PRG: prg}
	m, err := New(img)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	lo, _ := m.ReadPRG(0x8000)
	hi, _ := m.ReadPRG(0xC000)
	if lo != 0xAA || hi != 0xAA {
		t.Fatalf("mirrored read = %02X,%02X want AA,AA", lo, hi)
	}
	last, _ := m.ReadPRG(0xFFFF)
	if last != 0xBB {
		t.Fatalf("ReadPRG(0xFFFF) = %02X, want BB", last)
	}
}

func TestNROM_PRGDirect32K(t *testing.T) {
	prg := make([]uint8, 32*1024)
	prg[0x4000] = 0x42
	img := &rom.Image{Header: rom.Header{MapperID: 0, PRGBanks: 2}, PRG: prg}
	m, _ := New(img)
	v, _ := m.ReadPRG(0xC000)
	if v != 0x42 {
		t.Fatalf("ReadPRG(0xC000) = %02X, want 42", v)
	}
}

func TestNROM_WritePRGROMFails(t *testing.T) {
	img := &rom.Image{Header: rom.Header{MapperID: 0, PRGBanks: 1}, PRG: make([]uint8, 16*1024)}
	m, _ := New(img)
	err := m.WritePRG(0x8000, 0x01)
	if !neserr.Is(err, neserr.UnsupportedWrite) {
		t.Fatalf("err = %v, want unsupported-write", err)
	}
}

func TestNROM_PRGRAMReadWrite(t *testing.T) {
	img := &rom.Image{Header: rom.Header{MapperID: 0, PRGBanks: 1}, PRG: make([]uint8, 16*1024)}
	m, _ := New(img)
	if err := m.WritePRG(0x6000, 0x7E); err != nil {
		t.Fatalf("WritePRG: %v", err)
	}
	v, _ := m.ReadPRG(0x6000)
	if v != 0x7E {
		t.Fatalf("ReadPRG(0x6000) = %02X, want 7E", v)
	}
}

func TestNROM_CHRRAMWrite(t *testing.T) {
	img := &rom.Image{Header: rom.Header{MapperID: 0, PRGBanks: 1}, PRG: make([]uint8, 16*1024)}
	m, _ := New(img)
	if err := m.WriteCHR(0x0010, 0x99); err != nil {
		t.Fatalf("WriteCHR: %v", err)
	}
	v, _ := m.ReadCHR(0x0010)
	if v != 0x99 {
		t.Fatalf("ReadCHR(0x0010) = %02X, want 99", v)
	}
}

func TestNROM_CHRROMWriteFails(t *testing.T) {
	img := &rom.Image{Header: rom.Header{MapperID: 0, PRGBanks: 1}, PRG: make([]uint8, 16*1024), CHR: make([]uint8, 8*1024)}
	m, _ := New(img)
	err := m.WriteCHR(0x0010, 0x99)
	if !neserr.Is(err, neserr.UnsupportedWrite) {
		t.Fatalf("err = %v, want unsupported-write", err)
	}
}
