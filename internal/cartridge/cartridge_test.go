package cartridge

import (
	"bytes"
	"testing"
)

func iNESImage(prgBanks, chrBanks, flags6 byte) []byte {
	var buf bytes.Buffer
	buf.WriteString("NES\x1a")
	buf.Write([]byte{prgBanks, chrBanks, flags6, 0, 0, 0, 0, 0, 0, 0, 0, 0})
	buf.Write(make([]byte, int(prgBanks)*16*1024))
	buf.Write(make([]byte, int(chrBanks)*8*1024))
	return buf.Bytes()
}

func TestLoadFrom_NROM(t *testing.T) {
	c, err := LoadFrom(bytes.NewReader(iNESImage(2, 1, 0)))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if c.Mirror() != MirrorHorizontal {
		t.Fatalf("Mirror() = %v, want horizontal", c.Mirror())
	}
	if _, err := c.ReadPRG(0x8000); err != nil {
		t.Fatalf("ReadPRG: %v", err)
	}
}

func TestLoadFrom_UnsupportedMapper(t *testing.T) {
	img := iNESImage(1, 1, 0x10) // mapper 1 in high nibble of flags6
	_, err := LoadFrom(bytes.NewReader(img))
	if err == nil {
		t.Fatal("expected unsupported-mapper error")
	}
}
