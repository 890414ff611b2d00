package rom

import (
	"bytes"
	"testing"

	"github.com/8bitlab/nesgo/internal/neserr"
)

func header(prgBanks, chrBanks, flags6, flags7 uint8) []byte {
	h := make([]byte, 16)
	copy(h[0:4], magic[:])
	h[4] = prgBanks
	h[5] = chrBanks
	h[6] = flags6
	h[7] = flags7
	return h
}

func TestLoad_32KPRG(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(header(2, 1, 0, 0))
	buf.Write(make([]byte, 2*16*1024))
	buf.Write(make([]byte, 8*1024))

	img, err := Load(&buf)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(img.PRG) != 32*1024 {
		t.Fatalf("PRG len = %d, want 32KiB", len(img.PRG))
	}
	if img.Header.MapperID != 0 {
		t.Fatalf("MapperID = %d, want 0", img.Header.MapperID)
	}
}

func TestLoad_16KPRGMirror(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(header(1, 1, 0, 0))
	buf.Write(make([]byte, 16*1024))
	buf.Write(make([]byte, 8*1024))

	img, err := Load(&buf)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(img.PRG) != 16*1024 {
		t.Fatalf("PRG len = %d, want 16KiB", len(img.PRG))
	}
	if img.Header.PRGBanks != 1 {
		t.Fatalf("PRGBanks = %d, want 1", img.Header.PRGBanks)
	}
}

func TestLoad_BadMagic(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(bytes.Repeat([]byte{0}, 16))

	_, err := Load(&buf)
	if !neserr.Is(err, neserr.InvalidImage) {
		t.Fatalf("err = %v, want invalid-image", err)
	}
}

func TestLoad_ZeroPRG(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(header(0, 1, 0, 0))

	_, err := Load(&buf)
	if !neserr.Is(err, neserr.InvalidImage) {
		t.Fatalf("err = %v, want invalid-image", err)
	}
}

func TestLoad_MirrorVertical(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(header(1, 1, 0x01, 0))
	buf.Write(make([]byte, 16*1024))
	buf.Write(make([]byte, 8*1024))

	img, err := Load(&buf)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if img.Header.Mirror != MirrorVertical {
		t.Fatalf("Mirror = %v, want vertical", img.Header.Mirror)
	}
}

func TestLoad_CHRRAM(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(header(1, 0, 0, 0))
	buf.Write(make([]byte, 16*1024))

	img, err := Load(&buf)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(img.CHR) != 0 {
		t.Fatalf("CHR len = %d, want 0 (CHR RAM)", len(img.CHR))
	}
}
