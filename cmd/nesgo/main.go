// Command nesgo runs an iNES ROM through the emulator core and displays
// its background plane in an ebiten window.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/8bitlab/nesgo/internal/config"
	"github.com/8bitlab/nesgo/internal/console"
	"github.com/8bitlab/nesgo/internal/ppu"
	"github.com/8bitlab/nesgo/internal/version"
)

var (
	romPath    = flag.String("rom", "", "path to an iNES ROM image")
	configPath = flag.String("config", "", "path to a JSON config file")
	showVer    = flag.Bool("version", false, "print version information and exit")
)

func main() {
	flag.Parse()
	defer glog.Flush()

	if *showVer {
		fmt.Println(version.GetDetailedVersion())
		return
	}
	if *romPath == "" {
		fmt.Fprintln(os.Stderr, "usage: nesgo -rom <file.nes>")
		os.Exit(1)
	}

	cfg := config.Load(*configPath)

	f, err := os.Open(*romPath)
	if err != nil {
		glog.Exitf("opening rom: %v", err)
	}
	defer f.Close()

	nes, err := console.Load(f)
	if err != nil {
		glog.Exitf("loading rom: %v", err)
	}

	game := &displayGame{console: nes}
	ebiten.SetWindowSize(cfg.Window.Width*cfg.Window.Scale, cfg.Window.Height*cfg.Window.Scale)
	ebiten.SetWindowTitle(cfg.Window.Title)
	if err := ebiten.RunGame(game); err != nil {
		glog.Exitf("running game: %v", err)
	}
}

// displayGame adapts a Console to ebiten's Game interface, running one
// emulated frame per display frame and blitting the PPU's background
// plane. It is the only part of this module that imports ebiten; the
// core stays free of any display dependency.
type displayGame struct {
	console *console.Console
	img     *ebiten.Image
}

func (g *displayGame) Update() error {
	g.console.RunFrame()
	return nil
}

func (g *displayGame) Draw(screen *ebiten.Image) {
	if g.img == nil {
		g.img = ebiten.NewImage(ppu.VisibleColumns, ppu.VisibleScanlines)
	}
	frame := g.console.PPU.Frame()
	pix := make([]byte, ppu.VisibleColumns*ppu.VisibleScanlines*4)
	for i, idx := range frame {
		rgb := ppu.NTSCPalette[idx]
		pix[i*4+0] = byte(rgb >> 16)
		pix[i*4+1] = byte(rgb >> 8)
		pix[i*4+2] = byte(rgb)
		pix[i*4+3] = 0xFF
	}
	g.img.WritePixels(pix)
	screen.DrawImage(g.img, nil)
}

func (g *displayGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ppu.VisibleColumns, ppu.VisibleScanlines
}
