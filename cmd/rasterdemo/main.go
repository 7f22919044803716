// Command rasterdemo exercises the raster core from outside package raster:
// it builds a small tiled background, attaches a raster callback that
// shifts the layer's horizontal scroll per scanline (a diagonal shear
// effect), renders one frame, and reports a fingerprint of the result.
// Grounded on the teacher's cmd/goboy/main.go as "the thin host around the
// core" and on richardwooding-nostalgiza's cmd/nostalgiza/main.go for the
// kong subcommand CLI shape.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/retrocore/rastercore/internal/raster"
	"github.com/retrocore/rastercore/internal/rastertest"
	"github.com/retrocore/rastercore/pkg/log"
)

// CLI mirrors nostalgiza's kong.Kong{CLI struct{...}} pattern: one
// subcommand struct per verb.
type CLI struct {
	Shear ShearCmd `cmd:"" help:"Render a frame with a per-scanline horizontal shear raster effect."`
}

// ShearCmd renders width x height frame of diagonally-shearing tiles and
// prints a fingerprint of the result.
type ShearCmd struct {
	Width  int `help:"Frame width in pixels." default:"256"`
	Height int `help:"Frame height in pixels." default:"192"`
	Shear  int `help:"Horizontal pixels of scroll added per scanline." default:"1"`
}

func (c *ShearCmd) Run() error {
	e, err := raster.New(c.Width, c.Height, raster.WithLogger(log.New()))
	if err != nil {
		return err
	}

	pal := raster.NewPalette()
	pal.SetColor(1, 0xFFCC6633)
	pixels := make([]byte, 8*8)
	for i := range pixels {
		pixels[i] = 1
	}
	ts, err := raster.NewTileset(8, 8, pixels, []uint16{0, 0}, pal)
	if err != nil {
		return err
	}

	cols, rows := c.Width/8+2, c.Height/8+2
	tm := raster.NewTilemap(cols, rows, ts)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			tm.At(col, row).Index = 1
		}
	}

	layer := e.AddLayer()
	layer.SetupTilemap(tm)
	layer.UpdateLayer(c.Width)

	e.RasterCallback = func(eng *raster.Engine, line int) {
		layer.HStart = line * c.Shear
	}

	for e.Line < c.Height {
		e.DrawScanline()
	}

	fmt.Printf("frame %dx%d shear=%d hash=%016x\n", c.Width, c.Height, c.Shear, rastertest.HashFrame(e.Framebuffer))
	return nil
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli, kong.Name("rasterdemo"))
	if err := ctx.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
