package compose

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/eringen/fotocard/layout"
)

// LoadTemplate decodes the overlay graphic at path and scales it to the
// canvas if needed. An empty path returns DefaultTemplate.
func LoadTemplate(path string) (image.Image, error) {
	if path == "" {
		return DefaultTemplate(), nil
	}
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open template: %w", err)
	}
	b := img.Bounds()
	if b.Dx() != layout.CanvasSize || b.Dy() != layout.CanvasSize {
		img = imaging.Resize(img, layout.CanvasSize, layout.CanvasSize, imaging.Lanczos)
	}
	return img, nil
}

// Template palette.
var (
	paper  = color.NRGBA{R: 0xff, G: 0xfd, B: 0xf3, A: 0xff}
	yellow = color.NRGBA{R: 0xff, G: 0xd6, B: 0x00, A: 0xff}
	red    = color.NRGBA{R: 0xc6, G: 0x28, B: 0x28, A: 0xff}
)

// DefaultTemplate draws a plain overlay: paper background, a yellow footer
// band, and a transparent window cut out over the photo box.
func DefaultTemplate() *image.NRGBA {
	dc := gg.NewContext(layout.CanvasSize, layout.CanvasSize)
	dc.SetColor(paper)
	dc.Clear()
	dc.SetColor(red)
	dc.DrawRectangle(0, layout.DateY-16, layout.CanvasSize, 4)
	dc.Fill()
	dc.SetColor(yellow)
	dc.DrawRectangle(0, layout.DateY-12, layout.CanvasSize, layout.CanvasSize-layout.DateY+12)
	dc.Fill()

	window := gg.NewContext(layout.CanvasSize, layout.CanvasSize)
	tracePath(window, layout.PhotoClip())
	window.SetColor(color.White)
	window.Fill()
	mask := window.AsMask()

	out := image.NewNRGBA(image.Rect(0, 0, layout.CanvasSize, layout.CanvasSize))
	draw.Draw(out, out.Bounds(), dc.Image(), image.Point{}, draw.Src)
	for y := 0; y < layout.CanvasSize; y++ {
		for x := 0; x < layout.CanvasSize; x++ {
			a := mask.AlphaAt(x, y).A
			if a == 0 {
				continue
			}
			i := out.PixOffset(x, y)
			out.Pix[i+3] = uint8(uint32(out.Pix[i+3]) * uint32(255-a) / 255)
		}
	}
	return out
}

// tracePath replays p on dc as the current path.
func tracePath(dc *gg.Context, p layout.Path) {
	dc.NewSubPath()
	for _, s := range p {
		switch s.Kind {
		case layout.MoveTo:
			dc.MoveTo(s.X, s.Y)
		case layout.LineTo:
			dc.LineTo(s.X, s.Y)
		case layout.QuadTo:
			dc.QuadraticTo(s.CX, s.CY, s.X, s.Y)
		case layout.Close:
			dc.ClosePath()
		}
	}
}
