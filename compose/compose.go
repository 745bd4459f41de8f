// Package compose draws a finished photocard: the photo clipped into the
// rounded box, the template overlay, and the caption, date and credit text.
package compose

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/eringen/fotocard/bangla"
	"github.com/eringen/fotocard/layout"
)

// ErrNoPhoto is returned when a card is rendered without a photo.
var ErrNoPhoto = errors.New("compose: no photo")

var ink = color.NRGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff}

// Card is the input of one render. It is a value snapshot; the renderer never
// holds on to it.
type Card struct {
	Photo   image.Image
	Caption string
	Date    bangla.Date
	Credit  string
}

// Renderer composes cards against a fixed template and typeface. It is safe
// for concurrent use.
type Renderer struct {
	template image.Image
	fonts    *Fonts
}

// NewRenderer returns a Renderer drawing over template with fonts.
func NewRenderer(template image.Image, fonts *Fonts) *Renderer {
	return &Renderer{template: template, fonts: fonts}
}

// Template returns the overlay graphic.
func (r *Renderer) Template() image.Image {
	return r.template
}

// Measure returns a width function matching the export shaping, for laying
// out the preview with the same line breaks.
func (r *Renderer) Measure() layout.MeasureFunc {
	return r.fonts.Measure()
}

// Render draws c onto a new canvas.
func (r *Renderer) Render(c Card) (*image.RGBA, error) {
	if c.Photo == nil {
		return nil, ErrNoPhoto
	}
	b := c.Photo.Bounds()
	place, err := layout.Contain(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}

	im := image.NewRGBA(image.Rect(0, 0, layout.CanvasSize, layout.CanvasSize))
	dc := gg.NewContextForRGBA(im)

	// Photo, clipped to the rounded box.
	w := max(1, int(math.Round(place.W)))
	h := max(1, int(math.Round(place.H)))
	photo := imaging.Resize(c.Photo, w, h, imaging.Lanczos)
	dc.Push()
	tracePath(dc, layout.PhotoClip())
	dc.Clip()
	dc.DrawImage(photo, int(math.Round(place.X)), int(math.Round(place.Y)))
	dc.Pop()
	dc.ResetClip()

	dc.DrawImage(r.template, 0, 0)

	// Caption.
	sh := r.fonts.Shaper()
	caption := layout.CaptionLayout(c.Caption, sh.Measure)
	dc.SetColor(ink)
	for i, text := range caption.Lines {
		drawLine(dc, sh.Shape(text, caption.Size.Px), caption.CenterX(), caption.LineY(i), caption.Size.Advance(), 0.5)
	}

	// Date.
	if !c.Date.IsZero() {
		text, err := bangla.FormatDate(c.Date)
		if err != nil {
			return nil, fmt.Errorf("format date: %w", err)
		}
		dc.SetColor(ink)
		drawLine(dc, sh.Shape(text, layout.DateFontPx), layout.DateX, layout.DateY, 0, 0)
	}

	// Credit badge.
	if c.Credit != "" {
		credit := sh.Shape(c.Credit, layout.CreditFontPx)
		badge := layout.CreditBadge(credit.Width)
		dc.SetRGBA(0, 0, 0, layout.CreditOpacity)
		dc.DrawRoundedRectangle(badge.X, badge.Y, badge.W, badge.H, layout.CreditRadius)
		dc.Fill()
		dc.SetRGB(1, 1, 1)
		x, y := layout.CreditTextOrigin()
		drawLine(dc, credit, x, y, layout.CreditFontPx, 0)
	}

	return im, nil
}

// EncodePNG renders c and writes it as PNG.
func (r *Renderer) EncodePNG(w io.Writer, c Card) error {
	im, err := r.Render(c)
	if err != nil {
		return err
	}
	return imaging.Encode(w, im, imaging.PNG)
}
