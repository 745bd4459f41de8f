// Package layout holds the card geometry and the text layout rules shared by
// the HTML preview and the raster export. Both renderers read every position
// and size from here so the two never drift apart.
package layout

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Canvas and photo box geometry, in logical pixels.
const (
	CanvasSize = 1000

	BoxX      = 16
	BoxY      = 32
	BoxWidth  = 960
	BoxHeight = 670
	BoxRadius = 24
)

// Text area below the photo box.
const (
	TextAreaX       = BoxX
	TextAreaY       = BoxY + BoxHeight + 5
	TextAreaWidth   = 900
	TextAreaPadding = 20
	WrapWidth       = TextAreaWidth - 2*TextAreaPadding
)

// Caption sizing.
const (
	CaptionThreshold = 120
	CaptionLargePx   = 52
	CaptionSmallPx   = 38
	CaptionLeading   = 6
)

// Date line.
const (
	DateX      = 32
	DateY      = CanvasSize - 48
	DateFontPx = 28
)

// Credit badge, anchored inside the bottom-left of the photo box.
const (
	CreditX        = BoxX + 34
	CreditY        = BoxY + BoxHeight - 40
	CreditPadX     = 16
	CreditPadY     = 4
	CreditHeight   = 32
	CreditRadius   = 8
	CreditFontPx   = 24
	CreditOpacity  = 0.7
	creditTextDown = CreditPadY
)

// Rect is an axis-aligned rectangle with float coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Box is the photo box rectangle.
var Box = Rect{X: BoxX, Y: BoxY, W: BoxWidth, H: BoxHeight}

// Contain places an imgW×imgH image inside the photo box with "contain"
// semantics: scaled uniformly until one dimension fills the box, centered on
// the other axis.
func Contain(imgW, imgH int) (Rect, error) {
	if imgW <= 0 || imgH <= 0 {
		return Rect{}, fmt.Errorf("layout: invalid image size %dx%d", imgW, imgH)
	}
	boxAR := Box.W / Box.H
	imgAR := float64(imgW) / float64(imgH)

	r := Box
	if imgAR > boxAR {
		r.H = Box.W / imgAR
		r.Y = Box.Y + (Box.H-r.H)/2
	} else {
		r.W = min(Box.H*imgAR, Box.W)
		r.X = Box.X + (Box.W-r.W)/2
	}
	return r, nil
}

// FontSize is the caption size chosen for one caption, in both units.
type FontSize struct {
	Px  float64 // export pixels
	Rem string  // preview CSS size
}

// Advance is the vertical distance between caption lines.
func (f FontSize) Advance() float64 {
	return f.Px + CaptionLeading
}

var (
	captionLarge = FontSize{Px: CaptionLargePx, Rem: "2.8rem"}
	captionSmall = FontSize{Px: CaptionSmallPx, Rem: "2.1rem"}
)

// CaptionSize applies the length threshold: captions of up to 120 characters
// get the large size.
func CaptionSize(caption string) FontSize {
	if utf8.RuneCountInString(caption) <= CaptionThreshold {
		return captionLarge
	}
	return captionSmall
}

// Caption is a fully laid out caption.
type Caption struct {
	Size  FontSize
	Lines []string
}

// LineY returns the top y of line i.
func (c Caption) LineY(i int) float64 {
	return TextAreaY + float64(i)*c.Size.Advance()
}

// CenterX is the horizontal center every caption line is centered on.
func (c Caption) CenterX() float64 {
	return TextAreaX + TextAreaWidth/2.0
}

// MeasureFunc reports the rendered width of s at a given pixel size.
type MeasureFunc func(s string, px float64) float64

var lineBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ", "\t", " ")

// CaptionText folds line breaks and tabs from a multi-line caption field
// into single spaces. Caption lines come from wrapping alone.
func CaptionText(caption string) string {
	return lineBreaks.Replace(caption)
}

// CaptionLayout picks the caption size and wraps the caption with it.
func CaptionLayout(caption string, measure MeasureFunc) Caption {
	caption = CaptionText(caption)
	size := CaptionSize(caption)
	lines := Wrap(caption, WrapWidth, func(s string) float64 {
		return measure(s, size.Px)
	})
	return Caption{Size: size, Lines: lines}
}

// CreditBadge returns the badge rectangle for a credit text of the given
// measured width.
func CreditBadge(textWidth float64) Rect {
	return Rect{
		X: CreditX,
		Y: CreditY,
		W: textWidth + 2*CreditPadX,
		H: CreditHeight,
	}
}

// CreditTextOrigin is the top-left point of the credit text's line box,
// which is CreditFontPx tall.
func CreditTextOrigin() (x, y float64) {
	return CreditX + CreditPadX, CreditY + creditTextDown
}

func fmtNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Px formats v as a CSS pixel length.
func Px(v float64) string {
	return fmtNum(v) + "px"
}
