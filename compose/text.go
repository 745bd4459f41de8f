package compose

import (
	"math"

	"github.com/fogleman/gg"
	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

var bn = language.NewLanguage("bn")

// Shaper turns text into positioned glyphs with OpenType shaping, so
// conjuncts and pre-base vowel signs come out the way a browser draws them.
// It is not safe for concurrent use.
type Shaper struct {
	face *font.Face
	seg  shaping.Segmenter
	hb   shaping.HarfbuzzShaper
}

// Line is one line of shaped text at a fixed size.
type Line struct {
	runs    []shaping.Output
	Width   float64
	Ascent  float64
	Descent float64 // positive, below the baseline
}

// Glyphs returns the number of glyphs in l.
func (l Line) Glyphs() int {
	n := 0
	for _, run := range l.runs {
		n += len(run.Glyphs)
	}
	return n
}

type singleFace struct{ face *font.Face }

func (s singleFace) ResolveFace(rune) *font.Face { return s.face }

// Shape lays out text on one line at px pixels.
func (s *Shaper) Shape(text string, px float64) Line {
	runes := []rune(text)
	if len(runes) == 0 {
		return Line{}
	}
	in := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      s.face,
		Size:      fixed.Int26_6(math.Round(px * 64)),
		Language:  bn,
	}
	var l Line
	for _, run := range s.seg.Split(in, singleFace{s.face}) {
		out := s.hb.Shape(run)
		l.runs = append(l.runs, out)
		l.Width += fixedFloat(out.Advance)
		l.Ascent = max(l.Ascent, fixedFloat(out.LineBounds.Ascent))
		l.Descent = max(l.Descent, -fixedFloat(out.LineBounds.Descent))
	}
	return l
}

// Measure returns the shaped width of text at px pixels.
func (s *Shaper) Measure(text string, px float64) float64 {
	return s.Shape(text, px).Width
}

// baseline places l in a line box of the given height whose top is at y,
// centering the glyph extent the way CSS line-height does. A zero height
// uses the font's own extent.
func (l Line) baseline(y, height float64) float64 {
	if height == 0 {
		return y + l.Ascent
	}
	return y + (height-(l.Ascent+l.Descent))/2 + l.Ascent
}

// drawLine fills the glyphs of l in dc's current color in a line box of
// height lh with its top at y. ax is the horizontal anchor: 0 puts x at the
// left edge, 0.5 at the center.
func drawLine(dc *gg.Context, l Line, x, y, lh, ax float64) {
	pen := x - ax*l.Width
	baseline := l.baseline(y, lh)
	for _, run := range l.runs {
		scale := fixedFloat(run.Size) / float64(run.Face.Upem())
		for _, g := range run.Glyphs {
			if outline, ok := run.Face.GlyphData(g.GlyphID).(font.GlyphOutline); ok {
				traceOutline(dc, outline, pen+fixedFloat(g.XOffset), baseline-fixedFloat(g.YOffset), scale)
				dc.Fill()
			}
			pen += fixedFloat(g.Advance)
		}
	}
}

// traceOutline adds a glyph outline, given in font units with y up, to dc's
// path with its origin at (x, y).
func traceOutline(dc *gg.Context, o font.GlyphOutline, x, y, scale float64) {
	px := func(p font.SegmentPoint) float64 { return x + float64(p.X)*scale }
	py := func(p font.SegmentPoint) float64 { return y - float64(p.Y)*scale }
	for _, s := range o.Segments {
		a := s.Args
		switch s.Op {
		case ot.SegmentOpMoveTo:
			dc.MoveTo(px(a[0]), py(a[0]))
		case ot.SegmentOpLineTo:
			dc.LineTo(px(a[0]), py(a[0]))
		case ot.SegmentOpQuadTo:
			dc.QuadraticTo(px(a[0]), py(a[0]), px(a[1]), py(a[1]))
		case ot.SegmentOpCubeTo:
			dc.CubicTo(px(a[0]), py(a[0]), px(a[1]), py(a[1]), px(a[2]), py(a[2]))
		}
	}
	dc.ClosePath()
}

func fixedFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
