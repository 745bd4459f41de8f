package layout

import "strings"

// SegmentKind identifies one drawing command of a Path.
type SegmentKind int

const (
	MoveTo SegmentKind = iota
	LineTo
	QuadTo
	Close
)

// Segment is one path command. For QuadTo, (CX, CY) is the control point and
// (X, Y) the end point.
type Segment struct {
	Kind   SegmentKind
	X, Y   float64
	CX, CY float64
}

// Path is an outline made of straight lines and quadratic curves.
type Path []Segment

// RoundedRect builds a rounded rectangle whose corners are quadratic curves
// with the control point on the corner itself.
func RoundedRect(x, y, w, h, r float64) Path {
	return Path{
		{Kind: MoveTo, X: x + r, Y: y},
		{Kind: LineTo, X: x + w - r, Y: y},
		{Kind: QuadTo, CX: x + w, CY: y, X: x + w, Y: y + r},
		{Kind: LineTo, X: x + w, Y: y + h - r},
		{Kind: QuadTo, CX: x + w, CY: y + h, X: x + w - r, Y: y + h},
		{Kind: LineTo, X: x + r, Y: y + h},
		{Kind: QuadTo, CX: x, CY: y + h, X: x, Y: y + h - r},
		{Kind: LineTo, X: x, Y: y + r},
		{Kind: QuadTo, CX: x, CY: y, X: x + r, Y: y},
		{Kind: Close},
	}
}

// PhotoClip is the clip outline of the photo box in canvas coordinates.
func PhotoClip() Path {
	return RoundedRect(BoxX, BoxY, BoxWidth, BoxHeight, BoxRadius)
}

// PhotoClipLocal is PhotoClip relative to the box's own top-left corner, as
// needed by a CSS clip-path on an element placed at the box origin.
func PhotoClipLocal() Path {
	return RoundedRect(0, 0, BoxWidth, BoxHeight, BoxRadius)
}

// SVG renders the path as SVG path data.
func (p Path) SVG() string {
	parts := make([]string, 0, len(p))
	for _, s := range p {
		switch s.Kind {
		case MoveTo:
			parts = append(parts, "M"+fmtNum(s.X)+","+fmtNum(s.Y))
		case LineTo:
			parts = append(parts, "L"+fmtNum(s.X)+","+fmtNum(s.Y))
		case QuadTo:
			parts = append(parts, "Q"+fmtNum(s.CX)+","+fmtNum(s.CY)+" "+fmtNum(s.X)+","+fmtNum(s.Y))
		case Close:
			parts = append(parts, "Z")
		}
	}
	return strings.Join(parts, " ")
}

// CSS renders the path as a CSS clip-path value.
func (p Path) CSS() string {
	return "path('" + p.SVG() + "')"
}
