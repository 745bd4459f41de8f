package views

import (
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/eringen/fotocard/layout"
)

// Every value below is derived from layout constants, never from user input.

type decl struct{ prop, value string }

func style(decls ...decl) templ.SafeCSS {
	var b strings.Builder
	for i, d := range decls {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(d.prop)
		b.WriteString(": ")
		b.WriteString(d.value)
		b.WriteByte(';')
	}
	return templ.SafeCSS(b.String())
}

func px(v float64) string { return layout.Px(v) }

// CanvasStyle sizes the preview container.
func CanvasStyle() templ.SafeCSS {
	return style(
		decl{"width", px(layout.CanvasSize)},
		decl{"height", px(layout.CanvasSize)},
	)
}

// PhotoStyle places the photo in the box, fitted with contain and clipped to
// the rounded outline.
func PhotoStyle() templ.SafeCSS {
	return style(
		decl{"left", px(layout.BoxX)},
		decl{"top", px(layout.BoxY)},
		decl{"width", px(layout.BoxWidth)},
		decl{"height", px(layout.BoxHeight)},
		decl{"object-fit", "contain"},
		decl{"clip-path", layout.PhotoClipLocal().CSS()},
	)
}

// TemplateStyle stretches the overlay over the whole canvas.
func TemplateStyle() templ.SafeCSS {
	return style(
		decl{"left", "0"},
		decl{"top", "0"},
		decl{"width", px(layout.CanvasSize)},
		decl{"height", px(layout.CanvasSize)},
	)
}

// CaptionStyle positions the caption block in the text area.
func CaptionStyle(c layout.Caption) templ.SafeCSS {
	return style(
		decl{"left", px(layout.TextAreaX)},
		decl{"top", px(layout.TextAreaY)},
		decl{"width", px(layout.TextAreaWidth)},
		decl{"padding", "0 " + px(layout.TextAreaPadding)},
		decl{"font-size", c.Size.Rem},
		decl{"line-height", "calc(" + c.Size.Rem + " + " + px(layout.CaptionLeading) + ")"},
	)
}

// DateStyle positions the date line.
func DateStyle() templ.SafeCSS {
	return style(
		decl{"left", px(layout.DateX)},
		decl{"top", px(layout.DateY)},
		decl{"font-size", px(layout.DateFontPx)},
	)
}

// CreditStyle positions the credit badge.
func CreditStyle() templ.SafeCSS {
	return style(
		decl{"left", px(layout.CreditX)},
		decl{"top", px(layout.CreditY)},
		decl{"height", px(layout.CreditHeight)},
		decl{"padding", px(layout.CreditPadY) + " " + px(layout.CreditPadX)},
		decl{"border-radius", px(layout.CreditRadius)},
		decl{"font-size", px(layout.CreditFontPx)},
		decl{"line-height", px(layout.CreditFontPx)},
		decl{"max-width", px(layout.BoxWidth - 2*layout.CreditPadX)},
		decl{"background", "rgba(0, 0, 0, " + strconv.FormatFloat(layout.CreditOpacity, 'f', -1, 64) + ")"},
	)
}
