package compose

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"unicode"

	"github.com/go-text/typesetting/font"

	"github.com/eringen/fotocard/layout"
)

var (
	// ErrNoFont is returned when no font file is configured.
	ErrNoFont = errors.New("compose: no font configured")
	// ErrNoBangla is returned for a font that cannot draw Bangla text.
	ErrNoBangla = errors.New("compose: font has no Bangla glyphs")
)

// banglaSample covers the letters, signs and digits captions and dates use.
const banglaSample = "অআইঈউঊএঐওঔকখগঘঙচছজঝঞটঠডঢণতথদধনপফবভমযরলশষসহড়ঢ়য়ৎংঃঁািীুূৃেৈোৌ্০১২৩৪৫৬৭৮৯"

// Fonts holds the parsed card typeface. It is safe for concurrent use;
// layout and drawing go through a Shaper, one per goroutine.
type Fonts struct {
	font *font.Font
}

// LoadFonts reads an OpenType or TrueType font from path.
func LoadFonts(path string) (*Fonts, error) {
	if path == "" {
		return nil, ErrNoFont
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	return ParseFonts(b)
}

// ParseFonts parses font data.
func ParseFonts(data []byte) (*Fonts, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &Fonts{font: face.Font}, nil
}

// Missing returns the runes of s the font has no glyph for. Spaces and
// control characters are skipped.
func (f *Fonts) Missing(s string) []rune {
	var out []rune
	for _, r := range s {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			continue
		}
		if _, ok := f.font.NominalGlyph(r); !ok {
			out = append(out, r)
		}
	}
	return out
}

// CheckBangla returns ErrNoBangla if the font lacks any Bangla letter, sign
// or digit.
func (f *Fonts) CheckBangla() error {
	if missing := f.Missing(banglaSample); len(missing) > 0 {
		return fmt.Errorf("%w: missing %q", ErrNoBangla, string(missing))
	}
	return nil
}

// Shaper returns a new Shaper for this font.
func (f *Fonts) Shaper() *Shaper {
	return &Shaper{face: font.NewFace(f.font)}
}

// Measure returns a width function for text layout, backed by its own
// Shaper. The returned function must not be shared between goroutines.
func (f *Fonts) Measure() layout.MeasureFunc {
	return f.Shaper().Measure
}
