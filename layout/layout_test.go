package layout

import (
	"math"
	"strings"
	"testing"
	"unicode/utf8"
)

// runeWidth measures every rune as 10px wide.
func runeWidth(s string) float64 {
	return float64(utf8.RuneCountInString(s)) * 10
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width float64
		want  []string
	}{
		{"empty", "", 100, []string{""}},
		{"single word", "hello", 100, []string{"hello"}},
		{"fits", "ab cd ef", 80, []string{"ab cd ef"}},
		{"breaks", "ab cd ef", 50, []string{"ab cd", "ef"}},
		{"exact width", "abcd efgh", 90, []string{"abcd efgh"}},
		{"long word alone", "a verylongword b", 50, []string{"a", "verylongword", "b"}},
		{"long first word", "verylongword b", 50, []string{"verylongword", "b"}},
		{"double space", "ab  cd", 100, []string{"ab  cd"}},
		{"bangla", "আজ ঢাকায় বৃষ্টি", 60, []string{"আজ", "ঢাকায়", "বৃষ্টি"}},
	}
	for _, tt := range tests {
		got := Wrap(tt.input, tt.width, runeWidth)
		if strings.Join(got, "|") != strings.Join(tt.want, "|") || len(got) != len(tt.want) {
			t.Errorf("%s: Wrap(%q, %v) = %q, want %q", tt.name, tt.input, tt.width, got, tt.want)
		}
	}
}

func TestWrapProperties(t *testing.T) {
	inputs := []string{
		"",
		" ",
		"one",
		"the quick brown fox jumps over the lazy dog",
		"  leading and trailing  ",
		"supercalifragilisticexpialidocious is long",
		"ছবি তুলেছেন আমাদের নিজস্ব প্রতিবেদক আহম্মদপুর থেকে",
	}
	for _, in := range inputs {
		for _, w := range []float64{1, 30, 70, 200, 1000} {
			lines := Wrap(in, w, runeWidth)
			if len(lines) == 0 {
				t.Fatalf("Wrap(%q, %v) returned no lines", in, w)
			}
			if joined := strings.Join(lines, " "); joined != in {
				t.Errorf("Wrap(%q, %v) rejoined = %q", in, w, joined)
			}
			for _, l := range lines {
				if runeWidth(l) > w && strings.Contains(l, " ") {
					t.Errorf("Wrap(%q, %v): multi-word line %q is %v wide", in, w, l, runeWidth(l))
				}
			}
		}
	}
}

func TestCaptionSizeThreshold(t *testing.T) {
	at := strings.Repeat("ক", CaptionThreshold)
	over := at + "ক"

	if got := CaptionSize(at); got.Px != CaptionLargePx || got.Rem != "2.8rem" {
		t.Errorf("120 chars: got %+v, want large", got)
	}
	if got := CaptionSize(over); got.Px != CaptionSmallPx || got.Rem != "2.1rem" {
		t.Errorf("121 chars: got %+v, want small", got)
	}
	if got := CaptionSize(""); got.Px != CaptionLargePx {
		t.Errorf("empty caption: got %+v, want large", got)
	}
	if got := CaptionSize(at).Advance(); got != CaptionLargePx+6 {
		t.Errorf("Advance = %v, want %v", got, CaptionLargePx+6)
	}
}

func TestCaptionLayoutUsesChosenSize(t *testing.T) {
	var sizes []float64
	measure := func(s string, px float64) float64 {
		sizes = append(sizes, px)
		return float64(utf8.RuneCountInString(s)) * px / 2
	}
	c := CaptionLayout("এক দুই তিন চার পাঁচ ছয় সাত আট নয় দশ", measure)
	if c.Size.Px != CaptionLargePx {
		t.Fatalf("size = %v, want %v", c.Size.Px, CaptionLargePx)
	}
	for _, px := range sizes {
		if px != CaptionLargePx {
			t.Fatalf("measured at %v, want %v", px, CaptionLargePx)
		}
	}
	if c.LineY(0) != TextAreaY || c.LineY(2) != TextAreaY+2*58 {
		t.Errorf("LineY = %v, %v", c.LineY(0), c.LineY(2))
	}
	if c.CenterX() != 466 {
		t.Errorf("CenterX = %v, want 466", c.CenterX())
	}
}

func TestContain(t *testing.T) {
	boxAR := Box.W / Box.H
	tests := []struct {
		w, h int
	}{
		{2000, 1000},
		{1000, 2000},
		{960, 670},
		{1, 1},
		{4000, 10},
		{10, 4000},
		{1920, 1080},
	}
	for _, tt := range tests {
		r, err := Contain(tt.w, tt.h)
		if err != nil {
			t.Fatalf("Contain(%d, %d): %v", tt.w, tt.h, err)
		}
		ar := float64(tt.w) / float64(tt.h)
		if math.Abs(r.W/r.H-ar) > 1e-9*ar {
			t.Errorf("Contain(%d, %d): aspect %v, want %v", tt.w, tt.h, r.W/r.H, ar)
		}
		if ar > boxAR {
			if r.W != Box.W || r.H >= Box.H || r.X != Box.X {
				t.Errorf("Contain(%d, %d) = %+v, want full width", tt.w, tt.h, r)
			}
			if math.Abs((r.Y-Box.Y)-(Box.Y+Box.H-(r.Y+r.H))) > 1e-9 {
				t.Errorf("Contain(%d, %d) = %+v, not vertically centered", tt.w, tt.h, r)
			}
		} else {
			if r.H != Box.H || r.W > Box.W || r.Y != Box.Y {
				t.Errorf("Contain(%d, %d) = %+v, want full height", tt.w, tt.h, r)
			}
			if math.Abs((r.X-Box.X)-(Box.X+Box.W-(r.X+r.W))) > 1e-9 {
				t.Errorf("Contain(%d, %d) = %+v, not horizontally centered", tt.w, tt.h, r)
			}
		}
	}
}

func TestContainLetterbox(t *testing.T) {
	r, err := Contain(2000, 1000)
	if err != nil {
		t.Fatal(err)
	}
	want := Rect{X: 16, Y: 32 + (670-480)/2.0, W: 960, H: 480}
	if r != want {
		t.Errorf("Contain(2000, 1000) = %+v, want %+v", r, want)
	}
}

func TestContainRejectsEmpty(t *testing.T) {
	if _, err := Contain(0, 10); err == nil {
		t.Error("expected error for zero width")
	}
	if _, err := Contain(10, -1); err == nil {
		t.Error("expected error for negative height")
	}
}

func TestCreditBadge(t *testing.T) {
	r := CreditBadge(100)
	want := Rect{X: 50, Y: 662, W: 132, H: 32}
	if r != want {
		t.Errorf("CreditBadge(100) = %+v, want %+v", r, want)
	}
	x, y := CreditTextOrigin()
	if x != 66 || y != 666 {
		t.Errorf("CreditTextOrigin = (%v, %v), want (66, 666)", x, y)
	}
}

func TestRoundedRectSVG(t *testing.T) {
	got := RoundedRect(0, 0, 100, 50, 10).SVG()
	want := "M10,0 L90,0 Q100,0 100,10 L100,40 Q100,50 90,50 L10,50 Q0,50 0,40 L0,10 Q0,0 10,0 Z"
	if got != want {
		t.Errorf("SVG() = %q, want %q", got, want)
	}
	if css := PhotoClipLocal().CSS(); !strings.HasPrefix(css, "path('M24,0 L936,0") {
		t.Errorf("CSS() = %q", css)
	}
}

func TestCaptionLayoutFoldsLineBreaks(t *testing.T) {
	measure := func(s string, px float64) float64 { return float64(utf8.RuneCountInString(s)) }
	for _, in := range []string{"hello\r\nworld", "hello\nworld", "hello\rworld", "hello\tworld"} {
		c := CaptionLayout(in, measure)
		if len(c.Lines) != 1 || c.Lines[0] != "hello world" {
			t.Errorf("CaptionLayout(%q).Lines = %q, want [\"hello world\"]", in, c.Lines)
		}
	}
}
