package fotocard

import (
	"errors"
	"fmt"
	"image"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/eringen/fotocard/bangla"
	"github.com/eringen/fotocard/compose"
	"github.com/eringen/fotocard/layout"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestDraftDefaults(t *testing.T) {
	clock := &fakeClock{t: time.Date(2025, 7, 14, 20, 0, 0, 0, time.UTC)}
	s := NewDraftStore(time.Hour, clock.now)
	d := s.Create()

	snap := d.Snapshot()
	if snap.Caption != DefaultCaption {
		t.Errorf("caption = %q", snap.Caption)
	}
	// 20:00 UTC is already the next day in Dhaka.
	if want := (bangla.Date{Year: 2025, Month: time.July, Day: 15}); snap.Date != want {
		t.Errorf("date = %v, want %v", snap.Date, want)
	}
	if snap.Photo != nil || snap.Credit != "" || snap.Error != "" {
		t.Errorf("unexpected snapshot %+v", snap)
	}
	if got, ok := s.Get(d.ID); !ok || got != d {
		t.Error("Get did not return the created draft")
	}
}

func TestDraftExpiry(t *testing.T) {
	clock := &fakeClock{t: time.Now()}
	s := NewDraftStore(time.Hour, clock.now)
	d := s.Create()

	clock.advance(50 * time.Minute)
	if _, ok := s.Get(d.ID); !ok {
		t.Fatal("draft expired early")
	}
	// Get refreshed the idle timer.
	clock.advance(50 * time.Minute)
	if _, ok := s.Get(d.ID); !ok {
		t.Fatal("draft expired despite recent use")
	}
	clock.advance(time.Hour)
	if _, ok := s.Get(d.ID); ok {
		t.Fatal("expected draft to expire")
	}
	if s.Len() != 0 {
		t.Errorf("Len = %d after expiry", s.Len())
	}
}

func TestDraftSweep(t *testing.T) {
	clock := &fakeClock{t: time.Now()}
	s := NewDraftStore(time.Hour, clock.now)
	old := s.Create()
	clock.advance(40 * time.Minute)
	fresh := s.Create()
	clock.advance(30 * time.Minute)

	if n := s.Sweep(); n != 1 {
		t.Errorf("Sweep removed %d, want 1", n)
	}
	if _, ok := s.Get(old.ID); ok {
		t.Error("old draft survived sweep")
	}
	if _, ok := s.Get(fresh.ID); !ok {
		t.Error("fresh draft swept")
	}
}

func TestDraftSweeperStops(t *testing.T) {
	s := NewDraftStore(time.Hour, nil)
	stop := s.StartSweeper(time.Millisecond)
	stop()
	stop()
}

func TestDraftSetFields(t *testing.T) {
	d := NewDraftStore(time.Hour, nil).Create()
	// Captions are stored as typed: precomposed and decomposed য় both survive.
	caption := "\u09df \u09af\u09bc"
	d.SetFields(caption, bangla.Date{}, "  Staff  ", time.Now())
	snap := d.Snapshot()
	if snap.Caption != caption {
		t.Errorf("caption = %+q, want %+q", snap.Caption, caption)
	}
	if snap.Credit != "Staff" {
		t.Errorf("credit = %q, want trimmed", snap.Credit)
	}
	if !snap.Date.IsZero() {
		t.Errorf("date = %v, want zero", snap.Date)
	}

	d.SetFields("x", bangla.Date{}, " \t ", time.Now())
	if got := d.Snapshot().Credit; got != "" {
		t.Errorf("whitespace credit = %q, want empty", got)
	}
}

func TestDraftPhotoAndError(t *testing.T) {
	d := NewDraftStore(time.Hour, nil).Create()
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	d.SetPhoto(img, "image/png", time.Now())

	d.SetError("bad")
	snap := d.Snapshot()
	if snap.Photo == nil || snap.Error != "bad" {
		t.Fatalf("snapshot = %+v", snap)
	}
	card := snap.Card()
	if card.Photo != img || card.Caption != DefaultCaption {
		t.Errorf("card = %+v", card)
	}

	d.SetPhoto(img, "image/png", time.Now())
	if d.Snapshot().Error != "" {
		t.Error("SetPhoto kept the error")
	}
	d.ClearPhoto(time.Now())
	if snap := d.Snapshot(); snap.Photo != nil || snap.PhotoType != "" {
		t.Errorf("after clear = %+v", snap)
	}
}

func TestDraftExportGuard(t *testing.T) {
	d := NewDraftStore(time.Hour, nil).Create()
	if !d.BeginExport() {
		t.Fatal("first BeginExport failed")
	}
	if d.BeginExport() {
		t.Fatal("second BeginExport succeeded while exporting")
	}
	d.EndExport()
	if !d.BeginExport() {
		t.Fatal("BeginExport failed after EndExport")
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{ErrUnsupportedFormat, msgUnsupported},
		{fmt.Errorf("%w: %q", ErrUnsupportedFormat, "text/plain"), msgUnsupported},
		{ErrTooLarge, msgTooLarge},
		{fmt.Errorf("%w: eof", ErrDecode), msgDecode},
		{fmt.Errorf("%w: 16000x16000", compose.ErrTooManyPixels), msgTooManyPx},
		{ErrRateLimited, msgRateLimited},
		{ErrExportBusy, msgExportBusy},
		{compose.ErrNoPhoto, msgNoPhoto},
		{errors.New("boom"), msgGeneric},
	}
	for _, tt := range tests {
		if got := UserMessage(tt.err); got != tt.want {
			t.Errorf("UserMessage(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestPhotoType(t *testing.T) {
	pngHead := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	gifHead := []byte("GIF89a")
	tests := []struct {
		name     string
		declared string
		head     []byte
		want     string
	}{
		{"declared", "image/jpeg", pngHead, "image/jpeg"},
		{"params", "image/PNG; charset=binary", nil, "image/png"},
		{"empty sniffs", "", pngHead, "image/png"},
		{"octet-stream sniffs", "application/octet-stream", gifHead, "image/gif"},
		{"text stays text", "text/plain", pngHead, "text/plain"},
		{"garbage sniffs", ";;", []byte("hello"), "text/plain"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := photoType(tt.declared, tt.head); got != tt.want {
				t.Errorf("photoType(%q) = %q, want %q", tt.declared, got, tt.want)
			}
		})
	}
}

func TestUploadStatus(t *testing.T) {
	if got := uploadStatus(ErrUnsupportedFormat); got != http.StatusUnsupportedMediaType {
		t.Errorf("unsupported = %d", got)
	}
	if got := uploadStatus(ErrTooLarge); got != http.StatusRequestEntityTooLarge {
		t.Errorf("too large = %d", got)
	}
	if got := uploadStatus(compose.ErrTooManyPixels); got != http.StatusRequestEntityTooLarge {
		t.Errorf("too many pixels = %d", got)
	}
	if got := uploadStatus(ErrDecode); got != http.StatusUnprocessableEntity {
		t.Errorf("decode = %d", got)
	}
}

func TestStrategyFor(t *testing.T) {
	a := New(Config{Name: "Test"})
	tests := []struct {
		ua   string
		want string
	}{
		{"Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X)", "open"},
		{"Mozilla/5.0 (iPad; CPU OS 16_4 like Mac OS X)", "open"},
		{"Mozilla/5.0 (iPod touch; CPU iPhone OS 12_0 like Mac OS X)", "open"},
		{"Mozilla/5.0 (Macintosh; Intel Mac OS X 14_0)", "download"},
		{"Mozilla/5.0 (Linux; Android 14)", "download"},
		{"", "download"},
	}
	for _, tt := range tests {
		if got := a.strategyFor(tt.ua).Name(); got != tt.want {
			t.Errorf("strategyFor(%q) = %s, want %s", tt.ua, got, tt.want)
		}
	}
}

func TestDraftCaptionKeepsPrecomposedNukta(t *testing.T) {
	d := NewDraftStore(time.Hour, nil).Create()
	// 119 letters plus precomposed য় is 120 runes; decomposing it would
	// make 121 and drop to the small size.
	caption := strings.Repeat("ক", layout.CaptionThreshold-1) + "\u09df"
	d.SetFields(caption, bangla.Date{}, "", time.Now())
	if got := layout.CaptionSize(d.Snapshot().Caption); got.Px != layout.CaptionLargePx {
		t.Errorf("size = %v, want %v", got.Px, layout.CaptionLargePx)
	}
}
