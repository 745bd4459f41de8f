package fotocard

import (
	"time"

	"github.com/eringen/fotocard/compose"
)

// Config holds all configuration for a fotocard server.
type Config struct {
	Name string // Page title (default "ফটোকার্ড")
	Addr string // Listen address (default ":3000")

	TemplatePath string // Overlay PNG; empty uses the generated template
	FontPath     string // Required: TrueType/OpenType font with Bangla glyphs

	SessionSecret string // Required: session encryption secret
	CookieSecure  bool   // Set true for HTTPS

	DraftTTL         time.Duration // Idle lifetime of a draft (default 2h)
	MaxUploadSize    int64         // Upload limit in bytes (default 10MB)
	UploadsPerMinute int           // Per-IP upload limit (default 30)
}

func (c *Config) setDefaults() {
	if c.Name == "" {
		c.Name = "ফটোকার্ড"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DraftTTL == 0 {
		c.DraftTTL = 2 * time.Hour
	}
	if c.MaxUploadSize == 0 {
		c.MaxUploadSize = 10 << 20
	}
	if c.UploadsPerMinute == 0 {
		c.UploadsPerMinute = 30
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithRenderer uses r instead of loading the template and font from Config.
func WithRenderer(r *compose.Renderer) Option {
	return func(a *App) {
		a.renderer = r
	}
}

// WithStaticDir serves files from dir under /public, next to the built-in
// stylesheet and script (for a logo or favicon).
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithClock overrides the time source used for default dates and draft
// expiry.
func WithClock(now func() time.Time) Option {
	return func(a *App) {
		a.now = now
	}
}
