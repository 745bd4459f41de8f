// Package fotocard is a photocard composer built with Go, Echo, and templ.
// Users upload a photo, type a caption, pick a date and an optional credit,
// and download the composed 1000×1000 card as fotocard.png.
//
// Each browser session owns one in-memory draft; nothing is stored on disk.
package fotocard

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/disintegration/imaging"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/eringen/fotocard/compose"
)

// App is the central fotocard application. It wires together the renderer,
// the draft store, handlers, and middleware.
type App struct {
	Config Config
	Echo   *echo.Echo
	Drafts *DraftStore

	renderer      *compose.Renderer
	templatePNG   []byte
	uploadLimiter *RateLimiter
	stopSweeper   func()
	staticDir     string
	now           func() time.Time
	ready         bool
}

// New creates a new App with the given configuration.
func New(cfg Config, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
		now:    time.Now,
	}
	a.Echo.HideBanner = true

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Init loads the template and font, and sets up the store, middleware and
// routes. Start calls it; tests call it directly and serve a.Echo.
func (a *App) Init() error {
	if a.ready {
		return nil
	}
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("fotocard: SessionSecret is required")
	}

	if a.renderer == nil {
		tpl, err := compose.LoadTemplate(a.Config.TemplatePath)
		if err != nil {
			return fmt.Errorf("fotocard: load template: %w", err)
		}
		fonts, err := compose.LoadFonts(a.Config.FontPath)
		if err != nil {
			return fmt.Errorf("fotocard: load font: %w", err)
		}
		if err := fonts.CheckBangla(); err != nil {
			return fmt.Errorf("fotocard: %s: %w", a.Config.FontPath, err)
		}
		a.renderer = compose.NewRenderer(tpl, fonts)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, a.renderer.Template(), imaging.PNG); err != nil {
		return fmt.Errorf("fotocard: encode template: %w", err)
	}
	a.templatePNG = buf.Bytes()

	a.Drafts = NewDraftStore(a.Config.DraftTTL, a.now)
	a.stopSweeper = a.Drafts.StartSweeper(time.Minute)
	a.uploadLimiter = NewRateLimiter(a.Config.UploadsPerMinute, time.Minute)

	a.setupMiddleware()
	a.setupRoutes()
	a.ready = true
	return nil
}

// Start initializes the app and starts the server. It blocks until the
// server stops.
func (a *App) Start() error {
	if err := a.Init(); err != nil {
		return err
	}
	slog.Info("fotocard listening", "addr", a.Config.Addr,
		"template", orDefault(a.Config.TemplatePath), "font", a.Config.FontPath)
	if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func orDefault(path string) string {
	if path == "" {
		return "(built-in)"
	}
	return path
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Built-in assets are served under /public/; anything else there comes
	// from the static dir, if one is set.
	assets, _ := fs.Sub(EmbeddedAssets, "embedded")
	embedded := echo.WrapHandler(http.StripPrefix("/public/", http.FileServer(http.FS(assets))))
	e.GET("/public/app.css", embedded)
	e.GET("/public/app.js", embedded)
	if a.staticDir != "" {
		e.Static("/public", a.staticDir)
	}
	e.GET("/template.png", a.handleTemplate)
	e.GET("/healthz", handleHealth)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	e.GET("/", a.handleHome)
	e.POST("/card", a.handleSave)
	e.GET("/photo", a.handleGetPhoto)
	e.POST("/photo", a.handleUpload)
	e.PUT("/photo", a.handlePutPhoto)
	e.POST("/clear", a.handleClear)
	e.POST("/export", a.handleExport)
}

// Shutdown stops the server and background work.
func (a *App) Shutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	a.Close()
	return err
}

// Close releases background resources without touching the listener.
func (a *App) Close() {
	if a.stopSweeper != nil {
		a.stopSweeper()
	}
	if a.uploadLimiter != nil {
		a.uploadLimiter.Close()
	}
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// MustEnv returns the value of the environment variable key, or fatally exits if empty.
func MustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("fotocard: required environment variable %s is not set", key)
	}
	return v
}
