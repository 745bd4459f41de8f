package main

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/eringen/fotocard"
)

func runServe() error {
	cfg := fotocard.Config{
		Name:          fotocard.EnvOr("FOTOCARD_NAME", ""),
		Addr:          fotocard.EnvOr("FOTOCARD_ADDR", ":3000"),
		TemplatePath:  fotocard.EnvOr("FOTOCARD_TEMPLATE", ""),
		FontPath:      fotocard.MustEnv("FOTOCARD_FONT"),
		SessionSecret: fotocard.MustEnv("FOTOCARD_SESSION_SECRET"),
	}
	if v := fotocard.EnvOr("FOTOCARD_COOKIE_SECURE", ""); v != "" {
		secure, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("FOTOCARD_COOKIE_SECURE: %w", err)
		}
		cfg.CookieSecure = secure
	}
	if v := fotocard.EnvOr("FOTOCARD_DRAFT_TTL", ""); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("FOTOCARD_DRAFT_TTL: %w", err)
		}
		cfg.DraftTTL = ttl
	}

	var opts []fotocard.Option
	if dir := fotocard.EnvOr("FOTOCARD_STATIC_DIR", ""); dir != "" {
		opts = append(opts, fotocard.WithStaticDir(dir))
	}
	app := fotocard.New(cfg, opts...)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Init(); err != nil {
		return err
	}

	errc := make(chan error, 1)
	go func() { errc <- app.Start() }()

	select {
	case err := <-errc:
		app.Close()
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return app.Shutdown(shutdownCtx)
}
