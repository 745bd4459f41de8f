package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/eringen/fotocard/bangla"
	"github.com/eringen/fotocard/compose"
)

func runRender(args []string) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	photoPath := fs.String("photo", "", "photo to place in the card (required)")
	caption := fs.String("caption", "", "caption text")
	date := fs.String("date", "", "date as yyyy-mm-dd (default: today at UTC+6)")
	credit := fs.String("credit", "", "photo credit; no badge when empty")
	templatePath := fs.String("template", os.Getenv("FOTOCARD_TEMPLATE"), "overlay PNG (default: built-in)")
	fontPath := fs.String("font", os.Getenv("FOTOCARD_FONT"), "TrueType/OpenType font with Bangla glyphs (required)")
	out := fs.String("out", "fotocard.png", "output file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *photoPath == "" {
		fs.Usage()
		return errors.New("render: -photo is required")
	}
	if *fontPath == "" {
		fs.Usage()
		return errors.New("render: -font or FOTOCARD_FONT is required")
	}

	card := compose.Card{Caption: *caption, Credit: *credit}
	if *date == "" {
		card.Date = bangla.Today(time.Now())
	} else {
		d, err := bangla.ParseDate(*date)
		if err != nil {
			return err
		}
		card.Date = d
	}

	f, err := os.Open(*photoPath)
	if err != nil {
		return err
	}
	card.Photo, err = compose.DecodePhoto(f)
	f.Close()
	if err != nil {
		return err
	}

	tpl, err := compose.LoadTemplate(*templatePath)
	if err != nil {
		return err
	}
	fonts, err := compose.LoadFonts(*fontPath)
	if err != nil {
		return err
	}
	if err := fonts.CheckBangla(); err != nil {
		return fmt.Errorf("%s: %w", *fontPath, err)
	}
	r := compose.NewRenderer(tpl, fonts)

	w, err := os.Create(*out)
	if err != nil {
		return err
	}
	if err := r.EncodePNG(w, card); err != nil {
		w.Close()
		return fmt.Errorf("render %s: %w", *out, err)
	}
	if err := w.Close(); err != nil {
		return err
	}
	slog.Info("card written", "path", *out)
	return nil
}
