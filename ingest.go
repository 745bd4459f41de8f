package fotocard

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"slices"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/eringen/fotocard/compose"
)

// AcceptedTypes lists the photo MIME types an upload may declare.
var AcceptedTypes = []string{"image/jpeg", "image/png", "image/gif", "image/bmp", "image/webp"}

const sniffLen = 512

// photoType resolves the MIME type of an upload. A missing or generic
// declared type is replaced by the sniffed one.
func photoType(declared string, head []byte) string {
	mt, _, err := mime.ParseMediaType(declared)
	if err != nil {
		mt = ""
	}
	mt = strings.ToLower(mt)
	if mt == "" || mt == "application/octet-stream" {
		mt, _, _ = mime.ParseMediaType(http.DetectContentType(head))
	}
	return mt
}

// ingest validates and decodes an uploaded photo into d. Every upload path
// goes through here. On failure the draft keeps its previous photo and shows
// the error.
func (a *App) ingest(d *Draft, declaredType string, body io.Reader) (err error) {
	defer func() {
		if err != nil {
			d.SetError(UserMessage(err))
			uploadsTotal.WithLabelValues(uploadResult(err)).Inc()
			slog.Info("photo rejected", "draft", d.ID, "type", declaredType, "error", err)
			return
		}
		uploadsTotal.WithLabelValues("ok").Inc()
	}()

	br := bufio.NewReaderSize(body, sniffLen)
	head, _ := br.Peek(sniffLen)
	mt := photoType(declaredType, head)
	if !slices.Contains(AcceptedTypes, mt) {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, mt)
	}

	data, err := io.ReadAll(io.LimitReader(br, a.Config.MaxUploadSize+1))
	if err != nil {
		return fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > a.Config.MaxUploadSize {
		return ErrTooLarge
	}

	img, err := compose.DecodePhoto(bytes.NewReader(data))
	if errors.Is(err, compose.ErrTooManyPixels) {
		return err
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	d.SetPhoto(img, mt, a.now())
	b := img.Bounds()
	slog.Info("photo loaded", "draft", d.ID, "type", mt, "width", b.Dx(), "height", b.Dy())
	return nil
}

func uploadResult(err error) string {
	switch {
	case errors.Is(err, ErrUnsupportedFormat):
		return "unsupported"
	case errors.Is(err, ErrTooLarge):
		return "too_large"
	case errors.Is(err, compose.ErrTooManyPixels):
		return "too_many_pixels"
	case errors.Is(err, ErrDecode):
		return "decode_error"
	default:
		return "error"
	}
}

// handleUpload accepts the multipart form upload. Drag and drop fills the
// same file input and submits the same form.
func (a *App) handleUpload(c echo.Context) error {
	d, err := a.currentDraft(c)
	if err != nil {
		return err
	}
	file, err := c.FormFile("photo")
	if err != nil {
		return c.Redirect(http.StatusSeeOther, "/")
	}
	if !a.uploadLimiter.Allow(c.RealIP()) {
		d.SetError(UserMessage(ErrRateLimited))
		return c.Redirect(http.StatusSeeOther, "/")
	}
	if file.Size > a.Config.MaxUploadSize {
		d.SetError(UserMessage(ErrTooLarge))
		return c.Redirect(http.StatusSeeOther, "/")
	}

	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	_ = a.ingest(d, file.Header.Get(echo.HeaderContentType), src)
	return c.Redirect(http.StatusSeeOther, "/")
}

// handlePutPhoto accepts the photo as the raw request body, typed by the
// Content-Type header.
func (a *App) handlePutPhoto(c echo.Context) error {
	d, err := a.currentDraft(c)
	if err != nil {
		return err
	}
	if !a.uploadLimiter.Allow(c.RealIP()) {
		return c.JSON(http.StatusTooManyRequests, uploadResponse{Error: UserMessage(ErrRateLimited)})
	}
	req := c.Request()
	if req.ContentLength > a.Config.MaxUploadSize {
		d.SetError(UserMessage(ErrTooLarge))
		return c.JSON(http.StatusRequestEntityTooLarge, uploadResponse{Error: UserMessage(ErrTooLarge)})
	}

	if err := a.ingest(d, req.Header.Get(echo.HeaderContentType), req.Body); err != nil {
		return c.JSON(uploadStatus(err), uploadResponse{Error: UserMessage(err)})
	}
	snap := d.Snapshot()
	b := snap.Photo.Bounds()
	return c.JSON(http.StatusOK, uploadResponse{
		OK:     true,
		Type:   snap.PhotoType,
		Width:  b.Dx(),
		Height: b.Dy(),
	})
}

type uploadResponse struct {
	OK     bool   `json:"ok"`
	Type   string `json:"type,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Error  string `json:"error,omitempty"`
}

func uploadStatus(err error) int {
	switch {
	case errors.Is(err, ErrUnsupportedFormat):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, ErrTooLarge), errors.Is(err, compose.ErrTooManyPixels):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusUnprocessableEntity
	}
}

func (a *App) handleClear(c echo.Context) error {
	d, err := a.currentDraft(c)
	if err != nil {
		return err
	}
	d.ClearPhoto(a.now())
	return c.Redirect(http.StatusSeeOther, "/")
}
