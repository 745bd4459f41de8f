package fotocard

import (
	"bytes"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/labstack/echo/v4"

	"github.com/eringen/fotocard/bangla"
	"github.com/eringen/fotocard/layout"
	"github.com/eringen/fotocard/views"
)

func (a *App) handleHome(c echo.Context) error {
	d, err := a.currentDraft(c)
	if err != nil {
		return err
	}
	return Render(c, views.Home(a.pageData(c, d.Snapshot())))
}

// pageData builds the form and preview model from a draft snapshot. The
// preview caption is wrapped with the export typeface so both show the same
// lines.
func (a *App) pageData(c echo.Context, snap Snapshot) views.PageData {
	dateText := ""
	if !snap.Date.IsZero() {
		t, err := bangla.FormatDate(snap.Date)
		if err != nil {
			slog.Warn("unformattable date", "draft", snap.ID, "date", snap.Date, "error", err)
		}
		dateText = t
	}
	date := ""
	if !snap.Date.IsZero() {
		date = snap.Date.String()
	}

	p := views.PageData{
		Name:    a.Config.Name,
		CSRF:    CsrfToken(c),
		Accept:  strings.Join(AcceptedTypes, ","),
		Error:   snap.Error,
		Caption: snap.Caption,
		Date:    date,
		Credit:  snap.Credit,
		Preview: views.Preview{
			TemplateURL: "/template.png",
			Caption:     layout.CaptionLayout(snap.Caption, a.renderer.Measure()),
			DateText:    dateText,
			Credit:      snap.Credit,
		},
	}
	_, p.OpenInNewTab = a.strategyFor(c.Request().UserAgent()).(OpenAndInstruct)
	if snap.Photo != nil {
		p.HasPhoto = true
		p.Preview.PhotoURL = "/photo?v=" + strconv.FormatInt(snap.Updated.UnixNano(), 36)
	}
	return p
}

// handleGetPhoto serves the draft's photo for the preview.
func (a *App) handleGetPhoto(c echo.Context) error {
	d, err := a.currentDraft(c)
	if err != nil {
		return err
	}
	snap := d.Snapshot()
	if snap.Photo == nil {
		return echo.ErrNotFound
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, snap.Photo, imaging.PNG); err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "image/png", buf.Bytes())
}

func (a *App) handleTemplate(c echo.Context) error {
	return c.Blob(http.StatusOK, "image/png", a.templatePNG)
}

func handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, views.NotFound(a.Config.Name))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		slog.Error("server error", "method", c.Request().Method, "uri", c.Request().RequestURI, "error", err)
		_ = RenderStatus(c, code, views.ServerError(a.Config.Name, UserMessage(err)))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
