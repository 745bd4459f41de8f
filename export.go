package fotocard

import (
	"bytes"
	"encoding/base64"
	"log/slog"
	"net/http"
	"regexp"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/eringen/fotocard/bangla"
	"github.com/eringen/fotocard/views"
)

// ExportFilename is the name offered for the downloaded card.
const ExportFilename = "fotocard.png"

// ExportStrategy hands a finished card to the browser.
type ExportStrategy interface {
	Name() string
	Deliver(c echo.Context, png []byte) error
}

// DirectDownload sends the card as a file attachment.
type DirectDownload struct{}

func (DirectDownload) Name() string { return "download" }

func (DirectDownload) Deliver(c echo.Context, png []byte) error {
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+ExportFilename+`"`)
	return c.Blob(http.StatusOK, "image/png", png)
}

// OpenAndInstruct shows the card on a page of its own with instructions for
// saving it by hand, for browsers that block programmatic downloads.
type OpenAndInstruct struct {
	SiteName string
}

func (OpenAndInstruct) Name() string { return "open" }

func (s OpenAndInstruct) Deliver(c echo.Context, png []byte) error {
	return Render(c, views.Viewer(views.ViewerData{
		Name:     s.SiteName,
		ImageURL: templ.SafeURL("data:image/png;base64," + base64.StdEncoding.EncodeToString(png)),
		Filename: ExportFilename,
		Hint:     IOSSaveHint,
	}))
}

var blocksDownloads = regexp.MustCompile(`iPad|iPhone|iPod`)

// strategyFor picks the delivery strategy once per export from the user agent.
func (a *App) strategyFor(userAgent string) ExportStrategy {
	if blocksDownloads.MatchString(userAgent) {
		return OpenAndInstruct{SiteName: a.Config.Name}
	}
	return DirectDownload{}
}

// applyFields copies the caption, date and credit form fields into d. Fields
// absent from the form are left unchanged.
func (a *App) applyFields(c echo.Context, d *Draft) error {
	form, err := c.FormParams()
	if err != nil {
		return err
	}
	snap := d.Snapshot()
	caption, date, credit := snap.Caption, snap.Date, snap.Credit
	if v, ok := form["caption"]; ok && len(v) > 0 {
		caption = v[0]
	}
	if v, ok := form["date"]; ok && len(v) > 0 {
		if v[0] == "" {
			date = bangla.Date{}
		} else if parsed, err := bangla.ParseDate(v[0]); err == nil {
			date = parsed
		} else {
			slog.Debug("ignoring date", "draft", d.ID, "value", v[0], "error", err)
		}
	}
	if v, ok := form["credit"]; ok && len(v) > 0 {
		credit = v[0]
	}
	d.SetFields(caption, date, credit, a.now())
	return nil
}

func (a *App) handleSave(c echo.Context) error {
	d, err := a.currentDraft(c)
	if err != nil {
		return err
	}
	if err := a.applyFields(c, d); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

// handleExport renders the card from the values submitted with the request
// and delivers it.
func (a *App) handleExport(c echo.Context) error {
	d, err := a.currentDraft(c)
	if err != nil {
		return err
	}
	if err := a.applyFields(c, d); err != nil {
		return err
	}
	snap := d.Snapshot()
	if snap.Photo == nil {
		return c.Redirect(http.StatusSeeOther, "/")
	}
	if !d.BeginExport() {
		return c.String(http.StatusConflict, UserMessage(ErrExportBusy))
	}
	defer d.EndExport()

	start := time.Now()
	var buf bytes.Buffer
	if err := a.renderer.EncodePNG(&buf, snap.Card()); err != nil {
		return err
	}
	renderSeconds.Observe(time.Since(start).Seconds())

	strategy := a.strategyFor(c.Request().UserAgent())
	exportsTotal.WithLabelValues(strategy.Name()).Inc()
	slog.Info("card exported", "draft", d.ID, "strategy", strategy.Name(), "bytes", buf.Len(), "took", time.Since(start))
	return strategy.Deliver(c, buf.Bytes())
}
