// Package views renders the fotocard pages as templ components.
package views

import (
	"bytes"
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// html accumulates a page. text and attribute values are escaped; raw
// markup is written as given.
type html struct {
	buf bytes.Buffer
}

func (h *html) raw(s string)  { h.buf.WriteString(s) }
func (h *html) text(s string) { h.buf.WriteString(templ.EscapeString(s)) }

// attr writes ` name="value"` with value escaped.
func (h *html) attr(name, value string) {
	h.raw(" " + name + `="`)
	h.text(value)
	h.raw(`"`)
}

func (h *html) style(css templ.SafeCSS) { h.attr("style", string(css)) }

func component(fn func(h *html)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var h html
		fn(&h)
		_, err := w.Write(h.buf.Bytes())
		return err
	})
}

func (h *html) head(title string) {
	h.raw(`<!doctype html>
<html lang="bn">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>`)
	h.text(title)
	h.raw(`</title>
<link rel="stylesheet" href="/public/app.css">
<script src="/public/app.js" defer></script>
</head>
<body>
<div class="container">
`)
}

func (h *html) foot() {
	h.raw(`<div class="footer">তৈরী করেছে: <a target="_blank" rel="noopener" href="https://www.facebook.com/smtirX">তাওহিদুল ইসলাম রাজীব</a></div>
</div>
</body>
</html>
`)
}

func (h *html) title(name string) {
	h.raw(`<h1 class="title">`)
	h.text(name)
	h.raw(` <span class="redlish">ফটোকার্ড সিস্টেম</span></h1>` + "\n")
}

func (h *html) csrf(token string) {
	h.raw(`<input type="hidden" name="_csrf"`)
	h.attr("value", token)
	h.raw(">\n")
}

func (h *html) backButton() {
	h.raw(`<div class="button-row"><a class="blue-btn" href="/">ফিরে যান</a></div>` + "\n")
}

// Home is the composer page: upload area, form and live preview.
func Home(p PageData) templ.Component {
	return component(func(h *html) {
		h.head(p.Name)
		h.title(p.Name)
		h.upload(p)
		h.form(p)
		h.preview(p.Preview)
		h.foot()
	})
}

func (h *html) upload(p PageData) {
	h.raw(`<section class="upload-section">
<form id="upload-form" action="/photo" method="post" enctype="multipart/form-data">
`)
	h.csrf(p.CSRF)
	h.raw(`<label for="file-upload" class="upload-label" id="drop-zone">` + "\n")
	if p.HasPhoto {
		h.raw("<img")
		h.attr("src", p.Preview.PhotoURL)
		h.raw(` alt="আপলোড করা ছবি" class="preview-img">` + "\n")
	} else {
		h.raw(`<div class="upload-placeholder">
<span role="img" aria-label="camera" class="camera-icon">📷</span>
<div>নিচের নীল বাটনে ক্লিক করে অথবা এখানে ছবি এনে ছেড়ে দিন</div>
<div class="formats">JPG, PNG, GIF, BMP, WebP ফরম্যাটের ছবিগুলা সাপোর্ট করবে</div>
</div>
`)
	}
	h.raw(`<input id="file-upload" name="photo" type="file"`)
	h.attr("accept", p.Accept)
	h.raw(` hidden>
</label>
<div class="button-row">
<button type="button" class="blue-btn" id="choose-btn">ছবি বেছে নিন</button>
<noscript><button type="submit" class="blue-btn">আপলোড করুন</button></noscript>
</div>
</form>
`)
	if p.HasPhoto {
		h.raw(`<form action="/clear" method="post" class="button-row">` + "\n")
		h.csrf(p.CSRF)
		h.raw(`<button type="submit" class="clear-btn">ছবি ক্লিয়ার করুন</button>
</form>
`)
	}
	if p.Error != "" {
		h.raw(`<div class="error" role="alert">`)
		h.text(p.Error)
		h.raw("</div>\n")
	}
	h.raw("</section>\n")
}

func (h *html) form(p PageData) {
	h.raw(`<form id="card-form" class="editor-section" action="/card" method="post">` + "\n")
	h.csrf(p.CSRF)
	h.raw(`<label class="sr-only" for="caption">ক্যাপশন</label>
<textarea id="caption" name="caption" class="caption-input" rows="3" placeholder="ক্যাপশন">`)
	h.text(p.Caption)
	h.raw(`</textarea>
<div class="field-row">
<label class="sr-only" for="date">তারিখ</label>
<input id="date" name="date" class="date-input" type="date"`)
	h.attr("value", p.Date)
	h.raw(`>
<label class="sr-only" for="credit">ফটো ক্রেডিট</label>
<input id="credit" name="credit" class="credit-input" type="text"`)
	h.attr("value", p.Credit)
	h.raw(` placeholder="ফটো ক্রেডিট অথবা বিভাগ দিন">
</div>
<div class="button-row">
<button type="submit" class="preview-btn">প্রিভিউ দেখুন</button>
<button type="submit" id="download-btn" class="download-btn" formaction="/export"`)
	if p.OpenInNewTab {
		h.raw(` formtarget="_blank"`)
	}
	if !p.HasPhoto {
		h.raw(" disabled")
	}
	h.raw(`>ডাউনলোড করুন</button>
</div>
</form>
`)
}

func (h *html) preview(p Preview) {
	h.raw(`<div class="card-preview-wrapper">
<div class="card-preview"`)
	h.style(CanvasStyle())
	h.raw(">\n")
	if p.PhotoURL != "" {
		h.raw(`<img class="layer photo"`)
		h.attr("src", p.PhotoURL)
		h.raw(` alt="card"`)
		h.style(PhotoStyle())
		h.raw(">\n")
	}
	h.raw(`<img class="layer template"`)
	h.attr("src", p.TemplateURL)
	h.raw(` alt="template"`)
	h.style(TemplateStyle())
	h.raw(">\n")
	h.raw(`<div class="layer caption"`)
	h.style(CaptionStyle(p.Caption))
	h.raw(">")
	for _, line := range p.Caption.Lines {
		h.raw(`<div class="caption-line">`)
		h.text(line)
		h.raw("</div>")
	}
	h.raw("</div>\n")
	if p.DateText != "" {
		h.raw(`<div class="layer date"`)
		h.style(DateStyle())
		h.raw(">")
		h.text(p.DateText)
		h.raw("</div>\n")
	}
	if p.Credit != "" {
		h.raw(`<div class="layer credit"`)
		h.style(CreditStyle())
		h.raw(">")
		h.text(p.Credit)
		h.raw("</div>\n")
	}
	h.raw("</div>\n</div>\n")
}

// Viewer shows an exported card with manual save instructions.
func Viewer(v ViewerData) templ.Component {
	return component(func(h *html) {
		h.head(v.Name)
		h.title(v.Name)
		h.raw(`<div class="notice" role="status">`)
		h.text(v.Hint)
		h.raw(`</div>
<div class="viewer">
<a`)
		h.attr("href", string(v.ImageURL))
		h.raw(` target="_blank" rel="noopener"><img`)
		h.attr("src", string(v.ImageURL))
		h.attr("alt", v.Filename)
		h.raw(` class="viewer-img"></a>
</div>
`)
		h.backButton()
		h.foot()
	})
}

// NotFound renders the 404 page.
func NotFound(name string) templ.Component {
	return errorPage(name, 404, "পাতাটি খুঁজে পাওয়া যায়নি")
}

// ServerError renders the 500 page with a user-facing message.
func ServerError(name, message string) templ.Component {
	return errorPage(name, 500, message)
}

func errorPage(name string, code int, message string) templ.Component {
	return component(func(h *html) {
		h.head(name)
		h.raw(`<h1 class="title">` + strconv.Itoa(code) + "</h1>\n")
		h.raw(`<div class="error" role="alert">`)
		h.text(message)
		h.raw("</div>\n")
		h.backButton()
		h.foot()
	})
}
