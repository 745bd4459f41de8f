package views

import (
	"github.com/a-h/templ"

	"github.com/eringen/fotocard/layout"
)

// PageData is everything the home page shows: the form state and the preview.
type PageData struct {
	Name     string
	CSRF     string
	Accept   string // file input accept list
	HasPhoto bool
	Error    string

	Caption string
	Date    string // yyyy-mm-dd for the date picker
	Credit  string

	// OpenInNewTab targets the download at a new tab, for browsers that
	// show the card instead of saving it.
	OpenInNewTab bool

	Preview Preview
}

// Preview is the declarative rendering of the card. Positions come from the
// layout package, the same source the raster export draws from.
type Preview struct {
	PhotoURL    string // empty when no photo is loaded
	TemplateURL string
	Caption     layout.Caption
	DateText    string
	Credit      string // badge omitted when empty
}

// ViewerData is the page that shows a finished card for manual saving.
type ViewerData struct {
	Name     string
	ImageURL templ.SafeURL // data: URL of the PNG
	Filename string
	Hint     string
}
