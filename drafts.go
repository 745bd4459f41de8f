package fotocard

import (
	"image"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/eringen/fotocard/bangla"
	"github.com/eringen/fotocard/compose"
)

// DefaultCaption is the caption a new draft starts with.
const DefaultCaption = "এখানে লেখা দিন"

// Draft is one user's card in progress: the photo and the form fields.
type Draft struct {
	ID string

	mu        sync.Mutex
	photo     image.Image
	photoType string
	caption   string
	date      bangla.Date
	credit    string
	errMsg    string
	updated   time.Time
	lastSeen  time.Time

	exporting atomic.Bool
}

// Snapshot is an immutable copy of a Draft's fields.
type Snapshot struct {
	ID        string
	Photo     image.Image
	PhotoType string
	Caption   string
	Date      bangla.Date
	Credit    string
	Error     string
	Updated   time.Time
}

// Card converts the snapshot into compositor input.
func (s Snapshot) Card() compose.Card {
	return compose.Card{
		Photo:   s.Photo,
		Caption: s.Caption,
		Date:    s.Date,
		Credit:  s.Credit,
	}
}

// Snapshot copies the draft's current state.
func (d *Draft) Snapshot() Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	return Snapshot{
		ID:        d.ID,
		Photo:     d.photo,
		PhotoType: d.photoType,
		Caption:   d.caption,
		Date:      d.date,
		Credit:    d.credit,
		Error:     d.errMsg,
		Updated:   d.updated,
	}
}

// SetPhoto replaces the photo and clears any error.
func (d *Draft) SetPhoto(img image.Image, mimeType string, now time.Time) {
	d.mu.Lock()
	d.photo = img
	d.photoType = mimeType
	d.errMsg = ""
	d.updated = now
	d.mu.Unlock()
}

// ClearPhoto removes the photo and any error.
func (d *Draft) ClearPhoto(now time.Time) {
	d.mu.Lock()
	d.photo = nil
	d.photoType = ""
	d.errMsg = ""
	d.updated = now
	d.mu.Unlock()
}

// SetError records a message shown until the next successful upload or clear.
func (d *Draft) SetError(msg string) {
	d.mu.Lock()
	d.errMsg = msg
	d.mu.Unlock()
}

// SetFields updates the text fields. The caption is stored in NFC so that
// visually identical captions count and measure the same.
func (d *Draft) SetFields(caption string, date bangla.Date, credit string, now time.Time) {
	d.mu.Lock()
	d.caption = caption
	d.date = date
	d.credit = strings.TrimSpace(credit)
	d.updated = now
	d.mu.Unlock()
}

// BeginExport marks the draft as exporting. It reports false if an export is
// already running.
func (d *Draft) BeginExport() bool {
	return d.exporting.CompareAndSwap(false, true)
}

// EndExport clears the exporting mark.
func (d *Draft) EndExport() {
	d.exporting.Store(false)
}

func (d *Draft) touch(now time.Time) {
	d.mu.Lock()
	d.lastSeen = now
	d.mu.Unlock()
}

func (d *Draft) idleSince() time.Time {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lastSeen
}

// DraftStore keeps drafts in memory and forgets them after ttl of inactivity.
type DraftStore struct {
	mu     sync.RWMutex
	drafts map[string]*Draft
	ttl    time.Duration
	now    func() time.Time
}

// NewDraftStore creates an empty DraftStore.
func NewDraftStore(ttl time.Duration, now func() time.Time) *DraftStore {
	if now == nil {
		now = time.Now
	}
	return &DraftStore{
		drafts: make(map[string]*Draft),
		ttl:    ttl,
		now:    now,
	}
}

// Create adds a fresh draft with the default caption and today's date.
func (s *DraftStore) Create() *Draft {
	now := s.now()
	d := &Draft{
		ID:       uuid.NewString(),
		caption:  DefaultCaption,
		date:     bangla.Today(now),
		updated:  now,
		lastSeen: now,
	}
	s.mu.Lock()
	s.drafts[d.ID] = d
	s.mu.Unlock()
	return d
}

// Get returns a live draft and marks it as used.
func (s *DraftStore) Get(id string) (*Draft, bool) {
	s.mu.RLock()
	d, ok := s.drafts[id]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	now := s.now()
	if now.Sub(d.idleSince()) >= s.ttl {
		s.mu.Lock()
		delete(s.drafts, id)
		s.mu.Unlock()
		return nil, false
	}
	d.touch(now)
	return d, true
}

// Len returns the number of stored drafts, expired or not.
func (s *DraftStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.drafts)
}

// Sweep deletes expired drafts and returns how many were removed.
func (s *DraftStore) Sweep() int {
	cutoff := s.now().Add(-s.ttl)
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for id, d := range s.drafts {
		if !d.idleSince().After(cutoff) {
			delete(s.drafts, id)
			n++
		}
	}
	return n
}

// StartSweeper runs Sweep every interval until the returned stop function is
// called.
func (s *DraftStore) StartSweeper(interval time.Duration) (stop func()) {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-ticker.C:
				s.Sweep()
			case <-done:
				ticker.Stop()
				return
			}
		}
	}()
	var once sync.Once
	return func() { once.Do(func() { close(done) }) }
}
