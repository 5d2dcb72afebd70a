package viewstate

import (
	"sync"
	"time"

	"github.com/ikkim/creme-backend/internal/app/menu"
)

const (
	// NavHeightOffset is the height of the sticky navigation bar.
	NavHeightOffset = 110.0
	// SectionActivationSlack is added to NavHeightOffset when picking the
	// section under the navigation bar.
	SectionActivationSlack = 30.0
	// TopThreshold is the scroll offset under which "all" is active.
	TopThreshold = 50.0
	// BottomThreshold is the distance from the page end at which the last
	// category is active.
	BottomThreshold = 100.0
	// ClickScrollLock is how long scroll events are ignored after a click.
	ClickScrollLock = time.Second
)

// SectionPosition is a rendered section's top edge relative to the viewport.
type SectionPosition struct {
	ID  string
	Top float64
}

// Viewport describes a scroll event. Sections are in page order.
type Viewport struct {
	ScrollY        float64
	ViewportHeight float64
	PageHeight     float64
	Sections       []SectionPosition
}

// SectionTracker keeps the active navigation category in sync with scrolling.
type SectionTracker struct {
	mu          sync.Mutex
	active      string
	categories  []string
	searchQuery string
	lockedUntil time.Time
}

func NewSectionTracker(categories []menu.Category) *SectionTracker {
	t := &SectionTracker{active: menu.CategoryAll}
	t.SetCategories(categories)
	return t
}

func (t *SectionTracker) SetCategories(categories []menu.Category) {
	ids := make([]string, 0, len(categories))
	for _, c := range categories {
		ids = append(ids, c.ID)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.categories = ids
}

// SetSearchQuery suspends scroll tracking while the query is non-empty.
func (t *SectionTracker) SetSearchQuery(query string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.searchQuery = query
}

func (t *SectionTracker) Active() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}

// Click activates id immediately and locks scroll tracking for
// ClickScrollLock. It returns the scroll offset to move to, 0 for "all".
// ok is false when the section is not rendered and no scroll should happen.
func (t *SectionTracker) Click(id string, v Viewport, now time.Time) (target float64, ok bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.active = id
	t.lockedUntil = now.Add(ClickScrollLock)

	if id == menu.CategoryAll {
		return 0, true
	}
	for _, s := range v.Sections {
		if s.ID == id {
			return s.Top + v.ScrollY - NavHeightOffset, true
		}
	}
	return 0, false
}

// Scroll handles a scroll event and reports the active category and whether
// it changed.
func (t *SectionTracker) Scroll(v Viewport, now time.Time) (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.searchQuery != "" || now.Before(t.lockedUntil) {
		return t.active, false
	}

	next := t.resolve(v)
	if next == "" || next == t.active {
		return t.active, false
	}
	t.active = next
	return next, true
}

func (t *SectionTracker) resolve(v Viewport) string {
	if v.ScrollY < TopThreshold {
		return menu.CategoryAll
	}

	if v.ScrollY+v.ViewportHeight >= v.PageHeight-BottomThreshold && len(t.categories) > 0 {
		return t.categories[len(t.categories)-1]
	}

	for i := len(v.Sections) - 1; i >= 0; i-- {
		if v.Sections[i].Top <= NavHeightOffset+SectionActivationSlack {
			return v.Sections[i].ID
		}
	}
	return ""
}

