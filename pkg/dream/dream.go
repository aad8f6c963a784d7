// Package dream defines the diary's core record type and its ordering and
// timestamp conventions. Dates are calendar dates in local time, never
// UTC-shifted.
package dream

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"tableflip.dev/oneiro/pkg/taxonomy"
)

// Dream is a single diary record. CitedDreams holds outgoing citation edges
// to other dream ids; CitedTags holds tag ids referenced inline, which is
// distinct from Tags membership. A non-empty DeletedAt means the record lives
// in the trash collection.
type Dream struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Date        string         `json:"date"`           // YYYY-MM-DD, local
	Time        string         `json:"time,omitempty"` // HH:MM:SS, local
	Description string         `json:"description"`
	Tags        []taxonomy.Tag `json:"tags"`
	CitedDreams []string       `json:"citedDreams"`
	CitedTags   []string       `json:"citedTags"`
	CreatedAt   string         `json:"createdAt"`
	UpdatedAt   string         `json:"updatedAt"`
	DeletedAt   string         `json:"deletedAt,omitempty"`
}

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

// NewID returns an opaque unique dream id.
func NewID() string {
	return uuid.NewString()
}

// NowISO returns the current instant as an ISO-8601 timestamp.
func NowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// CurrentDate returns today's date in the local timezone as YYYY-MM-DD.
func CurrentDate() string {
	return time.Now().Format(dateLayout)
}

// CurrentTime returns the current local wall time as HH:MM:SS.
func CurrentTime() string {
	return time.Now().Format(timeLayout)
}

// ValidDate reports whether s parses as a YYYY-MM-DD calendar date.
func ValidDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

// ValidTime reports whether s parses as an HH:MM:SS wall time.
func ValidTime(s string) bool {
	_, err := time.Parse(timeLayout, s)
	return err == nil
}

// TimeOrMidnight returns the dream's time, defaulting to midnight when unset.
// Range comparisons treat timeless dreams as 00:00:00.
func (d Dream) TimeOrMidnight() string {
	if d.Time == "" {
		return "00:00:00"
	}
	return d.Time
}

// HasTag reports whether the dream carries the tag id.
func (d Dream) HasTag(tagID string) bool {
	for _, t := range d.Tags {
		if t.ID == tagID {
			return true
		}
	}
	return false
}

// HasCategory reports whether any of the dream's tags belong to the category.
func (d Dream) HasCategory(categoryID string) bool {
	for _, t := range d.Tags {
		if t.CategoryID == categoryID {
			return true
		}
	}
	return false
}

// Cites reports whether the dream has an outgoing citation to id.
func (d Dream) Cites(id string) bool {
	for _, c := range d.CitedDreams {
		if c == id {
			return true
		}
	}
	return false
}

// Clone deep-copies the dream so derived views never alias store state.
func (d Dream) Clone() Dream {
	cp := d
	cp.Tags = append([]taxonomy.Tag(nil), d.Tags...)
	cp.CitedDreams = append([]string(nil), d.CitedDreams...)
	cp.CitedTags = append([]string(nil), d.CitedTags...)
	return cp
}

// CloneAll deep-copies a slice of dreams.
func CloneAll(in []Dream) []Dream {
	out := make([]Dream, len(in))
	for i, d := range in {
		out[i] = d.Clone()
	}
	return out
}

// Less orders dreams most-recent-first: date descending, then time
// descending, with missing times sorting as midnight. Equal date+time pairs
// report false both ways so a stable sort preserves insertion order.
func Less(a, b Dream) bool {
	if a.Date != b.Date {
		return a.Date > b.Date
	}
	return a.TimeOrMidnight() > b.TimeOrMidnight()
}

// Sort stable-sorts dreams in the presentation order used by list views.
func Sort(dreams []Dream) {
	sort.SliceStable(dreams, func(i, j int) bool {
		return Less(dreams[i], dreams[j])
	})
}
