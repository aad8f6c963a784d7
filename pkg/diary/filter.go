package diary

import (
	"strings"

	"tableflip.dev/oneiro/pkg/dream"
)

// CategoryFilterPrefix marks a tag filter that targets a whole category
// instead of a single tag id.
const CategoryFilterPrefix = "category:"

// DateRange is an inclusive calendar-date window. Empty bounds are open.
type DateRange struct {
	Start string
	End   string
}

// IsZero reports whether no bound is set.
func (r DateRange) IsZero() bool { return r.Start == "" && r.End == "" }

// Contains reports whether date falls inside the range. YYYY-MM-DD strings
// order lexicographically, so plain comparison is correct.
func (r DateRange) Contains(date string) bool {
	if r.Start != "" && date < r.Start {
		return false
	}
	if r.End != "" && date > r.End {
		return false
	}
	return true
}

// TimeRange is an inclusive wall-time window. Empty bounds are open.
type TimeRange struct {
	Start string
	End   string
}

// IsZero reports whether no bound is set.
func (r TimeRange) IsZero() bool { return r.Start == "" && r.End == "" }

// Contains reports whether t falls inside the range.
func (r TimeRange) Contains(t string) bool {
	if r.Start != "" && t < r.Start {
		return false
	}
	if r.End != "" && t > r.End {
		return false
	}
	return true
}

// Filter selects active dreams. All provided criteria must match.
type Filter struct {
	// TagOrCategory is a tag id, or "category:<id>" to match any tag in the
	// category.
	TagOrCategory string
	// SearchText matches case-insensitively against title, description, or
	// any tag label.
	SearchText string
	DateRange  DateRange
	TimeRange  TimeRange
}

// Filtered returns the active dreams matching the filter, as copies sorted
// most-recent-first. The underlying collection is never mutated.
func (s *Service) Filtered(f Filter) []dream.Dream {
	out := make([]dream.Dream, 0, len(s.dreams))
	query := strings.ToLower(strings.TrimSpace(f.SearchText))

	for _, d := range s.dreams {
		if f.TagOrCategory != "" && !matchTagFilter(d, f.TagOrCategory) {
			continue
		}
		if query != "" && !matchSearch(d, query) {
			continue
		}
		if !f.DateRange.IsZero() && !f.DateRange.Contains(d.Date) {
			continue
		}
		if !f.TimeRange.IsZero() && !f.TimeRange.Contains(d.TimeOrMidnight()) {
			continue
		}
		out = append(out, d.Clone())
	}

	dream.Sort(out)
	return out
}

func matchTagFilter(d dream.Dream, filter string) bool {
	if cat, ok := strings.CutPrefix(filter, CategoryFilterPrefix); ok {
		return d.HasCategory(cat)
	}
	return d.HasTag(filter)
}

func matchSearch(d dream.Dream, query string) bool {
	if strings.Contains(strings.ToLower(d.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(d.Description), query) {
		return true
	}
	for _, t := range d.Tags {
		if strings.Contains(strings.ToLower(t.Label), query) {
			return true
		}
	}
	return false
}
