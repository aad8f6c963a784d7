package diary

import (
	"testing"

	"tableflip.dev/oneiro/pkg/dream"
	"tableflip.dev/oneiro/pkg/taxonomy"
)

func filterFixture(t *testing.T) *Service {
	t.Helper()

	city := taxonomy.Tag{ID: "places/city", Label: "City", CategoryID: "places"}
	fear := taxonomy.Tag{ID: "emotions/fear", Label: "Fear", CategoryID: "emotions"}

	mp := newMemoryPersistence()
	mp.schema = 1
	// Seeded directly so "Quiet morning" keeps its empty time; AddDream would
	// default it to the current wall time.
	mp.dreams = []dream.Dream{
		{ID: "d1", Title: "Harbor storm", Description: "ships in the rain",
			Date: "2024-01-15", Time: "06:30:00", Tags: []taxonomy.Tag{city}},
		{ID: "d2", Title: "Empty school", Description: "endless hallways",
			Date: "2024-02-01", Time: "23:10:00", Tags: []taxonomy.Tag{fear}},
		{ID: "d3", Title: "Quiet morning", Description: "nothing happened",
			Date: "2024-01-20", Tags: []taxonomy.Tag{city, fear}},
	}
	return loadService(t, mp)
}

func TestFilteredNoFiltersReturnsAll(t *testing.T) {
	s := filterFixture(t)
	got := s.Filtered(Filter{})
	if len(got) != 3 {
		t.Fatalf("got %d dreams", len(got))
	}
}

func TestFilteredByTag(t *testing.T) {
	s := filterFixture(t)
	got := s.Filtered(Filter{TagOrCategory: "places/city"})
	if len(got) != 2 {
		t.Fatalf("got %d dreams", len(got))
	}
	for _, d := range got {
		if !d.HasTag("places/city") {
			t.Fatalf("dream %q lacks the tag", d.Title)
		}
	}
}

func TestFilteredByCategory(t *testing.T) {
	s := filterFixture(t)
	got := s.Filtered(Filter{TagOrCategory: "category:emotions"})
	if len(got) != 2 {
		t.Fatalf("got %d dreams", len(got))
	}
}

func TestFilteredBySearchText(t *testing.T) {
	s := filterFixture(t)

	// Title match, case-insensitive.
	if got := s.Filtered(Filter{SearchText: "HARBOR"}); len(got) != 1 {
		t.Fatalf("title search got %d", len(got))
	}
	// Description match.
	if got := s.Filtered(Filter{SearchText: "hallways"}); len(got) != 1 {
		t.Fatalf("description search got %d", len(got))
	}
	// Tag label match.
	if got := s.Filtered(Filter{SearchText: "fear"}); len(got) != 2 {
		t.Fatalf("tag label search got %d", len(got))
	}
	if got := s.Filtered(Filter{SearchText: "zeppelin"}); len(got) != 0 {
		t.Fatalf("miss search got %d", len(got))
	}
}

func TestFilteredByDateRange(t *testing.T) {
	s := filterFixture(t)
	got := s.Filtered(Filter{DateRange: DateRange{Start: "2024-01-01", End: "2024-01-31"}})
	if len(got) != 2 {
		t.Fatalf("got %d dreams", len(got))
	}
	for _, d := range got {
		if d.Date == "2024-02-01" {
			t.Fatal("2024-02-01 should be excluded")
		}
	}

	// Inclusive bounds.
	got = s.Filtered(Filter{DateRange: DateRange{Start: "2024-01-15", End: "2024-01-15"}})
	if len(got) != 1 || got[0].Date != "2024-01-15" {
		t.Fatalf("inclusive bound got %+v", got)
	}

	// Open-ended.
	if got := s.Filtered(Filter{DateRange: DateRange{Start: "2024-01-21"}}); len(got) != 1 {
		t.Fatalf("open end got %d", len(got))
	}
}

func TestFilteredByTimeRangeMidnightDefault(t *testing.T) {
	s := filterFixture(t)

	// A dream without a time counts as midnight.
	got := s.Filtered(Filter{TimeRange: TimeRange{Start: "00:00:00", End: "00:00:00"}})
	if len(got) != 1 || got[0].Title != "Quiet morning" {
		t.Fatalf("midnight filter got %+v", got)
	}

	got = s.Filtered(Filter{TimeRange: TimeRange{Start: "06:00:00", End: "12:00:00"}})
	if len(got) != 1 || got[0].Title != "Harbor storm" {
		t.Fatalf("morning filter got %+v", got)
	}
}

func TestFiltersAreConjunctive(t *testing.T) {
	s := filterFixture(t)
	got := s.Filtered(Filter{
		TagOrCategory: "places/city",
		SearchText:    "storm",
		DateRange:     DateRange{Start: "2024-01-01", End: "2024-01-31"},
	})
	if len(got) != 1 || got[0].Title != "Harbor storm" {
		t.Fatalf("got %+v", got)
	}
}

func TestFilteredSortedMostRecentFirst(t *testing.T) {
	s := filterFixture(t)
	got := s.Filtered(Filter{})
	want := []string{"Empty school", "Quiet morning", "Harbor storm"}
	for i, title := range want {
		if got[i].Title != title {
			t.Fatalf("position %d = %q, want %q", i, got[i].Title, title)
		}
	}
}

func TestFilteredDoesNotMutateStore(t *testing.T) {
	s := filterFixture(t)
	got := s.Filtered(Filter{})
	got[0].Title = "clobbered"
	got[0].Tags = nil

	for _, d := range s.Dreams() {
		if d.Title == "clobbered" {
			t.Fatal("filter result aliased store state")
		}
	}
}
