package analytics

import (
	"math"
	"testing"

	"tableflip.dev/oneiro/pkg/dream"
	"tableflip.dev/oneiro/pkg/taxonomy"
)

var (
	tagCity   = taxonomy.Tag{ID: "places/city", Label: "City", CategoryID: "places"}
	tagOcean  = taxonomy.Tag{ID: "places/ocean", Label: "Ocean", CategoryID: "places"}
	tagFear   = taxonomy.Tag{ID: "emotions/fear", Label: "Fear", CategoryID: "emotions"}
	tagFlying = taxonomy.Tag{ID: "dream-types/flying", Label: "Flying", CategoryID: "dream-types"}
)

func statsFixture() []dream.Dream {
	return []dream.Dream{
		{ID: "1", Tags: []taxonomy.Tag{tagCity, tagFear}},
		{ID: "2", Tags: []taxonomy.Tag{tagCity, tagFear, tagFlying}},
		{ID: "3", Tags: []taxonomy.Tag{tagCity}},
		{ID: "4", Tags: []taxonomy.Tag{tagOcean}},
	}
}

func statByID(t *testing.T, stats []TagStat, id string) TagStat {
	t.Helper()
	for _, st := range stats {
		if st.ID == id {
			return st
		}
	}
	t.Fatalf("no stat for %s", id)
	return TagStat{}
}

func TestTagStatsCountsAndPercentages(t *testing.T) {
	stats := TagStats(statsFixture())

	if len(stats) != 4 {
		t.Fatalf("got %d stats", len(stats))
	}
	if stats[0].ID != "places/city" || stats[0].Count != 3 {
		t.Fatalf("top stat = %+v", stats[0])
	}

	city := statByID(t, stats, "places/city")
	if city.Percentage != 75 {
		t.Fatalf("city percentage = %v", city.Percentage)
	}
	ocean := statByID(t, stats, "places/ocean")
	if ocean.Count != 1 || ocean.Percentage != 25 {
		t.Fatalf("ocean = %+v", ocean)
	}
}

func TestTagStatsCoOccurrence(t *testing.T) {
	stats := TagStats(statsFixture())

	city := statByID(t, stats, "places/city")
	fear := statByID(t, stats, "emotions/fear")

	if city.CoOccurrence["emotions/fear"] != 2 {
		t.Fatalf("city~fear = %d", city.CoOccurrence["emotions/fear"])
	}
	if fear.CoOccurrence["places/city"] != 2 {
		t.Fatalf("fear~city = %d", fear.CoOccurrence["places/city"])
	}
	if city.CoOccurrence["places/ocean"] != 0 {
		t.Fatalf("city~ocean = %d", city.CoOccurrence["places/ocean"])
	}
}

func TestTagStatsDuplicateTagOnOneDreamCountsOnce(t *testing.T) {
	stats := TagStats([]dream.Dream{
		{ID: "1", Tags: []taxonomy.Tag{tagCity, tagCity, tagFear}},
	})
	city := statByID(t, stats, "places/city")
	if city.Count != 1 {
		t.Fatalf("count = %d", city.Count)
	}
	if city.CoOccurrence["emotions/fear"] != 1 {
		t.Fatalf("co = %d", city.CoOccurrence["emotions/fear"])
	}
}

func TestTagStatsEmptyCollection(t *testing.T) {
	if got := TagStats(nil); len(got) != 0 {
		t.Fatalf("got %+v", got)
	}
}

func TestRelationshipsStrength(t *testing.T) {
	rels := Relationships(TagStats(statsFixture()))

	find := func(a, b string) (Relationship, bool) {
		for _, r := range rels {
			if (r.TagA == a && r.TagB == b) || (r.TagA == b && r.TagB == a) {
				return r, true
			}
		}
		return Relationship{}, false
	}

	// fear appears twice, always with city: 2 / min(3, 2) = 1.
	r, ok := find("places/city", "emotions/fear")
	if !ok {
		t.Fatal("city~fear relationship missing")
	}
	if r.CoOccurrences != 2 || r.Strength != 1 {
		t.Fatalf("city~fear = %+v", r)
	}

	// flying appears once, with city: 1 / min(3, 1) = 1.
	if r, ok = find("places/city", "dream-types/flying"); !ok || r.Strength != 1 {
		t.Fatalf("city~flying = %+v ok=%v", r, ok)
	}

	// Each unordered pair reported once.
	seen := map[[2]string]bool{}
	for _, r := range rels {
		a, b := r.TagA, r.TagB
		if b < a {
			a, b = b, a
		}
		if seen[[2]string{a, b}] {
			t.Fatalf("pair %s~%s reported twice", a, b)
		}
		seen[[2]string{a, b}] = true
	}
}

func TestRelationshipStrengthSymmetric(t *testing.T) {
	stats := TagStats(statsFixture())
	for _, a := range stats {
		for _, b := range stats {
			if a.ID == b.ID {
				continue
			}
			if a.CoOccurrence[b.ID] != b.CoOccurrence[a.ID] {
				t.Fatalf("co-occurrence asymmetric for %s/%s", a.ID, b.ID)
			}
			co := a.CoOccurrence[b.ID]
			if co == 0 {
				continue
			}
			ab := float64(co) / math.Min(float64(a.Count), float64(b.Count))
			ba := float64(b.CoOccurrence[a.ID]) / math.Min(float64(b.Count), float64(a.Count))
			if ab != ba {
				t.Fatalf("strength(%s,%s)=%v != strength(%s,%s)=%v", a.ID, b.ID, ab, b.ID, a.ID, ba)
			}
		}
	}
}

func TestRelationshipsSortedByStrength(t *testing.T) {
	rels := Relationships(TagStats(statsFixture()))
	for i := 1; i < len(rels); i++ {
		if rels[i].Strength > rels[i-1].Strength {
			t.Fatalf("not sorted at %d: %+v", i, rels)
		}
	}
}

func TestCategorySummaries(t *testing.T) {
	stats := TagStats(statsFixture())
	sums := CategorySummaries(stats, nil)

	byID := map[string]CategorySummary{}
	for _, s := range sums {
		byID[s.CategoryID] = s
	}

	places, ok := byID["places"]
	if !ok {
		t.Fatalf("no places summary: %+v", sums)
	}
	if places.TagCount != 2 || places.TotalUsage != 4 {
		t.Fatalf("places = %+v", places)
	}
	if places.CategoryName != "Places" || places.Color != taxonomy.ColorBlue {
		t.Fatalf("places display = %+v", places)
	}
	if len(places.TopTags) != 2 || places.TopTags[0].ID != "places/city" {
		t.Fatalf("places top tags = %+v", places.TopTags)
	}

	emotions := byID["emotions"]
	if emotions.TagCount != 1 || emotions.TotalUsage != 2 {
		t.Fatalf("emotions = %+v", emotions)
	}
}

func TestCategorySummariesUnknownCategoryBucketsAsUncategorized(t *testing.T) {
	mystery := taxonomy.Tag{ID: "mystery/thing", Label: "Thing", CategoryID: "mystery"}
	sums := CategorySummaries(TagStats([]dream.Dream{
		{ID: "1", Tags: []taxonomy.Tag{mystery}},
	}), nil)

	if len(sums) != 1 {
		t.Fatalf("got %+v", sums)
	}
	if sums[0].CategoryID != taxonomy.UncategorizedID {
		t.Fatalf("bucket = %q", sums[0].CategoryID)
	}
	if sums[0].CategoryName != "Uncategorized" || sums[0].Color != taxonomy.UncategorizedColor {
		t.Fatalf("display = %+v", sums[0])
	}
}

func TestCategorySummariesUserCategoryWins(t *testing.T) {
	cats := []taxonomy.Category{{ID: "places", Name: "Locations", Color: taxonomy.ColorTeal}}
	sums := CategorySummaries(TagStats(statsFixture()), cats)
	for _, s := range sums {
		if s.CategoryID == "places" {
			if s.CategoryName != "Locations" || s.Color != taxonomy.ColorTeal {
				t.Fatalf("places = %+v", s)
			}
			return
		}
	}
	t.Fatal("no places summary")
}

func TestCategorySummariesTopFiveCap(t *testing.T) {
	dreams := make([]dream.Dream, 0, 7)
	labels := []string{"One", "Two", "Three", "Four", "Five", "Six", "Seven"}
	for i, l := range labels {
		tag := taxonomy.NewTag("places", l, true)
		// Descending usage so the cap keeps the first five labels.
		for j := 0; j <= len(labels)-i; j++ {
			dreams = append(dreams, dream.Dream{
				ID:   l + "-" + string(rune('a'+j)),
				Tags: []taxonomy.Tag{tag},
			})
		}
	}

	sums := CategorySummaries(TagStats(dreams), nil)
	if len(sums) != 1 {
		t.Fatalf("got %+v", sums)
	}
	s := sums[0]
	if s.TagCount != 7 {
		t.Fatalf("tag count = %d", s.TagCount)
	}
	if len(s.TopTags) != 5 {
		t.Fatalf("top tags = %d", len(s.TopTags))
	}
	if s.TopTags[0].Label != "One" || s.TopTags[4].Label != "Five" {
		t.Fatalf("top tags = %+v", s.TopTags)
	}
}
