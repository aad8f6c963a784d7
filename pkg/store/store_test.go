package store

import (
	"context"
	"testing"
	"time"

	"tableflip.dev/oneiro/pkg/dream"
	"tableflip.dev/oneiro/pkg/taxonomy"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string {
	return t.path
}

func TestMissingCollectionsReadEmpty(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	dreams, err := p.Dreams()
	if err != nil {
		t.Fatalf("dreams: %v", err)
	}
	if len(dreams) != 0 {
		t.Fatalf("expected empty collection, got %d", len(dreams))
	}

	v, err := p.SchemaVersion()
	if err != nil {
		t.Fatalf("schema version: %v", err)
	}
	if v != 0 {
		t.Fatalf("expected no schema marker, got %d", v)
	}
}

func TestDreamsRoundTrip(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	in := []dream.Dream{{
		ID:          "d1",
		Title:       "Storm over the bay",
		Date:        "2024-01-15",
		Time:        "06:30:00",
		Description: "waves",
		Tags:        []taxonomy.Tag{{ID: "places/city", Label: "City", CategoryID: "places"}},
		CitedDreams: []string{"d2"},
		CitedTags:   []string{},
		CreatedAt:   "2024-01-15T07:00:00Z",
		UpdatedAt:   "2024-01-15T07:00:00Z",
	}}
	if err := p.SaveDreams(in); err != nil {
		t.Fatalf("save: %v", err)
	}

	out, err := p.Dreams()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("got %d dreams", len(out))
	}
	got := out[0]
	if got.ID != "d1" || got.Title != in[0].Title || got.Date != in[0].Date {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	if len(got.Tags) != 1 || got.Tags[0].ID != "places/city" {
		t.Fatalf("tags mismatch: %+v", got.Tags)
	}
	if len(got.CitedDreams) != 1 || got.CitedDreams[0] != "d2" {
		t.Fatalf("citations mismatch: %+v", got.CitedDreams)
	}
}

func TestCategoriesRoundTripNormalizesColor(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	in := []taxonomy.Category{
		{ID: "places", Name: "Places", Color: "blue"},
		{ID: "odd", Name: "Odd", Color: "#abc"},
	}
	if err := p.SaveCategories(in); err != nil {
		t.Fatalf("save: %v", err)
	}
	out, err := p.Categories()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("got %d categories", len(out))
	}
	if out[0].Color != taxonomy.ColorBlue {
		t.Fatalf("preset color mangled: %q", out[0].Color)
	}
	if out[1].Color != "#AABBCC" {
		t.Fatalf("hex color not normalized on read: %q", out[1].Color)
	}
}

func TestSchemaMarkerRoundTrip(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	if err := p.SetSchemaVersion(1); err != nil {
		t.Fatalf("set marker: %v", err)
	}
	v, err := p.SchemaVersion()
	if err != nil {
		t.Fatalf("read marker: %v", err)
	}
	if v != 1 {
		t.Fatalf("got %d", v)
	}
}

func TestLegacyRecordsNormalizedOnRead(t *testing.T) {
	base := t.TempDir()
	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	// A legacy record: no citation arrays, duplicated tags, a bad tag.
	legacy := []byte(`[{"id":"old","title":"Old","date":"2020-05-01","description":"",
		"tags":[{"label":"City","categoryId":"places"},{"label":" city","categoryId":"places"},{"label":""}]}]`)
	pp := p.(*persistence)
	if err := pp.d.Write(keyDreams, legacy); err != nil {
		t.Fatalf("seed legacy file: %v", err)
	}

	out, err := p.Dreams()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("got %d dreams", len(out))
	}
	d := out[0]
	if len(d.Tags) != 1 || d.Tags[0].ID != "places/city" {
		t.Fatalf("legacy tags not normalized: %+v", d.Tags)
	}
	if d.CitedDreams == nil || d.CitedTags == nil {
		t.Fatal("citation arrays should default to empty")
	}
}

func TestWatchEmitsCollectionChange(t *testing.T) {
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow the watcher goroutine to subscribe before writing.
	time.Sleep(50 * time.Millisecond)

	if err := p.SaveDreams([]dream.Dream{{ID: "d1", Title: "t", Date: "2024-01-01"}}); err != nil {
		t.Fatalf("save: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Collection == CollectionDreams {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for dreams change event")
		}
	}
}
