package export

import (
	"strings"
	"testing"
	"time"

	"tableflip.dev/oneiro/pkg/dream"
	"tableflip.dev/oneiro/pkg/taxonomy"
)

func sample() ([]dream.Dream, []dream.Dream) {
	city := taxonomy.Tag{ID: "places/city", Label: "City", CategoryID: "places"}
	active := []dream.Dream{
		{ID: "a", Title: "Harbor", Date: "2024-01-15", Description: "rain",
			Tags: []taxonomy.Tag{city}, CitedDreams: []string{"b"}, CitedTags: []string{}},
		{ID: "b", Title: "School", Date: "2024-02-01", Description: "hallways",
			Tags: []taxonomy.Tag{}, CitedDreams: []string{}, CitedTags: []string{}},
	}
	trashed := []dream.Dream{
		{ID: "t", Title: "Old", Date: "2023-12-01", Description: "gone",
			Tags: []taxonomy.Tag{}, CitedDreams: []string{}, CitedTags: []string{},
			DeletedAt: "2024-01-01T00:00:00.000Z"},
	}
	return active, trashed
}

func TestMarshalParseRoundTrip(t *testing.T) {
	active, trashed := sample()
	data, err := Marshal(active, trashed)
	if err != nil {
		t.Fatal(err)
	}

	f, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	if f.Version != Version {
		t.Fatalf("version = %q", f.Version)
	}
	if f.ExportedAt == "" {
		t.Fatal("exportedAt missing")
	}
	if len(f.Dreams) != 2 || len(f.TrashedDreams) != 1 {
		t.Fatalf("got %d/%d records", len(f.Dreams), len(f.TrashedDreams))
	}
	if f.Dreams[0].ID != "a" || f.Dreams[0].Tags[0].ID != "places/city" {
		t.Fatalf("first dream = %+v", f.Dreams[0])
	}
	if f.TrashedDreams[0].DeletedAt == "" {
		t.Fatal("deletedAt lost in round trip")
	}
}

func TestParseLegacyBareArray(t *testing.T) {
	legacy := `[
	  {"id":"a","title":"Harbor","date":"2024-01-15","description":"rain",
	   "tags":[],"citedDreams":[]}
	]`
	f, err := Parse([]byte(legacy))
	if err != nil {
		t.Fatal(err)
	}
	if len(f.Dreams) != 1 || len(f.TrashedDreams) != 0 {
		t.Fatalf("got %d/%d records", len(f.Dreams), len(f.TrashedDreams))
	}
	if f.Version != "" {
		t.Fatalf("legacy files carry no version, got %q", f.Version)
	}
}

func TestParseDropsInvalidRecords(t *testing.T) {
	mixed := `{"dreams":[
	  {"id":"good","title":"ok","date":"2024-01-01","description":"d","tags":[],"citedDreams":[]},
	  {"id":"no-title","date":"2024-01-01","description":"d","tags":[],"citedDreams":[]},
	  {"id":"bad-tags","title":"t","date":"2024-01-01","description":"d","tags":"nope","citedDreams":[]},
	  {"id":"bad-cited-tags","title":"t","date":"2024-01-01","description":"d","tags":[],"citedDreams":[],"citedTags":7},
	  "not even an object"
	]}`
	f, err := Parse([]byte(mixed))
	if err != nil {
		t.Fatal(err)
	}
	if len(f.Dreams) != 1 || f.Dreams[0].ID != "good" {
		t.Fatalf("got %+v", f.Dreams)
	}
}

func TestParseRejectsGarbageAndEmpty(t *testing.T) {
	if _, err := Parse([]byte("not json")); err == nil {
		t.Fatal("garbage accepted")
	}
	if _, err := Parse([]byte(`{"dreams":[]}`)); err == nil {
		t.Fatal("empty file accepted")
	}
	if _, err := Parse([]byte(`{"dreams":[{"id":"","title":"t","date":"d","description":"x","tags":[],"citedDreams":[]}]}`)); err == nil {
		t.Fatal("all-invalid file accepted")
	}
}

func TestMergeNoCollisionsIsNoOp(t *testing.T) {
	active, trashed := sample()
	m := Merge(File{Dreams: active, TrashedDreams: trashed}, func(string) bool { return false })

	if len(m.Remapped) != 0 {
		t.Fatalf("remapped %+v", m.Remapped)
	}
	if m.Dreams[0].ID != "a" || m.Dreams[0].CitedDreams[0] != "b" {
		t.Fatalf("got %+v", m.Dreams[0])
	}
}

func TestMergeRemapsCollidingIDs(t *testing.T) {
	// The store already holds "x". The batch brings its own "x" plus a dream
	// citing "x": the batch member gets a fresh id and the in-batch citation
	// follows it.
	batch := File{Dreams: []dream.Dream{
		{ID: "x", Title: "Collider", Date: "2024-01-01"},
		{ID: "y", Title: "Citer", Date: "2024-01-02", CitedDreams: []string{"x"}},
	}}
	m := Merge(batch, func(id string) bool { return id == "x" })

	fresh, ok := m.Remapped["x"]
	if !ok || fresh == "x" {
		t.Fatalf("remap = %+v", m.Remapped)
	}
	if m.Dreams[0].ID != fresh {
		t.Fatalf("collider id = %q", m.Dreams[0].ID)
	}
	if m.Dreams[1].CitedDreams[0] != fresh {
		t.Fatalf("citation = %q, want %q", m.Dreams[1].CitedDreams[0], fresh)
	}
}

func TestMergeKeepsReferencesToPreExistingIDs(t *testing.T) {
	// "x" exists in the store but is NOT in the batch; the citation must
	// keep pointing at the pre-existing record.
	batch := File{Dreams: []dream.Dream{
		{ID: "y", Title: "Citer", Date: "2024-01-02", CitedDreams: []string{"x"}},
	}}
	m := Merge(batch, func(id string) bool { return id == "x" })

	if m.Dreams[0].CitedDreams[0] != "x" {
		t.Fatalf("citation = %q", m.Dreams[0].CitedDreams[0])
	}
}

func TestMergeDeduplicatesWithinBatch(t *testing.T) {
	batch := File{Dreams: []dream.Dream{
		{ID: "dup", Title: "First", Date: "2024-01-01"},
		{ID: "dup", Title: "Second", Date: "2024-01-02"},
	}}
	m := Merge(batch, func(string) bool { return false })

	if m.Dreams[0].ID == m.Dreams[1].ID {
		t.Fatalf("duplicate ids survived: %q", m.Dreams[0].ID)
	}
}

func TestMergeCoversTrashedCollisions(t *testing.T) {
	batch := File{TrashedDreams: []dream.Dream{
		{ID: "t", Title: "Trashed", Date: "2024-01-01"},
	}}
	m := Merge(batch, func(id string) bool { return id == "t" })
	if m.TrashedDreams[0].ID == "t" {
		t.Fatal("trashed collision not remapped")
	}
}

func TestMergeDoesNotAliasInput(t *testing.T) {
	batch := File{Dreams: []dream.Dream{
		{ID: "x", Title: "A", Date: "2024-01-01", CitedDreams: []string{"x"}},
	}}
	m := Merge(batch, func(id string) bool { return id == "x" })

	if batch.Dreams[0].ID != "x" || batch.Dreams[0].CitedDreams[0] != "x" {
		t.Fatalf("input mutated: %+v", batch.Dreams[0])
	}
	if m.Dreams[0].ID == "x" {
		t.Fatal("collision not remapped")
	}
}

func TestFilename(t *testing.T) {
	at := time.Date(2024, 3, 9, 15, 0, 0, 0, time.UTC)
	got := Filename(at)
	if got != "dream-diary-export-2024-03-09.json" {
		t.Fatalf("got %q", got)
	}
	if !strings.HasSuffix(got, ".json") {
		t.Fatalf("got %q", got)
	}
}

func TestResultStatuses(t *testing.T) {
	ok := OK("out.json", 3, 1)
	if ok.Status != StatusOK || ok.Err() != nil {
		t.Fatalf("ok result: %+v", ok)
	}
	if ok.Dreams != 3 || ok.Trashed != 1 || ok.Path != "out.json" {
		t.Fatalf("ok fields: %+v", ok)
	}

	if c := Cancelled(); c.Status != StatusCancelled || c.Err() != nil {
		t.Fatalf("cancelled result: %+v", c)
	}

	e := Errorf("read %s: %s", "in.json", "no such file")
	if e.Status != StatusError {
		t.Fatalf("error result: %+v", e)
	}
	if err := e.Err(); err == nil || err.Error() != "read in.json: no such file" {
		t.Fatalf("error message: %v", err)
	}
}
