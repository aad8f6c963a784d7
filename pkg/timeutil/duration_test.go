package timeutil

import (
	"testing"
	"time"
)

func TestParseWindowDefault(t *testing.T) {
	dur, label, err := ParseWindow("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := 7 * 24 * time.Hour
	if dur != want {
		t.Fatalf("expected %v, got %v", want, dur)
	}
	if label != "1w" {
		t.Fatalf("expected label 1w, got %s", label)
	}
}

func TestParseWindowComposite(t *testing.T) {
	dur, label, err := ParseWindow("1w2d")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := (7 + 2) * 24 * time.Hour
	if dur != want {
		t.Fatalf("expected %v, got %v", want, dur)
	}
	if label != "1w2d" {
		t.Fatalf("unexpected label: %s", label)
	}
}

func TestParseWindowInvalid(t *testing.T) {
	if _, _, err := ParseWindow("noop"); err == nil {
		t.Fatalf("expected error for invalid window")
	}
	if _, _, err := ParseWindow("6h"); err == nil {
		t.Fatalf("expected error for sub-day unit")
	}
}

func TestWindowStartDate(t *testing.T) {
	now := time.Date(2024, 3, 9, 15, 30, 0, 0, time.UTC)

	got, err := WindowStartDate(now, "1w")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "2024-03-02" {
		t.Fatalf("expected 2024-03-02, got %s", got)
	}

	if got, _ = WindowStartDate(now, "2d"); got != "2024-03-07" {
		t.Fatalf("expected 2024-03-07, got %s", got)
	}
}
