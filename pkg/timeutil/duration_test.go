package timeutil

import (
	"testing"
	"time"
)

func TestParseOffset(t *testing.T) {
	cases := []struct {
		in   string
		want time.Duration
	}{
		{"3d", 3 * 24 * time.Hour},
		{"1w", 7 * 24 * time.Hour},
		{"1w2d6h", 9*24*time.Hour + 6*time.Hour},
		{"90 mins", 90 * time.Minute},
	}
	for _, c := range cases {
		got, err := ParseOffset(c.in)
		if err != nil {
			t.Fatalf("%q: %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("%q: expected %v, got %v", c.in, c.want, got)
		}
	}
}

func TestParseOffsetRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "soon", "3x", "-1d"} {
		if _, err := ParseOffset(in); err == nil {
			t.Fatalf("%q: expected error", in)
		}
	}
}

func TestDistance(t *testing.T) {
	now := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)

	if got := Distance(now, now.Add(3*24*time.Hour)); got != "3d" {
		t.Fatalf("expected 3d, got %q", got)
	}
	if got := Distance(now, now.Add(-2*time.Hour)); got != "2h overdue" {
		t.Fatalf("expected 2h overdue, got %q", got)
	}
	if got := Distance(now, time.Time{}); got != "" {
		t.Fatalf("expected empty for zero deadline, got %q", got)
	}
}
