package weekid

import (
	"testing"
	"time"
)

func TestNextAdvancesOneWeek(t *testing.T) {
	got, err := Next("2025-W46")
	if err != nil {
		t.Fatal(err)
	}
	if got != "2025-W47" {
		t.Fatalf("Next(2025-W46) = %s, want 2025-W47", got)
	}
}

func TestNextRollsOverYear(t *testing.T) {
	// ISO 2025 has 52 weeks; the week after 2025-W52 is 2026-W01.
	got, err := Next("2025-W52")
	if err != nil {
		t.Fatal(err)
	}
	if got != "2026-W01" {
		t.Fatalf("Next(2025-W52) = %s, want 2026-W01", got)
	}
}

func TestParseAcceptsLegacyForm(t *testing.T) {
	y, w, err := Parse("Week_2025_46")
	if err != nil {
		t.Fatal(err)
	}
	if y != 2025 || w != 46 {
		t.Fatalf("Parse(Week_2025_46) = %d, %d", y, w)
	}
	if Format(y, w) != "2025-W46" {
		t.Fatalf("Format(%d, %d) = %s", y, w, Format(y, w))
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	for _, id := range []string{"", "2025W46", "2025-W00", "2025-W54", "Week_2025"} {
		if _, _, err := Parse(id); err == nil {
			t.Fatalf("expected error for %q", id)
		}
	}
}

func TestSequenceLengthAndMonotonicity(t *testing.T) {
	seq, err := Sequence("2025-W46", 54, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(seq) != 54 {
		t.Fatalf("got %d weeks, want 54", len(seq))
	}
	if seq[0] != "2025-W46" {
		t.Fatalf("sequence starts at %s", seq[0])
	}
	seen := make(map[string]bool)
	prev := time.Time{}
	for _, id := range seq {
		if seen[id] {
			t.Fatalf("duplicate week id %s", id)
		}
		seen[id] = true
		mon, err := Monday(id)
		if err != nil {
			t.Fatal(err)
		}
		if !prev.IsZero() && mon.Sub(prev) != 7*24*time.Hour {
			t.Fatalf("gap between %s and previous week: %v", id, mon.Sub(prev))
		}
		prev = mon
	}
}

func TestSequenceExcludingStart(t *testing.T) {
	seq, err := Sequence("2025-W46", 2, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(seq) != 2 || seq[0] != "2025-W47" || seq[1] != "2025-W48" {
		t.Fatalf("unexpected sequence %v", seq)
	}
}

func TestStampUsesLocalCalendar(t *testing.T) {
	// 23:30 UTC is already the next day in Riyadh (+03).
	now := time.Date(2025, 11, 10, 23, 30, 0, 0, time.UTC)
	date, clock := Stamp(now)
	if date != "2025-11-11" {
		t.Fatalf("date = %s, want 2025-11-11", date)
	}
	if clock != "02:30:00" {
		t.Fatalf("time = %s, want 02:30:00", clock)
	}
}
