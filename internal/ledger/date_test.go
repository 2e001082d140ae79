package ledger

import (
	"testing"
	"time"
)

func TestParseDateRoundTrip(t *testing.T) {
	d, err := ParseDate("05/01/2026")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d.Year != 2026 || d.Month != time.January || d.Day != 5 {
		t.Fatalf("ParseDate = %+v", d)
	}
	if got := d.String(); got != "05/01/2026" {
		t.Fatalf("String() = %q, want 05/01/2026", got)
	}
}

func TestParseDateRejectsSloppyTokens(t *testing.T) {
	for _, in := range []string{"", "5/1/2026", "2026/01/05", "29/02/2025", "05-01-2026", "32/01/2026"} {
		if _, err := ParseDate(in); err == nil {
			t.Fatalf("ParseDate(%q): expected error", in)
		}
	}
}

func TestPrevCrossesMonthAndYear(t *testing.T) {
	d := NewDate(2026, time.January, 1)
	if got := d.Prev(); got != NewDate(2025, time.December, 31) {
		t.Fatalf("Prev() = %v", got)
	}
	if got := NewDate(2026, time.March, 1).Prev(); got != NewDate(2026, time.February, 28) {
		t.Fatalf("Prev() across Feb = %v", got)
	}
	if got := NewDate(2024, time.March, 1).Prev(); got != NewDate(2024, time.February, 29) {
		t.Fatalf("Prev() leap Feb = %v", got)
	}
}

func TestBeforeAndAddDays(t *testing.T) {
	a := NewDate(2025, time.December, 27)
	b := a.AddDays(3)
	if b != NewDate(2025, time.December, 30) {
		t.Fatalf("AddDays(3) = %v", b)
	}
	if !a.Before(b) || b.Before(a) {
		t.Fatalf("ordering broken: %v vs %v", a, b)
	}
}
