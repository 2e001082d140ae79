package ledger

import (
	"strings"
	"testing"
	"time"
)

const sampleDoc = `ACTIVE_THEME: Neon Layout
ENABLED_GEAR: Studio Cat
PURCHASE: Studio Cat
PURCHASE: Neon Layout
PURCHASE: Studio Cat
CLAIMED: weekly_warrior
TASK_DONE: 28/12/2025_write_50_words_RC15
TASK_DONE: 28/12/2025_write_50_words_RC15
NOTIFIED: 29/12/2025

DATE: 29/12/2025
WORD: OBSESSION
LYRICS:
bars about obsession
second line
------------------------------
DATE: 28/12/2025
LYRICS:
just one line
---
DATE: 27/12/2025
LYRICS:

------------------------------
`

func TestParseSampleDocument(t *testing.T) {
	l := Parse(sampleDoc)

	if l.Theme != "Neon Layout" {
		t.Fatalf("Theme = %q", l.Theme)
	}
	if len(l.Gear) != 1 || l.Gear[0] != "Studio Cat" {
		t.Fatalf("Gear = %v", l.Gear)
	}
	if len(l.Purchases) != 2 {
		t.Fatalf("Purchases = %v, want deduplicated pair", l.Purchases)
	}
	if !l.HasPurchase("Studio Cat") || !l.HasPurchase("Neon Layout") {
		t.Fatalf("Purchases = %v", l.Purchases)
	}
	if !l.HasClaim("weekly_warrior") {
		t.Fatalf("Claims = %v", l.Claims)
	}
	if len(l.Tasks) != 1 {
		t.Fatalf("Tasks = %v, want one deduplicated record", l.Tasks)
	}
	k := l.Tasks[0]
	if k.TaskID != "write_50_words" || !k.HasReward || k.Reward != 15 {
		t.Fatalf("Tasks[0] = %+v", k)
	}

	// The whitespace-only 27/12 block must be dropped.
	if len(l.Entries) != 2 {
		t.Fatalf("Entries = %d, want 2", len(l.Entries))
	}
	e := l.Entries[0]
	if e.Date != NewDate(2025, time.December, 29) || e.Word != "OBSESSION" {
		t.Fatalf("Entries[0] = %+v", e)
	}
	if e.Text != "bars about obsession\nsecond line" {
		t.Fatalf("Entries[0].Text = %q", e.Text)
	}
	// The 3-dash separator must still terminate the 28/12 block.
	if l.Entries[1].Text != "just one line" {
		t.Fatalf("Entries[1].Text = %q", l.Entries[1].Text)
	}
}

func TestParseEmptyAndGarbage(t *testing.T) {
	if l := Parse(""); len(l.Entries) != 0 || l.Theme != "" {
		t.Fatalf("Parse(\"\") = %+v", l)
	}

	l := Parse("complete nonsense\nDATE: not-a-date\nLYRICS:\norphaned text\nPURCHASE:\n")
	if len(l.Entries) != 0 {
		t.Fatalf("entries from garbage: %+v", l.Entries)
	}
	if len(l.Purchases) != 0 {
		t.Fatalf("purchase with empty name: %v", l.Purchases)
	}
}

func TestParseBlockWithoutContentMarker(t *testing.T) {
	l := Parse("DATE: 29/12/2025\nno lyrics marker here\n------------------------------\n")
	if len(l.Entries) != 0 {
		t.Fatalf("block without LYRICS yielded entries: %+v", l.Entries)
	}
}

func TestParseExposesDuplicateDates(t *testing.T) {
	doc := strings.Join([]string{
		"DATE: 29/12/2025",
		"LYRICS:",
		"newest version",
		"------------------------------",
		"DATE: 29/12/2025",
		"LYRICS:",
		"older version",
		"------------------------------",
	}, "\n")

	l := Parse(doc)
	if len(l.Entries) != 2 {
		t.Fatalf("Entries = %d, want both duplicate occurrences", len(l.Entries))
	}
	e, ok := l.EntryFor(NewDate(2025, time.December, 29))
	if !ok || e.Text != "newest version" {
		t.Fatalf("EntryFor = %+v (first occurrence from the top must win)", e)
	}
	if !l.EntryDates()[NewDate(2025, time.December, 29)] {
		t.Fatalf("EntryDates missing duplicated date")
	}
}

func TestParseLastThemeWins(t *testing.T) {
	l := Parse("ACTIVE_THEME: Neon Layout\nACTIVE_THEME: Gold Studio\n")
	if l.Theme != "Gold Studio" {
		t.Fatalf("Theme = %q, want last occurrence", l.Theme)
	}
}

func TestTaskKeyRoundTrip(t *testing.T) {
	k := TaskKey{Date: NewDate(2025, time.December, 28), TaskID: "daily_bonus", Reward: 50, HasReward: true}
	s := k.String()
	if s != "28/12/2025_daily_bonus_RC50" {
		t.Fatalf("String() = %q", s)
	}
	back, err := ParseTaskKey(s)
	if err != nil {
		t.Fatalf("ParseTaskKey: %v", err)
	}
	if back != k {
		t.Fatalf("round trip = %+v, want %+v", back, k)
	}

	legacy, err := ParseTaskKey("28/12/2025_keep_streak")
	if err != nil {
		t.Fatalf("ParseTaskKey legacy: %v", err)
	}
	if legacy.TaskID != "keep_streak" || legacy.HasReward {
		t.Fatalf("legacy key = %+v", legacy)
	}

	for _, bad := range []string{"", "keep_streak", "28/12/2025_", "2025-12-28_x"} {
		if _, err := ParseTaskKey(bad); err == nil {
			t.Fatalf("ParseTaskKey(%q): expected error", bad)
		}
	}
}
