package prompts

import (
	"testing"
	"time"

	"rapjournal/internal/ledger"
)

func TestDailyPickIsDeterministic(t *testing.T) {
	d := ledger.NewDate(2025, time.December, 29)
	w1 := WordOfDay(d)
	w2 := WordOfDay(d)
	if w1.Word != w2.Word {
		t.Fatalf("WordOfDay not stable: %q vs %q", w1.Word, w2.Word)
	}
	if w1.Word == "" || len(w1.Rhymes) == 0 {
		t.Fatalf("WordOfDay = %+v", w1)
	}
	if PromptOfDay(d) != PromptOfDay(d) {
		t.Fatalf("PromptOfDay not stable")
	}
	if MotivationOfDay(d) == "" {
		t.Fatalf("MotivationOfDay empty")
	}
}

func TestDifferentDaysVary(t *testing.T) {
	a := ledger.NewDate(2025, time.March, 1)
	matched := 0
	for i := 1; i < 5; i++ {
		if WordOfDay(a.AddDays(i)).Word == WordOfDay(a).Word {
			matched++
		}
	}
	if matched == 4 {
		t.Fatalf("WordOfDay identical across five consecutive days")
	}
}

func TestYearDayWrapsBank(t *testing.T) {
	// Day 365 exceeds every bank's length; modular indexing must not panic.
	d := ledger.NewDate(2025, time.December, 31)
	_ = WordOfDay(d)
	_ = PromptOfDay(d)
	_ = MotivationOfDay(d)
}
