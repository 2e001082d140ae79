package engine

import (
	"strings"

	"rapjournal/internal/ledger"
)

// Credit constants. All arithmetic is integer-only so the same ledger always
// derives the same balance.
const (
	// SessionCredit is earned once per distinct non-empty entry date.
	SessionCredit = 10
	// WordCreditStep RC are earned per WordCreditUnit words written, floor
	// division, across the whole ledger.
	WordCreditStep = 2
	WordCreditUnit = 10
)

// Metrics is everything derived from a parsed ledger. Stored nowhere;
// recomputed from the document on every load so it can never drift.
type Metrics struct {
	Sessions      int
	TotalWords    int
	WordsToday    int
	CurrentStreak int
	LongestStreak int
	ItemsOwned    int
	Earned        int
	Spent         int
	Balance       int
}

// WordCount is the credit-bearing word count: whitespace split cardinality,
// no stemming or cleanup.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// WordTotals sums word counts over the canonical entry per date. Duplicate
// occurrences beyond the first contribute nothing. The result is a pure
// function of the entry list and stable under reordering of distinct dates.
func WordTotals(entries []ledger.Entry) (total int, byDate map[ledger.Date]int) {
	byDate = make(map[ledger.Date]int, len(entries))
	for _, e := range entries {
		if _, ok := byDate[e.Date]; ok {
			continue
		}
		n := WordCount(e.Text)
		if n == 0 {
			continue
		}
		byDate[e.Date] = n
		total += n
	}
	return total, byDate
}

// Streak counts consecutive days with a non-empty entry ending at today or
// yesterday. If neither of those days has an entry the streak is 0 no matter
// how long an older run is. Pure function of the date set and today; the set
// is a map but the walk-back never depends on iteration order.
func Streak(dates map[ledger.Date]bool, today ledger.Date) int {
	cur := today
	if !dates[cur] {
		cur = today.Prev()
		if !dates[cur] {
			return 0
		}
	}
	streak := 0
	for dates[cur] {
		streak++
		cur = cur.Prev()
	}
	return streak
}

// LongestStreak returns the longest run of consecutive entry days anywhere in
// the set. Unlike the current streak this is monotonic: adding entries can
// only grow it, which makes it a valid achievement progress metric.
func LongestStreak(dates map[ledger.Date]bool) int {
	longest := 0
	for d := range dates {
		if dates[d.Prev()] {
			continue // not the start of a run
		}
		n := 0
		for cur := d; dates[cur]; cur = cur.Next() {
			n++
		}
		if n > longest {
			longest = n
		}
	}
	return longest
}

// Balance recomputes earned, spent and their difference from the ledger.
//
//	earned = sessions*SessionCredit + (totalWords/WordCreditUnit)*WordCreditStep
//	       + claimed achievement rewards + claimed task rewards
//	spent  = sum of catalog prices over the deduplicated purchase set
//
// earned is always >= 0 and monotonic in entries and claims. The balance may
// go negative when a hand-edited ledger spends more than it earned; that is
// reported, never treated as an error.
func Balance(l *ledger.Ledger, catalog []Item) (earned, spent, balance int) {
	totalWords, _ := WordTotals(l.Entries)
	sessions := len(l.EntryDates())

	earned = sessions*SessionCredit + (totalWords/WordCreditUnit)*WordCreditStep
	for _, id := range l.Claims {
		earned += AchievementReward(id)
	}
	for _, k := range l.Tasks {
		earned += taskReward(k)
	}

	for _, item := range l.Purchases {
		spent += Price(catalog, item)
	}
	return earned, spent, earned - spent
}

// taskReward resolves the credit for one task-completion record. Keys written
// by this engine embed the amount. Legacy keys are re-priced by re-running
// the deterministic quest selection for the key's own date, which yields the
// same reward the user saw that day.
func taskReward(k ledger.TaskKey) int {
	if k.HasReward {
		return k.Reward
	}
	if k.TaskID == DailyBonusID {
		return DailyBonusReward
	}
	for _, q := range SelectDailyQuests(k.Date) {
		if q.ID == k.TaskID {
			return q.Reward
		}
	}
	return 0
}

// ComputeMetrics derives the full metric set for a ledger as of today.
func ComputeMetrics(l *ledger.Ledger, catalog []Item, today ledger.Date) Metrics {
	totalWords, byDate := WordTotals(l.Entries)
	dates := l.EntryDates()
	earned, spent, balance := Balance(l, catalog)

	return Metrics{
		Sessions:      len(dates),
		TotalWords:    totalWords,
		WordsToday:    byDate[today],
		CurrentStreak: Streak(dates, today),
		LongestStreak: LongestStreak(dates),
		ItemsOwned:    len(l.Purchases),
		Earned:        earned,
		Spent:         spent,
		Balance:       balance,
	}
}
