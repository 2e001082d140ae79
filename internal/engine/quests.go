package engine

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"strings"

	"rapjournal/internal/ledger"
	"rapjournal/internal/prompts"
)

// QuestsPerDay quests are drawn from the pool for every date.
const QuestsPerDay = 3

// DailyBonusID is the task id of the once-per-date "all quests claimed"
// bonus, and DailyBonusReward its credit.
const (
	DailyBonusID     = "daily_bonus"
	DailyBonusReward = 50
)

// Quest is one daily objective. The predicate runs over the day's derived
// metrics only, so satisfaction is recomputable from the ledger at any time.
type Quest struct {
	ID          string
	Description string
	Reward      int
	satisfied   func(day DayContext) bool
}

// QuestStatus is a quest with its satisfied/claimed flags resolved against a
// ledger.
type QuestStatus struct {
	ID          string
	Description string
	Reward      int
	Satisfied   bool
	Claimed     bool
}

// BonusStatus reports the daily all-quests bonus.
type BonusStatus struct {
	Reward    int
	Satisfied bool
	Claimed   bool
}

// DayContext is what quest predicates see: the canonical entry text for the
// date plus the derived numbers.
type DayContext struct {
	Date   ledger.Date
	Text   string
	Words  int
	Lines  int
	Streak int
}

// questSeed hashes the date string into a PRNG seed. Reproducibility is the
// only requirement here, not randomness quality.
func questSeed(d ledger.Date) int64 {
	h := fnv.New64a()
	h.Write([]byte(d.String()))
	return int64(h.Sum64())
}

// SelectDailyQuests returns the quest set for a date: a fixed-size subset of
// the pool, with parametric thresholds resolved, chosen by a PRNG seeded
// from the date string. Two calls with the same date always produce the same
// list in the same order.
func SelectDailyQuests(d ledger.Date) []Quest {
	r := rand.New(rand.NewSource(questSeed(d)))

	quests := make([]Quest, 0, QuestsPerDay)
	for _, i := range r.Perm(len(questPool)) {
		if len(quests) == QuestsPerDay {
			break
		}
		quests = append(quests, questPool[i](d, r))
	}
	return quests
}

// EvaluateDailyQuests resolves today's quest list against the ledger.
func EvaluateDailyQuests(l *ledger.Ledger, today ledger.Date) ([]QuestStatus, BonusStatus) {
	day := dayContext(l, today)

	quests := SelectDailyQuests(today)
	statuses := make([]QuestStatus, 0, len(quests))
	allClaimed := true
	for _, q := range quests {
		st := QuestStatus{
			ID:          q.ID,
			Description: q.Description,
			Reward:      q.Reward,
			Satisfied:   q.satisfied(day),
			Claimed:     l.TaskDone(today, q.ID),
		}
		if !st.Claimed {
			allClaimed = false
		}
		statuses = append(statuses, st)
	}

	bonus := BonusStatus{
		Reward:    DailyBonusReward,
		Satisfied: allClaimed && len(statuses) > 0,
		Claimed:   l.TaskDone(today, DailyBonusID),
	}
	return statuses, bonus
}

// QuestByID finds a quest in today's selection.
func QuestByID(today ledger.Date, id string) (Quest, bool) {
	for _, q := range SelectDailyQuests(today) {
		if q.ID == id {
			return q, true
		}
	}
	return Quest{}, false
}

func dayContext(l *ledger.Ledger, today ledger.Date) DayContext {
	day := DayContext{Date: today, Streak: Streak(l.EntryDates(), today)}
	if e, ok := l.EntryFor(today); ok {
		day.Text = e.Text
		day.Words = WordCount(e.Text)
		if day.Words > 0 {
			day.Lines = len(strings.Split(strings.TrimSpace(e.Text), "\n"))
		}
	}
	return day
}

// questPool builds one quest per slot. Parametric quests draw their
// threshold from the PRNG, and the threshold is baked into the quest id so a
// TASK_DONE record stays matched to the exact objective it rewarded.
var questPool = []func(d ledger.Date, r *rand.Rand) Quest{
	func(_ ledger.Date, r *rand.Rand) Quest {
		target := wordTargets[r.Intn(len(wordTargets))]
		return Quest{
			ID:          fmt.Sprintf("write_%d_words", target),
			Description: fmt.Sprintf("Write at least %d words today", target),
			Reward:      10 + target/10,
			satisfied:   func(day DayContext) bool { return day.Words >= target },
		}
	},
	func(_ ledger.Date, r *rand.Rand) Quest {
		target := lineTargets[r.Intn(len(lineTargets))]
		return Quest{
			ID:          fmt.Sprintf("write_%d_lines", target),
			Description: fmt.Sprintf("Write at least %d lines today", target),
			Reward:      10 + target*2,
			satisfied:   func(day DayContext) bool { return day.Lines >= target },
		}
	},
	func(d ledger.Date, _ *rand.Rand) Quest {
		word := prompts.WordOfDay(d).Word
		return Quest{
			ID:          "use_daily_word",
			Description: fmt.Sprintf("Use the word of the day (%s) in your lyrics", strings.ToUpper(word)),
			Reward:      25,
			satisfied: func(day DayContext) bool {
				return containsFold(day.Text, word)
			},
		}
	},
	func(d ledger.Date, _ *rand.Rand) Quest {
		rhymes := prompts.WordOfDay(d).Rhymes
		return Quest{
			ID:          "rhyme_time",
			Description: "Land one of today's suggested rhymes",
			Reward:      20,
			satisfied: func(day DayContext) bool {
				for _, rh := range rhymes {
					if containsFold(day.Text, rh) {
						return true
					}
				}
				return false
			},
		}
	},
	func(_ ledger.Date, _ *rand.Rand) Quest {
		return Quest{
			ID:          "keep_streak",
			Description: "Keep the streak alive (write on a second consecutive day)",
			Reward:      15,
			satisfied:   func(day DayContext) bool { return day.Streak >= 2 },
		}
	},
}

var (
	wordTargets = []int{30, 50, 80, 120}
	lineTargets = []int{4, 8, 12}
)

func containsFold(haystack, needle string) bool {
	if needle == "" {
		return false
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
