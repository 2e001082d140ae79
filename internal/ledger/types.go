package ledger

import (
	"fmt"
	"strconv"
	"strings"
)

// Entry is one journal entry: the user's text for a single calendar date.
// Word is the prompt word that was on display when the entry was written; it
// is recorded for posterity but carries no credit.
type Entry struct {
	Date Date
	Word string
	Text string
}

// TaskKey identifies one claimed daily-task reward: date + task id, with the
// credited amount embedded so old documents keep paying out the same number
// even if the quest pool changes later.
type TaskKey struct {
	Date      Date
	TaskID    string
	Reward    int
	HasReward bool
}

// String renders the composite key: DD/MM/YYYY_<task>[_RC<amount>].
func (k TaskKey) String() string {
	s := k.Date.String() + "_" + k.TaskID
	if k.HasReward {
		s += "_RC" + strconv.Itoa(k.Reward)
	}
	return s
}

// ParseTaskKey parses a composite task key. The task id itself may contain
// underscores; the date prefix and the optional trailing _RC<amount> are
// fixed-shape, so both are peeled off the ends.
func ParseTaskKey(s string) (TaskKey, error) {
	const dateLen = len(DateLayout) // "02/01/2006" and a date render to the same width
	if len(s) < dateLen+2 || s[dateLen] != '_' {
		return TaskKey{}, fmt.Errorf("task key %q: missing date prefix", s)
	}
	d, err := ParseDate(s[:dateLen])
	if err != nil {
		return TaskKey{}, fmt.Errorf("task key %q: %w", s, err)
	}
	rest := s[dateLen+1:]

	k := TaskKey{Date: d, TaskID: rest}
	if i := strings.LastIndex(rest, "_RC"); i > 0 {
		if n, err := strconv.Atoi(rest[i+3:]); err == nil && n >= 0 {
			k.TaskID = rest[:i]
			k.Reward = n
			k.HasReward = true
		}
	}
	if k.TaskID == "" {
		return TaskKey{}, fmt.Errorf("task key %q: empty task id", s)
	}
	return k, nil
}

// Ledger is the parsed view of the whole persisted document. It is a plain
// value: every method that "mutates" does so on a pointer receiver, and the
// single source of truth remains the rendered document.
type Ledger struct {
	Theme     string
	Gear      []string // enabled cosmetic toggles, set semantics
	Purchases []string // owned items, set semantics
	Claims    []string // claimed achievement ids, set semantics
	Tasks     []TaskKey
	// Entries holds every DATE block in document order, duplicates included.
	// Callers choose the reconciliation rule: EntryFor for the canonical
	// value, EntryDates for presence.
	Entries []Entry
}

// HasPurchase reports whether the item is in the effective inventory.
func (l *Ledger) HasPurchase(item string) bool {
	return containsString(l.Purchases, item)
}

// HasClaim reports whether the achievement id has been claimed.
func (l *Ledger) HasClaim(id string) bool {
	return containsString(l.Claims, id)
}

// HasGear reports whether a cosmetic toggle is enabled.
func (l *Ledger) HasGear(name string) bool {
	return containsString(l.Gear, name)
}

// TaskDone reports whether the (date, task) pair has been claimed.
func (l *Ledger) TaskDone(d Date, taskID string) bool {
	for _, k := range l.Tasks {
		if k.Date == d && k.TaskID == taskID {
			return true
		}
	}
	return false
}

// EntryFor returns the canonical entry for a date: the first occurrence from
// the top of the document, matching the most-recent-first prepend convention.
func (l *Ledger) EntryFor(d Date) (Entry, bool) {
	for _, e := range l.Entries {
		if e.Date == d {
			return e, true
		}
	}
	return Entry{}, false
}

// EntryDates returns the set of dates that have at least one non-empty entry.
func (l *Ledger) EntryDates() map[Date]bool {
	dates := make(map[Date]bool, len(l.Entries))
	for _, e := range l.Entries {
		if strings.TrimSpace(e.Text) != "" {
			dates[e.Date] = true
		}
	}
	return dates
}

// SetEntry stores the canonical entry for its date: it replaces the first
// occurrence and drops any later duplicates, or prepends a new block.
func (l *Ledger) SetEntry(e Entry) {
	out := l.Entries[:0]
	placed := false
	for _, cur := range l.Entries {
		if cur.Date == e.Date {
			if !placed {
				out = append(out, e)
				placed = true
			}
			continue
		}
		out = append(out, cur)
	}
	l.Entries = out
	if !placed {
		l.Entries = append([]Entry{e}, l.Entries...)
	}
}

// AddPurchase records an item purchase. Duplicates are no-ops so a double
// record can never double-charge.
func (l *Ledger) AddPurchase(item string) {
	if !l.HasPurchase(item) {
		l.Purchases = append(l.Purchases, item)
	}
}

// AddClaim records an achievement claim, once.
func (l *Ledger) AddClaim(id string) {
	if !l.HasClaim(id) {
		l.Claims = append(l.Claims, id)
	}
}

// AddTask records a task completion, unique per (date, task).
func (l *Ledger) AddTask(k TaskKey) {
	if !l.TaskDone(k.Date, k.TaskID) {
		l.Tasks = append(l.Tasks, k)
	}
}

// ToggleGear flips a cosmetic toggle and reports the new state.
func (l *Ledger) ToggleGear(name string) bool {
	for i, g := range l.Gear {
		if g == name {
			l.Gear = append(l.Gear[:i], l.Gear[i+1:]...)
			return false
		}
	}
	l.Gear = append(l.Gear, name)
	return true
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
