package engine

import "rapjournal/internal/ledger"

// Achievement is a permanent milestone with a monotonic progress metric.
// Satisfied means the metric reached its target; Claimed means the one-time
// reward has been collected.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Target      int
	Current     int
	Reward      int
	Satisfied   bool
	Claimed     bool
}

// AchievementChecker resolves the fixed achievement catalog against a ledger.
type AchievementChecker struct {
	ledger  *ledger.Ledger
	metrics Metrics
}

func NewAchievementChecker(l *ledger.Ledger, m Metrics) *AchievementChecker {
	return &AchievementChecker{ledger: l, metrics: m}
}

// Achievements returns the full catalog with progress and flags.
func (c *AchievementChecker) Achievements() []Achievement {
	return []Achievement{
		// Session milestones
		c.sessionAchievement("first_bars", "First Bars", "Write your first entry", "🎤", 1, 20),
		c.sessionAchievement("regular", "Regular", "Write 10 entries", "📓", 10, 50),
		c.sessionAchievement("resident", "Resident", "Write 50 entries", "🏠", 50, 150),

		// Word-count milestones
		c.wordAchievement("wordsmith", "Wordsmith", "Write 1,000 words total", "📝", 1000, 100),
		c.wordAchievement("word_machine", "Word Machine", "Write 10,000 words total", "⚙️", 10000, 500),

		// Streak milestones (longest ever, so progress never regresses)
		c.streakAchievement("weekly_warrior", "Weekly Warrior", "Hold a 7 day streak", "🎖️", 7, 100),
		c.streakAchievement("rap_legend", "Rap Legend", "Hold a 30 day streak", "👑", 30, 1000),

		// Inventory milestones
		c.inventoryAchievement("collector", "Collector", "Own 3 shop items", "🛒", 3, 75),
	}
}

// CountEarned returns how many achievements are satisfied.
func (c *AchievementChecker) CountEarned() int {
	count := 0
	for _, a := range c.Achievements() {
		if a.Satisfied {
			count++
		}
	}
	return count
}

// CountTotal returns the catalog size.
func (c *AchievementChecker) CountTotal() int {
	return len(c.Achievements())
}

// ByID finds one achievement in the catalog.
func (c *AchievementChecker) ByID(id string) (Achievement, bool) {
	for _, a := range c.Achievements() {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}

func (c *AchievementChecker) sessionAchievement(id, name, desc, icon string, target, reward int) Achievement {
	return c.build(id, name, desc, icon, target, reward, c.metrics.Sessions)
}

func (c *AchievementChecker) wordAchievement(id, name, desc, icon string, target, reward int) Achievement {
	return c.build(id, name, desc, icon, target, reward, c.metrics.TotalWords)
}

func (c *AchievementChecker) streakAchievement(id, name, desc, icon string, target, reward int) Achievement {
	return c.build(id, name, desc, icon, target, reward, c.metrics.LongestStreak)
}

func (c *AchievementChecker) inventoryAchievement(id, name, desc, icon string, target, reward int) Achievement {
	return c.build(id, name, desc, icon, target, reward, c.metrics.ItemsOwned)
}

func (c *AchievementChecker) build(id, name, desc, icon string, target, reward, current int) Achievement {
	return Achievement{
		ID:          id,
		Name:        name,
		Description: desc,
		Icon:        icon,
		Target:      target,
		Current:     current,
		Reward:      reward,
		Satisfied:   current >= target,
		Claimed:     c.ledger.HasClaim(id),
	}
}

// AchievementReward returns the claim reward for an id, 0 for ids that are
// not in the catalog (hand-edited or retired claims still parse; they just
// pay nothing).
func AchievementReward(id string) int {
	for _, a := range achievementRewards {
		if a.id == id {
			return a.reward
		}
	}
	return 0
}

// Kept alongside the catalog above; Balance needs rewards without a ledger.
var achievementRewards = []struct {
	id     string
	reward int
}{
	{"first_bars", 20},
	{"regular", 50},
	{"resident", 150},
	{"wordsmith", 100},
	{"word_machine", 500},
	{"weekly_warrior", 100},
	{"rap_legend", 1000},
	{"collector", 75},
}
