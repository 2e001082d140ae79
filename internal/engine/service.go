package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"rapjournal/internal/ledger"
	"rapjournal/internal/prompts"
	"rapjournal/internal/storage"
)

// Service runs the read-modify-write cycle over one ledger document.
// Every operation fetches the document, re-parses it, derives state, applies
// the mutation, renders the canonical form and writes it back with the
// version token from the read. Nothing is cached between calls.
type Service struct {
	store   storage.Store
	catalog []Item
	loc     *time.Location
	now     func() time.Time
}

func NewService(store storage.Store) *Service {
	return &Service{
		store:   store,
		catalog: DefaultCatalog(),
		loc:     ledger.DefaultLocation(),
		now:     time.Now,
	}
}

func (s *Service) SetCatalog(catalog []Item) {
	if len(catalog) > 0 {
		s.catalog = catalog
	}
}

func (s *Service) SetLocation(loc *time.Location) {
	if loc != nil {
		s.loc = loc
	}
}

// SetNow overrides the clock. Tests only.
func (s *Service) SetNow(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

func (s *Service) Catalog() []Item { return s.catalog }

func (s *Service) today() ledger.Date {
	return ledger.DateOf(s.now().In(s.loc))
}

// State is one consistent snapshot: the parsed ledger plus everything
// derived from it for today.
type State struct {
	Ledger       *ledger.Ledger
	Version      string
	Found        bool
	Today        ledger.Date
	Metrics      Metrics
	Quests       []QuestStatus
	Bonus        BonusStatus
	Achievements []Achievement
}

// Load fetches and derives. A missing document is not an error: it is the
// fresh-start state, reported with Found=false so callers can distinguish
// "no journal yet" from "journal unreachable".
func (s *Service) Load(ctx context.Context) (*State, error) {
	today := s.today()

	doc, err := s.store.Fetch(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		l := &ledger.Ledger{}
		return s.derive(l, "", false, today), nil
	}
	if err != nil {
		return nil, fmt.Errorf("journal unreachable: %w", err)
	}

	l := ledger.Parse(doc.Content)
	return s.derive(&l, doc.Version, true, today), nil
}

func (s *Service) derive(l *ledger.Ledger, version string, found bool, today ledger.Date) *State {
	quests, bonus := EvaluateDailyQuests(l, today)
	m := ComputeMetrics(l, s.catalog, today)
	checker := NewAchievementChecker(l, m)
	return &State{
		Ledger:       l,
		Version:      version,
		Found:        found,
		Today:        today,
		Metrics:      m,
		Quests:       quests,
		Bonus:        bonus,
		Achievements: checker.Achievements(),
	}
}

// save renders the ledger and writes it back under the version token the
// state was loaded with. storage.ErrConflict passes through untouched so
// callers can tell the user to retry.
func (s *Service) save(ctx context.Context, st *State) error {
	return s.store.Write(ctx, ledger.Render(*st.Ledger), st.Version)
}

// Init creates an empty ledger document. Fails when one already exists.
func (s *Service) Init(ctx context.Context) error {
	_, err := s.store.Fetch(ctx)
	if err == nil {
		return errors.New("journal already initialized")
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("journal unreachable: %w", err)
	}
	return s.store.Write(ctx, ledger.Render(ledger.Ledger{}), "")
}

// SubmitResult reports what one entry submission changed.
type SubmitResult struct {
	Date          ledger.Date
	Word          prompts.Word
	Words         int
	Replaced      bool
	BalanceBefore int
	BalanceAfter  int
	StreakBefore  int
	StreakAfter   int
	State         *State
}

// SubmitEntry records today's lyrics. Resubmitting on the same day replaces
// the earlier text rather than adding a second session.
func (s *Service) SubmitEntry(ctx context.Context, text string) (*SubmitResult, error) {
	return s.SubmitEntryFor(ctx, ledger.Date{}, text)
}

// SubmitEntryFor records lyrics under a specific date, for backfilling a
// missed day. A zero date means today. Future dates are rejected so the
// streak can never run ahead of the calendar.
func (s *Service) SubmitEntryFor(ctx context.Context, day ledger.Date, text string) (*SubmitResult, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.New("nothing to record, the entry is empty")
	}

	st, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	if day.IsZero() {
		day = st.Today
	}
	if day.After(st.Today) {
		return nil, fmt.Errorf("cannot write an entry for the future (%s)", day)
	}

	word := prompts.WordOfDay(day)
	_, replaced := st.Ledger.EntryFor(day)
	st.Ledger.SetEntry(ledger.Entry{
		Date: day,
		Word: strings.ToUpper(word.Word),
		Text: strings.TrimRight(text, "\n"),
	})

	after := s.derive(st.Ledger, st.Version, st.Found, st.Today)
	if err := s.save(ctx, after); err != nil {
		return nil, err
	}

	entry, _ := after.Ledger.EntryFor(day)
	return &SubmitResult{
		Date:          day,
		Word:          word,
		Words:         WordCount(entry.Text),
		Replaced:      replaced,
		BalanceBefore: st.Metrics.Balance,
		BalanceAfter:  after.Metrics.Balance,
		StreakBefore:  st.Metrics.CurrentStreak,
		StreakAfter:   after.Metrics.CurrentStreak,
		State:         after,
	}, nil
}

// BuyResult reports one shop purchase.
type BuyResult struct {
	Item         Item
	AlreadyOwned bool
	BalanceAfter int
	State        *State
}

// Buy purchases a catalog item. Buying an owned item is a no-op, not an
// error, so a replayed command cannot double-spend.
func (s *Service) Buy(ctx context.Context, name string) (*BuyResult, error) {
	st, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	if st.Ledger.HasPurchase(name) {
		item, _ := FindItem(s.catalog, name)
		return &BuyResult{Item: item, AlreadyOwned: true, BalanceAfter: st.Metrics.Balance, State: st}, nil
	}

	item, err := ApplyPurchase(st.Ledger, s.catalog, name)
	if err != nil {
		return nil, err
	}

	after := s.derive(st.Ledger, st.Version, st.Found, st.Today)
	if err := s.save(ctx, after); err != nil {
		return nil, err
	}
	return &BuyResult{Item: item, BalanceAfter: after.Metrics.Balance, State: after}, nil
}

// ClaimResult reports one reward claim (quest, daily bonus or achievement).
type ClaimResult struct {
	ID             string
	Reward         int
	AlreadyClaimed bool
	BalanceAfter   int
	State          *State
}

// ClaimQuest marks one of today's quests done and credits its reward. The
// reward amount is embedded in the ledger line so the credit survives even
// after the quest rotation moves on.
func (s *Service) ClaimQuest(ctx context.Context, id string) (*ClaimResult, error) {
	st, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	if st.Ledger.TaskDone(st.Today, id) {
		return &ClaimResult{ID: id, AlreadyClaimed: true, BalanceAfter: st.Metrics.Balance, State: st}, nil
	}

	q, ok := QuestByID(st.Today, id)
	if !ok {
		return nil, fmt.Errorf("no quest %q today", id)
	}
	satisfied := false
	for _, qs := range st.Quests {
		if qs.ID == id && qs.Satisfied {
			satisfied = true
		}
	}
	if !satisfied {
		return nil, NotSatisfiedError{Kind: "quest", ID: id}
	}

	st.Ledger.AddTask(ledger.TaskKey{Date: st.Today, TaskID: id, Reward: q.Reward, HasReward: true})

	after := s.derive(st.Ledger, st.Version, st.Found, st.Today)
	if err := s.save(ctx, after); err != nil {
		return nil, err
	}
	return &ClaimResult{ID: id, Reward: q.Reward, BalanceAfter: after.Metrics.Balance, State: after}, nil
}

// ClaimDailyBonus credits the all-quests bonus once all of today's quests
// are claimed.
func (s *Service) ClaimDailyBonus(ctx context.Context) (*ClaimResult, error) {
	st, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	if st.Bonus.Claimed {
		return &ClaimResult{ID: DailyBonusID, AlreadyClaimed: true, BalanceAfter: st.Metrics.Balance, State: st}, nil
	}
	if !st.Bonus.Satisfied {
		return nil, NotSatisfiedError{Kind: "daily bonus", ID: DailyBonusID}
	}

	st.Ledger.AddTask(ledger.TaskKey{Date: st.Today, TaskID: DailyBonusID, Reward: DailyBonusReward, HasReward: true})

	after := s.derive(st.Ledger, st.Version, st.Found, st.Today)
	if err := s.save(ctx, after); err != nil {
		return nil, err
	}
	return &ClaimResult{ID: DailyBonusID, Reward: DailyBonusReward, BalanceAfter: after.Metrics.Balance, State: after}, nil
}

// ClaimAchievement credits a satisfied achievement's reward, once ever.
func (s *Service) ClaimAchievement(ctx context.Context, id string) (*ClaimResult, error) {
	st, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	checker := NewAchievementChecker(st.Ledger, st.Metrics)
	a, ok := checker.ByID(id)
	if !ok {
		return nil, fmt.Errorf("unknown achievement %q", id)
	}
	if a.Claimed {
		return &ClaimResult{ID: id, AlreadyClaimed: true, BalanceAfter: st.Metrics.Balance, State: st}, nil
	}
	if !a.Satisfied {
		return nil, NotSatisfiedError{Kind: "achievement", ID: id}
	}

	st.Ledger.AddClaim(id)

	after := s.derive(st.Ledger, st.Version, st.Found, st.Today)
	if err := s.save(ctx, after); err != nil {
		return nil, err
	}
	return &ClaimResult{ID: id, Reward: a.Reward, BalanceAfter: after.Metrics.Balance, State: after}, nil
}

// DefaultTheme is always available without a purchase.
const DefaultTheme = "default"

// SetTheme activates a purchased theme, or the built-in default.
func (s *Service) SetTheme(ctx context.Context, name string) (*State, error) {
	st, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	if !strings.EqualFold(name, DefaultTheme) {
		item, ok := FindItem(s.catalog, name)
		if !ok || item.Kind != KindTheme {
			return nil, fmt.Errorf("no theme named %q", name)
		}
		if !st.Ledger.HasPurchase(item.Name) {
			return nil, LockedCosmeticError{Item: item.Name}
		}
		name = item.Name
	} else {
		name = DefaultTheme
	}

	st.Ledger.Theme = name
	after := s.derive(st.Ledger, st.Version, st.Found, st.Today)
	if err := s.save(ctx, after); err != nil {
		return nil, err
	}
	return after, nil
}

// ToggleGear enables or disables a purchased gear item. Returns the new
// enabled state.
func (s *Service) ToggleGear(ctx context.Context, name string) (bool, *State, error) {
	st, err := s.Load(ctx)
	if err != nil {
		return false, nil, err
	}

	item, ok := FindItem(s.catalog, name)
	if !ok || item.Kind != KindGear {
		return false, nil, fmt.Errorf("no gear named %q", name)
	}
	if !st.Ledger.HasPurchase(item.Name) {
		return false, nil, LockedCosmeticError{Item: item.Name}
	}

	enabled := st.Ledger.ToggleGear(item.Name)
	after := s.derive(st.Ledger, st.Version, st.Found, st.Today)
	if err := s.save(ctx, after); err != nil {
		return false, nil, err
	}
	return enabled, after, nil
}
