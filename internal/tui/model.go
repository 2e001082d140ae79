package tui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"rapjournal/internal/engine"
	"rapjournal/internal/prompts"
	"rapjournal/internal/ui"
)

// Run opens the dashboard and blocks until the user quits. The context
// cancels in-flight store calls when the program exits.
func Run(ctx context.Context, svc *engine.Service, out io.Writer) error {
	p := tea.NewProgram(newBoardModel(ctx, svc), tea.WithOutput(out), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

type tab int

const (
	tabQuests tab = iota
	tabShop
	tabAchievements
	tabTimeline
	tabCount
)

func (t tab) title() string {
	switch t {
	case tabQuests:
		return "Quests"
	case tabShop:
		return "Shop"
	case tabAchievements:
		return "Achievements"
	case tabTimeline:
		return "Timeline"
	default:
		return "?"
	}
}

type boardModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	state *engine.State
	theme ui.Theme

	tab      tab
	selected int

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	state *engine.State
	err   error
}

type actedMsg struct {
	log   string
	state *engine.State
	err   error
}

func newBoardModel(ctx context.Context, svc *engine.Service) boardModel {
	return boardModel{
		ctx:     ctx,
		svc:     svc,
		theme:   ui.Default(),
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m boardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		st, err := m.svc.Load(m.ctx)
		return loadedMsg{state: st, err: err}
	}
}

func (m boardModel) claimQuestCmd(id string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.ClaimQuest(m.ctx, id)
		if err != nil {
			return actedMsg{err: err}
		}
		if res.AlreadyClaimed {
			return actedMsg{log: "Already claimed.", state: res.State}
		}
		return actedMsg{log: fmt.Sprintf("Claimed %s: +%d RC", id, res.Reward), state: res.State}
	}
}

func (m boardModel) claimBonusCmd() tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.ClaimDailyBonus(m.ctx)
		if err != nil {
			return actedMsg{err: err}
		}
		if res.AlreadyClaimed {
			return actedMsg{log: "Bonus already claimed.", state: res.State}
		}
		return actedMsg{log: fmt.Sprintf("Daily bonus: +%d RC", res.Reward), state: res.State}
	}
}

func (m boardModel) buyCmd(name string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.Buy(m.ctx, name)
		if err != nil {
			return actedMsg{err: err}
		}
		if res.AlreadyOwned {
			return actedMsg{log: "Already owned.", state: res.State}
		}
		return actedMsg{log: fmt.Sprintf("Bought %s for %d RC", res.Item.Name, res.Item.Price), state: res.State}
	}
}

func (m boardModel) claimAchievementCmd(id string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.svc.ClaimAchievement(m.ctx, id)
		if err != nil {
			return actedMsg{err: err}
		}
		if res.AlreadyClaimed {
			return actedMsg{log: "Already claimed.", state: res.State}
		}
		return actedMsg{log: fmt.Sprintf("Claimed %s: +%d RC", id, res.Reward), state: res.State}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.applyState(msg.state)
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case actedMsg:
		if msg.err != nil {
			m.lastLog = msg.err.Error()
			return m, nil
		}
		m.applyState(msg.state)
		m.lastLog = msg.log
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "tab", "right", "l":
			m.tab = (m.tab + 1) % tabCount
			m.selected = 0
			return m, nil
		case "shift+tab", "left", "h":
			m.tab = (m.tab + tabCount - 1) % tabCount
			m.selected = 0
			return m, nil
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < m.rowCount()-1 {
				m.selected++
			}
			return m, nil
		case "enter", " ":
			return m.act()
		}
	}
	return m, nil
}

func (m *boardModel) applyState(st *engine.State) {
	m.state = st
	if st != nil {
		m.theme = ui.For(st.Ledger.Theme)
	}
	if m.selected >= m.rowCount() {
		m.selected = m.rowCount() - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m boardModel) rowCount() int {
	if m.state == nil {
		return 0
	}
	switch m.tab {
	case tabQuests:
		return len(m.state.Quests) + 1 // quests plus the daily bonus row
	case tabShop:
		return len(m.svc.Catalog())
	case tabAchievements:
		return len(m.state.Achievements)
	case tabTimeline:
		return len(m.state.Ledger.Entries)
	default:
		return 0
	}
}

func (m boardModel) act() (tea.Model, tea.Cmd) {
	if m.state == nil || m.selected < 0 || m.selected >= m.rowCount() {
		return m, nil
	}
	switch m.tab {
	case tabQuests:
		if m.selected == len(m.state.Quests) {
			return m, m.claimBonusCmd()
		}
		return m, m.claimQuestCmd(m.state.Quests[m.selected].ID)
	case tabShop:
		return m, m.buyCmd(m.svc.Catalog()[m.selected].Name)
	case tabAchievements:
		return m, m.claimAchievementCmd(m.state.Achievements[m.selected].ID)
	}
	return m, nil
}

func (m boardModel) View() string {
	if m.err != nil {
		return m.theme.Bad.Render("Error: "+m.err.Error()) + "\n\nPress q to quit.\n"
	}
	if m.loading || m.state == nil {
		return "Loading…\n"
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")
	b.WriteString(m.renderBody())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m boardModel) renderHeader() string {
	st := m.state
	word := prompts.WordOfDay(st.Today)
	parts := []string{
		m.theme.Heading(ui.IconMic, "Rap Journal"),
		m.theme.LabelValue("Balance", fmt.Sprintf("%d RC", st.Metrics.Balance)),
		m.theme.Streak(st.Metrics.CurrentStreak),
		m.theme.LabelValue("Word of the day", m.theme.Gold.Render(strings.ToUpper(word.Word))),
	}
	header := strings.Join(parts, "  ")
	if st.Ledger.HasGear("Studio Cat") {
		header += "  " + ui.IconCat
	}
	return header
}

func (m boardModel) renderTabs() string {
	var parts []string
	for t := tabQuests; t < tabCount; t++ {
		title := t.title()
		if t == m.tab {
			parts = append(parts, m.theme.SelectedRow.Render(" "+title+" "))
		} else {
			parts = append(parts, m.theme.Muted.Render(" "+title+" "))
		}
	}
	return strings.Join(parts, " ")
}

func (m boardModel) renderBody() string {
	switch m.tab {
	case tabQuests:
		return m.renderQuests()
	case tabShop:
		return m.renderShop()
	case tabAchievements:
		return m.renderAchievements()
	case tabTimeline:
		return m.renderTimeline()
	default:
		return ""
	}
}

func (m boardModel) renderQuests() string {
	st := m.state
	var out []string
	for i, q := range st.Quests {
		mark := " "
		switch {
		case q.Claimed:
			mark = ui.IconDone
		case q.Satisfied:
			mark = ui.IconSparkle
		}
		line := fmt.Sprintf("%s %s (+%d RC)", mark, q.Description, q.Reward)
		out = append(out, m.row(i, line, q.Claimed))
	}
	bonusLine := fmt.Sprintf("%s Daily bonus: claim all quests (+%d RC)", ui.IconTrophy, st.Bonus.Reward)
	if st.Bonus.Claimed {
		bonusLine = ui.IconDone + " Daily bonus claimed"
	}
	out = append(out, m.row(len(st.Quests), bonusLine, st.Bonus.Claimed))
	return strings.Join(out, "\n")
}

func (m boardModel) renderShop() string {
	st := m.state
	var out []string
	for i, item := range m.svc.Catalog() {
		var line string
		switch {
		case st.Ledger.HasPurchase(item.Name):
			line = fmt.Sprintf("%s %s (owned)", ui.IconDone, item.Name)
		case item.Price > st.Metrics.Balance:
			line = fmt.Sprintf("%s %s for %d RC", ui.IconLock, item.Name, item.Price)
		default:
			line = fmt.Sprintf("%s %s for %d RC", ui.IconCart, item.Name, item.Price)
		}
		if item.Description != "" {
			line += "  " + m.theme.Muted.Render(item.Description)
		}
		out = append(out, m.row(i, line, false))
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderAchievements() string {
	var out []string
	for i, a := range m.state.Achievements {
		mark := ui.IconLock
		switch {
		case a.Claimed:
			mark = ui.IconDone
		case a.Satisfied:
			mark = ui.IconTrophy
		}
		bar := m.theme.ProgressBar(a.Current, a.Target, 12)
		line := fmt.Sprintf("%s %s %s %s (+%d RC)", mark, a.Icon, a.Name, bar, a.Reward)
		out = append(out, m.row(i, line, a.Claimed))
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderTimeline() string {
	entries := m.state.Ledger.Entries
	if len(entries) == 0 {
		return m.theme.Muted.Render("(no entries yet)")
	}
	var out []string
	for i, e := range entries {
		words := engine.WordCount(e.Text)
		preview := firstLine(e.Text)
		line := fmt.Sprintf("%s  %s  %s", e.Date, m.theme.Muted.Render(fmt.Sprintf("%d words", words)), preview)
		out = append(out, m.row(i, line, false))
	}
	return strings.Join(out, "\n")
}

func (m boardModel) row(i int, line string, muted bool) string {
	cursor := "  "
	if i == m.selected {
		cursor = "> "
	}
	if muted {
		line = m.theme.Muted.Render(line)
	}
	return cursor + line
}

func (m boardModel) renderFooter() string {
	keys := m.theme.Muted.Render("tab: switch  j/k: move  enter: claim/buy  r: refresh  q: quit")
	return "\n" + keys + "\n" + m.lastLog
}

func firstLine(text string) string {
	for _, l := range strings.Split(text, "\n") {
		l = strings.TrimSpace(l)
		if l != "" {
			if len(l) > 60 {
				return l[:60] + "…"
			}
			return l
		}
	}
	return ""
}
