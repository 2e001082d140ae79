package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Rap journal look (CLI + TUI).
// Kept intentionally small: reusable styles, a few emojis and the
// purchasable palette swaps.

const (
	IconMic      = "🎤"
	IconFire     = "🔥"
	IconCoin     = "💰"
	IconQuest    = "🗺️"
	IconDone     = "✅"
	IconTrophy   = "🏆"
	IconLock     = "🔒"
	IconCart     = "🛒"
	IconScroll   = "📜"
	IconSparkle  = "✨"
	IconWarn     = "⚠️"
	IconError    = "🧨"
	IconNotebook = "📓"
	IconCat      = "🐈"
)

// Palette is one purchasable color set. The active ledger theme picks which
// palette renders everything.
type Palette struct {
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Good    lipgloss.Color
	Warn    lipgloss.Color
	Bad     lipgloss.Color
	Muted   lipgloss.Color
	Gold    lipgloss.Color
}

var defaultPalette = Palette{
	Primary: lipgloss.Color("63"),  // blue
	Accent:  lipgloss.Color("205"), // magenta
	Good:    lipgloss.Color("42"),  // green
	Warn:    lipgloss.Color("214"), // orange
	Bad:     lipgloss.Color("196"), // red
	Muted:   lipgloss.Color("244"), // gray
	Gold:    lipgloss.Color("220"), // gold
}

var palettes = map[string]Palette{
	"Neon Layout": {
		Primary: lipgloss.Color("46"), // bright green
		Accent:  lipgloss.Color("51"), // cyan
		Good:    lipgloss.Color("46"),
		Warn:    lipgloss.Color("226"),
		Bad:     lipgloss.Color("201"),
		Muted:   lipgloss.Color("240"),
		Gold:    lipgloss.Color("118"),
	},
	"Gold Studio": {
		Primary: lipgloss.Color("178"),
		Accent:  lipgloss.Color("220"),
		Good:    lipgloss.Color("222"),
		Warn:    lipgloss.Color("208"),
		Bad:     lipgloss.Color("196"),
		Muted:   lipgloss.Color("137"),
		Gold:    lipgloss.Color("226"),
	},
}

// Theme holds the styles for one palette.
type Theme struct {
	Name string

	Title Style
	H2    Style
	Muted Style
	Key   Style
	Good  Style
	Warn  Style
	Bad   Style
	Gold  Style

	Panel       Style
	SelectedRow Style
}

// Style aliases lipgloss.Style so callers only import ui.
type Style = lipgloss.Style

// For returns the styles for a ledger theme name. Unknown names fall back
// to the default palette, so a ledger naming a retired theme still renders.
func For(name string) Theme {
	p, ok := palettes[name]
	if !ok {
		p = defaultPalette
		name = "default"
	}
	return Theme{
		Name: name,

		Title: lipgloss.NewStyle().Bold(true).Foreground(p.Accent),
		H2:    lipgloss.NewStyle().Bold(true).Foreground(p.Primary),
		Muted: lipgloss.NewStyle().Foreground(p.Muted),
		Key:   lipgloss.NewStyle().Bold(true).Foreground(p.Primary),
		Good:  lipgloss.NewStyle().Bold(true).Foreground(p.Good),
		Warn:  lipgloss.NewStyle().Bold(true).Foreground(p.Warn),
		Bad:   lipgloss.NewStyle().Bold(true).Foreground(p.Bad),
		Gold:  lipgloss.NewStyle().Bold(true).Foreground(p.Gold),

		Panel:       lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(p.Muted).Padding(0, 1),
		SelectedRow: lipgloss.NewStyle().Bold(true).Foreground(p.Gold).Background(p.Primary),
	}
}

// Default is the no-purchases theme.
func Default() Theme { return For("default") }

func (t Theme) Heading(icon, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return t.Title.Render(icon + title)
}

func (t Theme) LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", t.Key.Render(label+":"), value)
}

// ProgressBar draws current/target as a fixed-width bar.
func (t Theme) ProgressBar(current, target, width int) string {
	if width <= 0 {
		width = 10
	}
	if target <= 0 {
		target = 1
	}
	if current > target {
		current = target
	}
	filled := current * width / target
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	if current == target {
		return t.Good.Render(bar)
	}
	return t.H2.Render(bar)
}

// Streak renders a streak count with appropriate heat.
func (t Theme) Streak(days int) string {
	switch {
	case days >= 7:
		return t.Gold.Render(fmt.Sprintf("%s %d days", IconFire, days))
	case days > 0:
		return t.Good.Render(fmt.Sprintf("%s %d days", IconFire, days))
	default:
		return t.Muted.Render("no streak")
	}
}
