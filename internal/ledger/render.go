package ledger

import (
	"sort"
	"strings"
)

// Separator is the canonical entry delimiter written by Render. The parser
// accepts shorter runs for old documents.
const Separator = "------------------------------"

// Render serializes the ledger back to the flat document format. It is also
// the normalizer: re-rendering an unchanged ledger reproduces one canonical
// byte sequence regardless of how messy the parsed document was. Preference
// lines come first, then the sorted record sets, then entry blocks newest
// first with one canonical block per date (first occurrence wins).
func Render(l Ledger) string {
	var b strings.Builder

	if l.Theme != "" {
		b.WriteString(markerTheme + " " + l.Theme + "\n")
	}
	for _, g := range sortedSet(l.Gear) {
		b.WriteString(markerGear + " " + g + "\n")
	}
	for _, p := range sortedSet(l.Purchases) {
		b.WriteString(markerPurchase + " " + p + "\n")
	}
	for _, c := range sortedSet(l.Claims) {
		b.WriteString(markerClaim + " " + c + "\n")
	}
	for _, k := range sortedTasks(l.Tasks) {
		b.WriteString(markerTask + " " + k.String() + "\n")
	}

	entries := canonicalEntries(l.Entries)
	if b.Len() > 0 && len(entries) > 0 {
		b.WriteString("\n")
	}
	for i, e := range entries {
		if i > 0 {
			b.WriteString(Separator + "\n")
		}
		b.WriteString(markerDate + " " + e.Date.String() + "\n")
		if e.Word != "" {
			b.WriteString(markerWord + " " + e.Word + "\n")
		}
		b.WriteString(markerLyrics + "\n")
		b.WriteString(strings.TrimSpace(e.Text) + "\n")
	}
	if len(entries) > 0 {
		b.WriteString(Separator + "\n")
	}
	return b.String()
}

// canonicalEntries collapses duplicate dates (first occurrence wins), drops
// empty entries, and orders newest first.
func canonicalEntries(entries []Entry) []Entry {
	seen := map[Date]bool{}
	var out []Entry
	for _, e := range entries {
		if seen[e.Date] || strings.TrimSpace(e.Text) == "" {
			continue
		}
		seen[e.Date] = true
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[j].Date.Before(out[i].Date) })
	return out
}

func sortedSet(in []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, s := range in {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

func sortedTasks(in []TaskKey) []TaskKey {
	seen := map[string]bool{}
	var out []TaskKey
	for _, k := range in {
		id := k.Date.String() + "_" + k.TaskID
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}
