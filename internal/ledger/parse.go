package ledger

import "strings"

// Line markers of the flat document format. Everything else is either entry
// text or noise to be ignored.
const (
	markerTheme    = "ACTIVE_THEME:"
	markerGear     = "ENABLED_GEAR:"
	markerPurchase = "PURCHASE:"
	markerClaim    = "CLAIMED:"
	markerTask     = "TASK_DONE:"
	markerDate     = "DATE:"
	markerWord     = "WORD:"
	markerLyrics   = "LYRICS:"
)

// minSeparator tolerates hand-shortened separators in old documents; the
// renderer always writes the full-width run.
const minSeparator = 3

// Parse deserializes the flat document into a Ledger. It never fails:
// anything that does not match the expected micro-format is dropped and the
// scan continues, so a corrupted document degrades to a smaller ledger, not
// an error. An empty document yields an empty ledger.
func Parse(doc string) Ledger {
	var l Ledger
	seenTask := map[string]bool{}

	lines := strings.Split(doc, "\n")
	for i := 0; i < len(lines); {
		line := strings.TrimSpace(strings.TrimSuffix(lines[i], "\r"))
		switch {
		case isSeparator(line):
			i++
		case strings.HasPrefix(line, markerTheme):
			// Last occurrence wins for the singleton preference.
			if v := markerValue(line, markerTheme); v != "" {
				l.Theme = v
			}
			i++
		case strings.HasPrefix(line, markerGear):
			if v := markerValue(line, markerGear); v != "" && !l.HasGear(v) {
				l.Gear = append(l.Gear, v)
			}
			i++
		case strings.HasPrefix(line, markerPurchase):
			if v := markerValue(line, markerPurchase); v != "" {
				l.AddPurchase(v)
			}
			i++
		case strings.HasPrefix(line, markerClaim):
			if v := markerValue(line, markerClaim); v != "" {
				l.AddClaim(v)
			}
			i++
		case strings.HasPrefix(line, markerTask):
			if v := markerValue(line, markerTask); v != "" {
				if k, err := ParseTaskKey(v); err == nil {
					// Unique per (date, task); first record wins.
					id := k.Date.String() + "_" + k.TaskID
					if !seenTask[id] {
						seenTask[id] = true
						l.Tasks = append(l.Tasks, k)
					}
				}
			}
			i++
		case strings.HasPrefix(line, markerDate):
			entry, next, ok := parseEntryBlock(lines, i)
			if ok {
				l.Entries = append(l.Entries, entry)
			}
			i = next
		default:
			i++
		}
	}
	return l
}

// parseEntryBlock consumes one entry block starting at the DATE line.
// A block with a bad date or without a LYRICS marker contributes nothing;
// either way the scan resumes after the consumed lines so a broken block
// cannot swallow the rest of the document.
func parseEntryBlock(lines []string, start int) (Entry, int, bool) {
	var e Entry

	dateLine := strings.TrimSpace(strings.TrimSuffix(lines[start], "\r"))
	d, err := ParseDate(markerValue(dateLine, markerDate))
	if err != nil {
		return Entry{}, start + 1, false
	}
	e.Date = d

	// Scan the block head for the content marker. Stop at the next
	// separator or DATE line; a block without LYRICS has no entry.
	i := start + 1
	for ; i < len(lines); i++ {
		line := strings.TrimSpace(strings.TrimSuffix(lines[i], "\r"))
		if isSeparator(line) || strings.HasPrefix(line, markerDate) {
			return Entry{}, i, false
		}
		if strings.HasPrefix(line, markerWord) {
			e.Word = markerValue(line, markerWord)
			continue
		}
		if strings.HasPrefix(line, markerLyrics) {
			i++
			break
		}
	}
	// Everything up to the next separator (or DATE line, for documents that
	// lost a separator) is the entry text.
	var text []string
	for ; i < len(lines); i++ {
		line := strings.TrimSuffix(lines[i], "\r")
		trimmed := strings.TrimSpace(line)
		if isSeparator(trimmed) || strings.HasPrefix(trimmed, markerDate) {
			break
		}
		text = append(text, line)
	}

	e.Text = strings.TrimSpace(strings.Join(text, "\n"))
	if e.Text == "" {
		// Whitespace-only entries are treated as absent.
		return Entry{}, i, false
	}
	return e, i, true
}

func markerValue(line, marker string) string {
	return strings.TrimSpace(strings.TrimPrefix(line, marker))
}

func isSeparator(line string) bool {
	if len(line) < minSeparator {
		return false
	}
	for _, r := range line {
		if r != '-' {
			return false
		}
	}
	return true
}
