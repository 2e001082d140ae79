// Package prompts holds the built-in inspiration data bank: a daily word with
// rhyme suggestions, a prompt sentence, and a motivation line. The daily pick
// is day-of-year modular indexing, so the same date always shows the same
// prompt with no external randomness.
package prompts

import "rapjournal/internal/ledger"

// Word is a writing prompt word with suggested rhymes.
type Word struct {
	Word   string
	Rhymes []string
}

// WordOfDay returns the prompt word for a date.
func WordOfDay(d ledger.Date) Word {
	return words[d.YearDay()%len(words)]
}

// PromptOfDay returns the prompt sentence for a date.
func PromptOfDay(d ledger.Date) string {
	return sentences[d.YearDay()%len(sentences)]
}

// MotivationOfDay returns the motivation line for a date.
func MotivationOfDay(d ledger.Date) string {
	return motivation[d.YearDay()%len(motivation)]
}
