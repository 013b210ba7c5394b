package vocab

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Entry is a single term/translation vocabulary pair. Two entries are the
// same word when both fields compare equal after normalization.
type Entry struct {
	Term        string
	Translation string
}

// Normalize collapses inner whitespace and applies NFKC so visually
// identical strings compare equal.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Join(strings.Fields(s), " ")
	return norm.NFKC.String(s)
}

func newEntry(term, translation string) (Entry, bool) {
	e := Entry{Term: Normalize(term), Translation: Normalize(translation)}
	if e.Term == "" || e.Translation == "" {
		return Entry{}, false
	}
	return e, true
}
