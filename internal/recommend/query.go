// Package recommend turns a mood and listener preferences into catalog
// search results.
package recommend

import (
	"strings"

	"github.com/justestif/moodtunes/internal/mood"
)

// Preferences are optional search filters. Empty fields are ignored.
type Preferences struct {
	Language string
	Era      string // passed as the year clause, e.g. "2000-2024"
	Genre    string
	Artist   string
}

// BuildQuery returns the catalog query for m and prefs.
//
// Clauses appear in a fixed order: mood, language, year, genre, artist.
// Values are inserted verbatim.
func BuildQuery(m mood.Mood, prefs Preferences) string {
	var sb strings.Builder
	sb.WriteString("mood:")
	sb.WriteString(string(m))

	clauses := []struct{ key, value string }{
		{"language", prefs.Language},
		{"year", prefs.Era},
		{"genre", prefs.Genre},
		{"artist", prefs.Artist},
	}
	for _, c := range clauses {
		if c.value == "" {
			continue
		}
		sb.WriteString(" ")
		sb.WriteString(c.key)
		sb.WriteString(":")
		sb.WriteString(c.value)
	}

	return sb.String()
}
