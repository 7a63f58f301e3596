package recommend

import (
	"fmt"
	"strings"
)

// NoResultsMessage is shown when a search returns no tracks.
const NoResultsMessage = "No songs found based on your preferences."

// FormatTracks renders tracks as 1-indexed "<n>: <name> by <artist>" lines.
func FormatTracks(tracks []Track) string {
	if len(tracks) == 0 {
		return NoResultsMessage + "\n"
	}

	var sb strings.Builder
	for i, t := range tracks {
		sb.WriteString(fmt.Sprintf("%d: %s by %s\n", i+1, t.Name, t.Artist))
	}
	return sb.String()
}
