// Package mood classifies a listener's context into a mood label.
//
// Two contexts are supported: the phase of a modeled 28-day menstrual cycle,
// and a weather condition reported by the user. Every classifier is total:
// unrecognized input falls through to a catch-all value, never an error.
package mood

// Mood is a discrete emotional label used as a catalog search filter.
type Mood string

const (
	Relaxing   Mood = "Relaxing"
	Happy      Mood = "Happy"
	Romantic   Mood = "Romantic"
	Melancholy Mood = "Melancholy"
	Calm       Mood = "Calm"
	Cozy       Mood = "Cozy"
	Intense    Mood = "Intense"
	Chill      Mood = "Chill" // fallback for anything unmapped
)

// All lists every mood in declaration order.
var All = []Mood{Relaxing, Happy, Romantic, Melancholy, Calm, Cozy, Intense, Chill}

// String returns the mood label.
func (m Mood) String() string {
	return string(m)
}
