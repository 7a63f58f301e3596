package mood

// WeatherCondition is a weather label supplied by the user.
// Any string is accepted; unrecognized labels map to Chill.
type WeatherCondition string

const (
	Clear        WeatherCondition = "Clear"
	Clouds       WeatherCondition = "Clouds"
	Rain         WeatherCondition = "Rain"
	Drizzle      WeatherCondition = "Drizzle"
	Snow         WeatherCondition = "Snow"
	Thunderstorm WeatherCondition = "Thunderstorm"
)

// Conditions lists the recognized weather conditions, in prompt order.
var Conditions = []WeatherCondition{Clear, Clouds, Rain, Drizzle, Snow, Thunderstorm}

// WeatherMood maps a weather condition to a mood.
// Matching is exact and case-sensitive.
func WeatherMood(c WeatherCondition) Mood {
	switch c {
	case Clear:
		return Happy
	case Clouds:
		return Calm
	case Rain:
		return Melancholy
	case Drizzle:
		return Relaxing
	case Snow:
		return Cozy
	case Thunderstorm:
		return Intense
	default:
		return Chill
	}
}
