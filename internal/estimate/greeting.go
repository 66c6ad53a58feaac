package estimate

import "time"

const (
	greetingMorning   = "காலை வணக்கம்! Good Morning! 🌅"
	greetingAfternoon = "மதிய வணக்கம்! Good Afternoon! 🌞"
	greetingEvening   = "மாலை வணக்கம்! Good Evening! 🌆"

	suffixRainy = " Rainy day - perfect for hot food! ☔"
	suffixHot   = " Hot day - stay hydrated, Anna! 💧"
)

var tamilDayNames = [...]string{"ஞாயிறு", "திங்கள்", "செவ்வாய்", "புதன்", "வியாழன்", "வெள்ளி", "சனி"}

// FriendlyGreeting builds the vendor greeting for the local hour of t,
// followed by a weather hint when it is raining or hot.
func FriendlyGreeting(t time.Time, w WeatherReading) string {
	var greeting string

	switch hour := t.Hour(); {
	case hour < 12:
		greeting = greetingMorning
	case hour < 17:
		greeting = greetingAfternoon
	default:
		greeting = greetingEvening
	}

	if w.Raining() {
		greeting += suffixRainy
	} else if w.Hot() {
		greeting += suffixHot
	}

	return greeting
}

// DayNameTamil returns the Tamil name of dayOfWeek (0 = Sunday), or "" when
// it is out of range.
func DayNameTamil(dayOfWeek int) string {
	if dayOfWeek < 0 || dayOfWeek >= len(tamilDayNames) {
		return ""
	}
	return tamilDayNames[dayOfWeek]
}
