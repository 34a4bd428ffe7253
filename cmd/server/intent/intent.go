package intent

import (
	"regexp"
	"strings"
	"time"
)

// APIType identifies which upstream weather API a query maps to.
type APIType string

const (
	TypeForecast   APIType = "forecast"
	TypeArchive    APIType = "archive"
	TypeMarine     APIType = "marine"
	TypeAirQuality APIType = "air_quality"
	TypeSnow       APIType = "snow"
	TypeClimate    APIType = "climate"
)

// TimeFrame is the temporal scope of a query.
type TimeFrame string

const (
	TimeHourly     TimeFrame = "hourly"
	TimeDaily      TimeFrame = "daily"
	TimeHistorical TimeFrame = "historical"
)

// Intent is the structured interpretation of a natural-language weather query.
type Intent struct {
	APIType   APIType
	TimeFrame TimeFrame
	Location  string
	StartDate string
	EndDate   string
}

// Building blocks for the location patterns.
const (
	prepositions  = `(?:in|at|for|of|near|around)`
	conditions    = `(?:weather|forecast|condition|temperature|climate|air quality|marine conditions?|wave height|wind)`
	timeMarkers   = `(?:current|today|tomorrow|now|tonight|this week)`
	questionWords = `(?:what|how|when|where|is|are|will)`
)

// Patterns ordered by specificity.
var locationPatterns = []*regexp.Regexp{
	// "what are the conditions in <location>"
	regexp.MustCompile(`(?i)` + questionWords + `\s+(?:is|are)\s+(?:the\s+)?` + conditions + `\s+` + prepositions + `\s+([A-Za-z\s,]+?)(?:\s+` + timeMarkers + `)?[?]?$`),
	// "<location> conditions"
	regexp.MustCompile(`(?i)(?:` + prepositions + `\s+)?([A-Za-z\s,]+?)\s+` + conditions),
	// "conditions in <location>"
	regexp.MustCompile(`(?i)` + conditions + `\s+` + prepositions + `\s+([A-Za-z\s,]+?)(?:\s+` + timeMarkers + `)?[?]?$`),
	// "in <location>"
	regexp.MustCompile(`(?i)` + prepositions + `\s+([A-Za-z\s,]+?)(?:\s+` + timeMarkers + `)?[?]?$`),
}

var (
	trailingPunct = regexp.MustCompile(`[.,!?]+$`)
	noiseWords    = regexp.MustCompile(`(?i)\b(?:` + conditions + `|` + timeMarkers + `|` + questionWords + `)\b`)
	quotedText    = regexp.MustCompile(`"([^"]+)"`)
)

var apiKeywords = []struct {
	apiType  APIType
	keywords []string
}{
	{TypeArchive, []string{"historical", "past", "previous", "archive"}},
	{TypeMarine, []string{"marine", "sea", "ocean", "wave", "shipping"}},
	{TypeAirQuality, []string{"air quality", "pollution", "aqi", "pm2.5", "pm10"}},
	{TypeSnow, []string{"snow", "ski", "winter", "freezing"}},
	{TypeClimate, []string{"climate", "long-term", "average", "norm"}},
}

var (
	hourlyKeywords     = []string{"hourly", "hour", "today", "now", "current"}
	historicalKeywords = []string{"historical", "past", "previous", "last month", "last year"}
)

// ExtractLocation pulls a location name out of the message using common
// phrasing patterns, falling back to the first quoted string.
func ExtractLocation(message string) string {
	message = strings.TrimSpace(message)

	for _, pattern := range locationPatterns {
		match := pattern.FindStringSubmatch(message)
		if match == nil {
			continue
		}
		location := strings.TrimSpace(match[1])
		location = trailingPunct.ReplaceAllString(location, "")
		// Strip weather-related words that may have been captured.
		location = noiseWords.ReplaceAllString(location, "")
		location = strings.Join(strings.Fields(location), " ")
		if len(location) >= 2 {
			return location
		}
	}

	if match := quotedText.FindStringSubmatch(message); match != nil {
		location := strings.TrimSpace(match[1])
		if len(location) >= 2 {
			return location
		}
	}

	return ""
}

// Analyze interprets a natural-language query into an Intent.
// Defaults are a daily forecast with no location.
func Analyze(message string) Intent {
	result := Intent{
		APIType:   TypeForecast,
		TimeFrame: TimeDaily,
	}
	lower := strings.ToLower(message)

	result.Location = ExtractLocation(message)

	for _, entry := range apiKeywords {
		if containsAny(lower, entry.keywords) {
			result.APIType = entry.apiType
			break
		}
	}

	if containsAny(lower, hourlyKeywords) {
		result.TimeFrame = TimeHourly
	} else if containsAny(lower, historicalKeywords) {
		result.TimeFrame = TimeHistorical
		// Default historical range: last 30 days.
		now := time.Now()
		result.EndDate = now.Format("2006-01-02")
		result.StartDate = now.AddDate(0, 0, -30).Format("2006-01-02")
	}

	return result
}

func containsAny(s string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}
