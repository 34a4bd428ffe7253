package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"solar-forecast/dto"
)

// BlockKind identifies a presentation block.
type BlockKind string

const (
	BlockLocation        BlockKind = "location"
	BlockSummary         BlockKind = "summary"
	BlockHourlyForecast  BlockKind = "hourly_forecast"
	BlockDailyForecast   BlockKind = "daily_forecast"
	BlockMarine          BlockKind = "marine"
	BlockAirQuality      BlockKind = "air_quality"
	BlockRecommendations BlockKind = "recommendations"
	BlockRaw             BlockKind = "raw"
)

// Block is one card of the presentation tree.
type Block struct {
	Kind  BlockKind
	Title string
	Lines []string
}

// Tree is the full presentation of one assistant answer.
type Tree struct {
	Blocks []Block
}

// String renders the tree as plain text for the terminal UI.
func (t Tree) String() string {
	var sb strings.Builder
	for i, block := range t.Blocks {
		if i > 0 {
			sb.WriteString("\n")
		}
		if block.Title != "" {
			sb.WriteString(block.Title)
			sb.WriteString("\n")
		}
		for _, line := range block.Lines {
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// Document builds the presentation tree for a structured answer. It is a
// pure function: no side effects, and the same document always produces the
// same tree. Documents without the query_type discriminant degrade to an
// opaque serialized block.
func Document(doc *dto.WeatherResponseDocument) Tree {
	if doc == nil || doc.QueryType == "" {
		return Fallback(serialize(doc))
	}

	blocks := []Block{
		locationBlock(doc.Location),
		{Kind: BlockSummary, Lines: []string{doc.Summary}},
	}

	if block, ok := payloadBlock(doc); ok {
		blocks = append(blocks, block)
	}

	if len(doc.Recommendations) > 0 {
		blocks = append(blocks, recommendationsBlock(doc.Recommendations))
	}

	return Tree{Blocks: blocks}
}

// Fallback wraps raw text in a single opaque block.
func Fallback(raw string) Tree {
	return Tree{Blocks: []Block{{Kind: BlockRaw, Lines: []string{raw}}}}
}

func locationBlock(location dto.Location) Block {
	header := fmt.Sprintf("%s (%g, %g)", location.City, location.Coordinates.Lat, location.Coordinates.Lon)
	return Block{Kind: BlockLocation, Lines: []string{header}}
}

// payloadBlock selects exactly one type-specific block from the
// {query_type, time_frame} discriminant. Combinations outside the four known
// ones render no payload block at all.
func payloadBlock(doc *dto.WeatherResponseDocument) (Block, bool) {
	switch {
	case doc.QueryType == "forecast" && doc.TimeFrame == "hourly":
		return hourlyBlock(doc.HourlyForecast), true
	case doc.QueryType == "forecast" && doc.TimeFrame == "daily":
		return dailyBlock(doc.DailyForecast), true
	case doc.QueryType == "marine":
		return marineBlock(doc.WaveConditions), true
	case doc.QueryType == "air_quality":
		return airQualityBlock(doc.AirQualityMetrics), true
	default:
		return Block{}, false
	}
}

func hourlyBlock(entries []dto.HourlyForecastEntry) Block {
	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		lines = append(lines, fmt.Sprintf("%s: %s (solar potential: %s)", entry.Hour, entry.Conditions, entry.SolarPotential))
	}
	return Block{Kind: BlockHourlyForecast, Title: "Hourly forecast", Lines: lines}
}

func dailyBlock(entries []dto.DailyForecastEntry) Block {
	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		lines = append(lines, fmt.Sprintf("%s: %s (solar potential: %s)", entry.Date, entry.Conditions, entry.SolarPotential))
	}
	return Block{Kind: BlockDailyForecast, Title: "Daily forecast", Lines: lines}
}

func marineBlock(conditions *dto.WaveConditions) Block {
	block := Block{Kind: BlockMarine, Title: "Marine conditions"}
	if conditions != nil {
		block.Lines = []string{
			"Wave height: " + conditions.WaveHeight,
			"Wave direction: " + conditions.WaveDirection,
			"Sea temperature: " + conditions.SeaTemperature,
		}
	}
	return block
}

func airQualityBlock(metrics *dto.AirQualityMetrics) Block {
	block := Block{Kind: BlockAirQuality, Title: "Air quality"}
	if metrics != nil {
		block.Lines = []string{
			"AQI level: " + metrics.AQILevel,
			"Pollutants: " + metrics.Pollutants,
			"Health implications: " + metrics.HealthImplications,
		}
	}
	return block
}

func recommendationsBlock(recommendations []dto.Recommendation) Block {
	lines := make([]string, 0, len(recommendations))
	for _, rec := range recommendations {
		lines = append(lines, fmt.Sprintf("%s: %s", rec.Category, rec.Advice))
	}
	return Block{Kind: BlockRecommendations, Title: "Recommendations", Lines: lines}
}

func serialize(value any) string {
	buf, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", value)
	}
	return string(buf)
}
