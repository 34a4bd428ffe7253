package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solar-forecast/dto"
)

func lagosDaily() *dto.WeatherResponseDocument {
	return &dto.WeatherResponseDocument{
		QueryType: "forecast",
		TimeFrame: "daily",
		Location: dto.Location{
			City:        "Lagos",
			Coordinates: dto.Coordinates{Lat: 6.5, Lon: 3.4},
		},
		Summary: "Mostly sunny",
		DailyForecast: []dto.DailyForecastEntry{
			{Date: "2024-01-01", Conditions: "Sunny", SolarPotential: "High"},
		},
	}
}

func TestDocumentDailyForecast(t *testing.T) {
	tree := Document(lagosDaily())

	require.Len(t, tree.Blocks, 3)
	assert.Equal(t, BlockLocation, tree.Blocks[0].Kind)
	assert.Equal(t, []string{"Lagos (6.5, 3.4)"}, tree.Blocks[0].Lines)
	assert.Equal(t, BlockSummary, tree.Blocks[1].Kind)
	assert.Equal(t, []string{"Mostly sunny"}, tree.Blocks[1].Lines)
	assert.Equal(t, BlockDailyForecast, tree.Blocks[2].Kind)
	require.Len(t, tree.Blocks[2].Lines, 1)
	assert.Contains(t, tree.Blocks[2].Lines[0], "2024-01-01")
	assert.Contains(t, tree.Blocks[2].Lines[0], "Sunny")
	assert.Contains(t, tree.Blocks[2].Lines[0], "High")
}

func TestDocumentIsDeterministic(t *testing.T) {
	doc := lagosDaily()
	doc.Recommendations = []dto.Recommendation{{Category: "Solar", Advice: "Great day for panels"}}

	first := Document(doc)
	second := Document(doc)

	assert.Equal(t, first, second)
	assert.Equal(t, first.String(), second.String())
}

func TestPayloadBlockSelection(t *testing.T) {
	testCases := []struct {
		name      string
		queryType string
		timeFrame string
		wantKind  BlockKind
		wantBlock bool
	}{
		{"hourly forecast", "forecast", "hourly", BlockHourlyForecast, true},
		{"daily forecast", "forecast", "daily", BlockDailyForecast, true},
		{"marine", "marine", "hourly", BlockMarine, true},
		{"air quality", "air_quality", "", BlockAirQuality, true},
		{"snow has no payload block", "snow", "daily", "", false},
		{"climate has no payload block", "climate", "", "", false},
		{"forecast without time frame", "forecast", "", "", false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			doc := &dto.WeatherResponseDocument{
				QueryType: testCase.queryType,
				TimeFrame: testCase.timeFrame,
				Location:  dto.Location{City: "Oslo"},
				Summary:   "summary",
				HourlyForecast: []dto.HourlyForecastEntry{
					{Hour: "09:00", Conditions: "Clear", SolarPotential: "Medium"},
				},
				DailyForecast: []dto.DailyForecastEntry{
					{Date: "2024-01-01", Conditions: "Clear", SolarPotential: "Medium"},
				},
				WaveConditions:    &dto.WaveConditions{WaveHeight: "1.2 m"},
				AirQualityMetrics: &dto.AirQualityMetrics{AQILevel: "Good"},
			}

			tree := Document(doc)

			payloadKinds := []BlockKind{}
			for _, block := range tree.Blocks {
				switch block.Kind {
				case BlockHourlyForecast, BlockDailyForecast, BlockMarine, BlockAirQuality:
					payloadKinds = append(payloadKinds, block.Kind)
				}
			}

			if testCase.wantBlock {
				require.Len(t, payloadKinds, 1, "exactly one payload block")
				assert.Equal(t, testCase.wantKind, payloadKinds[0])
			} else {
				assert.Empty(t, payloadKinds, "summary-only rendering")
			}
		})
	}
}

func TestMissingDiscriminantFallsBackToOpaque(t *testing.T) {
	doc := &dto.WeatherResponseDocument{Summary: "no discriminant"}

	tree := Document(doc)

	require.Len(t, tree.Blocks, 1)
	assert.Equal(t, BlockRaw, tree.Blocks[0].Kind)
	assert.Contains(t, tree.Blocks[0].Lines[0], "no discriminant")
}

func TestFallbackWrapsRawText(t *testing.T) {
	tree := Fallback(`{"type":"location_request","message":"Please specify a city."}`)

	require.Len(t, tree.Blocks, 1)
	assert.Equal(t, BlockRaw, tree.Blocks[0].Kind)
	assert.Contains(t, tree.Blocks[0].Lines[0], "location_request")
}

func TestRecommendationsOnlyWhenPresent(t *testing.T) {
	doc := lagosDaily()
	withoutRecs := Document(doc)
	for _, block := range withoutRecs.Blocks {
		assert.NotEqual(t, BlockRecommendations, block.Kind)
	}

	doc.Recommendations = []dto.Recommendation{
		{Category: "Solar", Advice: "Panels will perform well"},
		{Category: "Outdoor", Advice: "Hydrate often"},
	}
	withRecs := Document(doc)

	last := withRecs.Blocks[len(withRecs.Blocks)-1]
	assert.Equal(t, BlockRecommendations, last.Kind)
	require.Len(t, last.Lines, 2)
	assert.Equal(t, "Solar: Panels will perform well", last.Lines[0])
}

func TestPayloadOrderPreserved(t *testing.T) {
	doc := &dto.WeatherResponseDocument{
		QueryType: "forecast",
		TimeFrame: "hourly",
		Location:  dto.Location{City: "Madrid"},
		Summary:   "Clear all day",
		HourlyForecast: []dto.HourlyForecastEntry{
			{Hour: "14:00", Conditions: "Sunny", SolarPotential: "High"},
			{Hour: "09:00", Conditions: "Hazy", SolarPotential: "Medium"},
			{Hour: "18:00", Conditions: "Dusk", SolarPotential: "Low"},
		},
	}

	tree := Document(doc)

	var hourly Block
	for _, block := range tree.Blocks {
		if block.Kind == BlockHourlyForecast {
			hourly = block
		}
	}
	require.Len(t, hourly.Lines, 3)
	assert.Contains(t, hourly.Lines[0], "14:00")
	assert.Contains(t, hourly.Lines[1], "09:00")
	assert.Contains(t, hourly.Lines[2], "18:00")
}
