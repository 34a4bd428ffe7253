package formatter

import (
	"google.golang.org/genai"

	"solar-forecast/cmd/server/intent"
)

func stringSchema() *genai.Schema {
	return &genai.Schema{Type: genai.TypeString}
}

// baseProperties are shared by every analysis schema: the overall summary and
// the recommendation list.
func baseProperties() map[string]*genai.Schema {
	return map[string]*genai.Schema{
		"summary": {
			Type:        genai.TypeString,
			Description: "Overall analysis and key findings",
		},
		"recommendations": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"category": stringSchema(),
					"advice":   stringSchema(),
				},
			},
		},
	}
}

// responseSchema returns the structured-output schema matching the intent.
// Snow and climate queries have no dedicated payload block and produce
// summary-only documents.
func responseSchema(it intent.Intent) *genai.Schema {
	properties := baseProperties()
	required := []string{"summary", "recommendations"}

	switch it.APIType {
	case intent.TypeForecast:
		if it.TimeFrame == intent.TimeHourly {
			properties["hourly_forecast"] = &genai.Schema{
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"hour":            stringSchema(),
						"conditions":      stringSchema(),
						"solar_potential": stringSchema(),
					},
				},
			}
			required = append(required, "hourly_forecast")
		} else {
			properties["daily_forecast"] = &genai.Schema{
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"date":            stringSchema(),
						"conditions":      stringSchema(),
						"solar_potential": stringSchema(),
					},
				},
			}
			required = append(required, "daily_forecast")
		}
	case intent.TypeMarine:
		properties["wave_conditions"] = &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"wave_height":     stringSchema(),
				"wave_direction":  stringSchema(),
				"sea_temperature": stringSchema(),
			},
		}
		required = append(required, "wave_conditions")
	case intent.TypeAirQuality:
		properties["air_quality_metrics"] = &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"aqi_level":           stringSchema(),
				"pollutants":          stringSchema(),
				"health_implications": stringSchema(),
			},
		}
		required = append(required, "air_quality_metrics")
	}

	return &genai.Schema{
		Type:       genai.TypeObject,
		Properties: properties,
		Required:   required,
	}
}

var moderationSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"flagged": {Type: genai.TypeBoolean},
		"categories": {
			Type:  genai.TypeArray,
			Items: &genai.Schema{Type: genai.TypeString},
		},
	},
	Required: []string{"flagged", "categories"},
}
