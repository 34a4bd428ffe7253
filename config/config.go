package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging      LoggingConfig `yaml:"logging"`
	GeminiModel  string        `yaml:"gemini_model"`
	ForecastDays int           `yaml:"forecast_days"`

	// MarineSampleHours limits how many hourly marine samples are sent to the
	// LLM when building the analysis prompt.
	MarineSampleHours int `yaml:"marine_sample_hours"`

	// Populated from environment, not from config.yaml.
	MongoURI    string `yaml:"-"`
	MongoDBName string `yaml:"-"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	// load configuration file
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}

	var c AppConfig
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		panic(err)
	}

	if c.GeminiModel == "" {
		c.GeminiModel = "gemini-2.0-flash"
	}
	if c.ForecastDays <= 0 {
		c.ForecastDays = 3
	}
	if c.MarineSampleHours <= 0 {
		c.MarineSampleHours = 24
	}
	c.MongoURI = os.Getenv("MONGODB_URI")
	c.MongoDBName = os.Getenv("MONGODB_DB_NAME")

	config = &c

	Logger().Info("configuration loaded",
		"gemini_model", c.GeminiModel,
		"forecast_days", c.ForecastDays,
		"marine_sample_hours", c.MarineSampleHours,
	)
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
