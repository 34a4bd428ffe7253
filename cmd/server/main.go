package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/rs/cors"

	"solar-forecast/cmd/internal/logger"
	"solar-forecast/cmd/server/clients/nominatim"
	"solar-forecast/cmd/server/clients/openmeteo"
	"solar-forecast/cmd/server/formatter"
	"solar-forecast/cmd/server/router"
	"solar-forecast/cmd/server/services"
	"solar-forecast/config"
	"solar-forecast/db"
	"solar-forecast/repositories"
)

// @title           Solar Forecast API
// @version         1.0
// @description     AI-powered weather and solar forecast chat service
// @BasePath        /
func main() {
	config.InitApp()
	logger.InitFromEnv("LOG_LEVEL")
	cfg := config.GetConfig()

	ctx := context.Background()

	fmtr, err := formatter.New(ctx)
	if err != nil {
		log.Fatal(err)
	}

	// Usage logging is optional; the service runs without Mongo.
	var aiLogs *repositories.AILogRepository
	if cfg.MongoURI != "" {
		if err := db.Init(ctx); err != nil {
			log.Fatal(err)
		}
		aiLogs = repositories.NewAILogRepository(db.Database())
	} else {
		logger.Log.Info("MONGODB_URI not set, ai usage logging disabled")
	}

	chatSvc := services.NewChatService(
		nominatim.New(),
		openmeteo.New(),
		fmtr,
		aiLogs,
		cfg.ForecastDays,
	)

	r := router.New(chatSvc)

	// The browser UI is served from another origin, so allow everything.
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}).Handler(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	if err := http.ListenAndServe(":"+port, corsHandler); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
