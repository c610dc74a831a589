package main

import (
	"os"

	"github.com/joho/godotenv"

	"cricket-insights-go/internal/config"
	"cricket-insights-go/internal/dataset"
	"cricket-insights-go/internal/logger"
	"cricket-insights-go/internal/ocr"
	"cricket-insights-go/internal/processor"
	"cricket-insights-go/internal/server"
	"cricket-insights-go/internal/types"
)

func main() {
	_ = godotenv.Load() // loads .env

	log := logger.New()
	log.WithField("service", "cricket-insights-go").Info("starting service")

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.WithError(err).Fatal("failed to load config")
	}
	log.WithField("config_path", configPath).Info("config loaded")

	// demo match record is optional; the service runs without it
	var demo *types.MatchData
	if cfg.Demo.DataPath != "" {
		m, err := dataset.LoadMatch(cfg.Demo.DataPath)
		if err != nil {
			log.WithError(err).WithField("data_path", cfg.Demo.DataPath).Warn("demo match data not loaded")
		} else {
			demo = &m
			log.WithField("innings", len(m.Innings)).Info("demo match data loaded")
		}
	}

	proc := processor.New(cfg, ocr.NewClient(cfg.OCR))
	srv := server.New(cfg, proc, demo)
	if err := srv.Start(); err != nil {
		log.WithError(err).Fatal("server terminated")
	}
}
