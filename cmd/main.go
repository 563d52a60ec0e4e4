package main

import (
	"log"

	"github.com/edulizanay/voice-food-logger/config"
	"github.com/edulizanay/voice-food-logger/controllers"
	"github.com/edulizanay/voice-food-logger/routes"
	"github.com/edulizanay/voice-food-logger/services"
	"github.com/edulizanay/voice-food-logger/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := utils.NewLogger(cfg.Env)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	table, err := services.LoadReferenceTable(cfg.FoodsFile)
	if err != nil {
		logger.Fatal("load reference table", "error", err)
	}
	prompt, err := services.LoadParsingPrompt(cfg.PromptsFile)
	if err != nil {
		logger.Fatal("load parsing prompt", "error", err)
	}

	db, err := config.InitDB(cfg.DBPath)
	if err != nil {
		logger.Fatal("init database", "error", err)
	}
	store, err := services.NewDayStore(cfg.LogsDir, logger)
	if err != nil {
		logger.Fatal("init day store", "error", err)
	}

	transcriber := services.NewGroqTranscriber(logger)
	parser := services.NewGroqParser(prompt, logger)
	resolver := services.NewResolver(table, logger)
	hub := services.NewRealtimeHub()

	lc := controllers.NewLogController(transcriber, parser, resolver, store, db, hub, logger)
	rc := controllers.NewRealtimeController(hub)

	r := routes.SetupRouter(lc, rc, logger)
	logger.Info("voice food logger starting", "port", cfg.Port, "foods", table.Len())
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server exited", "error", err)
	}
}
