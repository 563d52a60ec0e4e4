package config

import (
	"fmt"
	"os"

	"github.com/edulizanay/voice-food-logger/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// App holds everything read from the environment at startup. A missing
// GROQ_API_KEY is a startup failure, not a per-request one.
type App struct {
	Port        string
	Env         string
	GroqAPIKey  string
	LogsDir     string
	DBPath      string
	FoodsFile   string
	PromptsFile string
}

func Load() (*App, error) {
	// .env is optional; the environment itself may already be populated
	_ = godotenv.Load()

	cfg := &App{
		Port:        getenv("PORT", "8080"),
		Env:         getenv("APP_ENV", "development"),
		GroqAPIKey:  os.Getenv("GROQ_API_KEY"),
		LogsDir:     getenv("LOGS_DIR", "logs"),
		DBPath:      getenv("DB_PATH", "voicelog.db"),
		FoodsFile:   getenv("FOODS_FILE", "data/foods.yaml"),
		PromptsFile: getenv("PROMPTS_FILE", "data/prompts.yaml"),
	}
	if cfg.GroqAPIKey == "" {
		return nil, fmt.Errorf("GROQ_API_KEY environment variable not set")
	}
	return cfg, nil
}

// InitDB opens the SQLite history database and migrates the progress table.
func InitDB(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.AutoMigrate(&models.DailyProgress{}); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	return db, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
