package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config - настройки процесса из переменных окружения
type Config struct {
	AppPort string

	// Архив результатов (пусто = архив выключен)
	DatabaseURL string

	// Redis для rate limiter'а (пусто = in-memory fallback)
	RedisURL string

	// Внешний сервис хранения заданий
	TaskStoreURL    string
	TaskStoreAPIKey string
	TaskStoreBinID  string

	// Админ бот для операторов
	BotToken         string
	AdminBotEnabled  bool
	AdminTelegramIDs []int64
}

// Load читает .env (если есть) и собирает конфиг из окружения
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppPort:         getEnv("APP_PORT", "8080"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		RedisURL:        os.Getenv("REDIS_URL"),
		TaskStoreURL:    getEnv("TASK_STORE_URL", "https://api.jsonbin.io/v3"),
		TaskStoreAPIKey: os.Getenv("TASK_STORE_API_KEY"),
		TaskStoreBinID:  os.Getenv("TASK_STORE_BIN_ID"),
		BotToken:        os.Getenv("BOT_TOKEN"),
		AdminBotEnabled: os.Getenv("ADMIN_BOT_ENABLED") == "true",
	}

	// список telegram id админов через запятую
	if raw := os.Getenv("ADMIN_TELEGRAM_IDS"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
			if err == nil {
				cfg.AdminTelegramIDs = append(cfg.AdminTelegramIDs, id)
			}
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
