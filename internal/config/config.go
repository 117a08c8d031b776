package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config keeps runtime settings for the planner.
type Config struct {
	TelegramToken    string
	TelegramOwnerID  int64
	DatabaseURL      string
	HTTPAddr         string
	ReminderInterval time.Duration
	Location         *time.Location
	CalendarFile     string
}

// Load reads configuration from the environment (and a .env file when
// present) with sane defaults.
func Load() (Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	// An explicitly empty HTTP_ADDR disables the API.
	v.AllowEmptyEnv(true)
	v.SetDefault("DATABASE_URL", "study_planner.db")
	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("REMINDER_INTERVAL_SECONDS", 60)
	v.SetDefault("TELEGRAM_OWNER_ID", 0)

	cfg := Config{
		TelegramToken:   strings.TrimSpace(v.GetString("TELEGRAM_TOKEN")),
		TelegramOwnerID: v.GetInt64("TELEGRAM_OWNER_ID"),
		DatabaseURL:     strings.TrimSpace(v.GetString("DATABASE_URL")),
		HTTPAddr:        strings.TrimSpace(v.GetString("HTTP_ADDR")),
		CalendarFile:    strings.TrimSpace(v.GetString("PLANNER_CALENDAR")),
		Location:        time.Local,
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "study_planner.db"
	}

	seconds := 60
	if strings.TrimSpace(v.GetString("REMINDER_INTERVAL_SECONDS")) != "" {
		seconds = v.GetInt("REMINDER_INTERVAL_SECONDS")
	}
	if seconds <= 0 {
		return cfg, fmt.Errorf("REMINDER_INTERVAL_SECONDS must be positive, got %d", seconds)
	}
	cfg.ReminderInterval = time.Duration(seconds) * time.Second

	if name := strings.TrimSpace(v.GetString("TZ_NAME")); name != "" {
		loc, err := time.LoadLocation(name)
		if err != nil {
			return cfg, fmt.Errorf("TZ_NAME: %w", err)
		}
		cfg.Location = loc
	}

	return cfg, nil
}
