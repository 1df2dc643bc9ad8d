package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	ListenAddr  string `env:"LISTEN_ADDR" envDefault:":8080"`
	MetricsAddr string `env:"METRICS_ADDR" envDefault:":9090"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	RateLimitWindow time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"5s"`
	DedupTTL        time.Duration `env:"DEDUP_TTL" envDefault:"10m"`

	BannedWords    []string          `env:"BANNED_WORDS" envSeparator:","`
	BannedMentions []string          `env:"BANNED_MENTIONS" envSeparator:","`
	UserIcons      map[string]string `env:"USER_ICONS"`

	EnableArchive    bool          `env:"ENABLE_ARCHIVE" envDefault:"false"`
	ArchiveRetention time.Duration `env:"ARCHIVE_RETENTION" envDefault:"720h"`
	DBHost           string        `env:"DB_HOST"`
	DBPort           string        `env:"DB_PORT" envDefault:"5432"`
	DBUser           string        `env:"DB_USER"`
	DBPassword       string        `env:"DB_PASSWORD"`
	DBName           string        `env:"DB_NAME"`

	EnableTelemetry bool `env:"ENABLE_TELEMETRY" envDefault:"true"`
}

func (c *Config) GetDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.EnableArchive && (cfg.DBHost == "" || cfg.DBUser == "" || cfg.DBName == "") {
		return nil, fmt.Errorf("ENABLE_ARCHIVE requires DB_HOST, DB_USER and DB_NAME")
	}
	if cfg.RateLimitWindow < 0 || cfg.DedupTTL <= 0 {
		return nil, fmt.Errorf("rate window must be >= 0 and dedup TTL > 0")
	}

	log.Printf("Config loaded. Listen: %s, LogLevel: %s", cfg.ListenAddr, cfg.LogLevel)
	return cfg, nil
}
