package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App      App
	Storage  Storage
	Redis    Redis
	Postgres Postgres
	HTTP     HTTP
	Bot      Bot
}

type App struct {
	Name                 string `env:"APP_NAME" envDefault:"basket"`
	Version              string `env:"APP_VERSION" envDefault:"dev"`
	LogLevel             string `env:"LOG_LEVEL" envDefault:"info"`
	LogNoColor           bool   `env:"LOG_NO_COLOR" envDefault:"false"`
	ProbeListenAddress   string `env:"PROBE_LISTEN_ADDRESS" envDefault:":8081"`
	MetricsListenAddress string `env:"METRICS_LISTEN_ADDRESS" envDefault:":8082"`
}

// Bot настраивает необязательный Telegram-интерфейс. Пустой токен отключает бота.
type Bot struct {
	Token   string `env:"BOT_TOKEN" json:"-"`
	AdminID int64  `env:"BOT_ADMIN_ID"`
}

func (b Bot) Enabled() bool {
	return b.Token != ""
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	if err := config.validate(); err != nil {
		return Config{}, fmt.Errorf("config.validate: %w", err)
	}

	return config, nil
}

func (c Config) validate() error {
	switch c.Storage.Driver {
	case StorageMemory, StorageFile:
	case StorageRedis:
		if c.Redis.Address == "" {
			return fmt.Errorf("REDIS_ADDRESS is required for storage driver %q", c.Storage.Driver)
		}
	case StoragePostgres:
		if c.Postgres.DSN == "" {
			return fmt.Errorf("PG_DSN is required for storage driver %q", c.Storage.Driver)
		}
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}

	if c.Bot.Enabled() && c.Bot.AdminID == 0 {
		return fmt.Errorf("BOT_ADMIN_ID is required when BOT_TOKEN is set")
	}

	return nil
}
