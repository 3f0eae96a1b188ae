package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"log/slog"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/limbo/nestling/internal/repository"
)

const DefaultEnvFile = "./configs/.env"

var (
	once     sync.Once
	instance *Config
)

type PostgresConfig struct {
	Address  string `env:"POSTGRES_DB_ADDRESS" envDefault:"localhost:5432"`
	User     string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password string `env:"POSTGRES_PASSWORD"`
	DB       string `env:"POSTGRES_DB" envDefault:"nestling"`
}

type Config struct {
	APIAddress string `env:"API_ADDRESS" envDefault:":8080"`
	JWTSecret  string `env:"JWT_SECRET,required"`
	// Calendar days (streaks, daily missions, challenge weeks) are counted here
	Timezone           string     `env:"TIMEZONE" envDefault:"UTC"`
	LogLevel           slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
	FCMCredentialsFile string     `env:"FCM_CREDENTIALS_FILE"`
	NotifyWorkers      int        `env:"NOTIFY_WORKERS" envDefault:"4"`
	NotifyQueue        int        `env:"NOTIFY_QUEUE" envDefault:"256"`
	RateLimitRPS       float64    `env:"RATE_LIMIT_RPS" envDefault:"5"`
	RateLimitBurst     int        `env:"RATE_LIMIT_BURST" envDefault:"30"`

	Postgres PostgresConfig
}

// New loads the process config once. Values already set in the environment win
// over the .env file, which may be absent.
func New() *Config {
	once.Do(func() {
		cfg, err := Load(DefaultEnvFile)
		if err != nil {
			log.Fatal("loading config error: ", err)
		}
		instance = cfg
	})
	return instance
}

func Load(envFile string) (*Config, error) {
	var cfg Config
	if err := parse(envFile, &cfg); err != nil {
		return nil, err
	}
	if _, err := cfg.Location(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// MigrateConfig is the subset needed by the migration tool.
type MigrateConfig struct {
	MigrationsDir string `env:"MIGRATIONS_DIR" envDefault:"./migrations"`

	Postgres PostgresConfig
}

func LoadMigrate(envFile string) (*MigrateConfig, error) {
	var cfg MigrateConfig
	if err := parse(envFile, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func parse(envFile string, target any) error {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", envFile, err)
	}
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func (c *Config) PG() *repository.PGCfg {
	return c.Postgres.PG()
}

func (pc PostgresConfig) PG() *repository.PGCfg {
	return &repository.PGCfg{
		Address:  pc.Address,
		Username: pc.User,
		Password: pc.Password,
		DB:       pc.DB,
	}
}
