package config

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"

	"github.com/angeliquesouvant/bank-account/internal/model"
)

type Config struct {
	DatabaseURI string `env:"DATABASE_URI"     envDefault:""`
	Storage     string `env:"STORAGE"          envDefault:"memory"`
	LogLevel    string `env:"LOG_LEVEL"        envDefault:"info"`
	Locale      string `env:"STATEMENT_LOCALE" envDefault:"fr"`
}

// Validate reports settings that cannot produce a working service.
func (c *Config) Validate() error {
	switch c.Storage {
	case model.StorageMemory:
	case model.StoragePostgres:
		if c.DatabaseURI == "" {
			return errors.New("postgres storage requires DATABASE_URI")
		}
	default:
		return fmt.Errorf("unknown storage %q", c.Storage)
	}

	switch c.Locale {
	case model.LocaleFR, model.LocaleEN:
	default:
		return fmt.Errorf("unknown statement locale %q", c.Locale)
	}
	return nil
}

// Builder layers the sources: .env, then the environment, then flags.
// A source that fails to parse is logged and leaves the previous values.
type Builder struct {
	cfg *Config
	log *slog.Logger
}

func NewBuilder(log *slog.Logger) *Builder {
	return &Builder{
		cfg: &Config{
			DatabaseURI: "",
			Storage:     "",
			LogLevel:    "",
			Locale:      "",
		},
		log: log,
	}
}

// FromDotEnv loads the file into the process environment without
// overriding variables that are already set. A missing file is not an error.
func (b *Builder) FromDotEnv(path string) *Builder {
	if err := godotenv.Load(path); err != nil {
		b.log.LogAttrs(context.Background(),
			slog.LevelDebug, "No .env file loaded",
			slog.String("path", path),
			slog.Any(model.KeyLoggerError, err))
	}
	return b
}

func (b *Builder) FromEnv() *Builder {
	if err := env.Parse(b.cfg); err != nil {
		b.log.LogAttrs(context.Background(),
			slog.LevelError, "Failed to parse config", slog.Any(model.KeyLoggerError, err))
	}
	return b
}

func (b *Builder) FromFlags(args []string) *Builder {
	fs := flag.NewFlagSet("bank-account", flag.ContinueOnError)
	fs.StringVar(&b.cfg.DatabaseURI, "d", b.cfg.DatabaseURI, "Database URI")
	fs.StringVar(&b.cfg.Storage, "s", b.cfg.Storage, "Storage: memory or postgres")
	fs.StringVar(&b.cfg.LogLevel, "l", b.cfg.LogLevel, "Log level")
	fs.StringVar(&b.cfg.Locale, "t", b.cfg.Locale, "Statement locale: fr or en")

	if err := fs.Parse(args); err != nil {
		b.log.LogAttrs(context.Background(),
			slog.LevelError, "Failed to parse flags", slog.Any(model.KeyLoggerError, err))
	}
	return b
}

func (b *Builder) GetConfig() *Config {
	return b.cfg
}
