package server

import (
	"flag"
	"fmt"
	"strings"

	"github.com/leterax/portfolio/internal/platform/config"
	"github.com/leterax/portfolio/internal/platform/otel"
)

// Config holds the portfolio service configuration.
type Config struct {
	HTTPAddr string `env:"PORTFOLIO_HTTP_ADDR" envDefault:"localhost:8080"`
	DBPath   string `env:"PORTFOLIO_DB_PATH" envDefault:"data/portfolio.db"`
	SiteDir  string `env:"PORTFOLIO_SITE_DIR" envDefault:"dist"`
	OTel     otel.Config
}

// ParseConfig reads the environment and then lets flags override it.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "SQLite database path")
	fs.StringVar(&cfg.SiteDir, "site-dir", cfg.SiteDir, "directory of static site files")
	fs.StringVar(&cfg.OTel.Endpoint, "otel-endpoint", cfg.OTel.Endpoint, "OTLP HTTP traces endpoint")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that required settings are present.
func (c Config) Validate() error {
	if strings.TrimSpace(c.HTTPAddr) == "" {
		return fmt.Errorf("http address is required")
	}
	if strings.TrimSpace(c.DBPath) == "" {
		return fmt.Errorf("database path is required")
	}
	if strings.TrimSpace(c.SiteDir) == "" {
		return fmt.Errorf("site directory is required")
	}
	return nil
}
