// Package config provides functionality for managing configuration options
// for the application using command-line flags, a JSON config file and
// environment variables.
package config

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/atinyakov/starwars-api/internal/db"

	// Loads a .env file from the working directory into the environment, if present.
	_ "github.com/joho/godotenv/autoload"
)

const (
	// DefaultAddress is the listening address used when nothing else is configured.
	DefaultAddress = ":3000"
	// DefaultDatabaseDSN points at a local SQLite file.
	DefaultDatabaseDSN = db.DefaultSQLitePath
)

// Options holds the configuration values for the application.
type Options struct {
	// Address defines the server's listening address (ip:port).
	Address string `json:"address"`

	// DatabaseDSN holds the database connection string. postgres:// and
	// postgresql:// URLs select PostgreSQL, anything else is a SQLite path.
	DatabaseDSN string `json:"database_dsn"`

	// LogLevel is the minimum zap level to emit.
	LogLevel string `json:"log_level"`

	// CORSAllowedOrigins lists the origins allowed to call the API.
	CORSAllowedOrigins []string `json:"cors_allowed_origins"`

	// SweepInterval is how often orphaned favorites are removed; 0 disables the sweeper.
	SweepInterval time.Duration `json:"-"`

	// Config is the path to the Config file.
	Config string `json:"-"`
}

// Parse reads options from args, then the JSON config file, then the
// environment; later sources override earlier ones.
func Parse(args []string) (*Options, error) {
	options := &Options{}
	var origins string

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.StringVar(&options.Address, "a", DefaultAddress, "run on ip:port server")
	fs.StringVar(&options.DatabaseDSN, "d", DefaultDatabaseDSN, "db address")
	fs.StringVar(&options.LogLevel, "l", "info", "log level")
	fs.StringVar(&origins, "cors", "*", "comma-separated allowed CORS origins")
	fs.DurationVar(&options.SweepInterval, "sweep", time.Hour, "orphaned favorites sweep interval (0 disables)")
	fs.StringVar(&options.Config, "config", "config.json", "path to config file")
	fs.StringVar(&options.Config, "c", "config.json", "path to config file (shorthand)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	options.CORSAllowedOrigins = splitList(origins)

	if configPath := os.Getenv("CONFIG"); configPath != "" {
		options.Config = configPath
	}

	if options.Config != "" {
		if _, err := os.Stat(options.Config); err == nil {
			data, err := os.ReadFile(options.Config)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}
			if err := json.Unmarshal(data, options); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	if port := os.Getenv("PORT"); port != "" {
		options.Address = ":" + port
	}
	if serverAddress := os.Getenv("SERVER_ADDRESS"); serverAddress != "" {
		options.Address = serverAddress
	}
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		options.DatabaseDSN = dsn
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		options.LogLevel = level
	}
	if raw := os.Getenv("CORS_ALLOWED_ORIGINS"); raw != "" {
		options.CORSAllowedOrigins = splitList(raw)
	}
	if raw := os.Getenv("SWEEP_INTERVAL"); raw != "" {
		interval, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("parse SWEEP_INTERVAL: %w", err)
		}
		options.SweepInterval = interval
	}

	return options, nil
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
