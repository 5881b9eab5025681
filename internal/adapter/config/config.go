package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	Database *Database
	HTTP     *HTTP
	Report   *Report
	App      *App
}

const AppModeProduction = "PROD"
const AppModeDevelop = "DEV"

type App struct {
	LogLevel string `env:"LOG_LEVEL"`
	Mode     string `env:"APP_MODE"`
}

// Database with an empty DSN serves the built-in fixtures from memory.
type Database struct {
	DSN  string `env:"DATABASE_URI"`
	Seed bool   `env:"SEED_DATABASE"`
}

type HTTP struct {
	HostString string `env:"RUN_ADDRESS"`
}

type Report struct {
	CancelThreshold int   `env:"CANCEL_THRESHOLD"`
	SyntheticOrders int   `env:"SYNTHETIC_ORDERS"`
	SyntheticSeed   int64 `env:"SYNTHETIC_SEED"`
}

// NewConfig reads flags from args, then lets environment variables
// override them. A .env file in the working directory is loaded first
// when present.
func NewConfig(args []string) (*Config, error) {
	var db Database
	var http HTTP
	var report Report
	var app App

	fset := flag.NewFlagSet("eatsadmin", flag.ContinueOnError)
	fset.StringVar(&db.DSN, "d", "", "Database string")
	fset.BoolVar(&db.Seed, "s", false, "Seed database with sample data")
	fset.StringVar(&http.HostString, "a", `localhost:8080`, "HTTP server endpoint")
	fset.StringVar(&app.LogLevel, "l", `error`, "Log level")
	fset.StringVar(&app.Mode, "m", AppModeDevelop, "PROD / DEV")
	fset.IntVar(&report.CancelThreshold, "t", 3, "Cancellation threshold for high cancelers")
	fset.IntVar(&report.SyntheticOrders, "n", 0, "Synthetic orders added to the memory dataset")
	fset.Int64Var(&report.SyntheticSeed, "seed", 1, "Seed for synthetic orders")
	if err := fset.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env: %w", err)
	}

	err := env.Parse(&db)
	if err != nil {
		return nil, fmt.Errorf("error parsing env database config: %w", err)
	}
	err = env.Parse(&http)
	if err != nil {
		return nil, fmt.Errorf("error parsing http config: %w", err)
	}
	err = env.Parse(&app)
	if err != nil {
		return nil, fmt.Errorf("error parsing app config: %w", err)
	}
	err = env.Parse(&report)
	if err != nil {
		return nil, fmt.Errorf("error parsing report config: %w", err)
	}

	if app.Mode != AppModeDevelop && app.Mode != AppModeProduction {
		return nil, fmt.Errorf("unknown app mode %q", app.Mode)
	}
	if report.CancelThreshold < 0 {
		return nil, fmt.Errorf("cancel threshold must not be negative, got %d", report.CancelThreshold)
	}
	if report.SyntheticOrders < 0 {
		return nil, fmt.Errorf("synthetic orders must not be negative, got %d", report.SyntheticOrders)
	}

	config := Config{
		Database: &db,
		HTTP:     &http,
		Report:   &report,
		App:      &app,
	}

	return &config, nil
}
