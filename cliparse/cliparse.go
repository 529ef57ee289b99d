package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Store kinds accepted by -s / STORE_KIND.
const (
	StoreFile     = "file"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
)

type Config struct {
	Port          int
	StoreKind     string
	DataFile      string
	DatabaseURL   string
	AdminKeySalt  string
	SweepInterval time.Duration
	StrictOptions bool
}

// ParseFlags validates flags, falling back to environment variables and
// an optional .env file
func ParseFlags(args []string) (Config, error) {
	// A missing .env file is fine; explicit env vars and flags still apply.
	_ = godotenv.Load()

	var cfg Config

	fs := flag.NewFlagSet("pollbooth", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.StoreKind, "s", "", "Store kind (file, sqlite or postgres)")
	fs.StringVar(&cfg.DataFile, "f", "", "Poll data file (file store)")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL (sqlite/postgres stores)")
	fs.DurationVar(&cfg.SweepInterval, "sweep", 0, "Expiration sweep interval")
	fs.BoolVar(&cfg.StrictOptions, "strict-options", false, "Reject votes for unknown options")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.AdminKeySalt, "admin-salt", "", "Admin key salt (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 4380 // default
		}
	}

	if cfg.StoreKind == "" {
		cfg.StoreKind = os.Getenv("STORE_KIND")
		if cfg.StoreKind == "" {
			cfg.StoreKind = StoreFile
		}
	}

	switch cfg.StoreKind {
	case StoreFile:
		if cfg.DataFile == "" {
			cfg.DataFile = os.Getenv("DATA_FILE")
		}
		if cfg.DataFile == "" {
			cfg.DataFile = "data.json"
		}
	case StoreSQLite, StorePostgres:
		if cfg.DatabaseURL == "" {
			cfg.DatabaseURL = os.Getenv("DATABASE_URL")
		}
		if cfg.DatabaseURL == "" {
			return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
		}
	default:
		return Config{}, fmt.Errorf("unknown store kind %q (want file, sqlite or postgres)", cfg.StoreKind)
	}

	if cfg.SweepInterval == 0 {
		if s := os.Getenv("SWEEP_INTERVAL"); s != "" {
			d, err := time.ParseDuration(s)
			if err != nil {
				return Config{}, errors.New("invalid SWEEP_INTERVAL env variable")
			}
			cfg.SweepInterval = d
		} else {
			cfg.SweepInterval = time.Minute
		}
	}
	if cfg.SweepInterval < 0 {
		return Config{}, errors.New("sweep interval must be positive")
	}

	if !cfg.StrictOptions {
		if s := os.Getenv("STRICT_OPTIONS"); s != "" {
			strict, err := strconv.ParseBool(s)
			if err != nil {
				return Config{}, errors.New("invalid STRICT_OPTIONS env variable")
			}
			cfg.StrictOptions = strict
		}
	}

	// Secrets - MUST be provided
	if cfg.AdminKeySalt == "" {
		cfg.AdminKeySalt = os.Getenv("ADMIN_KEY_SALT")
	}
	if cfg.AdminKeySalt == "" {
		return Config{}, errors.New("ADMIN_KEY_SALT required")
	}

	return cfg, nil
}
